package core

import (
	"regexp"
	"strings"
)

// Sentinels used by the collision guard. Both must consist of word
// characters: a guarded span like "000Deku111Tree000" then has no internal
// word boundaries, so later whole-word passes cannot match inside it.
const (
	guardMark = "000"
	spaceMark = "111"
)

// wordPattern compiles a whole-word, case-insensitive pattern for name.
// Entity names are plain words (enforced at catalog load time), so they
// are not regex-escaped here.
func wordPattern(name string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)\b` + name + `\b`)
}

// guardResolved wraps every occurrence of the entity's canonical name in
// sentinel markers, hiding its internal spaces, so that substitutions for
// later aliases and entities cannot match inside an already-resolved span.
// A no-op when the name does not occur; the markers are stripped again at
// the end of Resolve.
func guardResolved(s string, e Entity) string {
	masked := guardMark + strings.ReplaceAll(e.Name, " ", spaceMark) + guardMark
	return wordPattern(e.Name).ReplaceAllLiteralString(s, masked)
}

// Resolve rewrites every whole-word, case-insensitive occurrence of a known
// entity name or shorthand alias in input with the entity's canonical form.
// Catalog order decides substitution order, which makes the output
// deterministic; resolving an already-resolved string is a no-op.
func Resolve(input string, entities []Entity) string {
	out := input
	for _, e := range entities {
		// Normalize the casing of the canonical name itself first, in case
		// the user typed it out, then guard whatever occurrences exist.
		// Guarding must not depend on the casing pass having changed
		// anything: a name already in canonical casing needs the same
		// protection from this entity's own aliases and from later entities.
		out = wordPattern(e.Name).ReplaceAllLiteralString(out, e.Name)
		out = guardResolved(out, e)
		prev := out
		for _, alias := range e.Aliases {
			out = wordPattern(alias).ReplaceAllLiteralString(out, e.Name)
			if out != prev {
				out = guardResolved(out, e)
				prev = out
			}
		}
	}
	out = strings.ReplaceAll(out, guardMark, "")
	return strings.ReplaceAll(out, spaceMark, " ")
}
