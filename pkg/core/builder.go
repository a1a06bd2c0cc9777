package core

import "strings"

const (
	// annotationSep splits the note body from its free-text annotation.
	annotationSep = " = "
	// deletePrefix marks a note as a removal request.
	deletePrefix = "del "
)

// Builder turns one raw input line into a structured Record, resolving
// against the catalog it was constructed with.
type Builder struct {
	catalog Catalog
}

// NewBuilder creates a Builder for the given catalog.
func NewBuilder(catalog Catalog) *Builder {
	return &Builder{catalog: catalog}
}

// Build normalizes one input line of the form "[del ]<body>[ = <annotation>]"
// into a Record. Shorthand in the body is resolved to canonical names; the
// earliest location and the latest item mentioned are extracted into their
// own fields and whatever text remains becomes the check label.
//
// An empty body yields CategoryNone; such records represent "nothing typed
// yet" and must not be stored.
func (b *Builder) Build(input string) Record {
	rec := Record{Category: CategoryNone, Count: 1}

	parts := strings.Split(input, annotationSep)
	body := parts[0]
	if len(parts) > 1 {
		rec.Annotation = parts[1]
	}

	if len(body) >= len(deletePrefix) && strings.EqualFold(body[:len(deletePrefix)], deletePrefix) {
		rec.Deletion = true
		body = body[len(deletePrefix):]
	}
	if strings.TrimSpace(body) == "" {
		return rec
	}

	check := Resolve(body, b.catalog.All())

	// Earliest location mention wins; its name is stored separately and
	// stripped from the check text.
	if place, ok := FindBestMatch(check, b.catalog.Locations(), true); ok {
		rec.Place = place.Name
		check = wordPattern(place.Name).ReplaceAllLiteralString(check, "")
	}

	// Latest item mention wins on what remains.
	if item, ok := FindBestMatch(check, b.catalog.Items(), false); ok {
		rec.Item = item.Name
		check = wordPattern(item.Name).ReplaceAllLiteralString(check, "")
	}

	check = strings.TrimSpace(check)
	rec.Category = Classify(rec.Item, check, b.catalog.Rewards())

	// Second normalization pass: the remaining label may still reference a
	// location (e.g. a reward check naming where it was found).
	rec.Check = Resolve(check, b.catalog.Locations())
	return rec
}
