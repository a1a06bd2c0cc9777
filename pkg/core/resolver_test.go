package core_test

import (
	"testing"

	"github.com/kaepora/tracknote/pkg/core"
)

func TestResolve(t *testing.T) {
	all := newTestCatalog().All()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"shorthand", "deku ks", "Deku Tree Kokiri Sword"},
		{"casing normalized", "DEKU TREE", "Deku Tree"},
		{"canonical casing preserved", "Deku Tree Kokiri Sword", "Deku Tree Kokiri Sword"},
		{"whole word only", "elbow", "elbow"},
		{"already canonical", "Kokiri Sword", "Kokiri Sword"},
		{"unknown text kept", "deku something", "Deku Tree something"},
		{"alias with digits", "30s", "30 Skulls"},
		{"empty", "", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := core.Resolve(tc.input, all); got != tc.want {
				t.Errorf("Resolve(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

// A resolved name must be opaque to later passes: the "Temple" inside
// "Fire Temple" may not be rewritten by the "temple" alias of another entity.
func TestResolve_CollisionGuard(t *testing.T) {
	entities := []core.Entity{
		{Name: "Fire Temple", Aliases: []string{"fire"}},
		{Name: "Temple of Time", Aliases: []string{"temple"}},
	}

	if got := core.Resolve("fire", entities); got != "Fire Temple" {
		t.Errorf("Resolve(\"fire\") = %q, want \"Fire Temple\"", got)
	}
	if got := core.Resolve("fire and temple", entities); got != "Fire Temple and Temple of Time" {
		t.Errorf("Resolve(\"fire and temple\") = %q", got)
	}
}

// A name the user typed in exact canonical casing must get the same
// protection as one the resolver rewrote: its own aliases may not match
// the words inside it, and neither may later entities' aliases.
func TestResolve_CanonicalCasingGuarded(t *testing.T) {
	all := newTestCatalog().All()

	// "deku" is an alias of Deku Tree; unguarded it would rewrite the
	// "Deku" inside the already-canonical name.
	if got := core.Resolve("Deku Tree Barren", all); got != "Deku Tree Barren" {
		t.Errorf("Resolve(\"Deku Tree Barren\") = %q, want unchanged", got)
	}

	entities := []core.Entity{
		{Name: "Kokiri Forest", Aliases: []string{"kf"}},
		{Name: "Forest Temple", Aliases: []string{"forest"}},
	}
	if got := core.Resolve("Kokiri Forest bow", entities); got != "Kokiri Forest bow" {
		t.Errorf("Resolve(\"Kokiri Forest bow\") = %q, want unchanged", got)
	}
}

func TestResolve_Idempotent(t *testing.T) {
	all := newTestCatalog().All()

	inputs := []string{
		"deku ks",
		"Deku Tree Kokiri Sword",
		"gv bow behind the waterfall",
		"30s hint",
		"Gossip Stone Hint",
		"plain text with no entities",
		"",
	}
	for _, input := range inputs {
		once := core.Resolve(input, all)
		twice := core.Resolve(once, all)
		if once != twice {
			t.Errorf("Resolve not idempotent for %q: first %q, second %q", input, once, twice)
		}
	}
}
