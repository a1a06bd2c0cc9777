package core_test

import (
	"testing"

	"github.com/kaepora/tracknote/pkg/core"
)

func TestRecordEqual(t *testing.T) {
	base := core.Record{
		Place:    "Deku Tree",
		Item:     "Kokiri Sword",
		Check:    "",
		Category: core.CategoryItemAtLocation,
		Count:    1,
	}

	tests := []struct {
		name  string
		other core.Record
		want  bool
	}{
		{"identical", base, true},
		{"count ignored", func() core.Record { r := base; r.Count = 7; return r }(), true},
		{"annotation ignored", func() core.Record { r := base; r.Annotation = "note"; return r }(), true},
		{"deletion ignored", func() core.Record { r := base; r.Deletion = true; return r }(), true},
		{"different check", func() core.Record { r := base; r.Check = "chest"; return r }(), false},
		{"different item", func() core.Record { r := base; r.Item = "Fairy Bow"; return r }(), false},
		{"different place", func() core.Record { r := base; r.Place = "Kokiri Forest"; return r }(), false},
		{"different category", func() core.Record { r := base; r.Category = core.CategoryBarrenItem; return r }(), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := base.Equal(tc.other); got != tc.want {
				t.Errorf("Equal = %v, want %v", got, tc.want)
			}
			// Equality is symmetric.
			if got := tc.other.Equal(base); got != tc.want {
				t.Errorf("reverse Equal = %v, want %v", got, tc.want)
			}
		})
	}
}
