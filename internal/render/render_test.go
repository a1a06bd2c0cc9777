package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kaepora/tracknote/pkg/core"
)

func TestRow(t *testing.T) {
	rec := core.Record{
		Place:    "Deku Tree",
		Item:     "Kokiri Sword",
		Category: core.CategoryItemAtLocation,
		Count:    1,
	}

	row := Row(rec)
	assert.Contains(t, row, "Deku Tree")
	assert.Contains(t, row, "Kokiri Sword")
	assert.NotContains(t, row, "Delete:")
}

func TestRow_Deletion(t *testing.T) {
	rec := core.Record{
		Item:     "Kokiri Sword",
		Category: core.CategoryItemAtLocation,
		Count:    1,
		Deletion: true,
	}
	assert.True(t, strings.HasPrefix(Row(rec), "Delete:"))
}

func TestRow_SkullTag(t *testing.T) {
	rec := core.Record{
		Check:    "30 Skulls",
		Item:     "Hint",
		Category: core.CategorySkullReward,
		Count:    1,
	}
	row := Row(rec)
	assert.Contains(t, row, "HoS")
	assert.Contains(t, row, "30 Skulls")
}

func TestRow_None(t *testing.T) {
	assert.Empty(t, Row(core.Record{Category: core.CategoryNone}))
}

func TestRow_AnnotationBullets(t *testing.T) {
	rec := core.Record{
		Place:      "Gerudo Valley",
		Category:   core.CategoryItemAtLocation,
		Count:      1,
		Annotation: "needs longshot*come back later",
	}
	row := Row(rec)
	assert.Contains(t, row, "• needs longshot")
	assert.Contains(t, row, "• come back later")
}

func TestStars(t *testing.T) {
	tests := []struct {
		count int
		want  string
	}{
		{1, ""},
		{2, "☆"},
		{3, "★"},
		{4, "★☆"},
		{5, "★★"},
		{6, "★★☆"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, stars(tc.count), "count %d", tc.count)
	}
}

func TestGroup(t *testing.T) {
	assert.Empty(t, Group("Barren Items", nil))

	recs := []core.Record{
		{Place: "Deku Tree", Item: "Barren", Category: core.CategoryBadLocation, Count: 1},
	}
	out := Group("Barren Locations", recs)
	assert.Contains(t, out, "Barren Locations")
	assert.Contains(t, out, "Deku Tree")
}
