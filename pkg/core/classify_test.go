package core_test

import (
	"testing"

	"github.com/kaepora/tracknote/pkg/core"
)

func TestClassify(t *testing.T) {
	rewards := core.RewardSet{
		"Gossip Stone": {},
		"30 Skulls":    {},
	}

	tests := []struct {
		name  string
		item  string
		check string
		want  core.Category
	}{
		{"way of the hero", "Way of the Hero", "", core.CategoryGoodLocation},
		{"hero's path", "Hero's Path", "", core.CategoryGoodLocation},
		{"reward check", "Hint", "Gossip Stone", core.CategorySkullReward},
		{"good label beats reward check", "Way of the Hero", "Gossip Stone", core.CategoryGoodLocation},
		{"reward check beats barren", "Barren", "30 Skulls", core.CategorySkullReward},
		{"barren without check", "Barren", "", core.CategoryBadLocation},
		{"barren with check", "Barren", "Fairy Bow", core.CategoryBarrenItem},
		{"plain item", "Kokiri Sword", "", core.CategoryItemAtLocation},
		{"no item at all", "", "chest behind grass", core.CategoryItemAtLocation},
		{"empty everything", "", "", core.CategoryItemAtLocation},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := core.Classify(tc.item, tc.check, rewards); got != tc.want {
				t.Errorf("Classify(%q, %q) = %q, want %q", tc.item, tc.check, got, tc.want)
			}
		})
	}
}
