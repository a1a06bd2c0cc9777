package core

// Canonical labels with special classification meaning. They live in the
// item catalog like any other entity so the resolver and extractor treat
// them uniformly.
const (
	LabelWayOfTheHero = "Way of the Hero"
	LabelHerosPath    = "Hero's Path"
	LabelBarren       = "Barren"
)

// Classify determines a record's category from its extracted item and the
// remaining check text. Rule order is load-bearing: a barren item with no
// remaining check marks the whole location barren, while a barren item with
// leftover text only marks one empty item slot.
func Classify(itemName, check string, rewards RewardSet) Category {
	switch {
	case itemName == LabelWayOfTheHero || itemName == LabelHerosPath:
		return CategoryGoodLocation
	case rewards.Contains(check):
		return CategorySkullReward
	case itemName == LabelBarren && check == "":
		return CategoryBadLocation
	case itemName == LabelBarren:
		return CategoryBarrenItem
	default:
		return CategoryItemAtLocation
	}
}
