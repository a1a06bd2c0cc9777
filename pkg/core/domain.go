// Record is the central entity of the domain.
package core

// Category represents the semantic meaning of a Record.
type Category string

const (
	CategoryItemAtLocation Category = "ITEM_AT_LOCATION"
	CategoryGoodLocation   Category = "GOOD_LOCATION"
	CategoryBadLocation    Category = "BAD_LOCATION"
	CategorySkullReward    Category = "SKULL_REWARD"
	CategoryNone           Category = "NONE"
	CategoryBarrenItem     Category = "BARREN_ITEM"
)

// Categories lists the storable categories in display order.
// CategoryNone is transient (the live preview of empty input) and never stored.
var Categories = []Category{
	CategoryItemAtLocation,
	CategoryBarrenItem,
	CategorySkullReward,
	CategoryGoodLocation,
	CategoryBadLocation,
}

// Entity is a canonical named thing (item, location or reward check)
// with zero or more shorthand aliases. Entities are immutable and keep
// the order the catalog declares them in.
type Entity struct {
	Name    string
	Aliases []string
}

// RewardSet is the set of known reward check names.
type RewardSet map[string]struct{}

// Contains reports whether check is a known reward check name.
func (s RewardSet) Contains(check string) bool {
	_, ok := s[check]
	return ok
}

// Catalog provides the read-only reference data the engine resolves against.
// It is loaded once at process start and passed in explicitly; implementations
// must return stable, catalog-ordered slices.
type Catalog interface {
	// All returns every known entity: locations, items and reward checks.
	All() []Entity

	// Locations returns the location entities.
	Locations() []Entity

	// Items returns the item entities.
	Items() []Entity

	// Rewards returns the reward check names.
	Rewards() RewardSet
}

// Record is a normalized note describing one discovery.
type Record struct {
	Place      string
	Item       string
	Check      string
	Category   Category
	Count      int
	Deletion   bool
	Annotation string
}

// Equal reports whether two records describe the same note.
// Count, Annotation and Deletion are deliberately excluded: a record
// submitted twice is the same note seen again, whatever its count or
// attached free text.
func (r Record) Equal(other Record) bool {
	return r.Check == other.Check &&
		r.Item == other.Item &&
		r.Place == other.Place &&
		r.Category == other.Category
}
