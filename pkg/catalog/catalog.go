// Package catalog loads the read-only reference data the resolution engine
// works against: canonical location, item and reward-check names with their
// shorthand aliases.
//
// Catalogs are parsed from a YAML document once at process start and are
// immutable afterwards; there is no hot reload.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"regexp"

	"gopkg.in/yaml.v3"

	"github.com/kaepora/tracknote/pkg/core"
)

//go:embed data/oot.yaml
var defaultData []byte

// Common errors.
var (
	ErrInvalidName = errors.New("entity name is not a plain word")
	ErrDuplicate   = errors.New("duplicate entity name")
	ErrEmpty       = errors.New("catalog defines no entities")
)

// document mirrors the YAML catalog layout.
type document struct {
	Locations []entry `yaml:"locations"`
	Items     []entry `yaml:"items"`
	Rewards   []entry `yaml:"rewards"`
}

type entry struct {
	Name    string   `yaml:"name"`
	Aliases []string `yaml:"aliases"`
}

// plainWord matches names the resolver can substitute without escaping:
// letters, digits, spaces, apostrophes and hyphens, beginning and ending
// with a word character so word-boundary matching stays well defined.
var plainWord = regexp.MustCompile(`^[A-Za-z0-9](?:[A-Za-z0-9' -]*[A-Za-z0-9])?$`)

// Catalog is an immutable view of the reference data. It satisfies
// core.Catalog. Callers must not modify the returned slices.
type Catalog struct {
	locations []core.Entity
	items     []core.Entity
	all       []core.Entity
	rewards   core.RewardSet
}

// Locations returns the location entities in document order.
func (c *Catalog) Locations() []core.Entity { return c.locations }

// Items returns the item entities in document order.
func (c *Catalog) Items() []core.Entity { return c.items }

// All returns every entity: locations, then items, then reward checks.
func (c *Catalog) All() []core.Entity { return c.all }

// Rewards returns the reward check names.
func (c *Catalog) Rewards() core.RewardSet { return c.rewards }

// Load reads and parses a YAML catalog document.
func Load(r io.Reader) (*Catalog, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading catalog: %w", err)
	}
	return Parse(data)
}

// Parse builds a validated Catalog from a YAML document. Entity names and
// aliases must be plain words (the resolver substitutes them into regular
// expressions verbatim) and names must be unique across the whole document.
func Parse(data []byte) (*Catalog, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing catalog: %w", err)
	}

	seen := make(map[string]struct{})
	convert := func(entries []entry) ([]core.Entity, error) {
		out := make([]core.Entity, 0, len(entries))
		for _, e := range entries {
			if !plainWord.MatchString(e.Name) {
				return nil, fmt.Errorf("%w: %q", ErrInvalidName, e.Name)
			}
			if _, dup := seen[e.Name]; dup {
				return nil, fmt.Errorf("%w: %q", ErrDuplicate, e.Name)
			}
			seen[e.Name] = struct{}{}
			for _, a := range e.Aliases {
				if !plainWord.MatchString(a) {
					return nil, fmt.Errorf("%w: alias %q of %q", ErrInvalidName, a, e.Name)
				}
			}
			out = append(out, core.Entity{Name: e.Name, Aliases: e.Aliases})
		}
		return out, nil
	}

	locations, err := convert(doc.Locations)
	if err != nil {
		return nil, err
	}
	items, err := convert(doc.Items)
	if err != nil {
		return nil, err
	}
	rewardEntities, err := convert(doc.Rewards)
	if err != nil {
		return nil, err
	}

	c := &Catalog{
		locations: locations,
		items:     items,
		rewards:   make(core.RewardSet, len(rewardEntities)),
	}
	for _, e := range rewardEntities {
		c.rewards[e.Name] = struct{}{}
	}
	c.all = make([]core.Entity, 0, len(locations)+len(items)+len(rewardEntities))
	c.all = append(c.all, locations...)
	c.all = append(c.all, items...)
	c.all = append(c.all, rewardEntities...)

	if len(c.all) == 0 {
		return nil, ErrEmpty
	}
	return c, nil
}

// Default returns the embedded Ocarina of Time catalog.
func Default() *Catalog {
	c, err := Parse(defaultData)
	if err != nil {
		// The embedded data is fixed at compile time.
		panic(fmt.Sprintf("catalog: embedded data is invalid: %v", err))
	}
	return c
}
