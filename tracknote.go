package tracknote

import (
	"log/slog"

	"github.com/kaepora/tracknote/pkg/catalog"
	"github.com/kaepora/tracknote/pkg/core"
)

// Version exposes the version of the library.
const Version = "0.2.0"

// --- Types ---

// Record is a public alias for the core record type.
type Record = core.Record

// Category is a public alias for the core category tag.
type Category = core.Category

// Entity is a public alias for the core entity type.
type Entity = core.Entity

// Tracker is a public alias for the core tracker.
type Tracker = core.Tracker

// Category tags, re-exported for callers that only import the facade.
const (
	ItemAtLocation = core.CategoryItemAtLocation
	GoodLocation   = core.CategoryGoodLocation
	BadLocation    = core.CategoryBadLocation
	SkullReward    = core.CategorySkullReward
	None           = core.CategoryNone
	BarrenItem     = core.CategoryBarrenItem
)

// --- Configuration ---

// options holds the internal configuration for the tracker.
type options struct {
	catalog core.Catalog
	logger  *slog.Logger
}

// Option defines a functional option for configuring a Tracker.
type Option func(*options)

// WithCatalog resolves against a custom catalog instead of the embedded
// Ocarina of Time data.
func WithCatalog(cat core.Catalog) Option {
	return func(o *options) {
		o.catalog = cat
	}
}

// WithLogger sets the logger for the tracker.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// --- Factory ---

// New creates a Tracker. Without options it resolves against the embedded
// Ocarina of Time catalog and discards log output.
func New(opts ...Option) *core.Tracker {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	if o.catalog == nil {
		o.catalog = catalog.Default()
	}
	return core.NewTracker(o.catalog, o.logger)
}
