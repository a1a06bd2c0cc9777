package core

import (
	"io"
	"log/slog"
	"sort"
	"sync"
)

// Tracker handles the business logic for notes: it owns the categorized
// collections and applies the deduplicating merge rules on submission.
//
// The merge pipeline itself is synchronous, but add/remove are
// read-modify-write on shared collections, so a mutex keeps the Tracker
// safe when embedded in a concurrent host.
type Tracker struct {
	mu      sync.Mutex
	builder *Builder
	notes   map[Category][]Record
	logger  *slog.Logger
}

// NewTracker creates a Tracker resolving against catalog.
// A nil logger discards all log output.
func NewTracker(catalog Catalog, logger *slog.Logger) *Tracker {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Tracker{
		builder: NewBuilder(catalog),
		notes:   make(map[Category][]Record),
		logger:  logger,
	}
}

// Preview builds the record for line without storing anything. It backs
// as-you-type feedback in the UI.
func (t *Tracker) Preview(line string) Record {
	return t.builder.Build(line)
}

// Submit builds the record for line and applies it: deletion-marked records
// remove their stored counterpart, everything else is merged into its
// category collection. Empty input yields CategoryNone and is discarded.
// The built record is returned either way.
func (t *Tracker) Submit(line string) Record {
	rec := t.builder.Build(line)
	if rec.Category == CategoryNone {
		return rec
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if rec.Deletion {
		t.remove(rec)
	} else {
		t.add(rec)
	}
	return rec
}

// DeleteMatching removes the stored record equal to what line resolves to,
// whether or not the line carries a deletion prefix. Removing a record with
// no stored counterpart is a silent no-op.
func (t *Tracker) DeleteMatching(line string) Record {
	rec := t.builder.Build(line)
	if rec.Category == CategoryNone {
		return rec
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	t.remove(rec)
	return rec
}

// Records returns a snapshot of one category's collection. Snapshots of
// CategorySkullReward are sorted ascending by check; stored order is never
// touched.
func (t *Tracker) Records(c Category) []Record {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make([]Record, len(t.notes[c]))
	copy(out, t.notes[c])
	if c == CategorySkullReward {
		sort.Slice(out, func(i, j int) bool {
			return out[i].Check < out[j].Check
		})
	}
	return out
}

// Len returns the number of stored records in one category.
func (t *Tracker) Len(c Category) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.notes[c])
}

// Reset clears every collection.
func (t *Tracker) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.notes = make(map[Category][]Record)
}

func (t *Tracker) add(rec Record) {
	coll := t.notes[rec.Category]
	i := indexOf(coll, rec)
	if i < 0 {
		t.notes[rec.Category] = append(coll, rec)
		t.logger.Debug("note added", "category", rec.Category, "check", rec.Check, "place", rec.Place, "item", rec.Item)
		return
	}

	coll[i].Count++
	if rec.Annotation != "" && coll[i].Annotation != rec.Annotation {
		coll[i].Annotation = rec.Annotation
		// Annotation updates suppress the increment. Kept bug-for-bug from
		// the original merge logic; the behavior is pinned by a test.
		coll[i].Count--
	}
	t.logger.Debug("note merged", "category", rec.Category, "check", rec.Check, "count", coll[i].Count)
}

func (t *Tracker) remove(rec Record) {
	coll := t.notes[rec.Category]
	i := indexOf(coll, rec)
	if i < 0 {
		return
	}
	t.notes[rec.Category] = append(coll[:i], coll[i+1:]...)
	t.logger.Debug("note removed", "category", rec.Category, "check", rec.Check, "place", rec.Place, "item", rec.Item)
}

// indexOf finds the first record equal to rec under Record.Equal, -1 if none.
func indexOf(coll []Record, rec Record) int {
	for i, r := range coll {
		if r.Equal(rec) {
			return i
		}
	}
	return -1
}
