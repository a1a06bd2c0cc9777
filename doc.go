// Package tracknote is the Composition Root for the tracknote application.
//
// It connects the resolution engine (Domain Layer) with the reference
// catalog adapter (Data Layer) behind a small facade.
//
// Philosophy:
//
// Tracknote turns free-form randomizer shorthand into structured,
// deduplicated notes. You type "deku gs 30s", it understands "a skulltula
// reward at the Deku Tree". The engine is pure string transformation over
// a read-only catalog: no persistence, no network, no background work.
//
// Features:
//
//   - **Shorthand resolution**: whole-word alias substitution with a
//     collision guard, so resolved names are opaque to later passes.
//   - **Entity extraction**: earliest-location / latest-item selection with
//     deterministic tie-breaks.
//   - **Classification**: six record categories derived from the extracted
//     item and the leftover check text.
//   - **Deduplicating collections**: repeat sightings merge into a count;
//     "del "-prefixed lines remove their match.
//   - **Swappable catalog**: the embedded Ocarina of Time data is just a
//     default; any YAML catalog loads via pkg/catalog.
//
// Usage:
//
//	// Build a tracker against the embedded catalog
//	tracker := tracknote.New()
//
//	// Record a discovery
//	tracker.Submit("deku ks")
//
//	// Read a category back
//	recs := tracker.Records(tracknote.ItemAtLocation)
package tracknote
