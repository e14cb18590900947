// Package export drives the translation of an editor world (editorworld)
// into Hytale region files plus the world descriptor (spec.md §4.6, §5,
// §6). It owns coordinate translation, the worker pool, per-column
// population, and the on-disk world layout.
package export

import "errors"

// ErrCancelled is returned when cooperative cancellation was observed
// at a region boundary or a 32-chunk polling point (§5, §7).
var ErrCancelled = errors.New("export: cancelled")

// ErrConfiguration is returned for invalid driver input: a requested
// dimension the world does not have, an unresolvable painted index, a
// missing registry entry the pipeline needed (§7).
var ErrConfiguration = errors.New("export: invalid configuration")
