// Package region implements the IndexedStorageFile on-disk region
// format: a fixed header, a blob index, and a segment store holding
// Zstd-compressed chunk documents (spec.md §4.5).
package region

import "errors"

// ErrFormatMismatch is returned by Open when the file's magic or
// version does not match what this package writes.
var ErrFormatMismatch = errors.New("region: format mismatch")

// ErrCorruption is returned when a blob index entry points at a
// segment run whose on-disk length is inconsistent with the index.
var ErrCorruption = errors.New("region: corrupt blob")
