package bsonchunk

import "errors"

// ErrUnknownEnvironment is returned when a chunk column references an
// environment name absent from the registry (spec.md §7: Internal).
var ErrUnknownEnvironment = errors.New("bsonchunk: unknown environment name")

// ErrUnknownBiome is returned when a chunk column references a biome
// name absent from the registry (spec.md §7: Internal).
var ErrUnknownBiome = errors.New("bsonchunk: unknown biome name")

// ErrSectionCountMismatch is returned when a decoded document's section
// count does not match the chunk's configured Y range.
var ErrSectionCountMismatch = errors.New("bsonchunk: section count mismatch")
