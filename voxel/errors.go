package voxel

import "errors"

// ErrOutOfRange is returned by coordinate setters when (x,y,z) falls
// outside the chunk's defined domain (spec.md §7 taxonomy: OutOfRange).
var ErrOutOfRange = errors.New("voxel: coordinate out of range")
