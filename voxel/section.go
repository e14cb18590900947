package voxel

import "github.com/oriumgames/hytile/registry"

// SectionSize is the edge length of a section in blocks (§3).
const SectionSize = 32

// VoxelCount is the number of voxels in one section.
const VoxelCount = SectionSize * SectionSize * SectionSize

// Index computes the dense voxel array index for local coordinates
// (x,y,z) each in [0,SectionSize). Traversal order is y outermost,
// then z, then x (§4.3) — this ordering is load-bearing across every
// palette writer downstream, so all section storage follows it too.
func Index(x, y, z int) int {
	return (y << 10) | (z << 5) | x
}

// Section is one 32x32x32 vertical slab of a Chunk (§3).
type Section struct {
	blocks     []string // Hytale block id per voxel, Index(x,y,z)
	fluidIdx   []uint16 // index into fluidPalette; 0 = no fluid
	fluidLevel []uint8  // 0..15, meaning "use default" when 0
	rotation   []uint8  // 0..63, 0 = unrotated

	fluidPalette []string // ordered, entry 0 is always registry.EmptyBlockID
}

// NewSection returns an empty section: every voxel Empty, no fluid, no
// rotation.
func NewSection() *Section {
	blocks := make([]string, VoxelCount)
	for i := range blocks {
		blocks[i] = registry.EmptyBlockID
	}
	return &Section{
		blocks:       blocks,
		fluidIdx:     make([]uint16, VoxelCount),
		fluidLevel:   make([]uint8, VoxelCount),
		rotation:     make([]uint8, VoxelCount),
		fluidPalette: []string{registry.EmptyBlockID},
	}
}

func validLocal(x, y, z int) bool {
	return x >= 0 && x < SectionSize && y >= 0 && y < SectionSize && z >= 0 && z < SectionSize
}

// SetBlock stores block at local (x,y,z). Clears any fluid at the voxel
// unless block is itself a fluid, in which case it behaves as
// ClearBlock followed by SetFluid at the fluid's default level (§4.2).
func (s *Section) SetBlock(x, y, z int, block registry.Block) error {
	if !validLocal(x, y, z) {
		return ErrOutOfRange
	}
	i := Index(x, y, z)
	if block.IsFluid {
		s.blocks[i] = registry.EmptyBlockID
		s.setFluidAt(i, block.ID, registry.DefaultFluidLevel(block.ID))
		return nil
	}
	if !registry.IsEmptyID(block.ID) {
		s.clearFluidAt(i)
	}
	s.blocks[i] = block.ID
	return nil
}

// SetFluid ensures fluidID is present in the section's fluid palette
// (inserted after Empty on first use), clears the voxel's block to
// Empty, and stores the fluid index and level (§4.2).
func (s *Section) SetFluid(x, y, z int, fluidID string, level uint8) error {
	if !validLocal(x, y, z) {
		return ErrOutOfRange
	}
	if level > 15 {
		return ErrOutOfRange
	}
	i := Index(x, y, z)
	s.blocks[i] = registry.EmptyBlockID
	s.setFluidAt(i, fluidID, level)
	return nil
}

func (s *Section) setFluidAt(i int, fluidID string, level uint8) {
	s.fluidIdx[i] = uint16(s.paletteIndex(fluidID))
	s.fluidLevel[i] = level
}

// paletteIndex returns fluidID's index in the fluid palette, inserting
// it after Empty on first use.
func (s *Section) paletteIndex(fluidID string) int {
	for idx, id := range s.fluidPalette {
		if id == fluidID {
			return idx
		}
	}
	s.fluidPalette = append(s.fluidPalette, fluidID)
	return len(s.fluidPalette) - 1
}

// ClearFluid resets the voxel's fluid index to 0 (no fluid).
func (s *Section) ClearFluid(x, y, z int) error {
	if !validLocal(x, y, z) {
		return ErrOutOfRange
	}
	s.clearFluidAt(Index(x, y, z))
	return nil
}

func (s *Section) clearFluidAt(i int) {
	s.fluidIdx[i] = 0
	s.fluidLevel[i] = 0
}

// SetRotation stores a 6-bit rotation at local (x,y,z).
func (s *Section) SetRotation(x, y, z int, rot uint8) error {
	if !validLocal(x, y, z) {
		return ErrOutOfRange
	}
	if rot > 63 {
		return ErrOutOfRange
	}
	s.rotation[Index(x, y, z)] = rot
	return nil
}

// BlockID returns the block id stored at local (x,y,z).
func (s *Section) BlockID(x, y, z int) string {
	return s.blocks[Index(x, y, z)]
}

// Fluid returns the fluid id and level stored at local (x,y,z). The id
// is registry.EmptyBlockID when no fluid occupies the voxel.
func (s *Section) Fluid(x, y, z int) (string, uint8) {
	i := Index(x, y, z)
	return s.fluidPalette[s.fluidIdx[i]], s.fluidLevel[i]
}

// Rotation returns the rotation stored at local (x,y,z).
func (s *Section) Rotation(x, y, z int) uint8 {
	return s.rotation[Index(x, y, z)]
}

// Blocks returns the dense block-id array in Index order. Callers must
// not mutate the returned slice.
func (s *Section) Blocks() []string { return s.blocks }

// FluidIndices returns the dense fluid-palette-index array in Index
// order. Callers must not mutate the returned slice.
func (s *Section) FluidIndices() []uint16 { return s.fluidIdx }

// FluidLevels returns the dense fluid-level array in Index order.
// Callers must not mutate the returned slice.
func (s *Section) FluidLevels() []uint8 { return s.fluidLevel }

// Rotations returns the dense rotation array in Index order. Callers
// must not mutate the returned slice.
func (s *Section) Rotations() []uint8 { return s.rotation }

// FluidPalette returns the section's fluid palette, entry 0 always
// registry.EmptyBlockID. Callers must not mutate the returned slice.
func (s *Section) FluidPalette() []string { return s.fluidPalette }

// IsEmpty reports whether the section holds no blocks, fluids, or
// rotations worth encoding (every voxel Empty, fluid palette only
// holds Empty, every rotation 0).
func (s *Section) IsEmpty() bool {
	if len(s.fluidPalette) > 1 {
		return false
	}
	for _, b := range s.blocks {
		if b != registry.EmptyBlockID {
			return false
		}
	}
	for _, r := range s.rotation {
		if r != 0 {
			return false
		}
	}
	return true
}
