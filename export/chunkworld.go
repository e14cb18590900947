package export

import (
	"github.com/google/uuid"

	"github.com/oriumgames/hytile/editorworld"
	"github.com/oriumgames/hytile/registry"
	"github.com/oriumgames/hytile/voxel"
)

// regionChunkWorld implements editorworld.ChunkWorld over the set of
// chunks populated for one region, keyed by world chunk coordinate
// (§9 design note: "a focused interface around the in-memory chunk
// map", not a full world abstraction).
type regionChunkWorld struct {
	chunks map[[2]int32]*voxel.Chunk
}

var _ editorworld.ChunkWorld = (*regionChunkWorld)(nil)

func newRegionChunkWorld(chunks map[[2]int32]*voxel.Chunk) *regionChunkWorld {
	return &regionChunkWorld{chunks: chunks}
}

func (w *regionChunkWorld) locate(x, y, z int32) (*voxel.Chunk, int, int32, int, bool) {
	hcx := floorDiv(x, ChunkBlocks)
	hcz := floorDiv(z, ChunkBlocks)
	c, ok := w.chunks[[2]int32{hcx, hcz}]
	if !ok {
		return nil, 0, 0, 0, false
	}
	lx := int(x - hcx*ChunkBlocks)
	lz := int(z - hcz*ChunkBlocks)
	return c, lx, y, lz, true
}

func (w *regionChunkWorld) ReadBlock(x, y, z int32) (string, bool) {
	c, lx, ly, lz, ok := w.locate(x, y, z)
	if !ok {
		return "", false
	}
	section, localY, ok := c.SectionAt(ly)
	if !ok {
		return "", false
	}
	return section.BlockID(lx, localY, lz), true
}

func (w *regionChunkWorld) WriteBlock(x, y, z int32, blockID string) error {
	c, lx, ly, lz, ok := w.locate(x, y, z)
	if !ok {
		return voxel.ErrOutOfRange
	}
	block, ok := registry.BlockByID(blockID)
	if !ok {
		return voxel.ErrOutOfRange
	}
	return c.SetBlock(lx, ly, lz, block)
}

func (w *regionChunkWorld) AddEntity(x, y, z float64, typeID string) error {
	hcx := floorDiv(int32(x), ChunkBlocks)
	hcz := floorDiv(int32(z), ChunkBlocks)
	c, ok := w.chunks[[2]int32{hcx, hcz}]
	if !ok {
		return voxel.ErrOutOfRange
	}
	id, err := uuid.NewRandom()
	if err != nil {
		return err
	}
	c.AddEntity(voxel.Entity{TypeID: typeID, UUID: id, X: x, Y: y, Z: z})
	return nil
}
