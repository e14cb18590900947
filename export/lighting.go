package export

import (
	"github.com/oriumgames/hytile/bsonchunk"
	"github.com/oriumgames/hytile/voxel"
)

// lightFuncFor builds the bsonchunk.LightFunc a chunk should encode
// with, per the driver's configured LightingMode (§4.6 "Lighting
// approximation", DESIGN.md Open Question decision).
func lightFuncFor(mode LightingMode, c *voxel.Chunk) bsonchunk.LightFunc {
	if mode == LightingFlat {
		return nil
	}
	return func(sectionIndex int) (local, global bsonchunk.LightLevel) {
		sectionMinY := c.MinY + int32(sectionIndex)*voxel.SectionSize
		sectionMaxY := sectionMinY + voxel.SectionSize // exclusive

		// Heightmap values are relative to MinY, as populateColumn stores them.
		belowAll := true
		for _, h := range c.Heightmap {
			if c.MinY+int32(h) < sectionMaxY {
				belowAll = false
				break
			}
		}
		if belowAll {
			return bsonchunk.LightDark, bsonchunk.LightDark
		}
		// At-or-above-all and mixed sections both bake fully lit.
		return bsonchunk.LightFull, bsonchunk.LightFull
	}
}
