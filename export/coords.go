package export

import "github.com/oriumgames/hytile/editorworld"

// ChunkBlocks is the edge length of a Hytale chunk in blocks.
const ChunkBlocks = 32

// RegionChunks is the edge length of a region in chunks.
const RegionChunks = 32

// RegionBlocks is the edge length of a region in blocks.
const RegionBlocks = ChunkBlocks * RegionChunks

// TileChunks is the edge length of an editor tile in chunks.
const TileChunks = editorworld.TileSize / ChunkBlocks

func floorDiv(a, b int32) int32 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// BlockOffset computes the centering translation for a set of editor
// tile coordinates (§4.6): the bounding box's integer center, negated
// and scaled to blocks, so the exported content straddles world
// origin. Returns (0,0) for an empty tile set.
func BlockOffset(tiles [][2]int32) (dx, dz int32) {
	if len(tiles) == 0 {
		return 0, 0
	}
	minX, maxX := tiles[0][0], tiles[0][0]
	minZ, maxZ := tiles[0][1], tiles[0][1]
	for _, t := range tiles[1:] {
		if t[0] < minX {
			minX = t[0]
		}
		if t[0] > maxX {
			maxX = t[0]
		}
		if t[1] < minZ {
			minZ = t[1]
		}
		if t[1] > maxZ {
			maxZ = t[1]
		}
	}
	cx := floorDiv(minX+maxX, 2)
	cz := floorDiv(minZ+maxZ, 2)
	return -(cx * editorworld.TileSize), -(cz * editorworld.TileSize)
}

// ChunkRangeForTile returns the inclusive chunk-coordinate range a
// single editor tile covers, in translated (post block_offset) world
// chunk coordinates.
func ChunkRangeForTile(tx, tz, dx, dz int32) (cx0, cz0, cx1, cz1 int32) {
	blockX0 := tx*editorworld.TileSize + dx
	blockZ0 := tz*editorworld.TileSize + dz
	cx0 = floorDiv(blockX0, ChunkBlocks)
	cz0 = floorDiv(blockZ0, ChunkBlocks)
	cx1 = cx0 + TileChunks - 1
	cz1 = cz0 + TileChunks - 1
	return
}

// RegionCoord maps a world chunk coordinate to its owning region
// coordinate.
func RegionCoord(chunkCoord int32) int32 {
	return floorDiv(chunkCoord, RegionChunks)
}

// RegionsForTiles computes the union of Hytale regions spanned by the
// given (untranslated) editor tile set, inclusive of the far-edge
// chunk of every tile (§4.6 "Region selection").
func RegionsForTiles(tiles [][2]int32, dx, dz int32) [][2]int32 {
	seen := make(map[[2]int32]bool)
	var out [][2]int32
	for _, t := range tiles {
		cx0, cz0, cx1, cz1 := ChunkRangeForTile(t[0], t[1], dx, dz)
		for cx := cx0; cx <= cx1; cx++ {
			for cz := cz0; cz <= cz1; cz++ {
				key := [2]int32{RegionCoord(cx), RegionCoord(cz)}
				if !seen[key] {
					seen[key] = true
					out = append(out, key)
				}
			}
		}
	}
	return out
}

// editorColumn translates a world-chunk-local column to its owning
// editor tile coordinate and tile-local column, inverse-translating by
// (dx,dz) first.
func editorColumn(hcx, hcz int32, x, z int, dx, dz int32) (tx, tz int32, ex, ez int) {
	worldX := hcx*ChunkBlocks + int32(x)
	worldZ := hcz*ChunkBlocks + int32(z)
	editorX := worldX - dx
	editorZ := worldZ - dz
	tx = floorDiv(editorX, editorworld.TileSize)
	tz = floorDiv(editorZ, editorworld.TileSize)
	ex = int(editorX - tx*editorworld.TileSize)
	ez = int(editorZ - tz*editorworld.TileSize)
	return
}
