package export

import "testing"

func TestFloorDiv(t *testing.T) {
	cases := []struct {
		a, b, want int32
	}{
		{7, 2, 3},
		{-7, 2, -4},
		{7, -2, -4},
		{-7, -2, 3},
		{0, 5, 0},
	}
	for _, c := range cases {
		if got := floorDiv(c.a, c.b); got != c.want {
			t.Errorf("floorDiv(%d,%d) = %d, want %d", c.a, c.b, got, c.want)
		}
	}
}

func TestBlockOffsetEmpty(t *testing.T) {
	dx, dz := BlockOffset(nil)
	if dx != 0 || dz != 0 {
		t.Errorf("BlockOffset(nil) = (%d,%d), want (0,0)", dx, dz)
	}
}

func TestBlockOffsetSingleTileCentersOnItself(t *testing.T) {
	dx, dz := BlockOffset([][2]int32{{3, -2}})
	if want := int32(-3 * 128); dx != want {
		t.Errorf("dx = %d, want %d", dx, want)
	}
	if want := int32(2 * 128); dz != want {
		t.Errorf("dz = %d, want %d", dz, want)
	}
}

func TestBlockOffsetBoundingBoxCenter(t *testing.T) {
	tiles := [][2]int32{{0, 0}, {1, 0}, {0, 1}, {1, 1}}
	dx, dz := BlockOffset(tiles)
	wantCenter := floorDiv(0+1, 2)
	if want := -(wantCenter * 128); dx != want {
		t.Errorf("dx = %d, want %d", dx, want)
	}
	if want := -(wantCenter * 128); dz != want {
		t.Errorf("dz = %d, want %d", dz, want)
	}
}

func TestChunkRangeForTileCoversFourByFourChunks(t *testing.T) {
	cx0, cz0, cx1, cz1 := ChunkRangeForTile(0, 0, 0, 0)
	if cx0 != 0 || cz0 != 0 || cx1 != 3 || cz1 != 3 {
		t.Errorf("range = (%d,%d,%d,%d), want (0,0,3,3)", cx0, cz0, cx1, cz1)
	}

	cx0, cz0, cx1, cz1 = ChunkRangeForTile(1, -1, 0, 0)
	if cx0 != 4 || cz0 != -4 || cx1 != 7 || cz1 != -1 {
		t.Errorf("range = (%d,%d,%d,%d), want (4,-4,7,-1)", cx0, cz0, cx1, cz1)
	}
}

func TestRegionsForTilesSingleTile(t *testing.T) {
	regions := RegionsForTiles([][2]int32{{0, 0}}, 0, 0)
	if len(regions) != 1 || regions[0] != [2]int32{0, 0} {
		t.Errorf("regions = %v, want [[0 0]]", regions)
	}
}

func TestRegionsForTilesSpansTwoRegions(t *testing.T) {
	// A tile whose chunk range straddles two regions (region edge at
	// chunk 32, i.e. editor tile coordinate 8) must report both.
	regions := RegionsForTiles([][2]int32{{7, 0}, {8, 0}}, 0, 0)
	seen := make(map[[2]int32]bool)
	for _, r := range regions {
		seen[r] = true
	}
	if !seen[[2]int32{0, 0}] || !seen[[2]int32{1, 0}] {
		t.Errorf("regions = %v, want to include both (0,0) and (1,0)", regions)
	}
}

func TestRegionsForTilesDeduplicates(t *testing.T) {
	regions := RegionsForTiles([][2]int32{{0, 0}, {0, 1}, {1, 0}, {1, 1}}, 0, 0)
	if len(regions) != 1 {
		t.Errorf("len(regions) = %d, want 1 (all four tiles share one region)", len(regions))
	}
}

func TestEditorColumnRoundTripsWithZeroOffset(t *testing.T) {
	tx, tz, ex, ez := editorColumn(0, 0, 5, 9, 0, 0)
	if tx != 0 || tz != 0 || ex != 5 || ez != 9 {
		t.Errorf("editorColumn = (%d,%d,%d,%d), want (0,0,5,9)", tx, tz, ex, ez)
	}

	tx, tz, ex, ez = editorColumn(4, 0, 0, 0, 0, 0)
	if tx != 1 || tz != 0 || ex != 0 || ez != 0 {
		t.Errorf("editorColumn = (%d,%d,%d,%d), want (1,0,0,0)", tx, tz, ex, ez)
	}
}

func TestEditorColumnUndoesBlockOffset(t *testing.T) {
	tiles := [][2]int32{{0, 0}, {1, 0}}
	dx, dz := BlockOffset(tiles)
	// world chunk (0,0) local column (0,0) maps back to tile (0,0) col (0,0)
	// once translated through the same offset used to place it.
	cx0, cz0, _, _ := ChunkRangeForTile(0, 0, dx, dz)
	tx, tz, ex, ez := editorColumn(cx0, cz0, 0, 0, dx, dz)
	if tx != 0 || tz != 0 || ex != 0 || ez != 0 {
		t.Errorf("editorColumn = (%d,%d,%d,%d), want (0,0,0,0)", tx, tz, ex, ez)
	}
}
