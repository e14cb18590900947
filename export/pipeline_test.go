package export

import (
	"testing"

	"github.com/oriumgames/hytile/editorworld"
	"github.com/oriumgames/hytile/registry"
	"github.com/oriumgames/hytile/voxel"
)

func newTestChunk() *voxel.Chunk {
	return voxel.New(0, 0, 0, 320)
}

func TestPopulateColumnFlatTerrain(t *testing.T) {
	tile := editorworld.NewMemTile()
	tile.SetHeight(0, 0, 5)
	tile.SetTerrain(0, 0, 0) // Grass

	c := newTestChunk()
	stats := &Stats{}
	if err := populateColumn(c, 0, 0, tile, 0, 0, nil, stats); err != nil {
		t.Fatalf("populateColumn: %v", err)
	}

	section, localY, ok := c.SectionAt(0)
	if !ok {
		t.Fatalf("SectionAt(0) failed")
	}
	if id := section.BlockID(0, localY, 0); id != bedrockBlockID {
		t.Errorf("bedrock column should be set at y=0, got %q", id)
	}

	_, localY5, ok := c.SectionAt(5)
	if !ok {
		t.Fatalf("SectionAt(5) failed")
	}
	section5, _, _ := c.SectionAt(5)
	if id := section5.BlockID(0, localY5, 0); id != "Soil_Grass" {
		t.Errorf("surface block at height 5 = %q, want Soil_Grass", id)
	}

	if got := c.Heightmap[voxel.ColumnIndex(0, 0)]; got != 5 {
		t.Errorf("heightmap = %d, want 5", got)
	}
	if snap := stats.Snapshot(); snap.SurfaceArea != 1 {
		t.Errorf("SurfaceArea = %d, want 1", snap.SurfaceArea)
	}
}

func TestPopulateColumnWaterPool(t *testing.T) {
	tile := editorworld.NewMemTile()
	tile.SetHeight(1, 1, 3)
	tile.SetWaterLevel(1, 1, 6)
	tile.SetTerrain(1, 1, 1) // Stone

	c := newTestChunk()
	stats := &Stats{}
	if err := populateColumn(c, 1, 1, tile, 1, 1, nil, stats); err != nil {
		t.Fatalf("populateColumn: %v", err)
	}

	section, localY, _ := c.SectionAt(5)
	if id, _ := section.Fluid(1, localY, 1); id != waterSourceID {
		t.Errorf("fluid at y=5 (inside pool) = %q, want %s", id, waterSourceID)
	}
	if snap := stats.Snapshot(); snap.WaterColumns != 1 {
		t.Errorf("WaterColumns = %d, want 1", snap.WaterColumns)
	}
}

func TestPopulateColumnLavaPoolViaFluidLayer(t *testing.T) {
	tile := editorworld.NewMemTile()
	tile.SetHeight(2, 2, 2)
	tile.SetWaterLevel(2, 2, 4)
	tile.SetTerrain(2, 2, 1)
	tile.SetLayerValue(editorworld.LayerFluid, 2, 2, fluidLayerLava)

	c := newTestChunk()
	stats := &Stats{}
	if err := populateColumn(c, 2, 2, tile, 2, 2, nil, stats); err != nil {
		t.Fatalf("populateColumn: %v", err)
	}

	section, localY, _ := c.SectionAt(3)
	if id, _ := section.Fluid(2, localY, 2); id != lavaSourceID {
		t.Errorf("fluid at y=3 (inside pool) = %q, want %s", id, lavaSourceID)
	}
}

func TestPopulateColumnLegacyFloodLavaBit(t *testing.T) {
	tile := editorworld.NewMemTile()
	tile.SetHeight(3, 3, 2)
	tile.SetWaterLevel(3, 3, 4)
	tile.SetTerrain(3, 3, 1)
	tile.SetBitLayer(editorworld.LayerFloodLava, 3, 3, true)

	c := newTestChunk()
	stats := &Stats{}
	if err := populateColumn(c, 3, 3, tile, 3, 3, nil, stats); err != nil {
		t.Fatalf("populateColumn: %v", err)
	}

	section, localY, _ := c.SectionAt(3)
	if id, _ := section.Fluid(3, localY, 3); id != lavaSourceID {
		t.Errorf("legacy flood-lava bit did not produce lava, got %q", id)
	}
}

func TestPopulateColumnAutomaticBiomeResolvesFromTerrain(t *testing.T) {
	tile := editorworld.NewMemTile() // biome layer defaults to Automatic (255)
	tile.SetHeight(0, 0, 1)
	forestIdx := -1
	for i, tr := range registry.Terrains() {
		if tr.Name == "Layered_Forest" {
			forestIdx = i
		}
	}
	if forestIdx < 0 {
		t.Fatal("Layered_Forest terrain not found in registry")
	}
	tile.SetTerrain(0, 0, forestIdx)

	c := newTestChunk()
	stats := &Stats{}
	if err := populateColumn(c, 0, 0, tile, 0, 0, nil, stats); err != nil {
		t.Fatalf("populateColumn: %v", err)
	}

	if got := c.BiomeName[voxel.ColumnIndex(0, 0)]; got != "Zone1_Forest" {
		t.Errorf("biome = %q, want Zone1_Forest", got)
	}
}

func TestPopulateColumnExplicitBiomeOverridesAutomatic(t *testing.T) {
	tile := editorworld.NewMemTile()
	tile.SetHeight(0, 0, 1)
	tile.SetTerrain(0, 0, 0)
	tile.SetLayerValue(editorworld.LayerBiome, 0, 0, 3) // Zone2_Desert

	c := newTestChunk()
	stats := &Stats{}
	if err := populateColumn(c, 0, 0, tile, 0, 0, nil, stats); err != nil {
		t.Fatalf("populateColumn: %v", err)
	}
	if got := c.BiomeName[voxel.ColumnIndex(0, 0)]; got != "Zone2_Desert" {
		t.Errorf("biome = %q, want Zone2_Desert", got)
	}
}

func TestPopulateColumnEntityLayerSetsDensityAndTag(t *testing.T) {
	tile := editorworld.NewMemTile()
	tile.SetHeight(0, 0, 1)
	tile.SetTerrain(0, 0, 0)
	tile.SetLayerValue(editorworld.LayerEntity, 0, 0, 250)

	c := newTestChunk()
	stats := &Stats{}
	if err := populateColumn(c, 0, 0, tile, 0, 0, nil, stats); err != nil {
		t.Fatalf("populateColumn: %v", err)
	}
	if d, ok := c.SpawnDensityOverride(0, 0); !ok || d != 2.5 {
		t.Errorf("SpawnDensityOverride = %v, %v, want 2.5, true", d, ok)
	}
	if tag, ok := c.SpawnTag(0, 0); !ok || tag != "entity:250" {
		t.Errorf("SpawnTag = %q, %v, want entity:250, true", tag, ok)
	}
	if snap := stats.Snapshot(); snap.SurfaceArea != 1 {
		t.Errorf("SurfaceArea = %d, want 1", snap.SurfaceArea)
	}
}

func TestPopulateColumnPrefabMarkerPlaced(t *testing.T) {
	tile := editorworld.NewMemTile()
	tile.SetHeight(0, 0, 4)
	tile.SetTerrain(0, 0, 0)
	tile.SetLayerValue(editorworld.LayerPrefab, 0, 0, 7)

	prefabs := map[int32]PrefabDef{7: {Category: "Structure", Path: "prefabs/hut.json"}}

	c := newTestChunk()
	stats := &Stats{}
	if err := populateColumn(c, 0, 0, tile, 0, 0, prefabs, stats); err != nil {
		t.Fatalf("populateColumn: %v", err)
	}
	if len(c.PrefabMarkers) != 1 {
		t.Fatalf("PrefabMarkers = %d, want 1", len(c.PrefabMarkers))
	}
	m := c.PrefabMarkers[0]
	if m.Path != "prefabs/hut.json" || m.Category != "Structure" {
		t.Errorf("marker = %+v, want path prefabs/hut.json category Structure", m)
	}
	if snap := stats.Snapshot(); snap.PrefabMarkers != 1 {
		t.Errorf("PrefabMarkers stat = %d, want 1", snap.PrefabMarkers)
	}
}

func TestPopulateColumnUnknownTerrainErrors(t *testing.T) {
	tile := editorworld.NewMemTile()
	tile.SetHeight(0, 0, 1)
	tile.SetTerrain(0, 0, 9999)

	c := newTestChunk()
	stats := &Stats{}
	if err := populateColumn(c, 0, 0, tile, 0, 0, nil, stats); err == nil {
		t.Fatal("expected error for unknown terrain index")
	}
}

func TestEmitSpawnMarkerWithinChunk(t *testing.T) {
	c := newTestChunk()
	c.Heightmap[voxel.ColumnIndex(5, 5)] = 10
	stats := &Stats{}
	emitSpawnMarker(c, 5, 5, stats)
	if len(c.Entities) != 1 {
		t.Fatalf("Entities = %d, want 1", len(c.Entities))
	}
	if c.Entities[0].TypeID != registry.PlayerSpawnMarkerID {
		t.Errorf("TypeID = %q, want %q", c.Entities[0].TypeID, registry.PlayerSpawnMarkerID)
	}
	if snap := stats.Snapshot(); snap.EntitiesPlaced != 1 {
		t.Errorf("EntitiesPlaced = %d, want 1", snap.EntitiesPlaced)
	}
}

func TestEmitSpawnMarkerOutsideChunkNoOp(t *testing.T) {
	c := newTestChunk()
	stats := &Stats{}
	emitSpawnMarker(c, 100, 100, stats)
	if len(c.Entities) != 0 {
		t.Errorf("Entities = %d, want 0 for an out-of-chunk spawn column", len(c.Entities))
	}
}
