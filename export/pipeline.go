package export

import (
	"fmt"

	"github.com/oriumgames/hytile/editorworld"
	"github.com/oriumgames/hytile/registry"
	"github.com/oriumgames/hytile/voxel"
)

// Fluid-layer encoding (§4.6 step 5): the painted value distinguishes
// "no override" from an explicit fluid kind. Not specified further by
// the original; settled here and recorded in DESIGN.md.
const (
	fluidLayerNone  = 0
	fluidLayerLava  = 2
	waterSourceID   = "Water_Source"
	lavaSourceID    = "Lava_Source"
	bedrockBlockID  = "Bedrock"
	defaultFluidLvl = 1
)

// PrefabDef resolves a painted prefab index to the asset it places
// (§4.6 step 9). The editor world exposes its catalog via
// World.Attribute(PrefabCatalogAttribute).
type PrefabDef struct {
	Category string
	Path     string
}

// PrefabCatalogAttribute is the World.Attribute key a driver looks up
// for a map[int32]PrefabDef painted-prefab-index catalog. Absent or
// wrong-typed attributes are treated as an empty catalog.
const PrefabCatalogAttribute = "prefabs"

// populateColumn fills one chunk-local column per §4.6 steps 1-10.
func populateColumn(c *voxel.Chunk, x, z int, tile editorworld.Tile, ex, ez int, prefabs map[int32]PrefabDef, stats *Stats) error {
	h := tile.Height(ex, ez)
	wl := tile.WaterLevel(ex, ez)
	terrainIdx := tile.Terrain(ex, ez)
	paintedBiome := uint8(tile.LayerValue(editorworld.LayerBiome, ex, ez))
	paintedFluid := tile.LayerValue(editorworld.LayerFluid, ex, ez)
	paintedEnv := tile.LayerValue(editorworld.LayerEnvironment, ex, ez)
	paintedEntity := tile.LayerValue(editorworld.LayerEntity, ex, ez)
	paintedPrefab := tile.LayerValue(editorworld.LayerPrefab, ex, ez)
	floodLava := tile.BitLayer(editorworld.LayerFloodLava, ex, ez)

	terrain, ok := registry.TerrainByIndex(terrainIdx)
	if !ok {
		return fmt.Errorf("export: column (%d,%d) painted unknown terrain index %d: %w", x, z, terrainIdx, ErrConfiguration)
	}

	// Step 2: resolve biome, environment, tint.
	biome, err := resolveBiome(paintedBiome, terrain.Name)
	if err != nil {
		return err
	}
	env, ok := registry.EnvironmentByID(biome.EnvironmentID)
	if !ok {
		return fmt.Errorf("export: biome %s references unknown environment %d: %w", biome.Name, biome.EnvironmentID, ErrConfiguration)
	}
	if err := c.SetBiomeName(x, z, biome.Name); err != nil {
		return err
	}
	if err := c.SetEnvironment(x, z, env.Name); err != nil {
		return err
	}
	if err := c.SetTint(x, z, int32(biome.TintARGB)); err != nil {
		return err
	}

	// Step 3: bedrock at logical y=0.
	bedrock, _ := registry.BlockByID(bedrockBlockID)
	if err := c.SetBlock(x, c.MinY, z, bedrock); err != nil {
		return err
	}

	// Step 4: terrain column fill for logical y in [1,h].
	for ly := int32(1); ly <= h; ly++ {
		worldY := c.MinY + ly
		if worldY >= c.MaxY {
			break
		}
		depth := h - ly
		block, ok := terrain.BlockAt(depth)
		if !ok {
			return fmt.Errorf("export: terrain %s has no block at depth %d: %w", terrain.Name, depth, ErrConfiguration)
		}
		if block.IsFluid {
			if err := c.ClearVoxel(x, worldY, z); err != nil {
				return err
			}
			if err := c.SetFluid(x, worldY, z, block.ID, defaultFluidLvl); err != nil {
				return err
			}
		} else if err := c.SetBlock(x, worldY, z, block); err != nil {
			return err
		}
	}

	// Step 5: fluid-layer / legacy lava-flood resolution.
	isLava := floodLava
	tintSet := false
	if paintedFluid != fluidLayerNone {
		isLava = paintedFluid == fluidLayerLava
		if !isLava && env.WaterTintHex != "" {
			if err := c.SetWaterTintOverride(x, z, env.WaterTintHex); err != nil {
				return err
			}
			tintSet = true
		}
	}

	// Step 6: water/lava pool fill for logical y in (h,wl].
	if wl > h {
		fluidID := waterSourceID
		if isLava {
			fluidID = lavaSourceID
		}
		for ly := h + 1; ly <= wl; ly++ {
			worldY := c.MinY + ly
			if worldY >= c.MaxY {
				break
			}
			if err := c.ClearVoxel(x, worldY, z); err != nil {
				return err
			}
			if err := c.SetFluid(x, worldY, z, fluidID, defaultFluidLvl); err != nil {
				return err
			}
		}
		stats.addWaterColumn()
	}

	// Step 7: painted environment override.
	if paintedEnv != 0 {
		envOverride, ok := registry.EnvironmentByID(uint32(paintedEnv))
		if !ok {
			return fmt.Errorf("export: column (%d,%d) painted unknown environment %d: %w", x, z, paintedEnv, ErrConfiguration)
		}
		if err := c.SetEnvironment(x, z, envOverride.Name); err != nil {
			return err
		}
		if !tintSet && envOverride.WaterTintHex != "" {
			if err := c.SetWaterTintOverride(x, z, envOverride.WaterTintHex); err != nil {
				return err
			}
		}
	}

	// Step 8: painted entity spawn annotation.
	if paintedEntity > 0 {
		density := float32(paintedEntity) / 100.0
		if err := c.SetSpawnDensityOverride(x, z, density); err != nil {
			return err
		}
		if err := c.SetSpawnTag(x, z, fmt.Sprintf("entity:%d", paintedEntity)); err != nil {
			return err
		}
	}

	// Step 9: painted prefab marker.
	if paintedPrefab > 0 {
		if def, ok := prefabs[paintedPrefab]; ok && def.Path != "" {
			c.AddPrefabMarker(voxel.PrefabMarker{X: int32(x), Y: c.MinY + h + 1, Z: int32(z), Category: def.Category, Path: def.Path})
			stats.addPrefabMarker()
		}
	}

	// Step 10: heightmap.
	if err := c.SetHeightmap(x, z, int16(h)); err != nil {
		return err
	}

	stats.addSurfaceArea(1)
	return nil
}

func resolveBiome(paintedBiome uint8, terrainName string) (registry.Biome, error) {
	if paintedBiome != registry.AutomaticBiomeID {
		b, ok := registry.BiomeByID(paintedBiome)
		if !ok {
			return registry.Biome{}, fmt.Errorf("export: unknown painted biome id %d: %w", paintedBiome, ErrConfiguration)
		}
		return b, nil
	}
	return registry.ResolveAutomaticBiome(terrainName), nil
}

// emitSpawnMarker appends a PlayerSpawn entity if the chunk contains
// the world spawn column, found by translating it into chunk-local
// coordinates; the entity itself is placed at world X/Z (§4.6 "Entity
// emission").
func emitSpawnMarker(c *voxel.Chunk, spawnX, spawnZ int32, stats *Stats) {
	lx := spawnX - c.CX*ChunkBlocks
	lz := spawnZ - c.CZ*ChunkBlocks
	if lx < 0 || lx >= ChunkBlocks || lz < 0 || lz >= ChunkBlocks {
		return
	}
	h := c.Heightmap[voxel.ColumnIndex(int(lx), int(lz))]
	c.AddEntity(voxel.Entity{
		TypeID: registry.PlayerSpawnMarkerID,
		X:      float64(spawnX) + 0.5,
		Y:      float64(c.MinY) + float64(h) + 1,
		Z:      float64(spawnZ) + 0.5,
		Spawn: &voxel.SpawnMarker{
			SpawnMarkerID:  registry.PlayerSpawnMarkerID,
			SpawnCount:     0,
			DespawnWhenFar: false,
		},
	})
	stats.addEntity()
}

// populateCeiling hangs a second terrain pass downward from a bedrock
// lid at ceilingHeight-1, using the painted height of the given tile as
// its depth and that tile's terrain (§4.6 "Ceiling dimension"). The
// driver passes the exported dimension's own tile; no separate ceiling
// dimension is read. Voxels between the two passes are not written.
func populateCeiling(c *voxel.Chunk, x, z int, tile editorworld.Tile, ex, ez int, ceilingHeight int32) error {
	depth := tile.Height(ex, ez)
	terrainIdx := tile.Terrain(ex, ez)
	terrain, ok := registry.TerrainByIndex(terrainIdx)
	if !ok {
		return fmt.Errorf("export: ceiling column (%d,%d) painted unknown terrain index %d: %w", x, z, terrainIdx, ErrConfiguration)
	}

	lidY := ceilingHeight - 1
	bedrock, _ := registry.BlockByID(bedrockBlockID)
	if lidY >= c.MinY && lidY < c.MaxY {
		if err := c.SetBlock(x, lidY, z, bedrock); err != nil {
			return err
		}
	}
	for d := int32(0); d < depth; d++ {
		worldY := lidY - 1 - d
		if worldY < c.MinY || worldY >= c.MaxY {
			continue
		}
		block, ok := terrain.BlockAt(d)
		if !ok {
			return fmt.Errorf("export: ceiling terrain %s has no block at depth %d: %w", terrain.Name, d, ErrConfiguration)
		}
		if err := c.SetBlock(x, worldY, z, block); err != nil {
			return err
		}
	}
	return nil
}
