package export

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"

	"github.com/oriumgames/hytile/bsonchunk"
	"github.com/oriumgames/hytile/editorworld"
	"github.com/oriumgames/hytile/region"
	"github.com/oriumgames/hytile/voxel"
)

// Driver exports one editorworld.Dimension at a time into the on-disk
// world layout described in §6. Grounded on the teacher's Provider:
// a long-lived value wrapping configuration plus a logger, with the
// actual work done by free functions it calls into (provider.go's
// saveInternal/writeWorld split).
type Driver struct {
	opts   Options
	logger *log.Logger
}

// NewDriver returns a Driver. A nil Options.Logger defaults to
// discarding output.
func NewDriver(opts Options) *Driver {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Driver{opts: opts, logger: logger}
}

// Export translates one dimension of w into region files under
// opts.TargetDir/chunks, then writes config.json and resources/ (§4.6).
func (d *Driver) Export(ctx context.Context, w editorworld.World, anchor editorworld.Anchor) (Stats, error) {
	dim, ok := w.Dimension(anchor)
	if !ok {
		return Stats{}, fmt.Errorf("export: dimension %s not present: %w", anchor, ErrConfiguration)
	}

	if err := os.MkdirAll(d.opts.TargetDir, 0o755); err != nil {
		return Stats{}, fmt.Errorf("export: create %s: %w", d.opts.TargetDir, err)
	}
	chunksDir := filepath.Join(d.opts.TargetDir, "chunks")
	if err := os.MkdirAll(chunksDir, 0o755); err != nil {
		return Stats{}, fmt.Errorf("export: create %s: %w", chunksDir, err)
	}

	tiles := dim.TileCoords()
	dx, dz := BlockOffset(tiles)
	regions := RegionsForTiles(tiles, dx, dz)
	layers := dim.Layers()

	spawnEX, spawnEZ, hasSpawn := w.SpawnPoint()
	var spawnWX, spawnWZ, spawnWY int32
	if hasSpawn {
		spawnWX, spawnWZ = spawnEX+dx, spawnEZ+dz
		spawnWY = dim.MinHeight() + spawnHeight(dim, spawnWX, spawnWZ, dx, dz) + 1
	}

	var prefabs map[int32]PrefabDef
	if v, ok := w.Attribute(PrefabCatalogAttribute); ok {
		if m, ok := v.(map[int32]PrefabDef); ok {
			prefabs = m
		}
	}

	stats := &Stats{}
	if err := d.runRegions(ctx, chunksDir, regions, dim, dx, dz, spawnWX, spawnWZ, hasSpawn, prefabs, layers, stats); err != nil {
		return stats.Snapshot(), err
	}

	id, err := uuid.NewRandom()
	if err != nil {
		return stats.Snapshot(), fmt.Errorf("export: generate world uuid: %w", err)
	}
	if err := writeDescriptor(d.opts.TargetDir, id, dim.Seed(), w.GameType(), spawnWX, spawnWY, spawnWZ); err != nil {
		return stats.Snapshot(), err
	}
	if err := writeResources(d.opts.TargetDir); err != nil {
		return stats.Snapshot(), err
	}

	return stats.Snapshot(), nil
}

// spawnHeight looks up the painted height at a translated world
// column, or 0 if no tile owns it.
func spawnHeight(dim editorworld.Dimension, worldX, worldZ, dx, dz int32) int32 {
	hcx := floorDiv(worldX, ChunkBlocks)
	hcz := floorDiv(worldZ, ChunkBlocks)
	lx := int(worldX - hcx*ChunkBlocks)
	lz := int(worldZ - hcz*ChunkBlocks)
	tx, tz, ex, ez := editorColumn(hcx, hcz, lx, lz, dx, dz)
	tile, ok := dim.Tile(tx, tz)
	if !ok {
		return 0
	}
	return tile.Height(ex, ez)
}

// runRegions fans the region work items out over a worker pool sized
// per §5, grounded on the teacher's channel-fan-out pattern in
// provider.go's background saver, generalized from a single
// coalescing goroutine to a fixed pool draining a work-item channel
// (the same shape mk48's Hub.Update uses for its per-client fan-out).
func (d *Driver) runRegions(ctx context.Context, chunksDir string, regions [][2]int32, dim editorworld.Dimension, dx, dz int32, spawnWX, spawnWZ int32, hasSpawn bool, prefabs map[int32]PrefabDef, layers []editorworld.CustomObjectLayer, stats *Stats) error {
	if len(regions) == 0 {
		return nil
	}

	hasCustom := len(layers) > 0
	workers := workerCount(d.opts, len(regions), hasCustom)

	jobs := make(chan [2]int32, len(regions))
	for _, r := range regions {
		jobs <- r
	}
	close(jobs)

	var mu sync.Mutex
	var firstErr error
	abort := make(chan struct{})
	recordErr := func(err error) {
		mu.Lock()
		defer mu.Unlock()
		if firstErr == nil {
			firstErr = err
			close(abort)
		}
	}
	aborted := func() bool {
		select {
		case <-abort:
			return true
		default:
			return false
		}
	}

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			for r := range jobs {
				if aborted() {
					continue
				}
				select {
				case <-ctx.Done():
					recordErr(ErrCancelled)
					continue
				default:
				}
				if err := d.exportRegion(ctx, chunksDir, r, dim, dx, dz, spawnWX, spawnWZ, hasSpawn, prefabs, layers, stats); err != nil {
					recordErr(err)
				}
			}
		}()
	}
	wg.Wait()

	return firstErr
}

// exportRegion implements the per-region pipeline (§4.6): populate
// every owned chunk slot, run custom-object layers if present, then
// write chunks to the region file in (lz,lx) ascending order (§5).
func (d *Driver) exportRegion(ctx context.Context, chunksDir string, r [2]int32, dim editorworld.Dimension, dx, dz int32, spawnWX, spawnWZ int32, hasSpawn bool, prefabs map[int32]PrefabDef, layers []editorworld.CustomObjectLayer, stats *Stats) error {
	select {
	case <-ctx.Done():
		return ErrCancelled
	default:
	}

	rx, rz := r[0], r[1]
	path := filepath.Join(chunksDir, fmt.Sprintf("%d.%d.region.bin", rx, rz))
	f, err := region.Create(path, rx, rz, d.opts.RegionOptions)
	if err != nil {
		return fmt.Errorf("export: create region %s: %w", path, err)
	}
	defer f.Close()

	minY, maxY := dim.MinHeight(), dim.MaxHeight()
	ceilingHeight, hasCeiling := dim.CeilingHeight()

	buffered := len(layers) > 0
	var chunkMap map[[2]int32]*voxel.Chunk
	if buffered {
		chunkMap = make(map[[2]int32]*voxel.Chunk, RegionChunks*RegionChunks)
	}

	chunkCounter := 0
	for lz := 0; lz < RegionChunks; lz++ {
		for lx := 0; lx < RegionChunks; lx++ {
			chunkCounter++
			if chunkCounter%32 == 0 {
				select {
				case <-ctx.Done():
					return ErrCancelled
				default:
				}
			}

			hcx := rx*RegionChunks + int32(lx)
			hcz := rz*RegionChunks + int32(lz)

			tx0, tz0, _, _ := editorColumn(hcx, hcz, 0, 0, dx, dz)
			tile, ok := dim.Tile(tx0, tz0)
			if !ok {
				continue
			}

			c := voxel.New(hcx, hcz, minY, maxY)
			for z := 0; z < ChunkBlocks; z++ {
				for x := 0; x < ChunkBlocks; x++ {
					_, _, ex, ez := editorColumn(hcx, hcz, x, z, dx, dz)
					if err := populateColumn(c, x, z, tile, ex, ez, prefabs, stats); err != nil {
						return err
					}
					if hasCeiling {
						if err := populateCeiling(c, x, z, tile, ex, ez, ceilingHeight); err != nil {
							return err
						}
					}
				}
			}

			if hasSpawn {
				emitSpawnMarker(c, spawnWX, spawnWZ, stats)
			}

			if buffered {
				chunkMap[[2]int32{hcx, hcz}] = c
			} else if err := d.writeChunk(f, lx, lz, c, stats); err != nil {
				return err
			}
		}
	}

	if buffered {
		if err := d.runCustomLayers(rx, rz, minY, maxY, chunkMap, layers); err != nil {
			return err
		}
		for lz := 0; lz < RegionChunks; lz++ {
			for lx := 0; lx < RegionChunks; lx++ {
				hcx := rx*RegionChunks + int32(lx)
				hcz := rz*RegionChunks + int32(lz)
				c, ok := chunkMap[[2]int32{hcx, hcz}]
				if !ok {
					continue
				}
				if err := d.writeChunk(f, lx, lz, c, stats); err != nil {
					return err
				}
			}
		}
	}

	if err := f.Flush(); err != nil {
		return err
	}
	stats.addRegion()
	return nil
}

func (d *Driver) writeChunk(f *region.File, lx, lz int, c *voxel.Chunk, stats *Stats) error {
	lightFunc := lightFuncFor(d.opts.Lighting, c)
	if err := f.WriteChunk(lx, lz, c, bsonchunk.Options{Light: lightFunc}); err != nil {
		return err
	}
	stats.addChunk()
	return nil
}

func (d *Driver) runCustomLayers(rx, rz, minY, maxY int32, chunkMap map[[2]int32]*voxel.Chunk, layers []editorworld.CustomObjectLayer) error {
	area := editorworld.Rect{
		MinX: rx * RegionBlocks, MinZ: rz * RegionBlocks,
		MaxX: rx*RegionBlocks + RegionBlocks - 1, MaxZ: rz*RegionBlocks + RegionBlocks - 1,
	}
	box := editorworld.BoundingBox{
		MinX: area.MinX, MinY: minY, MinZ: area.MinZ,
		MaxX: area.MaxX, MaxY: maxY - 1, MaxZ: area.MaxZ,
	}
	cw := newRegionChunkWorld(chunkMap)
	for _, layer := range layers {
		fixups, err := layer.AddFeatures(area, box, cw)
		if err != nil {
			return fmt.Errorf("export: custom layer %s: %w", layer.Name(), err)
		}
		for _, fx := range fixups {
			if !area.Contains(fx.X, fx.Z) {
				d.logger.Printf("export: discarding fixup outside region (%d,%d): %s", rx, rz, fx.Description)
			}
		}
	}
	return nil
}
