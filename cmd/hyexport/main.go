// Command hyexport demos the export driver against an in-memory
// editorworld fixture, the way convert/main.go demoed the schematic
// converter against a single input file.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/oriumgames/hytile/editorworld"
	"github.com/oriumgames/hytile/export"
)

func main() {
	outDir := flag.String("out", "world-out", "output world directory")
	size := flag.Int("tiles", 1, "edge length, in tiles, of the square demo selection")
	flag.Parse()

	if *size < 1 {
		fmt.Println("tiles must be >= 1")
		os.Exit(1)
	}

	world := demoWorld(*size)

	fmt.Printf("Exporting %dx%d tile(s) to %s\n", *size, *size, *outDir)
	driver := export.NewDriver(export.Options{TargetDir: *outDir})
	stats, err := driver.Export(context.Background(), world, editorworld.AnchorOverworld)
	if err != nil {
		fmt.Printf("export failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Done: %d chunks, %d regions, %d water columns, %d entities\n",
		stats.ChunksWritten, stats.RegionsWritten, stats.WaterColumns, stats.EntitiesPlaced)
}

// demoWorld builds a size x size tile selection of flat grass
// terrain (height 64) with a spawn point at editor column (10,10).
func demoWorld(size int) *editorworld.MemWorld {
	dim := editorworld.NewMemDimension(0, 0, 320)
	for tx := 0; tx < size; tx++ {
		for tz := 0; tz < size; tz++ {
			tile := editorworld.NewMemTile()
			for x := 0; x < editorworld.TileSize; x++ {
				for z := 0; z < editorworld.TileSize; z++ {
					tile.SetHeight(x, z, 64)
					tile.SetTerrain(x, z, 0) // Grass, see registry.Terrains()
				}
			}
			dim.AddTile(int32(tx), int32(tz), tile)
		}
	}

	w := editorworld.NewMemWorld()
	w.SetGameType(editorworld.GameAdventure)
	w.SetSpawnPoint(10, 10)
	w.SetDimension(editorworld.AnchorOverworld, dim)
	return w
}
