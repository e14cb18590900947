package editorworld

// TileSize is the edge length of a painted tile in blocks (§4.6).
const TileSize = 128

// MemTile is an in-memory Tile backed by dense per-column arrays, used
// by tests and the cmd/hyexport demo in place of a real editor project.
type MemTile struct {
	height     [TileSize * TileSize]int32
	waterLevel [TileSize * TileSize]int32
	terrain    [TileSize * TileSize]int
	layers     map[Layer]*[TileSize * TileSize]int32
	bitLayers  map[Layer]*[TileSize * TileSize]bool
}

// NewMemTile returns a tile with height 0, no water, terrain index 0,
// and an automatic (255) biome layer everywhere.
func NewMemTile() *MemTile {
	t := &MemTile{
		layers:    make(map[Layer]*[TileSize * TileSize]int32),
		bitLayers: make(map[Layer]*[TileSize * TileSize]bool),
	}
	biome := &[TileSize * TileSize]int32{}
	for i := range biome {
		biome[i] = 255
	}
	t.layers[LayerBiome] = biome
	return t
}

func tileIndex(x, z int) int { return z*TileSize + x }

func (t *MemTile) SetHeight(x, z int, h int32) { t.height[tileIndex(x, z)] = h }
func (t *MemTile) SetWaterLevel(x, z int, wl int32) {
	t.waterLevel[tileIndex(x, z)] = wl
}
func (t *MemTile) SetTerrain(x, z int, terrainIndex int) {
	t.terrain[tileIndex(x, z)] = terrainIndex
}

func (t *MemTile) SetLayerValue(layer Layer, x, z int, v int32) {
	arr, ok := t.layers[layer]
	if !ok {
		arr = &[TileSize * TileSize]int32{}
		t.layers[layer] = arr
	}
	arr[tileIndex(x, z)] = v
}

func (t *MemTile) SetBitLayer(layer Layer, x, z int, v bool) {
	arr, ok := t.bitLayers[layer]
	if !ok {
		arr = &[TileSize * TileSize]bool{}
		t.bitLayers[layer] = arr
	}
	arr[tileIndex(x, z)] = v
}

func (t *MemTile) Height(x, z int) int32     { return t.height[tileIndex(x, z)] }
func (t *MemTile) WaterLevel(x, z int) int32 { return t.waterLevel[tileIndex(x, z)] }
func (t *MemTile) Terrain(x, z int) int      { return t.terrain[tileIndex(x, z)] }

func (t *MemTile) LayerValue(layer Layer, x, z int) int32 {
	arr, ok := t.layers[layer]
	if !ok {
		return 0
	}
	return arr[tileIndex(x, z)]
}

func (t *MemTile) BitLayer(layer Layer, x, z int) bool {
	arr, ok := t.bitLayers[layer]
	if !ok {
		return false
	}
	return arr[tileIndex(x, z)]
}

// MemDimension is an in-memory Dimension over a sparse set of MemTiles.
type MemDimension struct {
	tiles         map[[2]int32]*MemTile
	seed          int64
	minHeight     int32
	maxHeight     int32
	ceilingHeight *int32
	layers        []CustomObjectLayer
}

// NewMemDimension returns an empty dimension spanning [minHeight,maxHeight).
func NewMemDimension(seed int64, minHeight, maxHeight int32) *MemDimension {
	return &MemDimension{
		tiles:     make(map[[2]int32]*MemTile),
		seed:      seed,
		minHeight: minHeight,
		maxHeight: maxHeight,
	}
}

func (d *MemDimension) AddTile(tx, tz int32, tile *MemTile) {
	d.tiles[[2]int32{tx, tz}] = tile
}

func (d *MemDimension) SetCeilingHeight(h int32) { d.ceilingHeight = &h }

func (d *MemDimension) AddLayer(l CustomObjectLayer) { d.layers = append(d.layers, l) }

func (d *MemDimension) TileCoords() [][2]int32 {
	out := make([][2]int32, 0, len(d.tiles))
	for k := range d.tiles {
		out = append(out, k)
	}
	return out
}

func (d *MemDimension) Tile(tx, tz int32) (Tile, bool) {
	t, ok := d.tiles[[2]int32{tx, tz}]
	if !ok {
		return nil, false
	}
	return t, true
}

func (d *MemDimension) Seed() int64      { return d.seed }
func (d *MemDimension) MinHeight() int32 { return d.minHeight }
func (d *MemDimension) MaxHeight() int32 { return d.maxHeight }

func (d *MemDimension) CeilingHeight() (int32, bool) {
	if d.ceilingHeight == nil {
		return 0, false
	}
	return *d.ceilingHeight, true
}

func (d *MemDimension) Layers() []CustomObjectLayer { return d.layers }

// MemWorld is an in-memory World wrapping a set of dimensions.
type MemWorld struct {
	spawnX, spawnZ int32
	hasSpawn       bool
	gameType       GameType
	attributes     map[string]any
	dimensions     map[Anchor]Dimension
}

// NewMemWorld returns a world with no spawn point and GameAdventure.
func NewMemWorld() *MemWorld {
	return &MemWorld{
		attributes: make(map[string]any),
		dimensions: make(map[Anchor]Dimension),
	}
}

func (w *MemWorld) SetSpawnPoint(x, z int32) {
	w.spawnX, w.spawnZ, w.hasSpawn = x, z, true
}

func (w *MemWorld) SetGameType(g GameType) { w.gameType = g }

func (w *MemWorld) SetAttribute(key string, v any) { w.attributes[key] = v }

func (w *MemWorld) SetDimension(anchor Anchor, dim Dimension) { w.dimensions[anchor] = dim }

func (w *MemWorld) SpawnPoint() (int32, int32, bool) { return w.spawnX, w.spawnZ, w.hasSpawn }
func (w *MemWorld) GameType() GameType               { return w.gameType }

func (w *MemWorld) Attribute(key string) (any, bool) {
	v, ok := w.attributes[key]
	return v, ok
}

func (w *MemWorld) Dimension(anchor Anchor) (Dimension, bool) {
	d, ok := w.dimensions[anchor]
	return d, ok
}
