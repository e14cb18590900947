// Package editorworld declares the contracts the export driver consumes
// from an editor project: painted tiles, dimensions, the world itself,
// and custom-object layer editors (§6). Nothing here persists state; it
// is the read-only surface the export package drives.
package editorworld

// Anchor identifies a dimension by its role within a world (§6
// World.dimension).
type Anchor string

const (
	AnchorOverworld Anchor = "Overworld"
	AnchorCeiling   Anchor = "Ceiling"
)

// GameType reports the editor's configured game mode, used to pick
// config.json's GameMode (§4.6, §6).
type GameType int

const (
	GameAdventure GameType = iota
	GameCreative
)

// Layer names a painted per-column annotation layer a Tile exposes
// (§4.6 steps 1-9).
type Layer string

const (
	LayerBiome       Layer = "Biome"
	LayerFluid       Layer = "Fluid"
	LayerEnvironment Layer = "Environment"
	LayerEntity      Layer = "Entity"
	LayerPrefab      Layer = "Prefab"
	LayerFloodLava   Layer = "FloodLava"
)

// Tile is a 128x128-block painted area of a dimension (§6).
type Tile interface {
	// Height returns the painted surface height at tile-local (x,z).
	Height(x, z int) int32
	// WaterLevel returns the painted water level at tile-local (x,z).
	// 0 means no water.
	WaterLevel(x, z int) int32
	// Terrain returns the painted terrain index at tile-local (x,z).
	Terrain(x, z int) int
	// LayerValue returns a painted integer layer's value at tile-local
	// (x,z). Biome uses registry.AutomaticBiomeID (255) to mean
	// "derive from terrain".
	LayerValue(layer Layer, x, z int) int32
	// BitLayer returns a painted boolean layer's value at tile-local
	// (x,z), e.g. the legacy "flood with lava" bit.
	BitLayer(layer Layer, x, z int) bool
}

// CustomObjectLayer places features beyond per-column painting — trees,
// structures, anything needing a multi-chunk view (§6 PrefabEditor, §9
// design note).
type CustomObjectLayer interface {
	Name() string
	// AddFeatures is invoked once per exported region with a view
	// scoped to that region. Fixups naming a position outside the
	// region are discarded by the caller with a log note.
	AddFeatures(area Rect, box BoundingBox, world ChunkWorld) ([]Fixup, error)
}

// Dimension is one painted world layer: the overworld, or an optional
// ceiling dimension (§6).
type Dimension interface {
	// TileCoords returns every painted tile's editor-space coordinate.
	TileCoords() [][2]int32
	Tile(tx, tz int32) (Tile, bool)
	Seed() int64
	MinHeight() int32
	MaxHeight() int32
	// CeilingHeight returns the configured ceiling lid height, when
	// this dimension hangs from one (§4.6 "Ceiling dimension").
	CeilingHeight() (int32, bool)
	// Layers returns the dimension's custom-object layers, if any.
	// A non-empty result forces the export driver's buffered mode and
	// caps concurrency to 1 region at a time (§5).
	Layers() []CustomObjectLayer
}

// World is the editor project exported from (§6).
type World interface {
	// SpawnPoint returns the configured world spawn in untranslated
	// editor coordinates, if one is set.
	SpawnPoint() (x, z int32, ok bool)
	GameType() GameType
	Attribute(key string) (value any, ok bool)
	Dimension(anchor Anchor) (Dimension, bool)
}

// Rect is an inclusive block-coordinate rectangle in the XZ plane, in
// already-translated (post block_offset) world coordinates.
type Rect struct {
	MinX, MinZ int32
	MaxX, MaxZ int32
}

// Contains reports whether (x,z) falls within the rectangle.
func (r Rect) Contains(x, z int32) bool {
	return x >= r.MinX && x <= r.MaxX && z >= r.MinZ && z <= r.MaxZ
}

// BoundingBox is an inclusive block-coordinate volume.
type BoundingBox struct {
	MinX, MinY, MinZ int32
	MaxX, MaxY, MaxZ int32
}

// Fixup is a deferred correction a CustomObjectLayer asks the driver to
// apply, named by absolute world position (§6, §9). Fixups that land
// outside the region they were produced for are discarded.
type Fixup struct {
	X, Y, Z     int32
	Description string
}

// ChunkWorld is the absolute-coordinate read/write view a
// CustomObjectLayer gets into the region currently being populated
// (§9 design note: "a focused interface around the in-memory chunk
// map", not a full world abstraction).
type ChunkWorld interface {
	ReadBlock(x, y, z int32) (blockID string, ok bool)
	WriteBlock(x, y, z int32, blockID string) error
	AddEntity(x, y, z float64, typeID string) error
}
