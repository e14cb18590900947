package voxel

import (
	"github.com/google/uuid"

	"github.com/oriumgames/hytile/registry"
)

// ColumnCount is the number of columns in a chunk footprint (32x32).
const ColumnCount = SectionSize * SectionSize

// ColumnIndex computes the per-column array index for local (x,z),
// each in [0,32) (§3: "indexed by z*32+x").
func ColumnIndex(x, z int) int {
	return z*SectionSize + x
}

// Entity is a dynamic entity placed in a chunk (§3).
type Entity struct {
	TypeID   string
	UUID     uuid.UUID
	X, Y, Z  float64
	Yaw      float64
	Pitch    float64
	Roll     float64
	// Components holds subclass-specific component data. Spawn-marker
	// data is carried in Spawn, not here.
	Components map[string]any
	Spawn      *SpawnMarker
}

// SpawnMarker specializes an Entity with spawner behavior (§3).
type SpawnMarker struct {
	SpawnMarkerID  string
	RespawnTimeS   float64
	SpawnCount     int32
	SpawnRadius    float64
	Active         bool
	DespawnWhenFar bool
}

// PrefabMarker is a world-space prefab placement request (§3).
type PrefabMarker struct {
	X, Y, Z  int32
	Category string
	Path     string
}

// BlockHealth is a per-voxel damage record (§3).
type BlockHealth struct {
	Health         float32 // in [0,1]
	LastDamageTime int64
}

// blockHealthKey packs local (x,y,z) into a map key. y can range well
// beyond a byte so it gets the wide field.
func blockHealthKey(x, y, z int32) uint64 {
	return uint64(uint8(x)) | uint64(uint8(z))<<8 | uint64(uint32(y))<<16
}

// Chunk is a 32x32 column of Sections spanning [MinY,MaxY) (§3).
type Chunk struct {
	CX, CZ   int32
	MinY     int32
	MaxY     int32
	Sections []*Section

	Heightmap   []int16  // len 1024, Y of topmost solid block
	Tint        []int32  // len 1024, ARGB vegetation tint
	Environment []string // len 1024, environment id per column
	BiomeName   []string // len 1024

	waterTintOverride    []string  // len 1024, "" = none
	spawnDensityOverride []float32 // len 1024, NaN-free; use hasSpawnDensity to test presence
	hasSpawnDensity      []bool
	spawnTag             []string // len 1024, "" = none

	Entities      []Entity
	PrefabMarkers []PrefabMarker
	BlockHealth   map[uint64]BlockHealth
}

// New creates an empty chunk at (cx,cz) spanning [minY,maxY). Every
// column starts at heightmap 0, tint 0, and the registry's first
// environment/fallback biome (§3 Lifecycle).
func New(cx, cz int32, minY, maxY int32) *Chunk {
	sectionCount := int((maxY - minY) / SectionSize)
	sections := make([]*Section, sectionCount)
	for i := range sections {
		sections[i] = NewSection()
	}

	c := &Chunk{
		CX: cx, CZ: cz, MinY: minY, MaxY: maxY,
		Sections:             sections,
		Heightmap:            make([]int16, ColumnCount),
		Tint:                 make([]int32, ColumnCount),
		Environment:          make([]string, ColumnCount),
		BiomeName:            make([]string, ColumnCount),
		waterTintOverride:    make([]string, ColumnCount),
		spawnDensityOverride: make([]float32, ColumnCount),
		hasSpawnDensity:      make([]bool, ColumnCount),
		spawnTag:             make([]string, ColumnCount),
		BlockHealth:          make(map[uint64]BlockHealth),
	}
	defaultEnv := registry.Environments()[0].Name
	for i := range c.Environment {
		c.Environment[i] = defaultEnv
		c.BiomeName[i] = registry.FallbackBiomeName
	}
	return c
}

func validColumn(x, z int) bool {
	return x >= 0 && x < SectionSize && z >= 0 && z < SectionSize
}

func (c *Chunk) validY(y int32) bool {
	return y >= c.MinY && y < c.MaxY
}

// sectionFor resolves the section and its local y for a world-local y
// within [MinY,MaxY).
func (c *Chunk) sectionFor(y int32) (*Section, int) {
	rel := y - c.MinY
	idx := int(rel) / SectionSize
	localY := int(rel) % SectionSize
	if idx < 0 || idx >= len(c.Sections) {
		return nil, 0
	}
	return c.Sections[idx], localY
}

// SetHeightmap stores the heightmap value for column (x,z).
func (c *Chunk) SetHeightmap(x, z int, y int16) error {
	if !validColumn(x, z) {
		return ErrOutOfRange
	}
	c.Heightmap[ColumnIndex(x, z)] = y
	return nil
}

// SetTint stores the ARGB tint for column (x,z).
func (c *Chunk) SetTint(x, z int, argb int32) error {
	if !validColumn(x, z) {
		return ErrOutOfRange
	}
	c.Tint[ColumnIndex(x, z)] = argb
	return nil
}

// SetEnvironment stores the environment id for column (x,z).
func (c *Chunk) SetEnvironment(x, z int, envName string) error {
	if !validColumn(x, z) {
		return ErrOutOfRange
	}
	c.Environment[ColumnIndex(x, z)] = envName
	return nil
}

// SetBiomeName stores the biome name for column (x,z).
func (c *Chunk) SetBiomeName(x, z int, biomeName string) error {
	if !validColumn(x, z) {
		return ErrOutOfRange
	}
	c.BiomeName[ColumnIndex(x, z)] = biomeName
	return nil
}

// SetWaterTintOverride stores a hex water tint override for column
// (x,z); pass "" to clear it.
func (c *Chunk) SetWaterTintOverride(x, z int, hex string) error {
	if !validColumn(x, z) {
		return ErrOutOfRange
	}
	c.waterTintOverride[ColumnIndex(x, z)] = hex
	return nil
}

// WaterTintOverride returns the column's water tint override and
// whether one is set.
func (c *Chunk) WaterTintOverride(x, z int) (string, bool) {
	v := c.waterTintOverride[ColumnIndex(x, z)]
	return v, v != ""
}

// SetSpawnDensityOverride stores a spawn-density override (>=0) for
// column (x,z).
func (c *Chunk) SetSpawnDensityOverride(x, z int, density float32) error {
	if !validColumn(x, z) {
		return ErrOutOfRange
	}
	if density < 0 {
		return ErrOutOfRange
	}
	i := ColumnIndex(x, z)
	c.spawnDensityOverride[i] = density
	c.hasSpawnDensity[i] = true
	return nil
}

// SpawnDensityOverride returns the column's spawn density override and
// whether one is set.
func (c *Chunk) SpawnDensityOverride(x, z int) (float32, bool) {
	i := ColumnIndex(x, z)
	return c.spawnDensityOverride[i], c.hasSpawnDensity[i]
}

// SetSpawnTag stores a spawn tag for column (x,z); pass "" to clear it.
func (c *Chunk) SetSpawnTag(x, z int, tag string) error {
	if !validColumn(x, z) {
		return ErrOutOfRange
	}
	c.spawnTag[ColumnIndex(x, z)] = tag
	return nil
}

// SpawnTag returns the column's spawn tag and whether one is set.
func (c *Chunk) SpawnTag(x, z int) (string, bool) {
	v := c.spawnTag[ColumnIndex(x, z)]
	return v, v != ""
}

// AddPrefabMarker appends a prefab placement marker.
func (c *Chunk) AddPrefabMarker(m PrefabMarker) {
	c.PrefabMarkers = append(c.PrefabMarkers, m)
}

// AddEntity appends an entity to the chunk.
func (c *Chunk) AddEntity(e Entity) {
	c.Entities = append(c.Entities, e)
}

// SetBlockHealth upserts a block-health record at chunk-local (x,y,z).
func (c *Chunk) SetBlockHealth(x, y, z int32, health float32, lastDamageTime int64) {
	if c.BlockHealth == nil {
		c.BlockHealth = make(map[uint64]BlockHealth)
	}
	c.BlockHealth[blockHealthKey(x, y, z)] = BlockHealth{Health: health, LastDamageTime: lastDamageTime}
}

// BlockHealthEntry is a decoded BlockHealth record with its position,
// for serializers that cannot see the packed map key (§4.4).
type BlockHealthEntry struct {
	X, Y, Z int32
	BlockHealth
}

// BlockHealthEntries returns every block-health record with its
// position, in unspecified order.
func (c *Chunk) BlockHealthEntries() []BlockHealthEntry {
	out := make([]BlockHealthEntry, 0, len(c.BlockHealth))
	for key, bh := range c.BlockHealth {
		x := int32(uint8(key))
		z := int32(uint8(key >> 8))
		y := int32(uint32(key >> 16))
		out = append(out, BlockHealthEntry{X: x, Y: y, Z: z, BlockHealth: bh})
	}
	return out
}

// SectionAt resolves the section and within-section local y for
// chunk-local y. Ok is false when y is outside [MinY,MaxY).
func (c *Chunk) SectionAt(y int32) (section *Section, localY int, ok bool) {
	if !c.validY(y) {
		return nil, 0, false
	}
	s, ly := c.sectionFor(y)
	return s, ly, s != nil
}

// SetBlock places block at chunk-local (x,y,z), where x,z in [0,32)
// and y in [MinY,MaxY) (§4.2, delegating to the owning Section).
func (c *Chunk) SetBlock(x int, y int32, z int, block registry.Block) error {
	if !validColumn(x, z) || !c.validY(y) {
		return ErrOutOfRange
	}
	s, ly := c.sectionFor(y)
	return s.SetBlock(x, ly, z, block)
}

// SetFluid sets a fluid at chunk-local (x,y,z) with the given level.
func (c *Chunk) SetFluid(x int, y int32, z int, fluidID string, level uint8) error {
	if !validColumn(x, z) || !c.validY(y) {
		return ErrOutOfRange
	}
	s, ly := c.sectionFor(y)
	return s.SetFluid(x, ly, z, fluidID, level)
}

// ClearVoxel clears both block and fluid at chunk-local (x,y,z),
// leaving it Empty. The export pipeline calls it before placing a fluid
// (§4.6 steps 4 and 6).
func (c *Chunk) ClearVoxel(x int, y int32, z int) error {
	if !validColumn(x, z) || !c.validY(y) {
		return ErrOutOfRange
	}
	s, ly := c.sectionFor(y)
	empty, _ := registry.BlockByID(registry.EmptyBlockID)
	if err := s.SetBlock(x, ly, z, empty); err != nil {
		return err
	}
	return s.ClearFluid(x, ly, z)
}

// SetRotation stores a rotation at chunk-local (x,y,z).
func (c *Chunk) SetRotation(x int, y int32, z int, rot uint8) error {
	if !validColumn(x, z) || !c.validY(y) {
		return ErrOutOfRange
	}
	s, ly := c.sectionFor(y)
	return s.SetRotation(x, ly, z, rot)
}
