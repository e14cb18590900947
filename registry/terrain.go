package registry

// TerrainKind distinguishes the two persisted terrain-record shapes the
// source format carries (spec.md §9 open question): a compact
// single-block form, and a larger layered form addressed by depth
// ("Row[]" + "Mode"). We settled on the compact form as canonical for
// newly authored terrain (see DESIGN.md); the layered form is also
// resolved by BlockAt, and the built-in catalog carries a layered entry
// that the export uses like the compact ones.
type TerrainKind uint8

const (
	TerrainCompact TerrainKind = iota
	TerrainLayered
)

// TerrainRow is one band of a layered terrain definition: the block
// placed when depth (distance below the surface, §4.6 step 4) falls in
// [MinDepth, MaxDepth].
type TerrainRow struct {
	MinDepth int32
	MaxDepth int32
	Block    string
}

// Terrain is a registry entry resolving a painted terrain index to the
// block/biome/colour triple the export driver needs (§4.1).
type Terrain struct {
	Name  string
	Kind  TerrainKind
	Block string       // TerrainCompact: the single block id used at every depth
	Rows  []TerrainRow // TerrainLayered: depth-banded rows, first match wins
	// BiomeID and ColorRGB are carried with the entry; the export
	// pipeline does not read them. A column's biome comes from its
	// painted biome or from Automatic resolution.
	BiomeID    *uint8
	ColorRGB   *uint32
}

// BlockAt resolves the block this terrain places at the given depth
// (0 = surface block, increasing downward, §4.6 step 4).
func (t Terrain) BlockAt(depth int32) (Block, bool) {
	switch t.Kind {
	case TerrainLayered:
		for _, row := range t.Rows {
			if depth >= row.MinDepth && depth <= row.MaxDepth {
				return BlockByID(row.Block)
			}
		}
		if len(t.Rows) > 0 {
			return BlockByID(t.Rows[len(t.Rows)-1].Block)
		}
		return Block{}, false
	default:
		return BlockByID(t.Block)
	}
}

var terrains = []Terrain{
	{Name: "Grass", Kind: TerrainCompact, Block: "Soil_Grass"},
	{Name: "Stone", Kind: TerrainCompact, Block: "Rock_Stone"},
	{Name: "Sand", Kind: TerrainCompact, Block: "Soil_Sand"},
	{Name: "Snow", Kind: TerrainCompact, Block: "Snow_Layer"},
	{Name: "Mud", Kind: TerrainCompact, Block: "Soil_Mud"},
	{
		Name: "Layered_Forest",
		Kind: TerrainLayered,
		Rows: []TerrainRow{
			{MinDepth: 0, MaxDepth: 0, Block: "Soil_Grass"},
			{MinDepth: 1, MaxDepth: 4, Block: "Soil_Dirt"},
			{MinDepth: 5, MaxDepth: 1 << 30, Block: "Rock_Stone"},
		},
	},
}

var terrainByName map[string]int

func init() {
	terrainByName = make(map[string]int, len(terrains))
	for i, t := range terrains {
		terrainByName[t.Name] = i
	}
}

// TerrainByName looks a terrain entry up by its declared name.
func TerrainByName(name string) (Terrain, bool) {
	i, ok := terrainByName[name]
	if !ok {
		return Terrain{}, false
	}
	return terrains[i], true
}

// TerrainByIndex looks a terrain entry up by the painted index the
// editor stores per column.
func TerrainByIndex(i int) (Terrain, bool) {
	if i < 0 || i >= len(terrains) {
		return Terrain{}, false
	}
	return terrains[i], true
}

// Terrains returns the full catalog in declared order.
func Terrains() []Terrain {
	return terrains
}

// TerrainRef is the identity-preserving form a persisted terrain record
// self-substitutes into on deserialize (spec.md §9 design note):
// documents carry only the lookup key, and callers resolve against the
// live registry rather than an embedded copy of the definition.
type TerrainRef struct {
	Key string
}

// Resolve looks the referenced terrain up in the current registry.
func (r TerrainRef) Resolve() (Terrain, bool) {
	return TerrainByName(r.Key)
}
