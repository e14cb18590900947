package registry

import "strings"

// AutomaticBiomeID is the sentinel painted-biome value meaning "derive
// from terrain at export time" (§4.1).
const AutomaticBiomeID = 255

// FallbackBiomeName is used when terrain->biome keyword matching finds
// no candidate.
const FallbackBiomeName = "Zone1_Plains"

// Biome is a registry entry for a Hytale biome.
type Biome struct {
	ID              uint8
	Name            string
	DisplayName     string
	EnvironmentID   uint32
	TintARGB        uint32
	DisplayColorRGB uint32
	Category        string
}

var biomes = []Biome{
	{ID: 1, Name: "Zone1_Plains", DisplayName: "Plains", EnvironmentID: 1, TintARGB: 0xFF5B9E28, DisplayColorRGB: 0x8DB360, Category: "Temperate"},
	{ID: 2, Name: "Zone1_Forest", DisplayName: "Forest", EnvironmentID: 1, TintARGB: 0xFF4A8F1C, DisplayColorRGB: 0x56621E, Category: "Temperate"},
	{ID: 3, Name: "Zone2_Desert", DisplayName: "Desert", EnvironmentID: 2, TintARGB: 0xFFBFA76F, DisplayColorRGB: 0xD2B98B, Category: "Arid"},
	{ID: 4, Name: "Zone3_Tundra", DisplayName: "Tundra", EnvironmentID: 3, TintARGB: 0xFF8FAFBF, DisplayColorRGB: 0xA6C6D6, Category: "Cold"},
	{ID: 5, Name: "Zone4_Swamp", DisplayName: "Swamp", EnvironmentID: 4, TintARGB: 0xFF4E5B2E, DisplayColorRGB: 0x4C5B2E, Category: "Wetland"},
	{ID: 6, Name: "Zone5_Mountains", DisplayName: "Mountains", EnvironmentID: 5, TintARGB: 0xFF7C8B94, DisplayColorRGB: 0x7C8B94, Category: "Alpine"},
}

var biomeByID map[uint8]int
var biomeByName map[string]int

func init() {
	biomeByID = make(map[uint8]int, len(biomes))
	biomeByName = make(map[string]int, len(biomes))
	for i, b := range biomes {
		biomeByID[b.ID] = i
		biomeByName[b.Name] = i
	}
}

// BiomeByID looks a biome up by its numeric id.
func BiomeByID(id uint8) (Biome, bool) {
	i, ok := biomeByID[id]
	if !ok {
		return Biome{}, false
	}
	return biomes[i], true
}

// BiomeByName looks a biome up by its declared name.
func BiomeByName(name string) (Biome, bool) {
	i, ok := biomeByName[name]
	if !ok {
		return Biome{}, false
	}
	return biomes[i], true
}

// Biomes returns the full catalog in declared order.
func Biomes() []Biome {
	return biomes
}

// terrainBiomeKeywords maps a lowercase substring of a terrain name to
// the biome it implies, checked in declaration order (first match
// wins). Used by ResolveAutomaticBiome.
var terrainBiomeKeywords = []struct {
	keyword string
	biome   string
}{
	{"sand", "Zone2_Desert"},
	{"desert", "Zone2_Desert"},
	{"snow", "Zone3_Tundra"},
	{"ice", "Zone3_Tundra"},
	{"tundra", "Zone3_Tundra"},
	{"mud", "Zone4_Swamp"},
	{"swamp", "Zone4_Swamp"},
	{"stone", "Zone5_Mountains"},
	{"rock", "Zone5_Mountains"},
	{"mountain", "Zone5_Mountains"},
	{"forest", "Zone1_Forest"},
	{"tree", "Zone1_Forest"},
	{"grass", "Zone1_Plains"},
}

// ResolveAutomaticBiome derives a biome from a terrain name via fixed
// keyword matching, falling back to FallbackBiomeName (§4.1).
func ResolveAutomaticBiome(terrainName string) Biome {
	lower := strings.ToLower(terrainName)
	for _, kw := range terrainBiomeKeywords {
		if strings.Contains(lower, kw.keyword) {
			if b, ok := BiomeByName(kw.biome); ok {
				return b
			}
		}
	}
	b, _ := BiomeByName(FallbackBiomeName)
	return b
}
