package registry

// Environment is a registry entry describing a named atmosphere/water
// parameter set attached per column (§3, §4.1).
type Environment struct {
	ID            uint32 // 1-based
	Name          string
	DisplayName   string
	ParentName    string // empty if none
	WaterTintHex  string // empty if none
	SpawnDensity  float32
	Category      string
}

var environments = []Environment{
	{ID: 1, Name: "Env_Zone1_Plains", DisplayName: "Plains Atmosphere", SpawnDensity: 1.0, Category: "Temperate"},
	{ID: 2, Name: "Env_Zone2_Desert", DisplayName: "Desert Atmosphere", ParentName: "Env_Zone1_Plains", SpawnDensity: 0.6, Category: "Arid"},
	{ID: 3, Name: "Env_Zone3_Tundra", DisplayName: "Tundra Atmosphere", WaterTintHex: "#A6C6D6", SpawnDensity: 0.4, Category: "Cold"},
	{ID: 4, Name: "Env_Zone4_Swamp", DisplayName: "Swamp Atmosphere", WaterTintHex: "#4C5B2E", SpawnDensity: 1.2, Category: "Wetland"},
	{ID: 5, Name: "Env_Zone5_Mountains", DisplayName: "Mountain Atmosphere", SpawnDensity: 0.5, Category: "Alpine"},
}

var environmentByID map[uint32]int
var environmentByName map[string]int

func init() {
	environmentByID = make(map[uint32]int, len(environments))
	environmentByName = make(map[string]int, len(environments))
	for i, e := range environments {
		environmentByID[e.ID] = i
		environmentByName[e.Name] = i
	}
}

// EnvironmentByID looks an environment up by its 1-based numeric id.
func EnvironmentByID(id uint32) (Environment, bool) {
	i, ok := environmentByID[id]
	if !ok {
		return Environment{}, false
	}
	return environments[i], true
}

// EnvironmentByName looks an environment up by its declared name.
func EnvironmentByName(name string) (Environment, bool) {
	i, ok := environmentByName[name]
	if !ok {
		return Environment{}, false
	}
	return environments[i], true
}

// Environments returns the full catalog in declared order.
func Environments() []Environment {
	return environments
}
