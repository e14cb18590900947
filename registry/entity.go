package registry

// SpawnType categorizes an entity type's spawn behavior (§4.1).
type SpawnType uint8

const (
	SpawnPassive SpawnType = iota
	SpawnHostile
	SpawnNeutral
	SpawnAquatic
	SpawnBoss
)

func (s SpawnType) String() string {
	switch s {
	case SpawnPassive:
		return "Passive"
	case SpawnHostile:
		return "Hostile"
	case SpawnNeutral:
		return "Neutral"
	case SpawnAquatic:
		return "Aquatic"
	case SpawnBoss:
		return "Boss"
	default:
		return "Passive"
	}
}

// EntityType is a registry entry for an entity identifier (§4.1).
type EntityType struct {
	ID          string
	DisplayName string
	Category    string
	SpawnType   SpawnType
}

// PlayerSpawnMarkerID is the entity type id the export driver uses when
// emitting the world spawn marker (§4.6).
const PlayerSpawnMarkerID = "PlayerSpawn"

var entityTypes = []EntityType{
	{ID: PlayerSpawnMarkerID, DisplayName: "Player Spawn", Category: "Marker", SpawnType: SpawnPassive},
	{ID: "Creature_Deer", DisplayName: "Deer", Category: "Wildlife", SpawnType: SpawnPassive},
	{ID: "Creature_Wolf", DisplayName: "Wolf", Category: "Wildlife", SpawnType: SpawnHostile},
	{ID: "Creature_Trork", DisplayName: "Trork", Category: "Monster", SpawnType: SpawnHostile},
	{ID: "Creature_Fish", DisplayName: "Fish", Category: "Wildlife", SpawnType: SpawnAquatic},
	{ID: "Creature_Villager", DisplayName: "Villager", Category: "NPC", SpawnType: SpawnNeutral},
	{ID: "Boss_Behemoth", DisplayName: "Behemoth", Category: "Boss", SpawnType: SpawnBoss},
}

var entityTypeByID map[string]int

func init() {
	entityTypeByID = make(map[string]int, len(entityTypes))
	for i, e := range entityTypes {
		entityTypeByID[e.ID] = i
	}
}

// EntityTypeByID looks an entity type up by its string id.
func EntityTypeByID(id string) (EntityType, bool) {
	i, ok := entityTypeByID[id]
	if !ok {
		return EntityType{}, false
	}
	return entityTypes[i], true
}

// EntityTypeByIndex looks an entity type up by its declared-order index.
func EntityTypeByIndex(i int) (EntityType, bool) {
	if i < 0 || i >= len(entityTypes) {
		return EntityType{}, false
	}
	return entityTypes[i], true
}

// EntityTypes returns the full catalog in declared order.
func EntityTypes() []EntityType {
	return entityTypes
}
