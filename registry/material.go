package registry

// Material is an editor-space material id, mapped to the Hytale block
// that represents it on export (§4.1: "Material→Hytale block mapping").
var materialToBlock = map[string]string{
	"grass":   "Soil_Grass",
	"dirt":    "Soil_Dirt",
	"stone":   "Rock_Stone",
	"granite": "Rock_Granite",
	"basalt":  "Rock_Basalt",
	"slate":   "Rock_Slate",
	"sand":    "Soil_Sand",
	"gravel":  "Soil_Gravel",
	"mud":     "Soil_Mud",
	"clay":    "Soil_Clay",
	"snow":    "Snow_Layer",
	"ice":     "Ice_Block",
	"water":   "Water_Source",
	"lava":    "Lava_Source",
	"coal":    "Ore_Coal",
	"iron":    "Ore_Iron",
	"gold":    "Ore_Gold",
	"thorium": "Ore_Thorium",
}

// BlockForMaterial resolves an editor material id to its registry
// block. Returns the Empty block if the material is unknown.
func BlockForMaterial(material string) Block {
	if id, ok := materialToBlock[material]; ok {
		if b, ok := BlockByID(id); ok {
			return b
		}
	}
	b, _ := BlockByID(EmptyBlockID)
	return b
}
