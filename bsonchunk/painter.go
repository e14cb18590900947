package bsonchunk

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/oriumgames/hytile/voxel"
)

// buildWorldPainterMetadata builds the optional WorldPainterMetadata
// component, returning ok=false when the chunk carries no custom data
// (§4.4).
func buildWorldPainterMetadata(c *voxel.Chunk) (doc bson.D, ok bool) {
	waterTints := bson.D{}
	var spawnOverrides bson.A
	for z := 0; z < voxel.SectionSize; z++ {
		for x := 0; x < voxel.SectionSize; x++ {
			if hex, has := c.WaterTintOverride(x, z); has {
				waterTints = append(waterTints, bson.E{Key: fmt.Sprintf("%d,%d", x, z), Value: hex})
			}
			density, hasDensity := c.SpawnDensityOverride(x, z)
			tag, hasTag := c.SpawnTag(x, z)
			if hasDensity || hasTag {
				entry := bson.D{{Key: "x", Value: int32(x)}, {Key: "z", Value: int32(z)}}
				if hasDensity {
					entry = append(entry, bson.E{Key: "density", Value: density})
				}
				if hasTag {
					entry = append(entry, bson.E{Key: "tag", Value: tag})
				}
				spawnOverrides = append(spawnOverrides, entry)
			}
		}
	}

	hasAny := len(waterTints) > 0 || len(spawnOverrides) > 0 || len(c.PrefabMarkers) > 0
	if !hasAny {
		return nil, false
	}

	out := bson.D{}
	if len(waterTints) > 0 {
		out = append(out, bson.E{Key: "WaterTints", Value: waterTints})
	}
	if len(spawnOverrides) > 0 {
		out = append(out, bson.E{Key: "SpawnOverrides", Value: spawnOverrides})
	}
	if len(c.PrefabMarkers) > 0 {
		markers := make(bson.A, len(c.PrefabMarkers))
		for i, m := range c.PrefabMarkers {
			markers[i] = bson.D{
				{Key: "x", Value: m.X},
				{Key: "y", Value: m.Y},
				{Key: "z", Value: m.Z},
				{Key: "category", Value: m.Category},
				{Key: "path", Value: m.Path},
			}
		}
		out = append(out, bson.E{Key: "PrefabMarkers", Value: markers})
	}
	return out, true
}

type painterDoc struct {
	WaterTints     bson.M `bson:"WaterTints,omitempty"`
	SpawnOverrides []struct {
		X       int32    `bson:"x"`
		Z       int32    `bson:"z"`
		Density *float32 `bson:"density,omitempty"`
		Tag     *string  `bson:"tag,omitempty"`
	} `bson:"SpawnOverrides,omitempty"`
	PrefabMarkers []struct {
		X        int32  `bson:"x"`
		Y        int32  `bson:"y"`
		Z        int32  `bson:"z"`
		Category string `bson:"category"`
		Path     string `bson:"path"`
	} `bson:"PrefabMarkers,omitempty"`
}

func applyPainterMetadata(c *voxel.Chunk, doc *painterDoc) error {
	if doc == nil {
		return nil
	}
	for key, v := range doc.WaterTints {
		var x, z int
		if _, err := fmt.Sscanf(key, "%d,%d", &x, &z); err != nil {
			return fmt.Errorf("bsonchunk: bad WaterTints key %q: %w", key, err)
		}
		hex, _ := v.(string)
		if err := c.SetWaterTintOverride(x, z, hex); err != nil {
			return err
		}
	}
	for _, s := range doc.SpawnOverrides {
		if s.Density != nil {
			if err := c.SetSpawnDensityOverride(int(s.X), int(s.Z), *s.Density); err != nil {
				return err
			}
		}
		if s.Tag != nil {
			if err := c.SetSpawnTag(int(s.X), int(s.Z), *s.Tag); err != nil {
				return err
			}
		}
	}
	for _, m := range doc.PrefabMarkers {
		c.AddPrefabMarker(voxel.PrefabMarker{X: m.X, Y: m.Y, Z: m.Z, Category: m.Category, Path: m.Path})
	}
	return nil
}
