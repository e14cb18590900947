package bsonchunk

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/oriumgames/hytile/voxel"
)

func buildEntityChunk(c *voxel.Chunk) bson.D {
	docs := make(bson.A, 0, len(c.Entities))
	for _, e := range c.Entities {
		docs = append(docs, buildEntityDoc(e))
	}
	return bson.D{{Key: "Entities", Value: docs}}
}

func buildEntityDoc(e voxel.Entity) bson.D {
	doc := bson.D{
		{Key: "Type", Value: e.TypeID},
		{Key: "UUID", Value: primitive.Binary{Subtype: 0x04, Data: e.UUID[:]}},
		{Key: "Position", Value: bson.D{{Key: "X", Value: e.X}, {Key: "Y", Value: e.Y}, {Key: "Z", Value: e.Z}}},
		{Key: "Rotation", Value: bson.D{{Key: "Yaw", Value: e.Yaw}, {Key: "Pitch", Value: e.Pitch}, {Key: "Roll", Value: e.Roll}}},
	}
	if len(e.Components) > 0 {
		comps := bson.D{}
		for k, v := range e.Components {
			comps = append(comps, bson.E{Key: k, Value: v})
		}
		doc = append(doc, bson.E{Key: "Components", Value: comps})
	}
	if e.Spawn != nil {
		doc = append(doc, bson.E{Key: "SpawnMarker", Value: bson.D{
			{Key: "SpawnMarkerID", Value: e.Spawn.SpawnMarkerID},
			{Key: "RespawnTimeS", Value: e.Spawn.RespawnTimeS},
			{Key: "SpawnCount", Value: e.Spawn.SpawnCount},
			{Key: "SpawnRadius", Value: e.Spawn.SpawnRadius},
			{Key: "Active", Value: e.Spawn.Active},
			{Key: "DespawnWhenFar", Value: e.Spawn.DespawnWhenFar},
		}})
	}
	return doc
}

type entityChunkDoc struct {
	Entities []entityDoc `bson:"Entities"`
}

type entityDoc struct {
	Type     string           `bson:"Type"`
	UUID     primitive.Binary `bson:"UUID"`
	Position struct{ X, Y, Z float64 } `bson:"Position"`
	Rotation struct{ Yaw, Pitch, Roll float64 } `bson:"Rotation"`
	Components bson.M `bson:"Components,omitempty"`
	SpawnMarker *struct {
		SpawnMarkerID  string  `bson:"SpawnMarkerID"`
		RespawnTimeS   float64 `bson:"RespawnTimeS"`
		SpawnCount     int32   `bson:"SpawnCount"`
		SpawnRadius    float64 `bson:"SpawnRadius"`
		Active         bool    `bson:"Active"`
		DespawnWhenFar bool    `bson:"DespawnWhenFar"`
	} `bson:"SpawnMarker,omitempty"`
}

func decodeEntities(doc entityChunkDoc) []voxel.Entity {
	out := make([]voxel.Entity, len(doc.Entities))
	for i, ed := range doc.Entities {
		e := voxel.Entity{
			TypeID: ed.Type,
			X:      ed.Position.X,
			Y:      ed.Position.Y,
			Z:      ed.Position.Z,
			Yaw:    ed.Rotation.Yaw,
			Pitch:  ed.Rotation.Pitch,
			Roll:   ed.Rotation.Roll,
		}
		copy(e.UUID[:], ed.UUID.Data)
		if len(ed.Components) > 0 {
			e.Components = map[string]any(ed.Components)
		}
		if ed.SpawnMarker != nil {
			e.Spawn = &voxel.SpawnMarker{
				SpawnMarkerID:  ed.SpawnMarker.SpawnMarkerID,
				RespawnTimeS:   ed.SpawnMarker.RespawnTimeS,
				SpawnCount:     ed.SpawnMarker.SpawnCount,
				SpawnRadius:    ed.SpawnMarker.SpawnRadius,
				Active:         ed.SpawnMarker.Active,
				DespawnWhenFar: ed.SpawnMarker.DespawnWhenFar,
			}
		}
		out[i] = e
	}
	return out
}
