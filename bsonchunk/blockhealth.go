package bsonchunk

import (
	"bytes"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/oriumgames/hytile/codec"
	"github.com/oriumgames/hytile/voxel"
)

// blockHealthVersion is the BlockHealthChunk component's codec version.
const blockHealthVersion = 2

func buildBlockHealthChunk(c *voxel.Chunk) bson.D {
	entries := c.BlockHealthEntries()
	w := codec.NewWriter()
	w.WriteU8(blockHealthVersion)
	w.WriteI32(int32(len(entries)))
	for _, e := range entries {
		w.WriteI32(e.X)
		w.WriteI32(e.Y)
		w.WriteI32(e.Z)
		w.WriteF32(e.Health)
		w.WriteI64(e.LastDamageTime)
	}
	w.WriteI32(0) // fragility_count
	return bson.D{{Key: "Data", Value: primitive.Binary{Data: w.Bytes()}}}
}

type dataDoc struct {
	Data primitive.Binary `bson:"Data"`
}

func decodeBlockHealthChunk(doc dataDoc) ([]voxel.BlockHealthEntry, error) {
	r := codec.NewReader(bytes.NewReader(doc.Data.Data))
	if _, err := r.ReadU8(); err != nil { // version
		return nil, err
	}
	count, err := r.ReadI32()
	if err != nil {
		return nil, err
	}
	out := make([]voxel.BlockHealthEntry, count)
	for i := range out {
		x, err := r.ReadI32()
		if err != nil {
			return nil, err
		}
		y, err := r.ReadI32()
		if err != nil {
			return nil, err
		}
		z, err := r.ReadI32()
		if err != nil {
			return nil, err
		}
		health, err := r.ReadF32()
		if err != nil {
			return nil, err
		}
		last, err := r.ReadI64()
		if err != nil {
			return nil, err
		}
		out[i] = voxel.BlockHealthEntry{X: x, Y: y, Z: z, BlockHealth: voxel.BlockHealth{Health: health, LastDamageTime: last}}
	}
	return out, nil
}
