package bsonchunk

import (
	"bytes"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/oriumgames/hytile/codec"
	"github.com/oriumgames/hytile/voxel"
)

// blockChunkVersion is the BlockChunk component's codec version (§4.4).
const blockChunkVersion = 3

func buildBlockChunk(c *voxel.Chunk) (bson.D, error) {
	w := codec.NewWriter()
	w.WriteBool(false) // needs_physics
	if err := codec.EncodeShortBytePalette(w, c.Heightmap); err != nil {
		return nil, err
	}
	if err := codec.EncodeIntBytePalette(w, c.Tint); err != nil {
		return nil, err
	}
	return bson.D{
		{Key: "Version", Value: int32(blockChunkVersion)},
		{Key: "Data", Value: primitive.Binary{Data: w.Bytes()}},
	}, nil
}

type blockChunkDoc struct {
	Version int32            `bson:"Version"`
	Data    primitive.Binary `bson:"Data"`
}

func decodeBlockChunk(doc blockChunkDoc) (heightmap []int16, tint []int32, err error) {
	r := codec.NewReader(bytes.NewReader(doc.Data.Data))
	if _, err := r.ReadBool(); err != nil {
		return nil, nil, err
	}
	heightmap, err = codec.DecodeShortBytePalette(r)
	if err != nil {
		return nil, nil, err
	}
	tint, err = codec.DecodeIntBytePalette(r)
	if err != nil {
		return nil, nil, err
	}
	return heightmap, tint, nil
}
