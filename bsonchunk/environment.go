package bsonchunk

import (
	"bytes"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/oriumgames/hytile/codec"
	"github.com/oriumgames/hytile/registry"
	"github.com/oriumgames/hytile/voxel"
)

func buildEnvironmentChunk(c *voxel.Chunk) (bson.D, error) {
	envIDs := make([]int32, len(c.Environment))
	var order []int32
	seen := make(map[int32]bool)
	names := make(map[int32]string)
	for i, name := range c.Environment {
		env, ok := registry.EnvironmentByName(name)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownEnvironment, name)
		}
		id := int32(env.ID)
		envIDs[i] = id
		if !seen[id] {
			seen[id] = true
			order = append(order, id)
			names[id] = env.Name
		}
	}

	w := codec.NewWriter()
	w.WriteI32(int32(len(order)))
	for _, id := range order {
		w.WriteI32(id)
		if err := w.WriteUTF(names[id]); err != nil {
			return nil, err
		}
	}
	for _, id := range envIDs {
		w.WriteI32(0) // transition_count
		w.WriteI32(id)
	}
	return bson.D{{Key: "Data", Value: primitive.Binary{Data: w.Bytes()}}}, nil
}

func decodeEnvironmentChunk(doc dataDoc) ([]int32, error) {
	r := codec.NewReader(bytes.NewReader(doc.Data.Data))
	envCount, err := r.ReadI32()
	if err != nil {
		return nil, err
	}
	names := make(map[int32]string, envCount)
	for i := int32(0); i < envCount; i++ {
		id, err := r.ReadI32()
		if err != nil {
			return nil, err
		}
		name, err := r.ReadUTF()
		if err != nil {
			return nil, err
		}
		names[id] = name
	}
	ids := make([]int32, voxel.ColumnCount)
	for i := range ids {
		if _, err := r.ReadI32(); err != nil { // transition_count
			return nil, err
		}
		id, err := r.ReadI32()
		if err != nil {
			return nil, err
		}
		ids[i] = id
	}
	return ids, nil
}
