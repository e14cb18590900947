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

// buildBiomeChunk encodes c.BiomeName (§8's round-trip invariant) with
// the same id+name palette shape buildEnvironmentChunk uses, since
// environment id alone cannot reconstruct biome name: multiple biomes
// share an EnvironmentID (e.g. Zone1_Plains and Zone1_Forest both use
// EnvironmentID 1).
func buildBiomeChunk(c *voxel.Chunk) (bson.D, error) {
	biomeIDs := make([]int32, len(c.BiomeName))
	var order []int32
	seen := make(map[int32]bool)
	names := make(map[int32]string)
	for i, name := range c.BiomeName {
		b, ok := registry.BiomeByName(name)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownBiome, name)
		}
		id := int32(b.ID)
		biomeIDs[i] = id
		if !seen[id] {
			seen[id] = true
			order = append(order, id)
			names[id] = b.Name
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
	for _, id := range biomeIDs {
		w.WriteI32(id)
	}
	return bson.D{{Key: "Data", Value: primitive.Binary{Data: w.Bytes()}}}, nil
}

func decodeBiomeChunk(doc dataDoc) ([]int32, error) {
	r := codec.NewReader(bytes.NewReader(doc.Data.Data))
	biomeCount, err := r.ReadI32()
	if err != nil {
		return nil, err
	}
	names := make(map[int32]string, biomeCount)
	for i := int32(0); i < biomeCount; i++ {
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
		id, err := r.ReadI32()
		if err != nil {
			return nil, err
		}
		ids[i] = id
	}
	return ids, nil
}
