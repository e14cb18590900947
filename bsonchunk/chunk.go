// Package bsonchunk implements the BSON chunk document serializer
// (spec.md §4.4): a fixed set of ordered component documents encoding
// blocks, fluids, rotations, heightmap, tint, environment, biome,
// entities, block health, and optional WorldPainter metadata.
package bsonchunk

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/oriumgames/hytile/registry"
	"github.com/oriumgames/hytile/voxel"
)

// Options configures chunk-level encoding behavior that varies by
// caller (export driver) rather than by chunk content.
type Options struct {
	// Light, when non-nil, overrides the default fully-lit octree per
	// section (§4.6's "stricter mode").
	Light LightFunc
}

// EncodeChunk serializes c to the wire-format BSON document (§4.4).
func EncodeChunk(c *voxel.Chunk, opts Options) ([]byte, error) {
	column, err := buildChunkColumn(c, opts.Light)
	if err != nil {
		return nil, err
	}
	env, err := buildEnvironmentChunk(c)
	if err != nil {
		return nil, err
	}
	biome, err := buildBiomeChunk(c)
	if err != nil {
		return nil, err
	}
	blockChunk, err := buildBlockChunk(c)
	if err != nil {
		return nil, err
	}

	components := bson.D{
		{Key: "BlockComponentChunk", Value: bson.D{{Key: "BlockComponents", Value: bson.D{}}}},
		{Key: "ChunkColumn", Value: column},
		{Key: "WorldChunk", Value: bson.D{}},
		{Key: "BlockHealthChunk", Value: buildBlockHealthChunk(c)},
		{Key: "EnvironmentChunk", Value: env},
		{Key: "BiomeChunk", Value: biome},
		{Key: "BlockChunk", Value: blockChunk},
		{Key: "EntityChunk", Value: buildEntityChunk(c)},
	}
	if meta, ok := buildWorldPainterMetadata(c); ok {
		components = append(components, bson.E{Key: "WorldPainterMetadata", Value: meta})
	}

	doc := bson.D{{Key: "Components", Value: components}}
	return bson.Marshal(doc)
}

type chunkDoc struct {
	Components struct {
		ChunkColumn      chunkColumnDoc `bson:"ChunkColumn"`
		BlockHealthChunk dataDoc        `bson:"BlockHealthChunk"`
		EnvironmentChunk dataDoc        `bson:"EnvironmentChunk"`
		BiomeChunk       dataDoc        `bson:"BiomeChunk"`
		BlockChunk       blockChunkDoc  `bson:"BlockChunk"`
		EntityChunk      entityChunkDoc `bson:"EntityChunk"`
		WorldPainterMetadata *painterDoc `bson:"WorldPainterMetadata"`
	} `bson:"Components"`
}

// DecodeChunk reverses EncodeChunk. cx, cz, minY, maxY come from the
// caller (region slot + world config) since the wire format does not
// carry chunk coordinates or the Y range.
func DecodeChunk(data []byte, cx, cz, minY, maxY int32) (*voxel.Chunk, error) {
	var doc chunkDoc
	if err := bson.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	c := voxel.New(cx, cz, minY, maxY)

	heightmap, tint, err := decodeBlockChunk(doc.Components.BlockChunk)
	if err != nil {
		return nil, err
	}
	copy(c.Heightmap, heightmap)
	copy(c.Tint, tint)

	envIDs, err := decodeEnvironmentChunk(doc.Components.EnvironmentChunk)
	if err != nil {
		return nil, err
	}
	for i, id := range envIDs {
		env, ok := registry.EnvironmentByID(uint32(id))
		if !ok {
			return nil, ErrUnknownEnvironment
		}
		x, z := i%voxel.SectionSize, i/voxel.SectionSize
		if err := c.SetEnvironment(x, z, env.Name); err != nil {
			return nil, err
		}
	}

	biomeIDs, err := decodeBiomeChunk(doc.Components.BiomeChunk)
	if err != nil {
		return nil, err
	}
	for i, id := range biomeIDs {
		b, ok := registry.BiomeByID(uint8(id))
		if !ok {
			return nil, ErrUnknownBiome
		}
		x, z := i%voxel.SectionSize, i/voxel.SectionSize
		if err := c.SetBiomeName(x, z, b.Name); err != nil {
			return nil, err
		}
	}

	if len(doc.Components.ChunkColumn.Sections) != len(c.Sections) {
		return nil, ErrSectionCountMismatch
	}
	for i, sh := range doc.Components.ChunkColumn.Sections {
		s, err := decodeSection(sh)
		if err != nil {
			return nil, err
		}
		c.Sections[i] = s
	}

	entries, err := decodeBlockHealthChunk(doc.Components.BlockHealthChunk)
	if err != nil {
		return nil, err
	}
	for _, e := range entries {
		c.SetBlockHealth(e.X, e.Y, e.Z, e.Health, e.LastDamageTime)
	}

	c.Entities = decodeEntities(doc.Components.EntityChunk)

	if err := applyPainterMetadata(c, doc.Components.WorldPainterMetadata); err != nil {
		return nil, err
	}

	return c, nil
}
