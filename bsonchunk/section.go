package bsonchunk

import (
	"bytes"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/oriumgames/hytile/codec"
	"github.com/oriumgames/hytile/registry"
	"github.com/oriumgames/hytile/voxel"
)

// blockSectionVersion is the Block sub-document's codec version (§4.4).
const blockSectionVersion = 6

// LightFunc reports the local/global light level to bake into section
// i's octree. A nil LightFunc means every section is fully lit, the
// non-stricter default (§4.6).
type LightFunc func(sectionIndex int) (local, global LightLevel)

func buildChunkColumn(c *voxel.Chunk, lf LightFunc) (bson.D, error) {
	holders := make(bson.A, len(c.Sections))
	for i, s := range c.Sections {
		local, global := LightFull, LightFull
		if lf != nil {
			local, global = lf(i)
		}
		holder, err := buildSectionHolder(s, local, global)
		if err != nil {
			return nil, err
		}
		holders[i] = holder
	}
	return bson.D{{Key: "Sections", Value: holders}}, nil
}

func buildSectionHolder(s *voxel.Section, local, global LightLevel) (bson.D, error) {
	block, err := buildBlockSection(s, local, global)
	if err != nil {
		return nil, err
	}
	fluid, err := buildFluidSection(s)
	if err != nil {
		return nil, err
	}
	physics := bson.D{{Key: "Data", Value: primitive.Binary{Data: []byte{0}}}}
	components := bson.D{
		{Key: "ChunkSection", Value: bson.D{}},
		{Key: "BlockPhysics", Value: physics},
		{Key: "Fluid", Value: fluid},
		{Key: "Block", Value: block},
	}
	return bson.D{{Key: "Components", Value: components}}, nil
}

func buildBlockSection(s *voxel.Section, local, global LightLevel) (bson.D, error) {
	w := codec.NewWriter()
	w.WriteI32(0) // migration_version

	isEmptyPalette, err := codec.EncodeStringVoxelPalette(w, s.Blocks(), registry.EmptyBlockID)
	if err != nil {
		return nil, err
	}
	if !isEmptyPalette {
		w.WriteU16(0) // ticking_cardinality
		w.WriteU16(0) // ticking_bitset_len
	}

	w.WriteU8(0) // filler sub-section, always empty

	if err := codec.EncodeByteVoxelPalette(w, s.Rotations(), 0); err != nil {
		return nil, err
	}

	WriteLightOctree(w, local)
	WriteLightOctree(w, global)

	w.WriteU16(0) // local_changes
	w.WriteU16(0) // global_changes

	return bson.D{
		{Key: "Version", Value: int32(blockSectionVersion)},
		{Key: "Data", Value: primitive.Binary{Data: w.Bytes()}},
	}, nil
}

func buildFluidSection(s *voxel.Section) (bson.D, error) {
	palette := s.FluidPalette()
	if len(palette) <= 1 {
		w := codec.NewWriter()
		w.WriteU8(0)
		w.WriteBool(false)
		return bson.D{{Key: "Data", Value: primitive.Binary{Data: w.Bytes()}}}, nil
	}

	w := codec.NewWriter()
	w.WriteU8(uint8(codec.PaletteHalfByte))
	w.WriteU16(uint16(len(palette)))
	counts := make([]uint16, len(palette))
	for _, idx := range s.FluidIndices() {
		counts[idx]++
	}
	for i, id := range palette {
		w.WriteU8(uint8(i))
		if err := w.WriteUTF(id); err != nil {
			return nil, err
		}
		w.WriteU16(counts[i])
	}
	idx := make([]uint8, voxel.VoxelCount)
	for i, v := range s.FluidIndices() {
		idx[i] = uint8(v)
	}
	w.Write(codec.PackBlockHalfByte(idx))

	w.WriteBool(true) // has_levels
	levels := make([]uint8, voxel.VoxelCount)
	rawLevels := s.FluidLevels()
	for i, fluidIdx := range s.FluidIndices() {
		if fluidIdx == 0 {
			continue
		}
		lvl := rawLevels[i]
		if lvl == 0 {
			lvl = registry.DefaultFluidLevel(palette[fluidIdx])
		}
		levels[i] = lvl
	}
	w.Write(codec.PackFluidHalfByte(levels))

	return bson.D{{Key: "Data", Value: primitive.Binary{Data: w.Bytes()}}}, nil
}

type sectionHolderDoc struct {
	Components struct {
		BlockPhysics dataDoc          `bson:"BlockPhysics"`
		Fluid        dataDoc          `bson:"Fluid"`
		Block        blockSectionDoc  `bson:"Block"`
	} `bson:"Components"`
}

type blockSectionDoc struct {
	Version int32            `bson:"Version"`
	Data    primitive.Binary `bson:"Data"`
}

type chunkColumnDoc struct {
	Sections []sectionHolderDoc `bson:"Sections"`
}

// decodeSection reverses buildSectionHolder into a freshly populated Section.
func decodeSection(doc sectionHolderDoc) (*voxel.Section, error) {
	s := voxel.NewSection()

	br := codec.NewReader(bytes.NewReader(doc.Components.Block.Data.Data))
	if _, err := br.ReadI32(); err != nil { // migration_version
		return nil, err
	}
	blocks, isEmpty, err := decodeBlockVoxelPalette(br)
	if err != nil {
		return nil, err
	}
	if !isEmpty {
		if _, err := br.ReadU16(); err != nil {
			return nil, err
		}
		if _, err := br.ReadU16(); err != nil {
			return nil, err
		}
	}
	if _, err := br.ReadU8(); err != nil { // filler
		return nil, err
	}
	rotations, err := codec.DecodeByteVoxelPalette(br, voxel.VoxelCount, 0)
	if err != nil {
		return nil, err
	}
	// local + global light octrees, ignored on decode (approximation is write-only).
	if err := skipLightData(br); err != nil {
		return nil, err
	}
	if _, err := br.ReadU16(); err != nil { // local_changes
		return nil, err
	}
	if _, err := br.ReadU16(); err != nil { // global_changes
		return nil, err
	}

	for i := 0; i < voxel.VoxelCount; i++ {
		x, y, z := fromIndex(i)
		// The block voxel array never holds fluid ids (fluids are
		// recorded separately and the voxel reads back as Empty), so
		// IsFluid is always false here regardless of registry lookup.
		if err := s.SetBlock(x, y, z, registry.Block{ID: blocks[i]}); err != nil {
			return nil, err
		}
		if err := s.SetRotation(x, y, z, rotations[i]); err != nil {
			return nil, err
		}
	}

	fr := codec.NewReader(bytes.NewReader(doc.Components.Fluid.Data.Data))
	if err := decodeFluidSectionInto(fr, s); err != nil {
		return nil, err
	}

	return s, nil
}

// decodeBlockVoxelPalette mirrors codec.DecodeStringVoxelPalette but
// also reports whether the palette was the all-empty (type 0) case, so
// the caller can skip the ticking fields exactly as the encoder did.
func decodeBlockVoxelPalette(r *codec.Reader) ([]string, bool, error) {
	values, err := codec.DecodeStringVoxelPalette(r, voxel.VoxelCount, registry.EmptyBlockID)
	return values, isAllDefaultString(values, registry.EmptyBlockID), err
}

func isAllDefaultString(values []string, def string) bool {
	for _, v := range values {
		if v != def {
			return false
		}
	}
	return true
}

func decodeFluidSectionInto(r *codec.Reader, s *voxel.Section) error {
	pt, err := r.ReadU8()
	if err != nil {
		return err
	}
	if codec.PaletteType(pt) == codec.PaletteEmpty {
		_, err := r.ReadBool()
		return err
	}
	size, err := r.ReadU16()
	if err != nil {
		return err
	}
	palette := make([]string, size)
	for i := 0; i < int(size); i++ {
		if _, err := r.ReadU8(); err != nil {
			return err
		}
		id, err := r.ReadUTF()
		if err != nil {
			return err
		}
		if _, err := r.ReadU16(); err != nil {
			return err
		}
		palette[i] = id
	}
	data, err := r.ReadN((voxel.VoxelCount + 1) / 2)
	if err != nil {
		return err
	}
	idx := codec.UnpackBlockHalfByte(data, voxel.VoxelCount)
	hasLevels, err := r.ReadBool()
	if err != nil {
		return err
	}
	var levels []uint8
	if hasLevels {
		levelData, err := r.ReadN((voxel.VoxelCount + 1) / 2)
		if err != nil {
			return err
		}
		levels = codec.UnpackFluidHalfByte(levelData, voxel.VoxelCount)
	}
	for i, fi := range idx {
		if fi == 0 {
			continue
		}
		x, y, z := fromIndex(i)
		lvl := uint8(0)
		if levels != nil {
			lvl = levels[i]
		}
		if err := s.SetFluid(x, y, z, palette[fi], lvl); err != nil {
			return err
		}
	}
	return nil
}

func fromIndex(i int) (x, y, z int) {
	return i & 31, i >> 10, (i >> 5) & 31
}
