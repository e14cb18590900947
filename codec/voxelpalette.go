package codec

import "fmt"

// PaletteType is the voxel palette type ordinal written ahead of a
// section's block/fluid/rotation payload (§4.3).
type PaletteType uint8

const (
	PaletteEmpty    PaletteType = 0
	PaletteHalfByte PaletteType = 1
	PaletteByte     PaletteType = 2
	PaletteShort    PaletteType = 3
)

// ClassifyCardinality selects the palette type for a palette holding n
// distinct non-default entries. n == 0 means every voxel holds the
// default value and no palette is written at all.
func ClassifyCardinality(n int) PaletteType {
	switch {
	case n == 0:
		return PaletteEmpty
	case n <= 16:
		return PaletteHalfByte
	case n <= 256:
		return PaletteByte
	default:
		return PaletteShort
	}
}

// dedupe builds an ordered, first-seen-order palette over values,
// returning it alongside each value's internal index and occurrence
// count. If every value equals defaultValue, the returned palette is
// empty (the all-empty/all-default case, §4.3 "if all-empty, emit type 0").
func dedupe[T comparable](values []T, defaultValue T) (palette []T, indexOf map[T]int, counts []uint16) {
	allDefault := true
	for _, v := range values {
		if v != defaultValue {
			allDefault = false
			break
		}
	}
	if allDefault {
		return nil, nil, nil
	}
	indexOf = make(map[T]int)
	for _, v := range values {
		if _, ok := indexOf[v]; !ok {
			indexOf[v] = len(palette)
			palette = append(palette, v)
			counts = append(counts, 0)
		}
		counts[indexOf[v]]++
	}
	return palette, indexOf, counts
}

// writeIndexStream16LE writes the Short-cardinality index stream as
// two little-endian bytes per voxel (§4.3: "Two bytes LE per voxel"),
// written byte-by-byte since this stream has no other framing around
// it for WriteU16 to share.
func writeIndexStream16LE(w *Writer, v uint16) {
	w.WriteU8(uint8(v))
	w.WriteU8(uint8(v >> 8))
}

func readIndexStream16LE(r *Reader) (uint16, error) {
	lo, err := r.ReadU8()
	if err != nil {
		return 0, err
	}
	hi, err := r.ReadU8()
	if err != nil {
		return 0, err
	}
	return uint16(lo) | uint16(hi)<<8, nil
}

func writeIndexStream(w *Writer, pt PaletteType, idx []uint8) {
	switch pt {
	case PaletteHalfByte:
		w.Write(PackBlockHalfByte(idx))
	case PaletteByte:
		w.Write(idx)
	case PaletteShort:
		for _, v := range idx {
			writeIndexStream16LE(w, uint16(v))
		}
	}
}

func writeIndexStream16(w *Writer, pt PaletteType, idx []uint16) {
	switch pt {
	case PaletteHalfByte:
		narrow := make([]uint8, len(idx))
		for i, v := range idx {
			narrow[i] = uint8(v)
		}
		w.Write(PackBlockHalfByte(narrow))
	case PaletteByte:
		narrow := make([]uint8, len(idx))
		for i, v := range idx {
			narrow[i] = uint8(v)
		}
		w.Write(narrow)
	case PaletteShort:
		for _, v := range idx {
			writeIndexStream16LE(w, v)
		}
	}
}

func readIndexStream(r *Reader, pt PaletteType, length int) ([]uint16, error) {
	out := make([]uint16, length)
	switch pt {
	case PaletteHalfByte:
		data, err := r.ReadN((length + 1) / 2)
		if err != nil {
			return nil, err
		}
		unpacked := UnpackBlockHalfByte(data, length)
		for i, v := range unpacked {
			out[i] = uint16(v)
		}
	case PaletteByte:
		data, err := r.ReadN(length)
		if err != nil {
			return nil, err
		}
		for i, v := range data {
			out[i] = uint16(v)
		}
	case PaletteShort:
		for i := range out {
			v, err := readIndexStream16LE(r)
			if err != nil {
				return nil, err
			}
			out[i] = v
		}
	}
	return out, nil
}

// EncodeStringVoxelPalette writes a voxel palette for string-valued
// voxels (block ids, fluid ids), following the palette entry framing
// `u8 internal_index, utf(id), u16 occurrence_count` (§4.3/§4.4).
// The returned bool reports whether the all-default (type 0) case was
// taken, since some callers (the block section) must skip following
// fields only in that case.
func EncodeStringVoxelPalette(w *Writer, values []string, defaultValue string) (empty bool, err error) {
	palette, indexOf, counts := dedupe(values, defaultValue)
	pt := ClassifyCardinality(len(palette))
	w.WriteU8(uint8(pt))
	if pt == PaletteEmpty {
		return true, nil
	}
	w.WriteU16(uint16(len(palette)))
	for i, id := range palette {
		// internal_index is a single byte (§4.3); for Short palettes
		// (cardinality > 256) it wraps and carries no decode meaning,
		// entries are always read back in the order they were written.
		w.WriteU8(uint8(i))
		if err := w.WriteUTF(id); err != nil {
			return false, fmt.Errorf("codec: voxel palette entry %q: %w", id, err)
		}
		w.WriteU16(counts[i])
	}
	idx := make([]uint8, len(values))
	if pt == PaletteShort {
		idx16 := make([]uint16, len(values))
		for i, v := range values {
			idx16[i] = uint16(indexOf[v])
		}
		writeIndexStream16(w, pt, idx16)
		return false, nil
	}
	for i, v := range values {
		idx[i] = uint8(indexOf[v])
	}
	writeIndexStream(w, pt, idx)
	return false, nil
}

// DecodeStringVoxelPalette reverses EncodeStringVoxelPalette, producing
// length string values, defaultValue where the palette type is Empty.
func DecodeStringVoxelPalette(r *Reader, length int, defaultValue string) ([]string, error) {
	ptByte, err := r.ReadU8()
	if err != nil {
		return nil, err
	}
	pt := PaletteType(ptByte)
	out := make([]string, length)
	if pt == PaletteEmpty {
		for i := range out {
			out[i] = defaultValue
		}
		return out, nil
	}
	size, err := r.ReadU16()
	if err != nil {
		return nil, err
	}
	palette := make([]string, size)
	for i := 0; i < int(size); i++ {
		if _, err := r.ReadU8(); err != nil { // internal_index, positional only
			return nil, err
		}
		id, err := r.ReadUTF()
		if err != nil {
			return nil, err
		}
		if _, err := r.ReadU16(); err != nil { // occurrence count, informational
			return nil, err
		}
		palette[i] = id
	}
	idx, err := readIndexStream(r, pt, length)
	if err != nil {
		return nil, err
	}
	for i, v := range idx {
		out[i] = palette[v]
	}
	return out, nil
}

// EncodeByteVoxelPalette writes a voxel palette for raw byte-valued
// voxels (rotations), with entry framing `u8 internal_index, u8 value,
// u16 occurrence_count` — no UTF string (§4.3 rotation sub-section).
func EncodeByteVoxelPalette(w *Writer, values []uint8, defaultValue uint8) error {
	palette, indexOf, counts := dedupe(values, defaultValue)
	pt := ClassifyCardinality(len(palette))
	w.WriteU8(uint8(pt))
	if pt == PaletteEmpty {
		return nil
	}
	w.WriteU16(uint16(len(palette)))
	for i, v := range palette {
		w.WriteU8(uint8(i))
		w.WriteU8(v)
		w.WriteU16(counts[i])
	}
	idx := make([]uint8, len(values))
	for i, v := range values {
		idx[i] = uint8(indexOf[v])
	}
	writeIndexStream(w, pt, idx)
	return nil
}

// DecodeByteVoxelPalette reverses EncodeByteVoxelPalette.
func DecodeByteVoxelPalette(r *Reader, length int, defaultValue uint8) ([]uint8, error) {
	ptByte, err := r.ReadU8()
	if err != nil {
		return nil, err
	}
	pt := PaletteType(ptByte)
	out := make([]uint8, length)
	if pt == PaletteEmpty {
		for i := range out {
			out[i] = defaultValue
		}
		return out, nil
	}
	size, err := r.ReadU16()
	if err != nil {
		return nil, err
	}
	palette := make([]uint8, size)
	for i := 0; i < int(size); i++ {
		if _, err := r.ReadU8(); err != nil { // internal_index, positional only
			return nil, err
		}
		v, err := r.ReadU8()
		if err != nil {
			return nil, err
		}
		if _, err := r.ReadU16(); err != nil {
			return nil, err
		}
		palette[i] = v
	}
	idx, err := readIndexStream(r, pt, length)
	if err != nil {
		return nil, err
	}
	for i, v := range idx {
		out[i] = palette[v]
	}
	return out, nil
}
