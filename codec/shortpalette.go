package codec

import "fmt"

const columnPaletteLength = 1024

// EncodeShortBytePalette dedupes values (length 1024) preserving
// first-seen order and writes `u16 |P|`, each palette entry as `u16`,
// `u32 byte_len`, then a bits=10 BitFieldArr of indices (§4.3).
func EncodeShortBytePalette(w *Writer, values []int16) error {
	if len(values) != columnPaletteLength {
		return fmt.Errorf("codec: short byte palette expects %d values, got %d", columnPaletteLength, len(values))
	}
	palette, indexOf := orderedPalette(values)
	if len(palette) > 0xFFFF {
		return fmt.Errorf("codec: short byte palette overflow: %d distinct values", len(palette))
	}
	w.WriteU16(uint16(len(palette)))
	for _, v := range palette {
		w.WriteU16(uint16(v))
	}
	field := NewBitFieldArr(10, columnPaletteLength)
	for i, v := range values {
		field.Set(i, uint32(indexOf[v]))
	}
	w.WriteU32(uint32(len(field.Bytes())))
	w.Write(field.Bytes())
	return nil
}

// DecodeShortBytePalette reverses EncodeShortBytePalette.
func DecodeShortBytePalette(r *Reader) ([]int16, error) {
	size, err := r.ReadU16()
	if err != nil {
		return nil, err
	}
	palette := make([]int16, size)
	for i := range palette {
		v, err := r.ReadU16()
		if err != nil {
			return nil, err
		}
		palette[i] = int16(v)
	}
	byteLen, err := r.ReadU32()
	if err != nil {
		return nil, err
	}
	data, err := r.ReadN(int(byteLen))
	if err != nil {
		return nil, err
	}
	field, err := BitFieldArrFromBytes(10, columnPaletteLength, data)
	if err != nil {
		return nil, err
	}
	out := make([]int16, columnPaletteLength)
	for i := range out {
		out[i] = palette[field.Get(i)]
	}
	return out, nil
}

// EncodeIntBytePalette is EncodeShortBytePalette with u32 palette
// entries, used for the tintmap's ARGB values (§4.3).
func EncodeIntBytePalette(w *Writer, values []int32) error {
	if len(values) != columnPaletteLength {
		return fmt.Errorf("codec: int byte palette expects %d values, got %d", columnPaletteLength, len(values))
	}
	palette, indexOf := orderedPalette(values)
	if len(palette) > 0xFFFF {
		return fmt.Errorf("codec: int byte palette overflow: %d distinct values", len(palette))
	}
	w.WriteU16(uint16(len(palette)))
	for _, v := range palette {
		w.WriteU32(uint32(v))
	}
	field := NewBitFieldArr(10, columnPaletteLength)
	for i, v := range values {
		field.Set(i, uint32(indexOf[v]))
	}
	w.WriteU32(uint32(len(field.Bytes())))
	w.Write(field.Bytes())
	return nil
}

// DecodeIntBytePalette reverses EncodeIntBytePalette.
func DecodeIntBytePalette(r *Reader) ([]int32, error) {
	size, err := r.ReadU16()
	if err != nil {
		return nil, err
	}
	palette := make([]int32, size)
	for i := range palette {
		v, err := r.ReadU32()
		if err != nil {
			return nil, err
		}
		palette[i] = int32(v)
	}
	byteLen, err := r.ReadU32()
	if err != nil {
		return nil, err
	}
	data, err := r.ReadN(int(byteLen))
	if err != nil {
		return nil, err
	}
	field, err := BitFieldArrFromBytes(10, columnPaletteLength, data)
	if err != nil {
		return nil, err
	}
	out := make([]int32, columnPaletteLength)
	for i := range out {
		out[i] = palette[field.Get(i)]
	}
	return out, nil
}

func orderedPalette[T comparable](values []T) (palette []T, indexOf map[T]int) {
	indexOf = make(map[T]int)
	for _, v := range values {
		if _, ok := indexOf[v]; !ok {
			indexOf[v] = len(palette)
			palette = append(palette, v)
		}
	}
	return palette, indexOf
}
