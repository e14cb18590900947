package codec

// PackBlockHalfByte packs 4-bit values two to a byte for block-index
// and rotation half-byte palettes: the even-indexed entry occupies the
// HIGH nibble, the odd-indexed entry the LOW nibble (§4.3). This is the
// opposite nibble order from PackFluidHalfByte and the two must never
// be unified into one packer — the interleave direction is part of the
// wire format.
func PackBlockHalfByte(values []uint8) []byte {
	out := make([]byte, (len(values)+1)/2)
	for i, v := range values {
		b := out[i/2]
		if i%2 == 0 {
			out[i/2] = (b &^ 0xF0) | (v&0xF)<<4
		} else {
			out[i/2] = (b &^ 0x0F) | (v & 0xF)
		}
	}
	return out
}

// UnpackBlockHalfByte reverses PackBlockHalfByte into length entries.
func UnpackBlockHalfByte(data []byte, length int) []uint8 {
	out := make([]uint8, length)
	for i := range out {
		b := data[i/2]
		if i%2 == 0 {
			out[i] = (b >> 4) & 0xF
		} else {
			out[i] = b & 0xF
		}
	}
	return out
}

// PackFluidHalfByte packs 4-bit fluid levels two to a byte: the
// even-indexed entry occupies the LOW nibble, the odd-indexed entry the
// HIGH nibble (§4.3) — the mirror image of PackBlockHalfByte.
func PackFluidHalfByte(values []uint8) []byte {
	out := make([]byte, (len(values)+1)/2)
	for i, v := range values {
		b := out[i/2]
		if i%2 == 0 {
			out[i/2] = (b &^ 0x0F) | (v & 0xF)
		} else {
			out[i/2] = (b &^ 0xF0) | (v&0xF)<<4
		}
	}
	return out
}

// UnpackFluidHalfByte reverses PackFluidHalfByte into length entries.
func UnpackFluidHalfByte(data []byte, length int) []uint8 {
	out := make([]uint8, length)
	for i := range out {
		b := data[i/2]
		if i%2 == 0 {
			out[i] = b & 0xF
		} else {
			out[i] = (b >> 4) & 0xF
		}
	}
	return out
}
