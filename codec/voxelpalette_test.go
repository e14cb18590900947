package codec

import (
	"testing"
)

func TestClassifyCardinality(t *testing.T) {
	cases := []struct {
		n    int
		want PaletteType
	}{
		{0, PaletteEmpty},
		{1, PaletteHalfByte},
		{16, PaletteHalfByte},
		{17, PaletteByte},
		{256, PaletteByte},
		{257, PaletteShort},
		{65536, PaletteShort},
	}
	for _, c := range cases {
		if got := ClassifyCardinality(c.n); got != c.want {
			t.Errorf("ClassifyCardinality(%d) = %d, want %d", c.n, got, c.want)
		}
	}
}

func TestStringVoxelPaletteRoundTripAllEmpty(t *testing.T) {
	values := make([]string, 32768)
	for i := range values {
		values[i] = "Empty"
	}
	w := NewWriter()
	if _, err := EncodeStringVoxelPalette(w, values, "Empty"); err != nil {
		t.Fatal(err)
	}
	if w.Len() != 1 {
		t.Fatalf("all-empty palette wrote %d bytes, want 1 (type byte only)", w.Len())
	}
	r := NewReader(w)
	got, err := DecodeStringVoxelPalette(r, 32768, "Empty")
	if err != nil {
		t.Fatal(err)
	}
	for i, v := range got {
		if v != "Empty" {
			t.Fatalf("got[%d] = %q, want Empty", i, v)
		}
	}
}

func TestStringVoxelPaletteRoundTripHalfByte(t *testing.T) {
	values := make([]string, 32768)
	ids := []string{"Empty", "Rock_Stone", "Soil_Dirt"}
	for i := range values {
		values[i] = ids[i%len(ids)]
	}
	roundTripStringPalette(t, values)
}

func TestStringVoxelPaletteRoundTripByte(t *testing.T) {
	values := make([]string, 32768)
	for i := range values {
		id := "Block_" + string(rune('A'+i%40))
		values[i] = id
	}
	roundTripStringPalette(t, values)
}

func TestStringVoxelPaletteRoundTripShort(t *testing.T) {
	values := make([]string, 32768)
	for i := range values {
		values[i] = "Block_" + itoa(i%300)
	}
	roundTripStringPalette(t, values)
}

func roundTripStringPalette(t *testing.T, values []string) {
	t.Helper()
	w := NewWriter()
	if _, err := EncodeStringVoxelPalette(w, values, "Empty"); err != nil {
		t.Fatal(err)
	}
	r := NewReader(w)
	got, err := DecodeStringVoxelPalette(r, len(values), "Empty")
	if err != nil {
		t.Fatal(err)
	}
	for i := range values {
		if got[i] != values[i] {
			t.Fatalf("got[%d] = %q, want %q", i, got[i], values[i])
		}
	}
}

func TestByteVoxelPaletteRoundTrip(t *testing.T) {
	values := make([]uint8, 32768)
	for i := range values {
		values[i] = uint8(i % 6)
	}
	w := NewWriter()
	if err := EncodeByteVoxelPalette(w, values, 0); err != nil {
		t.Fatal(err)
	}
	r := NewReader(w)
	got, err := DecodeByteVoxelPalette(r, len(values), 0)
	if err != nil {
		t.Fatal(err)
	}
	for i := range values {
		if got[i] != values[i] {
			t.Fatalf("got[%d] = %d, want %d", i, got[i], values[i])
		}
	}
}

func TestByteVoxelPaletteAllDefaultIsEmptyType(t *testing.T) {
	values := make([]uint8, 32768)
	w := NewWriter()
	if err := EncodeByteVoxelPalette(w, values, 0); err != nil {
		t.Fatal(err)
	}
	if w.Len() != 1 {
		t.Fatalf("wrote %d bytes, want 1", w.Len())
	}
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	return string(buf[i:])
}
