package codec

import "testing"

func TestShortBytePaletteRoundTrip(t *testing.T) {
	values := make([]int16, 1024)
	for i := range values {
		values[i] = int16((i % 17) * 3)
	}
	w := NewWriter()
	if err := EncodeShortBytePalette(w, values); err != nil {
		t.Fatal(err)
	}
	r := NewReader(w)
	got, err := DecodeShortBytePalette(r)
	if err != nil {
		t.Fatal(err)
	}
	for i := range values {
		if got[i] != values[i] {
			t.Fatalf("got[%d] = %d, want %d", i, got[i], values[i])
		}
	}
}

func TestShortBytePaletteWrongLength(t *testing.T) {
	if err := EncodeShortBytePalette(NewWriter(), make([]int16, 10)); err == nil {
		t.Fatal("expected error for wrong-length input")
	}
}

func TestIntBytePaletteRoundTrip(t *testing.T) {
	values := make([]int32, 1024)
	for i := range values {
		values[i] = int32(0xFF000000 | (i%200)*7)
	}
	w := NewWriter()
	if err := EncodeIntBytePalette(w, values); err != nil {
		t.Fatal(err)
	}
	r := NewReader(w)
	got, err := DecodeIntBytePalette(r)
	if err != nil {
		t.Fatal(err)
	}
	for i := range values {
		if got[i] != values[i] {
			t.Fatalf("got[%d] = %d, want %d", i, got[i], values[i])
		}
	}
}
