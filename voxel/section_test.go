package voxel

import (
	"testing"

	"github.com/oriumgames/hytile/registry"
)

func TestSectionSetBlockClearsFluid(t *testing.T) {
	s := NewSection()
	water, _ := registry.BlockByID("Water_Source")
	if err := s.SetFluid(1, 2, 3, water.ID, 5); err != nil {
		t.Fatalf("SetFluid: %v", err)
	}
	stone, _ := registry.BlockByID("Rock_Stone")
	if err := s.SetBlock(1, 2, 3, stone); err != nil {
		t.Fatalf("SetBlock: %v", err)
	}
	if got := s.BlockID(1, 2, 3); got != "Rock_Stone" {
		t.Errorf("BlockID = %q, want Rock_Stone", got)
	}
	fluidID, level := s.Fluid(1, 2, 3)
	if fluidID != registry.EmptyBlockID || level != 0 {
		t.Errorf("Fluid = (%q,%d), want (Empty,0) after placing a solid block", fluidID, level)
	}
}

func TestSectionSetBlockFluidEquivalence(t *testing.T) {
	s := NewSection()
	water, _ := registry.BlockByID("Water_Source")
	if err := s.SetBlock(0, 0, 0, water); err != nil {
		t.Fatalf("SetBlock: %v", err)
	}
	if got := s.BlockID(0, 0, 0); got != registry.EmptyBlockID {
		t.Errorf("BlockID = %q, want Empty (fluid placement clears block)", got)
	}
	fluidID, level := s.Fluid(0, 0, 0)
	if fluidID != "Water_Source" || level != 1 {
		t.Errorf("Fluid = (%q,%d), want (Water_Source,1)", fluidID, level)
	}
}

func TestSectionFluidPaletteInsertsAfterEmpty(t *testing.T) {
	s := NewSection()
	if got := s.FluidPalette(); len(got) != 1 || got[0] != registry.EmptyBlockID {
		t.Fatalf("initial palette = %v, want [Empty]", got)
	}
	if err := s.SetFluid(0, 0, 0, "Water_Source", 3); err != nil {
		t.Fatal(err)
	}
	if err := s.SetFluid(1, 0, 0, "Lava_Source", 2); err != nil {
		t.Fatal(err)
	}
	if err := s.SetFluid(2, 0, 0, "Water_Source", 9); err != nil {
		t.Fatal(err)
	}
	palette := s.FluidPalette()
	want := []string{registry.EmptyBlockID, "Water_Source", "Lava_Source"}
	if len(palette) != len(want) {
		t.Fatalf("palette = %v, want %v", palette, want)
	}
	for i := range want {
		if palette[i] != want[i] {
			t.Errorf("palette[%d] = %q, want %q", i, palette[i], want[i])
		}
	}
}

func TestSectionClearFluidResetsIndex(t *testing.T) {
	s := NewSection()
	if err := s.SetFluid(5, 5, 5, "Water_Source", 4); err != nil {
		t.Fatal(err)
	}
	if err := s.ClearFluid(5, 5, 5); err != nil {
		t.Fatal(err)
	}
	fluidID, level := s.Fluid(5, 5, 5)
	if fluidID != registry.EmptyBlockID || level != 0 {
		t.Errorf("Fluid after clear = (%q,%d), want (Empty,0)", fluidID, level)
	}
}

func TestSectionOutOfRange(t *testing.T) {
	s := NewSection()
	rock, _ := registry.BlockByID("Rock_Stone")
	cases := []struct {
		x, y, z int
	}{{-1, 0, 0}, {32, 0, 0}, {0, -1, 0}, {0, 32, 0}, {0, 0, -1}, {0, 0, 32}}
	for _, c := range cases {
		if err := s.SetBlock(c.x, c.y, c.z, rock); err != ErrOutOfRange {
			t.Errorf("SetBlock(%d,%d,%d) = %v, want ErrOutOfRange", c.x, c.y, c.z, err)
		}
	}
	if err := s.SetRotation(0, 0, 0, 64); err != ErrOutOfRange {
		t.Errorf("SetRotation(rot=64) = %v, want ErrOutOfRange", err)
	}
	if err := s.SetFluid(0, 0, 0, "Water_Source", 16); err != ErrOutOfRange {
		t.Errorf("SetFluid(level=16) = %v, want ErrOutOfRange", err)
	}
}

func TestSectionIsEmpty(t *testing.T) {
	s := NewSection()
	if !s.IsEmpty() {
		t.Fatal("new section should be empty")
	}
	rock, _ := registry.BlockByID("Rock_Stone")
	if err := s.SetBlock(0, 0, 0, rock); err != nil {
		t.Fatal(err)
	}
	if s.IsEmpty() {
		t.Fatal("section with a block should not be empty")
	}
}

func TestIndexOrderingYOutermost(t *testing.T) {
	// index = (y<<10)|(z<<5)|x: incrementing y must jump by 1024.
	if Index(0, 1, 0)-Index(0, 0, 0) != 1024 {
		t.Errorf("y step = %d, want 1024", Index(0, 1, 0)-Index(0, 0, 0))
	}
	if Index(0, 0, 1)-Index(0, 0, 0) != 32 {
		t.Errorf("z step = %d, want 32", Index(0, 0, 1)-Index(0, 0, 0))
	}
	if Index(1, 0, 0)-Index(0, 0, 0) != 1 {
		t.Errorf("x step = %d, want 1", Index(1, 0, 0)-Index(0, 0, 0))
	}
}
