package bsonchunk

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/oriumgames/hytile/voxel"
)

func TestWorldPainterMetadataAbsentWhenEmpty(t *testing.T) {
	c := voxel.New(0, 0, 0, 32)
	if _, ok := buildWorldPainterMetadata(c); ok {
		t.Fatal("expected ok=false for a chunk with no painter metadata")
	}
}

func TestWorldPainterMetadataRoundTrip(t *testing.T) {
	c := voxel.New(0, 0, 0, 32)
	if err := c.SetWaterTintOverride(3, 4, "#ABCDEF"); err != nil {
		t.Fatalf("SetWaterTintOverride: %v", err)
	}
	if err := c.SetSpawnDensityOverride(1, 1, 2.5); err != nil {
		t.Fatalf("SetSpawnDensityOverride: %v", err)
	}
	if err := c.SetSpawnTag(1, 1, "boss_room"); err != nil {
		t.Fatalf("SetSpawnTag: %v", err)
	}
	c.AddPrefabMarker(voxel.PrefabMarker{X: 7, Y: 8, Z: 9, Category: "ruins", Path: "ruins/keep"})

	doc, ok := buildWorldPainterMetadata(c)
	if !ok {
		t.Fatal("expected ok=true")
	}
	raw, err := bson.Marshal(doc)
	if err != nil {
		t.Fatalf("bson.Marshal: %v", err)
	}
	var decoded painterDoc
	if err := bson.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("bson.Unmarshal: %v", err)
	}

	got := voxel.New(0, 0, 0, 32)
	if err := applyPainterMetadata(got, &decoded); err != nil {
		t.Fatalf("applyPainterMetadata: %v", err)
	}
	if hex, has := got.WaterTintOverride(3, 4); !has || hex != "#ABCDEF" {
		t.Errorf("water tint = (%q, %v), want (#ABCDEF, true)", hex, has)
	}
	if density, has := got.SpawnDensityOverride(1, 1); !has || density != 2.5 {
		t.Errorf("spawn density = (%v, %v), want (2.5, true)", density, has)
	}
	if tag, has := got.SpawnTag(1, 1); !has || tag != "boss_room" {
		t.Errorf("spawn tag = (%q, %v), want (boss_room, true)", tag, has)
	}
	if len(got.PrefabMarkers) != 1 || got.PrefabMarkers[0].Path != "ruins/keep" {
		t.Errorf("prefab markers = %+v", got.PrefabMarkers)
	}
}

func TestApplyPainterMetadataNil(t *testing.T) {
	c := voxel.New(0, 0, 0, 32)
	if err := applyPainterMetadata(c, nil); err != nil {
		t.Fatalf("applyPainterMetadata(nil) should be a no-op, got %v", err)
	}
}
