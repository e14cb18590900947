package bsonchunk

import (
	"errors"
	"testing"

	"github.com/oriumgames/hytile/voxel"
)

func TestEnvironmentChunkRoundTrip(t *testing.T) {
	c := voxel.New(0, 0, 0, 32)
	if err := c.SetEnvironment(0, 0, "Env_Zone2_Desert"); err != nil {
		t.Fatalf("SetEnvironment: %v", err)
	}
	if err := c.SetEnvironment(31, 31, "Env_Zone5_Mountains"); err != nil {
		t.Fatalf("SetEnvironment: %v", err)
	}

	doc, err := buildEnvironmentChunk(c)
	if err != nil {
		t.Fatalf("buildEnvironmentChunk: %v", err)
	}
	ids, err := decodeEnvironmentChunk(dataDoc{Data: toBinary(t, doc)})
	if err != nil {
		t.Fatalf("decodeEnvironmentChunk: %v", err)
	}
	if len(ids) != voxel.ColumnCount {
		t.Fatalf("ids len = %d, want %d", len(ids), voxel.ColumnCount)
	}
	if ids[voxel.ColumnIndex(0, 0)] != 2 {
		t.Errorf("column (0,0) env id = %d, want 2 (Env_Zone2_Desert)", ids[voxel.ColumnIndex(0, 0)])
	}
	if ids[voxel.ColumnIndex(31, 31)] != 5 {
		t.Errorf("column (31,31) env id = %d, want 5 (Env_Zone5_Mountains)", ids[voxel.ColumnIndex(31, 31)])
	}
	if ids[voxel.ColumnIndex(1, 1)] != 1 {
		t.Errorf("default column env id = %d, want 1 (Default)", ids[voxel.ColumnIndex(1, 1)])
	}
}

func TestEnvironmentChunkUnknownName(t *testing.T) {
	c := voxel.New(0, 0, 0, 32)
	if err := c.SetEnvironment(0, 0, "Env_Nonexistent"); err != nil {
		t.Fatalf("SetEnvironment: %v", err)
	}
	_, err := buildEnvironmentChunk(c)
	if !errors.Is(err, ErrUnknownEnvironment) {
		t.Fatalf("err = %v, want ErrUnknownEnvironment", err)
	}
}
