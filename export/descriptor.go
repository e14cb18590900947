package export

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/oriumgames/hytile/editorworld"
)

// fixedGameTime is the timestamp every freshly exported world carries
// (§6): the original implementation has no notion of elapsed time at
// export, so every export is stamped identically.
const fixedGameTime = "0001-01-01T05:30:00.000000000Z"

const descriptorVersion = 4

// binaryUUID marshals as BSON-style extended JSON, `{"$binary":
// <base64>, "$type":"04"}`, RFC4122 bytes big-endian (§6).
type binaryUUID uuid.UUID

func (u binaryUUID) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Binary string `json:"$binary"`
		Type   string `json:"$type"`
	}{
		Binary: base64.StdEncoding.EncodeToString(u[:]),
		Type:   "04",
	})
}

type spawnPointJSON struct {
	X int32 `json:"x"`
	Y int32 `json:"y"`
	Z int32 `json:"z"`
}

type spawnProviderJSON struct {
	Type       string         `json:"type"`
	SpawnPoint spawnPointJSON `json:"spawn_point"`
}

type namedTypeJSON struct {
	Type string `json:"type"`
}

// descriptorJSON is config.json (§4.6, §6). Field order mirrors the
// key order §4.6 specifies; json.Marshal preserves struct field order.
type descriptorJSON struct {
	Version       int               `json:"version"`
	UUID          binaryUUID        `json:"uuid"`
	Seed          int64             `json:"seed"`
	Worldgen      namedTypeJSON     `json:"worldgen"`
	ChunkStorage  namedTypeJSON     `json:"chunk_storage"`
	GameMode      string            `json:"game_mode"`
	GameTime      string            `json:"GameTime"`
	SpawnProvider spawnProviderJSON `json:"spawn_provider"`
	ClientEffects map[string]any    `json:"client_effects"`
	Flags         map[string]any    `json:"flags"`
}

func gameModeString(g editorworld.GameType) string {
	if g == editorworld.GameCreative {
		return "Creative"
	}
	return "Adventure"
}

// writeDescriptor writes the pretty-printed config.json describing the
// exported world (§4.6). spawnX/spawnY/spawnZ are already translated by
// block_offset.
func writeDescriptor(dir string, id uuid.UUID, seed int64, gameType editorworld.GameType, spawnX, spawnY, spawnZ int32) error {
	doc := descriptorJSON{
		Version:      descriptorVersion,
		UUID:         binaryUUID(id),
		Seed:         seed,
		Worldgen:     namedTypeJSON{Type: "Void"},
		ChunkStorage: namedTypeJSON{Type: "Hytale"},
		GameMode:     gameModeString(gameType),
		GameTime:     fixedGameTime,
		SpawnProvider: spawnProviderJSON{
			Type:       "Global",
			SpawnPoint: spawnPointJSON{X: spawnX, Y: spawnY, Z: spawnZ},
		},
		ClientEffects: map[string]any{},
		Flags:         map[string]any{},
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("export: marshal config.json: %w", err)
	}
	path := filepath.Join(dir, "config.json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("export: write %s: %w", path, err)
	}
	return nil
}

// writeResources writes the resource files adjacent to the chunk
// directory (§4.6). The original's PrefabEditSession/InstanceData
// schemas are editor session state, irrelevant to a loaded world;
// this writes structurally-valid placeholders rather than guessing an
// undocumented schema.
func writeResources(dir string) error {
	resDir := filepath.Join(dir, "resources")
	if err := os.MkdirAll(resDir, 0o755); err != nil {
		return fmt.Errorf("export: create %s: %w", resDir, err)
	}
	files := map[string]any{
		"PrefabEditSession.json": map[string]any{"prefabs": []any{}},
		"InstanceData.json":      map[string]any{"instances": []any{}},
	}
	for name, content := range files {
		data, err := json.MarshalIndent(content, "", "  ")
		if err != nil {
			return fmt.Errorf("export: marshal %s: %w", name, err)
		}
		path := filepath.Join(resDir, name)
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("export: write %s: %w", path, err)
		}
	}
	return nil
}
