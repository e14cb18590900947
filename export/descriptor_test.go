package export

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"

	"github.com/oriumgames/hytile/editorworld"
)

func TestWriteDescriptorKeyOrderAndFields(t *testing.T) {
	dir := t.TempDir()
	id := uuid.MustParse("01234567-89ab-cdef-0123-456789abcdef")

	if err := writeDescriptor(dir, id, 42, editorworld.GameCreative, 10, 70, -5); err != nil {
		t.Fatalf("writeDescriptor: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "config.json"))
	if err != nil {
		t.Fatalf("read config.json: %v", err)
	}

	wantOrder := []string{"version", "uuid", "seed", "worldgen", "chunk_storage", "game_mode", "GameTime", "spawn_provider", "client_effects", "flags"}
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil || tok != json.Delim('{') {
		t.Fatalf("expected opening brace, got %v err %v", tok, err)
	}
	var gotOrder []string
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			t.Fatalf("token: %v", err)
		}
		key, ok := keyTok.(string)
		if !ok {
			t.Fatalf("expected string key, got %v", keyTok)
		}
		gotOrder = append(gotOrder, key)
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			t.Fatalf("decode value for %s: %v", key, err)
		}
	}
	if len(gotOrder) != len(wantOrder) {
		t.Fatalf("key count = %d, want %d (%v)", len(gotOrder), len(wantOrder), gotOrder)
	}
	for i, k := range wantOrder {
		if gotOrder[i] != k {
			t.Errorf("key[%d] = %q, want %q", i, gotOrder[i], k)
		}
	}

	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if doc["GameTime"] != fixedGameTime {
		t.Errorf("GameTime = %v, want %v", doc["GameTime"], fixedGameTime)
	}
	if doc["game_mode"] != "Creative" {
		t.Errorf("game_mode = %v, want Creative", doc["game_mode"])
	}
	uuidField, ok := doc["uuid"].(map[string]any)
	if !ok {
		t.Fatalf("uuid field is not an object: %v", doc["uuid"])
	}
	if uuidField["$type"] != "04" {
		t.Errorf("$type = %v, want 04", uuidField["$type"])
	}
	if _, ok := uuidField["$binary"].(string); !ok {
		t.Errorf("$binary missing or not a string: %v", uuidField["$binary"])
	}
}

func TestGameModeString(t *testing.T) {
	if got := gameModeString(editorworld.GameAdventure); got != "Adventure" {
		t.Errorf("gameModeString(Adventure) = %q, want Adventure", got)
	}
	if got := gameModeString(editorworld.GameCreative); got != "Creative" {
		t.Errorf("gameModeString(Creative) = %q, want Creative", got)
	}
}

func TestWriteResourcesCreatesPlaceholders(t *testing.T) {
	dir := t.TempDir()
	if err := writeResources(dir); err != nil {
		t.Fatalf("writeResources: %v", err)
	}
	for _, name := range []string{"PrefabEditSession.json", "InstanceData.json"} {
		path := filepath.Join(dir, "resources", name)
		if _, err := os.Stat(path); err != nil {
			t.Errorf("expected %s to exist: %v", path, err)
		}
	}
}
