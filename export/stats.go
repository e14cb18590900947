package export

import "sync"

// Stats accumulates export progress counters under a mutex (§5 "Stats
// accumulator: accessed under a mutex; only monotonic counters are
// added"), grounded on the teacher's ChunkCount/DimensionChunkCount
// bookkeeping in provider.go, generalized from a read accessor on a
// fixed in-memory world to a concurrent-write accumulator.
type Stats struct {
	mu sync.Mutex

	SurfaceArea    int64 // populated columns, across every exported chunk
	ChunksWritten  int64
	RegionsWritten int64
	WaterColumns   int64
	EntitiesPlaced int64
	PrefabMarkers  int64
}

func (s *Stats) addSurfaceArea(n int64) {
	s.mu.Lock()
	s.SurfaceArea += n
	s.mu.Unlock()
}

func (s *Stats) addChunk() {
	s.mu.Lock()
	s.ChunksWritten++
	s.mu.Unlock()
}

func (s *Stats) addRegion() {
	s.mu.Lock()
	s.RegionsWritten++
	s.mu.Unlock()
}

func (s *Stats) addWaterColumn() {
	s.mu.Lock()
	s.WaterColumns++
	s.mu.Unlock()
}

func (s *Stats) addEntity() {
	s.mu.Lock()
	s.EntitiesPlaced++
	s.mu.Unlock()
}

func (s *Stats) addPrefabMarker() {
	s.mu.Lock()
	s.PrefabMarkers++
	s.mu.Unlock()
}

// Snapshot returns a copy of the current counters, safe to read
// without racing concurrent workers.
func (s *Stats) Snapshot() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Stats{
		SurfaceArea:    s.SurfaceArea,
		ChunksWritten:  s.ChunksWritten,
		RegionsWritten: s.RegionsWritten,
		WaterColumns:   s.WaterColumns,
		EntitiesPlaced: s.EntitiesPlaced,
		PrefabMarkers:  s.PrefabMarkers,
	}
}
