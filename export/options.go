package export

import (
	"log"

	"github.com/oriumgames/hytile/region"
)

// LightingMode selects how the serializer approximates light octrees
// for a section (§4.6 "Lighting approximation", DESIGN.md Open Question
// decision).
type LightingMode int

const (
	// LightingFlat bakes every section fully lit, matching the
	// original implementation's observed non-raytraced fast path.
	LightingFlat LightingMode = iota
	// LightingStricter compares each section's Y range against the
	// column heightmap: fully dark below every column, fully lit at or
	// above every column, fully lit for a mixed section.
	LightingStricter
)

// Options configures a Driver (§4.6, §5). Zero value is a usable
// default: flat lighting, an adaptive worker cap, no explicit memory
// cap, and a discarding logger.
type Options struct {
	// TargetDir is the world output directory. Created if missing.
	TargetDir string

	// WorkerCap overrides the adaptive worker-pool sizing (§5) when
	// > 0. Leave 0 to probe write throughput and size automatically.
	WorkerCap int

	// MemoryCapBytes overrides the runtime-reported soft memory limit
	// used for memory_cap = max(1, floor(MemoryCapBytes / 1.5 GiB))
	// (§5). Leave 0 to read the process's GOMEMLIMIT.
	MemoryCapBytes int64

	Lighting LightingMode

	// RegionOptions configures every region.File this driver creates.
	RegionOptions region.Options

	// Logger receives diagnostic lines; the driver logs custom-layer
	// fixups it discards for falling outside their region, and writes no
	// progress lines. Nil defaults to a discarding logger.
	Logger *log.Logger
}
