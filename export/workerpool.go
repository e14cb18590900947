package export

import (
	"math"
	"os"
	"path/filepath"
	"runtime/debug"
	"time"

	"github.com/klauspost/compress/zstd"
)

const bytesPerGiB = 1 << 30

// memoryCapBytes is the soft per-process memory ceiling used by
// workerCount, read from the runtime's GOMEMLIMIT unless overridden.
func memoryCapBytes(override int64) int64 {
	if override > 0 {
		return override
	}
	limit := debug.SetMemoryLimit(-1) // query without changing
	if limit <= 0 || limit == math.MaxInt64 {
		return 0 // no limit configured; memoryCap() below treats 0 as unbounded
	}
	return limit
}

// memoryCap implements §5's memory_cap = max(1, floor(heap_max / 1.5 GiB)).
// A zero capBytes (no GOMEMLIMIT set) is treated as unbounded.
func memoryCap(capBytes int64) int {
	if capBytes <= 0 {
		return 1 << 30 // effectively unbounded; other factors in min() govern
	}
	n := int(capBytes / (3 * bytesPerGiB / 2))
	if n < 1 {
		n = 1
	}
	return n
}

// probedWorkerCap probes an 8 MiB write to dir to estimate disk
// throughput and picks the matching default cap (§5).
func probedWorkerCap(dir string) int {
	f, err := os.CreateTemp(dir, "hyexport-probe-*.tmp")
	if err != nil {
		return 2
	}
	path := f.Name()
	defer os.Remove(path)
	defer f.Close()

	enc, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return 2
	}
	sample := make([]byte, 8<<20)
	start := time.Now()
	_, werr := enc.Write(sample)
	cerr := enc.Close()
	elapsed := time.Since(start)
	if werr != nil || cerr != nil || elapsed <= 0 {
		return 2
	}

	mbPerSec := float64(len(sample)) / (1 << 20) / elapsed.Seconds()
	switch {
	case mbPerSec >= 300:
		return 4
	case mbPerSec >= 150:
		return 3
	default:
		return 2
	}
}

// workerCount resolves the export driver's worker-pool size: the
// configured cap (explicit or probed), the memory cap, and the region
// count, whichever is smallest (§5). A true hasCustomLayers forces a
// cap of 1, since custom-object exporters are not designed for
// cross-region concurrency.
func workerCount(opts Options, regions int, hasCustomLayers bool) int {
	if hasCustomLayers {
		return 1
	}
	if regions < 1 {
		regions = 1
	}
	configured := opts.WorkerCap
	if configured <= 0 {
		configured = probedWorkerCap(probeDir(opts.TargetDir))
	}
	workerCap := configured
	if mc := memoryCap(memoryCapBytes(opts.MemoryCapBytes)); mc < workerCap {
		workerCap = mc
	}
	if regions < workerCap {
		workerCap = regions
	}
	if workerCap < 1 {
		workerCap = 1
	}
	return workerCap
}

func probeDir(target string) string {
	if target == "" {
		return os.TempDir()
	}
	if err := os.MkdirAll(target, 0o755); err != nil {
		return os.TempDir()
	}
	return filepath.Clean(target)
}
