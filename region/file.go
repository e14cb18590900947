package region

import (
	"encoding/binary"
	"fmt"
	"os"

	"github.com/klauspost/compress/zstd"

	"github.com/oriumgames/hytile/bsonchunk"
	"github.com/oriumgames/hytile/voxel"
)

const (
	magic           = "HytaleIndexedStorage"
	fileVersion     = 1
	headerLen       = 32
	defaultBlobs    = 1024 // 32x32
	defaultSegments = 4096
	blobHeaderLen   = 8 // u32 src_len, u32 compressed_len
	regionSide      = 32 // chunks per region axis
)

// CompressionLevel mirrors the teacher's compression-level enum,
// mapped onto zstd's speed presets rather than raw compression numbers.
type CompressionLevel int

const (
	CompressionLevelFast CompressionLevel = iota
	CompressionLevelDefault
	CompressionLevelBest
)

func (c CompressionLevel) zstdLevel() zstd.EncoderLevel {
	switch c {
	case CompressionLevelFast:
		return zstd.SpeedFastest
	case CompressionLevelBest:
		return zstd.SpeedBestCompression
	default:
		return zstd.SpeedDefault
	}
}

// Options configures a newly created region file.
type Options struct {
	// BlobCount is the number of chunk slots; 0 means defaultBlobs (1024).
	BlobCount uint32
	// SegmentSize is the segment granularity in bytes; 0 means defaultSegments (4096).
	SegmentSize uint32
	// CompressionLevel controls WriteChunk's Zstd encoder.
	CompressionLevel CompressionLevel
}

func (o Options) normalized() Options {
	if o.BlobCount == 0 {
		o.BlobCount = defaultBlobs
	}
	if o.SegmentSize == 0 {
		o.SegmentSize = defaultSegments
	}
	return o
}

// File is one open IndexedStorageFile region (spec.md §4.5). A File is
// single-writer: concurrent exports must target different region files.
type File struct {
	path             string
	f                *os.File
	rx, rz           int32
	blobCount        uint32
	segmentSize      uint32
	compressionLevel CompressionLevel

	blobIndex    []uint32 // slot -> first segment (1-based), 0 = empty
	blobSegCount []uint32 // slot -> segment run length, valid when blobIndex[slot] != 0
	used         []bool   // segment -> claimed; index 0 reserved, always true
}

// Create makes a new region file at path for region (rx,rz), truncating
// any existing file, and writes the header and an all-zero blob index.
func Create(path string, rx, rz int32, opts Options) (*File, error) {
	opts = opts.normalized()
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create region file %s: %w", path, err)
	}

	rf := &File{
		path:             path,
		f:                f,
		rx:               rx,
		rz:               rz,
		blobCount:        opts.BlobCount,
		segmentSize:      opts.SegmentSize,
		compressionLevel: opts.CompressionLevel,
		blobIndex:        make([]uint32, opts.BlobCount),
		blobSegCount:     make([]uint32, opts.BlobCount),
		used:             []bool{true},
	}

	if err := rf.writeHeader(); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("create region file %s: %w", path, err)
	}
	if err := rf.writeBlobIndex(); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("create region file %s: %w", path, err)
	}
	return rf, nil
}

// Open opens an existing region file at path for region (rx,rz),
// validating the header and reconstructing the used-segment bitset by
// scanning every claimed blob's length.
func Open(path string, rx, rz int32) (*File, error) {
	f, err := os.OpenFile(path, os.O_RDWR, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open region file %s: %w", path, err)
	}

	rf := &File{path: path, f: f, rx: rx, rz: rz, used: []bool{true}}
	if err := rf.readHeader(); err != nil {
		_ = f.Close()
		return nil, err
	}
	if err := rf.readBlobIndex(); err != nil {
		_ = f.Close()
		return nil, err
	}
	if err := rf.reconstructUsedSegments(); err != nil {
		_ = f.Close()
		return nil, err
	}
	return rf, nil
}

func (f *File) writeHeader() error {
	buf := make([]byte, headerLen)
	copy(buf, magic)
	binary.BigEndian.PutUint32(buf[20:], fileVersion)
	binary.BigEndian.PutUint32(buf[24:], f.blobCount)
	binary.BigEndian.PutUint32(buf[28:], f.segmentSize)
	_, err := f.f.WriteAt(buf, 0)
	return err
}

func (f *File) readHeader() error {
	buf := make([]byte, headerLen)
	if _, err := f.f.ReadAt(buf, 0); err != nil {
		return fmt.Errorf("%w: read header of %s: %v", ErrFormatMismatch, f.path, err)
	}
	if string(buf[:20]) != magic {
		return fmt.Errorf("%w: %s has wrong magic", ErrFormatMismatch, f.path)
	}
	version := binary.BigEndian.Uint32(buf[20:24])
	if version != fileVersion {
		return fmt.Errorf("%w: %s has version %d, want %d", ErrFormatMismatch, f.path, version, fileVersion)
	}
	f.blobCount = binary.BigEndian.Uint32(buf[24:28])
	f.segmentSize = binary.BigEndian.Uint32(buf[28:32])
	f.blobIndex = make([]uint32, f.blobCount)
	f.blobSegCount = make([]uint32, f.blobCount)
	return nil
}

func (f *File) blobIndexOffset() int64 { return headerLen }

func (f *File) writeBlobIndex() error {
	buf := make([]byte, f.blobCount*4)
	for i, v := range f.blobIndex {
		binary.BigEndian.PutUint32(buf[i*4:], v)
	}
	_, err := f.f.WriteAt(buf, f.blobIndexOffset())
	return err
}

func (f *File) writeBlobIndexEntry(slot int) error {
	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], f.blobIndex[slot])
	_, err := f.f.WriteAt(buf[:], f.blobIndexOffset()+int64(slot)*4)
	return err
}

func (f *File) readBlobIndex() error {
	buf := make([]byte, f.blobCount*4)
	if _, err := f.f.ReadAt(buf, f.blobIndexOffset()); err != nil {
		return fmt.Errorf("read blob index of %s: %w", f.path, err)
	}
	for i := range f.blobIndex {
		f.blobIndex[i] = binary.BigEndian.Uint32(buf[i*4:])
	}
	return nil
}

func (f *File) segmentOffset(seg uint32) int64 {
	return headerLen + int64(f.blobCount)*4 + int64(seg-1)*int64(f.segmentSize)
}

func segmentsNeeded(payloadLen int, segmentSize uint32) int {
	total := blobHeaderLen + payloadLen
	return (total + int(segmentSize) - 1) / int(segmentSize)
}

func (f *File) reconstructUsedSegments() error {
	for slot, seg := range f.blobIndex {
		if seg == 0 {
			continue
		}
		hdr := make([]byte, blobHeaderLen)
		if _, err := f.f.ReadAt(hdr, f.segmentOffset(seg)); err != nil {
			return fmt.Errorf("%w: slot %d header of %s: %v", ErrCorruption, slot, f.path, err)
		}
		compressedLen := binary.BigEndian.Uint32(hdr[4:8])
		segs := segmentsNeeded(int(compressedLen), f.segmentSize)
		f.blobSegCount[slot] = uint32(segs)
		f.markRange(int(seg), segs, true)
	}
	return nil
}

func (f *File) ensureCapacity(upTo int) {
	for len(f.used) <= upTo {
		f.used = append(f.used, false)
	}
}

func (f *File) markRange(start, count int, val bool) {
	f.ensureCapacity(start + count - 1)
	for i := start; i < start+count; i++ {
		f.used[i] = val
	}
}

// findFreeRun returns the lowest segment index starting a contiguous
// run of `need` free segments (first-fit, §4.5 step 3).
func (f *File) findFreeRun(need int) int {
	run := 0
	for k := 1; k < len(f.used); k++ {
		if !f.used[k] {
			run++
			if run == need {
				return k - need + 1
			}
		} else {
			run = 0
		}
	}
	// Segments past the end are free: extend a trailing free run.
	return len(f.used) - run
}

// WriteChunk serializes chunk to BSON, Zstd-compresses it, and stores
// it in slot (lx,lz), freeing any segments the slot previously held
// (spec.md §4.5 write_chunk).
func (f *File) WriteChunk(lx, lz int, chunk *voxel.Chunk, opts bsonchunk.Options) error {
	slot, err := f.slotIndex(lx, lz)
	if err != nil {
		return err
	}

	data, err := bsonchunk.EncodeChunk(chunk, opts)
	if err != nil {
		return fmt.Errorf("encode chunk (%d,%d) in %s: %w", lx, lz, f.path, err)
	}

	enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(f.compressionLevel.zstdLevel()))
	if err != nil {
		return fmt.Errorf("create zstd encoder: %w", err)
	}
	compressed := enc.EncodeAll(data, make([]byte, 0, len(data)))
	enc.Close()

	need := segmentsNeeded(len(compressed), f.segmentSize)

	if old := f.blobIndex[slot]; old != 0 {
		f.markRange(int(old), int(f.blobSegCount[slot]), false)
	}

	start := f.findFreeRun(need)
	f.markRange(start, need, true)

	payload := make([]byte, blobHeaderLen+len(compressed))
	binary.BigEndian.PutUint32(payload[0:4], uint32(len(data)))
	binary.BigEndian.PutUint32(payload[4:8], uint32(len(compressed)))
	copy(payload[8:], compressed)

	if _, err := f.f.WriteAt(payload, f.segmentOffset(uint32(start))); err != nil {
		return fmt.Errorf("write chunk (%d,%d) in %s: %w", lx, lz, f.path, err)
	}

	f.blobIndex[slot] = uint32(start)
	f.blobSegCount[slot] = uint32(need)
	if err := f.writeBlobIndexEntry(slot); err != nil {
		return fmt.Errorf("update blob index (%d,%d) in %s: %w", lx, lz, f.path, err)
	}
	return nil
}

// ReadChunk reverses WriteChunk, returning ok=false if the slot is
// empty.
func (f *File) ReadChunk(lx, lz int, minY, maxY int32) (chunk *voxel.Chunk, ok bool, err error) {
	slot, err := f.slotIndex(lx, lz)
	if err != nil {
		return nil, false, err
	}
	seg := f.blobIndex[slot]
	if seg == 0 {
		return nil, false, nil
	}

	hdr := make([]byte, blobHeaderLen)
	if _, err := f.f.ReadAt(hdr, f.segmentOffset(seg)); err != nil {
		return nil, false, fmt.Errorf("read chunk (%d,%d) header in %s: %w", lx, lz, f.path, err)
	}
	srcLen := binary.BigEndian.Uint32(hdr[0:4])
	compressedLen := binary.BigEndian.Uint32(hdr[4:8])

	compressed := make([]byte, compressedLen)
	if _, err := f.f.ReadAt(compressed, f.segmentOffset(seg)+blobHeaderLen); err != nil {
		return nil, false, fmt.Errorf("read chunk (%d,%d) payload in %s: %w", lx, lz, f.path, err)
	}

	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, false, fmt.Errorf("create zstd decoder: %w", err)
	}
	defer dec.Close()
	data, err := dec.DecodeAll(compressed, make([]byte, 0, srcLen))
	if err != nil {
		return nil, false, fmt.Errorf("%w: decompress chunk (%d,%d) in %s: %v", ErrCorruption, lx, lz, f.path, err)
	}
	if uint32(len(data)) != srcLen {
		return nil, false, fmt.Errorf("%w: chunk (%d,%d) in %s: decompressed %d bytes, want %d", ErrCorruption, lx, lz, f.path, len(data), srcLen)
	}

	cx := f.rx*regionSide + int32(lx)
	cz := f.rz*regionSide + int32(lz)
	c, err := bsonchunk.DecodeChunk(data, cx, cz, minY, maxY)
	if err != nil {
		return nil, false, fmt.Errorf("decode chunk (%d,%d) in %s: %w", lx, lz, f.path, err)
	}
	return c, true, nil
}

func (f *File) slotIndex(lx, lz int) (int, error) {
	if lx < 0 || lx >= regionSide || lz < 0 || lz >= regionSide {
		return 0, fmt.Errorf("region: slot (%d,%d) out of range for %s", lx, lz, f.path)
	}
	slot := lz*regionSide + lx
	if uint32(slot) >= f.blobCount {
		return 0, fmt.Errorf("region: slot (%d,%d) out of range for %s", lx, lz, f.path)
	}
	return slot, nil
}

// UsedSegments reports how many segments are currently claimed by live
// blobs, for diagnostics and the region-overflow test scenario.
func (f *File) UsedSegments() int {
	n := 0
	for i := 1; i < len(f.used); i++ {
		if f.used[i] {
			n++
		}
	}
	return n
}

// Flush forces the OS to persist pending writes.
func (f *File) Flush() error {
	if err := f.f.Sync(); err != nil {
		return fmt.Errorf("flush region file %s: %w", f.path, err)
	}
	return nil
}

// Close closes the underlying file. It does not call Flush.
func (f *File) Close() error {
	if err := f.f.Close(); err != nil {
		return fmt.Errorf("close region file %s: %w", f.path, err)
	}
	return nil
}
