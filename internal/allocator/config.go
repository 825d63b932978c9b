package allocator

import "unsafe"

// Tunables. WSIZE/DSIZE/MINBLOCKSIZE are structural: the red-black node
// embedded in a free block's payload (parent/left/right/color at offsets
// 0/8/16/24, see rbtree.go) fixes the minimum block size at 48, and the
// header/footer width fixes WSIZE/DSIZE. Only CHUNKSIZE is a genuine policy
// knob, so it is the only one exposed through Option.
const (
	wsize        = 4  // header/footer width, bytes
	dsize        = 8  // payload alignment, bytes
	defaultChunk = 4096
	minBlockSize = 48 // must hold the RBT node (32B) plus header+footer
)

// Config holds the tunable parameters of a Heap.
type Config struct {
	ChunkSize uintptr
}

// Option mutates a Config. Follows the functional-options pattern used
// throughout this codebase's allocator family.
type Option func(*Config)

func defaultConfig() *Config {
	return &Config{ChunkSize: defaultChunk}
}

// WithChunkSize overrides the amount of heap requested from the Provider
// each time the free-block index has no block large enough to serve a
// request. n is rounded up to a multiple of DSIZE.
func WithChunkSize(n uintptr) Option {
	return func(c *Config) { c.ChunkSize = alignUp(n, dsize) }
}

// alignUp rounds size up to the nearest multiple of alignment, which must
// be a power of two.
func alignUp(size, alignment uintptr) uintptr {
	return (size + alignment - 1) &^ (alignment - 1)
}

// copyMemory copies size bytes from src to dst. Both must reference at
// least size valid bytes; the allocator never calls this with overlapping
// ranges.
func copyMemory(dst, src unsafe.Pointer, size uintptr) {
	dstSlice := (*[1 << 30]byte)(dst)[:size:size]
	srcSlice := (*[1 << 30]byte)(src)[:size:size]
	copy(dstSlice, srcSlice)
}
