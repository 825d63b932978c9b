// Package allocator implements a best-fit heap allocator over a single
// contiguous, extensible byte region: a red-black tree keyed by free-block
// size (rbtree.go) embedded in the payload of free blocks (block.go),
// kept consistent with the physical heap by a boundary-tag coalescing
// engine (coalesce.go) and driven by a best-fit allocation policy
// (policy.go). See the package's design notes for the full layout.
package allocator

import (
	"unsafe"

	ozerrors "github.com/heapcraft/rbtalloc/internal/errors"
)

// Stats reports read-only instrumentation about a Heap. It participates in
// no allocation decision; it exists purely so a driver can observe
// throughput and fragmentation, following the Stats() convention this
// codebase's allocator family already uses.
type Stats struct {
	BytesAllocated  uintptr
	BytesFreed      uintptr
	AllocationCount uint64
	FreeCount       uint64
	BytesInUse      uintptr
	FreeBlockCount  int
}

// Heap is one instance of the allocator: its own managed region (via a
// Provider), its own free-block index, and its own NIL sentinel. Nothing
// here is package-global, so tests (and, in principle, a driver) can run
// several independently.
type Heap struct {
	provider Provider
	config   *Config
	tree     *tree
	epilogue unsafe.Pointer // address of the epilogue's header word

	stats Stats
}

// New initializes a Heap: it asks provider for 16 bytes to lay down the
// alignment pad, the prologue and the epilogue, then extends by one
// CHUNKSIZE to create the first free block. Returns an error instead of
// panicking if the provider refuses either extend.
func New(provider Provider, opts ...Option) (*Heap, error) {
	config := defaultConfig()
	for _, opt := range opts {
		opt(config)
	}

	h := &Heap{
		provider: provider,
		config:   config,
		tree:     newTree(),
	}

	base, err := provider.Extend(4 * wsize)
	if err != nil {
		return nil, ozerrors.ProviderFailure("init", 4*wsize)
	}

	// Word 0: alignment pad (unused, keeps the prologue's payload
	// DSIZE-aligned). Words 1-2: prologue header/footer, size 8,
	// allocated. Word 3: epilogue header, size 0, allocated.
	storeWord(base, 0)

	prologue := unsafe.Pointer(uintptr(base) + wsize)
	storeWord(prologue, packTag(2*wsize, true))
	storeWord(unsafe.Pointer(uintptr(prologue)+wsize), packTag(2*wsize, true))

	h.epilogue = unsafe.Pointer(uintptr(prologue) + 2*wsize)
	storeWord(h.epilogue, packTag(0, true))

	if _, err := h.extendHeap(config.ChunkSize / wsize); err != nil {
		return nil, ozerrors.ProviderFailure("init", config.ChunkSize)
	}

	return h, nil
}

// extendHeap grows the region by words 4-byte words (rounded up to an even
// count to preserve 8-byte alignment), turns the freshly extended bytes
// into one new free block in place of the old epilogue, lays a new
// epilogue past it, and coalesces the new block with whatever free block
// may already sit just before it.
func (h *Heap) extendHeap(words uintptr) (block, error) {
	if words%2 != 0 {
		words++
	}

	nbytes := words * wsize

	ptr, err := h.provider.Extend(nbytes)
	if err != nil {
		return nil, err
	}

	// ptr is the end of the previous region, one word past the old
	// epilogue header; that header word becomes the new block's header.
	blockStart := unsafe.Pointer(uintptr(ptr) - wsize)
	bp := block(ptr)

	writeBlock(bp, nbytes, false)

	h.epilogue = unsafe.Pointer(uintptr(blockStart) + nbytes)
	storeWord(h.epilogue, packTag(0, true))

	return h.coalesce(bp), nil
}

// Stats returns a snapshot of this Heap's allocation statistics. FreeCount
// counts calls to Free with a non-nil argument; FreeBlockCount walks the
// index once (O(n) in the number of free blocks) and BytesInUse walks the
// physical block list once (summing allocated block sizes), so Stats is not
// cheap to poll in a hot loop.
func (h *Heap) Stats() Stats {
	s := h.stats
	s.FreeBlockCount = h.tree.count()

	// Walk backward from the epilogue; the prologue is the only block of
	// size 2*WSIZE.
	epi := block(unsafe.Pointer(uintptr(h.epilogue) + wsize))
	for bp := prevBlock(epi); blockSize(bp) != 2*wsize; bp = prevBlock(bp) {
		if blockAllocated(bp) {
			s.BytesInUse += blockSize(bp)
		}
	}

	return s
}
