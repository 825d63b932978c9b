package allocator

import "unsafe"

// Allocate serves a request for n payload bytes with the smallest free
// block that fits, splitting it if the remainder would still be a valid
// block, or extending the heap if no free block is large enough. Returns
// NONE (nil) if n is zero or the heap cannot be extended.
func (h *Heap) Allocate(n uint32) unsafe.Pointer {
	if n == 0 {
		return nil
	}

	asize := adjustedSize(n)

	if bp := h.tree.bestFit(asize); bp != nil {
		return unsafe.Pointer(h.place(bp, asize))
	}

	want := asize
	if h.config.ChunkSize > want {
		want = h.config.ChunkSize
	}

	bp, err := h.extendHeap(want / wsize)
	if err != nil {
		return nil
	}

	return unsafe.Pointer(h.place(bp, asize))
}

// place removes bp (size csize, currently free and indexed) from the
// tree, splits off a free remainder when that remainder would still meet
// minBlockSize, and marks the served prefix allocated. The remainder, if
// any, is inserted directly rather than routed through coalesce: bp came
// out of the index, so its next physical neighbor was already allocated
// before this call (no two free blocks are ever left adjacent), and
// splitting never changes that neighbor.
func (h *Heap) place(bp block, asize uintptr) block {
	csize := blockSize(bp)
	h.tree.remove(bp)

	if csize-asize >= minBlockSize {
		writeBlock(bp, asize, true)
		remainder := nextBlock(bp)
		writeBlock(remainder, csize-asize, false)
		h.tree.insert(remainder)
		h.stats.BytesAllocated += asize
	} else {
		writeBlock(bp, csize, true)
		h.stats.BytesAllocated += csize
	}

	h.stats.AllocationCount++

	return bp
}

// Free returns p's block to the free-block index, coalescing with any
// adjacent free neighbors. A nil p is a no-op.
func (h *Heap) Free(p unsafe.Pointer) {
	if p == nil {
		return
	}

	bp := block(p)
	size := blockSize(bp)
	writeBlock(bp, size, false)
	h.coalesce(bp)

	h.stats.BytesFreed += size
	h.stats.FreeCount++
}

// Reallocate implements realloc semantics: size 0 frees and returns NONE;
// a nil p behaves as Allocate; a request that already fits shrinks in
// place; a request that fits once the physically next block (if free) is
// absorbed grows in place; otherwise it falls back to allocate+copy+free,
// preserving the old payload's content up to min(n, old payload length).
func (h *Heap) Reallocate(p unsafe.Pointer, n uint32) unsafe.Pointer {
	if n == 0 {
		h.Free(p)

		return nil
	}

	if p == nil {
		return h.Allocate(n)
	}

	bp := block(p)
	oldSize := blockSize(bp)
	asize := adjustedSize(n)

	if asize <= oldSize {
		return unsafe.Pointer(h.shrinkSplit(bp, asize, oldSize))
	}

	nb := nextBlock(bp)
	if !blockAllocated(nb) {
		combined := oldSize + blockSize(nb)
		if combined >= asize {
			h.tree.remove(nb)
			writeBlock(bp, combined, true)

			return unsafe.Pointer(h.shrinkSplit(bp, asize, combined))
		}
	}

	newPtr := h.Allocate(n)
	if newPtr == nil {
		return nil
	}

	oldPayload := oldSize - 2*wsize

	copyLen := oldPayload
	if uintptr(n) < copyLen {
		copyLen = uintptr(n)
	}

	copyMemory(newPtr, p, copyLen)
	h.Free(p)

	return newPtr
}

// shrinkSplit splits an already-allocated block of size csize down to
// asize when the remainder would still meet minBlockSize, re-marking the
// prefix allocated. Unlike place, the remainder here is routed through
// coalesce: bp was never in the index (it was allocated, or was just
// absorbed from an allocated-plus-absorbed-neighbor combination), so there
// is no guarantee its next physical neighbor is allocated. An
// allocated block's neighbor can legally already be free, and the split
// must not recreate a free-free adjacency.
func (h *Heap) shrinkSplit(bp block, asize, csize uintptr) block {
	if csize-asize < minBlockSize {
		writeBlock(bp, csize, true)

		return bp
	}

	writeBlock(bp, asize, true)
	remainder := nextBlock(bp)
	writeBlock(remainder, csize-asize, false)
	h.coalesce(remainder)

	return bp
}
