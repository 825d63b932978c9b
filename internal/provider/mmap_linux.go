//go:build linux

package provider

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/unix"
)

// MMap is a Provider backed by one anonymous mapping reserved up front
// with PROT_NONE and committed page-by-page as Extend is called, via
// mprotect(PROT_READ|PROT_WRITE). This is the closest Go analogue to the
// sbrk-style "grow in place, never move" contract the byte-region
// provider assumes: the mapping's base address never changes, so every
// pointer the allocator hands out from this region stays valid for the
// mapping's whole lifetime.
//
// used and committed are tracked separately because mprotect requires a
// page-aligned addr: used is the exact logical high-water mark Extend has
// handed out (almost never page-aligned, since the heap above this
// Provider asks for arbitrary CHUNKSIZE-ish amounts), while committed is
// the page-aligned boundary up to which pages have actually been made
// readable/writable. Extend only ever grows committed forward to cover
// whatever new used requires, in whole pages.
type MMap struct {
	base      unsafe.Pointer
	reserved  uintptr
	used      uintptr
	committed uintptr
	pageSize  uintptr
}

// NewMMap reserves a virtual address range of reserved bytes (rounded up
// to the system page size) without committing physical memory for it.
func NewMMap(reserved uintptr) (*MMap, error) {
	pageSize := uintptr(unix.Getpagesize())
	reserved = (reserved + pageSize - 1) &^ (pageSize - 1)

	region, err := unix.Mmap(-1, 0, int(reserved), unix.PROT_NONE, unix.MAP_PRIVATE|unix.MAP_ANON)
	if err != nil {
		return nil, fmt.Errorf("provider: mmap reserve %d bytes: %w", reserved, err)
	}

	return &MMap{
		base:     unsafe.Pointer(&region[0]),
		reserved: reserved,
		pageSize: pageSize,
	}, nil
}

// Extend implements allocator.Provider by committing whatever whole pages
// are needed to cover the next nbytes of the reservation as read/write.
func (m *MMap) Extend(nbytes uintptr) (unsafe.Pointer, error) {
	newUsed := m.used + nbytes
	if newUsed > m.reserved {
		return nil, fmt.Errorf("provider: mmap region exhausted: used=%d requested=%d reserved=%d",
			m.used, nbytes, m.reserved)
	}

	ptr := unsafe.Pointer(uintptr(m.base) + m.used)

	needCommitted := (newUsed + m.pageSize - 1) &^ (m.pageSize - 1)
	if needCommitted > m.committed {
		grow := unsafe.Pointer(uintptr(m.base) + m.committed)
		region := unsafe.Slice((*byte)(grow), needCommitted-m.committed)

		if err := unix.Mprotect(region, unix.PROT_READ|unix.PROT_WRITE); err != nil {
			return nil, fmt.Errorf("provider: mprotect commit %d bytes at page offset %d: %w",
				needCommitted-m.committed, m.committed, err)
		}

		m.committed = needCommitted
	}

	m.used = newUsed

	return ptr, nil
}

// HeapLow implements allocator.Provider.
func (m *MMap) HeapLow() uintptr {
	return uintptr(m.base)
}

// HeapHigh implements allocator.Provider.
func (m *MMap) HeapHigh() uintptr {
	return uintptr(m.base) + m.used
}

// Close releases the entire reservation back to the OS. The Heap using it
// must not be touched again afterwards.
func (m *MMap) Close() error {
	region := unsafe.Slice((*byte)(m.base), m.reserved)

	return unix.Munmap(region)
}
