//go:build !linux

package provider

import "fmt"

// MMap is unavailable outside Linux (no portable anonymous-mapping
// mprotect-commit story in golang.org/x/sys/unix across all platforms);
// use MemBuf instead. Only the type name and NewMMap exist here: MMap has
// none of the Linux methods (Extend, HeapLow, HeapHigh, Close), so on these
// platforms it does not satisfy allocator.Provider.
type MMap struct{}

// NewMMap always fails on non-Linux builds.
func NewMMap(reserved uintptr) (*MMap, error) {
	return nil, fmt.Errorf("provider: MMap is only implemented on linux, use MemBuf")
}
