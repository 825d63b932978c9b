//go:build linux

package provider

import "testing"

// TestMMapExtendHandlesNonPageAlignedOffsets drives Extend exactly the way
// Heap's New does: a small initial extend (16 bytes, for the pad/prologue/
// epilogue) immediately followed by a much larger one (a CHUNKSIZE-sized
// free block) starting at whatever non-page-aligned offset the first call
// left behind. Both calls must succeed, and the memory they return must
// actually be writable.
func TestMMapExtendHandlesNonPageAlignedOffsets(t *testing.T) {
	m, err := NewMMap(1 << 20)
	if err != nil {
		t.Fatalf("NewMMap: %v", err)
	}
	defer m.Close()

	first, err := m.Extend(16)
	if err != nil {
		t.Fatalf("Extend(16): %v", err)
	}

	second, err := m.Extend(4096)
	if err != nil {
		t.Fatalf("Extend(4096) at non-page-aligned offset 16: %v", err)
	}

	*(*byte)(first) = 0xAA
	if *(*byte)(first) != 0xAA {
		t.Fatal("byte written through the first Extend pointer was lost")
	}

	data := (*[4096]byte)(second)
	for i := range data {
		data[i] = byte(i)
	}

	for i := range data {
		if data[i] != byte(i) {
			t.Fatalf("byte %d mismatch after write: got %d want %d", i, data[i], byte(i))
		}
	}
}

func TestMMapExtendFailsPastReservation(t *testing.T) {
	m, err := NewMMap(4096)
	if err != nil {
		t.Fatalf("NewMMap: %v", err)
	}
	defer m.Close()

	if _, err := m.Extend(4096); err != nil {
		t.Fatalf("Extend(4096): %v", err)
	}

	if _, err := m.Extend(1); err == nil {
		t.Fatal("Extend past the reservation succeeded, want an error")
	}
}

func TestMMapHeapLowHighTrackUsage(t *testing.T) {
	m, err := NewMMap(1 << 16)
	if err != nil {
		t.Fatalf("NewMMap: %v", err)
	}
	defer m.Close()

	low := m.HeapLow()
	if m.HeapHigh() != low {
		t.Fatalf("HeapHigh() = %#x before any Extend, want HeapLow() %#x", m.HeapHigh(), low)
	}

	if _, err := m.Extend(100); err != nil {
		t.Fatalf("Extend(100): %v", err)
	}

	if m.HeapHigh() != low+100 {
		t.Fatalf("HeapHigh() = %#x, want %#x", m.HeapHigh(), low+100)
	}
}
