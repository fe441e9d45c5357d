// ABOUTME: Tests for the mode table and frame size lookup
// ABOUTME: Pins the fixed AMR-NB frame sizes per codec mode
package amr

import "testing"

func TestFrameSizeTable(t *testing.T) {
	want := []int{12, 13, 15, 17, 19, 20, 26, 31, 5, 0, 0, 0, 0, 0, 0, 0}
	for mode, size := range want {
		modeByte := byte(mode << 3)
		if got := FrameSize(modeByte); got != size {
			t.Errorf("mode %d: expected payload size %d, got %d", mode, size, got)
		}
	}
}

func TestFrameSizeIgnoresNonModeBits(t *testing.T) {
	// The frame header carries padding and a quality bit around the mode
	// field; only bits 3-6 select the size.
	if got := FrameSize(0x04); got != 12 {
		t.Errorf("expected quality bit to be ignored, got size %d", got)
	}
	if got := FrameSize(0xFC); got != 0 {
		t.Errorf("expected mode 15 (no data), got size %d", got)
	}
	if got := FrameSize(0x3C); got != frameSizes[7] {
		t.Errorf("expected mode 7 size %d, got %d", frameSizes[7], got)
	}
}

func TestMode(t *testing.T) {
	for mode := 0; mode < 16; mode++ {
		b := byte(mode<<3 | 0x04)
		if got := Mode(b); got != mode {
			t.Errorf("Mode(%#02x) = %d, want %d", b, got, mode)
		}
	}
}

func TestMaxFrameSizeBoundsTable(t *testing.T) {
	for mode, size := range frameSizes {
		if 1+size > maxFrameSize {
			t.Errorf("mode %d frame (%d bytes) exceeds maxFrameSize", mode, 1+size)
		}
	}
}
