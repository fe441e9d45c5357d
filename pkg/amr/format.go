// ABOUTME: AMR-NB container constants and the mode frame-size table
// ABOUTME: Maps 4-bit codec modes to on-disk payload sizes
package amr

import "time"

const (
	// SampleRate is the fixed AMR-NB sampling rate in Hz.
	SampleRate = 8000
	// Channels is always 1; AMR-NB is a mono speech codec.
	Channels = 1
	// FrameDuration is the fixed time slice covered by one frame.
	FrameDuration = 20 * time.Millisecond
	// SamplesPerFrame is the decoded block length per frame
	// (20 ms at 8 kHz).
	SamplesPerFrame = 160
	// BitsPerSample is the nominal pre-decode sample width declared by the
	// container. The decoder output is 16-bit PCM; metadata keeps reporting
	// the container's nominal 8 bits.
	BitsPerSample = 8
	// CodecName is the display name reported in stream metadata.
	CodecName = "Adaptive Multirate"

	// headerSize is the length of the magic; frame data starts right after.
	headerSize = 6
	// maxFrameSize bounds one on-disk frame: mode byte plus the largest
	// payload (12.2 kbit/s mode).
	maxFrameSize = 32
)

// Magic identifies an AMR-NB container ("#!AMR\n").
var Magic = []byte{0x23, 0x21, 0x41, 0x4D, 0x52, 0x0A}

// frameSizes maps a frame's codec mode to its payload size in bytes. Modes
// 0-7 are the eight AMR-NB rates (4.75 up to 12.2 kbit/s), mode 8 is the
// comfort-noise (SID) frame and modes 9-15 carry no data. The zero-size
// modes are valid frames, not errors.
var frameSizes = [16]int{12, 13, 15, 17, 19, 20, 26, 31, 5, 0, 0, 0, 0, 0, 0, 0}

// FrameSize returns the payload size in bytes for a frame whose first byte
// is modeByte. Defined for every byte value; no-data modes map to 0.
func FrameSize(modeByte byte) int {
	return frameSizes[Mode(modeByte)]
}

// Mode extracts the 4-bit codec mode from a frame's first byte.
func Mode(modeByte byte) int {
	return int(modeByte>>3) & 0x0F
}
