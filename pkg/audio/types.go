// ABOUTME: PCM audio type definitions
// ABOUTME: Defines stream formats, decoded buffers and int16 byte packing
package audio

import (
	"encoding/binary"
	"time"
)

// Format describes a PCM audio stream.
type Format struct {
	Codec      string
	SampleRate int
	Channels   int
	BitDepth   int
}

// Buffer represents one block of decoded PCM audio.
type Buffer struct {
	Samples []int16
	Format  Format
}

// Duration returns the play time of the buffer.
func (b Buffer) Duration() time.Duration {
	if b.Format.SampleRate <= 0 || b.Format.Channels <= 0 {
		return 0
	}
	frames := len(b.Samples) / b.Format.Channels
	return time.Duration(frames) * time.Second / time.Duration(b.Format.SampleRate)
}

// Bytes returns the samples packed as little-endian 16-bit PCM.
func (b Buffer) Bytes() []byte {
	return Int16ToBytes(b.Samples)
}

// Int16ToBytes packs samples as little-endian 16-bit PCM.
func Int16ToBytes(samples []int16) []byte {
	out := make([]byte, len(samples)*2)
	for i, s := range samples {
		binary.LittleEndian.PutUint16(out[i*2:], uint16(s))
	}
	return out
}

// BytesToInt16 unpacks little-endian 16-bit PCM into samples. A trailing odd
// byte is ignored.
func BytesToInt16(data []byte) []int16 {
	samples := make([]int16, len(data)/2)
	for i := range samples {
		samples[i] = int16(binary.LittleEndian.Uint16(data[i*2:]))
	}
	return samples
}
