// ABOUTME: Stream metadata reported to the host pipeline
// ABOUTME: Mostly constant for AMR-NB; only the frame count varies
package amr

import "time"

// Info describes an opened AMR stream. Apart from Frames and Duration the
// fields are fixed properties of the AMR-NB format.
type Info struct {
	Duration   time.Duration
	Frames     int
	Bitrate    int // kbit/s, nominal
	SampleRate int
	Channels   int
	// BitsPerSample is the container's nominal pre-decode width (8).
	// Decoded PCM is 16-bit; see audio.Format on decoded buffers.
	BitsPerSample int
	Codec         string
}

func infoForFrames(frames int) Info {
	return Info{
		Duration:      time.Duration(frames) * FrameDuration,
		Frames:        frames,
		Bitrate:       (BitsPerSample*Channels*SampleRate + 500) / 1000,
		SampleRate:    SampleRate,
		Channels:      Channels,
		BitsPerSample: BitsPerSample,
		Codec:         CodecName,
	}
}
