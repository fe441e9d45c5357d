// ABOUTME: Contract for the external AMR-NB frame decoder
// ABOUTME: One call decodes one frame into a fixed 160-sample block
package amr

// Decoder turns one AMR-NB frame into PCM samples. The frame passed to
// Decode is the full on-disk record: the mode byte followed by its payload.
// Every call yields one 20 ms block (SamplesPerFrame samples at 8 kHz)
// regardless of mode, including the no-data modes. Decoders are stateful:
// adaptive codec state persists across calls within one instance, so a
// single instance must not be shared between sessions.
type Decoder interface {
	Decode(frame []byte) ([]int16, error)
	Close() error
}

// DecoderFactory creates a fresh decoder instance. Session.InitDecode calls
// it once per initialization.
type DecoderFactory func() (Decoder, error)
