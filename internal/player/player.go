// ABOUTME: Pull-based playback loop
// ABOUTME: Drains a decode session into a sink until end-of-stream
package player

import (
	"context"
	"errors"
	"io"

	"github.com/openamr/amr-go/pkg/audio"
)

// Source yields decoded PCM buffers until io.EOF. amr.Session satisfies it.
type Source interface {
	DecodeNext(ctx context.Context) (*audio.Buffer, error)
}

// Sink consumes decoded PCM buffers. Output satisfies it; tests substitute
// their own.
type Sink interface {
	Initialize(format audio.Format) error
	Play(buf audio.Buffer) error
	Close() error
}

// Play pulls buffers from src and plays them on sink until the stream ends
// or ctx is cancelled. The sink is initialized lazily from the first
// buffer's format and always closed before returning, even when the stream
// held no frames at all. A clean end-of-stream returns nil.
func Play(ctx context.Context, src Source, sink Sink) error {
	defer sink.Close()

	initialized := false

	for {
		buf, err := src.DecodeNext(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		if !initialized {
			if err := sink.Initialize(buf.Format); err != nil {
				return err
			}
			initialized = true
		}
		if err := sink.Play(*buf); err != nil {
			return err
		}
	}
}
