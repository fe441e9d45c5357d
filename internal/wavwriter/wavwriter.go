// ABOUTME: WAV file sink for decoded PCM buffers
// ABOUTME: Wraps go-audio/wav encoding behind the player.Sink contract
package wavwriter

import (
	"fmt"
	"os"

	ga "github.com/go-audio/audio"
	wav "github.com/go-audio/wav"

	"github.com/openamr/amr-go/pkg/audio"
)

// Writer writes decoded PCM buffers to a RIFF/WAVE file. It satisfies the
// player.Sink interface, so a decode session can be drained straight into a
// file.
type Writer struct {
	file    *os.File
	encoder *wav.Encoder
	format  audio.Format
}

// New creates the file at path. The encoder is set up on the first buffer's
// format in Initialize.
func New(path string) (*Writer, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	return &Writer{file: f}, nil
}

// Initialize sets up the WAV encoder for the given stream format. Callers
// that know the format up front may initialize eagerly; a later Initialize
// with the same format is a no-op, so the eager path composes with
// player.Play's lazy one.
func (w *Writer) Initialize(format audio.Format) error {
	if w.encoder != nil {
		if format == w.format {
			return nil
		}
		return fmt.Errorf("wavwriter: already initialized with %+v", w.format)
	}
	if format.BitDepth != 16 {
		return fmt.Errorf("wavwriter: unsupported bit depth %d", format.BitDepth)
	}
	// Audio format 1 is uncompressed PCM.
	w.encoder = wav.NewEncoder(w.file,
		format.SampleRate, format.BitDepth, format.Channels, 1)
	w.format = format
	return nil
}

// Play appends one decoded buffer to the file.
func (w *Writer) Play(buf audio.Buffer) error {
	if w.encoder == nil {
		return fmt.Errorf("wavwriter: not initialized")
	}

	data := make([]int, len(buf.Samples))
	for i, s := range buf.Samples {
		data[i] = int(s)
	}
	return w.encoder.Write(&ga.IntBuffer{
		Data: data,
		Format: &ga.Format{
			NumChannels: buf.Format.Channels,
			SampleRate:  buf.Format.SampleRate,
		},
		SourceBitDepth: buf.Format.BitDepth,
	})
}

// Close finalizes the WAV header and closes the file.
func (w *Writer) Close() error {
	if w.encoder != nil {
		if err := w.encoder.Close(); err != nil {
			w.file.Close()
			return err
		}
	}
	return w.file.Close()
}
