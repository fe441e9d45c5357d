// ABOUTME: Stateful AMR decode session with sequential decode and seek
// ABOUTME: Bridges the frame scanner and the external decoder collaborator
package amr

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/openamr/amr-go/pkg/audio"
)

// Session is a pull-based decode session over one AMR stream. It owns a
// cursor (current frame index and stream position) and is not safe for
// concurrent use; one caller drives it at a time.
type Session struct {
	src     io.ReadSeeker
	closer  io.Closer
	scanner *Scanner
	dec     Decoder
	log     *slog.Logger
	strict  bool

	frame  int
	frames int
	buf    [maxFrameSize]byte
	closed bool
}

// Option configures a Session at open time.
type Option func(*Session)

// WithLogger sets the logger used for debug output. The default is
// slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(s *Session) { s.log = l }
}

// WithStrictTruncation makes a partial trailing frame an ErrTruncated
// failure at open time instead of being silently dropped.
func WithStrictTruncation(strict bool) Option {
	return func(s *Session) { s.strict = strict }
}

// Open verifies the AMR magic, scans the stream once to count its frames and
// returns a session positioned for metadata queries. src must support random
// access: the count pass and every later seek rewind the stream. A source
// that is not an io.Seeker fails with ErrSeekUnsupported; a stream without
// the magic fails with ErrFormatMismatch.
//
// The frame count is computed once here and assumed stable for the life of
// the session.
func Open(ctx context.Context, src io.Reader, opts ...Option) (*Session, error) {
	s := &Session{log: slog.Default()}
	for _, opt := range opts {
		opt(s)
	}

	seeker, ok := src.(io.ReadSeeker)
	if !ok {
		return nil, ErrSeekUnsupported
	}
	s.src = seeker
	s.scanner = NewScanner(seeker)
	s.scanner.SetStrict(s.strict)

	if _, err := seeker.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("rewind stream: %w", err)
	}
	if !Probe(seeker) {
		return nil, ErrFormatMismatch
	}

	frames, err := s.scanner.CountFrames(ctx)
	if err != nil {
		return nil, err
	}
	s.frames = frames
	s.log.Debug("amr stream opened",
		"frames", frames, "duration", s.Info().Duration)
	return s, nil
}

// OpenFile opens path and wraps it in a session. The file is closed together
// with the session.
func OpenFile(ctx context.Context, path string, opts ...Option) (*Session, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	s, err := Open(ctx, f, opts...)
	if err != nil {
		f.Close()
		return nil, err
	}
	s.closer = f
	return s, nil
}

// InitDecode creates a decoder instance through factory, rewinds to frame 0
// and resets the frame cursor. It may be called again on a live session, for
// example once per playback start; any previous decoder is closed first.
func (s *Session) InitDecode(ctx context.Context, factory DecoderFactory) error {
	if s.closed {
		return ErrClosed
	}
	if factory == nil {
		return errors.New("amr: nil decoder factory")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	dec, err := factory()
	if err != nil {
		return fmt.Errorf("create decoder: %w", err)
	}
	if s.dec != nil {
		if cerr := s.dec.Close(); cerr != nil {
			s.log.Warn("closing previous decoder", "err", cerr)
		}
	}
	s.dec = dec

	if _, err := s.src.Seek(headerSize, io.SeekStart); err != nil {
		return fmt.Errorf("seek to frame data: %w", err)
	}
	s.frame = 0
	return nil
}

// DecodeNext reads one frame, decodes it and returns one 20 ms block of
// 16-bit PCM. At the end of the stream it returns io.EOF with no side
// effects. Exactly one decoder invocation happens per call.
func (s *Session) DecodeNext(ctx context.Context) (*audio.Buffer, error) {
	if s.closed {
		return nil, ErrClosed
	}
	if s.dec == nil {
		return nil, ErrNotReady
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s.frame >= s.frames {
		return nil, io.EOF
	}

	if _, err := io.ReadFull(s.src, s.buf[:1]); err != nil {
		return nil, fmt.Errorf("read mode byte: %w", err)
	}
	size := FrameSize(s.buf[0])
	if _, err := io.ReadFull(s.src, s.buf[1:1+size]); err != nil {
		return nil, fmt.Errorf("read frame payload: %w", err)
	}

	samples, err := s.dec.Decode(s.buf[:1+size])
	if err != nil {
		return nil, fmt.Errorf("decode frame %d: %w", s.frame, err)
	}
	s.frame++

	return &audio.Buffer{Samples: samples, Format: PCMFormat()}, nil
}

// PCMFormat is the fixed output format of every decoded buffer: 16-bit
// 8 kHz mono PCM.
func PCMFormat() audio.Format {
	return audio.Format{
		Codec:      "pcm",
		SampleRate: SampleRate,
		Channels:   Channels,
		BitDepth:   16,
	}
}

// Seek repositions the session to the frame containing t. The container has
// no frame table, so the walk restarts at the first frame every time.
// Seeking past the end is not an error; the session is simply exhausted and
// the next DecodeNext returns io.EOF. The decoder's adaptive state is left
// untouched.
func (s *Session) Seek(ctx context.Context, t time.Duration) error {
	if s.closed {
		return ErrClosed
	}
	if t < 0 {
		t = 0
	}
	samples := t.Nanoseconds() * SampleRate / int64(time.Second)
	target := int(samples / SamplesPerFrame)

	advanced, err := s.scanner.AdvanceToFrame(ctx, target)
	// The scanner moves the stream even when the walk fails; the cursor
	// must follow it or the next DecodeNext reads the wrong frame.
	s.frame = advanced
	if err != nil {
		return err
	}
	s.log.Debug("amr seek", "target", t, "frame", s.frame)
	return nil
}

// Info returns the stream metadata computed at open time.
func (s *Session) Info() Info {
	return infoForFrames(s.frames)
}

// CanSeek reports seek support. Sessions only open over random-access
// sources, so this is true for any open session.
func (s *Session) CanSeek() bool {
	return !s.closed
}

// Frame returns the index of the next frame DecodeNext would yield.
func (s *Session) Frame() int {
	return s.frame
}

// Retag would rewrite stream metadata in place. The AMR container carries no
// tag structure and is read-only, so this always fails with
// ErrUnsupportedOperation.
func (s *Session) Retag(Info) error {
	return ErrUnsupportedOperation
}

// Close releases the decoder and, for sessions opened through OpenFile, the
// underlying file. Closing twice is harmless.
func (s *Session) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true

	var errs []error
	if s.dec != nil {
		if err := s.dec.Close(); err != nil {
			errs = append(errs, err)
		}
		s.dec = nil
	}
	if s.closer != nil {
		if err := s.closer.Close(); err != nil {
			errs = append(errs, err)
		}
		s.closer = nil
	}
	return errors.Join(errs...)
}
