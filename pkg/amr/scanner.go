// ABOUTME: Sequential frame scanner for AMR containers
// ABOUTME: Counts frames and advances to frame boundaries by mode-byte walks
package amr

import (
	"context"
	"errors"
	"fmt"
	"io"
)

// Scanner walks the variable-length frames of an AMR container. The format
// stores no frame table, so both counting and seeking are linear walks that
// read each frame's mode byte and skip over its payload.
//
// A Scanner moves the stream position as a side effect. Callers that keep
// using the stream must reposition it afterwards.
type Scanner struct {
	src    io.ReadSeeker
	strict bool
}

// NewScanner returns a Scanner over src.
func NewScanner(src io.ReadSeeker) *Scanner {
	return &Scanner{src: src}
}

// SetStrict makes a truncated trailing frame an ErrTruncated failure. The
// default is lenient: the partial frame is dropped and the scan ends cleanly.
func (sc *Scanner) SetStrict(strict bool) {
	sc.strict = strict
}

// CountFrames counts every frame from the start of frame data to the end of
// the stream. Running out of bytes on a mode-byte read ends the count; it is
// not an error.
func (sc *Scanner) CountFrames(ctx context.Context) (int, error) {
	return sc.walk(ctx, -1)
}

// AdvanceToFrame positions the stream at the first byte of frame target,
// walking from the start of frame data. If the stream ends first, the walk
// stops on the last frame boundary (end-of-stream, or the mode byte of a
// partial trailing frame); that is not an error. It returns the number of
// frames actually advanced, which equals target unless the stream ended
// early.
func (sc *Scanner) AdvanceToFrame(ctx context.Context, target int) (int, error) {
	if target < 0 {
		target = 0
	}
	return sc.walk(ctx, target)
}

// walk reads mode bytes and skips payloads until limit frames have been
// passed, or until end-of-stream if limit is negative. The cancellation
// check runs once per frame: a full-file walk is the most expensive
// operation in this package.
func (sc *Scanner) walk(ctx context.Context, limit int) (int, error) {
	end, err := sc.src.Seek(0, io.SeekEnd)
	if err != nil {
		return 0, fmt.Errorf("locate end of stream: %w", err)
	}
	pos, err := sc.src.Seek(headerSize, io.SeekStart)
	if err != nil {
		return 0, fmt.Errorf("seek to frame data: %w", err)
	}

	var modeByte [1]byte
	frames := 0
	for limit < 0 || frames < limit {
		if err := ctx.Err(); err != nil {
			return frames, err
		}
		if _, err := io.ReadFull(sc.src, modeByte[:]); err != nil {
			if errors.Is(err, io.EOF) {
				return frames, nil
			}
			return frames, fmt.Errorf("read mode byte: %w", err)
		}
		pos++

		size := int64(FrameSize(modeByte[0]))
		if pos+size > end {
			// Rewind the partial frame's mode byte so the stream is left
			// on a frame boundary.
			if _, err := sc.src.Seek(-1, io.SeekCurrent); err != nil {
				return frames, fmt.Errorf("rewind partial frame: %w", err)
			}
			if sc.strict {
				return frames, ErrTruncated
			}
			// Lenient: drop the partial trailing frame.
			return frames, nil
		}
		if size > 0 {
			if pos, err = sc.src.Seek(size, io.SeekCurrent); err != nil {
				return frames, fmt.Errorf("skip frame payload: %w", err)
			}
		}
		frames++
	}
	return frames, nil
}
