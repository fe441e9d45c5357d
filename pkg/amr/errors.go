// ABOUTME: Sentinel errors for AMR container handling
// ABOUTME: Matched by callers with errors.Is
package amr

import "errors"

var (
	// ErrFormatMismatch means the source does not start with the AMR magic.
	// Format probing treats this as "not my format", never as fatal.
	ErrFormatMismatch = errors.New("amr: missing #!AMR header")

	// ErrSeekUnsupported means the source does not support random access,
	// which both opening and seeking require.
	ErrSeekUnsupported = errors.New("amr: source does not support seeking")

	// ErrUnsupportedOperation is returned for write or retag requests; the
	// format is read-only.
	ErrUnsupportedOperation = errors.New("amr: operation not supported by read-only format")

	// ErrTruncated reports a partial trailing frame in strict mode.
	ErrTruncated = errors.New("amr: truncated frame at end of stream")

	// ErrNotReady means DecodeNext was called before InitDecode.
	ErrNotReady = errors.New("amr: decoder not initialized")

	// ErrClosed means the session has been closed.
	ErrClosed = errors.New("amr: session closed")
)
