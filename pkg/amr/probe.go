// ABOUTME: Format probing helpers for host media players
// ABOUTME: Identifies AMR content by magic, MIME type or file extension
package amr

import (
	"bytes"
	"io"
	"strings"
)

// Probe reports whether r begins with the AMR-NB magic. It reads at most
// len(Magic) bytes and never fails upward; short reads and I/O errors all
// report false so that probing can fall through to other formats.
func Probe(r io.Reader) bool {
	head := make([]byte, len(Magic))
	if _, err := io.ReadFull(r, head); err != nil {
		return false
	}
	return bytes.Equal(head, Magic)
}

// IsContentType reports whether ct is one of the registered AMR MIME types.
func IsContentType(ct string) bool {
	switch strings.ToLower(ct) {
	case "audio/amr", "audio/x-amr":
		return true
	}
	return false
}

// IsPathExtension reports whether ext names the AMR file extension, with or
// without a leading dot.
func IsPathExtension(ext string) bool {
	return strings.EqualFold(strings.TrimPrefix(ext, "."), "amr")
}
