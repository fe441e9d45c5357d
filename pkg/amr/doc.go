// ABOUTME: Package documentation for the AMR-NB container reader
// ABOUTME: Explains the frame layout and the session workflow
// Package amr reads AMR-NB (Adaptive Multirate narrowband) speech containers.
//
// An AMR file is the 6-byte magic "#!AMR\n" followed by back-to-back frames.
// Each frame is one mode byte and a payload whose size depends on the mode;
// there is no index, length prefix or checksum anywhere in the file. Frame
// counts and frame offsets can therefore only be obtained by scanning the
// stream, and every seek is a linear walk from the start of frame data.
//
// The package exposes two layers:
//
//   - Scanner walks frame boundaries: it counts frames or advances the
//     stream to a given frame index.
//   - Session drives playback: it probes the magic, counts frames once at
//     open time, then decodes frame by frame through a caller-supplied
//     Decoder and supports seeking by time.
//
// Each frame decodes to 20 ms of 8 kHz mono audio (160 samples of 16-bit
// PCM). The actual bitstream decoder is an external collaborator; see the
// amrnb package for a binding to opencore-amrnb.
//
// Example:
//
//	s, err := amr.OpenFile(ctx, "voice.amr")
//	if err != nil { ... }
//	defer s.Close()
//	if err := s.InitDecode(ctx, amrnb.NewDecoder); err != nil { ... }
//	for {
//		buf, err := s.DecodeNext(ctx)
//		if err == io.EOF {
//			break
//		}
//		...
//	}
package amr
