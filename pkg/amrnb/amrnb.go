// ABOUTME: cgo binding to the opencore-amrnb reference decoder
// ABOUTME: Implements the amr.Decoder contract over Decoder_Interface_*
package amrnb

/*
#cgo pkg-config: opencore-amrnb
#include <opencore-amrnb/interf_dec.h>
*/
import "C"

import (
	"errors"
	"unsafe"

	"github.com/openamr/amr-go/pkg/amr"
)

// Decoder wraps one opencore-amrnb decoder instance. The library keeps
// adaptive codec state inside the instance, so a Decoder must stay bound to
// a single frame sequence.
type Decoder struct {
	state unsafe.Pointer
}

// NewDecoder creates a decoder instance. It matches amr.DecoderFactory and
// is the factory normally passed to Session.InitDecode.
func NewDecoder() (amr.Decoder, error) {
	state := C.Decoder_Interface_init()
	if state == nil {
		return nil, errors.New("amrnb: decoder init failed")
	}
	return &Decoder{state: state}, nil
}

// Decode converts one AMR-NB frame (mode byte plus payload) into one 20 ms
// block of 160 16-bit samples.
func (d *Decoder) Decode(frame []byte) ([]int16, error) {
	if d.state == nil {
		return nil, errors.New("amrnb: decoder closed")
	}
	if len(frame) == 0 {
		return nil, errors.New("amrnb: empty frame")
	}
	pcm := make([]int16, amr.SamplesPerFrame)
	C.Decoder_Interface_Decode(d.state,
		(*C.uchar)(unsafe.Pointer(&frame[0])),
		(*C.short)(unsafe.Pointer(&pcm[0])),
		0)
	return pcm, nil
}

// Close releases the decoder instance. Closing twice is harmless.
func (d *Decoder) Close() error {
	if d.state != nil {
		C.Decoder_Interface_exit(d.state)
		d.state = nil
	}
	return nil
}
