// ABOUTME: Audio output using oto library
// ABOUTME: Streams 16-bit PCM playback with software volume control
package player

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/ebitengine/oto/v3"
	"github.com/openamr/amr-go/pkg/audio"
)

// Output plays decoded PCM buffers through the system audio device. Buffers
// are streamed into oto through a pipe, so Play blocks while the device
// drains, which paces the decode loop.
type Output struct {
	otoCtx *oto.Context
	player *oto.Player
	pipeW  *io.PipeWriter
	format audio.Format
	volume int
	muted  bool
	ready  bool
}

// NewOutput creates an audio output at full volume.
func NewOutput() *Output {
	return &Output{volume: 100}
}

// Initialize sets up oto with the specified format and starts the stream.
func (o *Output) Initialize(format audio.Format) error {
	if o.ready {
		return fmt.Errorf("output already initialized")
	}

	op := &oto.NewContextOptions{
		SampleRate:   format.SampleRate,
		ChannelCount: format.Channels,
		Format:       oto.FormatSignedInt16LE,
	}
	ctx, readyChan, err := oto.NewContext(op)
	if err != nil {
		return fmt.Errorf("failed to create oto context: %w", err)
	}
	<-readyChan

	pr, pw := io.Pipe()
	o.otoCtx = ctx
	o.player = ctx.NewPlayer(pr)
	o.pipeW = pw
	o.format = format
	o.ready = true
	o.player.Play()

	slog.Debug("audio output initialized",
		"samplerate", format.SampleRate, "channels", format.Channels)
	return nil
}

// Play queues one decoded buffer for playback.
func (o *Output) Play(buf audio.Buffer) error {
	if !o.ready {
		return fmt.Errorf("output not initialized")
	}

	samples := applyVolume(buf.Samples, o.volume, o.muted)
	if _, err := o.pipeW.Write(audio.Int16ToBytes(samples)); err != nil {
		return fmt.Errorf("write to audio device: %w", err)
	}
	return nil
}

// SetVolume sets the volume (0-100).
func (o *Output) SetVolume(volume int) {
	if volume < 0 {
		volume = 0
	}
	if volume > 100 {
		volume = 100
	}
	o.volume = volume
}

// SetMuted sets mute state.
func (o *Output) SetMuted(muted bool) {
	o.muted = muted
}

// Volume returns the current volume.
func (o *Output) Volume() int {
	return o.volume
}

// IsMuted returns mute state.
func (o *Output) IsMuted() bool {
	return o.muted
}

// Close ends the stream and releases the audio device.
func (o *Output) Close() error {
	if !o.ready {
		return nil
	}
	o.ready = false
	o.pipeW.Close()
	if err := o.player.Close(); err != nil {
		return err
	}
	return o.otoCtx.Suspend()
}

// applyVolume applies volume and mute to samples.
func applyVolume(samples []int16, volume int, muted bool) []int16 {
	multiplier := getVolumeMultiplier(volume, muted)

	result := make([]int16, len(samples))
	for i, sample := range samples {
		result[i] = int16(float64(sample) * multiplier)
	}
	return result
}

// getVolumeMultiplier calculates the linear gain for a volume setting.
func getVolumeMultiplier(volume int, muted bool) float64 {
	if muted {
		return 0.0
	}
	return float64(volume) / 100.0
}
