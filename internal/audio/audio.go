package audio

import (
	"log/slog"
	"sync"

	"github.com/gordonklaus/portaudio"
)

const (
	SampleRate = 44100
	BufferSize = 256

	CuePitch = 1.0
)

// Processor is a single-voice sample player. Every Play restarts the clip at
// the requested pitch, cutting off whatever was still sounding.
type Processor struct {
	Stream *portaudio.Stream
	Volume float32

	mu      sync.Mutex
	sample  *Sample
	pos     float64
	step    float64
	playing bool

	Active bool
}

func NewProcessor(sample *Sample) *Processor {
	return &Processor{
		sample: sample,
		Volume: 0.5,
	}
}

func (a *Processor) Start() error {
	if err := portaudio.Initialize(); err != nil {
		return err
	}

	stream, err := portaudio.OpenDefaultStream(0, 2, SampleRate, BufferSize, a.ProcessAudio)
	if err != nil {
		portaudio.Terminate()
		return err
	}
	if err := stream.Start(); err != nil {
		stream.Close()
		portaudio.Terminate()
		return err
	}

	slog.Debug("audio started", "rate", SampleRate, "buffer", BufferSize)

	a.Stream = stream
	a.Active = true
	return nil
}

func (a *Processor) Stop() {
	if a.Stream != nil {
		a.Stream.Stop()
		a.Stream.Close()
		a.Stream = nil
	}
	if a.Active {
		portaudio.Terminate()
	}
	a.Active = false
}

// Cue plays the clip once at its recorded pitch, as a sign that audio works.
func (a *Processor) Cue() { a.Play(CuePitch) }

// Play retunes the voice to pitch (a playback-rate multiplier) and restarts it.
func (a *Processor) Play(pitch float64) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.sample == nil || len(a.sample.Data) == 0 || pitch <= 0 {
		return
	}
	a.pos = 0
	a.step = pitch * float64(a.sample.Rate) / SampleRate
	a.playing = true
}

// Playing reports whether the voice is still sounding.
func (a *Processor) Playing() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.playing
}

// ProcessAudio fills one non-interleaved output buffer; it runs on the
// portaudio callback thread.
func (a *Processor) ProcessAudio(out [][]float32) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if len(out) == 0 {
		return
	}

	for i := range out[0] {
		var v float32
		if a.playing {
			data := a.sample.Data
			idx := int(a.pos)
			if idx+1 < len(data) {
				frac := float32(a.pos - float64(idx))
				v = (data[idx]*(1-frac) + data[idx+1]*frac) * a.Volume
				a.pos += a.step
			} else {
				a.playing = false
			}
		}
		for c := range out {
			out[c][i] = v
		}
	}
}
