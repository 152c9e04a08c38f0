package audio

import (
	"errors"
	"fmt"
	"math/cmplx"
	"os"

	"github.com/go-audio/wav"
	"github.com/mjibson/go-dsp/fft"
)

// ErrAssetUnavailable is returned when the tone sample cannot be loaded.
var ErrAssetUnavailable = errors.New("audio: tone asset unavailable")

// Sample is a mono PCM clip normalized to [-1, 1].
type Sample struct {
	Data []float32
	Rate int
}

// LoadSample decodes a WAV file and mixes it down to mono.
func LoadSample(path string) (*Sample, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAssetUnavailable, err)
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		return nil, fmt.Errorf("%w: %s is not a valid WAV file", ErrAssetUnavailable, path)
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("%w: decoding %s: %v", ErrAssetUnavailable, path, err)
	}

	channels := int(dec.NumChans)
	if channels < 1 {
		channels = 1
	}
	frames := len(buf.Data) / channels
	if frames == 0 {
		return nil, fmt.Errorf("%w: %s holds no audio", ErrAssetUnavailable, path)
	}

	bitDepth := int(dec.BitDepth)
	scale := float32(int(1) << (bitDepth - 1))
	data := make([]float32, frames)
	for i := 0; i < frames; i++ {
		var sum float32
		for c := 0; c < channels; c++ {
			v := buf.Data[i*channels+c]
			if bitDepth == 8 {
				// 8-bit WAV is unsigned
				v -= 128
			}
			sum += float32(v) / scale
		}
		data[i] = sum / float32(channels)
	}

	return &Sample{Data: data, Rate: int(dec.SampleRate)}, nil
}

// Duration returns the clip length in seconds.
func (s *Sample) Duration() float64 {
	if s.Rate == 0 {
		return 0
	}
	return float64(len(s.Data)) / float64(s.Rate)
}

// Fundamental estimates the dominant frequency of the clip in Hz.
func (s *Sample) Fundamental() float64 {
	n := len(s.Data)
	if n > 8192 {
		n = 8192
	}
	if n < 2 || s.Rate == 0 {
		return 0
	}

	x := make([]float64, n)
	for i := 0; i < n; i++ {
		x[i] = float64(s.Data[i])
	}
	spectrum := fft.FFTReal(x)

	peak, peakMag := 0, 0.0
	for i := 1; i < n/2; i++ {
		if mag := cmplx.Abs(spectrum[i]); mag > peakMag {
			peak, peakMag = i, mag
		}
	}
	return float64(peak) * float64(s.Rate) / float64(n)
}
