package audio

import (
	"math"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
	"github.com/simukka/synesthetic/config"
)

// blackmanAlpha is the window parameter AnalyserNode uses.
const blackmanAlpha = 0.16

// OfflineAnalyser reproduces AnalyserNode's byte spectrum for samples held in
// memory: Blackman window, FFT, |X|/N, exponential smoothing across calls,
// then decibels mapped onto [0, 255].
type OfflineAnalyser struct {
	fftSize   int
	smoothing float64
	minDb     float64
	maxDb     float64

	window   []float64
	input    []float64
	smoothed []float64
}

// NewOfflineAnalyser creates an analyser from the given settings.
func NewOfflineAnalyser(cfg config.Analyser) *OfflineAnalyser {
	n := cfg.FFTSize
	a := &OfflineAnalyser{
		fftSize:   n,
		smoothing: cfg.Smoothing,
		minDb:     cfg.MinDecibels,
		maxDb:     cfg.MaxDecibels,
		window:    make([]float64, n),
		input:     make([]float64, n),
		smoothed:  make([]float64, n/2),
	}

	a0 := 0.5 * (1 - blackmanAlpha)
	a1 := 0.5
	a2 := 0.5 * blackmanAlpha
	for i := range a.window {
		x := float64(i) / float64(n)
		a.window[i] = a0 - a1*math.Cos(2*math.Pi*x) + a2*math.Cos(4*math.Pi*x)
	}
	return a
}

func (a *OfflineAnalyser) FrequencyBinCount() int {
	return a.fftSize / 2
}

// Reset clears the smoothing history.
func (a *OfflineAnalyser) Reset() {
	for i := range a.smoothed {
		a.smoothed[i] = 0
	}
}

// Process analyses the fftSize samples ending just before end. Positions
// before the start of samples are treated as silence.
func (a *OfflineAnalyser) Process(samples []float64, end int) {
	if end > len(samples) {
		end = len(samples)
	}
	start := end - a.fftSize
	for i := range a.input {
		j := start + i
		if j < 0 || j >= end {
			a.input[i] = 0
			continue
		}
		a.input[i] = samples[j] * a.window[i]
	}

	spectrum := fft.FFTReal(a.input)
	scale := 1 / float64(a.fftSize)
	for k := range a.smoothed {
		mag := cmplx.Abs(spectrum[k]) * scale
		v := a.smoothing*a.smoothed[k] + (1-a.smoothing)*mag
		if math.IsNaN(v) || math.IsInf(v, 0) {
			v = 0
		}
		a.smoothed[k] = v
	}
}

// ByteFrequencyData converts the smoothed spectrum to bytes.
func (a *OfflineAnalyser) ByteFrequencyData(dst []byte) {
	scale := 255 / (a.maxDb - a.minDb)
	for k := 0; k < len(dst) && k < len(a.smoothed); k++ {
		if a.smoothed[k] <= 0 {
			dst[k] = 0
			continue
		}
		db := 20 * math.Log10(a.smoothed[k])
		v := math.Floor(scale * (db - a.minDb))
		switch {
		case v < 0:
			dst[k] = 0
		case v > 255:
			dst[k] = 255
		default:
			dst[k] = byte(v)
		}
	}
}
