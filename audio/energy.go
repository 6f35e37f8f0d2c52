// Package audio measures music for the visualizer: energy and playback
// progress, the Web Audio analyser pipeline in the page, and an offline
// analyser with WAV/FLAC loading for tracing outside the browser.
package audio

import (
	"math"

	"github.com/simukka/synesthetic/common"
)

// Analyser produces byte frequency data the way an AnalyserNode does.
type Analyser interface {
	FrequencyBinCount() int
	ByteFrequencyData(dst []byte)
}

// Energy is the mean bin magnitude normalized to [0, 1]. No bins means no
// energy.
func Energy(bins []byte) float64 {
	if len(bins) == 0 {
		return 0
	}
	sum := 0
	for _, b := range bins {
		sum += int(b)
	}
	return common.Clamp(float64(sum)/float64(len(bins))/255, 0, 1)
}

// PlaybackProgress is current/duration, or 0 while the duration is unknown.
func PlaybackProgress(current, duration float64) float64 {
	if math.IsNaN(duration) || duration <= 0 || math.IsNaN(current) {
		return 0
	}
	return current / duration
}
