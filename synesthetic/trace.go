package synesthetic

import (
	"fmt"

	"github.com/simukka/synesthetic/audio"
	"github.com/simukka/synesthetic/config"
)

// Summary describes a traced clip.
type Summary struct {
	Name       string  `yaml:"name"`
	Duration   float64 `yaml:"duration"`
	SampleRate int     `yaml:"sample_rate"`
	FPS        float64 `yaml:"fps"`
	Frames     int     `yaml:"frames"`
	PeakEnergy float64 `yaml:"peak_energy"`
	MeanEnergy float64 `yaml:"mean_energy"`
}

// Timeline is the full offline rendering of a clip.
type Timeline struct {
	Summary Summary `yaml:"summary"`
	Frames  []Frame `yaml:"frames"`
}

// Trace plays clip through an offline analyser at fps display frames per
// second, producing the frames the page would render.
func Trace(clip *audio.Clip, fps float64, cfg *config.Config) (*Timeline, error) {
	if fps <= 0 {
		return nil, fmt.Errorf("trace %s: fps must be positive, got %v", clip.Name, fps)
	}
	if clip.SampleRate <= 0 {
		return nil, fmt.Errorf("trace %s: missing sample rate", clip.Name)
	}
	if cfg == nil {
		cfg = config.Default()
	}

	analyser := audio.NewOfflineAnalyser(cfg.Analyser)
	bins := make([]byte, analyser.FrequencyBinCount())
	duration := clip.Duration()
	count := int(duration*fps) + 1

	tl := &Timeline{
		Summary: Summary{
			Name:       clip.Name,
			Duration:   duration,
			SampleRate: clip.SampleRate,
			FPS:        fps,
			Frames:     count,
		},
		Frames: make([]Frame, 0, count),
	}

	total := 0.0
	for i := 0; i < count; i++ {
		t := float64(i) / fps
		analyser.Process(clip.Samples, int(t*float64(clip.SampleRate)))
		analyser.ByteFrequencyData(bins)

		energy := audio.Energy(bins)
		f := Compute(audio.PlaybackProgress(t, duration), energy, cfg.Tuning)
		f.Time = t
		tl.Frames = append(tl.Frames, f)

		total += energy
		if energy > tl.Summary.PeakEnergy {
			tl.Summary.PeakEnergy = energy
		}
	}
	tl.Summary.MeanEnergy = total / float64(count)
	return tl, nil
}
