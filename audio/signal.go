package audio

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/simukka/synesthetic/common"
)

// noiseStreamer emits seeded noise whose amplitude rises linearly from silence
// to full scale over its length.
type noiseStreamer struct {
	rng   *common.SeededRNG
	pos   int
	total int
}

func (n *noiseStreamer) Stream(samples [][2]float64) (int, bool) {
	if n.pos >= n.total {
		return 0, false
	}
	i := 0
	for ; i < len(samples) && n.pos < n.total; i++ {
		v := n.rng.Signed() * float64(n.pos) / float64(n.total)
		samples[i] = [2]float64{v, v}
		n.pos++
	}
	return i, true
}

func (n *noiseStreamer) Err() error {
	return nil
}

// NoiseStreamer returns a beep streamer of seeded, fading-in noise.
func NoiseStreamer(seed uint32, seconds float64, rate beep.SampleRate) beep.Streamer {
	return &noiseStreamer{
		rng:   common.NewSeededRNG(seed),
		total: rate.N(time.Duration(seconds * float64(time.Second))),
	}
}

// NoiseClip renders NoiseStreamer into a clip.
func NoiseClip(seed uint32, seconds float64, rate int) (*Clip, error) {
	if seconds <= 0 || rate <= 0 {
		return nil, fmt.Errorf("audio: noise clip needs positive length and rate, got %vs at %dHz", seconds, rate)
	}
	clip, err := Collect(NoiseStreamer(seed, seconds, beep.SampleRate(rate)), beep.SampleRate(rate))
	if err != nil {
		return nil, err
	}
	clip.Name = fmt.Sprintf("noise-%d", seed)
	return clip, nil
}
