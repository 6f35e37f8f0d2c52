package audio

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/flac"
	"github.com/gopxl/beep/wav"
)

// ErrUnsupportedFormat is returned for files that are neither WAV nor FLAC.
var ErrUnsupportedFormat = errors.New("audio: unsupported format")

// Clip is a mono recording held in memory.
type Clip struct {
	Name       string
	Samples    []float64
	SampleRate int
}

// Duration in seconds.
func (c *Clip) Duration() float64 {
	if c.SampleRate <= 0 {
		return 0
	}
	return float64(len(c.Samples)) / float64(c.SampleRate)
}

// Load decodes a .wav or .flac file into a mono clip.
func Load(path string) (*Clip, error) {
	var decode func(io.Reader) (beep.StreamSeekCloser, beep.Format, error)
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".wav":
		decode = wav.Decode
	case ".flac":
		decode = flac.Decode
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	stream, format, err := decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	defer stream.Close()

	clip, err := Collect(stream, format.SampleRate)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if ext == ".wav" {
		gain := wavGain(format.Precision)
		for i := range clip.Samples {
			clip.Samples[i] *= gain
		}
	}
	clip.Name = filepath.Base(path)
	return clip, nil
}

// wavGain undoes beep's WAV scaling, which divides p-byte samples by
// 2^(8p)-1 instead of 2^(8p-1) and so halves every 16 and 24 bit file.
// 8 bit samples are already full scale.
func wavGain(precision int) float64 {
	if precision < 2 {
		return 1
	}
	bits := uint(8 * precision)
	return float64(uint64(1)<<bits-1) / float64(uint64(1)<<(bits-1))
}

// Collect drains a streamer, averaging the two channels.
func Collect(s beep.Streamer, rate beep.SampleRate) (*Clip, error) {
	clip := &Clip{SampleRate: int(rate)}
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		for _, frame := range buf[:n] {
			clip.Samples = append(clip.Samples, (frame[0]+frame[1])/2)
		}
		if !ok {
			break
		}
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return clip, nil
}
