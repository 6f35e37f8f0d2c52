// Package config holds the selectors, ranges and tuning constants shared by
// the page bundle, the trace CLI and the dev server.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultYAML []byte

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

type Selectors struct {
	DepthMeter string `yaml:"depth_meter" json:"depthMeter"`
	Audio      string `yaml:"audio" json:"audio"`
	Container  string `yaml:"container" json:"container"`
	Sun        string `yaml:"sun" json:"sun"`
	Rabbit     string `yaml:"rabbit" json:"rabbit"`
	Wave       string `yaml:"wave" json:"wave"`
	Config     string `yaml:"config" json:"config"`
}

// Depth maps scroll progress onto an altitude: Top at progress 0, Top-Span at 1.
type Depth struct {
	Top      float64 `yaml:"top" json:"top"`
	Span     float64 `yaml:"span" json:"span"`
	Unit     string  `yaml:"unit" json:"unit"`
	Property string  `yaml:"property" json:"property"`
}

// Analyser mirrors the AnalyserNode settings.
type Analyser struct {
	FFTSize     int     `yaml:"fft_size" json:"fftSize"`
	Smoothing   float64 `yaml:"smoothing" json:"smoothing"`
	MinDecibels float64 `yaml:"min_decibels" json:"minDecibels"`
	MaxDecibels float64 `yaml:"max_decibels" json:"maxDecibels"`
}

// BinCount is the number of frequency bins, half the FFT size.
func (a Analyser) BinCount() int {
	return a.FFTSize / 2
}

type Sun struct {
	OffsetFrom  float64 `yaml:"offset_from" json:"offsetFrom"`
	OffsetTo    float64 `yaml:"offset_to" json:"offsetTo"`
	OpacityFrom float64 `yaml:"opacity_from" json:"opacityFrom"`
	OpacityTo   float64 `yaml:"opacity_to" json:"opacityTo"`
}

type Rabbit struct {
	OffsetBase     float64 `yaml:"offset_base" json:"offsetBase"`
	OffsetProgress float64 `yaml:"offset_progress" json:"offsetProgress"`
	OffsetEnergy   float64 `yaml:"offset_energy" json:"offsetEnergy"`
	XOffset        float64 `yaml:"x_offset" json:"xOffset"`
	OpacityFrom    float64 `yaml:"opacity_from" json:"opacityFrom"`
	OpacityTo      float64 `yaml:"opacity_to" json:"opacityTo"`
}

type Wave struct {
	ScaleBase   float64 `yaml:"scale_base" json:"scaleBase"`
	ScaleEnergy float64 `yaml:"scale_energy" json:"scaleEnergy"`
}

// Tuning holds the hand-tuned animation constants.
type Tuning struct {
	Sun    Sun    `yaml:"sun" json:"sun"`
	Rabbit Rabbit `yaml:"rabbit" json:"rabbit"`
	Wave   Wave   `yaml:"wave" json:"wave"`
}

type Config struct {
	Selectors Selectors `yaml:"selectors" json:"selectors"`
	Depth     Depth     `yaml:"depth" json:"depth"`
	Analyser  Analyser  `yaml:"analyser" json:"analyser"`
	Tuning    Tuning    `yaml:"tuning" json:"tuning"`
}

// Default returns the built-in configuration.
func Default() *Config {
	var c Config
	if err := yaml.Unmarshal(defaultYAML, &c); err != nil {
		panic("config: embedded default.yaml: " + err.Error())
	}
	return &c
}

// Parse overlays data onto the defaults. Keys missing from data keep their
// default values.
func Parse(data []byte) (*Config, error) {
	c := Default()
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Load reads and parses a YAML file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return Parse(data)
}

// Validate checks the values the analyser and meter depend on.
func (c *Config) Validate() error {
	n := c.Analyser.FFTSize
	if n < 32 || n > 32768 || n&(n-1) != 0 {
		return fmt.Errorf("%w: fft_size %d must be a power of two in [32, 32768]", ErrInvalid, n)
	}
	if c.Analyser.MinDecibels >= c.Analyser.MaxDecibels {
		return fmt.Errorf("%w: min_decibels %v must be below max_decibels %v",
			ErrInvalid, c.Analyser.MinDecibels, c.Analyser.MaxDecibels)
	}
	if c.Analyser.Smoothing < 0 || c.Analyser.Smoothing > 1 {
		return fmt.Errorf("%w: smoothing %v outside [0, 1]", ErrInvalid, c.Analyser.Smoothing)
	}
	if c.Selectors.DepthMeter == "" || c.Selectors.Audio == "" || c.Selectors.Container == "" {
		return fmt.Errorf("%w: depth_meter, audio and container selectors are required", ErrInvalid)
	}
	return nil
}
