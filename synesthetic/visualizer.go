package synesthetic

import (
	"github.com/simukka/synesthetic/audio"
	"github.com/simukka/synesthetic/common"
	"github.com/simukka/synesthetic/config"
)

// State of the frame loop.
type State int

const (
	Idle State = iota
	Running
)

func (s State) String() string {
	if s == Running {
		return "running"
	}
	return "idle"
}

// Scheduler runs a callback on the next display frame. The returned handle
// is non-zero and cancels the request.
type Scheduler interface {
	RequestFrame(fn func(timestamp float64)) int
	CancelFrame(handle int)
}

// Media reports playback position of the audio element.
type Media interface {
	CurrentTime() float64
	Duration() float64
}

// Layer is a styled element of the scene.
type Layer interface {
	SetStyle(name, value string)
}

// Pipeline is an analyser whose processing can be resumed after the browser
// suspends it.
type Pipeline interface {
	audio.Analyser
	Resume()
}

// MediaEvents subscribes to media element events.
type MediaEvents interface {
	On(event string, fn func())
}

// Layers holds the optional scene elements. Nil entries are skipped.
type Layers struct {
	Sun    Layer
	Rabbit Layer
	Wave   Layer
}

// Visualizer owns the frame loop. At most one frame request is pending at a
// time, and none while Idle.
type Visualizer struct {
	pipeline  Pipeline
	media     Media
	scheduler Scheduler
	layers    Layers
	tuning    config.Tuning

	state  State
	handle int
	bins   []byte
	last   Frame
	frames int
}

// NewVisualizer creates an idle visualizer.
func NewVisualizer(p Pipeline, media Media, s Scheduler, layers Layers, cfg *config.Config) *Visualizer {
	if cfg == nil {
		cfg = config.Default()
	}
	return &Visualizer{
		pipeline:  p,
		media:     media,
		scheduler: s,
		layers:    layers,
		tuning:    cfg.Tuning,
		bins:      make([]byte, p.FrequencyBinCount()),
	}
}

// Bind starts the loop on play and stops it on pause or ended.
func (v *Visualizer) Bind(events MediaEvents) {
	events.On("play", v.Start)
	events.On("pause", v.Stop)
	events.On("ended", v.Stop)
}

func (v *Visualizer) State() State {
	return v.state
}

// Last returns the most recently rendered frame.
func (v *Visualizer) Last() Frame {
	return v.last
}

// Frames counts rendered frames.
func (v *Visualizer) Frames() int {
	return v.frames
}

// Start resumes the audio pipeline and, when idle, schedules the first frame.
func (v *Visualizer) Start() {
	v.pipeline.Resume()
	if v.state == Running {
		return
	}
	v.state = Running
	v.handle = v.scheduler.RequestFrame(v.frame)
	common.Debug("synesthetic: loop started")
}

// Stop cancels the pending frame and returns to Idle.
func (v *Visualizer) Stop() {
	if v.state == Idle {
		return
	}
	v.scheduler.CancelFrame(v.handle)
	v.handle = 0
	v.state = Idle
	common.Debug("synesthetic: loop stopped after", v.frames, "frames")
}

func (v *Visualizer) frame(float64) {
	if v.state != Running {
		return
	}
	v.Render()
	v.handle = v.scheduler.RequestFrame(v.frame)
}

// Render samples the analyser and media once and styles the layers.
func (v *Visualizer) Render() Frame {
	v.pipeline.ByteFrequencyData(v.bins)
	energy := audio.Energy(v.bins)
	progress := audio.PlaybackProgress(v.media.CurrentTime(), v.media.Duration())

	f := Compute(progress, energy, v.tuning)
	f.Time = v.media.CurrentTime()
	Apply(f, v.layers)

	v.last = f
	v.frames++
	return f
}

// Apply writes a frame's styles to the layers that exist.
func Apply(f Frame, l Layers) {
	if l.Sun != nil {
		l.Sun.SetStyle("transform", f.SunTransform())
		l.Sun.SetStyle("opacity", f.SunOpacityValue())
	}
	if l.Rabbit != nil {
		l.Rabbit.SetStyle("transform", f.RabbitTransform())
		l.Rabbit.SetStyle("opacity", f.RabbitOpacityValue())
	}
	if l.Wave != nil {
		l.Wave.SetStyle("transform", f.WaveTransform())
	}
}
