package audio

import (
	"errors"

	"github.com/gopherjs/gopherjs/js"
	"github.com/simukka/synesthetic/config"
)

// ErrNoAudioContext is returned when the page has no Web Audio support.
var ErrNoAudioContext = errors.New("audio: AudioContext not available")

// WebPipeline routes a media element through an AnalyserNode to the speakers.
type WebPipeline struct {
	ctx      *js.Object
	source   *js.Object
	analyser *js.Object
	buf      *js.Object // Uint8Array the analyser writes into
	bins     int
}

// audioContextConstructor finds AudioContext, falling back to the prefixed
// webkit constructor.
func audioContextConstructor() *js.Object {
	ctor := js.Global.Get("AudioContext")
	if ctor == nil || ctor == js.Undefined {
		ctor = js.Global.Get("webkitAudioContext")
	}
	if ctor == nil || ctor == js.Undefined {
		return nil
	}
	return ctor
}

// NewWebPipeline wires element into a new AudioContext. A media element can
// only be captured by one MediaElementSource; calling this twice for the same
// element throws in the browser.
func NewWebPipeline(element *js.Object, cfg config.Analyser) (*WebPipeline, error) {
	ctor := audioContextConstructor()
	if ctor == nil {
		return nil, ErrNoAudioContext
	}

	p := &WebPipeline{ctx: ctor.New()}
	p.source = p.ctx.Call("createMediaElementSource", element)
	p.analyser = p.ctx.Call("createAnalyser")
	p.analyser.Set("fftSize", cfg.FFTSize)
	p.analyser.Set("smoothingTimeConstant", cfg.Smoothing)
	p.analyser.Set("minDecibels", cfg.MinDecibels)
	p.analyser.Set("maxDecibels", cfg.MaxDecibels)

	p.bins = p.analyser.Get("frequencyBinCount").Int()
	p.buf = js.Global.Get("Uint8Array").New(p.bins)

	p.source.Call("connect", p.analyser)
	p.analyser.Call("connect", p.ctx.Get("destination"))
	return p, nil
}

// FrequencyBinCount is half the FFT size.
func (p *WebPipeline) FrequencyBinCount() int {
	return p.bins
}

// ByteFrequencyData copies the current spectrum into dst.
func (p *WebPipeline) ByteFrequencyData(dst []byte) {
	p.analyser.Call("getByteFrequencyData", p.buf)
	n := len(dst)
	if n > p.bins {
		n = p.bins
	}
	for i := 0; i < n; i++ {
		dst[i] = byte(p.buf.Index(i).Int())
	}
}

// Resume restarts the context unless it is running or closed. Browsers create
// contexts suspended until a user gesture, and Safari reports "interrupted"
// after the system takes the audio session.
func (p *WebPipeline) Resume() {
	if state := p.State(); state != "running" && state != "closed" {
		p.ctx.Call("resume")
	}
}

// State is the context state: "suspended", "running", "interrupted" or "closed".
func (p *WebPipeline) State() string {
	return p.ctx.Get("state").String()
}
