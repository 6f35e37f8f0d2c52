package dom

import (
	"math"

	"github.com/gopherjs/gopherjs/js"
)

// Media wraps an audio or video element.
type Media struct {
	*Element
}

func NewMedia(e *Element) *Media {
	return &Media{Element: e}
}

func (m *Media) CurrentTime() float64 {
	return m.Get("currentTime").Float()
}

// Duration is NaN until metadata has loaded.
func (m *Media) Duration() float64 {
	d := m.Get("duration")
	if !present(d) {
		return math.NaN()
	}
	return d.Float()
}

func (m *Media) On(event string, fn func()) {
	m.Call("addEventListener", event, func(*js.Object) { fn() })
}
