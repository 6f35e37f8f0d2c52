package dom

import (
	"github.com/gopherjs/gopherjs/js"
)

// Window wraps the browser window: scroll geometry, event listeners and
// animation frames.
type Window struct {
	*js.Object
	doc *js.Object
}

func NewWindow(o *js.Object) *Window {
	return &Window{Object: o, doc: o.Get("document")}
}

func (w *Window) ScrollY() float64 {
	return w.Get("scrollY").Float()
}

func (w *Window) ScrollHeight() float64 {
	return w.doc.Get("documentElement").Get("scrollHeight").Float()
}

func (w *Window) InnerHeight() float64 {
	return w.Get("innerHeight").Float()
}

// Listen registers fn for event. Passive listeners tell the browser scrolling
// never waits on them.
func (w *Window) Listen(event string, passive bool, fn func()) {
	handler := func(*js.Object) { fn() }
	if passive {
		w.Call("addEventListener", event, handler, map[string]interface{}{"passive": true})
		return
	}
	w.Call("addEventListener", event, handler)
}

func (w *Window) RequestFrame(fn func(timestamp float64)) int {
	return w.Call("requestAnimationFrame", fn).Int()
}

func (w *Window) CancelFrame(handle int) {
	w.Call("cancelAnimationFrame", handle)
}
