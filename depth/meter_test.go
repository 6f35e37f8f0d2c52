package depth

import (
	"math"
	"testing"

	"github.com/simukka/synesthetic/config"
)

type fakeViewport struct {
	scrollY, scrollHeight, innerHeight float64
}

func (v *fakeViewport) ScrollY() float64      { return v.scrollY }
func (v *fakeViewport) ScrollHeight() float64 { return v.scrollHeight }
func (v *fakeViewport) InnerHeight() float64  { return v.innerHeight }

type fakeTarget struct {
	text  string
	props map[string]string
}

func (t *fakeTarget) SetText(text string) { t.text = text }

func (t *fakeTarget) SetProperty(name, value string) {
	if t.props == nil {
		t.props = make(map[string]string)
	}
	t.props[name] = value
}

type listener struct {
	passive bool
	fn      func()
}

type fakeEvents struct {
	listeners map[string][]listener
}

func newFakeEvents() *fakeEvents {
	return &fakeEvents{listeners: make(map[string][]listener)}
}

func (e *fakeEvents) Listen(event string, passive bool, fn func()) {
	e.listeners[event] = append(e.listeners[event], listener{passive, fn})
}

func (e *fakeEvents) Dispatch(event string) {
	for _, l := range e.listeners[event] {
		l.fn()
	}
}

func TestAltitude_Range(t *testing.T) {
	maxScroll := 3000.0
	for s := 0.0; s <= maxScroll; s += 7 {
		p := Progress(s, maxScroll+800, 800)
		expected := int(math.Floor(5000 - (s/maxScroll)*10000 + 0.5))
		if got := Altitude(p); got != expected {
			t.Fatalf("Altitude at scroll %v = %d, expected %d", s, got, expected)
		}
	}

	if got := Altitude(Progress(0, 3800, 800)); got != 5000 {
		t.Errorf("Expected altitude 5000 at top, got %d", got)
	}
	if got := Altitude(Progress(maxScroll, 3800, 800)); got != -5000 {
		t.Errorf("Expected altitude -5000 at bottom, got %d", got)
	}
}

func TestAltitude_RoundsHalfUp(t *testing.T) {
	tests := []struct {
		name      string
		top, span float64
		expected  int
	}{
		{"positive half", 1, 1, 1},   // 0.5
		{"negative half", -2, 1, -2}, // -2.5
		{"below half", 0.25, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AltitudeIn(0.5, tt.top, tt.span); got != tt.expected {
				t.Errorf("AltitudeIn(0.5, %v, %v) = %d, expected %d", tt.top, tt.span, got, tt.expected)
			}
		})
	}
}

func TestProgress_NotScrollable(t *testing.T) {
	tests := []struct {
		name                    string
		scrollY, height, window float64
	}{
		{"equal heights", 0, 800, 800},
		{"content shorter", 0, 600, 800},
		{"stale scroll offset", 250, 800, 800},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Progress(tt.scrollY, tt.height, tt.window)
			if p != 0 {
				t.Errorf("Expected progress 0, got %v", p)
			}
			if a := Altitude(p); a != 5000 {
				t.Errorf("Expected altitude 5000, got %d", a)
			}
		})
	}
}

func TestLabel(t *testing.T) {
	if got := Label(-120, "m"); got != "-120m" {
		t.Errorf("Expected -120m, got %q", got)
	}
	if got := Label(5000, "m"); got != "5000m" {
		t.Errorf("Expected 5000m, got %q", got)
	}
}

func TestMeter_UpdateWritesAllTargets(t *testing.T) {
	vp := &fakeViewport{scrollY: 500, scrollHeight: 2000, innerHeight: 1000}
	a, b := &fakeTarget{}, &fakeTarget{}
	m := NewMeter(vp, []Target{a, b}, config.Default())

	m.Update()

	for i, tgt := range []*fakeTarget{a, b} {
		if tgt.text != "0m" {
			t.Errorf("Target %d: expected text 0m, got %q", i, tgt.text)
		}
		if tgt.props["--progress"] != "0.5" {
			t.Errorf("Target %d: expected --progress 0.5, got %q", i, tgt.props["--progress"])
		}
	}
}

func TestMeter_AttachRegistersListeners(t *testing.T) {
	vp := &fakeViewport{scrollY: 0, scrollHeight: 2000, innerHeight: 1000}
	tgt := &fakeTarget{}
	m := NewMeter(vp, []Target{tgt}, nil)
	ev := newFakeEvents()

	if !m.Attach(ev) {
		t.Fatal("Expected Attach to return true with a target present")
	}
	if tgt.text != "5000m" {
		t.Errorf("Expected initial render 5000m, got %q", tgt.text)
	}
	if tgt.props["--progress"] != "0" {
		t.Errorf("Expected initial progress 0, got %q", tgt.props["--progress"])
	}

	scroll := ev.listeners["scroll"]
	if len(scroll) != 1 || !scroll[0].passive {
		t.Errorf("Expected one passive scroll listener, got %+v", scroll)
	}
	resize := ev.listeners["resize"]
	if len(resize) != 1 || resize[0].passive {
		t.Errorf("Expected one non-passive resize listener, got %+v", resize)
	}

	vp.scrollY = 1000
	ev.Dispatch("scroll")
	if tgt.text != "-5000m" {
		t.Errorf("Expected -5000m after scrolling to bottom, got %q", tgt.text)
	}
}

func TestMeter_ResizeRecomputesWithoutScroll(t *testing.T) {
	vp := &fakeViewport{scrollY: 500, scrollHeight: 2000, innerHeight: 1000}
	tgt := &fakeTarget{}
	m := NewMeter(vp, []Target{tgt}, nil)
	ev := newFakeEvents()
	m.Attach(ev)

	if tgt.text != "0m" {
		t.Fatalf("Expected 0m before resize, got %q", tgt.text)
	}

	// Window grows: scrollable distance shrinks to 500.
	vp.innerHeight = 1500
	ev.Dispatch("resize")

	if tgt.text != "-5000m" {
		t.Errorf("Expected -5000m after resize, got %q", tgt.text)
	}
	if tgt.props["--progress"] != "1" {
		t.Errorf("Expected --progress 1 after resize, got %q", tgt.props["--progress"])
	}
}

func TestMeter_NoTargetsAttachesNothing(t *testing.T) {
	vp := &fakeViewport{scrollY: 100, scrollHeight: 2000, innerHeight: 1000}
	m := NewMeter(vp, nil, nil)
	ev := newFakeEvents()

	if m.Attach(ev) {
		t.Error("Expected Attach to return false without targets")
	}
	if len(ev.listeners) != 0 {
		t.Errorf("Expected no listeners, got %d event types", len(ev.listeners))
	}

	ev.Dispatch("scroll")
	ev.Dispatch("resize")
	if m.Updates() != 0 {
		t.Errorf("Expected no updates, got %d", m.Updates())
	}
}

func TestMeter_EveryEventUpdates(t *testing.T) {
	vp := &fakeViewport{scrollHeight: 2000, innerHeight: 1000}
	m := NewMeter(vp, []Target{&fakeTarget{}}, nil)
	ev := newFakeEvents()
	m.Attach(ev)

	for i := 0; i < 5; i++ {
		ev.Dispatch("scroll")
	}
	ev.Dispatch("resize")

	// initial render + 5 scrolls + 1 resize
	if m.Updates() != 7 {
		t.Errorf("Expected 7 updates, got %d", m.Updates())
	}
}
