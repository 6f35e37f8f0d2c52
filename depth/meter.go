// Package depth turns the page's scroll position into an altitude readout.
package depth

import (
	"strconv"

	"github.com/simukka/synesthetic/common"
	"github.com/simukka/synesthetic/config"
)

// Viewport exposes the scroll geometry of the page.
type Viewport interface {
	ScrollY() float64
	ScrollHeight() float64
	InnerHeight() float64
}

// Target is an element that displays the readout.
type Target interface {
	SetText(text string)
	SetProperty(name, value string)
}

// Events registers window event listeners. Passive listeners must never
// call preventDefault.
type Events interface {
	Listen(event string, passive bool, fn func())
}

// Progress is the scrolled fraction of the scrollable distance. A page that
// cannot scroll has progress 0.
func Progress(scrollY, scrollHeight, innerHeight float64) float64 {
	scrollable := scrollHeight - innerHeight
	if scrollable <= 0 {
		return 0
	}
	return scrollY / scrollable
}

// Altitude maps progress onto the default +5000..-5000 range.
func Altitude(progress float64) int {
	return AltitudeIn(progress, 5000, 10000)
}

// AltitudeIn maps progress onto [top, top-span].
func AltitudeIn(progress, top, span float64) int {
	return int(common.RoundJS(top - progress*span))
}

// Label formats an altitude for display, e.g. "-120m".
func Label(altitude int, unit string) string {
	return strconv.Itoa(altitude) + unit
}

// Meter keeps every target in sync with the scroll position.
type Meter struct {
	viewport Viewport
	targets  []Target
	depth    config.Depth

	updates int
}

// NewMeter creates a meter over targets using the depth settings of cfg.
func NewMeter(viewport Viewport, targets []Target, cfg *config.Config) *Meter {
	if cfg == nil {
		cfg = config.Default()
	}
	return &Meter{
		viewport: viewport,
		targets:  targets,
		depth:    cfg.Depth,
	}
}

// Update recomputes progress and altitude and writes them to every target.
func (m *Meter) Update() {
	progress := Progress(m.viewport.ScrollY(), m.viewport.ScrollHeight(), m.viewport.InnerHeight())
	label := Label(AltitudeIn(progress, m.depth.Top, m.depth.Span), m.depth.Unit)
	value := common.FormatNumber(progress)

	for _, t := range m.targets {
		t.SetText(label)
		t.SetProperty(m.depth.Property, value)
	}
	m.updates++
}

// Updates reports how many times the meter has run.
func (m *Meter) Updates() int {
	return m.updates
}

// Attach renders once and subscribes to scroll and resize. With no targets
// it does nothing and returns false.
func (m *Meter) Attach(events Events) bool {
	if len(m.targets) == 0 {
		return false
	}

	m.Update()
	events.Listen("scroll", true, m.Update)
	events.Listen("resize", false, m.Update)
	return true
}
