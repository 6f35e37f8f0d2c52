// Package synesthetic animates a small scene from a playing track: the sun
// rises with playback progress, the rabbit hops with the music's energy and
// the wave stretches with it.
package synesthetic

import (
	"github.com/simukka/synesthetic/common"
	"github.com/simukka/synesthetic/config"
)

// Frame is the visual state for one progress/energy pair. Offsets are
// percentages of the element's own size.
type Frame struct {
	Time     float64 `yaml:"t"`
	Progress float64 `yaml:"progress"`
	Energy   float64 `yaml:"energy"`

	SunOffset     float64 `yaml:"sun_offset"`
	SunOpacity    float64 `yaml:"sun_opacity"`
	RabbitX       float64 `yaml:"rabbit_x"`
	RabbitOffset  float64 `yaml:"rabbit_offset"`
	RabbitOpacity float64 `yaml:"rabbit_opacity"`
	WaveScale     float64 `yaml:"wave_scale"`
}

// Compute maps playback progress and audio energy onto the scene.
func Compute(progress, energy float64, t config.Tuning) Frame {
	return Frame{
		Progress: progress,
		Energy:   energy,

		SunOffset:  common.Lerp(t.Sun.OffsetFrom, t.Sun.OffsetTo, progress),
		SunOpacity: common.Lerp(t.Sun.OpacityFrom, t.Sun.OpacityTo, progress),

		RabbitX:       t.Rabbit.XOffset,
		RabbitOffset:  t.Rabbit.OffsetBase - progress*t.Rabbit.OffsetProgress - energy*t.Rabbit.OffsetEnergy,
		RabbitOpacity: common.Lerp(t.Rabbit.OpacityFrom, t.Rabbit.OpacityTo, energy),

		WaveScale: t.Wave.ScaleBase + energy*t.Wave.ScaleEnergy,
	}
}

func (f Frame) SunTransform() string {
	return "translateY(" + common.FormatNumber(f.SunOffset) + "%)"
}

func (f Frame) SunOpacityValue() string {
	return common.FormatNumber(f.SunOpacity)
}

func (f Frame) RabbitTransform() string {
	return "translate(" + common.FormatNumber(f.RabbitX) + "%, " + common.FormatNumber(f.RabbitOffset) + "%)"
}

func (f Frame) RabbitOpacityValue() string {
	return common.FormatNumber(f.RabbitOpacity)
}

func (f Frame) WaveTransform() string {
	return "scaleY(" + common.FormatNumber(f.WaveScale) + ")"
}
