package synesthetic

import (
	"testing"

	"github.com/simukka/synesthetic/audio"
	"github.com/simukka/synesthetic/config"
)

func TestTrace_FrameCount(t *testing.T) {
	clip, err := audio.NoiseClip(11, 2, 8000)
	if err != nil {
		t.Fatal(err)
	}

	tl, err := Trace(clip, 30, config.Default())
	if err != nil {
		t.Fatalf("Trace failed: %v", err)
	}

	if tl.Summary.Frames != 61 || len(tl.Frames) != 61 {
		t.Errorf("Expected 61 frames, got summary %d / %d", tl.Summary.Frames, len(tl.Frames))
	}
	if tl.Frames[0].Progress != 0 || tl.Frames[0].Energy != 0 {
		t.Errorf("Expected silent start, got progress %v energy %v", tl.Frames[0].Progress, tl.Frames[0].Energy)
	}
	if last := tl.Frames[60]; !near(last.Progress, 1) {
		t.Errorf("Expected last frame at progress 1, got %v", last.Progress)
	}
}

func TestTrace_EnergyFollowsLoudness(t *testing.T) {
	clip, err := audio.NoiseClip(5, 2, 8000)
	if err != nil {
		t.Fatal(err)
	}

	tl, err := Trace(clip, 20, nil)
	if err != nil {
		t.Fatal(err)
	}

	early := tl.Frames[5].Energy
	late := tl.Frames[len(tl.Frames)-2].Energy
	if late <= early {
		t.Errorf("Expected energy to rise with the fade-in, early %v late %v", early, late)
	}
	if tl.Summary.PeakEnergy < late {
		t.Errorf("Peak %v below a frame's energy %v", tl.Summary.PeakEnergy, late)
	}
	if tl.Summary.MeanEnergy <= 0 || tl.Summary.MeanEnergy > tl.Summary.PeakEnergy {
		t.Errorf("Unexpected mean energy %v (peak %v)", tl.Summary.MeanEnergy, tl.Summary.PeakEnergy)
	}
	for i, f := range tl.Frames {
		if f.Energy < 0 || f.Energy > 1 {
			t.Fatalf("Frame %d energy %v outside [0, 1]", i, f.Energy)
		}
	}
}

func TestTrace_InvalidInput(t *testing.T) {
	clip := &audio.Clip{Name: "empty", Samples: make([]float64, 100), SampleRate: 8000}
	if _, err := Trace(clip, 0, nil); err == nil {
		t.Error("Expected error for zero fps")
	}

	clip.SampleRate = 0
	if _, err := Trace(clip, 60, nil); err == nil {
		t.Error("Expected error for missing sample rate")
	}
}
