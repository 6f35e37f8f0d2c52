//go:build js
// +build js

package main

import (
	"github.com/gopherjs/gopherjs/js"
	"github.com/simukka/synesthetic/audio"
	"github.com/simukka/synesthetic/common"
	"github.com/simukka/synesthetic/config"
	"github.com/simukka/synesthetic/depth"
	"github.com/simukka/synesthetic/dom"
	"github.com/simukka/synesthetic/synesthetic"
)

func main() {
	win := dom.NewWindow(js.Global)
	doc := dom.NewDocument(js.Global.Get("document"))
	cfg := loadConfig(doc)

	setupDepthMeters(win, doc, cfg)
	vis := setupVisualizer(win, doc, cfg)

	// Expose state for debugging from the console
	js.Global.Set("Synesthetic", map[string]interface{}{
		"state": func() string {
			if vis == nil {
				return "disabled"
			}
			return vis.State().String()
		},
		"frames": func() int {
			if vis == nil {
				return 0
			}
			return vis.Frames()
		},
	})
}

// loadConfig overlays the page's optional YAML block onto the defaults.
func loadConfig(doc *dom.Document) *config.Config {
	cfg := config.Default()
	el := doc.Query(cfg.Selectors.Config)
	if el == nil {
		return cfg
	}
	parsed, err := config.Parse([]byte(el.Text()))
	if err != nil {
		common.DebugError("synesthetic: ignoring page config:", err.Error())
		return cfg
	}
	return parsed
}

func setupDepthMeters(win *dom.Window, doc *dom.Document, cfg *config.Config) {
	elements := doc.QueryAll(cfg.Selectors.DepthMeter)
	targets := make([]depth.Target, len(elements))
	for i, el := range elements {
		targets[i] = el
	}

	meter := depth.NewMeter(win, targets, cfg)
	if meter.Attach(win) {
		common.Debug("synesthetic: depth meter attached to", len(targets), "elements")
	}
}

func setupVisualizer(win *dom.Window, doc *dom.Document, cfg *config.Config) *synesthetic.Visualizer {
	audioEl := doc.Query(cfg.Selectors.Audio)
	container := doc.Query(cfg.Selectors.Container)
	if audioEl == nil || container == nil {
		return nil
	}

	pipeline, err := audio.NewWebPipeline(audioEl.Object, cfg.Analyser)
	if err != nil {
		common.DebugError("synesthetic: visualizer disabled:", err.Error())
		return nil
	}

	layers := synesthetic.Layers{}
	if el := container.Query(cfg.Selectors.Sun); el != nil {
		layers.Sun = el
	}
	if el := container.Query(cfg.Selectors.Rabbit); el != nil {
		layers.Rabbit = el
	}
	if el := container.Query(cfg.Selectors.Wave); el != nil {
		layers.Wave = el
	}

	media := dom.NewMedia(audioEl)
	vis := synesthetic.NewVisualizer(pipeline, media, win, layers, cfg)
	vis.Bind(media)
	return vis
}
