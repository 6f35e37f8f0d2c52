//go:build !js
// +build !js

// Command synestrace renders the synesthetic scene for audio files offline
// and writes the frame timeline as YAML, so the animation can be inspected
// and tuned without a browser.
//
// Usage:
//
//	synestrace [-fps 60] [-config page.yaml] [-workers 4] [-o dir] track.wav more.flac
//	synestrace -demo 10
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/simukka/synesthetic/audio"
	"github.com/simukka/synesthetic/config"
	"github.com/simukka/synesthetic/synesthetic"
)

type options struct {
	fps     float64
	config  string
	workers int
	outDir  string
	demo    float64
	seed    uint
	rate    int
}

func main() {
	var opts options
	flag.Float64Var(&opts.fps, "fps", 60, "display frames per second to sample")
	flag.StringVar(&opts.config, "config", "", "YAML config overlay")
	flag.IntVar(&opts.workers, "workers", runtime.NumCPU(), "files traced in parallel")
	flag.StringVar(&opts.outDir, "o", "", "output directory (default: next to each input)")
	flag.Float64Var(&opts.demo, "demo", 0, "trace a synthetic noise clip of this many seconds")
	flag.UintVar(&opts.seed, "seed", 1, "seed for -demo")
	flag.IntVar(&opts.rate, "rate", 44100, "sample rate for -demo")
	flag.Parse()

	if err := run(context.Background(), opts, flag.Args()); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, opts options, files []string) error {
	cfg := config.Default()
	if opts.config != "" {
		c, err := config.Load(opts.config)
		if err != nil {
			return err
		}
		cfg = c
	}

	if opts.demo > 0 {
		clip, err := audio.NoiseClip(uint32(opts.seed), opts.demo, opts.rate)
		if err != nil {
			return err
		}
		out := filepath.Join(opts.outDir, clip.Name+".trace.yaml")
		return traceClip(clip, out, opts.fps, cfg)
	}

	if len(files) == 0 {
		return fmt.Errorf("no input files (see -h)")
	}

	g, ctx := errgroup.WithContext(ctx)
	if opts.workers > 0 {
		g.SetLimit(opts.workers)
	}
	for _, file := range files {
		file := file
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			clip, err := audio.Load(file)
			if err != nil {
				return err
			}
			return traceClip(clip, outputPath(file, opts.outDir), opts.fps, cfg)
		})
	}
	return g.Wait()
}

func traceClip(clip *audio.Clip, out string, fps float64, cfg *config.Config) error {
	tl, err := synesthetic.Trace(clip, fps, cfg)
	if err != nil {
		return err
	}
	if err := writeTimeline(tl, out); err != nil {
		return err
	}
	log.Printf("%s: %d frames, %.1fs, energy peak %.3f mean %.3f -> %s",
		clip.Name, tl.Summary.Frames, tl.Summary.Duration,
		tl.Summary.PeakEnergy, tl.Summary.MeanEnergy, out)
	return nil
}

// outputPath places name.trace.yaml next to the input, or in dir when set.
func outputPath(input, dir string) string {
	base := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input)) + ".trace.yaml"
	if dir == "" {
		dir = filepath.Dir(input)
	}
	return filepath.Join(dir, base)
}

func writeTimeline(tl *synesthetic.Timeline, path string) error {
	data, err := yaml.Marshal(tl)
	if err != nil {
		return fmt.Errorf("encode timeline: %w", err)
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0644)
}
