// Command markupview calculates the dashes of a scene of road markup and
// writes a top-down preview of them as PNG.
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"honnef.co/go/markup"
	"honnef.co/go/markup/internal/preview"
	"honnef.co/go/markup/internal/scene"
)

func main() {
	var (
		scenePath  = flag.String("scene", "scene.toml", "scene file (.toml, .yaml or .yml)")
		configPath = flag.String("config", "", "engine configuration (TOML)")
		output     = flag.String("o", "markup.png", "output file")
		scale      = flag.Float64("scale", preview.DefaultOptions.Scale, "pixels per metre")
		verbose    = flag.Bool("v", false, "log debug output")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	markup.SetLogger(logger)

	cfg := markup.DefaultConfig()
	if *configPath != "" {
		f, err := os.Open(*configPath)
		if err != nil {
			log.Fatalf("Failed to open config: %v", err)
		}
		cfg, err = markup.LoadConfig(f)
		f.Close()
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}
	markup.InitDefaults()

	s, err := scene.Load(*scenePath)
	if err != nil {
		log.Fatalf("Failed to load scene: %v", err)
	}
	items, err := s.Build()
	if err != nil {
		log.Fatalf("Failed to build scene: %v", err)
	}

	var dashes []markup.Dash
	for _, item := range items {
		if !item.Style.AppliesTo(item.Line) {
			logger.Warn("style does not apply to line", "line", item.Name, "style", item.Style.Kind, "kind", item.Line.Kind)
			continue
		}
		n := len(dashes)
		for d := range item.Style.CalculateWith(item.Line, item.Line.Trajectory(), cfg.Subdivide) {
			dashes = append(dashes, d)
		}
		logger.Info("line calculated", "line", item.Name, "style", item.Style.Kind, "dashes", len(dashes)-n)
	}

	batches := 0
	for b := range markup.BuildBatches(dashes, cfg.Batch) {
		batches++
		b.Release()
	}
	logger.Info("scene calculated", "lines", len(items), "dashes", len(dashes), "batches", batches)

	f, err := os.Create(*output)
	if err != nil {
		log.Fatalf("Failed to create output: %v", err)
	}
	if err := preview.WritePNG(f, dashes, preview.Options{Scale: *scale, Margin: preview.DefaultOptions.Margin}); err != nil {
		f.Close()
		log.Fatalf("Failed to write preview: %v", err)
	}
	if err := f.Close(); err != nil {
		log.Fatalf("Failed to write preview: %v", err)
	}
	log.Printf("Preview saved to %s\n", *output)
}
