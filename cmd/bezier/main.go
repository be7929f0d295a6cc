// Bezier opens a window with a draggable cubic Bézier curve, an animated
// De Casteljau construction and bird decorations scattered along the curve.
//
// Usage:
//
//	bezier [-config bezier.yaml] [-script steps.json] [-seed N] [-debug] [-fps]
//
// Drag the white endpoints or the green control points with the left mouse
// button. Decorations are regenerated when a drag ends.
package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/phanxgames/bezier"
	"github.com/phanxgames/bezier/internal/config"
	applog "github.com/phanxgames/bezier/internal/log"
)

func main() {
	os.Exit(run())
}

func run() int {
	var (
		configPath = flag.String("config", "", "path to a YAML config file")
		scriptPath = flag.String("script", "", "path to a JSON input script to replay")
		seed       = flag.Uint64("seed", 0, "decoration seed (0 uses the config value or the clock)")
		debug      = flag.Bool("debug", false, "log per-frame timings at debug level")
		showFPS    = flag.Bool("fps", false, "show the FPS overlay")
	)
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		applog.Init(applog.FromEnv()).Error("load config", slog.Any("err", err))
		return 1
	}
	if *debug {
		cfg.Debug = true
		cfg.Logging.Level = "debug"
	}
	if *showFPS {
		cfg.Window.ShowFPS = true
	}
	if *seed != 0 {
		cfg.Curve.Seed = *seed
	}
	if cfg.Curve.Seed == 0 {
		cfg.Curve.Seed = uint64(time.Now().UnixNano())
	}

	logger := applog.Init(applog.Options{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		AddSource: cfg.Logging.Source,
		File:      cfg.Logging.File,
	})
	defer applog.Close()
	bezier.SetLogger(logger)

	gen := bezier.NewDecorationGenerator()
	gen.Step = cfg.Decoration.Step
	gen.Threshold = cfg.Decoration.Threshold
	gen.ScaleMin = cfg.Decoration.ScaleMin
	gen.ScaleMax = cfg.Decoration.ScaleMax

	scene := bezier.NewScene(bezier.SceneConfig{
		Width:        cfg.Window.Width,
		Height:       cfg.Window.Height,
		TPS:          cfg.Window.TPS,
		Seed:         cfg.Curve.Seed,
		Generator:    gen,
		PhaseStep:    cfg.Curve.PhaseStep,
		FadeDuration: cfg.Curve.FadeDuration,
		ShowFPS:      cfg.Window.ShowFPS,
	})
	scene.ScreenshotDir = cfg.ScreenshotDir
	scene.SetDebugMode(cfg.Debug)

	if *scriptPath != "" {
		data, err := os.ReadFile(*scriptPath)
		if err != nil {
			logger.Error("read script", slog.String("path", *scriptPath), slog.Any("err", err))
			return 1
		}
		runner, err := bezier.LoadScript(data)
		if err != nil {
			logger.Error("load script", slog.String("path", *scriptPath), slog.Any("err", err))
			return 1
		}
		scene.SetScriptRunner(runner)
	}

	logger.Info("starting",
		slog.Int("width", cfg.Window.Width),
		slog.Int("height", cfg.Window.Height),
		slog.Uint64("seed", cfg.Curve.Seed))

	if err := bezier.Run(scene, bezier.RunConfig{
		Title:     cfg.Window.Title,
		Resizable: cfg.Window.Resizable,
	}); err != nil {
		logger.Error("exited with error", slog.Any("err", err))
		return 1
	}
	return 0
}
