// Package config loads the demo's YAML configuration file and applies
// environment overrides on top of it.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is returned when a loaded configuration fails validation.
var ErrInvalid = errors.New("config: invalid")

type WindowConfig struct {
	Title     string `yaml:"title"`
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	TPS       int    `yaml:"tps"`
	ShowFPS   bool   `yaml:"show_fps"`
	Resizable bool   `yaml:"resizable"`
}

type CurveConfig struct {
	// Seed drives decoration placement. Zero picks a seed from the clock.
	Seed         uint64  `yaml:"seed"`
	PhaseStep    float64 `yaml:"phase_step"`
	FadeDuration float32 `yaml:"fade_duration"` // seconds
}

type DecorationConfig struct {
	Threshold float64 `yaml:"threshold"`
	Step      float64 `yaml:"step"`
	ScaleMin  float64 `yaml:"scale_min"`
	ScaleMax  float64 `yaml:"scale_max"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	Source bool   `yaml:"source"`
	File   string `yaml:"file"`
}

// AppConfig is the full demo configuration.
type AppConfig struct {
	Window        WindowConfig     `yaml:"window"`
	Curve         CurveConfig      `yaml:"curve"`
	Decoration    DecorationConfig `yaml:"decoration"`
	Logging       LoggingConfig    `yaml:"logging"`
	Debug         bool             `yaml:"debug"`
	ScreenshotDir string           `yaml:"screenshot_dir"`
}

// Defaults returns the built-in configuration.
func Defaults() AppConfig {
	return AppConfig{
		Window:        WindowConfig{Title: "Bezier", Width: 1024, Height: 768, TPS: 60},
		Curve:         CurveConfig{PhaseStep: 0.005, FadeDuration: 0.25},
		Decoration:    DecorationConfig{Threshold: 0.5, Step: 0.1, ScaleMin: 0.3, ScaleMax: 0.5},
		Logging:       LoggingConfig{Level: "info", Format: "text"},
		ScreenshotDir: "screenshots",
	}
}

// Env var names used as overrides.
const (
	EnvWidth     = "BEZIER_WIDTH"
	EnvHeight    = "BEZIER_HEIGHT"
	EnvTPS       = "BEZIER_TPS"
	EnvShowFPS   = "BEZIER_SHOW_FPS"
	EnvSeed      = "BEZIER_SEED"
	EnvThreshold = "BEZIER_THRESHOLD"
	EnvDebug     = "BEZIER_DEBUG"
	EnvLogLevel  = "BEZIER_LOG_LEVEL"
	EnvLogFormat = "BEZIER_LOG_FORMAT"
	EnvLogSource = "BEZIER_LOG_SOURCE"
	EnvLogFile   = "BEZIER_LOG_FILE"
)

// Load returns Defaults overlaid with the YAML file at path (if path is
// non-empty) and then with environment overrides. A missing file is an error
// only when path was given explicitly.
func Load(path string) (AppConfig, error) {
	cfg := Defaults()
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config: %w", err)
		}
		if err := Parse(b, &cfg); err != nil {
			return cfg, err
		}
	}
	if err := applyEnv(&cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Parse decodes YAML into cfg. Keys absent from b leave cfg unchanged.
func Parse(b []byte, cfg *AppConfig) error {
	if err := yaml.Unmarshal(b, cfg); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}
	return nil
}

// Validate reports the first out-of-range value.
func (c AppConfig) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	case c.Window.TPS <= 0:
		return fmt.Errorf("%w: tps %d", ErrInvalid, c.Window.TPS)
	case c.Decoration.Step <= 0 || c.Decoration.Step > 1:
		return fmt.Errorf("%w: decoration step %g", ErrInvalid, c.Decoration.Step)
	case c.Decoration.Threshold < 0 || c.Decoration.Threshold > 1:
		return fmt.Errorf("%w: decoration threshold %g", ErrInvalid, c.Decoration.Threshold)
	case c.Decoration.ScaleMin > c.Decoration.ScaleMax:
		return fmt.Errorf("%w: scale range [%g, %g]", ErrInvalid, c.Decoration.ScaleMin, c.Decoration.ScaleMax)
	case c.Curve.FadeDuration < 0:
		return fmt.Errorf("%w: fade duration %g", ErrInvalid, c.Curve.FadeDuration)
	}
	return nil
}

func applyEnv(cfg *AppConfig) error {
	var err error
	setInt := func(key string, dst *int) {
		if v := strings.TrimSpace(os.Getenv(key)); v != "" && err == nil {
			n, e := strconv.Atoi(v)
			if e != nil {
				err = fmt.Errorf("%s: %w", key, e)
				return
			}
			*dst = n
		}
	}
	setBool := func(key string, dst *bool) {
		if v := strings.TrimSpace(os.Getenv(key)); v != "" && err == nil {
			b, e := strconv.ParseBool(v)
			if e != nil {
				err = fmt.Errorf("%s: %w", key, e)
				return
			}
			*dst = b
		}
	}
	setString := func(key string, dst *string) {
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			*dst = v
		}
	}

	setInt(EnvWidth, &cfg.Window.Width)
	setInt(EnvHeight, &cfg.Window.Height)
	setInt(EnvTPS, &cfg.Window.TPS)
	setBool(EnvShowFPS, &cfg.Window.ShowFPS)
	setBool(EnvDebug, &cfg.Debug)
	setBool(EnvLogSource, &cfg.Logging.Source)
	setString(EnvLogLevel, &cfg.Logging.Level)
	setString(EnvLogFormat, &cfg.Logging.Format)
	setString(EnvLogFile, &cfg.Logging.File)

	if v := strings.TrimSpace(os.Getenv(EnvSeed)); v != "" && err == nil {
		n, e := strconv.ParseUint(v, 10, 64)
		if e != nil {
			return fmt.Errorf("%s: %w", EnvSeed, e)
		}
		cfg.Curve.Seed = n
	}
	if v := strings.TrimSpace(os.Getenv(EnvThreshold)); v != "" && err == nil {
		f, e := strconv.ParseFloat(v, 64)
		if e != nil {
			return fmt.Errorf("%s: %w", EnvThreshold, e)
		}
		cfg.Decoration.Threshold = f
	}
	return err
}
