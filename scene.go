package bezier

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// ErrFrameFault wraps any panic raised while updating or drawing a frame.
// A faulted Scene stops the game loop and never recovers.
var ErrFrameFault = errors.New("bezier: frame fault")

// Scene defaults.
const (
	DefaultWidth  = 1024
	DefaultHeight = 768
	DefaultTPS    = 60
)

// SceneConfig configures NewScene. Zero values select defaults.
type SceneConfig struct {
	Width, Height int
	TPS           int

	Seed         uint64
	Generator    *DecorationGenerator
	PhaseStep    float64
	FadeDuration float32

	// Source supplies real pointer input. Nil uses MousePointer.
	Source PointerSource
	// Rasterizer bakes decorations. Nil uses an Offscreen of the scene size.
	Rasterizer Rasterizer

	ShowFPS    bool
	ClearColor Color
}

// Scene owns the curve, the pointer state and the controller, and drives
// them once per frame. It implements ebiten.Game.
type Scene struct {
	// ClearColor fills the screen before the curve is drawn. The zero value
	// leaves the screen transparent.
	ClearColor Color
	// ScreenshotDir is where queued screenshots are written.
	ScreenshotDir string

	width, height int
	tps           int

	curve      *Curve
	pointer    PointerState
	controller *Controller
	source     PointerSource

	injectQueue     []PointerSample
	lastInjected    PointerSample // most recent sample taken from injectQueue
	runner          *ScriptRunner
	screenshotQueue []string

	surface *ScreenSurface
	fps     *fpsOverlay

	debug bool
	stats debugStats
	frame uint64

	fault   error
	stopped bool
	log     *slog.Logger
}

// NewScene creates a scene whose curve spans the surface horizontally:
// endpoints at the vertical center inset by PointHalf, controls at (256, 128)
// and (width-256, height-128).
func NewScene(cfg SceneConfig) *Scene {
	if cfg.Width <= 0 {
		cfg.Width = DefaultWidth
	}
	if cfg.Height <= 0 {
		cfg.Height = DefaultHeight
	}
	if cfg.TPS <= 0 {
		cfg.TPS = DefaultTPS
	}
	if cfg.Source == nil {
		cfg.Source = MousePointer{}
	}
	if cfg.Rasterizer == nil {
		cfg.Rasterizer = Offscreen{Width: cfg.Width, Height: cfg.Height}
	}

	w, h := float64(cfg.Width), float64(cfg.Height)
	curve := NewCurve(CurveConfig{
		Points:       [2]Point{{PointHalf, h * 0.5}, {w - PointHalf, h * 0.5}},
		Controls:     ControlPair{{256, 128}, {w - 256, h - 128}},
		Generator:    cfg.Generator,
		Rasterizer:   cfg.Rasterizer,
		Seed:         cfg.Seed,
		PhaseStep:    cfg.PhaseStep,
		FadeDuration: cfg.FadeDuration,
	})

	s := &Scene{
		ClearColor:    cfg.ClearColor,
		ScreenshotDir: "screenshots",
		width:         cfg.Width,
		height:        cfg.Height,
		tps:           cfg.TPS,
		curve:         curve,
		source:        cfg.Source,
		surface:       NewScreenSurface(),
		log:           componentLogger("scene"),
	}
	s.controller = NewController(&s.pointer, curve)
	if cfg.ShowFPS {
		s.fps = &fpsOverlay{}
	}
	return s
}

// Curve returns the scene's curve.
func (s *Scene) Curve() *Curve { return s.curve }

// Pointer returns the last known pointer position.
func (s *Scene) Pointer() Point { return s.pointer.Position() }

// TPS returns the fixed update rate the scene was configured with.
func (s *Scene) TPS() int { return s.tps }

// Err returns the fault that stopped the scene, if any.
func (s *Scene) Err() error { return s.fault }

// Stop ends the game loop cleanly at the next Update.
func (s *Scene) Stop() { s.stopped = true }

// SetDebugMode enables per-frame timing stats, logged at debug level.
func (s *Scene) SetDebugMode(enabled bool) { s.debug = enabled }

// Update processes one frame of input and animation. It returns the frame
// fault once the scene has faulted and ebiten.Termination after Stop.
func (s *Scene) Update() error {
	if s.fault != nil {
		return s.fault
	}
	if s.stopped {
		return ebiten.Termination
	}

	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}
	if err := s.guard("update", s.update); err != nil {
		return err
	}
	if s.debug {
		s.stats.updateTime = time.Since(t0)
	}
	s.frame++
	return nil
}

func (s *Scene) update() {
	if s.runner != nil {
		s.runner.step(s)
	}
	s.controller.Process(s.nextSample())
	dt := s.dt()
	s.curve.Update(dt)
	if s.fps != nil {
		s.fps.update(dt)
	}
}

// Draw renders the current frame onto screen. A fault here is reported by
// the next Update.
func (s *Scene) Draw(screen *ebiten.Image) {
	if s.fault != nil {
		return
	}
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}
	if err := s.guard("draw", func() { s.draw(screen) }); err != nil {
		return
	}
	if s.debug {
		s.stats.drawTime = time.Since(t0)
		s.debugLog()
	}
}

func (s *Scene) draw(screen *ebiten.Image) {
	s.surface.Target(screen)
	w, h := s.surface.Size()
	s.surface.ClearRect(0, 0, float64(w), float64(h))
	if s.ClearColor.A > 0 {
		screen.Fill(s.ClearColor.RGBA())
	}
	s.curve.Draw(s.surface, s.pointer.Position())
	if s.fps != nil {
		s.fps.draw(screen)
	}
	s.flushScreenshots(screen)
}

// Layout reports the fixed surface size regardless of the window size.
func (s *Scene) Layout(outsideWidth, outsideHeight int) (int, int) {
	return s.width, s.height
}

// Close cancels in-flight decoration work and releases GPU resources.
func (s *Scene) Close() {
	s.curve.Close()
	s.surface.Dispose()
	if s.fps != nil {
		s.fps.dispose()
	}
}

func (s *Scene) dt() float32 {
	return float32(1.0 / float64(s.tps))
}

// guard runs fn and converts a panic into an error wrapping ErrFrameFault.
// The first fault is logged and latched.
func (s *Scene) guard(phase string, fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %s: %v", ErrFrameFault, phase, r)
			s.fail(err)
		}
	}()
	fn()
	return nil
}

func (s *Scene) fail(err error) {
	if s.fault != nil {
		return
	}
	s.fault = err
	s.log.Error("update failed; stopping frame loop", slog.Any("err", err), slog.Uint64("frame", s.frame))
}
