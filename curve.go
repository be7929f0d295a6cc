package bezier

import (
	"context"
	"fmt"
	"image"
	"log/slog"
	"math"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/tanema/gween/ease"
)

// Curve rendering constants.
const (
	PointSize        = 16.0
	PointHalf        = PointSize * 0.5
	DefaultPhaseStep = 0.005
	CurveLineWidth   = 2.0
	MarkerSize       = 6.0
)

// TargetKind distinguishes the two groups of draggable points.
type TargetKind uint8

const (
	TargetEndpoint TargetKind = iota // one of the two curve endpoints
	TargetControl                    // one of the two control points
)

func (k TargetKind) String() string {
	switch k {
	case TargetEndpoint:
		return "endpoint"
	case TargetControl:
		return "control"
	default:
		return fmt.Sprintf("TargetKind(%d)", uint8(k))
	}
}

// DragTarget names one of the four draggable points.
type DragTarget struct {
	Kind  TargetKind
	Index int
}

func (t DragTarget) String() string {
	return fmt.Sprintf("%s%d", t.Kind, t.Index)
}

func (t DragTarget) valid() bool {
	return t.Kind <= TargetControl && t.Index >= 0 && t.Index < 2
}

// dragState is non-nil on the Curve while a point is being dragged. Holding
// a single target makes dragging two points at once unrepresentable.
type dragState struct {
	target DragTarget
	start  Point
}

// CurveConfig configures NewCurve.
type CurveConfig struct {
	Points   [2]Point
	Controls ControlPair

	// Generator scatters the decoration. Nil uses NewDecorationGenerator.
	Generator *DecorationGenerator
	// Rasterizer bakes decorations off the frame loop. Nil disables them.
	Rasterizer Rasterizer
	// Seed feeds the decoration randomness.
	Seed uint64
	// PhaseStep is the per-frame phase increment. Zero uses DefaultPhaseStep.
	PhaseStep float64
	// FadeDuration is the decoration fade-in in seconds. Negative disables it.
	FadeDuration float32
}

type decorationResult struct {
	seq     uint64
	img     image.Image
	shapes  int
	elapsed time.Duration
	err     error
}

// Curve is a draggable cubic Bezier with animated De Casteljau helpers and
// a cached decoration image.
//
// All methods except Wait and Close must be called from the frame loop.
// Decorations are generated on separate goroutines and handed back through
// an inbox drained by Update.
type Curve struct {
	points   [2]Point
	controls ControlPair
	drag     *dragState

	phase     float64
	phaseStep float64

	gen          *DecorationGenerator
	raster       Rasterizer
	rng          *rand.Rand
	decoration   image.Image
	fade         *Fade
	fadeDuration float32
	seq          uint64
	requested    int

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
	mu     sync.Mutex
	inbox  []decorationResult

	log *slog.Logger
}

// NewCurve creates a curve and requests its first decoration.
func NewCurve(cfg CurveConfig) *Curve {
	gen := cfg.Generator
	if gen == nil {
		gen = NewDecorationGenerator()
	}
	step := cfg.PhaseStep
	if step == 0 {
		step = DefaultPhaseStep
	}
	fadeDur := cfg.FadeDuration
	if fadeDur == 0 {
		fadeDur = DefaultFadeDuration
	}
	ctx, cancel := context.WithCancel(context.Background())
	c := &Curve{
		points:       cfg.Points,
		controls:     cfg.Controls,
		phase:        -math.Pi * 0.5,
		phaseStep:    step,
		gen:          gen,
		raster:       cfg.Rasterizer,
		rng:          rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15)),
		fadeDuration: fadeDur,
		ctx:          ctx,
		cancel:       cancel,
		log:          componentLogger("curve"),
	}
	c.RegenerateDecoration()
	return c
}

// Points returns the committed endpoints.
func (c *Curve) Points() [2]Point { return c.points }

// Controls returns the committed control points.
func (c *Curve) Controls() ControlPair { return c.controls }

// Cubic returns the committed curve, ignoring any drag in progress.
func (c *Curve) Cubic() Cubic {
	return Cubic{P0: c.points[0], C0: c.controls[0], C1: c.controls[1], P1: c.points[1]}
}

// LiveCubic returns the curve as displayed: the dragged point, if any, is
// displaced by pointer minus the drag start.
func (c *Curve) LiveCubic(pointer Point) Cubic {
	cu := c.Cubic()
	if c.drag == nil {
		return cu
	}
	off := pointer.Sub(c.drag.start)
	switch c.drag.target {
	case DragTarget{TargetEndpoint, 0}:
		cu.P0 = cu.P0.Add(off)
	case DragTarget{TargetEndpoint, 1}:
		cu.P1 = cu.P1.Add(off)
	case DragTarget{TargetControl, 0}:
		cu.C0 = cu.C0.Add(off)
	case DragTarget{TargetControl, 1}:
		cu.C1 = cu.C1.Add(off)
	}
	return cu
}

// Phase returns the animation phase in radians.
func (c *Curve) Phase() float64 { return c.phase }

// T returns the animated curve parameter for the current phase.
func (c *Curve) T() float64 { return TimeAt(c.phase) }

// Decoration returns the cached decoration image, or nil while none is ready.
func (c *Curve) Decoration() image.Image { return c.decoration }

// Generations returns how many decoration generations have been requested.
func (c *Curve) Generations() int { return c.requested }

// Pick returns the first point whose hit square contains pos. Endpoints are
// checked before control points, each in index order.
func (c *Curve) Pick(pos Point) (DragTarget, bool) {
	for i, p := range c.points {
		if HitTest(pos, p) {
			return DragTarget{TargetEndpoint, i}, true
		}
	}
	for i, p := range c.controls {
		if HitTest(pos, p) {
			return DragTarget{TargetControl, i}, true
		}
	}
	return DragTarget{}, false
}

// Dragging reports the point currently being dragged.
func (c *Curve) Dragging() (DragTarget, bool) {
	if c.drag == nil {
		return DragTarget{}, false
	}
	return c.drag.target, true
}

// BeginDrag starts dragging target from pos. It fails when a drag is already
// active or target is out of range. The cached decoration is dropped and any
// generation still in flight becomes stale.
func (c *Curve) BeginDrag(target DragTarget, pos Point) bool {
	if c.drag != nil || !target.valid() {
		return false
	}
	c.drag = &dragState{target: target, start: pos}
	c.decoration = nil
	c.fade = nil
	c.seq++
	c.log.Debug("drag start", slog.String("target", target.String()),
		slog.Float64("x", pos.X), slog.Float64("y", pos.Y))
	return true
}

// CommitDrag moves the dragged point by pos minus the drag start, ends the
// drag and requests a new decoration. It is a no-op without an active drag.
func (c *Curve) CommitDrag(pos Point) bool {
	if c.drag == nil {
		return false
	}
	d := c.drag
	c.drag = nil

	p := c.point(d.target)
	*p = p.Add(pos.Sub(d.start))
	c.log.Debug("drag commit", slog.String("target", d.target.String()),
		slog.Float64("x", p.X), slog.Float64("y", p.Y))

	c.RegenerateDecoration()
	return true
}

func (c *Curve) point(t DragTarget) *Point {
	if t.Kind == TargetEndpoint {
		return &c.points[t.Index]
	}
	return &c.controls[t.Index]
}

// RegenerateDecoration asynchronously bakes a new decoration for the
// committed curve. The result is applied by a later Update only if no newer
// request or drag has happened in the meantime.
func (c *Curve) RegenerateDecoration() {
	c.seq++
	c.requested++
	if c.raster == nil {
		return
	}

	seq := c.seq
	cu := c.Cubic()
	gen, raster, ctx := c.gen, c.raster, c.ctx
	rng := rand.New(rand.NewPCG(c.rng.Uint64(), c.rng.Uint64()))

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		start := time.Now()
		var shapes int
		img, err := raster.Rasterize(ctx, func(s Surface) {
			shapes = gen.Draw(s, cu, rng)
		})
		c.post(decorationResult{seq: seq, img: img, shapes: shapes, elapsed: time.Since(start), err: err})
	}()
}

func (c *Curve) post(r decorationResult) {
	c.mu.Lock()
	c.inbox = append(c.inbox, r)
	c.mu.Unlock()
}

func (c *Curve) drainInbox() []decorationResult {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := c.inbox
	c.inbox = nil
	return out
}

// applyDecorations installs the newest finished generation and drops stale
// ones. A failed generation leaves the cache empty.
func (c *Curve) applyDecorations() {
	for _, r := range c.drainInbox() {
		if r.seq != c.seq {
			c.log.Debug("stale decoration discarded", slog.Uint64("seq", r.seq), slog.Uint64("current", c.seq))
			continue
		}
		if r.err != nil {
			c.log.Error("decoration generation failed", slog.Uint64("seq", r.seq), slog.Any("err", r.err))
			c.decoration = nil
			continue
		}
		c.decoration = r.img
		c.fade = NewFade(c.fadeDuration, ease.OutQuad)
		c.log.Debug("decoration ready", slog.Uint64("seq", r.seq),
			slog.Int("shapes", r.shapes), slog.Duration("elapsed", r.elapsed))
	}
}

// Update advances the animation phase by one frame, installs finished
// decorations and steps the fade by dt seconds.
func (c *Curve) Update(dt float32) {
	c.phase += c.phaseStep
	c.applyDecorations()
	c.fade.Update(dt)
}

// Draw renders the decoration, the draggable points, the curve and the De
// Casteljau helper geometry for the current phase. pointer is the latest
// pointer position and only matters while dragging.
func (c *Curve) Draw(s Surface, pointer Point) {
	s.SetLineWidth(CurveLineWidth)

	if c.decoration != nil {
		s.DrawImage(c.decoration, 0, 0, c.fade.Alpha())
	}

	cu := c.LiveCubic(pointer)

	s.SetFillColor(MainColor)
	fillSquare(s, cu.P0, PointHalf)
	fillSquare(s, cu.P1, PointHalf)

	s.SetFillColor(ControlColor)
	fillSquare(s, cu.C0, PointHalf)
	fillSquare(s, cu.C1, PointHalf)

	s.SetStrokeColor(MainColor)
	s.BeginPath()
	s.MoveTo(cu.P0.X, cu.P0.Y)
	s.CubicTo(cu.C0.X, cu.C0.Y, cu.C1.X, cu.C1.Y, cu.P1.X, cu.P1.Y)
	s.Stroke()

	s.SetStrokeColor(ControlColor)
	strokePolyline(s, cu.P0, cu.C0, cu.C1, cu.P1)

	k := cu.Eval(c.T())

	s.SetStrokeColor(Helper2Color)
	strokePolyline(s, k.A[:]...)

	s.SetStrokeColor(Helper3Color)
	strokePolyline(s, k.B[:]...)

	s.SetFillColor(MainColor)
	fillSquare(s, k.P, MarkerSize*0.5)
}

// Wait blocks until every in-flight decoration generation has finished.
// Safe to call from any goroutine.
func (c *Curve) Wait() {
	c.wg.Wait()
}

// Close cancels in-flight generations and waits for them.
func (c *Curve) Close() {
	c.cancel()
	c.wg.Wait()
}

func fillSquare(s Surface, p Point, half float64) {
	s.FillRect(p.X-half, p.Y-half, 2*half, 2*half)
}

func strokePolyline(s Surface, pts ...Point) {
	if len(pts) == 0 {
		return
	}
	s.BeginPath()
	s.MoveTo(pts[0].X, pts[0].Y)
	for _, p := range pts[1:] {
		s.LineTo(p.X, p.Y)
	}
	s.Stroke()
}
