package bezier

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"
)

var (
	// ErrInvalidSize is returned when an offscreen raster has no area.
	ErrInvalidSize = errors.New("bezier: invalid raster size")
	// ErrRasterFailed wraps a failure inside an offscreen drawing callback.
	ErrRasterFailed = errors.New("bezier: rasterize failed")
)

// Rasterizer executes a drawing callback against a hidden surface and
// returns the finished image. Implementations must be safe to call from a
// goroutine other than the frame loop.
type Rasterizer interface {
	Rasterize(ctx context.Context, draw func(Surface)) (image.Image, error)
}

// Offscreen is a CPU Rasterizer producing *image.RGBA images of a fixed size.
type Offscreen struct {
	Width, Height int
}

// Rasterize runs draw on a fresh transparent RasterSurface. A panic inside
// draw is returned as an error wrapping ErrRasterFailed.
func (o Offscreen) Rasterize(ctx context.Context, draw func(Surface)) (img image.Image, err error) {
	if o.Width <= 0 || o.Height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, o.Width, o.Height)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("rasterize: %w", err)
	}

	s := NewRasterSurface(o.Width, o.Height)
	defer func() {
		if r := recover(); r != nil {
			img = nil
			err = fmt.Errorf("%w: %v", ErrRasterFailed, r)
		}
	}()
	draw(s)

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("rasterize: %w", err)
	}
	return s.Image(), nil
}

type pathOp uint8

const (
	opStart pathOp = iota
	opLine
	opCubic
	opClose
)

type rasterOp struct {
	op  pathOp
	pts [3]fixed.Point26_6
}

// RasterSurface is a Surface backed by an in-memory *image.RGBA. Path
// commands are recorded until Stroke, then replayed through a rasterx
// stroker with round joins and caps.
type RasterSurface struct {
	dst       *image.RGBA
	filler    *rasterx.Filler
	stroker   *rasterx.Stroker
	fill      Color
	stroke    Color
	lineWidth float64

	ops   []rasterOp
	open  bool // a sub-path has been started and not closed
	start Point
	cur   Point
	moved bool // cur is valid
}

// NewRasterSurface creates a transparent w×h surface.
func NewRasterSurface(w, h int) *RasterSurface {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	sc := rasterx.NewScannerGV(w, h, dst, dst.Bounds())
	return &RasterSurface{
		dst:       dst,
		filler:    rasterx.NewFiller(w, h, sc),
		stroker:   rasterx.NewStroker(w, h, sc),
		fill:      ColorWhite,
		stroke:    ColorWhite,
		lineWidth: 1,
	}
}

// Image returns the backing image. It is shared, not copied.
func (s *RasterSurface) Image() *image.RGBA {
	return s.dst
}

func (s *RasterSurface) Size() (int, int) {
	b := s.dst.Bounds()
	return b.Dx(), b.Dy()
}

func (s *RasterSurface) ClearRect(x, y, w, h float64) {
	r := pixelRect(x, y, w, h).Intersect(s.dst.Bounds())
	draw.Draw(s.dst, r, image.Transparent, image.Point{}, draw.Src)
}

func (s *RasterSurface) SetFillColor(c Color)   { s.fill = c }
func (s *RasterSurface) SetStrokeColor(c Color) { s.stroke = c }
func (s *RasterSurface) SetLineWidth(w float64) { s.lineWidth = w }

func (s *RasterSurface) FillRect(x, y, w, h float64) {
	if w <= 0 || h <= 0 {
		return
	}
	f := s.filler
	f.Clear()
	f.SetColor(s.fill.RGBA())
	f.Start(rasterx.ToFixedP(x, y))
	f.Line(rasterx.ToFixedP(x+w, y))
	f.Line(rasterx.ToFixedP(x+w, y+h))
	f.Line(rasterx.ToFixedP(x, y+h))
	f.Stop(true)
	f.Draw()
	f.Clear()
}

func (s *RasterSurface) BeginPath() {
	s.ops = s.ops[:0]
	s.open = false
	s.moved = false
}

func (s *RasterSurface) MoveTo(x, y float64) {
	s.ops = append(s.ops, rasterOp{op: opStart, pts: [3]fixed.Point26_6{rasterx.ToFixedP(x, y)}})
	s.open = true
	s.start = Point{x, y}
	s.cur = s.start
	s.moved = true
}

// ensureOpen starts a sub-path at the current point after a ClosePath, or at
// (x, y) when there is no current point. It reports whether a current point
// already existed.
func (s *RasterSurface) ensureOpen(x, y float64) bool {
	if s.open {
		return true
	}
	if s.moved {
		s.MoveTo(s.cur.X, s.cur.Y)
		return true
	}
	s.MoveTo(x, y)
	return false
}

func (s *RasterSurface) LineTo(x, y float64) {
	if !s.ensureOpen(x, y) {
		return
	}
	s.ops = append(s.ops, rasterOp{op: opLine, pts: [3]fixed.Point26_6{rasterx.ToFixedP(x, y)}})
	s.cur = Point{x, y}
}

func (s *RasterSurface) CubicTo(x1, y1, x2, y2, x, y float64) {
	s.ensureOpen(x1, y1)
	s.ops = append(s.ops, rasterOp{op: opCubic, pts: [3]fixed.Point26_6{
		rasterx.ToFixedP(x1, y1),
		rasterx.ToFixedP(x2, y2),
		rasterx.ToFixedP(x, y),
	}})
	s.cur = Point{x, y}
}

// ClosePath closes the current sub-path. The current point moves back to its
// first point.
func (s *RasterSurface) ClosePath() {
	if !s.open {
		return
	}
	s.ops = append(s.ops, rasterOp{op: opClose})
	s.open = false
	s.cur = s.start
}

func (s *RasterSurface) Stroke() {
	if s.lineWidth <= 0 || len(s.ops) == 0 {
		return
	}
	st := s.stroker
	st.Clear()
	st.SetColor(s.stroke.RGBA())
	st.SetStroke(fixed.Int26_6(s.lineWidth*64), 4<<6, rasterx.RoundCap, nil, rasterx.RoundGap, rasterx.Round)
	for _, o := range s.ops {
		switch o.op {
		case opStart:
			st.Stop(false)
			st.Start(o.pts[0])
		case opLine:
			st.Line(o.pts[0])
		case opCubic:
			st.CubeBezier(o.pts[0], o.pts[1], o.pts[2])
		case opClose:
			st.Stop(true)
		}
	}
	st.Stop(false)
	st.Draw()
	st.Clear()
}

func (s *RasterSurface) DrawImage(img image.Image, x, y, alpha float64) {
	if img == nil || alpha <= 0 {
		return
	}
	sb := img.Bounds()
	origin := image.Pt(int(math.Round(x)), int(math.Round(y)))
	r := sb.Sub(sb.Min).Add(origin)
	mask := image.NewUniform(color.Alpha{A: to8(alpha)})
	draw.DrawMask(s.dst, r, img, sb.Min, mask, image.Point{}, draw.Over)
}
