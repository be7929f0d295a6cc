package bezier

import (
	"image"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Surface is the 2D drawing context the curve and decoration code render to.
// The call set mirrors a canvas context: a current path built with MoveTo,
// LineTo, CubicTo and ClosePath, stroked with the current stroke style.
type Surface interface {
	Size() (width, height int)
	ClearRect(x, y, w, h float64)
	SetFillColor(c Color)
	SetStrokeColor(c Color)
	SetLineWidth(w float64)
	FillRect(x, y, w, h float64)
	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	CubicTo(x1, y1, x2, y2, x, y float64)
	ClosePath()
	Stroke()
	// DrawImage blits img with its top-left corner at (x, y), scaled by alpha.
	DrawImage(img image.Image, x, y, alpha float64)
}

// ScreenSurface draws onto an *ebiten.Image using ebiten/vector for paths.
// Retarget it at the screen image at the start of every Draw call.
type ScreenSurface struct {
	dst       *ebiten.Image
	fill      Color
	stroke    Color
	lineWidth float64
	path      vector.Path
	textures  textureCache
}

// NewScreenSurface creates a surface with white fill and stroke and a line
// width of 1. Call Target before drawing.
func NewScreenSurface() *ScreenSurface {
	return &ScreenSurface{fill: ColorWhite, stroke: ColorWhite, lineWidth: 1}
}

// Target sets the image subsequent calls draw onto.
func (s *ScreenSurface) Target(dst *ebiten.Image) {
	s.dst = dst
}

// Size returns the target's dimensions, or zero when no target is set.
func (s *ScreenSurface) Size() (int, int) {
	if s.dst == nil {
		return 0, 0
	}
	b := s.dst.Bounds()
	return b.Dx(), b.Dy()
}

func (s *ScreenSurface) ClearRect(x, y, w, h float64) {
	r := pixelRect(x, y, w, h).Intersect(s.dst.Bounds())
	if r.Empty() {
		return
	}
	s.dst.SubImage(r).(*ebiten.Image).Clear()
}

func (s *ScreenSurface) SetFillColor(c Color)   { s.fill = c }
func (s *ScreenSurface) SetStrokeColor(c Color) { s.stroke = c }
func (s *ScreenSurface) SetLineWidth(w float64) { s.lineWidth = w }

func (s *ScreenSurface) FillRect(x, y, w, h float64) {
	vector.FillRect(s.dst, float32(x), float32(y), float32(w), float32(h), s.fill.RGBA(), false)
}

func (s *ScreenSurface) BeginPath() {
	s.path = vector.Path{}
}

func (s *ScreenSurface) MoveTo(x, y float64) {
	s.path.MoveTo(float32(x), float32(y))
}

func (s *ScreenSurface) LineTo(x, y float64) {
	s.path.LineTo(float32(x), float32(y))
}

func (s *ScreenSurface) CubicTo(x1, y1, x2, y2, x, y float64) {
	s.path.CubicTo(float32(x1), float32(y1), float32(x2), float32(y2), float32(x), float32(y))
}

func (s *ScreenSurface) ClosePath() {
	s.path.Close()
}

func (s *ScreenSurface) Stroke() {
	so := &vector.StrokeOptions{
		Width:    float32(s.lineWidth),
		LineJoin: vector.LineJoinRound,
		LineCap:  vector.LineCapRound,
	}
	do := &vector.DrawPathOptions{AntiAlias: true}
	do.ColorScale.ScaleWithColor(s.stroke.RGBA())
	vector.StrokePath(s.dst, &s.path, so, do)
}

func (s *ScreenSurface) DrawImage(img image.Image, x, y, alpha float64) {
	if img == nil || alpha <= 0 {
		return
	}
	tex, ok := img.(*ebiten.Image)
	if !ok {
		tex = s.textures.texture(img)
	}
	var op ebiten.DrawImageOptions
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleAlpha(float32(clamp01(alpha)))
	s.dst.DrawImage(tex, &op)
}

// Dispose releases the cached decoration texture.
func (s *ScreenSurface) Dispose() {
	s.textures.Dispose()
}

// pixelRect rounds a float rectangle outward to whole pixels.
func pixelRect(x, y, w, h float64) image.Rectangle {
	return image.Rect(
		int(math.Floor(x)), int(math.Floor(y)),
		int(math.Ceil(x+w)), int(math.Ceil(y+h)),
	)
}
