package bezier

import (
	"context"
	"fmt"
	"image"
	"sync"
	"testing"
)

// recordingSurface logs every call as a short string.
type recordingSurface struct {
	w, h  int
	calls []string
}

func (r *recordingSurface) add(format string, args ...any) {
	r.calls = append(r.calls, fmt.Sprintf(format, args...))
}

func (r *recordingSurface) Size() (int, int) { return r.w, r.h }
func (r *recordingSurface) ClearRect(x, y, w, h float64) {
	r.add("clear %g %g %g %g", x, y, w, h)
}
func (r *recordingSurface) SetFillColor(c Color)   { r.add("fill %s", colorName(c)) }
func (r *recordingSurface) SetStrokeColor(c Color) { r.add("stroke %s", colorName(c)) }
func (r *recordingSurface) SetLineWidth(w float64) { r.add("width %g", w) }
func (r *recordingSurface) FillRect(x, y, w, h float64) {
	r.add("rect %g %g %g %g", x, y, w, h)
}
func (r *recordingSurface) BeginPath()          { r.add("begin") }
func (r *recordingSurface) MoveTo(x, y float64) { r.add("move %g %g", x, y) }
func (r *recordingSurface) LineTo(x, y float64) { r.add("line %g %g", x, y) }
func (r *recordingSurface) CubicTo(x1, y1, x2, y2, x, y float64) {
	r.add("cubic %g %g %g %g %g %g", x1, y1, x2, y2, x, y)
}
func (r *recordingSurface) ClosePath() { r.add("close") }
func (r *recordingSurface) Stroke()    { r.add("strokepath") }
func (r *recordingSurface) DrawImage(img image.Image, x, y, alpha float64) {
	r.add("image %g %g %g", x, y, alpha)
}

// count returns how many calls start with prefix.
func (r *recordingSurface) count(prefix string) int {
	n := 0
	for _, c := range r.calls {
		if len(c) >= len(prefix) && c[:len(prefix)] == prefix {
			n++
		}
	}
	return n
}

func colorName(c Color) string {
	switch c {
	case MainColor:
		return "main"
	case ControlColor:
		return "control"
	case Helper2Color:
		return "helper2"
	case Helper3Color:
		return "helper3"
	}
	return fmt.Sprintf("%v", c)
}

// fakeRasterizer runs the draw callback on a recording surface and returns
// a fixed image. It can be told to fail or to block until released.
type fakeRasterizer struct {
	mu    sync.Mutex
	calls int
	err   error
	gate  chan struct{}
}

func (f *fakeRasterizer) Rasterize(ctx context.Context, draw func(Surface)) (image.Image, error) {
	f.mu.Lock()
	f.calls++
	gate, err := f.gate, f.err
	f.mu.Unlock()
	if gate != nil {
		select {
		case <-gate:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if err != nil {
		return nil, err
	}
	draw(&recordingSurface{w: 4, h: 4})
	return image.NewRGBA(image.Rect(0, 0, 4, 4)), nil
}

func (f *fakeRasterizer) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func TestPixelRect(t *testing.T) {
	tests := []struct {
		x, y, w, h float64
		want       image.Rectangle
	}{
		{0, 0, 10, 10, image.Rect(0, 0, 10, 10)},
		{0.5, 0.5, 1, 1, image.Rect(0, 0, 2, 2)},
		{-1.2, 3.7, 2, 0.3, image.Rect(-2, 3, 1, 4)},
	}
	for _, tt := range tests {
		if got := pixelRect(tt.x, tt.y, tt.w, tt.h); got != tt.want {
			t.Errorf("pixelRect(%g, %g, %g, %g) = %v, want %v", tt.x, tt.y, tt.w, tt.h, got, tt.want)
		}
	}
}

func TestScreenSurfaceSizeWithoutTarget(t *testing.T) {
	s := NewScreenSurface()
	if w, h := s.Size(); w != 0 || h != 0 {
		t.Errorf("Size() = %d, %d, want 0, 0", w, h)
	}
	s.Dispose()
}
