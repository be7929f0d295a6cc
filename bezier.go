package bezier

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs when the color is handed to a drawing backend.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the main drawing color.
var ColorWhite = Color{1, 1, 1, 1}

// Palette used by the curve renderer.
var (
	MainColor    = mustHexColor("#ffffff")
	ControlColor = mustHexColor("#2ef8a0")
	Helper2Color = mustHexColor("#c501e2")
	Helper3Color = mustHexColor("#4697ff")
)

// ParseHexColor parses "#rrggbb" or "#rrggbbaa" (the leading '#' is optional).
func ParseHexColor(s string) (Color, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) != 6 && len(h) != 8 {
		return Color{}, fmt.Errorf("parse color %q: want 6 or 8 hex digits", s)
	}
	if len(h) == 6 {
		h += "ff"
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("parse color %q: %w", s, err)
	}
	return Color{
		R: float64(v>>24&0xff) / 255,
		G: float64(v>>16&0xff) / 255,
		B: float64(v>>8&0xff) / 255,
		A: float64(v&0xff) / 255,
	}, nil
}

func mustHexColor(s string) Color {
	c, err := ParseHexColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

// RGBA converts c to a premultiplied color.RGBA.
func (c Color) RGBA() color.RGBA {
	return color.RGBA{
		R: to8(c.R * c.A),
		G: to8(c.G * c.A),
		B: to8(c.B * c.A),
		A: to8(c.A),
	}
}

func to8(v float64) uint8 {
	return uint8(math.Round(clamp01(v) * 255))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Point is a position on the render surface. The coordinate system has its
// origin at the top-left, with Y increasing downward.
type Point struct {
	X, Y float64
}

// Add returns p+q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Sub returns p-q.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Dist returns the Euclidean distance between p and q.
func (p Point) Dist(q Point) float64 { return math.Hypot(q.X-p.X, q.Y-p.Y) }

// ControlPair holds the two control points of a cubic curve in order.
type ControlPair [2]Point

// Rect is an axis-aligned rectangle.
type Rect struct {
	X, Y, Width, Height float64
}

// SquareAt returns the square of the given half-width centered on p.
func SquareAt(p Point, half float64) Rect {
	return Rect{X: p.X - half, Y: p.Y - half, Width: 2 * half, Height: 2 * half}
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}
