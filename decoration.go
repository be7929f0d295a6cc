package bezier

import (
	"math"
	"math/rand/v2"
)

// Default decoration parameters.
const (
	DefaultSampleStep     = 0.1
	DefaultBirdThreshold  = 0.5
	DefaultBirdScaleMin   = 0.3
	DefaultBirdScaleMax   = 0.5
	DefaultDecorationLine = 2.0
)

// Placement is one silhouette instance anchored on the curve.
type Placement struct {
	Anchor Point
	Shape  int     // index into DecorationGenerator.Shapes
	Flip   float64 // -1 mirrors horizontally, 1 keeps the template orientation
	Scale  float64
}

// DecorationGenerator scatters silhouette shapes along a curve. The zero
// value is not usable; start from NewDecorationGenerator.
type DecorationGenerator struct {
	Shapes    []SilhouetteShape
	Step      float64 // t increment between samples
	Threshold float64 // a sample gets a shape when rand > Threshold
	ScaleMin  float64
	ScaleMax  float64
	LineWidth float64
	Color     Color
}

// NewDecorationGenerator returns a generator using the Birds catalog and
// the default parameters.
func NewDecorationGenerator() *DecorationGenerator {
	return &DecorationGenerator{
		Shapes:    Birds,
		Step:      DefaultSampleStep,
		Threshold: DefaultBirdThreshold,
		ScaleMin:  DefaultBirdScaleMin,
		ScaleMax:  DefaultBirdScaleMax,
		LineWidth: DefaultDecorationLine,
		Color:     ColorWhite,
	}
}

// Samples returns the curve points at t = 0, Step, 2*Step, ... below 1.
// The count is computed up front so float accumulation never adds a
// sample at t ≈ 1.
func (g *DecorationGenerator) Samples(c Cubic) []Point {
	step := g.Step
	if step <= 0 || step > 1 {
		step = DefaultSampleStep
	}
	n := int(math.Ceil(1/step - 1e-9))
	pts := make([]Point, 0, n)
	for i := 0; i < n; i++ {
		pts = append(pts, c.Point(float64(i)*step))
	}
	return pts
}

// Scatter decides which samples receive a shape. Random numbers are drawn
// per sample in a fixed order: spawn roll, then flip, scale and shape.
func (g *DecorationGenerator) Scatter(c Cubic, rng *rand.Rand) []Placement {
	if len(g.Shapes) == 0 {
		return nil
	}
	var out []Placement
	for _, p := range g.Samples(c) {
		if rng.Float64() <= g.Threshold {
			continue
		}
		flip := 1.0
		if rng.Float64() > 0.5 {
			flip = -1
		}
		scale := rng.Float64()*(g.ScaleMax-g.ScaleMin) + g.ScaleMin
		out = append(out, Placement{
			Anchor: p,
			Shape:  rng.IntN(len(g.Shapes)),
			Flip:   flip,
			Scale:  scale,
		})
	}
	return out
}

// Draw scatters shapes along c and strokes them onto s. It returns the
// number of shape instances drawn.
func (g *DecorationGenerator) Draw(s Surface, c Cubic, rng *rand.Rand) int {
	s.SetStrokeColor(g.Color)
	s.SetLineWidth(g.LineWidth)

	placements := g.Scatter(c, rng)
	for _, pl := range placements {
		g.drawShape(s, g.Shapes[pl.Shape], pl)
	}
	return len(placements)
}

// drawShape strokes every sub-path of shape independently. Template polar
// offsets become absolute coordinates around the anchor.
func (g *DecorationGenerator) drawShape(s Surface, shape SilhouetteShape, pl Placement) {
	for _, st := range shape {
		scale := pl.Scale * st.Scale
		abs := func(angle, dist float64) (float64, float64) {
			return pl.Anchor.X + math.Cos(angle)*dist*scale*pl.Flip,
				pl.Anchor.Y + math.Sin(angle)*dist*scale
		}

		s.BeginPath()
		for i, pt := range st.Points {
			x, y := abs(pt.Angle, pt.Dist)
			if i == 0 {
				s.MoveTo(x, y)
				continue
			}
			ctl := st.Controls[i-1]
			x1, y1 := abs(ctl.Angle1, ctl.Dist1)
			x2, y2 := abs(ctl.Angle2, ctl.Dist2)
			s.CubicTo(x1, y1, x2, y2, x, y)
		}
		if st.Closed {
			s.ClosePath()
		}
		s.Stroke()
	}
}
