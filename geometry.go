package bezier

import "math"

// Lerp returns the point r of the way from p1 to p2: r*p2 + (1-r)*p1.
// r is not clamped; values outside [0, 1] extrapolate along the line.
func Lerp(p1, p2 Point, r float64) Point {
	return Point{
		X: r*p2.X + (1-r)*p1.X,
		Y: r*p2.Y + (1-r)*p1.Y,
	}
}

// Construction holds every point produced by one De Casteljau evaluation.
// A are the three first-level points (p1→c1, c1→c2, c2→p2), B the two
// second-level points, and P the point on the curve.
type Construction struct {
	A [3]Point
	B [2]Point
	P Point
}

// EvaluateCubic runs the De Casteljau construction for the cubic defined by
// p1, c1, c2, p2 at parameter t. The caller owns the range of t.
func EvaluateCubic(p1, c1, c2, p2 Point, t float64) Construction {
	var c Construction
	c.A[0] = Lerp(p1, c1, t)
	c.A[1] = Lerp(c1, c2, t)
	c.A[2] = Lerp(c2, p2, t)
	c.B[0] = Lerp(c.A[0], c.A[1], t)
	c.B[1] = Lerp(c.A[1], c.A[2], t)
	c.P = Lerp(c.B[0], c.B[1], t)
	return c
}

// Cubic is a snapshot of the four points of a cubic Bezier curve.
type Cubic struct {
	P0, C0, C1, P1 Point
}

// Eval returns the full De Casteljau construction at t.
func (c Cubic) Eval(t float64) Construction {
	return EvaluateCubic(c.P0, c.C0, c.C1, c.P1, t)
}

// Point returns the point on the curve at t.
func (c Cubic) Point(t float64) Point {
	return c.Eval(t).P
}

// TimeAt maps an animation phase to a curve parameter in [0, 1] with a
// smooth back-and-forth oscillation: 0.5 + 0.5*sin(phase).
func TimeAt(phase float64) float64 {
	return 0.5 + 0.5*math.Sin(phase)
}
