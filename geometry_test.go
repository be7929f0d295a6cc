package bezier

import (
	"math"
	"testing"
)

const eps = 1e-9

func near(a, b float64) bool { return math.Abs(a-b) < eps }

func nearPoint(a, b Point) bool { return near(a.X, b.X) && near(a.Y, b.Y) }

func TestLerp(t *testing.T) {
	a, b := Point{10, 20}, Point{30, -40}
	tests := []struct {
		r    float64
		want Point
	}{
		{0, a},
		{1, b},
		{0.5, Point{20, -10}},
		{0.25, Point{15, 5}},
		{2, Point{50, -100}},
	}
	for _, tt := range tests {
		if got := Lerp(a, b, tt.r); !nearPoint(got, tt.want) {
			t.Errorf("Lerp(%v, %v, %g) = %v, want %v", a, b, tt.r, got, tt.want)
		}
	}
}

func TestLerpSamePoint(t *testing.T) {
	p := Point{7, -3}
	for _, r := range []float64{0, 0.3, 1, -5} {
		if got := Lerp(p, p, r); !nearPoint(got, p) {
			t.Errorf("Lerp(p, p, %g) = %v, want %v", r, got, p)
		}
	}
}

func TestEvaluateCubicEndpoints(t *testing.T) {
	p1, c1, c2, p2 := Point{0, 0}, Point{10, 50}, Point{90, 50}, Point{100, 0}
	if got := EvaluateCubic(p1, c1, c2, p2, 0).P; !nearPoint(got, p1) {
		t.Errorf("t=0: P = %v, want %v", got, p1)
	}
	if got := EvaluateCubic(p1, c1, c2, p2, 1).P; !nearPoint(got, p2) {
		t.Errorf("t=1: P = %v, want %v", got, p2)
	}
}

func TestEvaluateCubicConstruction(t *testing.T) {
	p1, c1, c2, p2 := Point{0, 0}, Point{0, 100}, Point{100, 100}, Point{100, 0}
	k := EvaluateCubic(p1, c1, c2, p2, 0.5)

	wantA := [3]Point{{0, 50}, {50, 100}, {100, 50}}
	wantB := [2]Point{{25, 75}, {75, 75}}
	for i := range wantA {
		if !nearPoint(k.A[i], wantA[i]) {
			t.Errorf("A[%d] = %v, want %v", i, k.A[i], wantA[i])
		}
	}
	for i := range wantB {
		if !nearPoint(k.B[i], wantB[i]) {
			t.Errorf("B[%d] = %v, want %v", i, k.B[i], wantB[i])
		}
	}
	if want := (Point{50, 75}); !nearPoint(k.P, want) {
		t.Errorf("P = %v, want %v", k.P, want)
	}
}

func TestEvaluateCubicMatchesBernstein(t *testing.T) {
	c := Cubic{P0: Point{8, 384}, C0: Point{256, 128}, C1: Point{768, 640}, P1: Point{1016, 384}}
	for _, tt := range []float64{0, 0.1, 0.33, 0.5, 0.8, 1} {
		u := 1 - tt
		want := Point{
			X: u*u*u*c.P0.X + 3*u*u*tt*c.C0.X + 3*u*tt*tt*c.C1.X + tt*tt*tt*c.P1.X,
			Y: u*u*u*c.P0.Y + 3*u*u*tt*c.C0.Y + 3*u*tt*tt*c.C1.Y + tt*tt*tt*c.P1.Y,
		}
		if got := c.Point(tt); math.Abs(got.X-want.X) > 1e-6 || math.Abs(got.Y-want.Y) > 1e-6 {
			t.Errorf("Point(%g) = %v, want %v", tt, got, want)
		}
	}
}

func TestEvaluateCubicDegenerate(t *testing.T) {
	p := Point{42, 42}
	k := EvaluateCubic(p, p, p, p, 0.37)
	for i, a := range k.A {
		if !nearPoint(a, p) {
			t.Errorf("A[%d] = %v, want %v", i, a, p)
		}
	}
	if !nearPoint(k.P, p) {
		t.Errorf("P = %v, want %v", k.P, p)
	}
}

func TestTimeAt(t *testing.T) {
	if got := TimeAt(-math.Pi / 2); !near(got, 0) {
		t.Errorf("TimeAt(-pi/2) = %g, want 0", got)
	}
	if got := TimeAt(math.Pi / 2); !near(got, 1) {
		t.Errorf("TimeAt(pi/2) = %g, want 1", got)
	}
	if got := TimeAt(0); !near(got, 0.5) {
		t.Errorf("TimeAt(0) = %g, want 0.5", got)
	}
	for phase := -10.0; phase < 10; phase += 0.37 {
		v := TimeAt(phase)
		if v < 0 || v > 1 {
			t.Fatalf("TimeAt(%g) = %g, outside [0, 1]", phase, v)
		}
		if !near(v, TimeAt(phase+2*math.Pi)) {
			t.Fatalf("TimeAt not 2pi periodic at %g", phase)
		}
	}
}
