package bezier

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// HitTest reports whether pointer lies inside the PointSize square centered
// on target. Points on the edge count as inside.
func HitTest(pointer, target Point) bool {
	return SquareAt(target, PointHalf).Contains(pointer.X, pointer.Y)
}

// PointerState is the last known pointer position. The Controller is its
// only writer; the curve renderer and hit-testing read it on the same frame.
type PointerState struct {
	pos Point
}

// Move records a new pointer position.
func (p *PointerState) Move(x, y float64) {
	p.pos = Point{x, y}
}

// Position returns the last recorded pointer position.
func (p *PointerState) Position() Point {
	return p.pos
}

// PointerSample is one frame's worth of pointer input in surface coordinates.
type PointerSample struct {
	X, Y    float64
	Pressed bool // primary button held
}

// PointerSource delivers the current pointer sample once per frame.
type PointerSource interface {
	Sample() PointerSample
}

// MousePointer reads the Ebitengine cursor and left mouse button.
type MousePointer struct{}

// Sample returns the current cursor position and left button state.
func (MousePointer) Sample() PointerSample {
	mx, my := ebiten.CursorPosition()
	return PointerSample{
		X:       float64(mx),
		Y:       float64(my),
		Pressed: ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
	}
}

// Controller turns pointer samples into curve drags. Press and release are
// detected as edges between consecutive samples.
type Controller struct {
	pointer *PointerState
	curve   *Curve
	down    bool
}

// NewController binds a controller to the shared pointer state and curve.
func NewController(pointer *PointerState, curve *Curve) *Controller {
	return &Controller{pointer: pointer, curve: curve}
}

// Process records the sample position, then handles a press or release edge.
func (c *Controller) Process(s PointerSample) {
	c.pointer.Move(s.X, s.Y)

	switch {
	case s.Pressed && !c.down:
		c.down = true
		c.PointerDown()
	case !s.Pressed && c.down:
		c.down = false
		c.PointerUp()
	}
}

// PointerDown starts a drag on the first point under the pointer, if any.
func (c *Controller) PointerDown() {
	pos := c.pointer.Position()
	target, ok := c.curve.Pick(pos)
	if !ok {
		return
	}
	c.curve.BeginDrag(target, pos)
}

// PointerUp commits an active drag at the pointer position.
func (c *Controller) PointerUp() {
	if _, ok := c.curve.Dragging(); !ok {
		return
	}
	c.curve.CommitDrag(c.pointer.Position())
}
