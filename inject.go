package bezier

// Scripted pointer input. Each queued sample stands in for the mouse on one
// frame. Once the queue runs dry the last injected button state sticks: a
// press with no release keeps the endpoint held at the last injected
// position, so a drag survives wait and screenshot steps in a script.

// InjectPress queues a button press at (x, y). Pressing on an endpoint picks
// it up.
func (s *Scene) InjectPress(x, y float64) {
	s.inject(x, y, true)
}

// InjectMove queues a held-button sample at (x, y), moving any endpoint
// picked up by an earlier press.
func (s *Scene) InjectMove(x, y float64) {
	s.inject(x, y, true)
}

// InjectRelease queues a button release at (x, y). Releasing a dragged
// endpoint commits the curve and hands pointer control back to the mouse.
func (s *Scene) InjectRelease(x, y float64) {
	s.inject(x, y, false)
}

// InjectClick queues a press and a release at (x, y) on consecutive frames.
func (s *Scene) InjectClick(x, y float64) {
	s.InjectPress(x, y)
	s.InjectRelease(x, y)
}

// InjectDrag queues a press at from, frames-2 evenly spaced moves toward to,
// and a release at to. frames is clamped to at least 2.
func (s *Scene) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	from, to := Point{fromX, fromY}, Point{toX, toY}
	n := max(frames, 2) - 1
	s.InjectPress(from.X, from.Y)
	for i := 1; i < n; i++ {
		p := Lerp(from, to, float64(i)/float64(n))
		s.InjectMove(p.X, p.Y)
	}
	s.InjectRelease(to.X, to.Y)
}

func (s *Scene) inject(x, y float64, pressed bool) {
	s.injectQueue = append(s.injectQueue, PointerSample{X: x, Y: y, Pressed: pressed})
}

// injectHeld reports whether scripted input still owns the pointer.
func (s *Scene) injectHeld() bool {
	return s.lastInjected.Pressed
}

// nextSample returns the pointer sample for this frame: the next queued
// sample, the held injected sample while a scripted press is unreleased, or
// the real source.
func (s *Scene) nextSample() PointerSample {
	if len(s.injectQueue) > 0 {
		s.lastInjected = s.injectQueue[0]
		s.injectQueue = s.injectQueue[1:]
		return s.lastInjected
	}
	if s.injectHeld() {
		return s.lastInjected
	}
	return s.source.Sample()
}
