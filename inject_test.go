package bezier

import "testing"

func TestInjectClick(t *testing.T) {
	s := newTestScene(t, nil)
	s.InjectClick(50, 60)
	if len(s.injectQueue) != 2 {
		t.Fatalf("expected 2 queued events, got %d", len(s.injectQueue))
	}
	if !s.injectQueue[0].Pressed || s.injectQueue[1].Pressed {
		t.Errorf("queue = %+v, want press then release", s.injectQueue)
	}
}

func TestInjectDragQueue(t *testing.T) {
	s := newTestScene(t, nil)

	// frame 0: press at (10,10)
	// frames 1-3: moves at 57.5, 105, 152.5
	// frame 4: release at (200,200)
	s.InjectDrag(10, 10, 200, 200, 5)
	if len(s.injectQueue) != 5 {
		t.Fatalf("expected 5 queued events, got %d", len(s.injectQueue))
	}
	q := s.injectQueue
	if q[0] != (PointerSample{X: 10, Y: 10, Pressed: true}) {
		t.Errorf("first = %+v", q[0])
	}
	if q[2] != (PointerSample{X: 105, Y: 105, Pressed: true}) {
		t.Errorf("middle = %+v, want (105, 105) pressed", q[2])
	}
	if q[4] != (PointerSample{X: 200, Y: 200}) {
		t.Errorf("last = %+v", q[4])
	}
}

func TestInjectDragMinFrames(t *testing.T) {
	s := newTestScene(t, nil)
	s.InjectDrag(0, 0, 100, 100, 1)
	if len(s.injectQueue) != 2 {
		t.Fatalf("expected 2 queued events (minimum), got %d", len(s.injectQueue))
	}
}

func TestInjectDrainsOnePerFrame(t *testing.T) {
	s := newTestScene(t, nil)
	s.InjectPress(300, 300)
	s.InjectMove(310, 310)
	s.InjectRelease(320, 320)

	for want := 2; want >= 0; want-- {
		if err := s.Update(); err != nil {
			t.Fatal(err)
		}
		if len(s.injectQueue) != want {
			t.Fatalf("queue len = %d, want %d", len(s.injectQueue), want)
		}
	}
	if s.Pointer() != (Point{320, 320}) {
		t.Errorf("Pointer() = %v, want (320, 320)", s.Pointer())
	}
}

func TestInjectHeldPressOutlivesQueue(t *testing.T) {
	src := &fixedSource{s: PointerSample{X: 900, Y: 50}}
	s := NewScene(SceneConfig{Source: src, Rasterizer: &fakeRasterizer{}})
	defer s.Close()

	s.InjectPress(8, 384)
	s.InjectMove(20, 384)
	s.nextSample()
	s.nextSample()

	held := PointerSample{X: 20, Y: 384, Pressed: true}
	for i := 0; i < 3; i++ {
		if got := s.nextSample(); got != held {
			t.Fatalf("idle frame %d: sample = %+v, want %+v", i, got, held)
		}
	}

	s.InjectRelease(30, 384)
	if got := s.nextSample(); got != (PointerSample{X: 30, Y: 384}) {
		t.Errorf("release sample = %+v", got)
	}
	if got := s.nextSample(); got != src.s {
		t.Errorf("after release sample = %+v, want source %+v", got, src.s)
	}
}

func TestInjectHeldKeepsEndpointAtInjectedPosition(t *testing.T) {
	s := NewScene(SceneConfig{
		Source:     &fixedSource{s: PointerSample{X: 900, Y: 50}},
		Rasterizer: &fakeRasterizer{},
	})
	defer s.Close()

	s.InjectPress(8, 384)
	s.InjectMove(58, 384)
	for i := 0; i < 6; i++ {
		if err := s.Update(); err != nil {
			t.Fatal(err)
		}
	}
	if got := s.Curve().LiveCubic(s.Pointer()).P0; got != (Point{58, 384}) {
		t.Errorf("held endpoint = %v, want (58, 384)", got)
	}
	if got := s.Curve().Points()[0]; got != (Point{8, 384}) {
		t.Errorf("committed endpoint = %v, want (8, 384) until release", got)
	}
	if s.Pointer() != (Point{58, 384}) {
		t.Errorf("Pointer() = %v, want (58, 384)", s.Pointer())
	}
}
