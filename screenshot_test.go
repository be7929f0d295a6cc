package bezier

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestSanitizeLabel(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"hello", "hello"},
		{"after-drag", "after-drag"},
		{"frame.01", "frame.01"},
		{"has spaces", "has_spaces"},
		{"path/to/thing", "path_to_thing"},
		{"back\\slash", "back_slash"},
		{"special!@#$%", "special_____"},
		{"", "unlabeled"},
		{"   ", "unlabeled"},
		{"MixedCase123", "MixedCase123"},
	}
	for _, tt := range tests {
		got := sanitizeLabel(tt.in)
		if got != tt.want {
			t.Errorf("sanitizeLabel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestScreenshotQueueAppend(t *testing.T) {
	s := newTestScene(t, nil)
	s.Screenshot("a")
	s.Screenshot("b")
	if len(s.screenshotQueue) != 2 || s.screenshotQueue[0] != "a" || s.screenshotQueue[1] != "b" {
		t.Errorf("queue = %v, want [a b]", s.screenshotQueue)
	}
}

func TestUnpremultiply(t *testing.T) {
	pixels := []byte{
		128, 64, 0, 128, // half-transparent
		10, 20, 30, 255, // opaque
		0, 0, 0, 0, // transparent
	}
	img := unpremultiply(pixels, 3, 1)
	tests := []struct {
		x          int
		r, g, b, a uint8
	}{
		{0, 255, 127, 0, 128},
		{1, 10, 20, 30, 255},
		{2, 0, 0, 0, 0},
	}
	for _, tt := range tests {
		c := img.NRGBAAt(tt.x, 0)
		if c.R != tt.r || c.G != tt.g || c.B != tt.b || c.A != tt.a {
			t.Errorf("pixel %d = %v, want {%d %d %d %d}", tt.x, c, tt.r, tt.g, tt.b, tt.a)
		}
	}
}

func TestWritePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.png")
	src := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	if err := writePNG(path, src); err != nil {
		t.Fatalf("writePNG: %v", err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 3 || b.Dy() != 2 {
		t.Errorf("bounds = %v, want 3x2", b)
	}
}

func TestWritePNGBadDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "out.png")
	if err := writePNG(path, image.NewNRGBA(image.Rect(0, 0, 1, 1))); err == nil {
		t.Error("expected error writing into a missing directory")
	}
}
