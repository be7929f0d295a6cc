package bezier

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// fpsOverlay displays the current FPS and TPS in the top-left corner.
// The text is refreshed every ~0.5 seconds.
type fpsOverlay struct {
	img        *ebiten.Image
	lastUpdate float64
}

func (f *fpsOverlay) update(dt float32) {
	f.lastUpdate += float64(dt)
	if f.img != nil && f.lastUpdate < 0.5 {
		return
	}
	f.lastUpdate = 0

	// 100x32 is enough for "FPS: 60.0\nTPS: 60.0"
	if f.img == nil {
		f.img = ebiten.NewImage(100, 32)
	}
	f.img.Clear()
	// Semi-transparent background for readability
	f.img.Fill(color.RGBA{0, 0, 0, 128})
	ebitenutil.DebugPrint(f.img, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
}

func (f *fpsOverlay) draw(screen *ebiten.Image) {
	if f.img == nil {
		return
	}
	screen.DrawImage(f.img, nil)
}

func (f *fpsOverlay) dispose() {
	if f.img != nil {
		f.img.Deallocate()
		f.img = nil
	}
}
