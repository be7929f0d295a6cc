package bezier

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title string
	// Width and Height are the window size. Zero uses the scene size.
	Width, Height int
	Resizable     bool
}

// Run opens a window and drives scene at its TPS until the window closes,
// Stop is called, or a frame faults. The scene is closed before Run returns.
// A frame fault is returned as an error wrapping ErrFrameFault.
func Run(scene *Scene, cfg RunConfig) error {
	defer scene.Close()

	w, h := cfg.Width, cfg.Height
	if w <= 0 || h <= 0 {
		w, h = scene.Layout(0, 0)
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(w, h)
	if cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	ebiten.SetTPS(scene.TPS())

	err := ebiten.RunGame(scene)
	if err == nil || errors.Is(err, ebiten.Termination) {
		return nil
	}
	return fmt.Errorf("run: %w", err)
}
