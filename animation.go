package bezier

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// DefaultFadeDuration is how long, in seconds, a freshly generated
// decoration takes to fade in.
const DefaultFadeDuration float32 = 0.25

// Fade animates an opacity value from 0 to 1. Create one with NewFade and
// call Update(dt) each frame; a nil *Fade reports full opacity.
type Fade struct {
	tween *gween.Tween
	alpha float64
	Done  bool
}

// NewFade creates a fade lasting duration seconds using the easing function.
// A non-positive duration yields a fade that is already complete.
func NewFade(duration float32, fn ease.TweenFunc) *Fade {
	if duration <= 0 {
		return &Fade{alpha: 1, Done: true}
	}
	return &Fade{tween: gween.New(0, 1, duration, fn)}
}

// Update advances the fade by dt seconds.
func (f *Fade) Update(dt float32) {
	if f == nil || f.Done {
		return
	}
	val, finished := f.tween.Update(dt)
	f.alpha = clamp01(float64(val))
	if finished {
		f.alpha = 1
		f.Done = true
	}
}

// Alpha returns the current opacity in [0, 1].
func (f *Fade) Alpha() float64 {
	if f == nil {
		return 1
	}
	return f.alpha
}
