package bezier

import (
	"log/slog"
	"time"
)

// debugLogInterval is how many frames pass between debug stat lines.
const debugLogInterval = 60

// debugStats holds per-frame timing metrics.
// Only populated when Scene.debug is true.
type debugStats struct {
	updateTime time.Duration
	drawTime   time.Duration
}

// debugLog writes timing and curve state at debug level every
// debugLogInterval frames.
func (s *Scene) debugLog() {
	if !s.debug || s.frame%debugLogInterval != 0 {
		return
	}
	target := "none"
	if t, ok := s.curve.Dragging(); ok {
		target = t.String()
	}
	s.log.Debug("frame stats",
		slog.Uint64("frame", s.frame),
		slog.Duration("update", s.stats.updateTime),
		slog.Duration("draw", s.stats.drawTime),
		slog.Float64("t", s.curve.T()),
		slog.String("drag", target),
		slog.Bool("decorated", s.curve.Decoration() != nil),
		slog.Int("generations", s.curve.Generations()),
	)
}
