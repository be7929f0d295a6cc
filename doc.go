// Package bezier is an interactive cubic Bézier demonstration for
// [Ebitengine].
//
// It renders a curve with two draggable endpoints and two draggable control
// points, animates the De Casteljau construction along the curve, and
// decorates the curve with randomly scattered bird silhouettes.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop for you:
//
//	scene := bezier.NewScene(bezier.SceneConfig{Width: 1024, Height: 768})
//	if err := bezier.Run(scene, bezier.RunConfig{Title: "Bezier"}); err != nil {
//		log.Fatal(err)
//	}
//
// [Scene] implements [ebiten.Game], so it can also be passed to
// ebiten.RunGame directly. Call [Scene.Close] afterwards.
//
// # Geometry
//
// [Lerp] and [EvaluateCubic] form the geometry kernel. EvaluateCubic returns
// the whole [Construction], not just the point on the curve, so callers can
// draw the intermediate helper lines:
//
//	k := bezier.EvaluateCubic(p0, c0, c1, p1, 0.25)
//	// k.A: three first-level points, k.B: two second-level points, k.P: result
//
// The animated parameter is [TimeAt] of a phase that advances by a fixed
// step every frame, so the marker oscillates back and forth along the curve.
//
// # Dragging
//
// A [Controller] reads one [PointerSample] per frame. A press over a point
// starts a drag on the [Curve] (endpoints win over control points), the
// point follows the pointer while held, and the release commits the move.
// Starting a drag discards the cached decoration; committing one requests a
// new decoration.
//
// # Decorations
//
// A [DecorationGenerator] samples the curve every 0.1 in t and places a
// random [SilhouetteShape] at roughly half of the samples. The shapes are
// baked into an image off the frame loop by a [Rasterizer] ([Offscreen]
// renders on the CPU). Only the result of the most recent request is kept;
// older results that finish late are discarded.
//
// # Scripting
//
// [LoadScript] parses a JSON script of clicks, drags, waits and screenshots
// that a [Scene] replays through injected pointer input:
//
//	{"steps": [
//		{"action": "drag", "fromX": 8, "fromY": 384, "toX": 108, "toY": 384, "frames": 10},
//		{"action": "wait", "frames": 30},
//		{"action": "screenshot", "label": "moved"},
//		{"action": "quit"}
//	]}
//
// [Ebitengine]: https://ebitengine.org
package bezier
