package bezier

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// ErrInvalidScript is returned when a script fails schema validation.
var ErrInvalidScript = errors.New("bezier: invalid script")

const scriptSchema = `{
	"type": "object",
	"required": ["steps"],
	"properties": {
		"steps": {
			"type": "array",
			"minItems": 1,
			"items": {
				"type": "object",
				"required": ["action"],
				"additionalProperties": false,
				"properties": {
					"action": {"enum": ["screenshot", "click", "press", "move", "release", "drag", "wait", "quit"]},
					"label":  {"type": "string"},
					"x":      {"type": "number"},
					"y":      {"type": "number"},
					"fromX":  {"type": "number"},
					"fromY":  {"type": "number"},
					"toX":    {"type": "number"},
					"toY":    {"type": "number"},
					"frames": {"type": "integer", "minimum": 0}
				}
			}
		}
	}
}`

var scriptSchemaLoader = gojsonschema.NewStringLoader(scriptSchema)

// scriptStep represents a single action in a script.
type scriptStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

// script is the top-level JSON structure for a script.
type script struct {
	Steps []scriptStep `json:"steps"`
}

// ScriptRunner sequences injected pointer input, waits and screenshots
// across frames, for demos and automated visual checks. Attach to a Scene
// via SetScriptRunner.
type ScriptRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScript validates a JSON script against the script schema and returns
// a runner ready to be attached to a Scene.
func LoadScript(jsonData []byte) (*ScriptRunner, error) {
	res, err := gojsonschema.Validate(scriptSchemaLoader, gojsonschema.NewBytesLoader(jsonData))
	if err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if !res.Valid() {
		msgs := make([]string, 0, len(res.Errors()))
		for _, e := range res.Errors() {
			msgs = append(msgs, e.String())
		}
		return nil, fmt.Errorf("%w: %s", ErrInvalidScript, strings.Join(msgs, "; "))
	}

	var sc script
	if err := json.Unmarshal(jsonData, &sc); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	return &ScriptRunner{steps: sc.Steps}, nil
}

// SetScriptRunner attaches a runner to the scene. The runner's step method
// is called from Scene.Update before pointer input is processed.
func (s *Scene) SetScriptRunner(runner *ScriptRunner) {
	s.runner = runner
}

// Done reports whether all steps in the script have been executed.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// step advances the runner by one frame. Called from Scene.Update.
func (r *ScriptRunner) step(s *Scene) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if len(s.injectQueue) > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++
	s.log.Debug("script step", slog.Int("index", r.cursor-1), slog.String("action", st.Action))

	switch st.Action {
	case "screenshot":
		s.Screenshot(st.Label)
	case "click":
		s.InjectClick(st.X, st.Y)
	case "press":
		s.InjectPress(st.X, st.Y)
	case "move":
		s.InjectMove(st.X, st.Y)
	case "release":
		s.InjectRelease(st.X, st.Y)
	case "drag":
		frames := st.Frames
		if frames < 2 {
			frames = 2
		}
		s.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, frames)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	case "quit":
		s.Stop()
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(s.injectQueue) == 0 {
		r.done = true
	}
}
