package willowxr

import (
	"encoding/json"
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// testStep represents a single action in a test script.
type testStep struct {
	Action     string     `json:"action"`
	X          float64    `json:"x,omitempty"`
	Y          float64    `json:"y,omitempty"`
	FromX      float64    `json:"fromX,omitempty"`
	FromY      float64    `json:"fromY,omitempty"`
	ToX        float64    `json:"toX,omitempty"`
	ToY        float64    `json:"toY,omitempty"`
	Frames     int        `json:"frames,omitempty"`
	Dispatcher int        `json:"dispatcher,omitempty"`
	Origin     [3]float64 `json:"origin,omitempty"`
	Direction  [3]float64 `json:"direction,omitempty"`
	Name       string     `json:"name,omitempty"`
}

// testScript is the top-level JSON structure for a test script.
type testScript struct {
	Steps []testStep `json:"steps"`
}

// TestRunner sequences injected cursor events and controller actions across
// frames for automated scenario testing. Attach to a World via SetTestRunner.
//
// Supported actions:
//
//	move     cursor motion at (x, y)
//	click    cursor press + release at (x, y)
//	drag     cursor drag from (fromX, fromY) to (toX, toY) over frames
//	aim      point dispatcher N along origin / direction
//	trigger  fire button signal name (default: the primary action) on dispatcher N
//	wait     idle for frames
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	done      bool
	err       error
}

// LoadTestScript parses a JSON test script and returns a TestRunner ready
// to be attached to a World via SetTestRunner.
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script testScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: no steps")
	}
	for i, st := range script.Steps {
		switch st.Action {
		case "move", "click", "drag", "aim", "trigger", "wait":
		default:
			return nil, fmt.Errorf("parse test script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

// SetTestRunner attaches a TestRunner to the world. The runner's step method
// is called from World.Update before injected input is consumed.
func (w *World) SetTestRunner(runner *TestRunner) {
	w.testRunner = runner
}

// Done reports whether all steps in the test script have been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// Err returns the first step that could not run, such as an aim at a missing
// dispatcher. The runner skips such steps.
func (r *TestRunner) Err() error {
	return r.err
}

// step advances the test runner by one frame. Called from World.Update.
func (r *TestRunner) step(w *World) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if len(w.injectQueue) > 0 {
		return
	}
	// Count down wait frames.
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

	switch st.Action {
	case "move":
		w.InjectCursorMove(st.X, st.Y)
	case "click":
		w.InjectCursorClick(st.X, st.Y)
	case "drag":
		frames := st.Frames
		if frames < 2 {
			frames = 2
		}
		w.InjectCursorDrag(st.FromX, st.FromY, st.ToX, st.ToY, frames)
	case "aim":
		if d := r.dispatcher(w, st); d != nil {
			d.SetSource(&StaticRay{
				Origin:    mgl64.Vec3(st.Origin),
				Direction: mgl64.Vec3(st.Direction),
			})
		}
	case "trigger":
		if d := r.dispatcher(w, st); d != nil {
			name := st.Name
			if name == "" {
				name = d.cfg.PrimaryAction
			}
			d.HandleButton(name)
		}
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	// Check if we've reached the end after executing.
	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(w.injectQueue) == 0 {
		r.done = true
	}
}

func (r *TestRunner) dispatcher(w *World, st testStep) *Dispatcher {
	if st.Dispatcher < 0 || st.Dispatcher >= len(w.dispatchers) {
		if r.err == nil {
			r.err = fmt.Errorf("test script step %d: no dispatcher %d", r.cursor-1, st.Dispatcher)
		}
		return nil
	}
	return w.dispatchers[st.Dispatcher]
}
