package panes

import (
	"encoding/json"
	"fmt"
)

// scriptStep represents a single action in a script.
type scriptStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	W      float64 `json:"w,omitempty"`
	H      float64 `json:"h,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

// script is the top-level JSON structure for a script.
type script struct {
	Steps []scriptStep `json:"steps"`
}

// ScriptRunner replays a JSON script of session operations, one step per
// frame, for demos and automated visual checks. Regions are named by the
// label given to their "create" step.
//
// Actions: create, move, resize, place, hide, show, delete (region steps,
// need a label), offset, zoom (global steps) and wait.
type ScriptRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
	labels    map[string]Handle
}

var scriptActions = map[string]bool{
	"create": true, "move": true, "resize": true, "place": true,
	"hide": true, "show": true, "delete": true,
	"offset": true, "zoom": true, "wait": true,
}

// LoadScript parses a JSON script and returns a runner ready to Step.
func LoadScript(jsonData []byte) (*ScriptRunner, error) {
	var sc script
	if err := json.Unmarshal(jsonData, &sc); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(sc.Steps) == 0 {
		return nil, fmt.Errorf("parse script: no steps")
	}
	for i, st := range sc.Steps {
		if !scriptActions[st.Action] {
			return nil, fmt.Errorf("parse script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &ScriptRunner{steps: sc.Steps, labels: make(map[string]Handle)}, nil
}

// Done reports whether all steps have been executed.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// Handle returns the region created under label.
func (r *ScriptRunner) Handle(label string) (Handle, bool) {
	h, ok := r.labels[label]
	return h, ok
}

// Step executes at most one step. Call it once per frame.
func (r *ScriptRunner) Step(s *Session) error {
	if r.done {
		return nil
	}
	if r.waitCount > 0 {
		r.waitCount--
		return nil
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return nil
	}

	st := r.steps[r.cursor]
	r.cursor++
	if err := r.run(s, st); err != nil {
		return fmt.Errorf("script step %d (%s): %w", r.cursor-1, st.Action, err)
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 {
		r.done = true
	}
	return nil
}

func (r *ScriptRunner) run(s *Session, st scriptStep) error {
	switch st.Action {
	case "create":
		h, err := s.NewRegion(Rect{X: st.X, Y: st.Y, Width: st.W, Height: st.H}, nil)
		if err != nil {
			return err
		}
		if st.Label != "" {
			r.labels[st.Label] = h
		}
		return nil
	case "offset":
		return s.GlobalReposition(st.X, st.Y)
	case "zoom":
		return s.GlobalResize(st.W, st.H)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
		return nil
	}

	h, ok := r.labels[st.Label]
	if !ok {
		return fmt.Errorf("unknown label %q", st.Label)
	}
	switch st.Action {
	case "move":
		return s.Reposition(h, st.X, st.Y)
	case "resize":
		return s.Resize(h, st.W, st.H)
	case "place":
		return s.RepositionAndResize(h, st.X, st.Y, st.W, st.H)
	case "hide":
		return s.Hide(h)
	case "show":
		return s.Show(h)
	case "delete":
		return s.Delete(h)
	}
	return nil
}
