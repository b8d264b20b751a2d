package sparks

import (
	"encoding/json"
	"fmt"
)

// scriptStep represents a single action in a frame script.
type scriptStep struct {
	Action string  `json:"action"`
	Preset string  `json:"preset,omitempty"`
	Count  int     `json:"count,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	DT     float64 `json:"dt,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

// script is the top-level JSON structure for a frame script.
type script struct {
	Steps []scriptStep `json:"steps"`
}

// ScriptRunner replays a sequence of emit and update steps against a pool,
// one frame at a time. It is used to reproduce effects deterministically.
type ScriptRunner struct {
	steps     []scriptStep
	cursor    int
	remaining int // frames left in the current update step
	done      bool
}

// LoadScript parses a JSON frame script:
//
//	{"steps": [
//		{"action": "emit", "preset": "spark", "count": 4, "x": 10, "y": 20},
//		{"action": "update", "dt": 0.5, "frames": 2}
//	]}
func LoadScript(jsonData []byte) (*ScriptRunner, error) {
	var sc script
	if err := json.Unmarshal(jsonData, &sc); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(sc.Steps) == 0 {
		return nil, fmt.Errorf("parse script: no steps")
	}
	for i, st := range sc.Steps {
		switch st.Action {
		case "emit":
			if st.Preset == "" {
				return nil, fmt.Errorf("parse script: step %d: emit without preset", i)
			}
		case "update":
			if st.DT < 0 {
				return nil, fmt.Errorf("parse script: step %d: negative dt %v", i, st.DT)
			}
		default:
			return nil, fmt.Errorf("parse script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &ScriptRunner{steps: sc.Steps}, nil
}

// Done reports whether all steps have been executed.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// Step advances the script by one frame. Emit steps run immediately; the
// frame ends after one Update call of the current update step.
func (r *ScriptRunner) Step(s *ParticlesState, lib Library) error {
	for !r.done {
		if r.remaining > 0 {
			st := r.steps[r.cursor-1]
			s.Update(st.DT)
			r.remaining--
			r.checkDone()
			return nil
		}
		if r.cursor >= len(r.steps) {
			r.done = true
			return nil
		}

		st := r.steps[r.cursor]
		r.cursor++

		switch st.Action {
		case "emit":
			t, ok := lib[st.Preset]
			if !ok {
				return fmt.Errorf("script step %d: unknown preset %q", r.cursor-1, st.Preset)
			}
			s.Emit(st.Count, t, st.X, st.Y)
			r.checkDone()
		case "update":
			r.remaining = max(st.Frames, 1)
		}
	}
	return nil
}

// Run executes the remaining steps to completion.
func (r *ScriptRunner) Run(s *ParticlesState, lib Library) error {
	for !r.done {
		if err := r.Step(s, lib); err != nil {
			return err
		}
	}
	return nil
}

func (r *ScriptRunner) checkDone() {
	if r.cursor >= len(r.steps) && r.remaining == 0 {
		r.done = true
	}
}
