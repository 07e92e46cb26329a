package vantage

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
)

// testStep represents a single action in a test script.
type testStep struct {
	Action string   `json:"action"`
	Label  string   `json:"label,omitempty"`
	X      float32  `json:"x,omitempty"`
	Y      float32  `json:"y,omitempty"`
	FromX  float32  `json:"fromX,omitempty"`
	FromY  float32  `json:"fromY,omitempty"`
	ToX    float32  `json:"toX,omitempty"`
	ToY    float32  `json:"toY,omitempty"`
	Frames int      `json:"frames,omitempty"`
	Width  uint32   `json:"width,omitempty"`
	Height uint32   `json:"height,omitempty"`
	Scale  float32  `json:"scale,omitempty"`
	Key    string   `json:"key,omitempty"`
	Mods   []string `json:"mods,omitempty"`
	Text   string   `json:"text,omitempty"`
}

// testScript is the top-level JSON structure for a test script.
type testScript struct {
	Steps []testStep `json:"steps"`
}

// Screenshotter captures the next presented frame under a label.
type Screenshotter interface {
	Screenshot(label string)
}

// TestRunner sequences injected input and screenshots across frames for
// scripted runs. Call Step once per frame before FrameCoordinator.Tick.
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	done      bool

	// Screenshots receives "screenshot" steps. Without one they are logged
	// and skipped.
	Screenshots Screenshotter
}

var stepActions = map[string]bool{
	"move": true, "press": true, "release": true, "click": true, "drag": true,
	"resize": true, "key": true, "text": true, "redraw": true, "wait": true,
	"close": true, "screenshot": true,
}

// LoadTestScript parses a JSON test script.
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script testScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: no steps")
	}
	for i, st := range script.Steps {
		if !stepActions[st.Action] {
			return nil, fmt.Errorf("parse test script: step %d: unknown action %q", i, st.Action)
		}
		if st.Action == "key" {
			if _, err := parseKey(st.Key); err != nil {
				return nil, fmt.Errorf("parse test script: step %d: %w", i, err)
			}
			if _, err := parseMods(st.Mods); err != nil {
				return nil, fmt.Errorf("parse test script: step %d: %w", i, err)
			}
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

// Done reports whether all steps in the test script have been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// Step advances the runner by one frame.
func (r *TestRunner) Step(f *FrameCoordinator) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if f.PendingInjections() > 0 {
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

	switch st.Action {
	case "screenshot":
		if r.Screenshots != nil {
			r.Screenshots.Screenshot(st.Label)
		} else {
			Logger().Info("test script: screenshot skipped", slog.String("label", st.Label))
		}
	case "move":
		f.InjectMove(st.X, st.Y)
	case "press":
		f.InjectPress(st.X, st.Y)
	case "release":
		f.InjectRelease(st.X, st.Y)
	case "click":
		f.InjectClick(st.X, st.Y)
	case "drag":
		f.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	case "resize":
		scale := st.Scale
		if scale == 0 {
			scale = 1
		}
		f.InjectResize(st.Width, st.Height, scale)
	case "key":
		key, _ := parseKey(st.Key)
		mods, _ := parseMods(st.Mods)
		f.InjectKey(mods, key)
	case "text":
		f.InjectText(st.Text)
	case "redraw":
		// Dropped by hosts that set ExternalRedraw; they render every frame.
		f.InjectRedraw()
	case "close":
		f.InjectClose()
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && f.PendingInjections() == 0 {
		r.done = true
	}
}

func parseKey(name string) (Key, error) {
	for i, n := range keyNames {
		if i != int(KeyUnknown) && strings.EqualFold(n, name) {
			return Key(i), nil
		}
	}
	return KeyUnknown, fmt.Errorf("unknown key %q", name)
}

func parseMods(names []string) (KeyModifiers, error) {
	var mods KeyModifiers
	for _, n := range names {
		switch strings.ToLower(n) {
		case "shift":
			mods |= ModShift
		case "ctrl", "control":
			mods |= ModCtrl
		case "alt", "option":
			mods |= ModAlt
		case "meta", "cmd", "super":
			mods |= ModMeta
		default:
			return 0, fmt.Errorf("unknown modifier %q", n)
		}
	}
	return mods, nil
}
