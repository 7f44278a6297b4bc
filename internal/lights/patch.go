package lights

import (
	"encoding/json"
	"fmt"
)

// Action identifies what a command should do to each selected light.
type Action int

const (
	// ActionInfo is the implicit action when no action token follows the
	// selector: fetch and print each light's current state.
	ActionInfo Action = iota
	ActionOn
	ActionOff
	ActionColorloop
	ActionAlert
	ActionClear
	ActionReset
	ActionState
	ActionBrightness
	ActionColor
)

// Patch is the tagged state change for one action. Exactly the fields for
// its Kind are meaningful: Adjust for ActionBrightness, R/G/B for
// ActionColor, Raw for ActionState.
type Patch struct {
	Kind    Action
	Adjust  Adjustment
	R, G, B uint8
	Raw     map[string]interface{}
}

// BuildPatch interprets the action token. Keyword actions map directly;
// anything else is tried as a brightness expression and then as a color.
// The raw argument carries the stdin document for the "state" action and
// is ignored otherwise.
func BuildPatch(action string, colors map[string]string, raw []byte) (Patch, error) {
	switch action {
	case "":
		return Patch{Kind: ActionInfo}, nil
	case "on":
		return Patch{Kind: ActionOn}, nil
	case "off":
		return Patch{Kind: ActionOff}, nil
	case "colorloop":
		return Patch{Kind: ActionColorloop}, nil
	case "alert":
		return Patch{Kind: ActionAlert}, nil
	case "clear":
		return Patch{Kind: ActionClear}, nil
	case "reset":
		return Patch{Kind: ActionReset}, nil
	case "state":
		var m map[string]interface{}
		if err := json.Unmarshal(raw, &m); err != nil {
			return Patch{}, fmt.Errorf("state patch must be a JSON object: %w", err)
		}
		return Patch{Kind: ActionState, Raw: m}, nil
	}
	if adj, ok := ParseAdjustment(action); ok {
		return Patch{Kind: ActionBrightness, Adjust: adj}, nil
	}
	r, g, b, err := ResolveColor(action, colors)
	if err != nil {
		return Patch{}, err
	}
	return Patch{Kind: ActionColor, R: r, G: g, B: b}, nil
}

// RawState returns the bridge state document for keyword actions that are
// plain state patches. Power, brightness, color and info actions go through
// dedicated bridge calls instead.
func (p Patch) RawState() (map[string]interface{}, bool) {
	switch p.Kind {
	case ActionColorloop:
		return map[string]interface{}{"effect": "colorloop"}, true
	case ActionAlert:
		return map[string]interface{}{"alert": "lselect"}, true
	case ActionClear:
		return map[string]interface{}{"effect": "none", "alert": "none"}, true
	case ActionReset:
		return map[string]interface{}{
			"on":     true,
			"bri":    BriMax,
			"effect": "none",
			"alert":  "none",
			"ct":     370,
		}, true
	case ActionState:
		return p.Raw, true
	}
	return nil, false
}
