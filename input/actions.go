package input

import (
	"sort"

	"github.com/lixenwraith/neon-snake/components"
)

// Action is what a key does in the game
type Action uint8

const (
	ActionNone Action = iota
	ActionUp
	ActionDown
	ActionLeft
	ActionRight
	ActionStart
	ActionPause
	ActionIntensityUp
	ActionIntensityDown
	ActionQuit
)

// actionRegistry maps canonical action names to actions
// Used by the keymap config loader to resolve TOML action strings
var actionRegistry = map[string]Action{
	"none":           ActionNone,
	"up":             ActionUp,
	"down":           ActionDown,
	"left":           ActionLeft,
	"right":          ActionRight,
	"start":          ActionStart,
	"pause":          ActionPause,
	"intensity_up":   ActionIntensityUp,
	"intensity_down": ActionIntensityDown,
	"quit":           ActionQuit,
}

// ParseAction resolves an action name
func ParseAction(name string) (Action, bool) {
	a, ok := actionRegistry[name]
	return a, ok
}

// ActionNames returns all bindable action names, sorted
func ActionNames() []string {
	names := make([]string, 0, len(actionRegistry))
	for name := range actionRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// String returns the canonical action name
func (a Action) String() string {
	for name, act := range actionRegistry {
		if act == a {
			return name
		}
	}
	return "unknown"
}

// Direction returns the movement direction of a directional action
func (a Action) Direction() components.Direction {
	switch a {
	case ActionUp:
		return components.DirUp
	case ActionDown:
		return components.DirDown
	case ActionLeft:
		return components.DirLeft
	case ActionRight:
		return components.DirRight
	default:
		return components.DirNone
	}
}
