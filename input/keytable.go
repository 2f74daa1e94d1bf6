package input

import (
	"strings"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
)

// KeyTable maps keys to actions
type KeyTable struct {
	// Special keys (arrows, Enter, Esc, Ctrl+*)
	Keys map[tcell.Key]Action

	// Printable keys
	Runes map[rune]Action
}

// Named keys accepted in keymap config; anything else must be a single character
var keyNames = map[string]tcell.Key{
	"up":     tcell.KeyUp,
	"down":   tcell.KeyDown,
	"left":   tcell.KeyLeft,
	"right":  tcell.KeyRight,
	"enter":  tcell.KeyEnter,
	"esc":    tcell.KeyEscape,
	"escape": tcell.KeyEscape,
	"tab":    tcell.KeyTab,
	"ctrl+c": tcell.KeyCtrlC,
	"ctrl+q": tcell.KeyCtrlQ,
}

// Rune aliases for keys that are awkward as bare TOML strings
var runeAliases = map[string]rune{
	"space": ' ',
	"plus":  '+',
	"minus": '-',
}

// DefaultKeyTable returns the default key bindings: arrows, WASD and hjkl
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		Keys: map[tcell.Key]Action{
			tcell.KeyUp:     ActionUp,
			tcell.KeyDown:   ActionDown,
			tcell.KeyLeft:   ActionLeft,
			tcell.KeyRight:  ActionRight,
			tcell.KeyEnter:  ActionStart,
			tcell.KeyEscape: ActionQuit,
			tcell.KeyCtrlC:  ActionQuit,
			tcell.KeyCtrlQ:  ActionQuit,
		},
		Runes: map[rune]Action{
			'w': ActionUp,
			's': ActionDown,
			'a': ActionLeft,
			'd': ActionRight,
			'k': ActionUp,
			'j': ActionDown,
			'h': ActionLeft,
			'l': ActionRight,
			' ': ActionStart,
			'p': ActionPause,
			'+': ActionIntensityUp,
			'=': ActionIntensityUp,
			'-': ActionIntensityDown,
			'_': ActionIntensityDown,
			'q': ActionQuit,
		},
	}
}

// Lookup returns the action bound to a key event
func (kt *KeyTable) Lookup(ev *tcell.EventKey) Action {
	if ev.Key() == tcell.KeyRune {
		return kt.Runes[ev.Rune()]
	}
	return kt.Keys[ev.Key()]
}

// Bind maps a key name to an action, replacing any previous binding of that key
func (kt *KeyTable) Bind(keyName string, action Action) error {
	name := strings.ToLower(strings.TrimSpace(keyName))
	if key, ok := keyNames[name]; ok {
		kt.Keys[key] = action
		return nil
	}
	if r, ok := runeAliases[name]; ok {
		kt.Runes[r] = action
		return nil
	}
	// Single characters keep their case so W and w can differ
	raw := strings.TrimSpace(keyName)
	if utf8.RuneCountInString(raw) == 1 {
		r, _ := utf8.DecodeRuneInString(raw)
		kt.Runes[r] = action
		return nil
	}
	return errors.Errorf("unknown key %q", keyName)
}

// ApplyBindings applies action -> key-name overrides from config
// Keys listed replace their previous bindings; unlisted keys keep the defaults
func (kt *KeyTable) ApplyBindings(bindings map[string][]string) error {
	for actionName, keys := range bindings {
		action, ok := ParseAction(actionName)
		if !ok {
			return errors.Errorf("unknown action %q", actionName)
		}
		for _, k := range keys {
			if err := kt.Bind(k, action); err != nil {
				return errors.Wrapf(err, "action %q", actionName)
			}
		}
	}
	return nil
}
