// Package input translates host input events into lightbox operations.
package input

import (
	"context"
	"strings"

	"github.com/bnema/lightbox/internal/application/usecase"
	"github.com/bnema/lightbox/internal/infrastructure/config"
	"github.com/bnema/lightbox/internal/logging"
)

// Modifier represents keyboard modifier flags.
type Modifier uint

const (
	// ModNone indicates no modifier is pressed.
	ModNone Modifier = 0
	// ModShift indicates the Shift key is pressed.
	ModShift Modifier = 1 << iota
	// ModCtrl indicates the Control key is pressed.
	ModCtrl
	// ModAlt indicates the Alt key is pressed.
	ModAlt
)

// keyNameByAlias maps accepted spellings to a canonical key name.
// Terminal names ("esc"), DOM names ("ArrowLeft") and config names ("left") all resolve.
var keyNameByAlias = map[string]string{
	"escape":     "escape",
	"esc":        "escape",
	"return":     "enter",
	"enter":      "enter",
	"tab":        "tab",
	"space":      "space",
	" ":          "space",
	"backspace":  "backspace",
	"delete":     "delete",
	"del":        "delete",
	"home":       "home",
	"end":        "end",
	"pageup":     "pageup",
	"page_up":    "pageup",
	"pgup":       "pageup",
	"pagedown":   "pagedown",
	"page_down":  "pagedown",
	"pgdown":     "pagedown",
	"left":       "left",
	"arrowleft":  "left",
	"right":      "right",
	"arrowright": "right",
	"up":         "up",
	"arrowup":    "up",
	"down":       "down",
	"arrowdown":  "down",
	"f1":         "f1",
	"f2":         "f2",
	"f3":         "f3",
	"f4":         "f4",
	"f5":         "f5",
	"f6":         "f6",
	"f7":         "f7",
	"f8":         "f8",
	"f9":         "f9",
	"f10":        "f10",
	"f11":        "f11",
	"f12":        "f12",
	"plus":       "plus",
	"+":          "plus",
	"minus":      "minus",
	"-":          "minus",
	"equal":      "equal",
	"=":          "equal",

	"bracketleft":  "bracketleft",
	"bracketright": "bracketright",
	"[":            "bracketleft",
	"]":            "bracketright",
}

// KeyBinding represents a single key combination.
type KeyBinding struct {
	Key       string   // canonical key name (e.g., "left", "q")
	Modifiers Modifier // Combined modifiers
}

// Action represents what happens when a shortcut is triggered.
type Action string

// Lightbox actions.
const (
	ActionClose    Action = "close"
	ActionPrevious Action = "previous"
	ActionNext     Action = "next"
)

// CanonicalKey returns the key name the lightbox controller understands for the action.
func (a Action) CanonicalKey() (string, bool) {
	switch a {
	case ActionClose:
		return usecase.KeyEscape, true
	case ActionPrevious:
		return usecase.KeyArrowLeft, true
	case ActionNext:
		return usecase.KeyArrowRight, true
	default:
		return "", false
	}
}

// ShortcutTable maps KeyBinding to Action.
type ShortcutTable map[KeyBinding]Action

// NewShortcutTable builds the table from the keybindings configuration.
// Keys that cannot be parsed are logged and skipped.
func NewShortcutTable(ctx context.Context, cfg *config.KeybindingsConfig) ShortcutTable {
	log := logging.FromContext(ctx)
	table := make(ShortcutTable)

	register := func(action Action, keys []string) {
		for _, key := range keys {
			binding, ok := ParseKeyString(key)
			if !ok {
				log.Warn().Str("key", key).Str("action", string(action)).Msg("failed to parse keybinding")
				continue
			}
			table[binding] = action
			log.Trace().
				Str("key", binding.Key).
				Uint("mod", uint(binding.Modifiers)).
				Str("action", string(action)).
				Msg("keybinding registered")
		}
	}

	register(ActionClose, cfg.Close)
	register(ActionPrevious, cfg.Previous)
	register(ActionNext, cfg.Next)

	log.Debug().Int("bindings", len(table)).Msg("shortcuts registered")
	return table
}

// Lookup finds the action bound to binding.
func (t ShortcutTable) Lookup(binding KeyBinding) (Action, bool) {
	action, ok := t[binding]
	return action, ok
}

// LookupKey parses key and looks up its action.
func (t ShortcutTable) LookupKey(key string) (Action, bool) {
	binding, ok := ParseKeyString(key)
	if !ok {
		return "", false
	}
	return t.Lookup(binding)
}

// ParseKeyString parses a key string like "ctrl+q", "shift+left" or "ArrowRight".
func ParseKeyString(s string) (KeyBinding, bool) {
	if s == "" {
		return KeyBinding{}, false
	}
	// A lone space is the space key, not blank input.
	if s == " " {
		return KeyBinding{Key: "space"}, true
	}

	s = strings.TrimSpace(s)
	if s == "" {
		return KeyBinding{}, false
	}
	if s == "+" {
		return KeyBinding{Key: "plus", Modifiers: ModNone}, true
	}

	parts := strings.Split(s, "+")

	var modifiers Modifier
	var keyPart string

	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		lower := strings.ToLower(part)
		switch lower {
		case "ctrl", "control":
			modifiers |= ModCtrl
		case "shift":
			modifiers |= ModShift
		case "alt", "meta":
			modifiers |= ModAlt
		default:
			if keyPart != "" {
				return KeyBinding{}, false
			}
			keyPart = part
		}
	}

	// Allow parsing "ctrl++" / "alt+shift++" where the key is "+".
	if keyPart == "" && strings.HasSuffix(s, "++") {
		keyPart = "+"
	}

	if keyPart == "" {
		return KeyBinding{}, false
	}

	// Treat uppercase single-letter keys as Shift+<letter>.
	if len(keyPart) == 1 && keyPart[0] >= 'A' && keyPart[0] <= 'Z' {
		modifiers |= ModShift
		keyPart = strings.ToLower(keyPart)
	}

	key, ok := canonicalKeyName(keyPart)
	if !ok {
		return KeyBinding{}, false
	}

	return KeyBinding{
		Key:       key,
		Modifiers: modifiers,
	}, true
}

// canonicalKeyName converts a key name to its canonical spelling.
func canonicalKeyName(s string) (string, bool) {
	if s == "" {
		return "", false
	}

	if key, ok := keyNameByAlias[strings.ToLower(s)]; ok {
		return key, true
	}

	// Single letter and digit keys
	if len(s) == 1 && ((s[0] >= 'a' && s[0] <= 'z') || (s[0] >= '0' && s[0] <= '9')) {
		return s, true
	}

	return "", false
}
