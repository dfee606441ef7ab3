package input

import (
	"fmt"
	"strings"
)

// Key is a backend-independent physical key.
type Key int

const (
	KeyUnknown Key = iota

	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ

	KeySpace
	KeyEscape
	KeyEnter
	KeyTab
	KeyBackspace
	KeyLeftShift
	KeyRightShift
	KeyLeftCtrl
	KeyRightCtrl
	KeyUp
	KeyDown
	KeyLeft
	KeyRight

	keyCount
)

var keyNames = map[Key]string{
	KeySpace:      "space",
	KeyEscape:     "escape",
	KeyEnter:      "enter",
	KeyTab:        "tab",
	KeyBackspace:  "backspace",
	KeyLeftShift:  "left_shift",
	KeyRightShift: "right_shift",
	KeyLeftCtrl:   "left_ctrl",
	KeyRightCtrl:  "right_ctrl",
	KeyUp:         "up",
	KeyDown:       "down",
	KeyLeft:       "left",
	KeyRight:      "right",
}

var keyAliases = map[string]Key{
	"esc":    KeyEscape,
	"return": KeyEnter,
	"shift":  KeyLeftShift,
	"lshift": KeyLeftShift,
	"rshift": KeyRightShift,
	"ctrl":   KeyLeftCtrl,
	"lctrl":  KeyLeftCtrl,
	"rctrl":  KeyRightCtrl,
}

func (k Key) valid() bool {
	return k > KeyUnknown && k < keyCount
}

// String returns the config name of the key.
func (k Key) String() string {
	if k >= KeyA && k <= KeyZ {
		return string(rune('a' + int(k-KeyA)))
	}
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "unknown"
}

// ParseKey parses a key name as used in the config file: a single letter,
// or a name like "space", "escape", "left_shift". Case and the separator
// ("left_shift", "left-shift", "left shift") do not matter.
func ParseKey(name string) (Key, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	n = strings.NewReplacer("-", "_", " ", "_").Replace(n)

	if len(n) == 1 && n[0] >= 'a' && n[0] <= 'z' {
		return KeyA + Key(n[0]-'a'), nil
	}
	if k, ok := keyAliases[n]; ok {
		return k, nil
	}
	for k, s := range keyNames {
		if s == n {
			return k, nil
		}
	}
	return KeyUnknown, fmt.Errorf("unknown key %q", name)
}
