package input

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/gdamore/tcell/v2"
)

// Rune aliases for keys that can't be bare single-char TOML keys
var runeAliases = map[string]rune{
	"space":     ' ',
	"backslash": '\\',
}

// keyNames maps lowercase special key names to tcell keys
var keyNames = map[string]tcell.Key{
	"up":        tcell.KeyUp,
	"down":      tcell.KeyDown,
	"left":      tcell.KeyLeft,
	"right":     tcell.KeyRight,
	"enter":     tcell.KeyEnter,
	"tab":       tcell.KeyTab,
	"esc":       tcell.KeyEscape,
	"escape":    tcell.KeyEscape,
	"backspace": tcell.KeyBackspace2,
	"delete":    tcell.KeyDelete,
	"insert":    tcell.KeyInsert,
	"home":      tcell.KeyHome,
	"end":       tcell.KeyEnd,
	"pgup":      tcell.KeyPgUp,
	"pgdn":      tcell.KeyPgDn,
	"f1":        tcell.KeyF1,
	"f2":        tcell.KeyF2,
	"f3":        tcell.KeyF3,
	"f4":        tcell.KeyF4,
	"f5":        tcell.KeyF5,
	"ctrl-c":    tcell.KeyCtrlC,
	"ctrl-q":    tcell.KeyCtrlQ,
	"ctrl-r":    tcell.KeyCtrlR,
}

// ParseBindings builds a sparse override keymap from key name → action name pairs
// Single characters and rune aliases bind runes, other names bind special keys
func ParseBindings(bindings map[string]string) (*Keymap, error) {
	km := &Keymap{
		Keys:  make(map[tcell.Key]Action),
		Runes: make(map[rune]Action),
	}
	for keyStr, actionName := range bindings {
		a, ok := ActionByName(actionName)
		if !ok {
			return nil, fmt.Errorf("key %q: unknown action: %q", keyStr, actionName)
		}
		if r, ok := resolveRune(keyStr); ok {
			km.Runes[r] = a
			continue
		}
		k, ok := keyNames[strings.ToLower(keyStr)]
		if !ok {
			return nil, fmt.Errorf("unknown key name: %q", keyStr)
		}
		km.Keys[k] = a
	}
	return km, nil
}

// LoadKeyConfig parses a standalone TOML keymap with a [keys] table
func LoadKeyConfig(data []byte) (*Keymap, error) {
	var raw struct {
		Keys map[string]string `toml:"keys"`
	}
	md, err := toml.Decode(string(data), &raw)
	if err != nil {
		return nil, fmt.Errorf("keymap parse: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("keymap: unknown entries %v", undecoded)
	}
	return ParseBindings(raw.Keys)
}

// resolveRune accepts single characters and named aliases
func resolveRune(s string) (rune, bool) {
	if r, ok := runeAliases[strings.ToLower(s)]; ok {
		return r, true
	}
	runes := []rune(s)
	if len(runes) == 1 {
		return runes[0], true
	}
	return 0, false
}
