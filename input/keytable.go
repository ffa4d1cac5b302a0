package input

import (
	"maps"
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// Keymap binds special keys and runes to actions
type Keymap struct {
	Keys  map[tcell.Key]Action
	Runes map[rune]Action
}

// DefaultKeymap binds arrows, WASD and hjkl
func DefaultKeymap() *Keymap {
	return &Keymap{
		Keys: map[tcell.Key]Action{
			tcell.KeyLeft:   ActionLeft,
			tcell.KeyRight:  ActionRight,
			tcell.KeyUp:     ActionJump,
			tcell.KeyDown:   ActionInteract,
			tcell.KeyEnter:  ActionInteract,
			tcell.KeyEscape: ActionQuit,
			tcell.KeyCtrlC:  ActionQuit,
			tcell.KeyCtrlQ:  ActionQuit,
		},
		Runes: map[rune]Action{
			'a': ActionLeft,
			'h': ActionLeft,
			'd': ActionRight,
			'l': ActionRight,
			'w': ActionJump,
			'k': ActionJump,
			' ': ActionJump,
			's': ActionInteract,
			'j': ActionInteract,
			'r': ActionRestart,
			'q': ActionQuit,
		},
	}
}

// Lookup resolves a key event; runes fall back to their lowercase binding
func (k *Keymap) Lookup(ev *tcell.EventKey) Action {
	if ev.Key() != tcell.KeyRune {
		return k.Keys[ev.Key()]
	}
	r := ev.Rune()
	if a, ok := k.Runes[r]; ok {
		return a
	}
	return k.Runes[unicode.ToLower(r)]
}

func (k *Keymap) Clone() *Keymap {
	return &Keymap{
		Keys:  maps.Clone(k.Keys),
		Runes: maps.Clone(k.Runes),
	}
}

// MergeKeymap returns base overridden by override; ActionNone entries unbind
func MergeKeymap(base, override *Keymap) *Keymap {
	result := base.Clone()
	if result.Keys == nil {
		result.Keys = make(map[tcell.Key]Action)
	}
	if result.Runes == nil {
		result.Runes = make(map[rune]Action)
	}
	if override == nil {
		return result
	}
	for key, a := range override.Keys {
		if a == ActionNone {
			delete(result.Keys, key)
		} else {
			result.Keys[key] = a
		}
	}
	for r, a := range override.Runes {
		if a == ActionNone {
			delete(result.Runes, r)
		} else {
			result.Runes[r] = a
		}
	}
	return result
}
