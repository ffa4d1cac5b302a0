package input

import (
	"fmt"
	"strings"
)

// Action is what a key means to the game, before edge tracking
type Action uint8

const (
	ActionNone Action = iota
	ActionLeft
	ActionRight
	ActionJump
	ActionInteract
	ActionRestart
	ActionQuit
)

// actionRegistry maps canonical action names used in keymap files
// "none" unbinds a default key
var actionRegistry = map[string]Action{
	"none":     ActionNone,
	"left":     ActionLeft,
	"right":    ActionRight,
	"jump":     ActionJump,
	"interact": ActionInteract,
	"restart":  ActionRestart,
	"quit":     ActionQuit,
}

func (a Action) String() string {
	for name, act := range actionRegistry {
		if act == a {
			return name
		}
	}
	return fmt.Sprintf("action(%d)", a)
}

// ActionByName resolves a keymap action name
func ActionByName(name string) (Action, bool) {
	a, ok := actionRegistry[strings.ToLower(strings.TrimSpace(name))]
	return a, ok
}

// holdable actions produce start and stop edges instead of one-shot events
func (a Action) holdable() bool {
	return a == ActionLeft || a == ActionRight || a == ActionJump
}
