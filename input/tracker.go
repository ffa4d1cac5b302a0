package input

import (
	"time"

	"github.com/gdamore/tcell/v2"
)

// holdOrder fixes the order stop events are emitted in
var holdOrder = [...]Action{ActionLeft, ActionRight, ActionJump}

type hold struct {
	last     time.Time
	repeated bool
}

// Tracker turns key presses into start/stop edges
// Terminals deliver auto-repeat presses but no releases, so a held action is
// released once no press arrives within the hold window: initial before the
// first repeat, repeat afterwards
type Tracker struct {
	initial time.Duration
	repeat  time.Duration
	held    map[Action]*hold
}

func NewTracker(initial, repeat time.Duration) *Tracker {
	return &Tracker{
		initial: initial,
		repeat:  repeat,
		held:    make(map[Action]*hold),
	}
}

// Key maps ev through km and records the press
func (t *Tracker) Key(km *Keymap, ev *tcell.EventKey) []Event {
	return t.Press(km.Lookup(ev), ev.When())
}

// Press records a press of a at now and returns the resulting edges
func (t *Tracker) Press(a Action, now time.Time) []Event {
	if a == ActionNone {
		return nil
	}
	if !a.holdable() {
		return []Event{instantEvent(a)}
	}

	if h, ok := t.held[a]; ok {
		h.last = now
		h.repeated = true
		return nil
	}

	var out []Event
	if opp := opposite(a); opp != ActionNone {
		if _, ok := t.held[opp]; ok {
			delete(t.held, opp)
			out = append(out, stopEvent(opp))
		}
	}
	t.held[a] = &hold{last: now}
	return append(out, startEvent(a))
}

// Expire releases actions whose hold window has passed
func (t *Tracker) Expire(now time.Time) []Event {
	var out []Event
	for _, a := range holdOrder {
		h, ok := t.held[a]
		if !ok {
			continue
		}
		window := t.initial
		if h.repeated {
			window = t.repeat
		}
		if now.Sub(h.last) > window {
			delete(t.held, a)
			out = append(out, stopEvent(a))
		}
	}
	return out
}

// ReleaseAll stops every held action
func (t *Tracker) ReleaseAll() []Event {
	var out []Event
	for _, a := range holdOrder {
		if _, ok := t.held[a]; ok {
			delete(t.held, a)
			out = append(out, stopEvent(a))
		}
	}
	return out
}

// Held reports whether a is currently held
func (t *Tracker) Held(a Action) bool {
	_, ok := t.held[a]
	return ok
}

func opposite(a Action) Action {
	switch a {
	case ActionLeft:
		return ActionRight
	case ActionRight:
		return ActionLeft
	}
	return ActionNone
}
