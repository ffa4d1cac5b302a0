package input

import (
	"reflect"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
)

func TestDefaultKeymapLookup(t *testing.T) {
	km := DefaultKeymap()
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want Action
	}{
		{"arrow left", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), ActionLeft},
		{"arrow up", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), ActionJump},
		{"arrow down", tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), ActionInteract},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), ActionQuit},
		{"rune d", tcell.NewEventKey(tcell.KeyRune, 'd', tcell.ModNone), ActionRight},
		{"upper R", tcell.NewEventKey(tcell.KeyRune, 'R', tcell.ModNone), ActionRestart},
		{"unbound", tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone), ActionNone},
	}
	for _, tt := range tests {
		if got := km.Lookup(tt.ev); got != tt.want {
			t.Errorf("%s: Lookup = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestLoadKeyConfigMerge(t *testing.T) {
	data := []byte(`
[keys]
x = "jump"
space = "none"
Enter = "restart"
`)
	override, err := LoadKeyConfig(data)
	if err != nil {
		t.Fatal(err)
	}
	km := MergeKeymap(DefaultKeymap(), override)

	if km.Runes['x'] != ActionJump {
		t.Errorf("x = %v", km.Runes['x'])
	}
	if _, ok := km.Runes[' ']; ok {
		t.Error("space should be unbound")
	}
	if km.Keys[tcell.KeyEnter] != ActionRestart {
		t.Errorf("enter = %v", km.Keys[tcell.KeyEnter])
	}
	if km.Runes['w'] != ActionJump {
		t.Error("untouched default lost")
	}
	if DefaultKeymap().Keys[tcell.KeyEnter] != ActionInteract {
		t.Error("merge mutated defaults")
	}
}

func TestParseBindingsErrors(t *testing.T) {
	if _, err := ParseBindings(map[string]string{"x": "fly"}); err == nil {
		t.Error("expected unknown action error")
	}
	if _, err := ParseBindings(map[string]string{"hyper": "jump"}); err == nil {
		t.Error("expected unknown key error")
	}
	if _, err := LoadKeyConfig([]byte("[other]\na = 1\n")); err == nil {
		t.Error("expected unknown table error")
	}
}

func TestTrackerHoldAndRelease(t *testing.T) {
	tr := NewTracker(500*time.Millisecond, 100*time.Millisecond)
	t0 := time.Unix(0, 0)

	if got := tr.Press(ActionLeft, t0); !reflect.DeepEqual(got, []Event{MoveLeftStart}) {
		t.Fatalf("first press = %v", got)
	}
	// Auto-repeat inside the window extends the hold silently
	if got := tr.Press(ActionLeft, t0.Add(400*time.Millisecond)); got != nil {
		t.Errorf("repeat press = %v", got)
	}
	if got := tr.Expire(t0.Add(450 * time.Millisecond)); got != nil {
		t.Errorf("expired early: %v", got)
	}
	// After a repeat the shorter window applies
	if got := tr.Expire(t0.Add(520 * time.Millisecond)); !reflect.DeepEqual(got, []Event{MoveLeftStop}) {
		t.Errorf("expire = %v", got)
	}
	if tr.Held(ActionLeft) {
		t.Error("left still held")
	}
}

func TestTrackerOppositeDirection(t *testing.T) {
	tr := NewTracker(time.Second, time.Second)
	now := time.Unix(10, 0)
	tr.Press(ActionRight, now)
	got := tr.Press(ActionLeft, now)
	if !reflect.DeepEqual(got, []Event{MoveRightStop, MoveLeftStart}) {
		t.Errorf("switch direction = %v", got)
	}
}

func TestTrackerInstantActions(t *testing.T) {
	tr := NewTracker(time.Second, time.Second)
	now := time.Unix(0, 0)
	for a, want := range map[Action]Event{ActionInteract: Interact, ActionRestart: Restart, ActionQuit: Quit} {
		if got := tr.Press(a, now); !reflect.DeepEqual(got, []Event{want}) {
			t.Errorf("Press(%v) = %v", a, got)
		}
	}
	if got := tr.Press(ActionNone, now); got != nil {
		t.Errorf("ActionNone produced %v", got)
	}
}

func TestTrackerJumpAndReleaseAll(t *testing.T) {
	tr := NewTracker(time.Second, time.Second)
	now := time.Unix(0, 0)
	km := DefaultKeymap()
	if got := tr.Key(km, tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone)); !reflect.DeepEqual(got, []Event{JumpStart}) {
		t.Fatalf("up = %v", got)
	}
	tr.Press(ActionRight, now)
	got := tr.ReleaseAll()
	if !reflect.DeepEqual(got, []Event{MoveRightStop, JumpStop}) {
		t.Errorf("ReleaseAll = %v", got)
	}
}

func TestEventAndActionNames(t *testing.T) {
	if JumpStart.String() != "jump-start" || Event(200).String() != "unknown" {
		t.Error("event names")
	}
	if ActionInteract.String() != "interact" {
		t.Errorf("ActionInteract = %s", ActionInteract)
	}
	if a, ok := ActionByName(" Quit "); !ok || a != ActionQuit {
		t.Error("ActionByName should trim and fold case")
	}
}
