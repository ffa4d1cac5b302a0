package input

// Event is an edge-triggered game input consumed once per tick
type Event uint8

const (
	EventNone Event = iota
	MoveLeftStart
	MoveLeftStop
	MoveRightStart
	MoveRightStop
	JumpStart
	JumpStop
	Interact
	Restart
	Quit
)

var eventNames = [...]string{
	EventNone:      "none",
	MoveLeftStart:  "move-left-start",
	MoveLeftStop:   "move-left-stop",
	MoveRightStart: "move-right-start",
	MoveRightStop:  "move-right-stop",
	JumpStart:      "jump-start",
	JumpStop:       "jump-stop",
	Interact:       "interact",
	Restart:        "restart",
	Quit:           "quit",
}

func (e Event) String() string {
	if int(e) < len(eventNames) {
		return eventNames[e]
	}
	return "unknown"
}

// startEvent and stopEvent give the edges of a holdable action
func startEvent(a Action) Event {
	switch a {
	case ActionLeft:
		return MoveLeftStart
	case ActionRight:
		return MoveRightStart
	case ActionJump:
		return JumpStart
	}
	return EventNone
}

func stopEvent(a Action) Event {
	switch a {
	case ActionLeft:
		return MoveLeftStop
	case ActionRight:
		return MoveRightStop
	case ActionJump:
		return JumpStop
	}
	return EventNone
}

// instantEvent maps one-shot actions
func instantEvent(a Action) Event {
	switch a {
	case ActionInteract:
		return Interact
	case ActionRestart:
		return Restart
	case ActionQuit:
		return Quit
	}
	return EventNone
}
