package fsm

// StateID is a unique identifier for a node
type StateID int

// EventID names an external trigger
type EventID int

const (
	StateNone StateID = 0
	StateRoot StateID = 1
)

// Machine is a hierarchical finite state machine
// T is the context passed to actions and guards
type Machine[T any] struct {
	nodes map[StateID]*Node[T]

	activeID   StateID
	activePath []StateID
}

// Node is one state in the hierarchy
type Node[T any] struct {
	ID       StateID
	Name     string
	ParentID StateID

	// Path from root to this node, filled by CompilePaths
	Path []StateID

	OnEnter []ActionFunc[T]
	OnExit  []ActionFunc[T]

	Transitions []Transition[T]
}

// Transition moves to TargetID when Event fires and Guard allows it
type Transition[T any] struct {
	Event    EventID
	TargetID StateID
	Guard    GuardFunc[T] // nil is always true
}

// GuardFunc returns true if the transition should occur
type GuardFunc[T any] func(ctx T) bool

// ActionFunc executes a side effect
type ActionFunc[T any] func(ctx T)
