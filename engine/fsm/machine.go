package fsm

import "fmt"

func NewMachine[T any]() *Machine[T] {
	return &Machine[T]{
		nodes: make(map[StateID]*Node[T]),
	}
}

// Start enters initialID, running OnEnter from the root down
func (m *Machine[T]) Start(ctx T, initialID StateID) error {
	node, ok := m.nodes[initialID]
	if !ok {
		return fmt.Errorf("initial state ID %d not found", initialID)
	}
	if node.Path == nil {
		return fmt.Errorf("state %d has no path, call CompilePaths first", initialID)
	}

	m.activeID = initialID
	m.activePath = append(m.activePath[:0], node.Path...)

	for _, id := range m.activePath {
		for _, fn := range m.nodes[id].OnEnter {
			fn(ctx)
		}
	}
	return nil
}

// Fire routes an event from the active leaf up to the root
// Returns true if a transition was taken
func (m *Machine[T]) Fire(ctx T, ev EventID) bool {
	currID := m.activeID
	for currID != StateNone {
		node := m.nodes[currID]
		for _, trans := range node.Transitions {
			if trans.Event != ev {
				continue
			}
			if trans.Guard == nil || trans.Guard(ctx) {
				m.transition(ctx, trans.TargetID)
				return true
			}
		}
		currID = node.ParentID
	}
	return false
}

// transition exits up to the lowest common ancestor and enters down to target
func (m *Machine[T]) transition(ctx T, targetID StateID) {
	if m.activeID == targetID {
		return
	}

	target, ok := m.nodes[targetID]
	if !ok {
		panic(fmt.Sprintf("FSM: attempted transition to unknown state ID %d", targetID))
	}

	lca := -1
	for i := 0; i < min(len(m.activePath), len(target.Path)); i++ {
		if m.activePath[i] != target.Path[i] {
			break
		}
		lca = i
	}

	for i := len(m.activePath) - 1; i > lca; i-- {
		for _, fn := range m.nodes[m.activePath[i]].OnExit {
			fn(ctx)
		}
	}

	// Commit before entering so enter actions observe the new state
	m.activeID = targetID
	m.activePath = append(m.activePath[:0], target.Path...)

	for i := lca + 1; i < len(target.Path); i++ {
		for _, fn := range m.nodes[target.Path[i]].OnEnter {
			fn(ctx)
		}
	}
}

// Current returns the active leaf
func (m *Machine[T]) Current() StateID { return m.activeID }

// Name returns the active leaf's name
func (m *Machine[T]) Name() string {
	if n, ok := m.nodes[m.activeID]; ok {
		return n.Name
	}
	return ""
}

// StateName returns the name registered for id
func (m *Machine[T]) StateName(id StateID) string {
	if n, ok := m.nodes[id]; ok {
		return n.Name
	}
	return ""
}

// In reports whether id is the active leaf or one of its ancestors
func (m *Machine[T]) In(id StateID) bool {
	for _, p := range m.activePath {
		if p == id {
			return true
		}
	}
	return false
}
