package fsm

import "fmt"

// AddState adds a node under parentID
func (m *Machine[T]) AddState(id StateID, name string, parentID StateID) *Node[T] {
	node := &Node[T]{
		ID:       id,
		Name:     name,
		ParentID: parentID,
	}
	m.nodes[id] = node
	return node
}

// Enter appends an entry action
func (n *Node[T]) Enter(fn ActionFunc[T]) *Node[T] {
	n.OnEnter = append(n.OnEnter, fn)
	return n
}

// Exit appends an exit action
func (n *Node[T]) Exit(fn ActionFunc[T]) *Node[T] {
	n.OnExit = append(n.OnExit, fn)
	return n
}

// On adds a transition; transitions are evaluated in insertion order
func (n *Node[T]) On(ev EventID, target StateID, guard GuardFunc[T]) *Node[T] {
	n.Transitions = append(n.Transitions, Transition[T]{Event: ev, TargetID: target, Guard: guard})
	return n
}

// CompilePaths calculates the Path slice for every node
// Must be called after all nodes are added and before Start
func (m *Machine[T]) CompilePaths() error {
	for id, node := range m.nodes {
		path := make([]StateID, 0, 4)
		curr := node
		for {
			path = append(path, curr.ID)
			if curr.ParentID == StateNone {
				break
			}
			parent, ok := m.nodes[curr.ParentID]
			if !ok {
				return fmt.Errorf("node %d references missing parent %d", id, curr.ParentID)
			}
			if len(path) > len(m.nodes) {
				return fmt.Errorf("node %d is part of a parent cycle", id)
			}
			curr = parent
		}

		// Reverse to get [Root, ..., Leaf]
		for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
			path[i], path[j] = path[j], path[i]
		}
		node.Path = path
	}
	return nil
}
