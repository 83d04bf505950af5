package flex

import "fmt"

// NodeNotFoundError occurs when an id does not name a live node.
type NodeNotFoundError struct {
	ID NodeID
}

func (e *NodeNotFoundError) Error() string {
	return fmt.Sprintf("flex: node %d not found", e.ID)
}

// ChildIndexError occurs when a child index is outside the parent's children.
type ChildIndexError struct {
	Parent NodeID
	Index  int
	Count  int
}

func (e *ChildIndexError) Error() string {
	return fmt.Sprintf("flex: child index %d out of range for node %d with %d children",
		e.Index, e.Parent, e.Count)
}

// CycleError occurs when attaching a child would make a node its own ancestor.
type CycleError struct {
	Parent NodeID
	Child  NodeID
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("flex: adding node %d under node %d would create a cycle", e.Child, e.Parent)
}

// NotChildError occurs when removing a node that is not a child of the parent.
type NotChildError struct {
	Parent NodeID
	Child  NodeID
}

func (e *NotChildError) Error() string {
	return fmt.Sprintf("flex: node %d is not a child of node %d", e.Child, e.Parent)
}
