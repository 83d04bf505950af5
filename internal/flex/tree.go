package flex

// NodeID identifies a node within a Tree. The zero value is never a valid id.
type NodeID uint32

// node is an element in the layout tree.
type node struct {
	// Configuration (user-set)
	style    Style
	children []NodeID

	// Computed (set by layout engine)
	unrounded Layout
	layout    Layout

	// Internal state
	parent   NodeID
	dirty    bool // Needs recalculation
	computed bool // Layout has been stored at least once
	laidOut  Size // Border box size of the last layout pass
}

// Tree owns a forest of layout nodes. Each node has at most one parent and
// the parent links never form a cycle.
//
// A Tree is not safe for concurrent use.
type Tree struct {
	nodes    map[NodeID]*node
	next     NodeID
	rounding bool
}

// NewTree creates an empty tree with pixel rounding enabled.
func NewTree() *Tree {
	return &Tree{
		nodes:    make(map[NodeID]*node),
		rounding: true,
	}
}

// SetRounding toggles rounding of computed layouts to whole points.
func (t *Tree) SetRounding(enabled bool) {
	t.rounding = enabled
}

// Len returns the number of live nodes.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// Contains reports whether id names a live node.
func (t *Tree) Contains(id NodeID) bool {
	_, ok := t.nodes[id]
	return ok
}

// NewLeaf creates a detached node with the given style.
func (t *Tree) NewLeaf(style Style) NodeID {
	t.next++
	t.nodes[t.next] = &node{
		style: style,
		dirty: true, // New nodes need layout
	}
	return t.next
}

// NewWithChildren creates a node and appends the given children to it.
func (t *Tree) NewWithChildren(style Style, children ...NodeID) (NodeID, error) {
	for _, c := range children {
		if _, err := t.get(c); err != nil {
			return 0, err
		}
	}
	id := t.NewLeaf(style)
	for _, c := range children {
		if err := t.AddChild(id, c); err != nil {
			return 0, err
		}
	}
	return id, nil
}

// AddChild appends child to parent's children. A child that already has a
// parent is detached from it first.
func (t *Tree) AddChild(parent, child NodeID) error {
	p, err := t.get(parent)
	if err != nil {
		return err
	}
	return t.InsertChildAt(parent, child, len(p.children))
}

// InsertChildAt inserts child at index within parent's children.
// Index may equal the child count, which appends.
func (t *Tree) InsertChildAt(parent, child NodeID, index int) error {
	p, err := t.get(parent)
	if err != nil {
		return err
	}
	c, err := t.get(child)
	if err != nil {
		return err
	}
	if err := t.checkCycle(parent, child); err != nil {
		return err
	}

	count := len(p.children)
	if c.parent == parent {
		count--
	}
	if index < 0 || index > count {
		return &ChildIndexError{Parent: parent, Index: index, Count: count}
	}

	// Re-inserting under the same parent moves the child.
	if c.parent == parent {
		p.children = removeID(p.children, child)
	} else if c.parent != 0 {
		if old, ok := t.nodes[c.parent]; ok {
			old.children = removeID(old.children, child)
			t.markDirty(c.parent)
		}
	}

	p.children = append(p.children, 0)
	copy(p.children[index+1:], p.children[index:])
	p.children[index] = child
	c.parent = parent
	t.markDirty(parent)
	return nil
}

// RemoveChild detaches child from parent, keeping the order of the
// remaining children. The child stays alive.
func (t *Tree) RemoveChild(parent, child NodeID) error {
	p, err := t.get(parent)
	if err != nil {
		return err
	}
	c, err := t.get(child)
	if err != nil {
		return err
	}
	if c.parent != parent {
		return &NotChildError{Parent: parent, Child: child}
	}
	p.children = removeID(p.children, child)
	c.parent = 0
	t.markDirty(parent)
	return nil
}

// RemoveChildAt detaches the child at index and returns it.
func (t *Tree) RemoveChildAt(parent NodeID, index int) (NodeID, error) {
	child, err := t.ChildAt(parent, index)
	if err != nil {
		return 0, err
	}
	return child, t.RemoveChild(parent, child)
}

// SetChildren replaces parent's children.
func (t *Tree) SetChildren(parent NodeID, children []NodeID) error {
	p, err := t.get(parent)
	if err != nil {
		return err
	}
	for _, c := range children {
		if _, err := t.get(c); err != nil {
			return err
		}
		if err := t.checkCycle(parent, c); err != nil {
			return err
		}
	}
	for _, old := range p.children {
		t.nodes[old].parent = 0
	}
	p.children = p.children[:0]
	t.markDirty(parent)
	for _, c := range children {
		if err := t.AddChild(parent, c); err != nil {
			return err
		}
	}
	return nil
}

// Children returns a copy of parent's children in order.
func (t *Tree) Children(parent NodeID) ([]NodeID, error) {
	p, err := t.get(parent)
	if err != nil {
		return nil, err
	}
	out := make([]NodeID, len(p.children))
	copy(out, p.children)
	return out, nil
}

// ChildAt returns the child at index.
func (t *Tree) ChildAt(parent NodeID, index int) (NodeID, error) {
	p, err := t.get(parent)
	if err != nil {
		return 0, err
	}
	if index < 0 || index >= len(p.children) {
		return 0, &ChildIndexError{Parent: parent, Index: index, Count: len(p.children)}
	}
	return p.children[index], nil
}

// ChildCount returns the number of direct children.
func (t *Tree) ChildCount(parent NodeID) (int, error) {
	p, err := t.get(parent)
	if err != nil {
		return 0, err
	}
	return len(p.children), nil
}

// Parent returns the parent of id, or 0 for a root.
func (t *Tree) Parent(id NodeID) (NodeID, error) {
	n, err := t.get(id)
	if err != nil {
		return 0, err
	}
	return n.parent, nil
}

// Style returns a copy of the node's style.
func (t *Tree) Style(id NodeID) (Style, error) {
	n, err := t.get(id)
	if err != nil {
		return Style{}, err
	}
	return n.style, nil
}

// SetStyle replaces the node's style and marks it dirty.
func (t *Tree) SetStyle(id NodeID, style Style) error {
	n, err := t.get(id)
	if err != nil {
		return err
	}
	n.style = style
	t.markDirty(id)
	return nil
}

// MarkDirty marks the node and all ancestors as needing recalculation.
func (t *Tree) MarkDirty(id NodeID) error {
	if _, err := t.get(id); err != nil {
		return err
	}
	t.markDirty(id)
	return nil
}

// Dirty reports whether the node needs recalculation.
func (t *Tree) Dirty(id NodeID) (bool, error) {
	n, err := t.get(id)
	if err != nil {
		return false, err
	}
	return n.dirty, nil
}

// Remove deletes the node. It is detached from its parent and its children
// become roots.
func (t *Tree) Remove(id NodeID) error {
	n, err := t.get(id)
	if err != nil {
		return err
	}
	if n.parent != 0 {
		if p, ok := t.nodes[n.parent]; ok {
			p.children = removeID(p.children, id)
			t.markDirty(n.parent)
		}
	}
	for _, c := range n.children {
		child := t.nodes[c]
		child.parent = 0
		child.dirty = true
	}
	delete(t.nodes, id)
	return nil
}

// Layout returns the last computed layout of the node. A node that has never
// been laid out has a zero layout.
func (t *Tree) Layout(id NodeID) (Layout, error) {
	n, err := t.get(id)
	if err != nil {
		return Layout{}, err
	}
	return n.layout, nil
}

func (t *Tree) get(id NodeID) (*node, error) {
	n, ok := t.nodes[id]
	if !ok {
		return nil, &NodeNotFoundError{ID: id}
	}
	return n, nil
}

// markDirty walks up until it meets a node that is already dirty; dirtiness
// always propagates to the root, so everything above it is dirty too.
func (t *Tree) markDirty(id NodeID) {
	for cur := id; cur != 0; {
		n, ok := t.nodes[cur]
		if !ok || n.dirty {
			return
		}
		n.dirty = true
		cur = n.parent
	}
}

// checkCycle fails if child is parent or one of parent's ancestors.
func (t *Tree) checkCycle(parent, child NodeID) error {
	for cur := parent; cur != 0; cur = t.nodes[cur].parent {
		if cur == child {
			return &CycleError{Parent: parent, Child: child}
		}
	}
	return nil
}

func removeID(ids []NodeID, id NodeID) []NodeID {
	for i, c := range ids {
		if c == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}
