package yoga

import (
	"github.com/woxQAQ/wasm-bundle/internal/flex"
	"go.uber.org/zap"
)

// Node is a flexbox node with a Yoga-compatible method set. Every method
// is total: failures leave the node unchanged, getters return zero values,
// and the outcome is recorded in the node's last-error register.
type Node struct {
	ctx     *Context
	id      flex.NodeID
	freed   bool
	lastErr ErrorCode
}

// New creates a node in the default context.
func New() *Node {
	return Default().NewNode()
}

// Handle returns the integer handle the node is exported under.
// Handles are never reused within a context.
func (n *Node) Handle() uint32 {
	return uint32(n.id)
}

// Freed reports whether Free or FreeRecursive released the node.
func (n *Node) Freed() bool {
	return n.freed
}

// GetLastError returns the outcome of the most recent operation.
func (n *Node) GetLastError() ErrorCode {
	return n.lastErr
}

// record stores the outcome of op and logs failures.
func (n *Node) record(op string, err error) {
	n.lastErr = codeOf(err)
	if err != nil {
		n.ctx.logger.Debug("node operation failed",
			zap.String("op", op),
			zap.Uint32("node", uint32(n.id)),
			zap.Error(err))
	}
}

// live reports whether n can be operated on, recording ErrNodeFreed if not.
func (n *Node) live() bool {
	if n.freed {
		n.lastErr = ErrNodeFreed
		return false
	}
	return true
}

// usable reports whether other can be passed to an operation on n.
func (n *Node) usable(other *Node) bool {
	if other == nil || other.freed || other.ctx != n.ctx {
		n.lastErr = ErrNodeFreed
		return false
	}
	return true
}

// InsertChild inserts child into n's children at index. Indices past the
// end append. A child attached elsewhere is moved.
func (n *Node) InsertChild(child *Node, index uint32) {
	if !n.live() || !n.usable(child) {
		return
	}
	tree := n.ctx.tree
	count, err := tree.ChildCount(n.id)
	if err != nil {
		n.record("insertChild", err)
		return
	}
	if parent, _ := tree.Parent(child.id); parent == n.id {
		count--
	}
	i := count
	if int64(index) < int64(count) {
		i = int(index)
	}
	n.record("insertChild", tree.InsertChildAt(n.id, child.id, i))
}

// RemoveChild detaches child from n. The child stays valid.
func (n *Node) RemoveChild(child *Node) {
	if !n.live() || !n.usable(child) {
		return
	}
	n.record("removeChild", n.ctx.tree.RemoveChild(n.id, child.id))
}

// GetChildCount returns the number of direct children.
func (n *Node) GetChildCount() uint32 {
	if !n.live() {
		return 0
	}
	count, err := n.ctx.tree.ChildCount(n.id)
	n.record("getChildCount", err)
	return uint32(count)
}

// GetChild returns the child at index, or nil.
func (n *Node) GetChild(index uint32) *Node {
	if !n.live() {
		return nil
	}
	id, err := n.ctx.tree.ChildAt(n.id, int(index))
	n.record("getChild", err)
	if err != nil {
		return nil
	}
	return n.ctx.nodes[id]
}

// GetParent returns the parent node, or nil for a root.
func (n *Node) GetParent() *Node {
	if !n.live() {
		return nil
	}
	id, err := n.ctx.tree.Parent(n.id)
	n.record("getParent", err)
	if err != nil || id == 0 {
		return nil
	}
	return n.ctx.nodes[id]
}

// CalculateLayout lays out the subtree rooted at n within width x height.
func (n *Node) CalculateLayout(width, height float32) {
	if !n.live() {
		return
	}
	n.record("calculateLayout", n.ctx.tree.ComputeLayout(n.id, flex.Size{Width: width, Height: height}))
}

// IsDirty reports whether n changed since its subtree was last laid out.
func (n *Node) IsDirty() bool {
	if !n.live() {
		return false
	}
	dirty, err := n.ctx.tree.Dirty(n.id)
	n.record("isDirty", err)
	return dirty
}

func (n *Node) layout() flex.Layout {
	if !n.live() {
		return flex.Layout{}
	}
	l, err := n.ctx.tree.Layout(n.id)
	n.record("layout", err)
	return l
}

func (n *Node) GetComputedLeft() float32 { return n.layout().Left }

func (n *Node) GetComputedTop() float32 { return n.layout().Top }

func (n *Node) GetComputedWidth() float32 { return n.layout().Width }

func (n *Node) GetComputedHeight() float32 { return n.layout().Height }

// GetComputedRight returns left + width of the last computed layout.
func (n *Node) GetComputedRight() float32 { return n.layout().Right() }

// GetComputedBottom returns top + height of the last computed layout.
func (n *Node) GetComputedBottom() float32 { return n.layout().Bottom() }

// Reset restores the default style. The node keeps its place in the tree.
func (n *Node) Reset() {
	if !n.live() {
		return
	}
	n.record("reset", n.ctx.tree.SetStyle(n.id, flex.DefaultStyle()))
}

// Free detaches n from its parent and releases it. Its children become
// roots and stay valid. Freeing twice is a no-op.
func (n *Node) Free() {
	if n.freed {
		return
	}
	n.ctx.release(n)
	n.lastErr = ErrNone
}

// FreeRecursive releases n and its whole subtree. Freeing twice is a no-op.
func (n *Node) FreeRecursive() {
	if n.freed {
		return
	}
	// Children first, so that removing a node never orphans a live one.
	children, err := n.ctx.tree.Children(n.id)
	if err != nil {
		n.ctx.logger.Debug("list children failed", zap.Uint32("node", uint32(n.id)), zap.Error(err))
	}
	for _, id := range children {
		if child, ok := n.ctx.nodes[id]; ok {
			child.FreeRecursive()
		}
	}
	n.Free()
}
