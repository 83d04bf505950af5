package yoga

import (
	"sync"

	"github.com/woxQAQ/wasm-bundle/internal/flex"
	"go.uber.org/zap"
)

var (
	defaultCtx     *Context
	defaultCtxOnce sync.Once
)

// Default returns the module-wide context used by the exported node API.
// It logs nowhere.
func Default() *Context {
	defaultCtxOnce.Do(func() {
		defaultCtx = NewContext(zap.NewNop())
	})
	return defaultCtx
}

// Context owns the layout tree shared by a set of nodes and the registry
// mapping engine ids back to the nodes handed out for them. Nodes of one
// context can be freely attached to each other.
//
// A Context is not safe for concurrent use.
type Context struct {
	tree   *flex.Tree
	nodes  map[flex.NodeID]*Node
	logger *zap.Logger
}

// NewContext creates an empty context.
func NewContext(logger *zap.Logger) *Context {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Context{
		tree:   flex.NewTree(),
		nodes:  make(map[flex.NodeID]*Node),
		logger: logger.With(zap.String("component", "yoga")),
	}
}

// NewNode creates a detached node with the default style.
func (c *Context) NewNode() *Node {
	id := c.tree.NewLeaf(flex.DefaultStyle())
	n := &Node{ctx: c, id: id}
	c.nodes[id] = n
	return n
}

// Lookup returns the live node with the given handle.
func (c *Context) Lookup(handle uint32) (*Node, bool) {
	n, ok := c.nodes[flex.NodeID(handle)]
	return n, ok
}

// Len returns the number of live nodes.
func (c *Context) Len() int {
	return len(c.nodes)
}

// release drops a node from the tree and the registry.
func (c *Context) release(n *Node) {
	if err := c.tree.Remove(n.id); err != nil {
		c.logger.Debug("remove node failed", zap.Uint32("node", uint32(n.id)), zap.Error(err))
	}
	delete(c.nodes, n.id)
	n.freed = true
}
