package wasm

import (
	"context"

	"github.com/tetratelabs/wazero/api"
	abi "github.com/woxQAQ/wasm-bundle/api/wasm"
	"github.com/woxQAQ/wasm-bundle/internal/yoga"
)

// RemoteNode is a layout node living inside a bundle instance. Methods mirror
// yoga.Node; each is one call into the guest.
type RemoteNode struct {
	b      *Bundle
	handle uint32
}

// NewNode creates a node with the default style in the guest.
func (b *Bundle) NewNode(ctx context.Context) (*RemoteNode, error) {
	h, err := b.callU32(ctx, abi.ExportNodeNew)
	if err != nil {
		return nil, err
	}
	return &RemoteNode{b: b, handle: h}, nil
}

// Handle returns the guest side handle.
func (n *RemoteNode) Handle() uint32 { return n.handle }

func (n *RemoteNode) call(ctx context.Context, method string, params ...uint64) ([]uint64, error) {
	return n.b.inst.Call(ctx, abi.NodeExport(method), append([]uint64{api.EncodeU32(n.handle)}, params...)...)
}

func (n *RemoteNode) u32(ctx context.Context, method string, params ...uint64) (uint32, error) {
	v, err := n.b.inst.Call1(ctx, abi.NodeExport(method), append([]uint64{api.EncodeU32(n.handle)}, params...)...)
	return api.DecodeU32(v), err
}

func (n *RemoteNode) f32(ctx context.Context, method string) (float32, error) {
	v, err := n.b.inst.Call1(ctx, abi.NodeExport(method), api.EncodeU32(n.handle))
	return api.DecodeF32(v), err
}

func (n *RemoteNode) node(h uint32) *RemoteNode {
	if h == 0 {
		return nil
	}
	return &RemoteNode{b: n.b, handle: h}
}

// InsertChild inserts child at index.
func (n *RemoteNode) InsertChild(ctx context.Context, child *RemoteNode, index uint32) error {
	_, err := n.call(ctx, abi.MethodInsertChild, api.EncodeU32(child.handle), api.EncodeU32(index))
	return err
}

// RemoveChild detaches child.
func (n *RemoteNode) RemoveChild(ctx context.Context, child *RemoteNode) error {
	_, err := n.call(ctx, abi.MethodRemoveChild, api.EncodeU32(child.handle))
	return err
}

func (n *RemoteNode) GetChildCount(ctx context.Context) (uint32, error) {
	return n.u32(ctx, abi.MethodGetChildCount)
}

// GetChild returns nil when index is out of range.
func (n *RemoteNode) GetChild(ctx context.Context, index uint32) (*RemoteNode, error) {
	h, err := n.u32(ctx, abi.MethodGetChild, api.EncodeU32(index))
	if err != nil {
		return nil, err
	}
	return n.node(h), nil
}

// GetParent returns nil for a root.
func (n *RemoteNode) GetParent(ctx context.Context) (*RemoteNode, error) {
	h, err := n.u32(ctx, abi.MethodGetParent)
	if err != nil {
		return nil, err
	}
	return n.node(h), nil
}

// SetFloat calls a setter taking one float, such as abi.MethodSetWidth.
func (n *RemoteNode) SetFloat(ctx context.Context, method string, v float32) error {
	_, err := n.call(ctx, method, api.EncodeF32(v))
	return err
}

// SetCode calls an enum setter, such as abi.MethodSetFlexDirection.
func (n *RemoteNode) SetCode(ctx context.Context, method string, code uint32) error {
	_, err := n.call(ctx, method, api.EncodeU32(code))
	return err
}

// SetEdge calls a per-edge setter, such as abi.MethodSetPadding.
func (n *RemoteNode) SetEdge(ctx context.Context, method string, edge uint32, v float32) error {
	_, err := n.call(ctx, method, api.EncodeU32(edge), api.EncodeF32(v))
	return err
}

func (n *RemoteNode) SetWidth(ctx context.Context, v float32) error {
	return n.SetFloat(ctx, abi.MethodSetWidth, v)
}

func (n *RemoteNode) SetHeight(ctx context.Context, v float32) error {
	return n.SetFloat(ctx, abi.MethodSetHeight, v)
}

func (n *RemoteNode) SetFlexGrow(ctx context.Context, v float32) error {
	return n.SetFloat(ctx, abi.MethodSetFlexGrow, v)
}

func (n *RemoteNode) SetFlexDirection(ctx context.Context, code uint32) error {
	return n.SetCode(ctx, abi.MethodSetFlexDirection, code)
}

func (n *RemoteNode) SetJustifyContent(ctx context.Context, code uint32) error {
	return n.SetCode(ctx, abi.MethodSetJustifyContent, code)
}

func (n *RemoteNode) SetAlignItems(ctx context.Context, code uint32) error {
	return n.SetCode(ctx, abi.MethodSetAlignItems, code)
}

func (n *RemoteNode) SetPadding(ctx context.Context, edge uint32, v float32) error {
	return n.SetEdge(ctx, abi.MethodSetPadding, edge, v)
}

func (n *RemoteNode) SetMargin(ctx context.Context, edge uint32, v float32) error {
	return n.SetEdge(ctx, abi.MethodSetMargin, edge, v)
}

// CalculateLayout lays out the tree rooted at n within width by height.
func (n *RemoteNode) CalculateLayout(ctx context.Context, width, height float32) error {
	_, err := n.call(ctx, abi.MethodCalculateLayout, api.EncodeF32(width), api.EncodeF32(height))
	return err
}

// Layout is a node's computed box.
type Layout struct {
	Left, Top, Width, Height float32
}

// GetLayout reads the computed box.
func (n *RemoteNode) GetLayout(ctx context.Context) (Layout, error) {
	var l Layout
	for _, f := range []struct {
		method string
		dst    *float32
	}{
		{abi.MethodGetComputedLeft, &l.Left},
		{abi.MethodGetComputedTop, &l.Top},
		{abi.MethodGetComputedWidth, &l.Width},
		{abi.MethodGetComputedHeight, &l.Height},
	} {
		v, err := n.f32(ctx, f.method)
		if err != nil {
			return Layout{}, err
		}
		*f.dst = v
	}
	return l, nil
}

func (n *RemoteNode) IsDirty(ctx context.Context) (bool, error) {
	v, err := n.u32(ctx, abi.MethodIsDirty)
	return v != 0, err
}

// GetLastError returns the node's last-error register.
func (n *RemoteNode) GetLastError(ctx context.Context) (yoga.ErrorCode, error) {
	v, err := n.u32(ctx, abi.MethodGetLastError)
	return yoga.ErrorCode(v), err
}

func (n *RemoteNode) Reset(ctx context.Context) error {
	_, err := n.call(ctx, abi.MethodReset)
	return err
}

func (n *RemoteNode) Free(ctx context.Context) error {
	_, err := n.call(ctx, abi.MethodFree)
	return err
}

func (n *RemoteNode) FreeRecursive(ctx context.Context) error {
	_, err := n.call(ctx, abi.MethodFreeRecursive)
	return err
}
