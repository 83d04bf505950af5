//go:build wasm

package wasm

import "github.com/woxQAQ/wasm-bundle/internal/yoga"

// This file exports the layout node API. Nodes live in the module's default
// context and are addressed by handle. A handle that names no live node
// behaves like a freed node: setters do nothing and getters return zero.

// freed stands in for nodes behind unknown handles.
var freed = func() *yoga.Node {
	n := yoga.NewContext(nil).NewNode()
	n.Free()
	return n
}()

func node(h uint32) *yoga.Node {
	if n, ok := yoga.Default().Lookup(h); ok {
		return n
	}
	return freed
}

// argNode resolves a node passed as an argument. Unknown handles map to nil,
// which the node methods reject.
func argNode(h uint32) *yoga.Node {
	n, _ := yoga.Default().Lookup(h)
	return n
}

func handle(n *yoga.Node) uint32 {
	if n == nil {
		return 0
	}
	return n.Handle()
}

//go:wasmexport yoga_node_new
func nodeNew() uint32 { return yoga.New().Handle() }

//go:wasmexport yoga_node_insertChild
func nodeInsertChild(h, child, index uint32) { node(h).InsertChild(argNode(child), index) }

//go:wasmexport yoga_node_removeChild
func nodeRemoveChild(h, child uint32) { node(h).RemoveChild(argNode(child)) }

//go:wasmexport yoga_node_getChildCount
func nodeGetChildCount(h uint32) uint32 { return node(h).GetChildCount() }

//go:wasmexport yoga_node_getChild
func nodeGetChild(h, index uint32) uint32 { return handle(node(h).GetChild(index)) }

//go:wasmexport yoga_node_getParent
func nodeGetParent(h uint32) uint32 { return handle(node(h).GetParent()) }

//go:wasmexport yoga_node_setWidth
func nodeSetWidth(h uint32, v float32) { node(h).SetWidth(v) }

//go:wasmexport yoga_node_setHeight
func nodeSetHeight(h uint32, v float32) { node(h).SetHeight(v) }

//go:wasmexport yoga_node_setWidthPercent
func nodeSetWidthPercent(h uint32, v float32) { node(h).SetWidthPercent(v) }

//go:wasmexport yoga_node_setHeightPercent
func nodeSetHeightPercent(h uint32, v float32) { node(h).SetHeightPercent(v) }

//go:wasmexport yoga_node_setWidthAuto
func nodeSetWidthAuto(h uint32) { node(h).SetWidthAuto() }

//go:wasmexport yoga_node_setHeightAuto
func nodeSetHeightAuto(h uint32) { node(h).SetHeightAuto() }

//go:wasmexport yoga_node_setMinWidth
func nodeSetMinWidth(h uint32, v float32) { node(h).SetMinWidth(v) }

//go:wasmexport yoga_node_setMinHeight
func nodeSetMinHeight(h uint32, v float32) { node(h).SetMinHeight(v) }

//go:wasmexport yoga_node_setMaxWidth
func nodeSetMaxWidth(h uint32, v float32) { node(h).SetMaxWidth(v) }

//go:wasmexport yoga_node_setMaxHeight
func nodeSetMaxHeight(h uint32, v float32) { node(h).SetMaxHeight(v) }

//go:wasmexport yoga_node_setFlexDirection
func nodeSetFlexDirection(h, code uint32) { node(h).SetFlexDirection(code) }

//go:wasmexport yoga_node_setJustifyContent
func nodeSetJustifyContent(h, code uint32) { node(h).SetJustifyContent(code) }

//go:wasmexport yoga_node_setAlignItems
func nodeSetAlignItems(h, code uint32) { node(h).SetAlignItems(code) }

//go:wasmexport yoga_node_setAlignContent
func nodeSetAlignContent(h, code uint32) { node(h).SetAlignContent(code) }

//go:wasmexport yoga_node_setAlignSelf
func nodeSetAlignSelf(h, code uint32) { node(h).SetAlignSelf(code) }

//go:wasmexport yoga_node_setFlexWrap
func nodeSetFlexWrap(h, code uint32) { node(h).SetFlexWrap(code) }

//go:wasmexport yoga_node_setDisplay
func nodeSetDisplay(h, code uint32) { node(h).SetDisplay(code) }

//go:wasmexport yoga_node_setFlex
func nodeSetFlex(h uint32, v float32) { node(h).SetFlex(v) }

//go:wasmexport yoga_node_setFlexGrow
func nodeSetFlexGrow(h uint32, v float32) { node(h).SetFlexGrow(v) }

//go:wasmexport yoga_node_setFlexShrink
func nodeSetFlexShrink(h uint32, v float32) { node(h).SetFlexShrink(v) }

//go:wasmexport yoga_node_setFlexBasis
func nodeSetFlexBasis(h uint32, v float32) { node(h).SetFlexBasis(v) }

//go:wasmexport yoga_node_setFlexBasisPercent
func nodeSetFlexBasisPercent(h uint32, v float32) { node(h).SetFlexBasisPercent(v) }

//go:wasmexport yoga_node_setFlexBasisAuto
func nodeSetFlexBasisAuto(h uint32) { node(h).SetFlexBasisAuto() }

//go:wasmexport yoga_node_setPadding
func nodeSetPadding(h, edge uint32, v float32) { node(h).SetPadding(edge, v) }

//go:wasmexport yoga_node_setMargin
func nodeSetMargin(h, edge uint32, v float32) { node(h).SetMargin(edge, v) }

//go:wasmexport yoga_node_setMarginPercent
func nodeSetMarginPercent(h, edge uint32, v float32) { node(h).SetMarginPercent(edge, v) }

//go:wasmexport yoga_node_setMarginAuto
func nodeSetMarginAuto(h, edge uint32) { node(h).SetMarginAuto(edge) }

//go:wasmexport yoga_node_calculateLayout
func nodeCalculateLayout(h uint32, width, height float32) { node(h).CalculateLayout(width, height) }

//go:wasmexport yoga_node_getComputedLeft
func nodeGetComputedLeft(h uint32) float32 { return node(h).GetComputedLeft() }

//go:wasmexport yoga_node_getComputedTop
func nodeGetComputedTop(h uint32) float32 { return node(h).GetComputedTop() }

//go:wasmexport yoga_node_getComputedWidth
func nodeGetComputedWidth(h uint32) float32 { return node(h).GetComputedWidth() }

//go:wasmexport yoga_node_getComputedHeight
func nodeGetComputedHeight(h uint32) float32 { return node(h).GetComputedHeight() }

//go:wasmexport yoga_node_getComputedRight
func nodeGetComputedRight(h uint32) float32 { return node(h).GetComputedRight() }

//go:wasmexport yoga_node_getComputedBottom
func nodeGetComputedBottom(h uint32) float32 { return node(h).GetComputedBottom() }

//go:wasmexport yoga_node_isDirty
func nodeIsDirty(h uint32) uint32 {
	if node(h).IsDirty() {
		return 1
	}
	return 0
}

//go:wasmexport yoga_node_getLastError
func nodeGetLastError(h uint32) uint32 {
	n, ok := yoga.Default().Lookup(h)
	if !ok {
		return uint32(yoga.ErrNodeFreed)
	}
	return uint32(n.GetLastError())
}

//go:wasmexport yoga_node_reset
func nodeReset(h uint32) { node(h).Reset() }

//go:wasmexport yoga_node_free
func nodeFree(h uint32) { node(h).Free() }

//go:wasmexport yoga_node_freeRecursive
func nodeFreeRecursive(h uint32) { node(h).FreeRecursive() }
