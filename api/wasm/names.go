package wasm

import "github.com/woxQAQ/wasm-bundle/internal/assets"

// Export names of the bundle module. The host resolves functions by these
// names, so they are part of the module ABI.
//
// NOTE: uint32 is used for pointers, lengths and node handles because
// WebAssembly uses a 32-bit linear memory model. Strings are returned as a
// single uint64 packing pointer and length, see PackString.
const (
	// ExportTotalEmbeddedSize returns the summed size of all assets.
	// Signature: get_total_embedded_size() -> u32
	ExportTotalEmbeddedSize = "get_total_embedded_size"

	// ExportVersion returns the bundle version string.
	// Signature: get_version() -> u64 (packed ptr, len)
	ExportVersion = "get_version"

	// ExportNodeNew creates a layout node with the default style.
	// Signature: yoga_node_new() -> u32 handle
	ExportNodeNew = "yoga_node_new"
)

// Layout node methods. Each is exported as NodeExport(method) and takes the
// node handle as its first argument. Unknown or freed handles are accepted
// and answered with neutral values.
const (
	MethodInsertChild   = "insertChild"   // (h, child, index u32)
	MethodRemoveChild   = "removeChild"   // (h, child u32)
	MethodGetChildCount = "getChildCount" // (h) -> u32
	MethodGetChild      = "getChild"      // (h, index u32) -> u32 handle, 0 if none
	MethodGetParent     = "getParent"     // (h) -> u32 handle, 0 if none

	MethodSetWidth            = "setWidth"        // (h, f32)
	MethodSetHeight           = "setHeight"       // (h, f32)
	MethodSetWidthPercent     = "setWidthPercent" // (h, f32)
	MethodSetHeightPercent    = "setHeightPercent"
	MethodSetWidthAuto        = "setWidthAuto" // (h)
	MethodSetHeightAuto       = "setHeightAuto"
	MethodSetMinWidth         = "setMinWidth"
	MethodSetMinHeight        = "setMinHeight"
	MethodSetMaxWidth         = "setMaxWidth"
	MethodSetMaxHeight        = "setMaxHeight"
	MethodSetFlexDirection    = "setFlexDirection" // (h, code u32)
	MethodSetJustifyContent   = "setJustifyContent"
	MethodSetAlignItems       = "setAlignItems"
	MethodSetAlignContent     = "setAlignContent"
	MethodSetAlignSelf        = "setAlignSelf"
	MethodSetFlexWrap         = "setFlexWrap"
	MethodSetDisplay          = "setDisplay"
	MethodSetFlex             = "setFlex" // (h, f32)
	MethodSetFlexGrow         = "setFlexGrow"
	MethodSetFlexShrink       = "setFlexShrink"
	MethodSetFlexBasis        = "setFlexBasis"
	MethodSetFlexBasisPercent = "setFlexBasisPercent"
	MethodSetFlexBasisAuto    = "setFlexBasisAuto" // (h)
	MethodSetPadding          = "setPadding"       // (h, edge u32, f32)
	MethodSetMargin           = "setMargin"        // (h, edge u32, f32)
	MethodSetMarginPercent    = "setMarginPercent" // (h, edge u32, f32)
	MethodSetMarginAuto       = "setMarginAuto"    // (h, edge u32)

	MethodCalculateLayout   = "calculateLayout"   // (h, width, height f32)
	MethodGetComputedLeft   = "getComputedLeft"   // (h) -> f32
	MethodGetComputedTop    = "getComputedTop"    // (h) -> f32
	MethodGetComputedWidth  = "getComputedWidth"  // (h) -> f32
	MethodGetComputedHeight = "getComputedHeight" // (h) -> f32
	MethodGetComputedRight  = "getComputedRight"  // (h) -> f32
	MethodGetComputedBottom = "getComputedBottom" // (h) -> f32

	MethodIsDirty      = "isDirty"      // (h) -> u32, 1 if dirty
	MethodGetLastError = "getLastError" // (h) -> u32 error code

	MethodReset         = "reset"         // (h)
	MethodFree          = "free"          // (h)
	MethodFreeRecursive = "freeRecursive" // (h)
)

// AssetPtrExport returns the export name of an asset's pointer accessor.
// Signature: get_<name>_ptr() -> u32, 0 for an empty asset
func AssetPtrExport(name assets.Name) string {
	return "get_" + string(name) + "_ptr"
}

// AssetSizeExport returns the export name of an asset's size accessor.
// Signature: get_<name>_size() -> u32
func AssetSizeExport(name assets.Name) string {
	return "get_" + string(name) + "_size"
}

// NodeExport returns the export name of a layout node method.
func NodeExport(method string) string {
	return "yoga_node_" + method
}

// PackString packs a pointer and length into one result value.
func PackString(ptr, length uint32) uint64 {
	return uint64(ptr)<<32 | uint64(length)
}

// UnpackString splits a value built by PackString.
func UnpackString(v uint64) (ptr, length uint32) {
	return uint32(v >> 32), uint32(v)
}
