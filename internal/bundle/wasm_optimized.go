//go:build !nomodels && !unoptimized_wasm

package bundle

import (
	_ "embed"
)

// SIMD-only, single-threaded ONNX runtime.
//
//go:embed models/ort-wasm-simd-optimized.wasm
var ortOptimized []byte

//go:embed models/yoga-optimized.wasm
var yogaOptimized []byte

func init() {
	onnxRuntime, onnxRuntimeFile = ortOptimized, "ort-wasm-simd-optimized.wasm"
	yogaLayout, yogaLayoutFile = yogaOptimized, "yoga-optimized.wasm"
}
