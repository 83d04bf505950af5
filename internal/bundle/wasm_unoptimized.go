//go:build !nomodels && unoptimized_wasm

package bundle

import (
	_ "embed"
)

//go:embed models/ort-wasm-simd.wasm
var ortUnoptimized []byte

//go:embed models/yoga.wasm
var yogaUnoptimized []byte

func init() {
	onnxRuntime, onnxRuntimeFile = ortUnoptimized, "ort-wasm-simd.wasm"
	yogaLayout, yogaLayoutFile = yogaUnoptimized, "yoga.wasm"
}
