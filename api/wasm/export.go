//go:build wasm

package wasm

import (
	"unsafe"

	"github.com/woxQAQ/wasm-bundle/internal/assets"
	"github.com/woxQAQ/wasm-bundle/internal/bundle"
)

// This file defines the asset accessors of the bundle module.
// Returned regions live in the module's static data for the lifetime of the
// instance and must be treated as read-only by the host.

// addr returns the linear memory address of b, or 0 if b is empty.
func addr(b []byte) uint32 {
	if len(b) == 0 {
		return 0
	}
	return uint32(uintptr(unsafe.Pointer(unsafe.SliceData(b))))
}

func assetPtr(name assets.Name) uint32 {
	return addr(bundle.Registry().Asset(name).Data)
}

func assetSize(name assets.Name) uint32 {
	return uint32(bundle.Registry().Asset(name).Size())
}

//go:wasmexport get_minilm_model_ptr
func getMiniLMModelPtr() uint32 { return assetPtr(assets.MiniLMModel) }

//go:wasmexport get_minilm_model_size
func getMiniLMModelSize() uint32 { return assetSize(assets.MiniLMModel) }

//go:wasmexport get_minilm_tokenizer_ptr
func getMiniLMTokenizerPtr() uint32 { return assetPtr(assets.MiniLMTokenizer) }

//go:wasmexport get_minilm_tokenizer_size
func getMiniLMTokenizerSize() uint32 { return assetSize(assets.MiniLMTokenizer) }

//go:wasmexport get_codet5_encoder_ptr
func getCodeT5EncoderPtr() uint32 { return assetPtr(assets.CodeT5Encoder) }

//go:wasmexport get_codet5_encoder_size
func getCodeT5EncoderSize() uint32 { return assetSize(assets.CodeT5Encoder) }

//go:wasmexport get_codet5_decoder_ptr
func getCodeT5DecoderPtr() uint32 { return assetPtr(assets.CodeT5Decoder) }

//go:wasmexport get_codet5_decoder_size
func getCodeT5DecoderSize() uint32 { return assetSize(assets.CodeT5Decoder) }

//go:wasmexport get_codet5_tokenizer_ptr
func getCodeT5TokenizerPtr() uint32 { return assetPtr(assets.CodeT5Tokenizer) }

//go:wasmexport get_codet5_tokenizer_size
func getCodeT5TokenizerSize() uint32 { return assetSize(assets.CodeT5Tokenizer) }

//go:wasmexport get_onnx_runtime_ptr
func getONNXRuntimePtr() uint32 { return assetPtr(assets.ONNXRuntime) }

//go:wasmexport get_onnx_runtime_size
func getONNXRuntimeSize() uint32 { return assetSize(assets.ONNXRuntime) }

//go:wasmexport get_yoga_layout_ptr
func getYogaLayoutPtr() uint32 { return assetPtr(assets.YogaLayout) }

//go:wasmexport get_yoga_layout_size
func getYogaLayoutSize() uint32 { return assetSize(assets.YogaLayout) }

//go:wasmexport get_total_embedded_size
func getTotalEmbeddedSize() uint32 {
	return uint32(bundle.Registry().TotalSize())
}

// versionBytes keeps the version string reachable so its address stays valid.
var versionBytes []byte

//go:wasmexport get_version
func getVersion() uint64 {
	if versionBytes == nil {
		versionBytes = []byte(bundle.Version)
	}
	return PackString(addr(versionBytes), uint32(len(versionBytes)))
}
