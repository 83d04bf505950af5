// Package bundle holds the assets compiled into the module.
//
// The asset files are read at compile time from the models directory next
// to this file. Build tags select which of them are embedded:
//
//	nomodels          no asset is embedded
//	minilm_only       the CodeT5 assets are left out
//	codet5_only       the MiniLM assets are left out
//	unoptimized_wasm  embed the unoptimized runtime and layout modules
//	minilm_int8       embed the int8 MiniLM model instead of int4
//
// Assets that are left out are still registered, with no data.
package bundle

import (
	"sync"

	"github.com/woxQAQ/wasm-bundle/internal/assets"
	"go.uber.org/zap"
)

// Version is the bundle version reported to hosts. Release builds set it
// with -ldflags "-X github.com/woxQAQ/wasm-bundle/internal/bundle.Version=...".
var Version = "1.0.0"

// Embedded data, filled in by the files matching the build tags.
var (
	minilmModel         []byte
	minilmModelFile     string
	minilmTokenizer     []byte
	minilmTokenizerFile string

	codet5Encoder       []byte
	codet5EncoderFile   string
	codet5Decoder       []byte
	codet5DecoderFile   string
	codet5Tokenizer     []byte
	codet5TokenizerFile string

	onnxRuntime     []byte
	onnxRuntimeFile string
	yogaLayout      []byte
	yogaLayoutFile  string

	variant   = assets.VariantInt4
	optimized = true
)

var (
	registry     *assets.Registry
	registryOnce sync.Once
)

// Registry returns the registry of embedded assets. Every known asset name
// is registered; excluded ones are empty.
func Registry() *assets.Registry {
	registryOnce.Do(func() {
		registry = assets.NewRegistry(zap.NewNop())
		for _, a := range embedded() {
			if err := registry.Register(a); err != nil {
				panic(err)
			}
		}
	})
	return registry
}

// Variant returns the quantization variant of the MiniLM model this build
// selects.
func Variant() string {
	return variant
}

// Optimized reports whether the optimized runtime and layout modules are
// selected.
func Optimized() bool {
	return optimized
}

func embedded() []*assets.Asset {
	return []*assets.Asset{
		{Name: assets.MiniLMModel, File: minilmModelFile, Data: minilmModel},
		{Name: assets.MiniLMTokenizer, File: minilmTokenizerFile, Data: minilmTokenizer},
		{Name: assets.CodeT5Encoder, File: codet5EncoderFile, Data: codet5Encoder},
		{Name: assets.CodeT5Decoder, File: codet5DecoderFile, Data: codet5Decoder},
		{Name: assets.CodeT5Tokenizer, File: codet5TokenizerFile, Data: codet5Tokenizer},
		{Name: assets.ONNXRuntime, File: onnxRuntimeFile, Data: onnxRuntime},
		{Name: assets.YogaLayout, File: yogaLayoutFile, Data: yogaLayout},
	}
}
