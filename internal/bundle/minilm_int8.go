//go:build !nomodels && !codet5_only && minilm_int8

package bundle

import (
	_ "embed"

	"github.com/woxQAQ/wasm-bundle/internal/assets"
)

//go:embed models/minilm-int8.onnx
var minilmInt8 []byte

//go:embed models/minilm-tokenizer.json
var minilmTokenizerJSON []byte

func init() {
	minilmModel, minilmModelFile = minilmInt8, "minilm-int8.onnx"
	minilmTokenizer, minilmTokenizerFile = minilmTokenizerJSON, "minilm-tokenizer.json"
	variant = assets.VariantInt8
}
