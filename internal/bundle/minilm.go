//go:build !nomodels && !codet5_only && !minilm_int8

package bundle

import (
	_ "embed"
)

//go:embed models/minilm-int4.onnx
var minilmInt4 []byte

//go:embed models/minilm-tokenizer.json
var minilmTokenizerJSON []byte

func init() {
	minilmModel, minilmModelFile = minilmInt4, "minilm-int4.onnx"
	minilmTokenizer, minilmTokenizerFile = minilmTokenizerJSON, "minilm-tokenizer.json"
}
