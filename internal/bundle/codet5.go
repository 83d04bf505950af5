//go:build !nomodels && !minilm_only

package bundle

import (
	_ "embed"
)

//go:embed models/codet5-encoder-int4.onnx
var codet5EncoderInt4 []byte

//go:embed models/codet5-decoder-int4.onnx
var codet5DecoderInt4 []byte

//go:embed models/codet5-tokenizer.json
var codet5TokenizerJSON []byte

func init() {
	codet5Encoder, codet5EncoderFile = codet5EncoderInt4, "codet5-encoder-int4.onnx"
	codet5Decoder, codet5DecoderFile = codet5DecoderInt4, "codet5-decoder-int4.onnx"
	codet5Tokenizer, codet5TokenizerFile = codet5TokenizerJSON, "codet5-tokenizer.json"
}
