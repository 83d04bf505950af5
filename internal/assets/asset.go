package assets

// Name identifies an embedded asset.
type Name string

// Asset names, in export order.
const (
	MiniLMModel     Name = "minilm_model"
	MiniLMTokenizer Name = "minilm_tokenizer"
	CodeT5Encoder   Name = "codet5_encoder"
	CodeT5Decoder   Name = "codet5_decoder"
	CodeT5Tokenizer Name = "codet5_tokenizer"
	ONNXRuntime     Name = "onnx_runtime"
	YogaLayout      Name = "yoga_layout"
)

var names = []Name{
	MiniLMModel,
	MiniLMTokenizer,
	CodeT5Encoder,
	CodeT5Decoder,
	CodeT5Tokenizer,
	ONNXRuntime,
	YogaLayout,
}

// Names returns every known asset name in export order.
func Names() []Name {
	out := make([]Name, len(names))
	copy(out, names)
	return out
}

// Known reports whether n is one of the defined asset names.
func (n Name) Known() bool {
	return n.order() < len(names)
}

func (n Name) order() int {
	for i, known := range names {
		if known == n {
			return i
		}
	}
	return len(names)
}

// Asset is a named byte buffer fixed at build time. An asset excluded from
// the build has no data and no file.
type Asset struct {
	Name Name
	File string // Source file name, empty when excluded
	Data []byte
}

// Size returns the length of the asset in bytes.
func (a *Asset) Size() int {
	return len(a.Data)
}

// Empty reports whether the asset holds no bytes.
func (a *Asset) Empty() bool {
	return len(a.Data) == 0
}
