package assets

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileFor returns the file the pre-build step writes for an asset, given the
// MiniLM quantization variant and whether the optimized Wasm modules are
// used. It returns "" for unknown names.
func FileFor(name Name, variant string, optimized bool) string {
	switch name {
	case MiniLMModel:
		if variant == VariantInt8 {
			return "minilm-int8.onnx"
		}
		return "minilm-int4.onnx"
	case MiniLMTokenizer:
		return "minilm-tokenizer.json"
	case CodeT5Encoder:
		return "codet5-encoder-int4.onnx"
	case CodeT5Decoder:
		return "codet5-decoder-int4.onnx"
	case CodeT5Tokenizer:
		return "codet5-tokenizer.json"
	case ONNXRuntime:
		if optimized {
			return "ort-wasm-simd-optimized.wasm"
		}
		return "ort-wasm-simd.wasm"
	case YogaLayout:
		if optimized {
			return "yoga-optimized.wasm"
		}
		return "yoga.wasm"
	}
	return ""
}

// GenerateManifest builds the manifest for the asset files present in dir.
// Files that do not exist are left out, as their assets will be.
func GenerateManifest(dir, version, variant string, optimized bool) (*Manifest, error) {
	m := &Manifest{
		Version:   version,
		Variant:   variant,
		Optimized: optimized,
		dir:       dir,
	}
	for _, name := range names {
		file := FileFor(name, variant, optimized)
		data, err := os.ReadFile(filepath.Join(dir, file))
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, &AssetLoadError{Name: name, Err: err}
		}
		m.Assets = append(m.Assets, Entry{
			Name:   name,
			File:   file,
			Size:   len(data),
			SHA256: Digest(data),
		})
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

// Write stores the manifest as manifest.yaml in its directory.
func (m *Manifest) Write() error {
	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("encode manifest: %w", err)
	}
	return os.WriteFile(m.Path(), data, 0o644)
}
