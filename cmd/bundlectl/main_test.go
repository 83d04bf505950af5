package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/woxQAQ/wasm-bundle/internal/assets"
	"github.com/woxQAQ/wasm-bundle/internal/config"
)

func init() {
	color.NoColor = true
}

func testCmd() (*cobra.Command, *bytes.Buffer) {
	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)
	return cmd, &buf
}

func TestRunVersion(t *testing.T) {
	cmd, buf := testCmd()

	err := runVersion(cmd, []string{})
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "bundlectl dev")
	assert.Contains(t, output, "Commit:")
	assert.Contains(t, output, "Go version:")
	assert.Contains(t, output, "OS/Arch:")
}

func TestRunManifest(t *testing.T) {
	dir := t.TempDir()
	model := []byte("onnx model bytes")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "minilm-int8.onnx"), model, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "minilm-int4.onnx"), []byte("other"), 0o644))

	manifestVersion, manifestVariant, manifestOptimized = "3.1.0", assets.VariantInt8, false
	t.Cleanup(func() {
		manifestVersion, manifestVariant, manifestOptimized = "1.0.0", assets.VariantInt4, true
	})

	cmd, buf := testCmd()
	require.NoError(t, runManifest(cmd, []string{dir}))
	assert.Contains(t, buf.String(), "minilm-int8.onnx")
	assert.NotContains(t, buf.String(), "minilm-int4.onnx")

	m, err := assets.ParseManifest(dir)
	require.NoError(t, err)
	assert.Equal(t, "3.1.0", m.Version)
	assert.Equal(t, assets.VariantInt8, m.Variant)
	assert.False(t, m.Optimized)

	e, ok := m.Entry(assets.MiniLMModel)
	require.True(t, ok)
	assert.Equal(t, len(model), e.Size)
	assert.Equal(t, assets.Digest(model), e.SHA256)
}

func TestRunManifest_InvalidVariant(t *testing.T) {
	manifestVariant = "fp16"
	t.Cleanup(func() { manifestVariant = assets.VariantInt4 })

	cmd, _ := testCmd()
	err := runManifest(cmd, []string{t.TempDir()})

	var validationErr *assets.ManifestValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "variant", validationErr.Field)
}

func TestRunVerify_NoManifestDir(t *testing.T) {
	cfg = &config.LoaderConfig{ModulePath: "bundle.wasm"}
	t.Cleanup(func() { cfg = nil })

	cmd, _ := testCmd()
	err := runVerify(cmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no manifest directory")
}

func TestPrintVerify(t *testing.T) {
	m := &assets.Manifest{
		Version: "1.0.0",
		Variant: assets.VariantInt4,
		Assets: []assets.Entry{
			{Name: assets.MiniLMModel, File: "minilm-int4.onnx"},
			{Name: assets.MiniLMTokenizer, File: "minilm-tokenizer.json"},
		},
	}

	t.Run("all ok", func(t *testing.T) {
		var buf bytes.Buffer
		printVerify(&buf, m, nil)
		assert.Equal(t,
			"ok   minilm_model (minilm-int4.onnx)\n"+
				"ok   minilm_tokenizer (minilm-tokenizer.json)\n",
			buf.String())
	})

	t.Run("failures", func(t *testing.T) {
		verr := errors.Join(
			&assets.AssetMismatchError{Name: assets.MiniLMModel, Field: "size", Want: "16", Got: "8"},
			&assets.AssetNotFoundError{Name: assets.YogaLayout, Where: "manifest.yaml"},
		)

		var buf bytes.Buffer
		printVerify(&buf, m, verr)

		output := buf.String()
		assert.Contains(t, output, "FAIL minilm_model\n")
		assert.Contains(t, output, "ok   minilm_tokenizer")
		assert.Contains(t, output, "FAIL "+(&assets.AssetNotFoundError{Name: assets.YogaLayout, Where: "manifest.yaml"}).Error())
	})
}

func TestPrintInfo(t *testing.T) {
	var buf bytes.Buffer
	printInfo(&buf, "bundle.wasm", "1.2.3", 2048, []assetRow{
		{Name: assets.MiniLMModel, Size: 2048},
		{Name: assets.CodeT5Encoder, Size: 0},
	})

	output := buf.String()
	assert.Contains(t, output, "Version: 1.2.3")
	assert.Contains(t, output, "Total:   2.0 KiB")
	assert.Regexp(t, `minilm_model\s+2\.0 KiB`, output)
	assert.Regexp(t, `codet5_encoder\s+excluded`, output)
}

func TestFormatSize(t *testing.T) {
	tests := map[uint32]string{
		0:       "0 B",
		1023:    "1023 B",
		1536:    "1.5 KiB",
		5 << 20: "5.0 MiB",
		3 << 30: "3.0 GiB",
	}
	for n, want := range tests {
		assert.Equal(t, want, formatSize(n), "formatSize(%d)", n)
	}
}

func TestSetColor(t *testing.T) {
	t.Cleanup(func() { color.NoColor = true })

	setColor("always")
	assert.False(t, color.NoColor)

	setColor("never")
	assert.True(t, color.NoColor)
}
