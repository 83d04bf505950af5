package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/woxQAQ/wasm-bundle/internal/assets"
	"go.uber.org/zap"
)

var (
	manifestVersion   string
	manifestVariant   string
	manifestOptimized bool
)

var manifestCmd = &cobra.Command{
	Use:   "manifest <dir>",
	Short: "Write manifest.yaml for the asset files in a directory",
	Long: `Manifest records the size and SHA-256 digest of every asset file present
in dir and writes them to dir/manifest.yaml. The variant and optimized flags
select which of the alternative files are recorded, and must match the build
tags the module is compiled with.`,
	Args: cobra.ExactArgs(1),
	RunE: runManifest,
}

func init() {
	manifestCmd.Flags().StringVar(&manifestVersion, "version", "1.0.0", "Bundle version to record")
	manifestCmd.Flags().StringVar(&manifestVariant, "variant", assets.VariantInt4, "MiniLM quantization variant (int4, int8)")
	manifestCmd.Flags().BoolVar(&manifestOptimized, "optimized", true, "Record the optimized Wasm modules")
}

func runManifest(cmd *cobra.Command, args []string) error {
	m, err := assets.GenerateManifest(args[0], manifestVersion, manifestVariant, manifestOptimized)
	if err != nil {
		return err
	}
	if err := m.Write(); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}

	logger.Info("Manifest written",
		zap.String("path", m.Path()),
		zap.Int("assets", len(m.Assets)),
	)

	out := cmd.OutOrStdout()
	for _, e := range m.Assets {
		fmt.Fprintf(out, "%-18s %-30s %10d\n", e.Name, e.File, e.Size)
	}
	fmt.Fprintf(out, "Wrote %s\n", m.Path())
	return nil
}
