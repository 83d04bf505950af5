package main

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/woxQAQ/wasm-bundle/internal/assets"
	"github.com/woxQAQ/wasm-bundle/internal/wasm"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show the version and assets of a bundle module",
	Args:  cobra.NoArgs,
	RunE:  runInfo,
}

// openBundle starts a runtime and instantiates the configured module. The
// returned function releases both.
func openBundle(ctx context.Context) (*wasm.Bundle, func(), error) {
	runtime, err := wasm.NewRuntime(ctx, logger, wasm.RuntimeConfigFrom(cfg.Wasm))
	if err != nil {
		return nil, nil, err
	}
	bundle, err := wasm.OpenBundle(ctx, runtime, cfg.ModulePath, logger)
	if err != nil {
		_ = runtime.Close(context.Background())
		return nil, nil, err
	}
	return bundle, func() {
		_ = bundle.Close(context.Background())
		_ = runtime.Close(context.Background())
	}, nil
}

// assetRow is one line of the asset table.
type assetRow struct {
	Name assets.Name
	Size uint32
}

func runInfo(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	bundle, release, err := openBundle(ctx)
	if err != nil {
		return err
	}
	defer release()

	bundleVersion, err := bundle.Version(ctx)
	if err != nil {
		return err
	}
	total, err := bundle.TotalEmbeddedSize(ctx)
	if err != nil {
		return err
	}

	var rows []assetRow
	for _, name := range assets.Names() {
		size, err := bundle.AssetSize(ctx, name)
		if err != nil {
			return err
		}
		rows = append(rows, assetRow{Name: name, Size: size})
	}

	printInfo(cmd.OutOrStdout(), cfg.ModulePath, bundleVersion, total, rows)
	return nil
}

func printInfo(out io.Writer, module, bundleVersion string, total uint32, rows []assetRow) {
	heading := color.New(color.Bold)
	dim := color.New(color.FgHiBlack)

	heading.Fprintf(out, "%s\n", module)
	fmt.Fprintf(out, "Version: %s\n", bundleVersion)
	fmt.Fprintf(out, "Total:   %s\n\n", formatSize(total))

	heading.Fprintf(out, "%-18s %12s\n", "ASSET", "SIZE")
	for _, r := range rows {
		if r.Size == 0 {
			dim.Fprintf(out, "%-18s %12s\n", r.Name, "excluded")
			continue
		}
		fmt.Fprintf(out, "%-18s %12s\n", r.Name, formatSize(r.Size))
	}
}

func formatSize(n uint32) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := uint32(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMG"[exp])
}
