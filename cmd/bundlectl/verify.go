package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/woxQAQ/wasm-bundle/internal/assets"
	"go.uber.org/zap"
)

var verifyManifestDir string

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Verify a bundle module against an asset manifest",
	Long: `Verify reads every asset out of the bundle module and checks its size and
SHA-256 digest against the manifest. Assets excluded from the build are
skipped. The manifest directory defaults to manifest_dir from the
configuration.`,
	Args: cobra.NoArgs,
	RunE: runVerify,
}

func init() {
	verifyCmd.Flags().StringVar(&verifyManifestDir, "manifest", "", "Directory holding manifest.yaml (overrides manifest_dir)")
}

func runVerify(cmd *cobra.Command, args []string) error {
	dir := cfg.ManifestDir
	if verifyManifestDir != "" {
		dir = verifyManifestDir
	}
	if dir == "" {
		return errors.New("no manifest directory: set manifest_dir or pass --manifest")
	}

	manifest, err := assets.ParseManifest(dir)
	if err != nil {
		return err
	}

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
	if bundleVersion != manifest.Version {
		logger.Warn("Manifest version differs from bundle version",
			zap.String("manifest_version", manifest.Version),
			zap.String("bundle_version", bundleVersion),
		)
	}

	verr := bundle.Verify(ctx, manifest)
	printVerify(cmd.OutOrStdout(), manifest, verr)
	return verr
}

// printVerify reports one line per manifest entry, then any problem that is
// not tied to an entry.
func printVerify(out io.Writer, m *assets.Manifest, verr error) {
	ok := color.New(color.FgGreen)
	fail := color.New(color.Bold, color.FgRed)

	failed := make(map[assets.Name][]error)
	var other []error
	for _, err := range flatten(verr) {
		var mismatch *assets.AssetMismatchError
		var notFound *assets.AssetNotFoundError
		switch {
		case errors.As(err, &mismatch) && mismatch.Name.Known():
			failed[mismatch.Name] = append(failed[mismatch.Name], err)
		case errors.As(err, &notFound) && notFound.Name.Known():
			failed[notFound.Name] = append(failed[notFound.Name], err)
		default:
			other = append(other, err)
		}
	}

	for _, e := range m.Assets {
		if errs, bad := failed[e.Name]; bad {
			fail.Fprintf(out, "FAIL ")
			fmt.Fprintf(out, "%s\n", e.Name)
			for _, err := range errs {
				fmt.Fprintf(out, "     %v\n", err)
			}
			delete(failed, e.Name)
			continue
		}
		ok.Fprintf(out, "ok   ")
		fmt.Fprintf(out, "%s (%s)\n", e.Name, e.File)
	}

	// Embedded assets the manifest does not list.
	for _, name := range assets.Names() {
		other = append(other, failed[name]...)
	}
	for _, err := range other {
		fail.Fprintf(out, "FAIL ")
		fmt.Fprintf(out, "%v\n", err)
	}
}

// flatten expands errors joined with errors.Join.
func flatten(err error) []error {
	if err == nil {
		return nil
	}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		var out []error
		for _, e := range joined.Unwrap() {
			out = append(out, flatten(e)...)
		}
		return out
	}
	return []error{err}
}
