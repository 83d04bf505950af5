package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/woxQAQ/wasm-bundle/internal/config"
	"go.uber.org/zap"
	"golang.org/x/term"
)

var (
	configPath string
	modulePath string
	logLevel   string
	colorMode  string

	// Set by the root command before any subcommand runs.
	cfg    *config.LoaderConfig
	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "bundlectl",
	Short: "Inspect and verify wasm bundle modules",
	Long: `bundlectl loads a bundle module with wazero, reports the version and
assets it embeds and verifies them against the manifest written by the
pre-build step.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to configuration file")
	rootCmd.PersistentFlags().StringVarP(&modulePath, "module", "m", "", "Path to the bundle module (overrides module_path)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&colorMode, "color", "auto", "Colorize output (auto, always, never)")

	// Add subcommands
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(manifestCmd)
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() error {
	defer func() { _ = logger.Sync() }()
	return rootCmd.Execute()
}

func setup(cmd *cobra.Command, args []string) error {
	loaded, err := config.LoadLoaderConfig(configPath)
	if err != nil {
		return err
	}
	if modulePath != "" {
		loaded.ModulePath = modulePath
	}
	if logLevel != "" {
		loaded.LogLevel = logLevel
	}

	l, err := loaded.NewLogger()
	if err != nil {
		return err
	}
	cfg, logger = loaded, l

	setColor(colorMode)
	return nil
}

func setColor(mode string) {
	switch mode {
	case "always":
		color.NoColor = false
	case "never":
		color.NoColor = true
	default: // "auto"
		color.NoColor = !term.IsTerminal(int(os.Stdout.Fd())) || os.Getenv("NO_COLOR") != ""
	}
}
