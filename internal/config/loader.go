package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// EnvPrefix prefixes environment overrides, e.g. WASM_BUNDLE_MODULE_PATH or
// WASM_BUNDLE_WASM_MEMORY_PAGES.
const EnvPrefix = "WASM_BUNDLE"

// LoaderConfig configures the host side loader of the bundle module.
type LoaderConfig struct {
	// Path of the compiled bundle module.
	ModulePath string `mapstructure:"module_path"`
	// Directory holding the asset manifest to verify the module against.
	// Empty skips verification.
	ManifestDir string     `mapstructure:"manifest_dir"`
	LogLevel    string     `mapstructure:"log_level"`
	Wasm        WasmConfig `mapstructure:"wasm"`
}

// WasmConfig holds Wasm runtime configuration.
type WasmConfig struct {
	// Memory limit per module (in pages, 64KB each).
	MemoryPages uint32 `mapstructure:"memory_pages"`
	// Compilation cache directory. Empty keeps compiled code in memory only.
	CacheDir string `mapstructure:"cache_dir"`
	// Maximum concurrent instances.
	MaxInstances int `mapstructure:"max_instances"`
}

// LoadLoaderConfig reads the loader configuration from defaults, the
// optional YAML file at configPath and the environment, in increasing
// precedence.
func LoadLoaderConfig(configPath string) (*LoaderConfig, error) {
	v := viper.New()

	// Set defaults
	v.SetDefault("module_path", "./build/bundle.wasm")
	v.SetDefault("manifest_dir", "")
	v.SetDefault("log_level", "info")

	// Wasm defaults. The embedded models need far more than the usual
	// 16MB, so the default allows the full 4GB address space.
	v.SetDefault("wasm.memory_pages", 65536)
	v.SetDefault("wasm.cache_dir", "")
	v.SetDefault("wasm.max_instances", 4)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}

	var cfg LoaderConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the configuration values.
func (c *LoaderConfig) Validate() error {
	if c.ModulePath == "" {
		return fmt.Errorf("module_path is required")
	}
	if c.Wasm.MemoryPages == 0 || c.Wasm.MemoryPages > 65536 {
		return fmt.Errorf("wasm.memory_pages must be between 1 and 65536, got %d", c.Wasm.MemoryPages)
	}
	if c.Wasm.MaxInstances <= 0 {
		return fmt.Errorf("wasm.max_instances must be positive, got %d", c.Wasm.MaxInstances)
	}
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	return nil
}

// NewLogger builds the production logger at the configured level.
func (c *LoaderConfig) NewLogger() (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, err
	}
	zc := zap.NewProductionConfig()
	if level == zapcore.DebugLevel {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	return zc.Build()
}
