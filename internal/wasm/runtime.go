package wasm

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/tetratelabs/wazero"
	"github.com/woxQAQ/wasm-bundle/internal/config"
	"go.uber.org/zap"
)

// Runtime manages the wazero runtime lifecycle.
// A single Runtime is shared by every bundle instance of the process.
type Runtime struct {
	// wazero runtime (singleton)
	runtime wazero.Runtime

	// Compiled module cache (key: module name/path -> value: compiled module)
	modules sync.Map // map[string]*CompiledModule

	// Active module instances, closed on shutdown.
	// key: instance ID -> value: *Instance
	instances sync.Map
	active    atomic.Int64

	config *RuntimeConfig
	logger *zap.Logger

	// Shutdown management
	closeOnce sync.Once
	closed    chan struct{}
}

// RuntimeConfig holds runtime configuration.
type RuntimeConfig struct {
	// Memory limit per module (in pages, 64KB each).
	// The bundle keeps every asset in linear memory, so the default is the
	// full 65536 pages (4GB).
	MemoryPages uint32

	// Compilation cache directory (for persistent caching).
	// If empty, uses in-memory caching only.
	CacheDir string

	// Maximum number of concurrent instances.
	MaxInstances int
}

// CompiledModule wraps a wazero.CompiledModule with metadata.
type CompiledModule struct {
	// wazero compiled module
	Module wazero.CompiledModule

	// Module metadata
	Name      string
	Source    string // File path or identifier
	SizeBytes int64

	// Compilation timestamp
	CompiledAt int64
}

// NewRuntime creates and initializes a new wazero runtime with WASI
// available to guests.
func NewRuntime(ctx context.Context, logger *zap.Logger, config *RuntimeConfig) (*Runtime, error) {
	if config == nil {
		config = DefaultRuntimeConfig()
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	rc := wazero.NewRuntimeConfig()
	if config.MemoryPages > 0 {
		rc = rc.WithMemoryLimitPages(config.MemoryPages)
	}
	if config.CacheDir != "" {
		cache, err := wazero.NewCompilationCacheWithDir(config.CacheDir)
		if err != nil {
			return nil, fmt.Errorf("failed to open compilation cache %s: %w", config.CacheDir, err)
		}
		rc = rc.WithCompilationCache(cache)
	}

	r := wazero.NewRuntimeWithConfig(ctx, rc)

	runtime := &Runtime{
		runtime: r,
		config:  config,
		logger:  logger.With(zap.String("component", "wasm-runtime")),
		closed:  make(chan struct{}),
	}

	if err := runtime.instantiateHost(ctx); err != nil {
		_ = r.Close(ctx)
		return nil, err
	}

	runtime.logger.Info("Wasm runtime initialized",
		zap.Uint32("memory_pages", config.MemoryPages),
		zap.String("cache_dir", config.CacheDir),
		zap.Int("max_instances", config.MaxInstances),
	)

	return runtime, nil
}

// DefaultRuntimeConfig returns sensible defaults.
func DefaultRuntimeConfig() *RuntimeConfig {
	return &RuntimeConfig{
		MemoryPages:  65536,
		CacheDir:     "",
		MaxInstances: 4,
	}
}

// RuntimeConfigFrom converts the loader's Wasm settings.
func RuntimeConfigFrom(cfg config.WasmConfig) *RuntimeConfig {
	return &RuntimeConfig{
		MemoryPages:  cfg.MemoryPages,
		CacheDir:     cfg.CacheDir,
		MaxInstances: cfg.MaxInstances,
	}
}

// Close gracefully shuts down the runtime.
// Safe to call multiple times (idempotent).
func (r *Runtime) Close(ctx context.Context) error {
	var err error
	r.closeOnce.Do(func() {
		r.logger.Info("Shutting down Wasm runtime")

		// Close all active instances first
		r.instances.Range(func(key, value any) bool {
			if inst, ok := value.(*Instance); ok {
				if closeErr := inst.Close(ctx); closeErr != nil {
					r.logger.Warn("Failed to close instance",
						zap.String("instance_id", key.(string)),
						zap.Error(closeErr),
					)
				}
			}
			return true
		})

		// Close the runtime (closes compiled modules)
		err = r.runtime.Close(ctx)

		close(r.closed)
		r.logger.Info("Wasm runtime shutdown complete")
	})

	return err
}

// GetCompiledModule retrieves a compiled module from cache.
func (r *Runtime) GetCompiledModule(name string) (*CompiledModule, bool) {
	if val, ok := r.modules.Load(name); ok {
		if mod, ok := val.(*CompiledModule); ok {
			return mod, true
		}
	}
	return nil, false
}

// StoreCompiledModule stores a compiled module in cache.
func (r *Runtime) StoreCompiledModule(module *CompiledModule) {
	r.modules.Store(module.Name, module)
}

// GetInstance retrieves an active instance.
func (r *Runtime) GetInstance(instanceID string) (*Instance, bool) {
	if val, ok := r.instances.Load(instanceID); ok {
		return val.(*Instance), true
	}
	return nil, false
}

// StoreInstance tracks an active instance.
func (r *Runtime) StoreInstance(instance *Instance) {
	if _, loaded := r.instances.LoadOrStore(instance.ID, instance); !loaded {
		r.active.Add(1)
	}
}

// DeleteInstance removes an instance from tracking.
func (r *Runtime) DeleteInstance(instanceID string) {
	if _, loaded := r.instances.LoadAndDelete(instanceID); loaded {
		r.active.Add(-1)
	}
}

// InstanceCount returns the number of tracked instances.
func (r *Runtime) InstanceCount() int {
	return int(r.active.Load())
}

// IsClosed returns whether the runtime has been closed.
func (r *Runtime) IsClosed() bool {
	select {
	case <-r.closed:
		return true
	default:
		return false
	}
}
