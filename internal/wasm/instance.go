package wasm

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
	"go.uber.org/zap"
)

// InstanceManager creates and manages module instances.
type InstanceManager struct {
	runtime *Runtime
	logger  *zap.Logger
}

// NewInstanceManager creates a new instance manager.
func NewInstanceManager(runtime *Runtime, logger *zap.Logger) *InstanceManager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &InstanceManager{
		runtime: runtime,
		logger:  logger.With(zap.String("component", "wasm-instance")),
	}
}

// InstanceConfig holds configuration for creating instances.
type InstanceConfig struct {
	// Module name to instantiate.
	ModuleName string

	// Instance ID (if empty, one is generated).
	InstanceID string
}

// Instance represents an instantiated Wasm module.
// Calls are serialized; a guest instance is single threaded.
type Instance struct {
	mu     sync.Mutex
	module api.Module
	output *guestOutput
	owner  *Runtime

	// Instance metadata.
	ID        string
	Name      string
	CreatedAt int64

	// Exported functions, resolved on first use.
	exports map[string]api.Function

	closeOnce sync.Once
}

// Instantiate creates a new instance from a compiled module. Reactor modules
// have their _initialize export run before Instantiate returns.
func (m *InstanceManager) Instantiate(ctx context.Context, config *InstanceConfig) (*Instance, error) {
	if m.runtime.IsClosed() {
		return nil, ErrRuntimeClosed
	}

	compiled, ok := m.runtime.GetCompiledModule(config.ModuleName)
	if !ok {
		return nil, &ModuleNotFoundError{ModuleName: config.ModuleName}
	}

	if limit := m.runtime.config.MaxInstances; limit > 0 && m.runtime.InstanceCount() >= limit {
		return nil, &InstanceLimitError{Limit: limit}
	}

	instanceID := config.InstanceID
	if instanceID == "" {
		instanceID = generateInstanceID()
	}

	m.logger.Info("Instantiating Wasm module",
		zap.String("module", config.ModuleName),
		zap.String("instance_id", instanceID),
	)

	output := newGuestOutput(m.logger, instanceID)

	// WithStartFunctions skips names the module does not export, so both
	// commands and reactors are accepted.
	moduleConfig := wazero.NewModuleConfig().
		WithName(instanceID).
		WithStdout(output.stdout).
		WithStderr(output.stderr).
		WithStartFunctions("_start", "_initialize")

	module, err := m.runtime.runtime.InstantiateModule(ctx, compiled.Module, moduleConfig)
	if err != nil {
		_ = output.Close()
		return nil, &InstantiationError{
			ModuleName: config.ModuleName,
			InstanceID: instanceID,
			Err:        err,
		}
	}

	instance := &Instance{
		module:    module,
		output:    output,
		owner:     m.runtime,
		ID:        instanceID,
		Name:      config.ModuleName,
		CreatedAt: time.Now().Unix(),
		exports:   make(map[string]api.Function),
	}

	m.runtime.StoreInstance(instance)

	m.logger.Info("Module instantiated successfully",
		zap.String("instance_id", instanceID),
		zap.Int("exported_functions", len(compiled.Module.ExportedFunctions())),
	)

	return instance, nil
}

// Call invokes an exported function. Parameters and results use wazero's
// uint64 encoding, see api.EncodeU32 and api.EncodeF32.
func (i *Instance) Call(ctx context.Context, name string, params ...uint64) ([]uint64, error) {
	i.mu.Lock()
	defer i.mu.Unlock()

	fn, err := i.function(name)
	if err != nil {
		return nil, err
	}
	results, err := fn.Call(ctx, params...)
	if err != nil {
		return nil, &CallError{FunctionName: name, Err: err}
	}
	return results, nil
}

// Call1 invokes an exported function with a single result.
func (i *Instance) Call1(ctx context.Context, name string, params ...uint64) (uint64, error) {
	results, err := i.Call(ctx, name, params...)
	if err != nil {
		return 0, err
	}
	if len(results) != 1 {
		return 0, &CallError{
			FunctionName: name,
			Err:          fmt.Errorf("got %d results, want 1", len(results)),
		}
	}
	return results[0], nil
}

// Memory returns a helper over the instance's linear memory.
func (i *Instance) Memory() *Memory {
	return NewMemory(i.module)
}

// HasExport reports whether the instance exports the named function.
func (i *Instance) HasExport(name string) bool {
	i.mu.Lock()
	defer i.mu.Unlock()
	_, err := i.function(name)
	return err == nil
}

func (i *Instance) function(name string) (api.Function, error) {
	if fn, ok := i.exports[name]; ok {
		return fn, nil
	}
	fn := i.module.ExportedFunction(name)
	if fn == nil {
		return nil, &FunctionNotFoundError{ModuleName: i.Name, FunctionName: name}
	}
	i.exports[name] = fn
	return fn, nil
}

// Close closes the instance and releases resources.
// Safe to call multiple times.
func (i *Instance) Close(ctx context.Context) error {
	var err error
	i.closeOnce.Do(func() {
		i.owner.DeleteInstance(i.ID)
		err = i.module.Close(ctx)
		if outErr := i.output.Close(); err == nil {
			err = outErr
		}
	})
	return err
}

var instanceSeq atomic.Uint64

// generateInstanceID generates a process-unique instance ID.
func generateInstanceID() string {
	return fmt.Sprintf("inst-%d-%d", time.Now().UnixNano(), instanceSeq.Add(1))
}
