package wasm

import (
	"context"
	"fmt"

	"github.com/tetratelabs/wazero/api"
	abi "github.com/woxQAQ/wasm-bundle/api/wasm"
	"github.com/woxQAQ/wasm-bundle/internal/assets"
	"go.uber.org/zap"
)

// requiredExports are the accessors every bundle build exports, whatever
// assets it carries.
var requiredExports = func() []string {
	exports := []string{abi.ExportTotalEmbeddedSize, abi.ExportVersion}
	for _, name := range assets.Names() {
		exports = append(exports, abi.AssetPtrExport(name), abi.AssetSizeExport(name))
	}
	return exports
}()

// Bundle is a host side client of one instance of the bundle module.
type Bundle struct {
	inst   *Instance
	logger *zap.Logger
}

// OpenBundle compiles (or reuses) the bundle module at path and instantiates
// it.
func OpenBundle(ctx context.Context, runtime *Runtime, path string, logger *zap.Logger) (*Bundle, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	loader := NewModuleLoader(runtime, logger)
	compiled, err := loader.LoadModuleFromFile(ctx, path, requiredExports...)
	if err != nil {
		return nil, err
	}

	return instantiateBundle(ctx, runtime, compiled, logger)
}

// OpenBundleFromMemory is OpenBundle for a module already in memory.
func OpenBundleFromMemory(ctx context.Context, runtime *Runtime, name string, data []byte, logger *zap.Logger) (*Bundle, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	loader := NewModuleLoader(runtime, logger)
	compiled, err := loader.LoadModuleFromMemory(ctx, name, data, requiredExports...)
	if err != nil {
		return nil, err
	}

	return instantiateBundle(ctx, runtime, compiled, logger)
}

func instantiateBundle(ctx context.Context, runtime *Runtime, compiled *CompiledModule, logger *zap.Logger) (*Bundle, error) {
	inst, err := NewInstanceManager(runtime, logger).Instantiate(ctx, &InstanceConfig{
		ModuleName: compiled.Name,
	})
	if err != nil {
		return nil, err
	}

	return &Bundle{
		inst:   inst,
		logger: logger.With(zap.String("component", "bundle"), zap.String("instance_id", inst.ID)),
	}, nil
}

// Close releases the instance.
func (b *Bundle) Close(ctx context.Context) error {
	return b.inst.Close(ctx)
}

// Version returns the version string the module was built with.
func (b *Bundle) Version(ctx context.Context) (string, error) {
	packed, err := b.inst.Call1(ctx, abi.ExportVersion)
	if err != nil {
		return "", err
	}
	ptr, length := abi.UnpackString(packed)
	return b.inst.Memory().ReadString(ptr, length)
}

// TotalEmbeddedSize returns the summed size of every asset in the module.
func (b *Bundle) TotalEmbeddedSize(ctx context.Context) (uint32, error) {
	return b.callU32(ctx, abi.ExportTotalEmbeddedSize)
}

// AssetSize returns the size of the named asset, 0 if it was excluded from
// the build.
func (b *Bundle) AssetSize(ctx context.Context, name assets.Name) (uint32, error) {
	if !name.Known() {
		return 0, &assets.AssetNotFoundError{Name: name, Where: "bundle"}
	}
	return b.callU32(ctx, abi.AssetSizeExport(name))
}

// Asset copies the named asset out of guest memory. An excluded asset yields
// nil.
func (b *Bundle) Asset(ctx context.Context, name assets.Name) ([]byte, error) {
	size, err := b.AssetSize(ctx, name)
	if err != nil || size == 0 {
		return nil, err
	}
	ptr, err := b.callU32(ctx, abi.AssetPtrExport(name))
	if err != nil {
		return nil, err
	}
	if ptr == 0 {
		return nil, &CallError{
			FunctionName: abi.AssetPtrExport(name),
			Err:          fmt.Errorf("null pointer for %d byte asset", size),
		}
	}
	return b.inst.Memory().ReadBytes(ptr, size)
}

// Assets copies every asset into a registry.
func (b *Bundle) Assets(ctx context.Context) (*assets.Registry, error) {
	reg := assets.NewRegistry(b.logger)
	for _, name := range assets.Names() {
		data, err := b.Asset(ctx, name)
		if err != nil {
			return nil, &assets.AssetLoadError{Name: name, Err: err}
		}
		if err := reg.Register(&assets.Asset{Name: name, Data: data}); err != nil {
			return nil, err
		}
	}
	return reg, nil
}

// Verify checks the module's assets against a manifest and confirms the
// reported total matches the assets read.
func (b *Bundle) Verify(ctx context.Context, m *assets.Manifest) error {
	reg, err := b.Assets(ctx)
	if err != nil {
		return err
	}
	total, err := b.TotalEmbeddedSize(ctx)
	if err != nil {
		return err
	}
	if int(total) != reg.TotalSize() {
		return &assets.AssetMismatchError{
			Name:  "total",
			Field: "size",
			Want:  fmt.Sprint(reg.TotalSize()),
			Got:   fmt.Sprint(total),
		}
	}
	if err := m.Verify(reg); err != nil {
		return err
	}
	b.logger.Info("Bundle verified",
		zap.String("manifest", m.Path()),
		zap.Int("assets", reg.Count()),
		zap.Uint32("total_size", total),
	)
	return nil
}

func (b *Bundle) callU32(ctx context.Context, name string, params ...uint64) (uint32, error) {
	v, err := b.inst.Call1(ctx, name, params...)
	if err != nil {
		return 0, err
	}
	return api.DecodeU32(v), nil
}
