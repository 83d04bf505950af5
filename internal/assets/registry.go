package assets

import (
	"slices"
	"strings"
	"sync"

	"go.uber.org/zap"
)

// Registry holds the assets of one build.
type Registry struct {
	sync.RWMutex
	assets map[Name]*Asset
	logger *zap.Logger
}

// NewRegistry creates a new asset registry.
func NewRegistry(logger *zap.Logger) *Registry {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Registry{
		assets: make(map[Name]*Asset),
		logger: logger.With(zap.String("component", "asset-registry")),
	}
}

// Register adds an asset to the registry.
func (r *Registry) Register(asset *Asset) error {
	r.Lock()
	defer r.Unlock()

	// Check for duplicates
	if _, exists := r.assets[asset.Name]; exists {
		return &AssetAlreadyRegisteredError{Name: asset.Name}
	}

	r.assets[asset.Name] = asset

	r.logger.Debug("Asset registered",
		zap.String("name", string(asset.Name)),
		zap.String("file", asset.File),
		zap.Int("size", asset.Size()),
	)

	return nil
}

// Get retrieves an asset by name.
func (r *Registry) Get(name Name) (*Asset, bool) {
	r.RLock()
	defer r.RUnlock()

	asset, ok := r.assets[name]
	return asset, ok
}

// Asset returns the named asset, or an empty one if it is not registered.
func (r *Registry) Asset(name Name) *Asset {
	if asset, ok := r.Get(name); ok {
		return asset
	}
	return &Asset{Name: name}
}

// List returns all registered assets, known names first in export order.
func (r *Registry) List() []*Asset {
	r.RLock()
	defer r.RUnlock()

	result := make([]*Asset, 0, len(r.assets))
	for _, asset := range r.assets {
		result = append(result, asset)
	}
	slices.SortFunc(result, func(a, b *Asset) int {
		if d := a.Name.order() - b.Name.order(); d != 0 {
			return d
		}
		return strings.Compare(string(a.Name), string(b.Name))
	})
	return result
}

// Unregister removes an asset from the registry.
func (r *Registry) Unregister(name Name) {
	r.Lock()
	defer r.Unlock()

	if _, ok := r.assets[name]; !ok {
		return
	}
	delete(r.assets, name)

	r.logger.Debug("Asset unregistered", zap.String("name", string(name)))
}

// Count returns the number of registered assets.
func (r *Registry) Count() int {
	r.RLock()
	defer r.RUnlock()

	return len(r.assets)
}

// TotalSize returns the summed size of all registered assets.
func (r *Registry) TotalSize() int {
	r.RLock()
	defer r.RUnlock()

	total := 0
	for _, asset := range r.assets {
		total += asset.Size()
	}
	return total
}
