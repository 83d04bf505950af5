package assets

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// ManifestFile is the name of the manifest written next to the asset files.
const ManifestFile = "manifest.yaml"

// Quantization variants of the MiniLM model.
const (
	VariantInt4 = "int4"
	VariantInt8 = "int8"
)

// Manifest describes the asset files produced by the pre-build step.
type Manifest struct {
	Version   string  `yaml:"version"`
	Variant   string  `yaml:"variant"`
	Optimized bool    `yaml:"optimized"`
	Assets    []Entry `yaml:"assets"`

	// Internal fields
	dir string // Directory containing manifest
}

// Entry is the manifest record of one asset file.
type Entry struct {
	Name   Name   `yaml:"name"`
	File   string `yaml:"file"`
	Size   int    `yaml:"size"` // bytes
	SHA256 string `yaml:"sha256"`
}

// ParseManifest reads and parses manifest.yaml from a directory.
func ParseManifest(dir string) (*Manifest, error) {
	manifestPath := filepath.Join(dir, ManifestFile)

	data, err := os.ReadFile(manifestPath)
	if err != nil {
		return nil, &ManifestNotFoundError{
			Path: manifestPath,
			Err:  err,
		}
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, &ManifestParseError{
			Path: manifestPath,
			Err:  err,
		}
	}

	m.dir = dir

	// Validate manifest
	if err := m.Validate(); err != nil {
		return nil, err
	}

	return &m, nil
}

// Validate checks manifest fields and that every listed file exists.
func (m *Manifest) Validate() error {
	if m.Version == "" {
		return m.invalid("version", "version is required")
	}

	switch m.Variant {
	case VariantInt4, VariantInt8:
	default:
		return m.invalid("variant",
			fmt.Sprintf("unsupported variant: %q (must be one of: %s, %s)", m.Variant, VariantInt4, VariantInt8))
	}

	seen := make(map[Name]bool, len(m.Assets))
	for i, e := range m.Assets {
		field := "assets[" + strconv.Itoa(i) + "]"
		switch {
		case !e.Name.Known():
			return m.invalid(field+".name", fmt.Sprintf("unknown asset: %q", e.Name))
		case seen[e.Name]:
			return m.invalid(field+".name", fmt.Sprintf("duplicate asset: %q", e.Name))
		case e.File == "":
			return m.invalid(field+".file", "file is required")
		case e.Size <= 0:
			return m.invalid(field+".size", "size must be positive")
		case !validDigest(e.SHA256):
			return m.invalid(field+".sha256", "sha256 must be 64 hex digits")
		}
		seen[e.Name] = true

		if _, err := os.Stat(m.FilePath(e)); os.IsNotExist(err) {
			return &AssetFileNotFoundError{
				ManifestPath: m.Path(),
				File:         e.File,
			}
		}
	}

	return nil
}

func (m *Manifest) invalid(field, message string) error {
	return &ManifestValidationError{
		Path:    m.Path(),
		Field:   field,
		Message: message,
	}
}

// Path returns the manifest file path.
func (m *Manifest) Path() string {
	return filepath.Join(m.dir, ManifestFile)
}

// Dir returns the directory containing the manifest.
func (m *Manifest) Dir() string {
	return m.dir
}

// FilePath returns the path of an entry's file.
func (m *Manifest) FilePath(e Entry) string {
	return filepath.Join(m.dir, e.File)
}

// Entry returns the record for name.
func (m *Manifest) Entry(name Name) (Entry, bool) {
	for _, e := range m.Assets {
		if e.Name == name {
			return e, true
		}
	}
	return Entry{}, false
}

// Load reads every listed file into a new registry. Assets the manifest
// does not list are registered empty.
func (m *Manifest) Load(logger *zap.Logger) (*Registry, error) {
	reg := NewRegistry(logger)
	for _, name := range names {
		asset := &Asset{Name: name}
		if e, ok := m.Entry(name); ok {
			data, err := os.ReadFile(m.FilePath(e))
			if err != nil {
				return nil, &AssetLoadError{Name: name, Err: err}
			}
			asset.File = e.File
			asset.Data = data
		}
		if err := reg.Register(asset); err != nil {
			return nil, err
		}
	}
	return reg, nil
}

// Verify checks a registry against the manifest. Every non-empty asset must
// be listed with its exact size and digest; empty assets were excluded from
// the build and are not checked. All problems are reported together.
func (m *Manifest) Verify(reg *Registry) error {
	var errs []error
	for _, asset := range reg.List() {
		if asset.Empty() {
			continue
		}
		e, ok := m.Entry(asset.Name)
		if !ok {
			errs = append(errs, &AssetNotFoundError{Name: asset.Name, Where: m.Path()})
			continue
		}
		if e.Size != asset.Size() {
			errs = append(errs, &AssetMismatchError{
				Name:  asset.Name,
				Field: "size",
				Want:  strconv.Itoa(e.Size),
				Got:   strconv.Itoa(asset.Size()),
			})
			continue
		}
		if got := Digest(asset.Data); !strings.EqualFold(got, e.SHA256) {
			errs = append(errs, &AssetMismatchError{
				Name:  asset.Name,
				Field: "sha256",
				Want:  e.SHA256,
				Got:   got,
			})
		}
	}
	return errors.Join(errs...)
}

// Digest returns the lowercase hex SHA-256 of data.
func Digest(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

func validDigest(s string) bool {
	if len(s) != sha256.Size*2 {
		return false
	}
	_, err := hex.DecodeString(s)
	return err == nil
}
