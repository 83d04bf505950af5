package assets

import (
	"fmt"
)

// ManifestNotFoundError occurs when manifest.yaml is not found in a directory.
type ManifestNotFoundError struct {
	Path string
	Err  error
}

func (e *ManifestNotFoundError) Error() string {
	return fmt.Sprintf("asset manifest not found at '%s': %v", e.Path, e.Err)
}

func (e *ManifestNotFoundError) Unwrap() error {
	return e.Err
}

// ManifestParseError occurs when manifest.yaml cannot be parsed as valid YAML.
type ManifestParseError struct {
	Path string
	Err  error
}

func (e *ManifestParseError) Error() string {
	return fmt.Sprintf("failed to parse asset manifest at '%s': %v", e.Path, e.Err)
}

func (e *ManifestParseError) Unwrap() error {
	return e.Err
}

// ManifestValidationError occurs when manifest.yaml fails validation.
type ManifestValidationError struct {
	Path    string
	Field   string
	Message string
}

func (e *ManifestValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid asset manifest '%s': %s (field: %s)",
			e.Path, e.Message, e.Field)
	}
	return fmt.Sprintf("invalid asset manifest '%s': %s", e.Path, e.Message)
}

// AssetFileNotFoundError occurs when a file listed in the manifest doesn't exist.
type AssetFileNotFoundError struct {
	ManifestPath string
	File         string
}

func (e *AssetFileNotFoundError) Error() string {
	return fmt.Sprintf("asset file '%s' not found (referenced in manifest '%s')",
		e.File, e.ManifestPath)
}

// AssetLoadError occurs when an asset file cannot be read.
type AssetLoadError struct {
	Name Name
	Err  error
}

func (e *AssetLoadError) Error() string {
	return fmt.Sprintf("failed to load asset '%s': %v", e.Name, e.Err)
}

func (e *AssetLoadError) Unwrap() error {
	return e.Err
}

// AssetMismatchError occurs when an asset differs from its manifest entry.
type AssetMismatchError struct {
	Name  Name
	Field string // "size" or "sha256"
	Want  string
	Got   string
}

func (e *AssetMismatchError) Error() string {
	return fmt.Sprintf("asset '%s' %s mismatch: manifest has %s, got %s",
		e.Name, e.Field, e.Want, e.Got)
}

// AssetNotFoundError occurs when an asset is missing from a registry or manifest.
type AssetNotFoundError struct {
	Name  Name
	Where string
}

func (e *AssetNotFoundError) Error() string {
	return fmt.Sprintf("asset '%s' not found in %s", e.Name, e.Where)
}

// AssetAlreadyRegisteredError occurs when attempting to register a duplicate asset.
type AssetAlreadyRegisteredError struct {
	Name Name
}

func (e *AssetAlreadyRegisteredError) Error() string {
	return fmt.Sprintf("asset '%s' is already registered", e.Name)
}
