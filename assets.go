package wiki2md

import (
	"errors"

	"github.com/alnah/go-wiki2md/internal/assets"
)

// DefaultStyle is the name of the built-in preview stylesheet.
const DefaultStyle = assets.DefaultStyleName

// StyleLoader defines the contract for loading preview stylesheets.
// Implementations may load from filesystem, embedded assets, a database, etc.
//
// NewAssetLoader provides filesystem-based loading with fallback to the
// embedded styles. Implement this interface for custom backends.
type StyleLoader interface {
	// LoadStyle loads a CSS style by name (without .css extension).
	// Returns ErrStyleNotFound if the style doesn't exist.
	LoadStyle(name string) (string, error)
}

// NewAssetLoader creates a StyleLoader for the given base path.
// If basePath is empty, only the embedded styles are available.
// Otherwise styles/{name}.css under basePath takes precedence.
//
// Returns ErrInvalidAssetPath if basePath is set but not a readable directory.
func NewAssetLoader(basePath string) (StyleLoader, error) {
	resolver, err := assets.NewAssetResolver(basePath)
	if err != nil {
		return nil, convertAssetError(err)
	}
	return &styleLoaderAdapter{resolver: resolver}, nil
}

// EmbeddedStyles returns the names of the built-in styles, sorted.
func EmbeddedStyles() []string {
	return assets.NewEmbeddedLoader().StyleNames()
}

// styleLoaderAdapter maps internal errors to public sentinels.
type styleLoaderAdapter struct {
	resolver *assets.AssetResolver
}

func (a *styleLoaderAdapter) LoadStyle(name string) (string, error) {
	content, err := a.resolver.LoadStyle(name)
	if err != nil {
		return "", convertAssetError(err)
	}
	return content, nil
}

// convertAssetError maps internal asset errors to public errors.
func convertAssetError(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, ErrStyleNotFound), errors.Is(err, ErrInvalidAssetPath):
		return err
	case errors.Is(err, assets.ErrStyleNotFound):
		return wrapError(ErrStyleNotFound, err)
	case errors.Is(err, assets.ErrInvalidBasePath):
		return wrapError(ErrInvalidAssetPath, err)
	case errors.Is(err, assets.ErrPathTraversal):
		return wrapError(ErrInvalidAssetPath, err)
	case errors.Is(err, assets.ErrInvalidAssetName):
		return wrapError(ErrStyleNotFound, err) // invalid name means not found
	default:
		return err
	}
}

// wrapError keeps the original message and matches the public sentinel
// with errors.Is.
func wrapError(sentinel, original error) error {
	return &wrappedAssetError{sentinel: sentinel, original: original}
}

type wrappedAssetError struct {
	sentinel error
	original error
}

func (e *wrappedAssetError) Error() string {
	return e.original.Error()
}

// Unwrap returns the public sentinel. Internal errors stay hidden.
func (e *wrappedAssetError) Unwrap() error {
	return e.sentinel
}
