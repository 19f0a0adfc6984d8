package assets

import (
	"fmt"
	"strings"
)

// DefaultStyleName is the built-in preview style.
const DefaultStyleName = "default"

// maxStyleNameLength bounds style names taken from config and flags.
const maxStyleNameLength = 64

// StyleLoader defines the contract for loading preview stylesheets.
type StyleLoader interface {
	// LoadStyle loads a CSS style by name (without .css extension).
	// Returns ErrStyleNotFound if the style doesn't exist.
	// Returns ErrInvalidAssetName if the name contains invalid characters.
	LoadStyle(name string) (string, error)
}

// ValidateAssetName checks that a style name is safe for use as a filename:
// non-empty, short, and free of path separators and dots.
func ValidateAssetName(name string) error {
	switch {
	case name == "":
		return fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	case len(name) > maxStyleNameLength:
		return fmt.Errorf("%w: longer than %d characters", ErrInvalidAssetName, maxStyleNameLength)
	case strings.ContainsAny(name, "/\\.\x00"):
		return fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
	}
	return nil
}
