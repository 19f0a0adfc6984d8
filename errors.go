package wiki2md

import (
	"errors"

	"github.com/alnah/go-wiki2md/internal/pipeline"
)

// Sentinel errors for library operations.
var (
	ErrInputTooLarge     = errors.New("wikitext exceeds maximum size")
	ErrPreviewConversion = errors.New("HTML preview conversion failed")
	ErrFrontMatter       = pipeline.ErrFrontMatter

	// Option validation errors.
	ErrInvalidTemplateName = errors.New("invalid infobox template name")

	// Asset loading errors.
	ErrStyleNotFound    = errors.New("style not found")
	ErrInvalidAssetPath = errors.New("invalid asset path")
)
