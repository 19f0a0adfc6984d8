package pipeline

import (
	"context"
	"regexp"

	"golang.org/x/text/unicode/norm"
)

// Line ending normalization
var crlfOrCR = regexp.MustCompile(`\r\n?`)

// InputNormalizer defines the contract for preparing raw wikitext.
type InputNormalizer interface {
	Normalize(ctx context.Context, content string) string
}

// WikitextNormalizer converts line endings to \n and composes Unicode to NFC,
// so that decomposed å/ø/æ match the rewrite patterns.
type WikitextNormalizer struct{}

// Normalize applies all normalizations to content.
func (n *WikitextNormalizer) Normalize(ctx context.Context, content string) string {
	if ctx.Err() != nil {
		return content
	}

	content = normalizeLineEndings(content)
	return norm.NFC.String(content)
}

// normalizeLineEndings converts \r\n and \r to \n.
func normalizeLineEndings(content string) string {
	return crlfOrCR.ReplaceAllString(content, "\n")
}
