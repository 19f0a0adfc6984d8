package pipeline

import (
	"regexp"
	"slices"
)

// Result is the output of one wikitext conversion.
type Result struct {
	Markdown string
	Table    InfoTable
	Poem     Poem
}

// WikiTextConverter rewrites MediaWiki markup into Markdown. It holds only
// read-only state and is safe for concurrent use.
type WikiTextConverter struct {
	templates []string
	infobox   *regexp.Regexp
}

// NewWikiTextConverter returns a converter recognizing the given infobox
// template names. With no names, DefaultInfoboxTemplate is used.
// Names must be non-empty; callers validate them.
func NewWikiTextConverter(templates ...string) *WikiTextConverter {
	if len(templates) == 0 {
		templates = []string{DefaultInfoboxTemplate}
	}
	templates = slices.Clone(templates)
	return &WikiTextConverter{
		templates: templates,
		infobox:   infoboxPattern(templates),
	}
}

// Templates returns the recognized infobox template names.
func (c *WikiTextConverter) Templates() []string {
	return slices.Clone(c.templates)
}

// Convert runs the passes in order: inline rewriting, block scanning, then
// table and poem substitution. The last two touch disjoint regions.
func (c *WikiTextConverter) Convert(wikitext string) Result {
	content := RewriteInline(wikitext)
	scan := ScanBlocks(content, c.templates)

	content = SubstitutePoem(content, scan.Poem)
	content = SubstituteInfoTable(content, scan.Table, c.infobox)

	return Result{
		Markdown: content,
		Table:    scan.Table,
		Poem:     scan.Poem,
	}
}
