package wiki2md

import "slices"

// DefaultMaxInputSize bounds the wikitext accepted by Converter.Convert.
const DefaultMaxInputSize = 8 << 20

// Input contains conversion parameters.
type Input struct {
	Wikitext string // MediaWiki markup (may be empty)
	Title    string // Page title for front matter and preview (optional)
}

// InfoEntry is one labelled field of a page's infobox.
type InfoEntry struct {
	Label string
	Value string
}

// ConvertResult holds the converted page and the data extracted from it.
type ConvertResult struct {
	Markdown   string      // Converted body, with front matter when enabled
	Subject    string      // Fagkode of the infobox, "" if none
	InfoTable  []InfoEntry // Infobox fields in source order
	Poem       []string    // Lines of the first poem block
	Categories []string    // Category tags found in the wikitext
	Category   string      // Routing bucket from the classifier
	Redirect   bool        // The page is a redirect
	HTML       []byte      // Preview document when enabled
}

// Option configures a Converter.
type Option func(*Converter)

// converterConfig holds internal configuration for Converter.
type converterConfig struct {
	templates     []string
	normalize     bool
	frontMatter   bool
	preview       bool
	styleInput    string // name, path, or CSS content
	resolvedStyle string
	assetPath     string
	maxInputSize  int
}

// WithInfoboxTemplates sets the template names rendered as info tables.
// The default is Faginfo. Names are validated by NewConverter.
func WithInfoboxTemplates(names ...string) Option {
	return func(c *Converter) {
		c.cfg.templates = slices.Clone(names)
	}
}

// WithNormalization converts CRLF line endings and composes Unicode to NFC
// before conversion.
func WithNormalization(enabled bool) Option {
	return func(c *Converter) {
		c.cfg.normalize = enabled
	}
}

// WithFrontMatter prepends a YAML front matter block to the Markdown.
func WithFrontMatter(enabled bool) Option {
	return func(c *Converter) {
		c.cfg.frontMatter = enabled
	}
}

// WithPreview renders a sanitized HTML preview into ConvertResult.HTML.
func WithPreview(enabled bool) Option {
	return func(c *Converter) {
		c.cfg.preview = enabled
	}
}

// WithStyle sets the preview stylesheet: a style name, a file path, or CSS
// content.
func WithStyle(style string) Option {
	return func(c *Converter) {
		c.cfg.styleInput = style
	}
}

// WithAssetPath sets a directory searched for styles before the embedded ones.
func WithAssetPath(path string) Option {
	return func(c *Converter) {
		c.cfg.assetPath = path
	}
}

// WithAssetLoader sets a custom style loader. It takes precedence over
// WithAssetPath.
func WithAssetLoader(loader StyleLoader) Option {
	return func(c *Converter) {
		c.publicStyleLoader = loader
	}
}

// WithClassifier sets the classifier used to fill ConvertResult.Category.
func WithClassifier(classifier Classifier) Option {
	return func(c *Converter) {
		c.classifier = classifier.clone()
	}
}

// WithMaxInputSize bounds the accepted wikitext size in bytes.
// Panics if n <= 0 (programmer error).
func WithMaxInputSize(n int) Option {
	if n <= 0 {
		panic("wiki2md: WithMaxInputSize size must be positive")
	}
	return func(c *Converter) {
		c.cfg.maxInputSize = n
	}
}
