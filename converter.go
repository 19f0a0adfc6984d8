package wiki2md

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/alnah/go-wiki2md/internal/assets"
	"github.com/alnah/go-wiki2md/internal/config"
	"github.com/alnah/go-wiki2md/internal/fileutil"
	"github.com/alnah/go-wiki2md/internal/pipeline"
)

// Compile-time interface implementation checks.
var (
	_ pipeline.InputNormalizer = (*pipeline.WikitextNormalizer)(nil)
	_ pipeline.HTMLConverter   = (*pipeline.GoldmarkConverter)(nil)
	_ pipeline.HeadInjector    = (*pipeline.HeadInjection)(nil)
)

// defaultConverter backs the package-level Convert function.
var defaultConverter = pipeline.NewWikiTextConverter()

// Convert rewrites MediaWiki markup to Markdown with the default infobox
// template. It never fails: unrecognized markup passes through unchanged.
func Convert(wikitext string) string {
	return defaultConverter.Convert(wikitext).Markdown
}

// Converter orchestrates the wikitext-to-Markdown pipeline.
// Create with NewConverter. A Converter is safe for concurrent use.
type Converter struct {
	cfg               converterConfig
	styleLoader       assets.StyleLoader
	publicStyleLoader StyleLoader
	classifier        Classifier
	wikitext          *pipeline.WikiTextConverter
	normalizer        pipeline.InputNormalizer
	htmlConverter     pipeline.HTMLConverter
	headInjector      pipeline.HeadInjector
}

// publicToInternalAdapter wraps a public StyleLoader as an internal one.
type publicToInternalAdapter struct {
	pub StyleLoader
}

func (a *publicToInternalAdapter) LoadStyle(name string) (string, error) {
	return a.pub.LoadStyle(name)
}

// NewConverter creates a Converter. Without options it behaves like the
// package-level Convert and fills the extracted fields of ConvertResult.
// Returns an error if a template name is invalid or the style cannot be loaded.
func NewConverter(opts ...Option) (*Converter, error) {
	c := &Converter{
		cfg: converterConfig{
			maxInputSize: DefaultMaxInputSize,
		},
		styleLoader:   assets.NewEmbeddedLoader(),
		normalizer:    &pipeline.WikitextNormalizer{},
		htmlConverter: pipeline.NewGoldmarkConverter(),
		headInjector:  &pipeline.HeadInjection{},
	}

	for _, opt := range opts {
		opt(c)
	}

	for _, name := range c.cfg.templates {
		if err := config.ValidateTemplateName(name); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidTemplateName, err)
		}
	}
	c.wikitext = pipeline.NewWikiTextConverter(c.cfg.templates...)

	if c.cfg.assetPath != "" {
		resolver, err := assets.NewAssetResolver(c.cfg.assetPath)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidAssetPath, err)
		}
		c.styleLoader = resolver
	}

	if c.publicStyleLoader != nil {
		c.styleLoader = &publicToInternalAdapter{pub: c.publicStyleLoader}
	}

	if c.cfg.preview {
		if err := c.resolveStyle(); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// Templates returns the infobox template names recognized by c.
func (c *Converter) Templates() []string {
	return c.wikitext.Templates()
}

// Convert runs the pipeline on one page. The context is checked between
// stages. Recovers from internal panics to prevent crashes from propagating
// to callers.
func (c *Converter) Convert(ctx context.Context, input Input) (result *ConvertResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	if len(input.Wikitext) > c.cfg.maxInputSize {
		return nil, fmt.Errorf("%w: %d bytes (max %d)", ErrInputTooLarge, len(input.Wikitext), c.cfg.maxInputSize)
	}

	wikitext := input.Wikitext
	if c.cfg.normalize {
		wikitext = c.normalizer.Normalize(ctx, wikitext)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	converted := c.wikitext.Convert(wikitext)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	res := &ConvertResult{
		Markdown:   converted.Markdown,
		Subject:    converted.Table.Subject(),
		InfoTable:  toInfoEntries(converted.Table.Entries),
		Poem:       converted.Poem.Lines,
		Categories: DetectCategories(wikitext),
		Redirect:   IsRedirect(wikitext),
	}
	if !c.classifier.IsZero() {
		res.Category = c.classifier.Classify(wikitext)
	}

	if c.cfg.preview {
		html, err := c.renderPreview(ctx, res.Markdown, input.Title)
		if err != nil {
			return nil, err
		}
		res.HTML = []byte(html)
	}

	if c.cfg.frontMatter {
		res.Markdown, err = pipeline.PrependFrontMatter(res.Markdown, pipeline.FrontMatter{
			Title:    strings.TrimSpace(input.Title),
			Subject:  res.Subject,
			Category: res.Category,
			Tags:     res.Categories,
			Redirect: res.Redirect,
		})
		if err != nil {
			return nil, err
		}
	}

	return res, nil
}

// renderPreview converts the body to a styled, titled HTML document.
func (c *Converter) renderPreview(ctx context.Context, markdown, title string) (string, error) {
	htmlContent, err := c.htmlConverter.ToHTML(ctx, markdown)
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		return "", fmt.Errorf("%w: %v", ErrPreviewConversion, err)
	}

	htmlContent = c.headInjector.InjectTitle(ctx, htmlContent, title)
	htmlContent = c.headInjector.InjectCSS(ctx, htmlContent, c.cfg.resolvedStyle)
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return htmlContent, nil
}

// resolveStyle resolves the style input (name, path, or CSS content) to CSS
// content. An empty input selects the default embedded style.
func (c *Converter) resolveStyle() error {
	input := c.cfg.styleInput
	if input == "" {
		input = DefaultStyle
	}

	// File path? (contains / or \)
	if fileutil.IsFilePath(input) {
		content, err := os.ReadFile(input) // #nosec G304 -- user-provided path
		if err != nil {
			return fmt.Errorf("loading style file %q: %w", input, err)
		}
		c.cfg.resolvedStyle = string(content)
		return nil
	}

	// CSS content? (contains {)
	if fileutil.IsCSS(input) {
		c.cfg.resolvedStyle = input
		return nil
	}

	css, err := c.styleLoader.LoadStyle(input)
	if err != nil {
		return fmt.Errorf("loading style %q: %w", input, convertAssetError(err))
	}
	c.cfg.resolvedStyle = css
	return nil
}

func toInfoEntries(entries []pipeline.InfoEntry) []InfoEntry {
	if len(entries) == 0 {
		return nil
	}
	out := make([]InfoEntry, len(entries))
	for i, e := range entries {
		out[i] = InfoEntry(e)
	}
	return out
}
