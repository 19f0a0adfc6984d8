// Package wiki2md converts MediaWiki markup to Markdown.
//
// # Quick Start
//
// For plain text in, text out, use the package-level function:
//
//	md := wiki2md.Convert("== Pensum ==\n*Kapittel 1")
//	// "## Pensum\n* Kapittel 1"
//
// To also get the extracted infobox, categories and an HTML preview, create
// a Converter:
//
//	conv, err := wiki2md.NewConverter(
//	    wiki2md.WithFrontMatter(true),
//	    wiki2md.WithPreview(true),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := conv.Convert(ctx, wiki2md.Input{
//	    Wikitext: page,
//	    Title:    "Matematikk 1",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("matematikk-1.md", []byte(result.Markdown), 0o644)
//
// # Conversion Pipeline
//
//  1. Input normalization (optional: line endings, Unicode NFC)
//  2. Inline rewriting: lists, bold, weblinks, images, headers, display and
//     inline math, category removal, strikethrough, book links
//  3. Block scanning for the first infobox template and the first poem block
//  4. Infobox rendered as a "Fakta" table, poem re-emitted with hard breaks
//  5. Front matter and HTML preview (optional)
//
// Only the first infobox and the first poem of a page are rendered. Later
// blocks stay in the output as written.
//
// # Categories and Routing
//
// Category directives are removed from the Markdown. DetectCategories and
// Classifier read them from the original wikitext so callers can route pages:
//
//	c := wiki2md.Classifier{Buckets: []string{"fag", "studentliv"}, Default: "diverse"}
//	bucket := c.Classify(page) // "ignore" for redirects
//
// # Custom Styles
//
// Preview stylesheets are looked up by name in a custom directory first,
// then among the embedded styles:
//
//	loader, err := wiki2md.NewAssetLoader("/path/to/assets")
//	conv, err := wiki2md.NewConverter(
//	    wiki2md.WithAssetLoader(loader),
//	    wiki2md.WithStyle("wiki"),
//	)
//
// Asset directory structure:
//
//	assets/
//	└── styles/
//	    └── wiki.css
//
// # Concurrency
//
// Convert and a Converter are safe for concurrent use. Use ResolvePoolSize
// to size a worker group for batch conversion.
package wiki2md
