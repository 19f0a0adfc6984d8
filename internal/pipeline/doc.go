// Package pipeline implements the MediaWiki-to-Markdown conversion passes.
//
// A conversion runs these stages over one text buffer:
//   - Inline rewriting: ordered regex substitutions (lists, emphasis, links,
//     images, headers, math, categories, strikethrough, book links)
//   - Block scanning: one pass over the lines with two small state machines
//     capturing the first infobox template and the first poem block
//   - Infobox rendering: a two-column Markdown table spliced in place of the
//     template
//   - Poem re-emission: verse lines with hard breaks spliced in place of the
//     quoted block
//
// The package also holds the optional stages used around the core: input
// normalization, YAML front matter and the sanitized HTML preview.
//
// Only the first infobox and the first poem of a document are rendered.
// Later blocks are left in the output as written.
package pipeline
