package pipeline

import (
	"context"
	"html"
	"strings"
)

// HeadInjector defines the contract for filling the <head> of a preview.
type HeadInjector interface {
	InjectCSS(ctx context.Context, htmlContent, cssContent string) string
	InjectTitle(ctx context.Context, htmlContent, title string) string
}

// HeadInjection injects a stylesheet and a page title into preview HTML.
type HeadInjection struct{}

// InjectCSS inserts a <style> block into HTML content.
// Tries </head> first, then <body>, then prepends to the HTML.
func (h *HeadInjection) InjectCSS(ctx context.Context, htmlContent, cssContent string) string {
	if cssContent == "" || ctx.Err() != nil {
		return htmlContent
	}

	styleBlock := "<style>" + sanitizeCSS(cssContent) + "</style>"
	lowerHTML := strings.ToLower(htmlContent)

	if idx := strings.Index(lowerHTML, "</head>"); idx != -1 {
		return htmlContent[:idx] + styleBlock + htmlContent[idx:]
	}

	if idx := strings.Index(lowerHTML, "<body"); idx != -1 {
		if closeIdx := strings.Index(htmlContent[idx:], ">"); closeIdx != -1 {
			insertPos := idx + closeIdx + 1
			return htmlContent[:insertPos] + styleBlock + htmlContent[insertPos:]
		}
	}

	return styleBlock + htmlContent
}

// InjectTitle replaces the content of the first <title> element.
// HTML without a <title> is returned unchanged.
func (h *HeadInjection) InjectTitle(ctx context.Context, htmlContent, title string) string {
	if title == "" || ctx.Err() != nil {
		return htmlContent
	}

	lowerHTML := strings.ToLower(htmlContent)
	start := strings.Index(lowerHTML, "<title>")
	if start == -1 {
		return htmlContent
	}
	start += len("<title>")
	end := strings.Index(lowerHTML[start:], "</title>")
	if end == -1 {
		return htmlContent
	}

	return htmlContent[:start] + html.EscapeString(title) + htmlContent[start+end:]
}

// sanitizeCSS escapes </ so the stylesheet cannot close the <style> block.
func sanitizeCSS(css string) string {
	return strings.ReplaceAll(css, "</", `<\/`)
}
