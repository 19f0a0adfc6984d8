package pipeline

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/dlclark/regexp2"
)

// weblinkTimeout bounds a single weblink match. regexp2 backtracks, unlike
// the standard library engine.
const weblinkTimeout = 2 * time.Second

// Precompiled inline patterns, in application order.
var (
	// Line-leading bullet glued to its text: "*item"
	listPattern = regexp.MustCompile(`(?m)^\*([^ ])`)

	// Bold emphasis: '''text'''
	boldPattern = regexp.MustCompile(`'''`)

	// Single-bracket weblink not part of a [[...]] directive: [URL label]
	weblinkPattern = mustCompileWeblink(`(?<!\[)\[([^ \[]+) ([^\]]+)\](?!\])`)

	// Image directive with width, alignment and caption fields. Only the
	// Norwegian namespace is recognized.
	imagePattern = regexp.MustCompile(`\[\[Bilde:(.+\..+)\|(\d+)px\|(.+)\|(.+)\|(.+)\]\]`)

	// Headers from level 6 down to level 2
	headerPatterns = compileHeaderPatterns()

	// Display math on its own indented line, with optional trailing punctuation
	blockMathPattern = regexp.MustCompile(`:<math>(.+?)</math> ?[,.]?`)

	// Inline math
	inlineMathPattern = regexp.MustCompile(`<math>(.+?)</math>`)

	// Category directives: [[Kategori:...]] and [[Category:...]]
	categoryPattern = regexp.MustCompile(`\[\[(Kategori|Category).*\]\]`)

	// Struck-through span, greedy across lines
	strikePattern = regexp.MustCompile(`(?s)<del>(.*)</del>`)

	// Book link template
	bookLinkPattern = regexp.MustCompile(`\{\{Boklink\|forfatter=([^|]+)\|tittel=([^}]+)\}\}`)
)

// headerPattern pairs a compiled header pattern with its Markdown prefix.
type headerPattern struct {
	re     *regexp.Regexp
	prefix string
}

func compileHeaderPatterns() []headerPattern {
	patterns := make([]headerPattern, 0, 5)
	for level := 6; level >= 2; level-- {
		marks := strings.Repeat("=", level)
		patterns = append(patterns, headerPattern{
			re:     regexp.MustCompile(marks + ` (.+) ` + marks),
			prefix: strings.Repeat("#", level),
		})
	}
	return patterns
}

func mustCompileWeblink(expr string) *regexp2.Regexp {
	re := regexp2.MustCompile(expr, regexp2.None)
	re.MatchTimeout = weblinkTimeout
	return re
}

// InlineRule is one named text substitution of the inline pass.
type InlineRule struct {
	Name  string
	Apply func(string) string
}

// inlineRules is the fixed rule order. Each rule sees the output of the
// previous one.
var inlineRules = []InlineRule{
	{Name: "list", Apply: rewriteLists},
	{Name: "bold", Apply: rewriteBold},
	{Name: "weblink", Apply: rewriteWeblinks},
	{Name: "image", Apply: rewriteImages},
	{Name: "header", Apply: rewriteHeaders},
	{Name: "block-math", Apply: rewriteBlockMath},
	{Name: "inline-math", Apply: rewriteInlineMath},
	{Name: "category", Apply: StripCategories},
	{Name: "strikethrough", Apply: rewriteStrikethrough},
	{Name: "book-link", Apply: rewriteBookLinks},
}

// InlineRules returns the inline substitutions in application order.
func InlineRules() []InlineRule {
	rules := make([]InlineRule, len(inlineRules))
	copy(rules, inlineRules)
	return rules
}

// RewriteInline applies every inline rule to content, in order.
func RewriteInline(content string) string {
	for _, rule := range inlineRules {
		content = rule.Apply(content)
	}
	return content
}

func rewriteLists(content string) string {
	return listPattern.ReplaceAllString(content, "* ${1}")
}

func rewriteBold(content string) string {
	return boldPattern.ReplaceAllLiteralString(content, "**")
}

// rewriteWeblinks turns [URL label] into [label](URL). On a match timeout
// the content is returned unchanged.
func rewriteWeblinks(content string) string {
	out, err := weblinkPattern.ReplaceFunc(content, func(m regexp2.Match) string {
		return fmt.Sprintf("[%s](%s)", m.GroupByNumber(2).String(), m.GroupByNumber(1).String())
	}, -1, -1)
	if err != nil {
		return content
	}
	return out
}

func rewriteImages(content string) string {
	return imagePattern.ReplaceAllString(content, "[image:1 align:${3} width:${2}]\n\t${5}\n")
}

func rewriteHeaders(content string) string {
	for _, h := range headerPatterns {
		content = h.re.ReplaceAllString(content, h.prefix+" ${1}")
	}
	return content
}

// rewriteBlockMath emits a display block followed by the $~$ continuation line.
func rewriteBlockMath(content string) string {
	return blockMathPattern.ReplaceAllString(content, "\n$$$$ ${1} $$$$\n$$~$$\n")
}

func rewriteInlineMath(content string) string {
	return inlineMathPattern.ReplaceAllString(content, "$$ ${1} $$")
}

// StripCategories deletes category directives from content. The category
// names are not kept.
func StripCategories(content string) string {
	return categoryPattern.ReplaceAllLiteralString(content, "")
}

func rewriteStrikethrough(content string) string {
	return strikePattern.ReplaceAllString(content, "(Utdatert) ${1}")
}

// rewriteBookLinks renders the book template as a link whose target is the
// bracketed plain text. The target is a placeholder until catalog links exist.
func rewriteBookLinks(content string) string {
	return bookLinkPattern.ReplaceAllString(content, "[${1}: *${2}*]([${1}: ${2}])")
}
