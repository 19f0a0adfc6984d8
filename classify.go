package wiki2md

import (
	"regexp"
	"slices"
	"strings"

	"github.com/goliatone/go-slug"
)

// Reserved routing buckets.
const (
	// IgnoreBucket is returned for redirect pages.
	IgnoreBucket = "ignore"
	// SubjectBucket absorbs every tag mentioning a subject ("fag").
	SubjectBucket = "fag"
)

var (
	// categoryDirective matches one category directive. Directives on the
	// same line are matched separately.
	categoryDirective = regexp.MustCompile(`\[\[[^\]]*(?:Kategori|Category)[^\]]*\]\]`)

	// categoryLine matches a directive line including its newline.
	categoryLine = regexp.MustCompile(`\[\[.*(?:Category|Kategori).*\]\]\n`)

	// Redirect markers are matched case-sensitively.
	redirectPattern = regexp.MustCompile(`#(?:REDIRECT|OMDIRIGERING)`)

	namespaceReplacer = strings.NewReplacer(
		"[[Kategori:", "",
		"[[Category:", "",
		"]]", "",
		"ø", "o",
		"Ø", "O",
	)
)

// DetectCategories returns the category tags of wikitext in source order.
// A tag is the directive's name, before any sort key, as a lowercase slug
// with underscores.
func DetectCategories(wikitext string) []string {
	directives := categoryDirective.FindAllString(wikitext, -1)
	if len(directives) == 0 {
		return nil
	}

	tags := make([]string, 0, len(directives))
	for _, d := range directives {
		if tag, ok := categoryTag(d); ok {
			tags = append(tags, tag)
		}
	}
	return tags
}

func categoryTag(directive string) (string, bool) {
	name, _, _ := strings.Cut(namespaceReplacer.Replace(directive), "|")
	normalized, err := slug.Normalize(name)
	if err != nil || normalized == "" {
		return "", false
	}
	return strings.ReplaceAll(normalized, "-", "_"), true
}

// IsRedirect reports whether wikitext is a redirect page.
func IsRedirect(wikitext string) bool {
	return redirectPattern.MatchString(wikitext)
}

// StripCategoryLines removes every line holding a category directive,
// newline included. A directive on the last line without a trailing
// newline is kept.
func StripCategoryLines(wikitext string) string {
	return categoryLine.ReplaceAllLiteralString(wikitext, "")
}

// Classifier routes pages into buckets by their category tags.
type Classifier struct {
	// Buckets lists the known bucket names.
	Buckets []string
	// Default is used when no tag names a known bucket.
	Default string
}

// Classify returns the bucket for wikitext. Redirects go to IgnoreBucket.
// When several tags name known buckets, the last one wins.
func (c Classifier) Classify(wikitext string) string {
	if IsRedirect(wikitext) {
		return IgnoreBucket
	}
	bucket := c.Default
	for _, tag := range DetectCategories(wikitext) {
		if strings.Contains(tag, SubjectBucket) {
			tag = SubjectBucket
		}
		if slices.Contains(c.Buckets, tag) {
			bucket = tag
		}
	}
	return bucket
}

// IsZero reports whether c has neither buckets nor a default.
func (c Classifier) IsZero() bool {
	return len(c.Buckets) == 0 && c.Default == ""
}

func (c Classifier) clone() Classifier {
	return Classifier{Buckets: slices.Clone(c.Buckets), Default: c.Default}
}
