package pipeline

import (
	"regexp"
	"strings"
)

// Labels with special handling.
const (
	SubjectLabel = "Fagkode"
	WebsiteLabel = "Nettside"
	excludedKey  = "fork"
)

// labelVocabulary maps infobox field keys to display labels. Replacements
// apply to the key as substrings, in this order.
var labelVocabulary = []struct{ key, label string }{
	{"kode", SubjectLabel},
	{"navn", "Navn"},
	{"obl", "Obligatorisk for"},
	{"foreleser", "Foreleser"},
	{"lab", "Lab"},
	{"bok", "Lærebok"},
	{"ov", "Øvinger"},
	{"eksamen", "Eksamen"},
	{"nettside", WebsiteLabel},
}

// urlPattern finds bare web addresses, Norwegian letters included.
var urlPattern = regexp.MustCompile(`(?:https?://)?(?:www\.)?[-øæåØÆÅa-zA-Z0-9@:%._+~#=]{2,256}\.[øæåØÆÅa-z]{2,6}[-a-zøæåØÆÅA-Z0-9@:%_+.~#?&/=]*`)

// InfoEntry is one labelled infobox field.
type InfoEntry struct {
	Label string
	Value string
}

// InfoTable holds the fields of the first infobox of a document, in source order.
type InfoTable struct {
	Entries []InfoEntry
	Found   bool
}

// Subject returns the value of the first Fagkode entry, or "" if there is none.
func (t InfoTable) Subject() string {
	for _, e := range t.Entries {
		if e.Label == SubjectLabel {
			return e.Value
		}
	}
	return ""
}

// Rows returns the entries rendered as table rows: all but the first.
// The subject entry is left out only when it is the first one.
func (t InfoTable) Rows() []InfoEntry {
	if len(t.Entries) < 2 {
		return nil
	}
	return t.Entries[1:]
}

// Render returns the Markdown table fragment for t.
func (t InfoTable) Render() string {
	var b strings.Builder
	b.WriteString("Fakta|")
	b.WriteString(t.Subject())
	b.WriteString("\n---|---\n")
	for _, row := range t.Rows() {
		b.WriteString(" ")
		b.WriteString(row.Label)
		b.WriteString(" | ")
		b.WriteString(row.Value)
		b.WriteString("\n")
	}
	b.WriteString("\n")
	return b.String()
}

// NormalizeLabel maps a raw field key to its display label.
func NormalizeLabel(key string) string {
	for _, v := range labelVocabulary {
		key = strings.ReplaceAll(key, v.key, v.label)
	}
	return key
}

// parseInfoSegment reads one pipe-separated key=value segment. Segments
// without "=" and the excluded key are rejected. Key and value are taken
// as written, surrounding spaces included; the value ends at the next "=".
func parseInfoSegment(segment string) (InfoEntry, bool) {
	if !strings.Contains(segment, "=") {
		return InfoEntry{}, false
	}
	fields := strings.Split(segment, "=")
	key, value := fields[0], fields[1]
	if key == excludedKey {
		return InfoEntry{}, false
	}
	label := NormalizeLabel(key)
	if label == WebsiteLabel {
		value = wrapURLs(value)
	}
	return InfoEntry{Label: label, Value: value}, true
}

// wrapURLs puts every address in value inside angle brackets. Values that
// already hold autolinks are left alone.
func wrapURLs(value string) string {
	if strings.Contains(value, "<") {
		return value
	}
	return urlPattern.ReplaceAllString(value, "<${0}>")
}

// infoboxPattern builds the splice pattern for the given template names:
// from the opener to the first closing marker, across lines.
func infoboxPattern(templates []string) *regexp.Regexp {
	names := make([]string, len(templates))
	for i, name := range templates {
		names[i] = regexp.QuoteMeta(name)
	}
	return regexp.MustCompile(`(?s)\{\{(?:` + strings.Join(names, "|") + `).*?\}\}`)
}

// SubstituteInfoTable replaces the first infobox block in content with the
// rendered table. Later blocks stay as they are.
func SubstituteInfoTable(content string, table InfoTable, pattern *regexp.Regexp) string {
	if !table.Found {
		return content
	}
	return spliceFirst(content, pattern, table.Render())
}

// spliceFirst replaces the first match of pattern with fragment, verbatim.
func spliceFirst(content string, pattern *regexp.Regexp, fragment string) string {
	loc := pattern.FindStringIndex(content)
	if loc == nil {
		return content
	}
	return content[:loc[0]] + fragment + content[loc[1]:]
}
