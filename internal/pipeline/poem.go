package pipeline

import (
	"regexp"
	"strings"
)

// hardBreak ends every re-emitted poem line.
const hardBreak = "  \n"

// poemBlockPattern matches the first quoted-verse block, across lines.
var poemBlockPattern = regexp.MustCompile(`(?s)<blockquote><poem>.*?</poem></blockquote>`)

// Poem holds the lines of the first poem block, wrapper tokens removed.
type Poem struct {
	Lines []string
	Found bool
}

// Render returns the poem with a hard line break after every line.
func (p Poem) Render() string {
	var b strings.Builder
	for _, line := range p.Lines {
		b.WriteString(line)
		b.WriteString(hardBreak)
	}
	return b.String()
}

// SubstitutePoem replaces the first poem block in content with the
// re-flowed lines.
func SubstitutePoem(content string, poem Poem) string {
	if !poem.Found || len(poem.Lines) == 0 {
		return content
	}
	return spliceFirst(content, poemBlockPattern, poem.Render())
}
