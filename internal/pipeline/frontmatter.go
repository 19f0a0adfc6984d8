package pipeline

import (
	"errors"
	"fmt"

	"github.com/alnah/go-wiki2md/internal/yamlutil"
)

// ErrFrontMatter indicates the front matter block could not be encoded.
var ErrFrontMatter = errors.New("front matter encoding failed")

// FrontMatter is the metadata written ahead of a converted document.
// Field order is the output order.
type FrontMatter struct {
	Title    string   `yaml:"title,omitempty"`
	Subject  string   `yaml:"subject,omitempty"`
	Category string   `yaml:"category,omitempty"`
	Tags     []string `yaml:"tags,omitempty,flow"`
	Redirect bool     `yaml:"redirect,omitempty"`
}

// IsZero reports whether f carries no field.
func (f FrontMatter) IsZero() bool {
	return f.Title == "" && f.Subject == "" && f.Category == "" && len(f.Tags) == 0 && !f.Redirect
}

// PrependFrontMatter writes f as a YAML block before markdown.
// An empty f leaves markdown unchanged.
func PrependFrontMatter(markdown string, f FrontMatter) (string, error) {
	if f.IsZero() {
		return markdown, nil
	}
	block, err := yamlutil.MarshalFrontMatter(f)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrFrontMatter, err)
	}
	return string(block) + "\n" + markdown, nil
}
