package pipeline

import (
	"slices"
	"strings"
	"testing"
)

func TestRewriteInline(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "list bullet gets a space",
			input: "*item",
			want:  "* item",
		},
		{
			name:  "list bullets on several lines",
			input: "*en\n*to\n* tre",
			want:  "* en\n* to\n* tre",
		},
		{
			name:  "asterisk inside a line is kept",
			input: "3*4 = 12",
			want:  "3*4 = 12",
		},
		{
			name:  "bold",
			input: "'''bold'''",
			want:  "**bold**",
		},
		{
			name:  "weblink",
			input: "[http://example.com Example]",
			want:  "[Example](http://example.com)",
		},
		{
			name:  "weblink with several words",
			input: "Se [https://www.ntnu.no/studier Studier ved NTNU] for mer.",
			want:  "Se [Studier ved NTNU](https://www.ntnu.no/studier) for mer.",
		},
		{
			name:  "internal link is not a weblink",
			input: "[[Matematikk 1]]",
			want:  "[[Matematikk 1]]",
		},
		{
			name:  "image directive",
			input: "[[Bilde:graf.png|300px|right|thumb|Grafen til f]]",
			want:  "[image:1 align:right width:300]\n\tGrafen til f\n",
		},
		{
			name:  "image directive in another namespace passes through",
			input: "[[File:kurve.jpg|120px|left|mini|Kurve]]",
			want:  "[[File:kurve.jpg|120px|left|mini|Kurve]]",
		},
		{
			name:  "image directive in Fil namespace passes through",
			input: "[[Fil:kurve.jpg|120px|left|mini|Kurve]]",
			want:  "[[Fil:kurve.jpg|120px|left|mini|Kurve]]",
		},
		{
			name:  "level 2 header",
			input: "== Title ==",
			want:  "## Title",
		},
		{
			name:  "level 3 header",
			input: "=== Pensum ===",
			want:  "### Pensum",
		},
		{
			name:  "level 6 header",
			input: "====== Dypt ======",
			want:  "###### Dypt",
		},
		{
			name:  "block math with trailing period",
			input: ":<math>x^2</math>.",
			want:  "\n$$ x^2 $$\n$~$\n",
		},
		{
			name:  "block math with trailing comma",
			input: ":<math>a+b</math> ,",
			want:  "\n$$ a+b $$\n$~$\n",
		},
		{
			name:  "inline math",
			input: "Vi har <math>a+b</math> her",
			want:  "Vi har $ a+b $ her",
		},
		{
			name:  "norwegian category",
			input: "Tekst\n[[Kategori:Fag]]",
			want:  "Tekst\n",
		},
		{
			name:  "english category",
			input: "[[Category:Foo]]",
			want:  "",
		},
		{
			name:  "strikethrough",
			input: "<del>gammel info</del>",
			want:  "(Utdatert) gammel info",
		},
		{
			name:  "strikethrough across lines",
			input: "<del>første\nandre</del>",
			want:  "(Utdatert) første\nandre",
		},
		{
			name:  "book link",
			input: "{{Boklink|forfatter=Knuth|tittel=The Art of Computer Programming}}",
			want:  "[Knuth: *The Art of Computer Programming*]([Knuth: The Art of Computer Programming])",
		},
		{
			name:  "malformed image passes through",
			input: "[[Bilde:graf.png|right]]",
			want:  "[[Bilde:graf.png|right]]",
		},
		{
			name:  "unterminated math passes through",
			input: "<math>x^2",
			want:  "<math>x^2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := RewriteInline(tt.input)
			if got != tt.want {
				t.Errorf("RewriteInline(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestRewriteInline_Identity(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"",
		"Plain text.",
		"Første linje\nAndre linje med æøå og ÆØÅ.\n",
		"3 * 4 = 12, and a = b.",
		"Markdown already: **bold** and [label](http://example.com).",
		"  indented\n\n\nspaced",
	}

	for _, input := range inputs {
		if got := RewriteInline(input); got != input {
			t.Errorf("RewriteInline(%q) = %q, want unchanged", input, got)
		}
	}
}

func TestRewriteInline_CategoriesRemovedInOnePass(t *testing.T) {
	t.Parallel()

	input := "Innhold\n[[Kategori:Fag]]\n[[Category:Foo]]\nMer innhold"
	got := RewriteInline(input)

	for _, unwanted := range []string{"Kategori", "Category", "Foo", "[[", "]]"} {
		if strings.Contains(got, unwanted) {
			t.Errorf("RewriteInline() = %q, still contains %q", got, unwanted)
		}
	}
	if !strings.Contains(got, "Innhold") || !strings.Contains(got, "Mer innhold") {
		t.Errorf("RewriteInline() = %q, lost surrounding text", got)
	}
}

func TestInlineRules_Order(t *testing.T) {
	t.Parallel()

	want := []string{
		"list", "bold", "weblink", "image", "header",
		"block-math", "inline-math", "category", "strikethrough", "book-link",
	}

	rules := InlineRules()
	got := make([]string, len(rules))
	for i, r := range rules {
		got[i] = r.Name
	}
	if !slices.Equal(got, want) {
		t.Errorf("InlineRules() names = %v, want %v", got, want)
	}

	// The returned slice is a copy.
	rules[0] = InlineRule{Name: "changed"}
	if InlineRules()[0].Name != "list" {
		t.Error("InlineRules() exposes the internal rule table")
	}
}
