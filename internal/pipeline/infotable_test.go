package pipeline

import (
	"testing"
)

func TestNormalizeLabel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		key  string
		want string
	}{
		{"kode", "Fagkode"},
		{"navn", "Navn"},
		{"obl", "Obligatorisk for"},
		{"foreleser", "Foreleser"},
		{"lab", "Lab"},
		{"bok", "Lærebok"},
		{"ov", "Øvinger"},
		{"eksamen", "Eksamen"},
		{"nettside", "Nettside"},
		{"ukjent", "ukjent"},
		{"emnekode", "emneFagkode"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			t.Parallel()

			if got := NormalizeLabel(tt.key); got != tt.want {
				t.Errorf("NormalizeLabel(%q) = %q, want %q", tt.key, got, tt.want)
			}
		})
	}
}

func TestParseInfoSegment(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		segment string
		want    InfoEntry
		wantOK  bool
	}{
		{
			name:    "key and value",
			segment: "kode=TDT4100",
			want:    InfoEntry{Label: "Fagkode", Value: "TDT4100"},
			wantOK:  true,
		},
		{
			name:    "spaces are kept",
			segment: " navn = Objektorientert programmering ",
			want:    InfoEntry{Label: " Navn ", Value: " Objektorientert programmering "},
			wantOK:  true,
		},
		{
			name:    "value ends at the next equals sign",
			segment: "nettside=https://example.com/?a=b",
			want:    InfoEntry{Label: "Nettside", Value: "<https://example.com/?a>"},
			wantOK:  true,
		},
		{
			name:    "padded website key skips URL wrapping",
			segment: " nettside = ntnu.no",
			want:    InfoEntry{Label: " Nettside ", Value: " ntnu.no"},
			wantOK:  true,
		},
		{
			name:    "padded fork is kept",
			segment: " fork = x",
			want:    InfoEntry{Label: " fork ", Value: " x"},
			wantOK:  true,
		},
		{
			name:    "no equals",
			segment: "bare tekst",
			wantOK:  false,
		},
		{
			name:    "fork is excluded",
			segment: "fork=TDT",
			wantOK:  false,
		},
		{
			name:    "empty value",
			segment: "lab=",
			want:    InfoEntry{Label: "Lab", Value: ""},
			wantOK:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := parseInfoSegment(tt.segment)
			if ok != tt.wantOK {
				t.Fatalf("parseInfoSegment(%q) ok = %v, want %v", tt.segment, ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("parseInfoSegment(%q) = %+v, want %+v", tt.segment, got, tt.want)
			}
		})
	}
}

func TestWrapURLs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value string
		want  string
	}{
		{
			name:  "full URL",
			value: "https://www.ntnu.no/studier/emner/TDT4100",
			want:  "<https://www.ntnu.no/studier/emner/TDT4100>",
		},
		{
			name:  "bare domain",
			value: "ntnu.no",
			want:  "<ntnu.no>",
		},
		{
			name:  "URL inside text",
			value: "Se www.math.ntnu.no for info",
			want:  "Se <www.math.ntnu.no> for info",
		},
		{
			name:  "norwegian letters in the path",
			value: "http://wiki.abakus.no/øvinger",
			want:  "<http://wiki.abakus.no/øvinger>",
		},
		{
			name:  "already wrapped",
			value: "<https://ntnu.no>",
			want:  "<https://ntnu.no>",
		},
		{
			name:  "no URL",
			value: "Finnes ikke",
			want:  "Finnes ikke",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := wrapURLs(tt.value); got != tt.want {
				t.Errorf("wrapURLs(%q) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}

func TestInfoTable_Subject(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		entries []InfoEntry
		want    string
	}{
		{
			name: "first entry",
			entries: []InfoEntry{
				{Label: "Fagkode", Value: "A"},
				{Label: "Navn", Value: "B"},
			},
			want: "A",
		},
		{
			name: "later entry",
			entries: []InfoEntry{
				{Label: "Navn", Value: "B"},
				{Label: "Fagkode", Value: "A"},
			},
			want: "A",
		},
		{
			name: "first of several",
			entries: []InfoEntry{
				{Label: "Fagkode", Value: "A"},
				{Label: "Fagkode", Value: "C"},
			},
			want: "A",
		},
		{
			name:    "none",
			entries: []InfoEntry{{Label: "Navn", Value: "B"}},
			want:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			table := InfoTable{Entries: tt.entries, Found: true}
			if got := table.Subject(); got != tt.want {
				t.Errorf("Subject() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestInfoTable_Render(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		entries []InfoEntry
		want    string
	}{
		{
			name: "subject first",
			entries: []InfoEntry{
				{Label: "Fagkode", Value: "ABC123"},
				{Label: "Navn", Value: "Intro"},
				{Label: "Lab", Value: "Ja"},
			},
			want: "Fakta|ABC123\n---|---\n Navn | Intro\n Lab | Ja\n\n",
		},
		{
			name: "subject not first drops the first entry",
			entries: []InfoEntry{
				{Label: "Navn", Value: "Intro"},
				{Label: "Fagkode", Value: "ABC123"},
			},
			want: "Fakta|ABC123\n---|---\n Fagkode | ABC123\n\n",
		},
		{
			name:    "empty table",
			entries: nil,
			want:    "Fakta|\n---|---\n\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			table := InfoTable{Entries: tt.entries, Found: true}
			if got := table.Render(); got != tt.want {
				t.Errorf("Render() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSubstituteInfoTable(t *testing.T) {
	t.Parallel()

	pattern := infoboxPattern([]string{DefaultInfoboxTemplate})
	table := InfoTable{
		Entries: []InfoEntry{{Label: "Fagkode", Value: "A"}, {Label: "Navn", Value: "$1 kurs"}},
		Found:   true,
	}

	tests := []struct {
		name    string
		content string
		table   InfoTable
		want    string
	}{
		{
			name:    "replaces the block",
			content: "Før\n{{Faginfo\n|kode=A\n}}\nEtter",
			table:   table,
			want:    "Før\nFakta|A\n---|---\n Navn | $1 kurs\n\n\nEtter",
		},
		{
			name:    "second block is kept",
			content: "{{Faginfo|kode=A}}\n{{Faginfo|kode=B}}",
			table:   table,
			want:    "Fakta|A\n---|---\n Navn | $1 kurs\n\n\n{{Faginfo|kode=B}}",
		},
		{
			name:    "nothing found",
			content: "{{Faginfo|kode=A}}",
			table:   InfoTable{},
			want:    "{{Faginfo|kode=A}}",
		},
		{
			name:    "unterminated block is left alone",
			content: "{{Faginfo\n|kode=A",
			table:   table,
			want:    "{{Faginfo\n|kode=A",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := SubstituteInfoTable(tt.content, tt.table, pattern); got != tt.want {
				t.Errorf("SubstituteInfoTable() = %q, want %q", got, tt.want)
			}
		})
	}
}
