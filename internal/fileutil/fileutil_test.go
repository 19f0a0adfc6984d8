package fileutil

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestValidateExtension(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		extension string
		wantErr   error
	}{
		{name: "markdown", extension: "md"},
		{name: "html", extension: "html"},
		{name: "empty", extension: "", wantErr: ErrExtensionEmpty},
		{name: "slash", extension: "md/x", wantErr: ErrExtensionPathTraversal},
		{name: "backslash", extension: `md\x`, wantErr: ErrExtensionPathTraversal},
		{name: "null byte", extension: "md\x00", wantErr: ErrExtensionPathTraversal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateExtension(tt.extension)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateExtension(%q) = %v, want %v", tt.extension, err, tt.wantErr)
			}
		})
	}
}

func TestReplaceExtension(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path      string
		extension string
		want      string
	}{
		{"side.wiki", "md", "side.md"},
		{"dir/side.mediawiki", "md", "dir/side.md"},
		{"noext", "md", "noext.md"},
		{"side.md", "html", "side.html"},
	}

	for _, tt := range tests {
		got, err := ReplaceExtension(tt.path, tt.extension)
		if err != nil {
			t.Fatalf("ReplaceExtension(%q, %q) unexpected error: %v", tt.path, tt.extension, err)
		}
		if got != tt.want {
			t.Errorf("ReplaceExtension(%q, %q) = %q, want %q", tt.path, tt.extension, got, tt.want)
		}
	}

	if _, err := ReplaceExtension("a.wiki", ""); !errors.Is(err, ErrExtensionEmpty) {
		t.Errorf("ReplaceExtension() with empty extension error = %v, want ErrExtensionEmpty", err)
	}
}

func TestHasExtension(t *testing.T) {
	t.Parallel()

	exts := []string{".wiki", ".mediawiki", ".txt"}

	tests := []struct {
		path string
		want bool
	}{
		{"side.wiki", true},
		{"SIDE.WIKI", true},
		{"a/b/side.mediawiki", true},
		{"notes.txt", true},
		{"side.md", false},
		{"wiki", false},
	}

	for _, tt := range tests {
		if got := HasExtension(tt.path, exts); got != tt.want {
			t.Errorf("HasExtension(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestWriteFileAtomic(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "side.md")

	if err := WriteFileAtomic(path, []byte("# Første"), 0o644); err != nil {
		t.Fatalf("WriteFileAtomic() unexpected error: %v", err)
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading written file: %v", err)
	}
	if string(got) != "# Første" {
		t.Errorf("content = %q, want %q", got, "# Første")
	}

	// Overwrite replaces content.
	if err := WriteFileAtomic(path, []byte("ny"), 0o644); err != nil {
		t.Fatalf("WriteFileAtomic() overwrite unexpected error: %v", err)
	}
	got, _ = os.ReadFile(path)
	if string(got) != "ny" {
		t.Errorf("content after overwrite = %q, want %q", got, "ny")
	}

	// No temp files left behind.
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("directory has %d entries, want 1", len(entries))
	}
}

func TestWriteFileAtomic_MissingDirectory(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "missing", "side.md")
	if err := WriteFileAtomic(path, []byte("x"), 0o644); err == nil {
		t.Error("WriteFileAtomic() into missing directory should fail")
	}
}

func TestFileExists(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "a.wiki")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	if !FileExists(file) {
		t.Errorf("FileExists(%q) = false, want true", file)
	}
	if FileExists(dir) {
		t.Errorf("FileExists(%q) = true for directory, want false", dir)
	}
	if FileExists(filepath.Join(dir, "missing")) {
		t.Error("FileExists(missing) = true, want false")
	}
}

func TestIsFilePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  bool
	}{
		{"default", false},
		{"my-style", false},
		{"./wiki.css", true},
		{"/abs/wiki.css", true},
		{`C:\styles\wiki.css`, true},
	}

	for _, tt := range tests {
		if got := IsFilePath(tt.input); got != tt.want {
			t.Errorf("IsFilePath(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestIsCSS(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  bool
	}{
		{"default", false},
		{"./wiki.css", false},
		{"", false},
		{"table { border: 1px solid; }", true},
		{"body {", true},
	}

	for _, tt := range tests {
		if got := IsCSS(tt.input); got != tt.want {
			t.Errorf("IsCSS(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}
