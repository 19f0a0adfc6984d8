package assets

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
)

// writeStyle creates {dir}/styles/{name}.css with content.
func writeStyle(t *testing.T, dir, name, content string) {
	t.Helper()
	stylesDir := filepath.Join(dir, "styles")
	if err := os.MkdirAll(stylesDir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(stylesDir, name+".css"), []byte(content), 0o644); err != nil {
		t.Fatalf("write style: %v", err)
	}
}

func TestValidateAssetName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "simple name", input: "default"},
		{name: "hyphenated name", input: "my-style"},
		{name: "empty", input: "", wantErr: true},
		{name: "slash", input: "a/b", wantErr: true},
		{name: "backslash", input: `a\b`, wantErr: true},
		{name: "dot", input: "style.css", wantErr: true},
		{name: "traversal", input: "..", wantErr: true},
		{name: "null byte", input: "a\x00b", wantErr: true},
		{name: "too long", input: strings.Repeat("a", maxStyleNameLength+1), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateAssetName(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidAssetName) {
					t.Errorf("ValidateAssetName(%q) error = %v, want ErrInvalidAssetName", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Errorf("ValidateAssetName(%q) unexpected error: %v", tt.input, err)
			}
		})
	}
}

func TestEmbeddedLoader_LoadStyle(t *testing.T) {
	t.Parallel()

	loader := NewEmbeddedLoader()

	css, err := loader.LoadStyle(DefaultStyleName)
	if err != nil {
		t.Fatalf("LoadStyle(%q) unexpected error: %v", DefaultStyleName, err)
	}
	if !strings.Contains(css, "article.wiki2md") {
		t.Error("default style should target the preview article")
	}

	if _, err := loader.LoadStyle("missing"); !errors.Is(err, ErrStyleNotFound) {
		t.Errorf("LoadStyle(missing) error = %v, want ErrStyleNotFound", err)
	}
	if _, err := loader.LoadStyle("../secret"); !errors.Is(err, ErrInvalidAssetName) {
		t.Errorf("LoadStyle(../secret) error = %v, want ErrInvalidAssetName", err)
	}
}

func TestEmbeddedLoader_StyleNames(t *testing.T) {
	t.Parallel()

	got := NewEmbeddedLoader().StyleNames()
	want := []string{"default", "plain"}
	if !slices.Equal(got, want) {
		t.Errorf("StyleNames() = %v, want %v", got, want)
	}
}

func TestNewFilesystemLoader(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "file.txt")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		path    string
		wantErr error
	}{
		{name: "valid directory", path: dir},
		{name: "empty path", path: "", wantErr: ErrInvalidBasePath},
		{name: "missing directory", path: filepath.Join(dir, "nope"), wantErr: ErrInvalidBasePath},
		{name: "file instead of directory", path: file, wantErr: ErrInvalidBasePath},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := NewFilesystemLoader(tt.path)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("NewFilesystemLoader(%q) unexpected error: %v", tt.path, err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("NewFilesystemLoader(%q) error = %v, want %v", tt.path, err, tt.wantErr)
			}
		})
	}
}

func TestFilesystemLoader_LoadStyle(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeStyle(t, dir, "wiki", "body { color: green; }")

	loader, err := NewFilesystemLoader(dir)
	if err != nil {
		t.Fatalf("NewFilesystemLoader() unexpected error: %v", err)
	}

	css, err := loader.LoadStyle("wiki")
	if err != nil {
		t.Fatalf("LoadStyle(wiki) unexpected error: %v", err)
	}
	if css != "body { color: green; }" {
		t.Errorf("LoadStyle(wiki) = %q", css)
	}

	if _, err := loader.LoadStyle("missing"); !errors.Is(err, ErrStyleNotFound) {
		t.Errorf("LoadStyle(missing) error = %v, want ErrStyleNotFound", err)
	}
}

func TestFilesystemLoader_SymlinkEscape(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	outside := t.TempDir()
	secret := filepath.Join(outside, "secret.css")
	if err := os.WriteFile(secret, []byte("secret"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(filepath.Join(base, "styles"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.Symlink(secret, filepath.Join(base, "styles", "escape.css")); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}

	loader, err := NewFilesystemLoader(base)
	if err != nil {
		t.Fatalf("NewFilesystemLoader() unexpected error: %v", err)
	}
	if _, err := loader.LoadStyle("escape"); !errors.Is(err, ErrPathTraversal) {
		t.Errorf("LoadStyle(escape) error = %v, want ErrPathTraversal", err)
	}
}

func TestAssetResolver_LoadStyle(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeStyle(t, dir, "default", "/* custom default */")
	writeStyle(t, dir, "wiki", "/* custom wiki */")

	embeddedOnly, err := NewAssetResolver("")
	if err != nil {
		t.Fatalf("NewAssetResolver(\"\") unexpected error: %v", err)
	}
	withCustom, err := NewAssetResolver(dir)
	if err != nil {
		t.Fatalf("NewAssetResolver(dir) unexpected error: %v", err)
	}

	tests := []struct {
		name     string
		resolver *AssetResolver
		style    string
		contains string
		wantErr  error
	}{
		{name: "embedded default", resolver: embeddedOnly, style: "default", contains: "article.wiki2md"},
		{name: "embedded missing", resolver: embeddedOnly, style: "wiki", wantErr: ErrStyleNotFound},
		{name: "custom overrides embedded", resolver: withCustom, style: "default", contains: "custom default"},
		{name: "custom only style", resolver: withCustom, style: "wiki", contains: "custom wiki"},
		{name: "falls back to embedded", resolver: withCustom, style: "plain", contains: "Georgia"},
		{name: "validation errors do not fall back", resolver: withCustom, style: "a/b", wantErr: ErrInvalidAssetName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			css, err := tt.resolver.LoadStyle(tt.style)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("LoadStyle(%q) error = %v, want %v", tt.style, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("LoadStyle(%q) unexpected error: %v", tt.style, err)
			}
			if !strings.Contains(css, tt.contains) {
				t.Errorf("LoadStyle(%q) = %q, want containing %q", tt.style, css, tt.contains)
			}
		})
	}
}
