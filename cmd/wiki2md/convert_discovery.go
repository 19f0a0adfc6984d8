package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-wiki2md/internal/config"
	"github.com/alnah/go-wiki2md/internal/fileutil"
	"github.com/alnah/go-wiki2md/internal/hints"
)

// Sentinel errors for file discovery.
var (
	ErrUnsupportedExtension = errors.New("unsupported wikitext file extension")
	ErrInvalidWorkerCount   = errors.New("invalid worker count")
)

// supportedExtensions lists the wikitext file extensions, with the dot.
var supportedExtensions = []string{".wiki", ".mediawiki", ".txt"}

// Output extensions, without the dot.
const (
	markdownExtension = "md"
	htmlExtension     = "html"
)

// FileToConvert represents a single file to process.
type FileToConvert struct {
	InputPath  string
	OutputPath string
	HTMLPath   string // empty unless a preview is written
}

// discoverFiles finds every wikitext file under inputs. Directories are
// walked recursively and their tree is mirrored under outputDir.
func discoverFiles(inputs []string, outputDir string, preview bool) ([]FileToConvert, error) {
	var files []FileToConvert
	for _, input := range inputs {
		found, err := discoverInput(input, outputDir, len(inputs) > 1)
		if err != nil {
			return nil, err
		}
		files = append(files, found...)
	}

	if preview {
		for i := range files {
			htmlPath, err := fileutil.ReplaceExtension(files[i].OutputPath, htmlExtension)
			if err != nil {
				return nil, err
			}
			files[i].HTMLPath = htmlPath
		}
	}
	return files, nil
}

// discoverInput handles one positional input. With several inputs, an
// output path ending in .md is treated as a directory name.
func discoverInput(inputPath, outputDir string, multiple bool) ([]FileToConvert, error) {
	info, err := os.Stat(inputPath)
	if err != nil {
		return nil, err
	}

	if !info.IsDir() {
		if err := validateWikitextExtension(inputPath); err != nil {
			return nil, err
		}
		outPath := resolveOutputPath(inputPath, outputDir, "", multiple)
		return []FileToConvert{{InputPath: inputPath, OutputPath: outPath}}, nil
	}

	var files []FileToConvert
	err = filepath.WalkDir(inputPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("scanning %s: %w", path, err)
		}
		if d.IsDir() || !fileutil.HasExtension(path, supportedExtensions) {
			return nil
		}
		outPath := resolveOutputPath(path, outputDir, inputPath, true)
		files = append(files, FileToConvert{InputPath: path, OutputPath: outPath})
		return nil
	})

	return files, err
}

// resolveOutputPath determines the Markdown output path for a wikitext file.
func resolveOutputPath(inputPath, outputDir, baseInputDir string, multiple bool) string {
	ext := filepath.Ext(inputPath)
	base := strings.TrimSuffix(filepath.Base(inputPath), ext) + "." + markdownExtension

	if outputDir == "" {
		return filepath.Join(filepath.Dir(inputPath), base)
	}

	if !multiple && strings.EqualFold(filepath.Ext(outputDir), "."+markdownExtension) {
		return outputDir
	}

	if baseInputDir != "" {
		relPath, err := filepath.Rel(baseInputDir, inputPath)
		if err == nil {
			return filepath.Join(outputDir, filepath.Dir(relPath), base)
		}
	}

	return filepath.Join(outputDir, base)
}

// validateWikitextExtension checks that the file has a supported extension.
func validateWikitextExtension(path string) error {
	if !fileutil.HasExtension(path, supportedExtensions) {
		return fmt.Errorf("%w: got %q%s", ErrUnsupportedExtension, filepath.Ext(path),
			hints.ForUnsupportedExtension(supportedExtensions))
	}
	return nil
}

// validateWorkers checks that the worker count is within valid bounds.
func validateWorkers(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d (must be >= 0, 0 means auto)", ErrInvalidWorkerCount, n)
	}
	if n > config.MaxWorkers {
		return fmt.Errorf("%w: %d (maximum is %d)", ErrInvalidWorkerCount, n, config.MaxWorkers)
	}
	return nil
}

// pageTitle derives a page title from a file name: extension dropped and
// underscores read as spaces, as in wiki page names.
func pageTitle(path string) string {
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return strings.TrimSpace(strings.ReplaceAll(base, "_", " "))
}
