package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/sync/errgroup"

	wiki2md "github.com/alnah/go-wiki2md"
	"github.com/alnah/go-wiki2md/internal/fileutil"
	"github.com/alnah/go-wiki2md/internal/hints"
	"github.com/alnah/go-wiki2md/internal/logger"
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// Sentinel errors for batch operations.
var (
	ErrNoInput          = errors.New("no input specified")
	ErrReadWikitext     = errors.New("failed to read wikitext file")
	ErrWriteMarkdown    = errors.New("failed to write output file")
	ErrConversionFailed = errors.New("conversion failed")
)

// CLIConverter is the interface for the conversion service.
type CLIConverter interface {
	Convert(ctx context.Context, input wiki2md.Input) (*wiki2md.ConvertResult, error)
}

// Compile-time interface implementation check.
var _ CLIConverter = (*wiki2md.Converter)(nil)

// batchParams groups settings shared by every file of a batch.
type batchParams struct {
	workers       int
	skipRedirects bool
}

// ConversionResult holds the outcome of a single conversion.
type ConversionResult struct {
	InputPath  string
	OutputPath string
	HTMLPath   string
	Bucket     string
	Skipped    bool
	Err        error
	Duration   time.Duration
}

// convertBatch converts files concurrently, at most params.workers at a time.
// Results keep the order of files. One failure does not stop the others;
// cancelling ctx marks the remaining files as failed.
func convertBatch(ctx context.Context, conv CLIConverter, files []FileToConvert, params batchParams, log *logger.Logger) []ConversionResult {
	if len(files) == 0 {
		return nil
	}

	results := make([]ConversionResult, len(files))

	var g errgroup.Group
	g.SetLimit(max(1, params.workers))

	for i, f := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i] = ConversionResult{InputPath: f.InputPath, Err: err}
				return nil
			}
			results[i] = convertFile(ctx, conv, f, params)
			logResult(log, results[i])
			return nil
		})
	}

	_ = g.Wait() // workers record errors in results
	return results
}

// convertFile processes a single file and returns the result.
func convertFile(ctx context.Context, conv CLIConverter, f FileToConvert, params batchParams) ConversionResult {
	start := time.Now()
	result := ConversionResult{
		InputPath:  f.InputPath,
		OutputPath: f.OutputPath,
		HTMLPath:   f.HTMLPath,
	}
	fail := func(err error) ConversionResult {
		result.Err = err
		result.Duration = time.Since(start)
		return result
	}

	content, err := os.ReadFile(f.InputPath) // #nosec G304 -- discovered path
	if err != nil {
		return fail(fmt.Errorf("%w: %v", ErrReadWikitext, err))
	}
	wikitext := string(content)

	if params.skipRedirects && wiki2md.IsRedirect(wikitext) {
		result.Skipped = true
		result.Bucket = wiki2md.IgnoreBucket
		result.Duration = time.Since(start)
		return result
	}

	convResult, err := conv.Convert(ctx, wiki2md.Input{
		Wikitext: wikitext,
		Title:    pageTitle(f.InputPath),
	})
	if err != nil {
		return fail(fmt.Errorf("%w: %w", ErrConversionFailed, err))
	}
	result.Bucket = convResult.Category

	if err := os.MkdirAll(filepath.Dir(f.OutputPath), dirPermissions); err != nil {
		return fail(fmt.Errorf("%w: creating output directory: %w%s", ErrWriteMarkdown, err, hints.ForOutputDirectory()))
	}

	if err := fileutil.WriteFileAtomic(f.OutputPath, []byte(convResult.Markdown), filePermissions); err != nil {
		return fail(fmt.Errorf("%w: %v", ErrWriteMarkdown, err))
	}

	if f.HTMLPath != "" && convResult.HTML != nil {
		if err := fileutil.WriteFileAtomic(f.HTMLPath, convResult.HTML, filePermissions); err != nil {
			return fail(fmt.Errorf("%w: %v", ErrWriteMarkdown, err))
		}
	}

	result.Duration = time.Since(start)
	return result
}

// logResult reports one finished file.
func logResult(log *logger.Logger, r ConversionResult) {
	switch {
	case r.Err != nil:
		// Reported once, by printResults.
	case r.Skipped:
		log.Skipped(r.InputPath, "redirect")
	default:
		log.FileConverted(r.InputPath, r.OutputPath, r.Duration)
		if r.Bucket != "" {
			log.FileRouted(r.InputPath, r.Bucket)
		}
	}
}

// ResultSummary holds the count of succeeded, skipped and failed conversions.
type ResultSummary struct {
	Succeeded int
	Skipped   int
	Failed    int
}

// countResults tallies the outcomes of a batch.
func countResults(results []ConversionResult) ResultSummary {
	var summary ResultSummary
	for _, r := range results {
		switch {
		case r.Err != nil:
			summary.Failed++
		case r.Skipped:
			summary.Skipped++
		default:
			summary.Succeeded++
		}
	}
	return summary
}

// printResults writes one line per page to env.Stdout and failures to
// env.Stderr. It returns the summary of the batch.
func printResults(results []ConversionResult, quiet, verbose, route bool, env *Environment) ResultSummary {
	summary := countResults(results)

	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(env.Stderr, "FAILED %s: %v\n", r.InputPath, r.Err)
			continue
		}

		if route {
			fmt.Fprintf(env.Stdout, "%s\t%s\n", bucketLabel(r.Bucket), r.InputPath)
			continue
		}

		if quiet || r.Skipped {
			continue
		}

		if verbose {
			fmt.Fprintf(env.Stdout, "%s -> %s (%v)\n", r.InputPath, r.OutputPath, r.Duration.Round(time.Millisecond))
		} else {
			fmt.Fprintf(env.Stdout, "Created %s\n", r.OutputPath)
		}
	}

	if !quiet && !route && len(results) > 1 {
		fmt.Fprintf(env.Stdout, "\n%d succeeded, %d skipped, %d failed\n", summary.Succeeded, summary.Skipped, summary.Failed)
	}

	return summary
}

// bucketLabel shows pages without a bucket as "-".
func bucketLabel(bucket string) string {
	if bucket == "" {
		return "-"
	}
	return bucket
}
