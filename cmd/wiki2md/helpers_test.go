package main

// Notes:
// - Test infrastructure shared by the command tests: an Environment backed by
//   buffers and maps, file helpers, and a mock converter.
// No coverage gaps: this is test infrastructure, not production code.

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"testing"
	"time"

	wiki2md "github.com/alnah/go-wiki2md"
	"github.com/alnah/go-wiki2md/internal/logger"
)

// testEnv bundles an Environment with its captured output.
type testEnv struct {
	*Environment
	stdout *bytes.Buffer
	stderr *bytes.Buffer
}

// newTestEnv returns an Environment writing to buffers, with vars as the
// process environment.
func newTestEnv(t *testing.T, vars map[string]string) *testEnv {
	t.Helper()

	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	environ := make([]string, 0, len(vars))
	for k, v := range vars {
		environ = append(environ, k+"="+v)
	}
	sort.Strings(environ)

	return &testEnv{
		Environment: &Environment{
			Now:     time.Now,
			Stdout:  stdout,
			Stderr:  stderr,
			Logger:  logger.New(stderr),
			Getenv:  func(key string) string { return vars[key] },
			Environ: func() []string { return environ },
		},
		stdout: stdout,
		stderr: stderr,
	}
}

// writeTestFile creates path (and its parents) with content.
func writeTestFile(t *testing.T, path, content string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
}

// readTestFile returns the content of path or fails the test.
func readTestFile(t *testing.T, path string) string {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}

// mockConverter returns a fixed result, or err for inputs listed in failOn.
type mockConverter struct {
	mu     sync.Mutex
	calls  []string
	failOn map[string]error
}

func (m *mockConverter) Convert(_ context.Context, input wiki2md.Input) (*wiki2md.ConvertResult, error) {
	m.mu.Lock()
	m.calls = append(m.calls, input.Title)
	m.mu.Unlock()

	if err, ok := m.failOn[input.Title]; ok {
		return nil, err
	}
	return &wiki2md.ConvertResult{
		Markdown: "# " + input.Title + "\n",
		Category: "fag",
	}, nil
}
