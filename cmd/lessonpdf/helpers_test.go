package main

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/JOhn12345re/lessonpdf"
	"github.com/JOhn12345re/lessonpdf/internal/config"
)

// fakeRenderer records renders and writes a stub PDF.
type fakeRenderer struct {
	mu        sync.Mutex
	renderErr error
	rendered  []string
	htmlCalls int
	closed    bool
}

func (f *fakeRenderer) Render(_ context.Context, _ *lessonpdf.Document, path string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.renderErr != nil {
		return f.renderErr
	}
	f.rendered = append(f.rendered, path)
	return os.WriteFile(path, []byte("%PDF-1.7 fake"), 0o644)
}

func (f *fakeRenderer) RenderHTML(context.Context, *lessonpdf.Document) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.htmlCalls++
	return []byte("<html><body>fake</body></html>"), nil
}

func (f *fakeRenderer) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	return nil
}

// countingResolver returns Absent and counts calls.
type countingResolver struct {
	mu    sync.Mutex
	calls int
}

func (r *countingResolver) Resolve(context.Context, string) lessonpdf.ImageResult {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	return lessonpdf.Absent
}

func (r *countingResolver) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.calls
}

type testHarness struct {
	env      *Environment
	stdout   *bytes.Buffer
	stderr   *bytes.Buffer
	renderer *fakeRenderer
	resolver *countingResolver
}

// newHarness returns an Environment with fakes and the given variables as
// the process environment.
func newHarness(t *testing.T, vars map[string]string) *testHarness {
	t.Helper()

	h := &testHarness{
		stdout:   &bytes.Buffer{},
		stderr:   &bytes.Buffer{},
		renderer: &fakeRenderer{},
		resolver: &countingResolver{},
	}
	environ := make([]string, 0, len(vars))
	for k, v := range vars {
		environ = append(environ, k+"="+v)
	}
	fixed := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	h.env = &Environment{
		Now:     func() time.Time { return fixed },
		Stdout:  h.stdout,
		Stderr:  h.stderr,
		Getenv:  func(k string) string { return vars[k] },
		Environ: func() []string { return environ },
		NewRenderer: func(...lessonpdf.RendererOption) (documentRenderer, error) {
			return h.renderer, nil
		},
		NewResolver: func(*config.Config, *slog.Logger) lessonpdf.AssetResolver {
			return h.resolver
		},
	}
	return h
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

const smallCatalog = `name: essai
cover:
  title: Essai
  image: https://img.test/cover.jpg
lessons:
  - title: Une leçon
    narrative: Il était une fois.
    image: https://img.test/one.jpg
`
