package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/JOhn12345re/lessonpdf"
	"github.com/JOhn12345re/lessonpdf/internal/config"
)

// documentRenderer is the part of *lessonpdf.Renderer the CLI uses.
type documentRenderer interface {
	Render(ctx context.Context, doc *lessonpdf.Document, outputPath string) error
	RenderHTML(ctx context.Context, doc *lessonpdf.Document) ([]byte, error)
	Close() error
}

var _ documentRenderer = (*lessonpdf.Renderer)(nil)

// Environment holds injectable dependencies for testability.
type Environment struct {
	Now         func() time.Time
	Stdout      io.Writer
	Stderr      io.Writer
	Getenv      func(string) string
	Environ     func() []string
	NewRenderer func(opts ...lessonpdf.RendererOption) (documentRenderer, error)
	NewResolver func(cfg *config.Config, logger *slog.Logger) lessonpdf.AssetResolver
}

// DefaultEnv returns the production environment: real streams, process
// environment, Chrome renderer and HTTP resolver.
func DefaultEnv() *Environment {
	return &Environment{
		Now:     time.Now,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		Getenv:  os.Getenv,
		Environ: os.Environ,
		NewRenderer: func(opts ...lessonpdf.RendererOption) (documentRenderer, error) {
			return lessonpdf.NewRenderer(opts...)
		},
		NewResolver: newHTTPResolver,
	}
}

// newHTTPResolver builds the network resolver from the fetch settings.
func newHTTPResolver(cfg *config.Config, logger *slog.Logger) lessonpdf.AssetResolver {
	opts := []lessonpdf.ResolverOption{lessonpdf.WithResolverLogger(logger)}
	if d := cfg.FetchTimeout(); d > 0 {
		opts = append(opts, lessonpdf.WithFetchTimeout(d))
	}
	if cfg.Fetch.MaxBytes > 0 {
		opts = append(opts, lessonpdf.WithMaxImageBytes(cfg.Fetch.MaxBytes))
	}
	return lessonpdf.NewHTTPResolver(opts...)
}
