package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/JOhn12345re/lessonpdf"
	"github.com/JOhn12345re/lessonpdf/internal/catalog"
	"github.com/JOhn12345re/lessonpdf/internal/config"
	"github.com/JOhn12345re/lessonpdf/internal/fileutil"
	"github.com/JOhn12345re/lessonpdf/internal/hints"
	"github.com/JOhn12345re/lessonpdf/internal/logfields"
)

// Sentinel errors for CLI operations.
var (
	ErrUsage            = errors.New("invalid usage")
	ErrNoVolume         = errors.New("no volume specified")
	ErrConflictingInput = errors.New("--volume and --catalog are mutually exclusive")
	ErrReadCSS          = errors.New("failed to read CSS file")
	ErrOutputDir        = errors.New("failed to create output directory")
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// defaultFileName names the output of a volume without a name.
const defaultFileName = "volume"

// runBuild builds one volume and writes its PDF (and optionally HTML).
func runBuild(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseBuildFlags(args, env.Stderr)
	if err != nil {
		return err
	}
	if len(positional) > 1 {
		return fmt.Errorf("%w: expected one volume, got %q", ErrUsage, positional)
	}

	envCfg := loadEnvConfig(env.Getenv)
	cfg, err := loadConfig(flags.common.config, envCfg.ConfigPath)
	if err != nil {
		return err
	}
	applyEnvConfig(envCfg, cfg)
	mergeFlags(flags, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := newLogger(env.Stderr, resolveLevel(flags.common, cfg.Log.Level))
	warnUnknownEnvVars(logger, env.Environ())

	volume, err := loadVolume(flags.input, positional)
	if err != nil {
		return err
	}

	start := env.Now()
	var resolver lessonpdf.AssetResolver = lessonpdf.OfflineResolver{}
	if !cfg.Fetch.Offline {
		resolver = env.NewResolver(cfg, logger)
	}
	doc, err := lessonpdf.NewBuilder(resolver, builderOptions(cfg, logger)...).Build(ctx, volume)
	if err != nil {
		return fmt.Errorf("building %s: %w", volume.Name, err)
	}

	pdfPath := resolveOutputPath(flags.output, cfg.Output.Dir, outputName(volume))
	if err := ensureParentDir(pdfPath); err != nil {
		return err
	}

	opts, err := rendererOptions(cfg, logger)
	if err != nil {
		return err
	}
	renderer, err := env.NewRenderer(opts...)
	if err != nil {
		return err
	}
	defer func() { _ = renderer.Close() }()

	if cfg.Render.HTML || flags.outputMode.htmlOnly {
		htmlPath := htmlOutputPath(pdfPath)
		if err := writeHTML(ctx, renderer, doc, htmlPath); err != nil {
			return err
		}
		logger.Debug("html written", logfields.Path(htmlPath))
		if flags.outputMode.htmlOnly {
			logger.Info("volume built", logfields.Volume(volume.Name), logfields.Path(htmlPath),
				logfields.Duration(env.Now().Sub(start)))
			return nil
		}
	}

	if err := renderer.Render(ctx, doc, pdfPath); err != nil {
		return fmt.Errorf("rendering %s: %w", volume.Name, err)
	}

	logger.Info("volume built", logfields.Volume(volume.Name), logfields.Path(pdfPath),
		logfields.Lessons(len(volume.Lessons)), logfields.Duration(env.Now().Sub(start)))
	return nil
}

// loadConfig loads the flag config, then the env config, else defaults.
func loadConfig(flagName, envName string) (*config.Config, error) {
	name := flagName
	if name == "" {
		name = envName
	}
	if name == "" {
		return config.DefaultConfig(), nil
	}

	cfg, err := config.LoadConfig(name)
	if err != nil {
		hint := ""
		if errors.Is(err, config.ErrConfigNotFound) && !fileutil.IsFilePath(name) {
			hint = hints.ForConfigNotFound(config.SearchPaths(name))
		}
		return nil, fmt.Errorf("loading config: %w%s", err, hint)
	}
	return cfg, nil
}

// mergeFlags merges CLI flags into config. CLI values override config values.
func mergeFlags(flags *buildFlags, cfg *config.Config) {
	if flags.page.size != "" {
		cfg.Page.Size = flags.page.size
	}
	if flags.page.margin != 0 {
		cfg.Page.Margin = flags.page.margin
	}
	if flags.fetch.offline {
		cfg.Fetch.Offline = true
	}
	if flags.fetch.workers != 0 {
		cfg.Fetch.Workers = flags.fetch.workers
	}
	if flags.fetch.timeout != "" {
		cfg.Fetch.Timeout = flags.fetch.timeout
	}
	if flags.timeout != "" {
		cfg.Render.Timeout = flags.timeout
	}
	if flags.css != "" {
		cfg.Render.CSS = flags.css
	}
	if flags.outputMode.html {
		cfg.Render.HTML = true
	}
}

// resolveLevel maps -q, -v and the configured level to a slog level.
// -q wins over -v.
func resolveLevel(f commonFlags, configured string) slog.Level {
	switch {
	case f.quiet:
		return slog.LevelError
	case f.verbose:
		return slog.LevelDebug
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(configured)); err != nil {
		return slog.LevelInfo
	}
	return level
}

// newLogger returns a text logger on w.
func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// loadVolume resolves --catalog, --volume or the positional name.
func loadVolume(in inputFlags, positional []string) (*lessonpdf.Volume, error) {
	name := in.volume
	if name == "" && len(positional) == 1 {
		name = positional[0]
	}

	switch {
	case in.catalog != "" && name != "":
		return nil, ErrConflictingInput
	case in.catalog != "":
		return catalog.LoadFile(in.catalog)
	case name == "":
		return nil, ErrNoVolume
	}

	// A name that looks like a file is read from disk.
	if fileutil.IsFilePath(name) {
		return catalog.LoadFile(name)
	}
	return catalog.Load(name)
}

// builderOptions maps the page and fetch settings to builder options.
func builderOptions(cfg *config.Config, logger *slog.Logger) []lessonpdf.BuilderOption {
	page := lessonpdf.DefaultPageSettings()
	if cfg.Page.Size != "" {
		page.Size = strings.ToLower(cfg.Page.Size)
	}
	if cfg.Page.Margin != 0 {
		page.Margin = cfg.Page.Margin
	}

	opts := []lessonpdf.BuilderOption{
		lessonpdf.WithPageSettings(page),
		lessonpdf.WithBuilderLogger(logger),
	}
	if cfg.Fetch.Workers > 0 {
		opts = append(opts, lessonpdf.WithFetchWorkers(cfg.Fetch.Workers))
	}
	return opts
}

// rendererOptions maps the render settings to renderer options.
// The CSS file is read here so a missing file fails before Chrome starts.
func rendererOptions(cfg *config.Config, logger *slog.Logger) ([]lessonpdf.RendererOption, error) {
	opts := []lessonpdf.RendererOption{
		lessonpdf.WithRendererLogger(logger),
		lessonpdf.WithLang(cfg.Render.Lang),
	}
	if d := cfg.RenderTimeout(); d > 0 {
		opts = append(opts, lessonpdf.WithRenderTimeout(d))
	}
	if cfg.Render.CSS != "" {
		css, err := os.ReadFile(cfg.Render.CSS) // #nosec G304 -- user-provided path
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrReadCSS, err)
		}
		opts = append(opts, lessonpdf.WithUserCSS(string(css)))
	}
	return opts, nil
}

// resolveOutputPath returns where the PDF goes.
// An -o value ending in .pdf is the file itself; any other -o value, or the
// configured directory, receives <name>.pdf.
func resolveOutputPath(flagOutput, configDir, name string) string {
	file := name + ".pdf"
	if flagOutput != "" {
		if strings.EqualFold(filepath.Ext(flagOutput), ".pdf") {
			return flagOutput
		}
		return filepath.Join(flagOutput, file)
	}
	if configDir != "" {
		return filepath.Join(configDir, file)
	}
	return file
}

// outputName derives a file name from the volume name.
func outputName(v *lessonpdf.Volume) string {
	name := strings.Map(func(r rune) rune {
		if r == '/' || r == '\\' || r == 0 {
			return '-'
		}
		return r
	}, strings.TrimSpace(v.Name))
	if name == "" || name == "." || name == ".." {
		return defaultFileName
	}
	return name
}

// htmlOutputPath returns the HTML path corresponding to a PDF path.
func htmlOutputPath(pdfPath string) string {
	return strings.TrimSuffix(pdfPath, filepath.Ext(pdfPath)) + ".html"
}

// ensureParentDir creates the directory that will hold path.
func ensureParentDir(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, dirPermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrOutputDir, err)
	}
	return nil
}

// writeHTML composes doc and writes it atomically to path.
func writeHTML(ctx context.Context, r documentRenderer, doc *lessonpdf.Document, path string) error {
	html, err := r.RenderHTML(ctx, doc)
	if err != nil {
		return err
	}
	if err := fileutil.WriteFileAtomic(path, html, filePermissions); err != nil {
		return fmt.Errorf("%w: %v", lessonpdf.ErrWriteArtifact, err)
	}
	return nil
}
