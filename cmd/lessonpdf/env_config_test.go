package main

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/JOhn12345re/lessonpdf/internal/config"
)

func TestLoadEnvConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		vars map[string]string
		want envConfig
	}{
		{"empty", nil, envConfig{}},
		{
			name: "all set",
			vars: map[string]string{
				"LESSONPDF_CONFIG":        "work",
				"LESSONPDF_OUTPUT_DIR":    "out",
				"LESSONPDF_PAGE_SIZE":     "letter",
				"LESSONPDF_FETCH_TIMEOUT": "5s",
				"LESSONPDF_OFFLINE":       "1",
			},
			want: envConfig{ConfigPath: "work", OutputDir: "out", PageSize: "letter", FetchTimeout: "5s", Offline: true},
		},
		{
			name: "invalid values ignored",
			vars: map[string]string{"LESSONPDF_FETCH_TIMEOUT": "soon", "LESSONPDF_OFFLINE": "maybe"},
			want: envConfig{},
		},
		{
			name: "non-positive timeout ignored",
			vars: map[string]string{"LESSONPDF_FETCH_TIMEOUT": "0s"},
			want: envConfig{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := loadEnvConfig(func(k string) string { return tt.vars[k] })
			if *got != tt.want {
				t.Errorf("loadEnvConfig() = %+v, want %+v", *got, tt.want)
			}
		})
	}
}

func TestApplyEnvConfig(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultConfig()
	cfg.Output.Dir = "from-file"
	cfg.Page.Size = "legal"

	applyEnvConfig(&envConfig{OutputDir: "from-env", FetchTimeout: "3s", Offline: true}, cfg)

	if cfg.Output.Dir != "from-env" {
		t.Errorf("Output.Dir = %q, want from-env", cfg.Output.Dir)
	}
	if cfg.Page.Size != "legal" {
		t.Errorf("Page.Size = %q, unset variables must not override", cfg.Page.Size)
	}
	if cfg.Fetch.Timeout != "3s" || !cfg.Fetch.Offline {
		t.Errorf("Fetch = %+v", cfg.Fetch)
	}
}

func TestWarnUnknownEnvVars(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	warnUnknownEnvVars(logger, []string{
		"LESSONPDF_CONFIG=work",
		"LESSONPDF_OUTPUTDIR=out",
		"HOME=/root",
		"MD2PDF_STYLE=x",
	})

	out := buf.String()
	if !strings.Contains(out, "variable=LESSONPDF_OUTPUTDIR") {
		t.Errorf("expected warning for the typo, got %q", out)
	}
	if strings.Contains(out, "LESSONPDF_CONFIG") || strings.Contains(out, "HOME") || strings.Contains(out, "MD2PDF") {
		t.Errorf("only unknown LESSONPDF_ variables should be reported, got %q", out)
	}
}
