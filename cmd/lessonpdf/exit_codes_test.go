package main

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/JOhn12345re/lessonpdf"
	"github.com/JOhn12345re/lessonpdf/internal/catalog"
	"github.com/JOhn12345re/lessonpdf/internal/config"
)

func TestExitCodeFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil error", nil, ExitSuccess},

		{"browser connect", lessonpdf.ErrBrowserConnect, ExitBrowser},
		{"page create", lessonpdf.ErrPageCreate, ExitBrowser},
		{"page load", lessonpdf.ErrPageLoad, ExitBrowser},
		{"pdf generation", lessonpdf.ErrPDFGeneration, ExitBrowser},
		{"wrapped browser connect", fmt.Errorf("rendering: %w", lessonpdf.ErrBrowserConnect), ExitBrowser},

		{"file not exist", os.ErrNotExist, ExitIO},
		{"permission denied", os.ErrPermission, ExitIO},
		{"write artifact", lessonpdf.ErrWriteArtifact, ExitIO},
		{"read css", ErrReadCSS, ExitIO},
		{"output dir", ErrOutputDir, ExitIO},

		{"usage", ErrUsage, ExitUsage},
		{"no volume", ErrNoVolume, ExitUsage},
		{"conflicting input", ErrConflictingInput, ExitUsage},
		{"config not found", config.ErrConfigNotFound, ExitUsage},
		{"config parse", config.ErrConfigParse, ExitUsage},
		{"field too long", config.ErrFieldTooLong, ExitUsage},
		{"invalid config", config.ErrInvalidConfig, ExitUsage},
		{"volume not found", catalog.ErrVolumeNotFound, ExitUsage},
		{"invalid catalog", &lessonpdf.CatalogError{Index: 2, Err: errors.New("narrative: cannot be blank")}, ExitUsage},
		{"invalid page size", lessonpdf.ErrInvalidPageSize, ExitUsage},
		{"invalid margin", lessonpdf.ErrInvalidMargin, ExitUsage},

		{"unknown", errors.New("boom"), ExitGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := exitCodeFor(tt.err); got != tt.want {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestExitCodes_Conventions(t *testing.T) {
	t.Parallel()

	codes := []int{ExitSuccess, ExitGeneral, ExitUsage, ExitIO, ExitBrowser}
	seen := map[int]bool{}
	for _, c := range codes {
		if c >= 126 {
			t.Errorf("exit code %d collides with shell reserved codes", c)
		}
		if seen[c] {
			t.Errorf("exit code %d used twice", c)
		}
		seen[c] = true
	}
}

func TestHintFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		contains string
	}{
		{"volume not found", catalog.ErrVolumeNotFound, "royaume"},
		{"invalid catalog", lessonpdf.ErrInvalidCatalog, "narrative"},
		{"write artifact", lessonpdf.ErrWriteArtifact, "writable"},
		{"page load", lessonpdf.ErrPageLoad, "--timeout"},
		{"unknown", errors.New("boom"), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := hintFor(tt.err)
			if tt.contains == "" {
				if got != "" {
					t.Errorf("hintFor() = %q, want empty", got)
				}
				return
			}
			if !strings.Contains(got, tt.contains) {
				t.Errorf("hintFor() = %q, want it to contain %q", got, tt.contains)
			}
		})
	}
}
