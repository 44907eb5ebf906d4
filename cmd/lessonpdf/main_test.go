package main

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestRunMain(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	tests := []struct {
		name       string
		args       []string
		wantCode   int
		wantStdout string
		wantStderr string
	}{
		{"no command", []string{"lessonpdf"}, ExitUsage, "", "Usage: lessonpdf"},
		{"unknown command", []string{"lessonpdf", "convert"}, ExitUsage, "", "unknown command: convert"},
		{"version", []string{"lessonpdf", "version"}, ExitSuccess, "lessonpdf " + Version, ""},
		{"list", []string{"lessonpdf", "list"}, ExitSuccess, "conquete\nliberation\nroyaume\n", ""},
		{"help", []string{"lessonpdf", "help"}, ExitSuccess, "Commands:", ""},
		{"help build", []string{"lessonpdf", "help", "build"}, ExitSuccess, "--catalog", ""},
		{"help unknown", []string{"lessonpdf", "help", "nope"}, ExitSuccess, "", "unknown command: nope"},
		{"build help flag", []string{"lessonpdf", "build", "--help"}, ExitSuccess, "", "Usage: lessonpdf build"},
		{"build unknown volume", []string{"lessonpdf", "build", "atlantide"}, ExitUsage, "", "hint: available: conquete, liberation, royaume"},
		{"build", []string{"lessonpdf", "build", "royaume", "--offline", "-q", "-o", filepath.Join(dir, "r.pdf")}, ExitSuccess, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h := newHarness(t, nil)
			code := runMain(tt.args, h.env)

			if code != tt.wantCode {
				t.Errorf("runMain() = %d, want %d (stderr %q)", code, tt.wantCode, h.stderr.String())
			}
			if tt.wantStdout != "" && !strings.Contains(h.stdout.String(), tt.wantStdout) {
				t.Errorf("stdout = %q, want it to contain %q", h.stdout.String(), tt.wantStdout)
			}
			if tt.wantStderr != "" && !strings.Contains(h.stderr.String(), tt.wantStderr) {
				t.Errorf("stderr = %q, want it to contain %q", h.stderr.String(), tt.wantStderr)
			}
			if tt.wantStderr == "" && tt.wantCode == ExitSuccess && h.stderr.Len() != 0 {
				t.Errorf("stderr should be empty, got %q", h.stderr.String())
			}
		})
	}
}

func TestVersion(t *testing.T) {
	t.Parallel()

	if Version == "" {
		t.Error("Version should not be empty")
	}
}
