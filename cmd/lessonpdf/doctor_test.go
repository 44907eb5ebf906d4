package main

// runDoctor tests swap the package-level lookPath and cannot run in parallel.

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunDoctor_ChromeMissing(t *testing.T) {
	orig := lookPath
	t.Cleanup(func() { lookPath = orig })
	lookPath = func() (string, bool) { return "", false }

	result := runDoctor(func(string) string { return "" })

	if result.Status != statusErrors {
		t.Errorf("Status = %q, want %q", result.Status, statusErrors)
	}
	if result.Chrome.Found {
		t.Error("Chrome.Found = true")
	}
	if len(result.Errors) == 0 || !strings.Contains(result.Errors[0], "ROD_BROWSER_BIN") {
		t.Errorf("Errors = %v, want a ROD_BROWSER_BIN suggestion", result.Errors)
	}
}

func TestRunDoctor_BrowserBinMissing(t *testing.T) {
	bin := filepath.Join(t.TempDir(), "chrome")
	env := map[string]string{"ROD_BROWSER_BIN": bin, "CI": "true"}

	result := runDoctor(func(k string) string { return env[k] })

	if result.Status != statusErrors {
		t.Errorf("Status = %q, want %q", result.Status, statusErrors)
	}
	if !result.Env.CI {
		t.Error("Env.CI = false, want true")
	}
	found := false
	for _, w := range result.Warnings {
		if strings.Contains(w, "ROD_NO_SANDBOX") {
			found = true
		}
	}
	if !found {
		t.Errorf("Warnings = %v, want a ROD_NO_SANDBOX warning in CI", result.Warnings)
	}
}

func TestRunDoctorCmd_JSON(t *testing.T) {
	orig := lookPath
	t.Cleanup(func() { lookPath = orig })
	lookPath = func() (string, bool) { return "", false }

	h := newHarness(t, nil)
	code := runDoctorCmd([]string{"--json"}, h.env)

	if code != ExitGeneral {
		t.Errorf("runDoctorCmd() = %d, want %d", code, ExitGeneral)
	}
	var got doctorResult
	if err := json.Unmarshal(h.stdout.Bytes(), &got); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, h.stdout.String())
	}
	if got.Status != statusErrors {
		t.Errorf("Status = %q, want %q", got.Status, statusErrors)
	}
}

func TestPrintDoctorResult(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	printDoctorResult(&buf, &doctorResult{
		Status:   statusWarnings,
		Chrome:   chromeInfo{Found: true, Path: "/usr/bin/chromium", Version: "Chromium 140"},
		Env:      envInfo{OS: "linux", Arch: "amd64"},
		TempDir:  true,
		Warnings: []string{"container/CI detected but ROD_NO_SANDBOX not set"},
	})

	out := buf.String()
	for _, want := range []string{"/usr/bin/chromium", "Chromium 140", "linux/amd64", "[WARN]", "Status: warnings"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}
