package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/go-rod/rod/lib/launcher"

	"github.com/JOhn12345re/lessonpdf/internal/hints"
)

// Doctor status values.
const (
	statusReady    = "ready"
	statusWarnings = "warnings"
	statusErrors   = "errors"
)

// doctorResult holds all diagnostic information.
type doctorResult struct {
	Status   string     `json:"status"`
	Chrome   chromeInfo `json:"chrome"`
	Env      envInfo    `json:"environment"`
	TempDir  bool       `json:"temp_writable"`
	Warnings []string   `json:"warnings,omitempty"`
	Errors   []string   `json:"errors,omitempty"`
}

type chromeInfo struct {
	Found   bool   `json:"found"`
	Path    string `json:"path,omitempty"`
	Version string `json:"version,omitempty"`
}

type envInfo struct {
	OS         string `json:"os"`
	Arch       string `json:"arch"`
	Container  bool   `json:"container"`
	CI         bool   `json:"ci"`
	NoSandbox  string `json:"rod_no_sandbox"`
	BrowserBin string `json:"rod_browser_bin"`
}

// lookPath finds a Chrome binary (tests).
var lookPath = launcher.LookPath

// runDoctorCmd executes the doctor command and returns an exit code.
// Exit codes: 0 = OK (including warnings), 1 = errors found.
func runDoctorCmd(args []string, env *Environment) int {
	jsonOutput := false
	for _, arg := range args {
		if arg == "--json" {
			jsonOutput = true
		}
	}

	result := runDoctor(env.Getenv)

	if jsonOutput {
		enc := json.NewEncoder(env.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(result)
	} else {
		printDoctorResult(env.Stdout, result)
	}

	if result.Status == statusErrors {
		return ExitGeneral
	}
	return ExitSuccess
}

// runDoctor performs all diagnostic checks.
func runDoctor(getenv func(string) string) *doctorResult {
	result := &doctorResult{
		Env: envInfo{
			OS:         runtime.GOOS,
			Arch:       runtime.GOARCH,
			Container:  hints.IsInContainer(),
			NoSandbox:  getenv("ROD_NO_SANDBOX"),
			BrowserBin: getenv("ROD_BROWSER_BIN"),
		},
	}
	for _, v := range []string{"CI", "GITHUB_ACTIONS", "GITLAB_CI"} {
		if getenv(v) != "" {
			result.Env.CI = true
		}
	}

	checkChrome(result)
	if (result.Env.Container || result.Env.CI) && result.Env.NoSandbox == "" {
		result.Warnings = append(result.Warnings, "container/CI detected but ROD_NO_SANDBOX not set")
	}
	checkTempDir(result)

	switch {
	case len(result.Errors) > 0:
		result.Status = statusErrors
	case len(result.Warnings) > 0:
		result.Status = statusWarnings
	default:
		result.Status = statusReady
	}
	return result
}

// checkChrome locates Chrome through ROD_BROWSER_BIN or rod's launcher.
func checkChrome(result *doctorResult) {
	path := result.Env.BrowserBin
	if path == "" {
		var found bool
		if path, found = lookPath(); !found {
			result.Errors = append(result.Errors, "Chrome/Chromium not found; install it or set ROD_BROWSER_BIN")
			return
		}
	}
	if _, err := os.Stat(path); err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Chrome not found at %s", path))
		return
	}

	result.Chrome.Found = true
	result.Chrome.Path = path

	out, err := exec.Command(path, "--version").Output() // #nosec G204 -- browser path from env or launcher
	if err != nil {
		result.Warnings = append(result.Warnings, fmt.Sprintf("could not get Chrome version: %v", err))
		return
	}
	result.Chrome.Version = strings.TrimSpace(string(out))
}

// checkTempDir verifies the HTML staging directory is writable.
func checkTempDir(result *doctorResult) {
	f, err := os.CreateTemp("", "lessonpdf-doctor-*")
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("temp directory not writable: %s", os.TempDir()))
		return
	}
	_ = f.Close()
	_ = os.Remove(filepath.Clean(f.Name()))
	result.TempDir = true
}

// printDoctorResult outputs human-readable diagnostic results.
func printDoctorResult(w io.Writer, r *doctorResult) {
	fmt.Fprintln(w, "lessonpdf doctor")
	fmt.Fprintln(w)
	if r.Chrome.Found {
		fmt.Fprintf(w, "  [OK] Chrome: %s\n", r.Chrome.Path)
		if r.Chrome.Version != "" {
			fmt.Fprintf(w, "  [OK] Version: %s\n", r.Chrome.Version)
		}
	} else {
		fmt.Fprintln(w, "  [ERROR] Chrome: not found")
	}
	fmt.Fprintf(w, "  [OK] Platform: %s/%s\n", r.Env.OS, r.Env.Arch)
	if r.TempDir {
		fmt.Fprintln(w, "  [OK] Temp directory: writable")
	}
	for _, warn := range r.Warnings {
		fmt.Fprintf(w, "  [WARN] %s\n", warn)
	}
	for _, e := range r.Errors {
		fmt.Fprintf(w, "  [ERROR] %s\n", e)
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Status: %s\n", r.Status)
}
