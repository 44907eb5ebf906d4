package main

import (
	"fmt"
	"io"

	"github.com/JOhn12345re/lessonpdf/internal/catalog"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: lessonpdf <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  build      Build a lesson volume PDF")
	fmt.Fprintln(w, "  list       List the embedded volumes")
	fmt.Fprintln(w, "  doctor     Check the Chrome setup")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'lessonpdf help <command>' for details on a specific command.")
}

// printBuildUsage prints usage for the build command.
func printBuildUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: lessonpdf build [<volume>] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Build one lesson volume as a PDF.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input:")
	fmt.Fprintln(w, "      --volume <name>        Embedded volume (same as the positional argument)")
	fmt.Fprintln(w, "      --catalog <file>       YAML catalog file")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output:")
	fmt.Fprintln(w, "  -o, --output <path>        PDF file or directory (default: <volume>.pdf)")
	fmt.Fprintln(w, "  -c, --config <name>        Config file name or path")
	fmt.Fprintln(w, "      --html                 Also write the HTML next to the PDF")
	fmt.Fprintln(w, "      --html-only            Write the HTML only, skip Chrome")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Page:")
	fmt.Fprintln(w, "  -p, --page-size <s>        Page size: a4, letter, legal")
	fmt.Fprintln(w, "      --margin <cm>          Margin in centimeters (0.5-5.0)")
	fmt.Fprintln(w, "      --css <file>           Extra CSS file")
	fmt.Fprintln(w, "  -t, --timeout <d>          PDF generation timeout")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Illustrations:")
	fmt.Fprintln(w, "      --offline              Skip downloads; covers keep their spacing")
	fmt.Fprintln(w, "      --fetch-workers <n>    Concurrent downloads (1-16)")
	fmt.Fprintln(w, "      --fetch-timeout <d>    Per-illustration timeout")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet                Only show errors")
	fmt.Fprintln(w, "  -v, --verbose              Show debug logs")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  LESSONPDF_CONFIG, LESSONPDF_OUTPUT_DIR, LESSONPDF_PAGE_SIZE,")
	fmt.Fprintln(w, "  LESSONPDF_FETCH_TIMEOUT, LESSONPDF_OFFLINE")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return
	}

	switch args[0] {
	case "build":
		printBuildUsage(env.Stdout)
	case "list":
		fmt.Fprintln(env.Stdout, "Usage: lessonpdf list")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "List the embedded volumes.")
	case "doctor":
		fmt.Fprintln(env.Stdout, "Usage: lessonpdf doctor [--json]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Check that Chrome can be found and the temp directory is writable.")
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: lessonpdf version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: lessonpdf help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "unknown command: %s\n", args[0])
		printUsage(env.Stderr)
	}
}

// runList prints one embedded volume name per line.
func runList(env *Environment) {
	for _, name := range catalog.Names() {
		fmt.Fprintln(env.Stdout, name)
	}
}
