package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	marmoset "github.com/marmoset-lang/marmoset"
)

// runFile executes a script file in batch mode: evaluate the whole source
// once, print the final value (if any) to stdout, and report diagnostics
// to stderr with the offending line and a caret marker.
func runFile(path string) error {
	source, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading script: %w", err)
	}
	return runSource(path, string(source))
}

// runStdin executes piped or redirected input as one script.
func runStdin() error {
	source, err := io.ReadAll(os.Stdin)
	if err != nil {
		return fmt.Errorf("reading stdin: %w", err)
	}
	return runSource("<stdin>", string(source))
}

func runSource(path, source string) error {
	res := marmoset.Guard(newEvaluator(), marmoset.NewLogger(flagDebug)).Eval(source)

	switch res.Kind {
	case marmoset.KindValue:
		fmt.Println(res.Text)
	case marmoset.KindDiagnostic:
		fmt.Fprint(os.Stderr, formatDiagnostic(path, source, res))
		os.Exit(1)
	case marmoset.KindIncomplete:
		fmt.Fprintf(os.Stderr, "%s: %s: unexpected end of file\n", errorLabel(), path)
		os.Exit(1)
	}
	return nil
}

func errorLabel() string {
	if flagNoColor {
		return "error"
	}
	return color.New(color.FgRed).Sprint("error")
}

// formatDiagnostic renders a diagnostic with source context when the
// result carries a span:
//
//	error: identifier not found: foo
//	  --> script.mmt:2:5
//	   | let x = foo;
//	   |         ^
func formatDiagnostic(path, source string, res marmoset.EvalResult) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s: %s\n", errorLabel(), res.Text)

	if res.Span == nil {
		return sb.String()
	}

	lines := strings.Split(source, "\n")
	var lineContent string
	if res.Span.Line-1 >= 0 && res.Span.Line-1 < len(lines) {
		lineContent = lines[res.Span.Line-1]
	}

	marker := strings.Repeat(" ", max(0, res.Span.Column-1)) + "^"
	if !flagNoColor {
		marker = color.New(color.Bold).Sprint(marker)
	}

	fmt.Fprintf(&sb, "  --> %s:%d:%d\n", path, res.Span.Line, res.Span.Column)
	fmt.Fprintf(&sb, "   | %s\n", lineContent)
	fmt.Fprintf(&sb, "   | %s\n", marker)
	return sb.String()
}
