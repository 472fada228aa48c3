// Package cliout provides structured output formatting for the whichprob CLI
// with cross-platform terminal support and multiple output formats.
//
// # Features
//
//   - Multiple output formats (default human-readable, JSON, and YAML)
//   - ANSI color support with consistent color scheme
//   - Unicode symbol detection with ASCII fallbacks for legacy terminals
//   - Automatic color suppression when stdout is not a terminal or NO_COLOR is set
//
// # Basic Usage
//
//	import "github.com/jongio/whichprob/cliout"
//
//	// Print success message
//	cliout.Success("Program %q found at %q", name, path)
//
//	// Print warning
//	cliout.Warning("Program contains whitespace")
//
//	// Print info message
//	cliout.Info("The PATH is empty")
//
// # Output Formats
//
// Set the output format using SetFormat:
//
//	if err := cliout.SetFormat("json"); err != nil {
//	    log.Fatal(err)
//	}
//
// When a structured format (json or yaml) is active, callers should emit the
// raw data object via PrintStructured instead of composing text output:
//
//	if cliout.IsStructured() {
//	    return cliout.PrintStructured(report)
//	}
package cliout
