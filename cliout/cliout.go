package cliout

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"
	"strings"
	"sync"

	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

// Format represents the output format.
type Format string

const (
	// FormatDefault is the default human-readable format.
	FormatDefault Format = "default"
	// FormatJSON is JSON format.
	FormatJSON Format = "json"
	// FormatYAML is YAML format.
	FormatYAML Format = "yaml"
)

// ANSI color codes for consistent styling
const (
	Reset = "\033[0m"
	Bold  = "\033[1m"
	Dim   = "\033[2m"

	// Foreground colors
	Red    = "\033[31m"
	Green  = "\033[32m"
	Yellow = "\033[33m"
	Blue   = "\033[34m"
	Cyan   = "\033[36m"
	Gray   = "\033[90m"

	// Bright foreground colors
	BrightRed    = "\033[91m"
	BrightGreen  = "\033[92m"
	BrightYellow = "\033[93m"
	BrightBlue   = "\033[94m"
)

// Unicode symbols for modern CLI output
const (
	SymbolCheck   = "✓"
	SymbolCross   = "✗"
	SymbolWarning = "⚠"
	SymbolInfo    = "ℹ"
	SymbolArrow   = "›"
	SymbolDot     = "•"
)

// ASCII fallback symbols for terminals that don't support Unicode
const (
	ASCIICheck   = "[+]"
	ASCIICross   = "[-]"
	ASCIIWarning = "[!]"
	ASCIIInfo    = "[i]"
	ASCIIArrow   = ">"
	ASCIIDot     = "*"
)

// Global output format setting
var globalFormat Format = FormatDefault

// noColor disables all color output
var noColor = !detectColorSupport()

// mu protects global state variables
var mu sync.RWMutex

// detectColorSupport returns true when stdout is a terminal and the user has
// not opted out via the NO_COLOR convention.
func detectColorSupport() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// ForceColor enables color output regardless of terminal detection.
func ForceColor() {
	mu.Lock()
	noColor = false
	mu.Unlock()
}

// NoColor disables color output.
func NoColor() {
	mu.Lock()
	noColor = true
	mu.Unlock()
}

// getNoColor returns the current noColor setting (thread-safe).
func getNoColor() bool {
	mu.RLock()
	defer mu.RUnlock()
	return noColor
}

// paint wraps text in the given color codes unless color is disabled.
func paint(color, text string) string {
	if getNoColor() {
		return text
	}
	return color + text + Reset
}

// supportsUnicode detects if the terminal supports Unicode properly
var supportsUnicode = detectUnicodeSupport()

// detectUnicodeSupport checks if the terminal can display Unicode properly
func detectUnicodeSupport() bool {
	if runtime.GOOS == "windows" {
		// Windows Terminal, VS Code terminal, and ConEmu support Unicode;
		// legacy cmd.exe consoles generally do not.
		if os.Getenv("WT_SESSION") != "" {
			return true
		}
		if os.Getenv("TERM_PROGRAM") == "vscode" {
			return true
		}
		if os.Getenv("ConEmuPID") != "" {
			return true
		}
		return os.Getenv("TERM") != ""
	}

	// Unix-like systems generally support Unicode
	return true
}

// getIcon returns the appropriate icon based on Unicode support
func getIcon(unicode, ascii string) string {
	if supportsUnicode {
		return unicode
	}
	return ascii
}

// SetFormat sets the global output format.
func SetFormat(format string) error {
	mu.Lock()
	defer mu.Unlock()
	switch format {
	case "default", "":
		globalFormat = FormatDefault
	case "json":
		globalFormat = FormatJSON
	case "yaml":
		globalFormat = FormatYAML
	default:
		return fmt.Errorf("invalid output format: %s (valid options: default, json, yaml)", format)
	}
	return nil
}

// GetFormat returns the current output format.
func GetFormat() Format {
	mu.RLock()
	defer mu.RUnlock()
	return globalFormat
}

// IsStructured returns true if the output format is JSON or YAML.
func IsStructured() bool {
	f := GetFormat()
	return f == FormatJSON || f == FormatYAML
}

// PrintJSON prints data as indented JSON to stdout.
func PrintJSON(data interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

// PrintYAML prints data as YAML to stdout.
func PrintYAML(data interface{}) error {
	encoder := yaml.NewEncoder(os.Stdout)
	encoder.SetIndent(2)
	defer func() { _ = encoder.Close() }()
	return encoder.Encode(data)
}

// PrintStructured prints data in the active structured format.
// It is an error to call it when the format is default.
func PrintStructured(data interface{}) error {
	switch GetFormat() {
	case FormatJSON:
		return PrintJSON(data)
	case FormatYAML:
		return PrintYAML(data)
	default:
		return fmt.Errorf("output format %q is not structured", GetFormat())
	}
}

// Modern CLI output functions with consistent styling

// Header prints a bold header with a divider
func Header(text string) {
	fmt.Printf("\n%s\n", paint(Bold, text))
	fmt.Println(strings.Repeat("=", len(text)))
}

// Section prints a section header
func Section(text string) {
	fmt.Printf("\n%s\n", paint(Cyan, text))
}

// Success prints a success message with green checkmark
func Success(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	check := getIcon(SymbolCheck, ASCIICheck)
	fmt.Printf("%s %s\n", paint(BrightGreen, check), msg)
}

// Error prints an error message with red X
func Error(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	cross := getIcon(SymbolCross, ASCIICross)
	fmt.Printf("%s %s\n", paint(BrightRed, cross), msg)
}

// Warning prints a warning message with yellow triangle
func Warning(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	warning := getIcon(SymbolWarning, ASCIIWarning)
	fmt.Printf("%s  %s\n", paint(BrightYellow, warning), msg)
}

// Info prints an info message with blue info icon
func Info(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	info := getIcon(SymbolInfo, ASCIIInfo)
	fmt.Printf("%s  %s\n", paint(BrightBlue, info), msg)
}

// Item prints an indented item
func Item(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	fmt.Printf("   %s\n", msg)
}

// Bullet prints a bulleted list item
func Bullet(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	bullet := getIcon(SymbolDot, ASCIIDot)
	fmt.Printf("  %s %s\n", bullet, msg)
}

// Arrow prints a list item marked with an arrow, for the entry that wins.
func Arrow(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	arrow := getIcon(SymbolArrow, ASCIIArrow)
	fmt.Printf("  %s %s\n", paint(BrightGreen, arrow), msg)
}

// Label prints a label and value pair
func Label(label, value string) {
	fmt.Printf("   %s %s\n", paint(Dim, fmt.Sprintf("%-12s", label+":")), value)
}

// Plain prints plain text without any formatting.
func Plain(format string, args ...interface{}) {
	fmt.Printf(format+"\n", args...)
}

// Newline prints a blank line
func Newline() {
	fmt.Println()
}

// Emphasize returns emphasized (bold) text
func Emphasize(format string, args ...interface{}) string {
	msg := fmt.Sprintf(format, args...)
	return paint(Bold, msg)
}

// Muted returns muted/dim text
func Muted(format string, args ...interface{}) string {
	msg := fmt.Sprintf(format, args...)
	return paint(Dim, msg)
}
