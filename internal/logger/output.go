package logger

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

// CLI Output Functions
// These provide user-friendly output for CLI applications
// Separate from structured logging (Error, Warnf)

var (
	// Color functions for CLI output
	errorColor  = color.New(color.FgRed).SprintFunc()
	infoColor   = color.New(color.FgCyan).SprintFunc()
	headerColor = color.New(color.FgWhite, color.Bold).SprintFunc()

	// Enable/disable colors (for testing or non-TTY output)
	colorsEnabled = true
)

// Print prints an info message (cyan)
func Print(format string, a ...interface{}) {
	msg := fmt.Sprintf(format, a...)
	if colorsEnabled {
		fmt.Printf("%s %s\n", infoColor("ℹ"), msg)
	} else {
		fmt.Printf("ℹ %s\n", msg)
	}
}

// PrintError prints an error message (red)
func PrintError(format string, a ...interface{}) {
	msg := fmt.Sprintf(format, a...)
	if colorsEnabled {
		fmt.Fprintf(os.Stderr, "%s %s\n", errorColor("✖"), msg)
	} else {
		fmt.Fprintf(os.Stderr, "✖ %s\n", msg)
	}
}

// Header prints a header/section title
func Header(format string, a ...interface{}) {
	msg := fmt.Sprintf(format, a...)
	if colorsEnabled {
		fmt.Printf("\n%s\n\n", headerColor(msg))
	} else {
		fmt.Printf("\n%s\n\n", msg)
	}
}

// KeyValue prints a key-value pair
func KeyValue(key string, value string) {
	if colorsEnabled {
		fmt.Printf("  %s: %s\n", color.New(color.FgWhite).SprintFunc()(key), value)
	} else {
		fmt.Printf("  %s: %s\n", key, value)
	}
}

// Blank prints a blank line
func Blank() {
	fmt.Println()
}
