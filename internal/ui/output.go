// Package ui provides terminal output helpers for progress lines and
// summaries.
package ui

import "fmt"

// Unicode symbols for status indicators
const (
	SymbolSuccess = "✓"
	SymbolError   = "✗"
	SymbolWarning = "⚠"
)

// Status tags for per-plugin progress lines.
const (
	StatusOK    = "OK"
	StatusSkip  = "SKIP"
	StatusError = "ERROR"
)

// Progress formats one per-plugin progress line:
// "[3/12] cloudflare-d1 ... OK" with an optional reason.
func Progress(i, n int, name, status, reason string) string {
	line := fmt.Sprintf("[%d/%d] %s ... %s", i, n, Accent.Render(name), status)
	if reason != "" {
		line += " " + Muted.Render("("+reason+")")
	}
	return line
}

// Success returns a success message with checkmark symbol
func Success(msg string) string {
	return fmt.Sprintf("%s %s", SymbolSuccess, msg)
}

// Error returns an error message with X symbol
func Error(msg string) string {
	return fmt.Sprintf("%s %s", SymbolError, msg)
}

// Warning returns a warning message with warning symbol
func Warning(msg string) string {
	return fmt.Sprintf("%s %s", SymbolWarning, msg)
}

// Warningf returns a formatted warning message with warning symbol
func Warningf(format string, args ...interface{}) string {
	return Warning(fmt.Sprintf(format, args...))
}

// Header returns a styled section header
func Header(msg string) string {
	return Bold.Render(msg)
}

// Count returns a styled count badge (e.g., "(3 plugins)")
func Count(n int, singular, plural string) string {
	if n == 1 {
		return fmt.Sprintf("(%d %s)", n, singular)
	}
	return fmt.Sprintf("(%d %s)", n, plural)
}
