package ui

import "fmt"

// Status symbols used in command output.
const (
	SymbolSuccess = "✓"
	SymbolWarning = "⚠"
)

// Successf formats a success line with the checkmark symbol.
func Successf(format string, args ...interface{}) string {
	return SymbolSuccess + " " + fmt.Sprintf(format, args...)
}

// Warning prefixes msg with the warning symbol.
func Warning(msg string) string {
	return SymbolWarning + " " + msg
}

// Header renders a bold section header.
func Header(msg string) string {
	return Bold.Render(msg)
}

// FilePath renders a path in the accent color.
func FilePath(path string) string {
	return Accent.Render(path)
}

// Hint renders muted secondary text.
func Hint(msg string) string {
	return Muted.Render(msg)
}
