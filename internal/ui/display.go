package ui

import (
	"os"

	"github.com/charmbracelet/x/term"
)

// DefaultTermWidth is the fallback terminal width when detection fails.
const DefaultTermWidth = 120

// DisplayContext holds display parameters, auto-detecting terminal size.
type DisplayContext struct {
	TermWidth  int
	TermHeight int
	IsTTY      bool // whether stdout is a terminal
}

// NewDisplayContext creates a DisplayContext, auto-detecting terminal
// dimensions.
func NewDisplayContext() *DisplayContext {
	fd := os.Stdout.Fd()
	isTTY := term.IsTerminal(fd)

	width, height := DefaultTermWidth, 24
	if isTTY {
		if w, h, err := term.GetSize(fd); err == nil && w > 0 {
			width, height = w, h
		}
	}

	return &DisplayContext{
		TermWidth:  width,
		TermHeight: height,
		IsTTY:      isTTY,
	}
}

// NewDisplayContextWithSize creates a DisplayContext with fixed dimensions
// (for testing).
func NewDisplayContextWithSize(width, height int) *DisplayContext {
	return &DisplayContext{
		TermWidth:  width,
		TermHeight: height,
		IsTTY:      true,
	}
}
