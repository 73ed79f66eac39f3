package ui

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette
// - Default (white/black): primary text
// - Accent (soft purple #A78BFA): highlights, paths, titles
// - Muted (gray): secondary info, hints
// - No colored success/error output - unicode symbols only

var (
	// Accent style for file paths, titles, highlights
	Accent = lipgloss.NewStyle().Foreground(lipgloss.Color("#A78BFA"))

	// Muted style for secondary info, hints, truncated descriptions
	Muted = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086"))

	// Bold style for emphasis
	Bold = lipgloss.NewStyle().Bold(true)

	// AccentBold combines accent color with bold
	AccentBold = lipgloss.NewStyle().Foreground(lipgloss.Color("#A78BFA")).Bold(true)
)

// accentColor is the configured accent, empty when theming is disabled.
var accentColor = "#A78BFA"

var (
	ansiColorRe = regexp.MustCompile(`^\d{1,3}$`)
	hexColorRe  = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)
)

// ConfigureTheme applies the configured accent color to the shared styles.
// Accepts ANSI codes ("0"-"255") or hex colors ("#RRGGBB"); anything else
// disables the accent.
func ConfigureTheme(accent string) {
	color, ok := normalizeAccentColor(accent)
	if !ok {
		accentColor = ""
		Accent = lipgloss.NewStyle()
		AccentBold = lipgloss.NewStyle().Bold(true)
		return
	}
	accentColor = color
	Accent = lipgloss.NewStyle().Foreground(lipgloss.Color(color))
	AccentBold = lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Bold(true)
}

// AccentColor returns the active accent color, if any.
func AccentColor() (string, bool) {
	if accentColor == "" {
		return "", false
	}
	return accentColor, true
}

func normalizeAccentColor(accent string) (string, bool) {
	accent = strings.TrimSpace(accent)
	if accent == "" {
		return "#A78BFA", true // default accent
	}
	if ansiColorRe.MatchString(accent) || hexColorRe.MatchString(accent) {
		return accent, true
	}
	return "", false
}
