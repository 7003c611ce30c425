// Package output provides styled terminal rendering helpers for argpath.
package output

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Color constants for consistent styling across the CLI.
var (
	// ColorPrimary is used for headers and emphasis.
	ColorPrimary = lipgloss.Color("#64b5f6")

	// ColorSuccess marks kept arguments.
	ColorSuccess = lipgloss.Color("#66bb6a")

	// ColorError marks rejected arguments.
	ColorError = lipgloss.Color("#ef5350")

	// ColorWarning marks collapsed duplicates and paths that do not exist.
	ColorWarning = lipgloss.Color("#fff59d")

	// ColorMuted is used for secondary text and borders.
	ColorMuted = lipgloss.Color("#888888")
)

// Styles provides reusable lipgloss styles.
var (
	StyleHeader  lipgloss.Style
	StyleSuccess lipgloss.Style
	StyleError   lipgloss.Style
	StyleWarning lipgloss.Style
	StyleMuted   lipgloss.Style
	StyleBold    lipgloss.Style
)

func init() {
	applyColorStyles()
}

func applyColorStyles() {
	StyleHeader = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)

	StyleSuccess = lipgloss.NewStyle().
		Foreground(ColorSuccess)

	StyleError = lipgloss.NewStyle().
		Foreground(ColorError)

	StyleWarning = lipgloss.NewStyle().
		Foreground(ColorWarning)

	StyleMuted = lipgloss.NewStyle().
		Foreground(ColorMuted)

	StyleBold = lipgloss.NewStyle().
		Bold(true)
}

// SetNoColor disables or enables color output globally.
// When disabled, all package-level styles are reassigned to unstyled renderers;
// enabling rebuilds the colored styles.
func SetNoColor(disabled bool) {
	if !disabled {
		applyColorStyles()
		return
	}
	plain := lipgloss.NewStyle()
	StyleHeader = plain
	StyleSuccess = plain
	StyleError = plain
	StyleWarning = plain
	StyleMuted = plain
	StyleBold = plain
}

// ColorEnabled reports whether styled output should be written to f: color
// must be configured on and f must be a terminal. NO_COLOR always wins.
func ColorEnabled(f *os.File, configured bool) bool {
	if !configured || os.Getenv("NO_COLOR") != "" {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Section returns a styled section header with a horizontal rule.
func Section(title string) string {
	header := StyleHeader.Render(title)
	rule := StyleMuted.Render(strings.Repeat("─", 66))
	return fmt.Sprintf("\n %s\n %s", header, rule)
}
