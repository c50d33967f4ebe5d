// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

package wizard

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Icons for wizard output.
const (
	IconGear    = "⚙"
	IconInfo    = "ℹ"
	IconSuccess = "✓"
	IconWarning = "⚠"
)

// Styles for wizard and status-screen output.
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("62")).
			MarginBottom(1)

	SubtitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("245"))

	DimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	KeyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("45"))

	ValueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("62")).
			Padding(0, 1)

	CursorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("6")).
			Bold(true)

	OKStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("42"))

	FailStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))
)

// Printer writes styled wizard progress to an io.Writer, defaulting to
// stdout.
type Printer struct {
	Out io.Writer
}

// NewPrinter creates a Printer writing to stdout.
func NewPrinter() *Printer {
	return &Printer{Out: os.Stdout}
}

// PrintHeader prints a wizard section header with icon.
func (p *Printer) PrintHeader(icon, title string) {
	fmt.Fprintln(p.Out)
	fmt.Fprintln(p.Out, TitleStyle.Render(icon+" "+title))
	fmt.Fprintln(p.Out)
}

// PrintInfo prints an info line.
func (p *Printer) PrintInfo(msg string) {
	fmt.Fprintln(p.Out, DimStyle.Render(IconInfo+" "+msg))
}

// PrintOrderedSummary prints a key/value summary in the given key order,
// skipping keys whose value is empty.
func (p *Printer) PrintOrderedSummary(title string, keys []string, items map[string]string) {
	fmt.Fprintln(p.Out)
	fmt.Fprintln(p.Out, SubtitleStyle.Render(title))
	fmt.Fprintln(p.Out)
	for _, key := range keys {
		if value, ok := items[key]; ok && value != "" {
			fmt.Fprintf(p.Out, "  %s %s\n", KeyStyle.Render(key+":"), ValueStyle.Render(value))
		}
	}
}

// PrintDivider prints a horizontal divider.
func (p *Printer) PrintDivider() {
	fmt.Fprintln(p.Out, DimStyle.Render(strings.Repeat("─", 50)))
}
