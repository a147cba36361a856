package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme colors
var (
	ColorBorder    = lipgloss.Color("#282726")
	ColorTextDim   = lipgloss.Color("#575653")
	ColorTextMuted = lipgloss.Color("#6F6E69")
	ColorText      = lipgloss.Color("#FFFCF0")
	ColorAccent    = lipgloss.Color("#3AA99F")
	ColorGreen     = lipgloss.Color("#879A39")
	ColorOrange    = lipgloss.Color("#DA702C")
	ColorRed       = lipgloss.Color("#D14D41")
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorText).
			Align(lipgloss.Center)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorAccent)

	valueStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	mutedStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)

	goodStyle = lipgloss.NewStyle().
			Foreground(ColorGreen)

	warnStyle = lipgloss.NewStyle().
			Foreground(ColorOrange)

	badStyle = lipgloss.NewStyle().
			Foreground(ColorRed)

	dimStyle = lipgloss.NewStyle().
			Foreground(ColorTextDim)
)

// Separator is a row that renders as a horizontal rule.
var Separator = []string{"---"}

// Table represents a bordered text table for CLI output.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
}

// RenderTitle renders a centered title bar in a bordered box.
func RenderTitle(title string) string {
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Width(55).
		Align(lipgloss.Center).
		Padding(0, 1)

	return border.Render(titleStyle.Render(title))
}

// RenderMuted renders a hint line.
func RenderMuted(s string) string {
	return mutedStyle.Render(s)
}

// RenderStatus colors a status word: good, warn or bad.
func RenderStatus(status, level string) string {
	switch level {
	case "good":
		return goodStyle.Render(status)
	case "warn":
		return warnStyle.Render(status)
	case "bad":
		return badStyle.Render(status)
	default:
		return status
	}
}

// RenderTable renders a bordered table with headers and rows. The first
// column is left aligned, the rest right aligned.
func RenderTable(t Table) string {
	numCols := len(t.Headers)
	if numCols == 0 {
		for _, row := range t.Rows {
			if len(row) > numCols {
				numCols = len(row)
			}
		}
	}
	if numCols == 0 {
		return ""
	}

	widths := make([]int, numCols)
	for i, h := range t.Headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range t.Rows {
		if isSeparator(row) {
			continue
		}
		for i, cell := range row {
			if i < numCols && lipgloss.Width(cell) > widths[i] {
				widths[i] = lipgloss.Width(cell)
			}
		}
	}

	var b strings.Builder

	if t.Title != "" {
		b.WriteString("  ")
		b.WriteString(headerStyle.Render(t.Title))
		b.WriteString("\n")
	}

	b.WriteString(rule("╭", "┬", "╮", widths))

	if len(t.Headers) > 0 {
		b.WriteString(dimStyle.Render("│"))
		for i, h := range t.Headers {
			b.WriteString(headerStyle.Render(" " + pad(h, widths[i], true) + " "))
			b.WriteString(dimStyle.Render("│"))
		}
		b.WriteString("\n")
		b.WriteString(rule("├", "┼", "┤", widths))
	}

	for _, row := range t.Rows {
		if isSeparator(row) {
			b.WriteString(rule("├", "┼", "┤", widths))
			continue
		}

		b.WriteString(dimStyle.Render("│"))
		for i := 0; i < numCols; i++ {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			b.WriteString(valueStyle.Render(" " + pad(cell, widths[i], i == 0) + " "))
			b.WriteString(dimStyle.Render("│"))
		}
		b.WriteString("\n")
	}

	b.WriteString(rule("╰", "┴", "╯", widths))
	return b.String()
}

// RenderProgressBar renders a bar for a 0-100 percentage. Values above 100
// fill the bar and turn it red.
func RenderProgressBar(pct float64, width int) string {
	if width <= 0 {
		return ""
	}
	clamped := pct
	if clamped < 0 {
		clamped = 0
	}
	if clamped > 100 {
		clamped = 100
	}

	filled := int(clamped / 100 * float64(width))
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)

	style := goodStyle
	switch {
	case pct > 100:
		style = badStyle
	case pct >= 80:
		style = warnStyle
	}
	return fmt.Sprintf("[%s] %s", style.Render(bar), FormatPercent(pct))
}

func isSeparator(row []string) bool {
	return len(row) == 1 && row[0] == Separator[0]
}

func rule(left, mid, right string, widths []int) string {
	var b strings.Builder
	b.WriteString(left)
	for i, w := range widths {
		b.WriteString(strings.Repeat("─", w+2))
		if i < len(widths)-1 {
			b.WriteString(mid)
		}
	}
	b.WriteString(right)
	return dimStyle.Render(b.String()) + "\n"
}

// pad pads s to width visible cells, measuring with lipgloss so styled cells
// line up.
func pad(s string, width int, left bool) string {
	gap := width - lipgloss.Width(s)
	if gap <= 0 {
		return s
	}
	if left {
		return s + strings.Repeat(" ", gap)
	}
	return strings.Repeat(" ", gap) + s
}
