// Package term renders outcome views as styled terminal output.
package term

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Semantic colors shared by both success and failure layouts.
var (
	successColor = lipgloss.Color("#8BC34A")
	errorColor   = lipgloss.Color("#e53935")
	warningColor = lipgloss.Color("#FFC107")
	mutedColor   = lipgloss.Color("#8a8f98")
	infoColor    = lipgloss.Color("#2196F3")
)

// Styles holds the styled components used by the renderer.
type Styles struct {
	SuccessBadge lipgloss.Style
	ErrorBadge   lipgloss.Style
	Title        lipgloss.Style
	Label        lipgloss.Style
	Body         lipgloss.Style
	Muted        lipgloss.Style
	Warning      lipgloss.Style
	Info         lipgloss.Style
	Panel        lipgloss.Style
}

// DefaultStyles builds the standard style set.
func DefaultStyles() Styles {
	return Styles{
		SuccessBadge: lipgloss.NewStyle().
			Background(successColor).
			Foreground(lipgloss.Color("#ffffff")).
			Padding(0, 1).
			Bold(true),
		ErrorBadge: lipgloss.NewStyle().
			Background(errorColor).
			Foreground(lipgloss.Color("#ffffff")).
			Padding(0, 1).
			Bold(true),
		Title: lipgloss.NewStyle().
			Bold(true).
			MarginBottom(1),
		Label: lipgloss.NewStyle().
			Foreground(mutedColor).
			Bold(true),
		Body:    lipgloss.NewStyle(),
		Muted:   lipgloss.NewStyle().Foreground(mutedColor),
		Warning: lipgloss.NewStyle().Foreground(warningColor).Bold(true),
		Info:    lipgloss.NewStyle().Foreground(infoColor),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(mutedColor).
			Padding(0, 1),
	}
}

// table lays out a header row plus data rows with padded columns.
type table struct {
	headers []string
	rows    [][]string
}

func (t *table) render(s Styles) string {
	if len(t.rows) == 0 {
		return ""
	}

	widths := make([]int, len(t.headers))
	for i, h := range t.headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			if i < len(widths) {
				if w := lipgloss.Width(cell); w > widths[i] {
					widths[i] = w
				}
			}
		}
	}
	for i := range widths {
		widths[i] += 2
	}

	headerStyle := s.Label.Padding(0, 1)
	cellStyle := s.Body.Padding(0, 1)

	var sb strings.Builder
	for i, h := range t.headers {
		sb.WriteString(headerStyle.Width(widths[i]).Render(h))
		if i < len(t.headers)-1 {
			sb.WriteString(s.Muted.Render("|"))
		}
	}
	sb.WriteString("\n")

	total := len(t.headers) - 1
	for _, w := range widths {
		total += w
	}
	sb.WriteString(s.Muted.Render(strings.Repeat("-", total)) + "\n")

	for _, row := range t.rows {
		for i, cell := range row {
			if i < len(widths) {
				sb.WriteString(cellStyle.Width(widths[i]).Render(cell))
				if i < len(row)-1 {
					sb.WriteString(s.Muted.Render("|"))
				}
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
