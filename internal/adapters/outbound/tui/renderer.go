// Package tui renders generation results for human terminals.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/specforge/specforge/internal/domain"
)

var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
	warning = lipgloss.Color("#F59E0B") // amber-yellow
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Align(lipgloss.Center)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 4).
			Align(lipgloss.Center).
			Width(60)

	dimStyle      = lipgloss.NewStyle().Foreground(dim)
	faintStyle    = lipgloss.NewStyle().Foreground(faint)
	okStyle       = lipgloss.NewStyle().Foreground(success)
	warnStyle     = lipgloss.NewStyle().Foreground(warning)
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(fg)
	separatorLine = faintStyle.Render(strings.Repeat("─", 56))
)

// RenderResult renders the generation summary: the counts box, a per-kind
// breakdown, and any per-case oracle failures.
func RenderResult(req domain.GenerationRequest, res *domain.GenerationResult) string {
	var b strings.Builder

	title := headerStyle.Render("specforge")
	subtitle := dimStyle.Render(fmt.Sprintf("%s.%s", req.ClassUnderTest, req.Method))
	total := titleStyle.Render(fmt.Sprintf("%d test cases", res.Summary.Total))
	b.WriteString(boxStyle.Render(title + "\n" + subtitle + "\n\n" + total))
	b.WriteString("\n\n")

	b.WriteString(renderCount("equivalence", res.Summary.Equivalence))
	b.WriteString(renderCount("boundary", res.Summary.Boundary))
	b.WriteString(renderCount("combination", res.Summary.Combination))

	if len(res.Failures) > 0 {
		b.WriteString("\n" + separatorLine + "\n")
		b.WriteString(warnStyle.Render(fmt.Sprintf("%d case(s) without expected value", len(res.Failures))))
		b.WriteString("\n")
		for _, f := range res.Failures {
			b.WriteString(dimStyle.Render(fmt.Sprintf("  case %d: %s", f.CaseIndex, f.Reason)))
			b.WriteString("\n")
		}
	}

	if res.File != "" {
		b.WriteString("\n")
		b.WriteString(okStyle.Render("→ " + res.File))
		b.WriteString("\n")
	}
	return b.String()
}

func renderCount(name string, n int) string {
	label := dimStyle.Render(fmt.Sprintf("%-14s", name))
	return fmt.Sprintf("  %s %s\n", label, titleStyle.Render(fmt.Sprintf("%d", n)))
}
