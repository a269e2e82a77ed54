package render

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/ProcessMining-uOttawa/PMM4RPAAI/pkg/report"
)

// maxActivityWidth caps the activity column; longer names truncate.
const maxActivityWidth = 40

// rankGutter is the indent plus "%2d. " rank prefix on table rows.
const rankGutter = 6

// Terminal renders sections as styled terminal output via lipgloss.
type Terminal struct {
	theme Theme
	width int
	caser cases.Caser
}

// NewTerminal creates a terminal renderer with the given theme.
func NewTerminal(theme Theme, width int) *Terminal {
	if width <= 0 {
		width = 80
	}
	return &Terminal{theme: theme, width: width, caser: cases.Title(language.English)}
}

// Render formats all sections for terminal display.
func (t *Terminal) Render(sections []report.Section) string {
	var parts []string
	for _, s := range sections {
		if out := t.renderOne(s); out != "" {
			parts = append(parts, out)
		}
	}
	return strings.Join(parts, "\n")
}

func (t *Terminal) renderOne(s report.Section) string {
	switch v := s.(type) {
	case report.Summary:
		return t.renderSummary(v)
	case report.Table:
		return t.renderTable(v)
	case report.Achieved:
		return t.renderAchieved(v)
	case report.Note:
		return t.renderNote(v)
	default:
		return ""
	}
}

func (t *Terminal) renderSummary(s report.Summary) string {
	var sb strings.Builder
	sb.WriteString(t.theme.Bold.Render(t.caser.String(s.Label) + " Reduction"))
	sb.WriteString("\n  ")
	sb.WriteString(t.theme.Primary.Render(fmt.Sprintf("%s Total: %s%s",
		t.theme.Icons.Info, amount(s.Total), unitSuffix(s.Unit))))
	sb.WriteString("\n  ")
	sb.WriteString(t.theme.Primary.Render(fmt.Sprintf("%s Goal: %.2f%% => %s%s",
		t.theme.Icons.Info, s.GoalPercent, amount(s.Target), unitSuffix(s.Unit))))
	sb.WriteString("\n")
	return sb.String()
}

func (t *Terminal) renderTable(tbl report.Table) string {
	if len(tbl.Rows) == 0 {
		return ""
	}
	var sb strings.Builder
	header := tbl.Title
	if tbl.Truncated > 0 {
		header += fmt.Sprintf(" (top %d of %d)", len(tbl.Rows), len(tbl.Rows)+tbl.Truncated)
	}
	sb.WriteString(t.theme.Bold.Render(header))
	sb.WriteString("\n")

	captions := []string{"Activity", t.caser.String(tbl.Label), "Rate", "Reducible"}
	if tbl.ShowCumulative {
		captions = append(captions, "Cumulative")
	}

	numWidths := make([]int, len(captions)-1)
	for i, c := range captions[1:] {
		numWidths[i] = runewidth.StringWidth(c)
	}
	var totalNum int
	for _, r := range tbl.Rows {
		for i, cell := range numericCells(r, tbl.ShowCumulative) {
			if w := runewidth.StringWidth(cell); w > numWidths[i] {
				numWidths[i] = w
			}
		}
	}
	for _, w := range numWidths {
		totalNum += w + 2
	}

	maxName := runewidth.StringWidth(captions[0])
	for _, r := range tbl.Rows {
		if w := runewidth.StringWidth(r.Activity); w > maxName {
			maxName = w
		}
	}
	if avail := t.width - rankGutter - totalNum; maxName > avail && avail >= 12 {
		maxName = avail
	}
	if maxName > maxActivityWidth {
		maxName = maxActivityWidth
	}

	sb.WriteString(strings.Repeat(" ", rankGutter))
	sb.WriteString(t.theme.Muted.Render(padRight(captions[0], maxName)))
	for i, c := range captions[1:] {
		sb.WriteString("  ")
		sb.WriteString(t.theme.Muted.Render(padLeft(c, numWidths[i])))
	}
	sb.WriteString("\n")

	for i, r := range tbl.Rows {
		sb.WriteString("  ")
		sb.WriteString(t.theme.Muted.Render(fmt.Sprintf("%2d. ", i+1)))
		name := runewidth.Truncate(r.Activity, maxName, "...")
		sb.WriteString(t.theme.Primary.Render(padRight(name, maxName)))
		for ci, cell := range numericCells(r, tbl.ShowCumulative) {
			sb.WriteString("  ")
			style := t.theme.Muted
			if ci == 2 {
				// the reducible column is what the ranking rides on
				style = t.theme.Warning
			}
			sb.WriteString(style.Render(padLeft(cell, numWidths[ci])))
		}
		sb.WriteString("\n")
	}
	if tbl.Truncated > 0 {
		sb.WriteString(strings.Repeat(" ", rankGutter))
		sb.WriteString(t.theme.Muted.Render(fmt.Sprintf("... %d more", tbl.Truncated)))
		sb.WriteString("\n")
	}
	return sb.String()
}

func (t *Terminal) renderAchieved(a report.Achieved) string {
	icon, style := t.theme.Icons.Met, t.theme.Success
	if !a.GoalMet {
		icon, style = t.theme.Icons.Short, t.theme.Warning
	}
	return style.Render(fmt.Sprintf("%s Achieved reduction: %s%s (%.2f%% of total %s)",
		icon, amount(a.Cumulative), unitSuffix(a.Unit), a.Percent, a.Label)) + "\n"
}

func (t *Terminal) renderNote(n report.Note) string {
	if n.Level == report.NoteWarn {
		return t.theme.Warning.Render(t.theme.Icons.Short+" "+n.Text) + "\n"
	}
	return t.theme.Muted.Render(t.theme.Icons.Info+" "+n.Text) + "\n"
}

func numericCells(r report.Row, withCumulative bool) []string {
	cells := []string{amount(r.Value), fmt.Sprintf("%.2f", r.Rate), amount(r.Reducible)}
	if withCumulative {
		cells = append(cells, amount(r.Cumulative))
	}
	return cells
}

func padRight(s string, width int) string {
	if w := runewidth.StringWidth(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}

func padLeft(s string, width int) string {
	if w := runewidth.StringWidth(s); w < width {
		return strings.Repeat(" ", width-w) + s
	}
	return s
}
