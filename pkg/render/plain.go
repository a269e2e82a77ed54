package render

import (
	"fmt"
	"strings"

	"github.com/ProcessMining-uOttawa/PMM4RPAAI/pkg/report"
)

// Plain renders sections as unstyled text for pipes and logs. Layout
// follows the classic script output: totals first, then the ranked
// table, the selected set, and the achieved reduction.
type Plain struct{}

// NewPlain creates a plain text renderer.
func NewPlain() *Plain {
	return &Plain{}
}

// Render formats all sections as plain text.
func (p *Plain) Render(sections []report.Section) string {
	var parts []string
	for _, s := range sections {
		var out string
		switch v := s.(type) {
		case report.Summary:
			out = p.renderSummary(v)
		case report.Table:
			out = p.renderTable(v)
		case report.Achieved:
			out = fmt.Sprintf("Achieved reduction: %s%s (%.2f%% of total %s)\n",
				amount(v.Cumulative), unitSuffix(v.Unit), v.Percent, v.Label)
		case report.Note:
			out = v.Text + "\n"
		}
		if out != "" {
			parts = append(parts, out)
		}
	}
	return strings.Join(parts, "\n")
}

func (p *Plain) renderSummary(s report.Summary) string {
	totalLabel := "Total " + s.Label + ":"
	goalLabel := "Goal reduction:"
	w := len(totalLabel)
	if len(goalLabel) > w {
		w = len(goalLabel)
	}
	w += 2

	var sb strings.Builder
	fmt.Fprintf(&sb, "%-*s%s%s\n", w, totalLabel, amount(s.Total), unitSuffix(s.Unit))
	fmt.Fprintf(&sb, "%-*s%.2f%% => %s%s\n", w, goalLabel, s.GoalPercent, amount(s.Target), unitSuffix(s.Unit))
	return sb.String()
}

func (p *Plain) renderTable(tbl report.Table) string {
	if len(tbl.Rows) == 0 {
		return ""
	}
	metricCol := strings.ReplaceAll(tbl.Label, " ", "_")
	captions := []string{"activity", metricCol, "automation_rate", "reducible_" + metricCol}
	if tbl.ShowCumulative {
		captions = append(captions, "cum_reducible_"+metricCol)
	}

	nameW := len(captions[0])
	for _, r := range tbl.Rows {
		if len(r.Activity) > nameW {
			nameW = len(r.Activity)
		}
	}
	numW := make([]int, len(captions)-1)
	for i, c := range captions[1:] {
		numW[i] = len(c)
	}
	for _, r := range tbl.Rows {
		for i, cell := range numericCells(r, tbl.ShowCumulative) {
			if len(cell) > numW[i] {
				numW[i] = len(cell)
			}
		}
	}

	var sb strings.Builder
	title := tbl.Title
	if tbl.Truncated > 0 {
		title += fmt.Sprintf(" (top %d of %d)", len(tbl.Rows), len(tbl.Rows)+tbl.Truncated)
	}
	sb.WriteString(title + ":\n")

	fmt.Fprintf(&sb, "  %-*s", nameW, captions[0])
	for i, c := range captions[1:] {
		fmt.Fprintf(&sb, "  %*s", numW[i], c)
	}
	sb.WriteString("\n")

	for _, r := range tbl.Rows {
		fmt.Fprintf(&sb, "  %-*s", nameW, r.Activity)
		for i, cell := range numericCells(r, tbl.ShowCumulative) {
			fmt.Fprintf(&sb, "  %*s", numW[i], cell)
		}
		sb.WriteString("\n")
	}
	if tbl.Truncated > 0 {
		fmt.Fprintf(&sb, "  ... %d more\n", tbl.Truncated)
	}
	return sb.String()
}
