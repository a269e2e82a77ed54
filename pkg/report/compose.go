package report

import (
	"fmt"
	"strings"

	"github.com/ProcessMining-uOttawa/PMM4RPAAI/pkg/metric"
	"github.com/ProcessMining-uOttawa/PMM4RPAAI/pkg/rank"
)

// Compose turns a ranking outcome into the ordered section list
// renderers consume. top > 0 truncates the ranked table to that many
// rows; the selected table is never truncated.
func Compose(out rank.Outcome, p metric.Profile, st metric.Stats, top int) []Section {
	if out.Total <= 0 {
		return []Section{
			Note{Level: NoteWarn, Text: fmt.Sprintf("Total %s is 0. Nothing to reduce.", p.Label)},
		}
	}

	sections := []Section{
		Summary{
			Metric:      p.Name,
			Label:       p.Label,
			Unit:        p.Unit,
			Total:       out.Total,
			GoalPercent: out.GoalPercent,
			Target:      out.Target,
		},
	}
	if text := recoveredCellsNote(st); text != "" {
		sections = append(sections, Note{Level: NoteInfo, Text: text})
	}

	ranked := Table{
		Role:  RoleRanked,
		Title: "Ranked activities",
		Label: p.Label,
		Unit:  p.Unit,
	}
	rows := out.Ranked
	if top > 0 && len(rows) > top {
		ranked.Truncated = len(rows) - top
		rows = rows[:top]
	}
	for _, r := range rows {
		ranked.Rows = append(ranked.Rows, Row{
			Activity:  r.Name,
			Value:     r.Value,
			Rate:      r.Rate,
			Reducible: r.Reducible,
		})
	}
	sections = append(sections, ranked)

	if len(out.Selection.Items) == 0 {
		if out.GoalMet() {
			// A zero goal needs no selection at all.
			sections = append(sections, Note{Level: NoteInfo, Text: "Nothing to select: the goal is already met."})
		} else {
			sections = append(sections, Note{
				Level: NoteWarn,
				Text:  fmt.Sprintf("None (no reducible %s based on automation rate).", p.Label),
			})
		}
	} else {
		selected := Table{
			Role:           RoleSelected,
			Title:          "Selected activities to achieve the goal (minimal set)",
			Label:          p.Label,
			Unit:           p.Unit,
			ShowCumulative: true,
		}
		var cum float64
		for _, r := range out.Selection.Items {
			cum += r.Reducible
			selected.Rows = append(selected.Rows, Row{
				Activity:   r.Name,
				Value:      r.Value,
				Rate:       r.Rate,
				Reducible:  r.Reducible,
				Cumulative: cum,
			})
		}
		sections = append(sections, selected)
	}

	sections = append(sections, Achieved{
		Label:      p.Label,
		Unit:       p.Unit,
		Cumulative: out.Selection.Cumulative,
		Percent:    out.Selection.Achieved * 100,
		GoalMet:    out.GoalMet(),
	})
	if !out.GoalMet() {
		sections = append(sections, Note{
			Level: NoteWarn,
			Text: fmt.Sprintf("Goal not reachable: %.2f%s of reducible %s still missing.",
				out.Shortfall(), unitSuffix(p.Unit), p.Label),
		})
	}
	return sections
}

func recoveredCellsNote(st metric.Stats) string {
	var parts []string
	if st.BadValues > 0 {
		parts = append(parts, fmt.Sprintf("%d non-numeric metric cell(s)", st.BadValues))
	}
	if st.BlankRates > 0 {
		parts = append(parts, fmt.Sprintf("%d blank rate(s)", st.BlankRates))
	}
	if len(parts) == 0 {
		return ""
	}
	return fmt.Sprintf("Defaulted %s to 0.", strings.Join(parts, " and "))
}

func unitSuffix(unit string) string {
	if unit == "" {
		return ""
	}
	return " " + unit
}
