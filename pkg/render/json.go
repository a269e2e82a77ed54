package render

import (
	"encoding/json"

	"github.com/ProcessMining-uOttawa/PMM4RPAAI/pkg/report"
)

// JSON renders sections as structured JSON for automation.
type JSON struct{}

// NewJSON creates a JSON renderer.
func NewJSON() *JSON {
	return &JSON{}
}

// jsonOutput is the top-level JSON structure.
type jsonOutput struct {
	Version         string        `json:"version"`
	Metric          string        `json:"metric,omitempty"`
	Unit            string        `json:"unit,omitempty"`
	Summary         *jsonSummary  `json:"summary,omitempty"`
	Ranked          []jsonRow     `json:"ranked,omitempty"`
	RankedTruncated int           `json:"ranked_truncated,omitempty"`
	Selected        []jsonRow     `json:"selected,omitempty"`
	Achieved        *jsonAchieved `json:"achieved,omitempty"`
	Notes           []string      `json:"notes,omitempty"`
}

type jsonSummary struct {
	Total       float64 `json:"total"`
	GoalPercent float64 `json:"goal_percent"`
	Target      float64 `json:"target"`
}

type jsonRow struct {
	Activity   string  `json:"activity"`
	Value      float64 `json:"value"`
	Rate       float64 `json:"rate"`
	Reducible  float64 `json:"reducible"`
	Cumulative float64 `json:"cumulative,omitempty"`
}

type jsonAchieved struct {
	Amount  float64 `json:"amount"`
	Percent float64 `json:"percent"`
	GoalMet bool    `json:"goal_met"`
}

// Render formats all sections as indented JSON.
func (j *JSON) Render(sections []report.Section) string {
	out := jsonOutput{Version: "1.0"}
	for _, s := range sections {
		switch v := s.(type) {
		case report.Summary:
			out.Metric = v.Metric
			out.Unit = v.Unit
			out.Summary = &jsonSummary{Total: v.Total, GoalPercent: v.GoalPercent, Target: v.Target}
		case report.Table:
			rows := make([]jsonRow, 0, len(v.Rows))
			for _, r := range v.Rows {
				rows = append(rows, jsonRow{
					Activity:   r.Activity,
					Value:      r.Value,
					Rate:       r.Rate,
					Reducible:  r.Reducible,
					Cumulative: r.Cumulative,
				})
			}
			if v.Role == report.RoleSelected {
				out.Selected = rows
			} else {
				out.Ranked = rows
				out.RankedTruncated = v.Truncated
			}
		case report.Achieved:
			out.Achieved = &jsonAchieved{Amount: v.Cumulative, Percent: v.Percent, GoalMet: v.GoalMet}
		case report.Note:
			out.Notes = append(out.Notes, v.Text)
		}
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		errJSON, _ := json.Marshal(map[string]string{"error": err.Error()})
		return string(errJSON)
	}
	return string(data) + "\n"
}
