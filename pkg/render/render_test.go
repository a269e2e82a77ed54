package render

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/ProcessMining-uOttawa/PMM4RPAAI/pkg/metric"
	"github.com/ProcessMining-uOttawa/PMM4RPAAI/pkg/rank"
	"github.com/ProcessMining-uOttawa/PMM4RPAAI/pkg/report"
)

func sampleSections(t *testing.T) []report.Section {
	t.Helper()
	p, err := metric.ByName(metric.Builtin(metric.Extra{}), "cost")
	if err != nil {
		t.Fatal(err)
	}
	out := rank.Select([]rank.Activity{
		{Name: "Flight booking", Value: 100, Rate: 0.5},
		{Name: "Invoice check", Value: 50, Rate: 1.0},
		{Name: "Data entry", Value: 200, Rate: 0.1},
	}, 10)
	return report.Compose(out, p, metric.Stats{Rows: 3}, 0)
}

func TestTerminal_RendersAllSections(t *testing.T) {
	out := NewTerminal(MonoTheme(), 80).Render(sampleSections(t))

	for _, want := range []string{
		"Rework Cost Reduction",
		"Total: 350.00",
		"Goal: 10.00% => 35.00",
		"Ranked activities",
		"Flight booking",
		"Selected activities to achieve the goal (minimal set)",
		"Achieved reduction: 50.00 (14.29% of total rework cost)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("terminal output missing %q:\n%s", want, out)
		}
	}
}

func TestTerminal_TruncatesLongActivityNames(t *testing.T) {
	long := strings.Repeat("x", maxActivityWidth+20)
	sections := []report.Section{report.Table{
		Role:  report.RoleRanked,
		Title: "Ranked activities",
		Label: "rework cost",
		Rows:  []report.Row{{Activity: long, Value: 10, Rate: 0.5, Reducible: 5}},
	}}
	out := NewTerminal(MonoTheme(), 200).Render(sections)
	if strings.Contains(out, long) {
		t.Error("long activity name was not truncated")
	}
	if !strings.Contains(out, "...") {
		t.Error("truncated name does not carry an ellipsis")
	}
}

func TestTerminal_MarksTruncatedTables(t *testing.T) {
	p, err := metric.ByName(metric.Builtin(metric.Extra{}), "cost")
	if err != nil {
		t.Fatal(err)
	}
	out := rank.Select([]rank.Activity{
		{Name: "A", Value: 100, Rate: 0.5},
		{Name: "B", Value: 50, Rate: 1.0},
		{Name: "C", Value: 200, Rate: 0.1},
	}, 10)
	sections := report.Compose(out, p, metric.Stats{}, 2)

	text := NewTerminal(MonoTheme(), 80).Render(sections)
	if !strings.Contains(text, "(top 2 of 3)") {
		t.Errorf("missing truncation marker in header:\n%s", text)
	}
	if !strings.Contains(text, "... 1 more") {
		t.Errorf("missing truncation tail:\n%s", text)
	}
}

func TestPlain_MatchesScriptTexture(t *testing.T) {
	out := NewPlain().Render(sampleSections(t))

	for _, want := range []string{
		"Total rework cost:  350.00",
		"Goal reduction:     10.00% => 35.00",
		"Ranked activities:",
		"reducible_rework_cost",
		"cum_reducible_rework_cost",
		"Selected activities to achieve the goal (minimal set):",
		"Achieved reduction: 50.00 (14.29% of total rework cost)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("plain output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "\x1b[") {
		t.Error("plain output must not carry ANSI escapes")
	}
}

func TestPlain_RendersZeroTotalNote(t *testing.T) {
	sections := []report.Section{
		report.Note{Level: report.NoteWarn, Text: "Total rework cost is 0. Nothing to reduce."},
	}
	out := NewPlain().Render(sections)
	if !strings.Contains(out, "Total rework cost is 0. Nothing to reduce.") {
		t.Errorf("zero-total note missing:\n%s", out)
	}
}

func TestJSON_RoundTripsEnvelope(t *testing.T) {
	out := NewJSON().Render(sampleSections(t))

	var env struct {
		Version string `json:"version"`
		Metric  string `json:"metric"`
		Summary struct {
			Total       float64 `json:"total"`
			GoalPercent float64 `json:"goal_percent"`
			Target      float64 `json:"target"`
		} `json:"summary"`
		Ranked   []map[string]any `json:"ranked"`
		Selected []map[string]any `json:"selected"`
		Achieved struct {
			Amount  float64 `json:"amount"`
			Percent float64 `json:"percent"`
			GoalMet bool    `json:"goal_met"`
		} `json:"achieved"`
	}
	if err := json.Unmarshal([]byte(out), &env); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, out)
	}
	if env.Version != "1.0" {
		t.Errorf("version = %q, want 1.0", env.Version)
	}
	if env.Metric != "cost" {
		t.Errorf("metric = %q", env.Metric)
	}
	if env.Summary.Total != 350 || env.Summary.Target != 35 {
		t.Errorf("summary = %+v", env.Summary)
	}
	if len(env.Ranked) != 3 {
		t.Errorf("len(ranked) = %d, want 3", len(env.Ranked))
	}
	if len(env.Selected) != 1 {
		t.Errorf("len(selected) = %d, want 1", len(env.Selected))
	}
	if !env.Achieved.GoalMet {
		t.Error("achieved.goal_met = false, want true")
	}
}

func TestThemeByName(t *testing.T) {
	if got := ThemeByName("orca").Name; got != "orca" {
		t.Errorf("ThemeByName(orca).Name = %q", got)
	}
	if got := ThemeByName("mono").Name; got != "mono" {
		t.Errorf("ThemeByName(mono).Name = %q", got)
	}
	if got := ThemeByName("nope").Name; got != "default" {
		t.Errorf("unknown names fall back to the default theme, got %q", got)
	}
}
