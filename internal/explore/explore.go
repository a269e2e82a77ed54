// Package explore is the interactive goal explorer. It re-ranks the
// loaded activities as the user nudges the reduction goal up and down,
// so the cost of a target can be eyeballed before committing to it.
package explore

import (
	"fmt"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/ProcessMining-uOttawa/PMM4RPAAI/pkg/metric"
	"github.com/ProcessMining-uOttawa/PMM4RPAAI/pkg/rank"
	"github.com/ProcessMining-uOttawa/PMM4RPAAI/pkg/render"
	"github.com/ProcessMining-uOttawa/PMM4RPAAI/pkg/report"
)

// Run launches the explorer and blocks until the user quits. It returns
// the goal the user settled on so the caller can print the final report
// for it.
func Run(p metric.Profile, acts []rank.Activity, st metric.Stats, goal float64, theme render.Theme) (float64, error) {
	program := tea.NewProgram(newModel(p, acts, st, goal, theme), tea.WithAltScreen())
	finalModel, err := program.Run()
	if err != nil {
		return goal, err
	}
	return finalModel.(model).goal, nil
}

const goalStep = 1.0

type model struct {
	profile  metric.Profile
	acts     []rank.Activity
	stats    metric.Stats
	goal     float64
	theme    render.Theme
	caser    cases.Caser
	viewport viewport.Model
	ready    bool
	width    int
	height   int
}

func newModel(p metric.Profile, acts []rank.Activity, st metric.Stats, goal float64, theme render.Theme) model {
	vp := viewport.New(0, 0)
	vp.SetContent("Loading...")
	return model{
		profile:  p,
		acts:     acts,
		stats:    st,
		goal:     clampGoal(goal),
		theme:    theme,
		caser:    cases.Title(language.English),
		viewport: vp,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "enter", "ctrl+c":
			return m, tea.Quit
		case "left", "h":
			m.goal = clampGoal(m.goal - goalStep)
			m.refresh()
			return m, nil
		case "right", "l":
			m.goal = clampGoal(m.goal + goalStep)
			m.refresh()
			return m, nil
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = msg.Width
		m.viewport.Height = msg.Height - 2 // title row, help bar
		if m.viewport.Height < 3 {
			m.viewport.Height = 3
		}
		m.ready = true
		m.refresh()
		return m, nil
	}
	// Everything else (up/down, pgup/pgdn, mouse wheel) scrolls the report.
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// refresh re-runs the selection at the current goal and re-renders the
// report into the viewport.
func (m *model) refresh() {
	out := rank.Select(m.acts, m.goal)
	body := render.NewTerminal(m.theme, m.width).Render(report.Compose(out, m.profile, m.stats, 0))
	m.viewport.SetContent(body)
	m.viewport.GotoTop()
}

func (m model) View() string {
	if !m.ready {
		return "Loading explorer..."
	}
	title := m.theme.Bold.Render(m.caser.String(m.profile.Label)+" Explorer") +
		"  " + m.theme.Warning.Render(fmt.Sprintf("Goal: %.2f%%", m.goal))
	help := m.theme.Muted.Render("←/→ adjust goal • ↑/↓ scroll • q quit")
	return lipgloss.JoinVertical(lipgloss.Left, title, m.viewport.View(), help)
}

func clampGoal(g float64) float64 {
	switch {
	case g < 0:
		return 0
	case g > 100:
		return 100
	}
	return g
}
