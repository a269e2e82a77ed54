// pare ranks activities by their reducible share of a chosen metric and
// picks the smallest set that meets a reduction goal.
//
// Usage:
//
//	pare -csv rework.csv -goal 10
//	pare -csv process.csv -goal 25 -metric hours -out ranked.csv
//	cat rework.csv | pare -csv - -goal 10 -format json
//
// The metric column is auto-detected (rework cost, rework hours, or
// duration) unless -metric picks one explicitly.
//
// Output modes (auto-detected):
//
//	terminal  — styled Unicode output (default when TTY)
//	plain     — script-compatible plain text (default when piped)
//	json      — structured JSON for automation
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"

	"github.com/ProcessMining-uOttawa/PMM4RPAAI/internal/config"
	"github.com/ProcessMining-uOttawa/PMM4RPAAI/internal/explore"
	"github.com/ProcessMining-uOttawa/PMM4RPAAI/internal/version"
	"github.com/ProcessMining-uOttawa/PMM4RPAAI/pkg/metric"
	"github.com/ProcessMining-uOttawa/PMM4RPAAI/pkg/rank"
	"github.com/ProcessMining-uOttawa/PMM4RPAAI/pkg/render"
	"github.com/ProcessMining-uOttawa/PMM4RPAAI/pkg/report"
	"github.com/ProcessMining-uOttawa/PMM4RPAAI/pkg/tabular"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

const goalUnset = -1.0

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, cfgErr := config.Load()
	if cfgErr != nil {
		fmt.Fprintf(stderr, "pare: warning: %v\n", cfgErr)
	}
	if cfg.Path != "" {
		debugf(stderr, "config: %s", cfg.Path)
	}

	fs := flag.NewFlagSet("pare", flag.ContinueOnError)
	fs.SetOutput(stderr)
	csvPath := fs.String("csv", "", "Path to the activity table (CSV). Use '-' for stdin.")
	goalFlag := fs.Float64("goal", goalUnset, "Reduction goal as a percentage of the total (0-100)")
	metricFlag := fs.String("metric", "auto", "Metric to rank by: auto, cost, hours, duration")
	outPath := fs.String("out", "", "Write the full ranked table to this CSV path")
	formatFlag := fs.String("format", cfg.Format, "Output format: auto, terminal, plain, json")
	themeFlag := fs.String("theme", cfg.Theme, "Theme: default, orca, mono")
	topFlag := fs.Int("top", cfg.Top, "Show only the top N ranked rows (0 = all)")
	noColor := fs.Bool("no-color", false, "Disable ANSI colors")
	interactive := fs.Bool("interactive", false, "Explore goals in a TUI before the final report (requires a terminal)")
	versionFlag := fs.Bool("version", false, "Print version and exit")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if *versionFlag {
		fmt.Fprintln(stdout, version.String())
		return 0
	}

	if *csvPath == "" {
		fmt.Fprintf(stderr, "pare: -csv is required\n")
		return 2
	}
	if *goalFlag == goalUnset {
		fmt.Fprintf(stderr, "pare: -goal is required\n")
		return 2
	}
	// NaN compares false against both bounds, so it needs its own check.
	if math.IsNaN(*goalFlag) || *goalFlag < 0 || *goalFlag > 100 {
		fmt.Fprintf(stderr, "pare: goal must be between 0 and 100, got %v\n", *goalFlag)
		return 2
	}

	mode := resolveFormat(*formatFlag, stdout)
	validFormats := map[string]bool{"terminal": true, "plain": true, "json": true}
	if !validFormats[mode] {
		fmt.Fprintf(stderr, "pare: unknown format %q (expected auto, terminal, plain, json)\n", *formatFlag)
		return 2
	}

	var tbl *tabular.Table
	var err error
	if *csvPath == "-" {
		tbl, err = tabular.Read(stdin)
	} else {
		tbl, err = tabular.ReadFile(*csvPath)
	}
	if err != nil {
		fmt.Fprintf(stderr, "pare: %v\n", err)
		return 1
	}

	profiles := metric.Builtin(cfg.Extra())
	var prof metric.Profile
	if *metricFlag == "auto" {
		prof, err = metric.Detect(profiles, tbl)
	} else {
		prof, err = metric.ByName(profiles, *metricFlag)
	}
	if err != nil {
		fmt.Fprintf(stderr, "pare: %v\n", err)
		return 2
	}
	debugf(stderr, "metric: %s", prof.Name)

	acts, stats, err := metric.Extract(tbl, prof)
	if err != nil {
		fmt.Fprintf(stderr, "pare: %v\n", err)
		var missing *tabular.MissingColumnError
		if errors.As(err, &missing) {
			return 2
		}
		return 1
	}

	goal := *goalFlag
	if *interactive {
		if !isTTYWriter(stdout) {
			fmt.Fprintf(stderr, "pare: -interactive requires a terminal\n")
			return 2
		}
		goal, err = explore.Run(prof, acts, stats, goal, resolveTheme(*themeFlag, *noColor))
		if err != nil {
			fmt.Fprintf(stderr, "pare: %v\n", err)
			return 1
		}
	}

	out := rank.Select(acts, goal)
	sections := report.Compose(out, prof, stats, *topFlag)

	if *outPath != "" && out.Total > 0 {
		header, rows := rankedCSV(out, prof)
		if err := tabular.WriteFile(*outPath, header, rows); err != nil {
			fmt.Fprintf(stderr, "pare: %v\n", err)
			return 1
		}
		sections = append(sections, report.Note{Level: report.NoteInfo, Text: "Saved ranked table to: " + *outPath})
	}

	output := selectRenderer(mode, *themeFlag, *noColor, stdout).Render(sections)
	fmt.Fprint(stdout, output)
	return 0
}

// rankedCSV flattens the ranked outcome into export rows, one per
// activity in rank order with a running reducible total.
func rankedCSV(out rank.Outcome, p metric.Profile) (header []string, rows [][]string) {
	col := strings.ReplaceAll(p.Label, " ", "_")
	header = []string{"activity", col, "automation_rate", "reducible_" + col, "cum_reducible_" + col}
	cum := 0.0
	for _, r := range out.Ranked {
		cum += r.Reducible
		rows = append(rows, []string{
			r.Name,
			formatNumber(r.Value),
			formatNumber(r.Rate),
			formatNumber(r.Reducible),
			formatNumber(cum),
		})
	}
	return header, rows
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// isTTYWriter reports whether w is a terminal.
func isTTYWriter(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func resolveFormat(format string, w io.Writer) string {
	if format != "auto" {
		return format
	}
	// Auto-detect: TTY = terminal, piped = plain
	if f, ok := w.(*os.File); ok {
		if term.IsTerminal(int(f.Fd())) {
			return "terminal"
		}
	}
	return "plain"
}

func resolveTheme(name string, noColor bool) render.Theme {
	// Honor NO_COLOR alongside the flag
	if noColor || os.Getenv("NO_COLOR") != "" {
		return render.MonoTheme()
	}
	return render.ThemeByName(name)
}

func selectRenderer(mode, themeName string, noColor bool, w io.Writer) render.Renderer {
	switch mode {
	case "json":
		return render.NewJSON()
	case "plain":
		return render.NewPlain()
	default:
		width := 80
		if f, ok := w.(*os.File); ok {
			if tw, _, err := term.GetSize(int(f.Fd())); err == nil && tw > 0 {
				width = tw
			}
		}
		return render.NewTerminal(resolveTheme(themeName, noColor), width)
	}
}

func debugf(stderr io.Writer, format string, args ...any) {
	if os.Getenv("PARE_DEBUG") == "" {
		return
	}
	fmt.Fprintf(stderr, "pare: debug: "+format+"\n", args...)
}
