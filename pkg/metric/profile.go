// Package metric defines the measurable quantities activities are
// ranked by. A profile names the metric, its column spellings, and how
// results are labeled; cost, hours, and duration ship built in.
package metric

import (
	"fmt"
	"strings"

	"github.com/ProcessMining-uOttawa/PMM4RPAAI/pkg/tabular"
)

// Profile describes one rankable metric.
type Profile struct {
	Name     string // flag value: "cost", "hours", "duration"
	Label    string // prose label: "rework cost", "execution time"
	Unit     string // optional unit suffix, e.g. "hours"
	Activity tabular.Field
	Value    tabular.Field
	Rate     tabular.Field
}

// Extra carries column aliases from configuration, appended after the
// built-in spellings.
type Extra struct {
	Activity []string
	Rate     []string
	Value    map[string][]string // keyed by profile name
}

func activityField(extra []string) tabular.Field {
	return tabular.Field{
		Name:    "value/activity",
		Aliases: append([]string{"value", "activity", "activity_name", "name"}, extra...),
	}
}

func rateField(extra []string) tabular.Field {
	return tabular.Field{
		Name:    "automation_rate",
		Aliases: append([]string{"automation_rate", "automation rate", "automation"}, extra...),
	}
}

// Builtin returns the cost, hours, and duration profiles, in detection
// order, with any extra aliases appended.
func Builtin(extra Extra) []Profile {
	activity := activityField(extra.Activity)
	rate := rateField(extra.Rate)
	return []Profile{
		{
			Name:     "cost",
			Label:    "rework cost",
			Activity: activity,
			Value: tabular.Field{
				Name: "total rework cost",
				Aliases: append([]string{
					"total rework cost", "rework_cost", "rework cost", "total_rework_cost",
				}, extra.Value["cost"]...),
			},
			Rate: rate,
		},
		{
			Name:     "hours",
			Label:    "rework hours",
			Unit:     "hours",
			Activity: activity,
			Value: tabular.Field{
				Name: "total rework hours",
				Aliases: append([]string{
					"total rework hours", "rework_hours", "rework hours", "total_rework_hours",
				}, extra.Value["hours"]...),
			},
			Rate: rate,
		},
		{
			Name:     "duration",
			Label:    "execution time",
			Activity: activity,
			Value: tabular.Field{
				Name: "total_duration",
				Aliases: append([]string{
					"total_duration", "total duration", "duration",
				}, extra.Value["duration"]...),
			},
			Rate: rate,
		},
	}
}

// ByName returns the profile with the given name.
func ByName(profiles []Profile, name string) (Profile, error) {
	for _, p := range profiles {
		if p.Name == name {
			return p, nil
		}
	}
	known := make([]string, len(profiles))
	for i, p := range profiles {
		known[i] = p.Name
	}
	return Profile{}, fmt.Errorf("unknown metric %q (choose one of: %s)", name, strings.Join(known, ", "))
}

// Detect picks the first profile whose metric column resolves against
// the table header. Profiles are tried in Builtin order.
func Detect(profiles []Profile, t *tabular.Table) (Profile, error) {
	for _, p := range profiles {
		if _, err := t.Resolve(p.Value); err == nil {
			return p, nil
		}
	}
	return Profile{}, &tabular.MissingColumnError{
		Missing: []string{"a metric column (rework cost, rework hours, or duration)"},
		Found:   append([]string(nil), t.Header...),
	}
}
