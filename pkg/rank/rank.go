// Package rank holds the ranking and selection engine. Given activities
// with raw metric values and normalized automation rates, it orders them
// by reducible amount and picks the shortest prefix whose cumulative
// reducible amount meets a percentage-of-total goal.
package rank

import "sort"

// Activity is one named unit of work under evaluation.
type Activity struct {
	Name  string
	Value float64 // raw metric: cost, hours, or duration
	Rate  float64 // automation rate, fraction in [0, 1]
}

// Ranked is an Activity with its computed reducible amount.
type Ranked struct {
	Activity
	Reducible float64 // Value * Rate
}

// Selection is the chosen prefix of the ranking, in rank order.
type Selection struct {
	Items      []Ranked
	Cumulative float64 // running sum of Reducible over Items
	Achieved   float64 // Cumulative / total metric, 0 when the total is 0
}

// Outcome aggregates everything one Select call computes.
type Outcome struct {
	Total       float64
	GoalPercent float64
	Target      float64 // Total * GoalPercent / 100
	Ranked      []Ranked
	Selection   Selection
}

// tolerance absorbs floating-point near-misses when the cumulative
// reducible amount approaches the target.
const tolerance = 1e-9

// Select ranks activities descending by reducible amount (ties broken
// by descending raw value, stable beyond that) and walks the ranking,
// taking records until the cumulative reducible amount reaches the
// target. Records that can reduce nothing are never taken.
//
// The input slice is not reordered or modified. A total metric of zero
// or less is a valid terminal state, not an error: the outcome carries
// an empty ranking and selection. When even the full positive-reducible
// set cannot reach the target, the selection holds that whole set and
// Shortfall reports the gap.
func Select(activities []Activity, goalPercent float64) Outcome {
	out := Outcome{GoalPercent: goalPercent}
	for _, a := range activities {
		out.Total += a.Value
	}
	if out.Total <= 0 {
		return out
	}
	out.Target = out.Total * goalPercent / 100

	out.Ranked = make([]Ranked, 0, len(activities))
	for _, a := range activities {
		out.Ranked = append(out.Ranked, Ranked{Activity: a, Reducible: a.Value * a.Rate})
	}
	sort.SliceStable(out.Ranked, func(i, j int) bool {
		ri, rj := out.Ranked[i], out.Ranked[j]
		if ri.Reducible != rj.Reducible {
			return ri.Reducible > rj.Reducible
		}
		return ri.Value > rj.Value
	})

	for _, r := range out.Ranked {
		// Checked before taking a record so a target already met
		// (including a zero target) selects nothing further.
		if out.Selection.Cumulative+tolerance >= out.Target {
			break
		}
		if r.Reducible <= 0 {
			continue
		}
		out.Selection.Items = append(out.Selection.Items, r)
		out.Selection.Cumulative += r.Reducible
	}
	out.Selection.Achieved = out.Selection.Cumulative / out.Total
	return out
}

// GoalMet reports whether the selection reached the target within tolerance.
func (o Outcome) GoalMet() bool {
	return o.Selection.Cumulative+tolerance >= o.Target
}

// Shortfall is the reducible amount still missing from the target.
// Zero when the goal was met.
func (o Outcome) Shortfall() float64 {
	if o.GoalMet() {
		return 0
	}
	return o.Target - o.Selection.Cumulative
}
