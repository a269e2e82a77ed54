package metric

import (
	"math"
	"strconv"

	"github.com/ProcessMining-uOttawa/PMM4RPAAI/pkg/rank"
	"github.com/ProcessMining-uOttawa/PMM4RPAAI/pkg/rate"
	"github.com/ProcessMining-uOttawa/PMM4RPAAI/pkg/tabular"
)

// Stats counts what extraction had to recover locally. A single bad
// cell never aborts a run; it defaults to zero and is counted here so
// the report can mention it.
type Stats struct {
	Rows       int
	BadValues  int // metric cells that were absent or non-numeric
	BlankRates int // rate cells that were empty
}

// Extract resolves the profile's columns against t and builds one
// activity per data row. Metric cells that fail to parse default to 0,
// as do blank rates; rates are normalized to fractions in [0, 1].
func Extract(t *tabular.Table, p Profile) ([]rank.Activity, Stats, error) {
	idx, err := t.Resolve(p.Activity, p.Value, p.Rate)
	if err != nil {
		return nil, Stats{}, err
	}

	acts := make([]rank.Activity, 0, len(t.Rows))
	var st Stats
	for i := range t.Rows {
		st.Rows++

		raw := t.Cell(i, idx[1])
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil || math.IsNaN(value) {
			// ParseFloat accepts "NaN" spellings; a NaN value would
			// poison every downstream sum and comparison.
			value = 0
			st.BadValues++
		}

		rawRate := t.Cell(i, idx[2])
		if rawRate == "" {
			st.BlankRates++
		}

		acts = append(acts, rank.Activity{
			Name:  t.Cell(i, idx[0]),
			Value: value,
			Rate:  rate.Parse(rawRate),
		})
	}
	return acts, st, nil
}
