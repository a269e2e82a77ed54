// Package render provides output renderers for ranking reports.
package render

import (
	"strconv"

	"github.com/ProcessMining-uOttawa/PMM4RPAAI/pkg/report"
)

// Renderer converts report sections to formatted output.
type Renderer interface {
	Render(sections []report.Section) string
}

// amount formats a metric amount the way every renderer prints it.
func amount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func unitSuffix(unit string) string {
	if unit == "" {
		return ""
	}
	return " " + unit
}
