// Package report defines the display model for a ranking run. Sections
// are pure data; renderers decide presentation.
package report

// SectionKind identifies the kind of report section.
type SectionKind string

const (
	KindSummary  SectionKind = "summary"
	KindTable    SectionKind = "table"
	KindAchieved SectionKind = "achieved"
	KindNote     SectionKind = "note"
)

// Section is the interface all report sections implement.
type Section interface {
	Kind() SectionKind
}

// Summary opens a report: the metric total, the goal, and the target
// amount derived from them.
type Summary struct {
	Metric      string // machine name, e.g. "cost"
	Label       string // prose label, e.g. "rework cost"
	Unit        string
	Total       float64
	GoalPercent float64
	Target      float64
}

func (Summary) Kind() SectionKind { return KindSummary }

// TableRole tells renderers which table they are looking at.
type TableRole string

const (
	RoleRanked   TableRole = "ranked"
	RoleSelected TableRole = "selected"
)

// Row is one activity line in a table section.
type Row struct {
	Activity   string
	Value      float64
	Rate       float64
	Reducible  float64
	Cumulative float64 // filled only when the table shows cumulatives
}

// Table lists activities, either the full ranking or the selected set.
type Table struct {
	Role           TableRole
	Title          string
	Label          string
	Unit           string
	Rows           []Row
	ShowCumulative bool
	Truncated      int // rows cut by a top limit, 0 when complete
}

func (Table) Kind() SectionKind { return KindTable }

// Achieved closes a report with the reduction the selection reaches.
type Achieved struct {
	Label      string
	Unit       string
	Cumulative float64
	Percent    float64
	GoalMet    bool
}

func (Achieved) Kind() SectionKind { return KindAchieved }

// NoteLevel classifies a Note for renderers.
type NoteLevel int

const (
	NoteInfo NoteLevel = iota
	NoteWarn
)

// Note carries one free-form line: the zero-total message, a shortfall,
// a save confirmation, a defaulted-cell count.
type Note struct {
	Level NoteLevel
	Text  string
}

func (Note) Kind() SectionKind { return KindNote }
