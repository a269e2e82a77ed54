package metric

import (
	"errors"
	"strings"
	"testing"

	"github.com/ProcessMining-uOttawa/PMM4RPAAI/pkg/tabular"
)

func mustRead(t *testing.T, csv string) *tabular.Table {
	t.Helper()
	tbl, err := tabular.Read(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("parsing fixture: %v", err)
	}
	return tbl
}

func TestByName(t *testing.T) {
	profiles := Builtin(Extra{})
	for _, name := range []string{"cost", "hours", "duration"} {
		p, err := ByName(profiles, name)
		if err != nil {
			t.Errorf("ByName(%q) error: %v", name, err)
		}
		if p.Name != name {
			t.Errorf("ByName(%q).Name = %q", name, p.Name)
		}
	}
	if _, err := ByName(profiles, "latency"); err == nil {
		t.Error("ByName(latency) did not fail")
	}
}

func TestDetect_PicksProfileFromHeader(t *testing.T) {
	tests := []struct {
		header string
		want   string
	}{
		{"value,Total Rework Cost,automation_rate", "cost"},
		{"activity,rework_hours,automation rate", "hours"},
		{"name,total_duration,automation", "duration"},
	}
	profiles := Builtin(Extra{})
	for _, tt := range tests {
		tbl := mustRead(t, tt.header+"\n")
		p, err := Detect(profiles, tbl)
		if err != nil {
			t.Errorf("Detect(%q) error: %v", tt.header, err)
			continue
		}
		if p.Name != tt.want {
			t.Errorf("Detect(%q) = %q, want %q", tt.header, p.Name, tt.want)
		}
	}
}

func TestDetect_FailsWithObservedColumns(t *testing.T) {
	tbl := mustRead(t, "foo,bar\n")
	_, err := Detect(Builtin(Extra{}), tbl)
	if err == nil {
		t.Fatal("Detect() did not fail")
	}
	var mce *tabular.MissingColumnError
	if !errors.As(err, &mce) {
		t.Fatalf("error is %T, want *MissingColumnError", err)
	}
	if !strings.Contains(err.Error(), "foo") {
		t.Errorf("error %q does not list the observed columns", err)
	}
}

func TestExtract_BuildsActivities(t *testing.T) {
	tbl := mustRead(t, "value,total rework cost,automation_rate\nA,100,50%\nB,50,1\nC,200,0.1\n")
	profiles := Builtin(Extra{})
	p, err := ByName(profiles, "cost")
	if err != nil {
		t.Fatal(err)
	}
	acts, st, err := Extract(tbl, p)
	if err != nil {
		t.Fatalf("Extract() error: %v", err)
	}
	if len(acts) != 3 {
		t.Fatalf("len(acts) = %d, want 3", len(acts))
	}
	if st.Rows != 3 || st.BadValues != 0 || st.BlankRates != 0 {
		t.Errorf("stats = %+v, want 3 clean rows", st)
	}
	if acts[0].Name != "A" || acts[0].Value != 100 || acts[0].Rate != 0.5 {
		t.Errorf("acts[0] = %+v", acts[0])
	}
	if acts[1].Rate != 1 {
		t.Errorf("acts[1].Rate = %v, want 1", acts[1].Rate)
	}
	if acts[2].Rate != 0.1 {
		t.Errorf("acts[2].Rate = %v, want 0.1", acts[2].Rate)
	}
}

func TestExtract_DefaultsMalformedCells(t *testing.T) {
	tbl := mustRead(t, "value,total_duration,automation_rate\nA,n/a,20%\nB,50,\nC,,abc\nD,NaN,50%\n")
	p, err := ByName(Builtin(Extra{}), "duration")
	if err != nil {
		t.Fatal(err)
	}
	acts, st, err := Extract(tbl, p)
	if err != nil {
		t.Fatalf("Extract() error: %v", err)
	}
	if acts[0].Value != 0 {
		t.Errorf("non-numeric metric cell = %v, want 0", acts[0].Value)
	}
	if acts[1].Rate != 0 {
		t.Errorf("blank rate = %v, want 0", acts[1].Rate)
	}
	if acts[2].Value != 0 || acts[2].Rate != 0 {
		t.Errorf("acts[2] = %+v, want zero value and rate", acts[2])
	}
	if acts[3].Value != 0 {
		t.Errorf("NaN metric cell = %v, want 0", acts[3].Value)
	}
	if st.BadValues != 3 {
		t.Errorf("BadValues = %d, want 3", st.BadValues)
	}
	if st.BlankRates != 1 {
		t.Errorf("BlankRates = %d, want 1", st.BlankRates)
	}
}

func TestExtract_MissingColumnsSurfaceTogether(t *testing.T) {
	tbl := mustRead(t, "task,cost\nA,10\n")
	p, err := ByName(Builtin(Extra{}), "cost")
	if err != nil {
		t.Fatal(err)
	}
	_, _, err = Extract(tbl, p)
	var mce *tabular.MissingColumnError
	if !errors.As(err, &mce) {
		t.Fatalf("error is %T, want *MissingColumnError", err)
	}
	if len(mce.Missing) != 3 {
		t.Errorf("Missing = %v, want all three logical columns", mce.Missing)
	}
}

func TestBuiltin_ExtraAliasesExtendMatching(t *testing.T) {
	extra := Extra{
		Activity: []string{"task"},
		Rate:     []string{"auto_pct"},
		Value:    map[string][]string{"cost": {"rework_eur"}},
	}
	tbl := mustRead(t, "task,rework_eur,auto_pct\nA,10,50%\n")
	p, err := Detect(Builtin(extra), tbl)
	if err != nil {
		t.Fatalf("Detect() error: %v", err)
	}
	if p.Name != "cost" {
		t.Fatalf("Detect() = %q, want cost", p.Name)
	}
	acts, _, err := Extract(tbl, p)
	if err != nil {
		t.Fatalf("Extract() error: %v", err)
	}
	if acts[0].Name != "A" || acts[0].Value != 10 || acts[0].Rate != 0.5 {
		t.Errorf("acts[0] = %+v", acts[0])
	}
}
