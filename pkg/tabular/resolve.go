package tabular

import (
	"fmt"
	"strings"
)

// Field names one logical column and the header spellings that satisfy
// it. Aliases are tried in order; the first one present wins.
type Field struct {
	Name    string
	Aliases []string
}

// MissingColumnError reports every logical column that could not be
// resolved against a table header, together with the columns that were
// actually present.
type MissingColumnError struct {
	Missing []string
	Found   []string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("missing required columns: %s (found: %s)",
		strings.Join(e.Missing, ", "), strings.Join(e.Found, ", "))
}

// Resolve maps each field to a header index. Matching is
// case-insensitive and ignores surrounding whitespace. Unresolved
// fields are collected and reported together in one error.
func (t *Table) Resolve(fields ...Field) ([]int, error) {
	lookup := make(map[string]int, len(t.Header))
	for i, h := range t.Header {
		lookup[normalizeHeader(h)] = i
	}

	idx := make([]int, len(fields))
	var missing []string
	for fi, f := range fields {
		idx[fi] = -1
		for _, a := range f.Aliases {
			if col, ok := lookup[normalizeHeader(a)]; ok {
				idx[fi] = col
				break
			}
		}
		if idx[fi] < 0 {
			missing = append(missing, f.Name)
		}
	}
	if len(missing) > 0 {
		return nil, &MissingColumnError{
			Missing: missing,
			Found:   append([]string(nil), t.Header...),
		}
	}
	return idx, nil
}

func normalizeHeader(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
