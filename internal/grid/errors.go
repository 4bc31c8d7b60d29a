package grid

import "fmt"

// RowCountError indicates fewer than one data row was requested.
type RowCountError struct {
	Rows int
}

func (e *RowCountError) Error() string {
	return fmt.Sprintf("number of rows to generate must be 1 or more, got %d", e.Rows)
}

// DependencyRangeError indicates a column reads cells that are not generated
// before it: a Combine reaching past the first column, or a source column that
// is missing or not to the left.
type DependencyRangeError struct {
	Column string
	Source string // set for named references
	Need   int    // columns a Combine reads
	Have   int    // columns generated before this one
}

func (e *DependencyRangeError) Error() string {
	if e.Source != "" {
		return fmt.Sprintf("column %q: source column %q is not generated before it", e.Column, e.Source)
	}
	return fmt.Sprintf("column %q: combines %d previous columns but only %d precede it", e.Column, e.Need, e.Have)
}
