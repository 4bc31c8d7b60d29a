package column

import (
	"sort"
	"time"
)

// Kind identifies a generator in the closed catalog.
type Kind int

const (
	KindFixed Kind = iota
	KindList
	KindDictionary
	KindIntegerRange
	KindIntegerIncreasing
	KindIntegerDelta
	KindDateRange
	KindDateDelta
	KindDateIncreasing
	KindCombine
)

var kindNames = map[Kind]string{
	KindFixed:             "fixed",
	KindList:              "list",
	KindDictionary:        "dictionary",
	KindIntegerRange:      "integer-range",
	KindIntegerIncreasing: "integer-increasing",
	KindIntegerDelta:      "integer-delta",
	KindDateRange:         "date-range",
	KindDateDelta:         "date-delta",
	KindDateIncreasing:    "date-increasing",
	KindCombine:           "combine",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "unknown"
}

// DependencyKind says which already-generated cells a column reads.
type DependencyKind int

const (
	// DependsOnNothing: List, IntegerRange, DateRange, Fixed and the increasing kinds.
	DependsOnNothing DependencyKind = iota
	// DependsOnPreviousRow: Delta kinds without a source read the cell above.
	DependsOnPreviousRow
	// DependsOnSource: Dictionary and sourced Delta kinds read a named earlier column in the same row.
	DependsOnSource
	// DependsOnPreceding: Combine reads the N columns immediately to its left.
	DependsOnPreceding
)

// Dependency describes the cells a column consumes.
type Dependency struct {
	Kind   DependencyKind
	Source string // DependsOnSource
	Count  int    // DependsOnPreceding
}

// Spec is an immutable description of one output column. Build it with the
// constructors in this package; per-run state lives in State, not here.
type Spec struct {
	name string
	kind Kind

	values []string
	lookup map[string]string

	low, high int64
	start     int64
	seed      int64

	lowDate, highDate time.Time
	startDate         time.Time
	seedDate          time.Time

	delta      int
	rowsPerDay int

	previous  int
	delimiter string

	source string
}

// Name returns the configured column name.
func (s *Spec) Name() string { return s.name }

// Kind returns the generator kind.
func (s *Spec) Kind() Kind { return s.kind }

// Header is the row-0 value of every column regardless of kind.
func (s *Spec) Header() string { return s.name }

// Dependency reports which cells the assembler must resolve before calling Value.
func (s *Spec) Dependency() Dependency {
	switch s.kind {
	case KindCombine:
		return Dependency{Kind: DependsOnPreceding, Count: s.previous}
	case KindDictionary:
		return Dependency{Kind: DependsOnSource, Source: s.source}
	case KindIntegerDelta, KindDateDelta:
		if s.source != "" {
			return Dependency{Kind: DependsOnSource, Source: s.source}
		}
		return Dependency{Kind: DependsOnPreviousRow}
	default:
		return Dependency{Kind: DependsOnNothing}
	}
}

// Values returns a copy of the List choices, or the Dictionary keys in sorted order.
func (s *Spec) Values() []string {
	if s.kind == KindDictionary {
		keys := make([]string, 0, len(s.lookup))
		for k := range s.lookup {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		return keys
	}
	out := make([]string, len(s.values))
	copy(out, s.values)
	return out
}

// Fixed repeats the column name in every row.
func Fixed(name string) *Spec {
	return &Spec{name: name, kind: KindFixed}
}

// List picks uniformly from values.
func List(name string, values []string) (*Spec, error) {
	if len(values) == 0 {
		return nil, invalid(name, "values", "list must not be empty")
	}
	vs := make([]string, len(values))
	copy(vs, values)
	return &Spec{name: name, kind: KindList, values: vs}, nil
}

// Dictionary maps the value of the source column in the same row through values.
func Dictionary(name, source string, values map[string]string) (*Spec, error) {
	if source == "" {
		return nil, invalid(name, "source", "dictionary needs a source column")
	}
	m := make(map[string]string, len(values))
	for k, v := range values {
		m[k] = v
	}
	return &Spec{name: name, kind: KindDictionary, lookup: m, source: source}, nil
}

// IntegerRange draws uniformly from [low, high).
func IntegerRange(name string, low, high int64) (*Spec, error) {
	if low > high {
		return nil, invalid(name, "low", "%d exceeds high %d", low, high)
	}
	return &Spec{name: name, kind: KindIntegerRange, low: low, high: high}, nil
}

// IntegerIncreasing emits start, start+1, start+2, ...
func IntegerIncreasing(name string, start int64) *Spec {
	return &Spec{name: name, kind: KindIntegerIncreasing, start: start}
}

// IntegerDelta varies the value of the cell above by up to delta percent.
// The first data row varies seed.
func IntegerDelta(name string, delta int, seed int64) (*Spec, error) {
	if delta < 0 {
		return nil, invalid(name, "delta", "must not be negative, got %d", delta)
	}
	return &Spec{name: name, kind: KindIntegerDelta, delta: delta, seed: seed}, nil
}

// IntegerDeltaFrom varies the source column's value in the same row by up to delta percent.
func IntegerDeltaFrom(name, source string, delta int) (*Spec, error) {
	if source == "" {
		return nil, invalid(name, "source", "must not be empty")
	}
	s, err := IntegerDelta(name, delta, 0)
	if err != nil {
		return nil, err
	}
	s.source = source
	return s, nil
}

// DateRange draws a whole day uniformly from [low, high).
func DateRange(name string, low, high time.Time) (*Spec, error) {
	low, high = civil(low), civil(high)
	if low.After(high) {
		return nil, invalid(name, "low", "%s is after high %s", low.Format(DateLayout), high.Format(DateLayout))
	}
	if daysBetween(low, high) < 1 {
		return nil, invalid(name, "high", "range %s..%s spans no whole day", low.Format(DateLayout), high.Format(DateLayout))
	}
	return &Spec{name: name, kind: KindDateRange, lowDate: low, highDate: high}, nil
}

// DateDelta moves the date above forward by [0, delta) days. The first data row moves seed.
func DateDelta(name string, delta int, seed time.Time) (*Spec, error) {
	if delta < 0 {
		return nil, invalid(name, "delta", "must not be negative, got %d", delta)
	}
	return &Spec{name: name, kind: KindDateDelta, delta: delta, seedDate: civil(seed)}, nil
}

// DateDeltaFrom moves the source column's date in the same row forward by [0, delta) days.
func DateDeltaFrom(name, source string, delta int) (*Spec, error) {
	if source == "" {
		return nil, invalid(name, "source", "must not be empty")
	}
	s, err := DateDelta(name, delta, time.Time{})
	if err != nil {
		return nil, err
	}
	s.source = source
	return s, nil
}

// DateIncreasing holds start for rowsPerDay rows, then advances one day at a time.
func DateIncreasing(name string, start time.Time, rowsPerDay int) (*Spec, error) {
	if rowsPerDay <= 0 {
		return nil, invalid(name, "rowsPerDay", "must be positive, got %d", rowsPerDay)
	}
	return &Spec{name: name, kind: KindDateIncreasing, startDate: civil(start), rowsPerDay: rowsPerDay}, nil
}

// Combine joins the previous columns of the same row with delimiter.
func Combine(name string, previous int, delimiter string) (*Spec, error) {
	if previous < 1 {
		return nil, invalid(name, "previous", "must be at least 1, got %d", previous)
	}
	return &Spec{name: name, kind: KindCombine, previous: previous, delimiter: delimiter}, nil
}

// daysBetween counts whole days from a to b. Both must be midnight UTC; Unix
// seconds are used because time.Duration saturates past ~292 years.
func daysBetween(a, b time.Time) int {
	return int((b.Unix() - a.Unix()) / 86400)
}
