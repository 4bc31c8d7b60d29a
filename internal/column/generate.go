package column

import (
	"fmt"
	"math"
	"math/rand/v2"
	"strings"
)

// State is the per-run, per-column counter used by the increasing kinds.
// The zero value is a fresh run. It is not safe for concurrent use.
type State struct {
	calls int64
}

// Inputs carries the already-finalized cells a dependent generator reads.
type Inputs struct {
	// Ref is the reference cell for Delta and Dictionary kinds. HasRef is
	// false on the first data row of a previous-row Delta.
	Ref    Value
	HasRef bool
	// Preceding holds the Combine operands in left-to-right column order.
	Preceding []Value
}

// Value produces the next data cell for this column.
func (s *Spec) Value(rng *rand.Rand, st *State, in Inputs) (Value, error) {
	defer func() { st.calls++ }()

	switch s.kind {
	case KindFixed:
		return String(s.name), nil

	case KindList:
		return String(s.values[rng.IntN(len(s.values))]), nil

	case KindDictionary:
		if !in.HasRef {
			return Value{}, fmt.Errorf("column %q: missing source value", s.name)
		}
		key := in.Ref.String()
		v, ok := s.lookup[key]
		if !ok {
			return Value{}, &LookupError{Column: s.name, Key: key}
		}
		return String(v), nil

	case KindIntegerRange:
		return Int(between(rng, s.low, s.high)), nil

	case KindIntegerIncreasing:
		return Int(s.start + st.calls), nil

	case KindIntegerDelta:
		v := s.seed
		if in.HasRef {
			if in.Ref.Type != TypeInt {
				return Value{}, fmt.Errorf("column %q: delta reference is %s, want integer", s.name, in.Ref.Type)
			}
			v = in.Ref.I
		}
		return Int(s.vary(rng, v)), nil

	case KindDateRange:
		days := daysBetween(s.lowDate, s.highDate)
		return Date(s.lowDate.AddDate(0, 0, rng.IntN(days))), nil

	case KindDateDelta:
		d := s.seedDate
		if in.HasRef {
			if in.Ref.Type != TypeDate {
				return Value{}, fmt.Errorf("column %q: delta reference is %s, want date", s.name, in.Ref.Type)
			}
			d = in.Ref.D
		}
		if s.delta == 0 {
			return Date(d), nil
		}
		return Date(d.AddDate(0, 0, rng.IntN(s.delta))), nil

	case KindDateIncreasing:
		return Date(s.startDate.AddDate(0, 0, int(st.calls/int64(s.rowsPerDay)))), nil

	case KindCombine:
		parts := make([]string, len(in.Preceding))
		for i, p := range in.Preceding {
			parts[i] = p.String()
		}
		return String(strings.Join(parts, s.delimiter)), nil
	}
	return Value{}, fmt.Errorf("column %q: unknown kind %d", s.name, s.kind)
}

// vary draws from [v - delta%·v, v + delta%·v) with bounds truncated toward zero
// and clamped to the int64 range.
func (s *Spec) vary(rng *rand.Rand, v int64) int64 {
	d := float64(s.delta) / 100 * float64(v)
	lo := clamp(float64(v) - d)
	hi := clamp(float64(v) + d)
	if lo > hi {
		lo, hi = hi, lo
	}
	return between(rng, lo, hi)
}

// clamp truncates f toward zero, saturating at the int64 limits.
func clamp(f float64) int64 {
	switch {
	case f >= math.MaxInt64:
		return math.MaxInt64
	case f <= math.MinInt64:
		return math.MinInt64
	}
	return int64(f)
}

// between draws from [lo, hi); an empty range yields lo. The span is taken
// in uint64 so ranges wider than math.MaxInt64 still draw uniformly.
func between(rng *rand.Rand, lo, hi int64) int64 {
	if hi <= lo {
		return lo
	}
	span := uint64(hi) - uint64(lo)
	return int64(uint64(lo) + rng.Uint64N(span))
}

// Describe summarizes the parameters for listings.
func (s *Spec) Describe() string {
	switch s.kind {
	case KindList:
		return strings.Join(s.Values(), ", ")
	case KindDictionary:
		return fmt.Sprintf("lookup of %s: %s", s.source, strings.Join(s.Values(), ", "))
	case KindIntegerRange:
		return fmt.Sprintf("[%d, %d)", s.low, s.high)
	case KindIntegerIncreasing:
		return fmt.Sprintf("from %d", s.start)
	case KindIntegerDelta:
		return s.deltaRef(fmt.Sprintf("±%d%%", s.delta), fmt.Sprintf("%d", s.seed))
	case KindDateRange:
		return fmt.Sprintf("[%s, %s)", s.lowDate.Format(DateLayout), s.highDate.Format(DateLayout))
	case KindDateDelta:
		return s.deltaRef(fmt.Sprintf("+[0, %d) days", s.delta), s.seedDate.Format(DateLayout))
	case KindDateIncreasing:
		return fmt.Sprintf("from %s, %d rows/day", s.startDate.Format(DateLayout), s.rowsPerDay)
	case KindCombine:
		return fmt.Sprintf("%d previous joined by %q", s.previous, s.delimiter)
	}
	return s.name
}

func (s *Spec) deltaRef(delta, seed string) string {
	if s.source != "" {
		return fmt.Sprintf("%s of %s", delta, s.source)
	}
	return fmt.Sprintf("%s of previous row (seed %s)", delta, seed)
}
