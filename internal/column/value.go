package column

import (
	"strconv"
	"time"
)

// DateLayout is the textual form of a date cell.
const DateLayout = "2006-01-02"

// ValueType is the semantic type of a generated cell.
type ValueType int

const (
	TypeString ValueType = iota
	TypeInt
	TypeDate
)

func (t ValueType) String() string {
	switch t {
	case TypeInt:
		return "integer"
	case TypeDate:
		return "date"
	default:
		return "string"
	}
}

// Value is a single generated cell. Only the field matching Type is meaningful.
type Value struct {
	Type ValueType

	S string    // TypeString
	I int64     // TypeInt
	D time.Time // TypeDate, always midnight UTC
}

func String(s string) Value { return Value{Type: TypeString, S: s} }

func Int(i int64) Value { return Value{Type: TypeInt, I: i} }

// Date truncates t to its calendar day in UTC.
func Date(t time.Time) Value { return Value{Type: TypeDate, D: civil(t)} }

// IsDate reports whether the cell needs a date-aware write path.
func (v Value) IsDate() bool { return v.Type == TypeDate }

// String renders the value the way Combine joins and text writers see it.
func (v Value) String() string {
	switch v.Type {
	case TypeInt:
		return strconv.FormatInt(v.I, 10)
	case TypeDate:
		return v.D.Format(DateLayout)
	default:
		return v.S
	}
}

// Any returns the underlying Go value (string, int64 or time.Time).
func (v Value) Any() any {
	switch v.Type {
	case TypeInt:
		return v.I
	case TypeDate:
		return v.D
	default:
		return v.S
	}
}

func civil(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Day parses a YYYY-MM-DD date.
func Day(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, err
	}
	return t, nil
}

// MustDay is Day for literals known to be valid.
func MustDay(s string) time.Time {
	t, err := Day(s)
	if err != nil {
		panic(err)
	}
	return t
}
