package column

import "fmt"

// ValidationError indicates a column was built with invalid parameters.
type ValidationError struct {
	Column  string
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid column %q: %s: %s", e.Column, e.Field, e.Message)
	}
	return fmt.Sprintf("invalid column %q: %s", e.Column, e.Message)
}

// LookupError indicates a Dictionary column was asked for a key it does not map.
type LookupError struct {
	Column string
	Key    string
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("column %q: no dictionary entry for key %q", e.Column, e.Key)
}

func invalid(column, field, format string, args ...any) error {
	return &ValidationError{Column: column, Field: field, Message: fmt.Sprintf(format, args...)}
}
