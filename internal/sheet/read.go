package sheet

import (
	"fmt"
	"path/filepath"
)

// ReadFile returns the rows of a generated file as text, picking the reader
// from the extension. Parquet output is write-only.
func ReadFile(path, sheet string) ([][]string, error) {
	switch {
	case hasExt(path, ".xlsx"):
		return ReadXLSX(path, sheet)
	case hasExt(path, ".csv"):
		return ReadCSV(path)
	}
	return nil, fmt.Errorf("%w for reading: %q", ErrUnsupported, filepath.Ext(path))
}
