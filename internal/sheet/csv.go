package sheet

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/KaramelBytes/datagen-cli/internal/grid"
)

type csvWriter struct{}

func (csvWriter) Name() string { return "csv" }

func (csvWriter) CanWrite(filename string) bool { return hasExt(filename, ".csv") }

// Write emits one record per grid row; dates use the YYYY-MM-DD form.
func (csvWriter) Write(w io.Writer, g *grid.Grid, _ Options) error {
	cw := csv.NewWriter(w)
	if err := cw.WriteAll(g.Strings()); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	return nil
}

// ReadCSV returns every record of a csv file.
func ReadCSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()
	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	return rows, nil
}
