package sheet

import (
	"fmt"
	"io"
	"time"

	"github.com/KaramelBytes/datagen-cli/internal/grid"
	"github.com/xuri/excelize/v2"
)

// dateNumFmt keeps date cells readable as ISO dates in spreadsheet apps.
var dateNumFmt = "yyyy-mm-dd"

type xlsxWriter struct{}

func (xlsxWriter) Name() string { return "xlsx" }

func (xlsxWriter) CanWrite(filename string) bool { return hasExt(filename, ".xlsx") }

// Write renders g into a single-sheet workbook. Dates are stored as Excel
// serial dates with a date number format; everything else goes through
// SetCellValue as-is.
func (xlsxWriter) Write(w io.Writer, g *grid.Grid, opt Options) error {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			opt.logger().WithError(err).Warn("close workbook")
		}
	}()

	sheet := opt.sheet()
	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		return fmt.Errorf("name sheet: %w", err)
	}
	dateStyle, err := f.NewStyle(&excelize.Style{CustomNumFmt: &dateNumFmt})
	if err != nil {
		return fmt.Errorf("date style: %w", err)
	}

	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Columns(); c++ {
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				return err
			}
			v := g.At(r, c)
			if err := f.SetCellValue(sheet, cell, v.Any()); err != nil {
				return fmt.Errorf("set %s: %w", cell, err)
			}
			if v.IsDate() {
				if err := f.SetCellStyle(sheet, cell, cell, dateStyle); err != nil {
					return fmt.Errorf("style %s: %w", cell, err)
				}
			}
		}
	}

	if err := f.SetDocProps(&excelize.DocProperties{
		Creator:    "datagen",
		Title:      opt.Title,
		Identifier: opt.RunID,
		Created:    time.Now().UTC().Format(time.RFC3339),
	}); err != nil {
		return fmt.Errorf("doc props: %w", err)
	}
	return f.Write(w)
}

// ReadXLSX returns the formatted cell text of sheet (the first sheet when empty).
func ReadXLSX(path, sheet string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open xlsx: %w", err)
	}
	defer f.Close()
	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	if idx, err := f.GetSheetIndex(sheet); err != nil || idx < 0 {
		return nil, fmt.Errorf("sheet %q not found in workbook (available: %v)", sheet, f.GetSheetList())
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read rows: %w", err)
	}
	return rows, nil
}
