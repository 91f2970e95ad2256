// Package export menulis snapshot tabel kas ke workbook Excel.
package export

import (
	"errors"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// Table: satu sheet. Rows berisi nilai mentah (string, angka, time.Time).
type Table struct {
	Sheet   string
	Headers []string
	Rows    [][]any
}

// WriteXLSX menulis tiap Table sebagai sheet terpisah, urut sesuai argumen.
func WriteXLSX(w io.Writer, tables ...Table) error {
	if len(tables) == 0 {
		return errors.New("export: tidak ada tabel")
	}

	f := excelize.NewFile()
	defer f.Close()

	bold, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E2EFDA"}, Pattern: 1},
	})
	if err != nil {
		return err
	}

	for i, t := range tables {
		if i == 0 {
			if err := f.SetSheetName("Sheet1", t.Sheet); err != nil {
				return err
			}
		} else if _, err := f.NewSheet(t.Sheet); err != nil {
			return err
		}

		for col, h := range t.Headers {
			cell, _ := excelize.CoordinatesToCellName(col+1, 1)
			if err := f.SetCellValue(t.Sheet, cell, h); err != nil {
				return err
			}
		}
		if len(t.Headers) > 0 {
			last, _ := excelize.CoordinatesToCellName(len(t.Headers), 1)
			if err := f.SetCellStyle(t.Sheet, "A1", last, bold); err != nil {
				return err
			}
			lastCol, _ := excelize.ColumnNumberToName(len(t.Headers))
			_ = f.SetColWidth(t.Sheet, "A", lastCol, 18)
		}

		for r, row := range t.Rows {
			for col, v := range row {
				cell, _ := excelize.CoordinatesToCellName(col+1, r+2)
				if err := f.SetCellValue(t.Sheet, cell, v); err != nil {
					return fmt.Errorf("sheet %s baris %d: %w", t.Sheet, r+2, err)
				}
			}
		}
	}

	f.SetActiveSheet(0)
	return f.Write(w)
}
