// Package export writes the activity log as a spreadsheet.
package export

import (
	"fmt"
	"io"

	"github.com/cradoe/biodata/internal/activity"
	"github.com/xuri/excelize/v2"
)

const SheetName = "Activity Logs"

// ContentType is the media type of the workbook WriteActivity produces.
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

var header = []any{"Action", "Description", "Type", "Time"}

// WriteActivity writes rows as a single-sheet workbook to w, preceded by a
// header row.
func WriteActivity(w io.Writer, rows []activity.ExportRow) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	if err := setRow(f, 1, header); err != nil {
		return err
	}
	for i, r := range rows {
		if err := setRow(f, i+2, []any{r.Action, r.Description, r.Type, r.Time}); err != nil {
			return err
		}
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	if err := f.SetRowStyle(SheetName, 1, 1, bold); err != nil {
		return err
	}
	if err := f.SetColWidth(SheetName, "A", "A", 12); err != nil {
		return err
	}
	if err := f.SetColWidth(SheetName, "B", "D", 32); err != nil {
		return err
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func setRow(f *excelize.File, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(SheetName, cell, &values); err != nil {
		return fmt.Errorf("write row %d: %w", row, err)
	}
	return nil
}
