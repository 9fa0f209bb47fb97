package excel

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"ratesheets/domain/rates"
	"ratesheets/ports"
)

// maxSheetNameLen is the worksheet-name limit imposed by the xlsx format.
const maxSheetNameLen = 31

// WorkbookWriter writes sheets into one .xlsx workbook on disk.
type WorkbookWriter struct {
	path string
}

// NewWorkbookWriter creates a writer targeting the given file path.
func NewWorkbookWriter(path string) ports.SheetWriter {
	return &WorkbookWriter{path: path}
}

// Write builds the workbook, one worksheet per SheetData in order, and saves
// it. The first sheet reuses excelize's default "Sheet1" slot so the output
// contains no empty leftover tab. Duplicate sheet names fail the whole write:
// excelize's NewSheet would silently reuse the existing worksheet, merging
// two groups into one tab.
func (w *WorkbookWriter) Write(sheets []rates.SheetData) error {
	if len(sheets) == 0 {
		return fmt.Errorf("no sheets to write")
	}

	f := excelize.NewFile()
	defer f.Close()

	used := make(map[string]bool, len(sheets))
	for i, sheet := range sheets {
		name := sheetName(sheet.Name)
		if used[name] {
			return fmt.Errorf("duplicate sheet name %q", name)
		}
		used[name] = true
		if i == 0 {
			if err := f.SetSheetName("Sheet1", name); err != nil {
				return fmt.Errorf("failed to rename default sheet: %w", err)
			}
		} else {
			if _, err := f.NewSheet(name); err != nil {
				return fmt.Errorf("failed to create sheet %q: %w", name, err)
			}
		}

		for rowIdx, row := range sheet.Rows {
			cell, err := excelize.CoordinatesToCellName(1, rowIdx+1)
			if err != nil {
				return fmt.Errorf("failed to compute cell for row %d: %w", rowIdx+1, err)
			}
			if err := f.SetSheetRow(name, cell, &row); err != nil {
				return fmt.Errorf("failed to write row %d of %q: %w", rowIdx+1, name, err)
			}
		}
	}

	if err := f.SaveAs(w.path); err != nil {
		return fmt.Errorf("failed to save workbook %s: %w", w.path, err)
	}
	return nil
}

// sheetName truncates on runes so a multibyte title never gets split into
// invalid UTF-8.
func sheetName(title string) string {
	r := []rune(title)
	if len(r) > maxSheetNameLen {
		return string(r[:maxSheetNameLen])
	}
	return title
}
