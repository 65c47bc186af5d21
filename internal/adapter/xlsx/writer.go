package xlsx

import (
	"fmt"

	"github.com/couchcryptid/hurricane-basin-report/internal/domain"
	"github.com/xuri/excelize/v2"
)

// defaultSheet is the sheet every new excelize workbook starts with.
const defaultSheet = "Sheet1"

// Header is the column layout written by WriteWorkbook.
var Header = []string{"Year", "Month", "Day", "Name", "wind", "cat."}

// WriteWorkbook writes observations to a new workbook at path using Header.
// An empty sheet name keeps the default "Sheet1".
func WriteWorkbook(path, sheet string, obs []domain.Observation) error {
	f := excelize.NewFile()
	defer f.Close()

	if sheet == "" {
		sheet = defaultSheet
	}
	if sheet != defaultSheet {
		if err := f.SetSheetName(defaultSheet, sheet); err != nil {
			return fmt.Errorf("rename sheet: %w", err)
		}
	}

	header := make([]any, len(Header))
	for i, h := range Header {
		header[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for i, o := range obs {
		addr, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []any{o.Year, o.Month, o.Day, o.Name, o.Wind, string(o.Category)}
		if err := f.SetSheetRow(sheet, addr, &row); err != nil {
			return fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook %s: %w", path, err)
	}
	return nil
}
