package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"salesdesk/internal/domain"
)

// renderExcel builds a single-sheet workbook: header row, one row per
// record, a blank spacer, then the summary block.
func renderExcel(kind domain.ReportKind, data Dataset) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := sheetName(kind)
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	rowN := 1
	writeRow := func(cells []string) error {
		values := make([]interface{}, len(cells))
		for i, c := range cells {
			values[i] = c
		}
		cell, err := excelize.CoordinatesToCellName(1, rowN)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return err
		}
		rowN++
		return nil
	}

	if err := writeRow(headerFor(kind)); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}
	for _, row := range bodyRows(kind, data) {
		if err := writeRow(row); err != nil {
			return nil, fmt.Errorf("write row: %w", err)
		}
	}
	rowN++ // blank spacer before the summary block
	for _, row := range summaryRows(kind, data) {
		if err := writeRow(row); err != nil {
			return nil, fmt.Errorf("write summary row: %w", err)
		}
	}

	if err := f.SetColWidth(sheet, "A", "B", 24); err != nil {
		return nil, fmt.Errorf("set column width: %w", err)
	}
	if err := f.SetColWidth(sheet, "C", "G", 14); err != nil {
		return nil, fmt.Errorf("set column width: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func sheetName(kind domain.ReportKind) string {
	switch kind {
	case domain.ReportSales:
		return "Sales"
	case domain.ReportItems:
		return "Items"
	case domain.ReportLedger:
		return "Ledger"
	default:
		return "Report"
	}
}
