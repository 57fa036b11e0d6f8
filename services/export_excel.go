package services

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// GenerateCustomerExcel creates an Excel workbook from the customer export
// rows and returns the file contents.
func GenerateCustomerExcel(rows []CustomerExportRow) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Customers"
	defaultSheet := f.GetSheetName(0)
	if err := f.SetSheetName(defaultSheet, sheetName); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}

	columns := []string{"A", "B", "C", "D", "E", "F", "G", "H"}
	widths := []float64{16, 16, 28, 16, 40, 40, 10, 14}
	for i, c := range columns {
		if err := f.SetColWidth(sheetName, c, c, widths[i]); err != nil {
			return nil, fmt.Errorf("set col width %s: %w", c, err)
		}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#1F442C"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
		Border:    thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}

	cellStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Size: 10},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create cell style: %w", err)
	}

	headers := []string{"First Name", "Last Name", "Email", "Phone", "Address", "Notes", "Leads", "Created"}
	for i, h := range headers {
		cell := columns[i] + "1"
		f.SetCellValue(sheetName, cell, h)
	}
	f.SetCellStyle(sheetName, "A1", "H1", headerStyle)

	for i, r := range rows {
		rowNum := fmt.Sprintf("%d", i+2)
		f.SetCellValue(sheetName, "A"+rowNum, sanitizeExcelCell(r.FirstName))
		f.SetCellValue(sheetName, "B"+rowNum, sanitizeExcelCell(r.LastName))
		f.SetCellValue(sheetName, "C"+rowNum, sanitizeExcelCell(r.Email))
		f.SetCellValue(sheetName, "D"+rowNum, sanitizeExcelCell(r.Phone))
		f.SetCellValue(sheetName, "E"+rowNum, sanitizeExcelCell(r.Address))
		f.SetCellValue(sheetName, "F"+rowNum, sanitizeExcelCell(r.Notes))
		f.SetCellValue(sheetName, "G"+rowNum, r.LeadCount)
		f.SetCellValue(sheetName, "H"+rowNum, r.CreatedDate)
		f.SetCellStyle(sheetName, "A"+rowNum, "H"+rowNum, cellStyle)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write excel: %w", err)
	}
	return buf.Bytes(), nil
}

// sanitizeExcelCell prevents formula injection by prefixing dangerous leading
// characters with a single quote. Excel interprets cells starting with =, +,
// -, @, \t or \r as formulas.
func sanitizeExcelCell(s string) string {
	if len(s) == 0 {
		return s
	}
	switch s[0] {
	case '=', '+', '-', '@', '\t', '\r', '|':
		return "'" + s
	}
	return s
}

// thinBorders returns thin borders on all four sides.
func thinBorders() []excelize.Border {
	sides := []string{"left", "top", "bottom", "right"}
	borders := make([]excelize.Border, len(sides))
	for i, side := range sides {
		borders[i] = excelize.Border{
			Type:  side,
			Color: "#000000",
			Style: 1,
		}
	}
	return borders
}
