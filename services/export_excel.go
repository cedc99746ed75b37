package services

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// priceTableColumns are the canonical headers written to price-table
// exports and to the blank import template. They match the first alias of
// each import field so an exported file re-imports cleanly.
var priceTableColumns = []string{
	"category", "system", "code1", "code2",
	"width_min", "width_max", "height_min", "height_max", "price",
}

// GeneratePriceTableExcel writes the full price table to an xlsx workbook
// and returns the file contents.
func GeneratePriceTableExcel(records []PriceRecord) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Price Table"
	defaultSheet := f.GetSheetName(0)
	if err := f.SetSheetName(defaultSheet, sheetName); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}

	columns := []string{"A", "B", "C", "D", "E", "F", "G", "H", "I"}
	widths := []float64{22, 16, 12, 12, 12, 12, 12, 12, 12}
	for i, col := range columns {
		if err := f.SetColWidth(sheetName, col, col, widths[i]); err != nil {
			return nil, fmt.Errorf("set col width %s: %w", col, err)
		}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold:  true,
			Color: "#FFFFFF",
			Size:  11,
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#333333"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
		Border: thinBorders(),
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

	lastCol := columns[len(columns)-1]
	for i, h := range priceTableColumns {
		f.SetCellValue(sheetName, fmt.Sprintf("%s1", columns[i]), h)
	}
	f.SetCellStyle(sheetName, "A1", lastCol+"1", headerStyle)

	row := 2
	for _, r := range records {
		rowStr := fmt.Sprintf("%d", row)
		f.SetCellValue(sheetName, "A"+rowStr, sanitizeExcelCell(r.Category))
		f.SetCellValue(sheetName, "B"+rowStr, sanitizeExcelCell(r.System))
		f.SetCellValue(sheetName, "C"+rowStr, sanitizeExcelCell(r.Code1))
		f.SetCellValue(sheetName, "D"+rowStr, sanitizeExcelCell(r.Code2))
		f.SetCellValue(sheetName, "E"+rowStr, r.WidthMin)
		f.SetCellValue(sheetName, "F"+rowStr, r.WidthMax)
		f.SetCellValue(sheetName, "G"+rowStr, r.HeightMin)
		f.SetCellValue(sheetName, "H"+rowStr, r.HeightMax)
		f.SetCellValue(sheetName, "I"+rowStr, r.Price)
		f.SetCellStyle(sheetName, "A"+rowStr, lastCol+rowStr, cellStyle)
		row++
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// GenerateImportTemplate returns a blank import workbook containing only
// the canonical header row plus one example row.
func GenerateImportTemplate() ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Price List"
	defaultSheet := f.GetSheetName(0)
	if err := f.SetSheetName(defaultSheet, sheetName); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#DDDDDD"},
			Pattern: 1,
		},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}

	columns := []string{"A", "B", "C", "D", "E", "F", "G", "H", "I"}
	for i, h := range priceTableColumns {
		f.SetCellValue(sheetName, fmt.Sprintf("%s1", columns[i]), h)
		if err := f.SetColWidth(sheetName, columns[i], columns[i], 14); err != nil {
			return nil, fmt.Errorf("set col width: %w", err)
		}
	}
	f.SetCellStyle(sheetName, "A1", columns[len(columns)-1]+"1", headerStyle)

	example := []any{"Standard Product", "Standard", "G001", "S001", 0, 100, 0, 100, 50.00}
	for i, v := range example {
		f.SetCellValue(sheetName, fmt.Sprintf("%s2", columns[i]), v)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// sanitizeExcelCell prevents formula injection by prefixing dangerous
// leading characters with a quote.
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

// thinBorders returns excelize borders for thin lines on all four sides.
func thinBorders() []excelize.Border {
	sides := []string{"left", "top", "bottom", "right"}
	borders := make([]excelize.Border, len(sides))
	for i, side := range sides {
		borders[i] = excelize.Border{
			Type:  side,
			Color: "#000000",
			Style: 1, // thin
		}
	}
	return borders
}
