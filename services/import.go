package services

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// columnAliases maps each canonical price-table field to the source-column
// names accepted for it, in priority order. Price lists arrive from several
// spreadsheet generations with inconsistent headers; the first alias
// present in the file wins.
var columnAliases = map[string][]string{
	"category":   {"category_cn", "category", "product_category"},
	"system":     {"system_cn", "system", "product_system"},
	"code1":      {"code_1", "code1", "code"},
	"code2":      {"code_2", "code2"},
	"width_min":  {"w_min_cm", "width_min", "widthmin"},
	"width_max":  {"w_max_cm", "width_max", "widthmax"},
	"height_min": {"h_min_cm", "height_min", "heightmin"},
	"height_max": {"h_max_cm", "height_max", "heightmax"},
	"price":      {"unit_price", "price_cny", "price"},
}

// requiredImportFields must resolve to a column and parse on every
// accepted row. system/code1/code2 are optional.
var requiredImportFields = []string{"category", "width_min", "width_max", "height_min", "height_max", "price"}

// ImportResult is the outcome of normalizing an uploaded price list.
// Accepted rows still pass through the price table's own validation on
// insert; rejected rows keep their raw content for diagnostics.
type ImportResult struct {
	TotalRows int
	Accepted  []PriceRecord
	Rejected  []RejectedRow
}

// ParsePriceFile reads an uploaded CSV or XLSX price list and returns its
// header row plus data rows.
func ParsePriceFile(file io.Reader, fileName string) ([]string, [][]string, error) {
	lowerName := strings.ToLower(fileName)
	switch {
	case strings.HasSuffix(lowerName, ".csv"):
		return parseCSV(file)
	case strings.HasSuffix(lowerName, ".xlsx"):
		return parseExcel(file)
	default:
		return nil, nil, fmt.Errorf("unsupported file format: must be .csv or .xlsx")
	}
}

// parseCSV reads a CSV file and returns headers + data rows.
func parseCSV(file io.Reader) ([]string, [][]string, error) {
	reader := csv.NewReader(file)
	reader.TrimLeadingSpace = true
	reader.LazyQuotes = true

	allRows, err := reader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse CSV: %w", err)
	}
	if len(allRows) < 2 {
		return nil, nil, fmt.Errorf("file must contain a header row and at least one data row")
	}

	return allRows[0], allRows[1:], nil
}

// parseExcel reads an xlsx file and returns headers + data rows from the
// first sheet.
func parseExcel(file io.Reader) ([]string, [][]string, error) {
	f, err := excelize.OpenReader(file)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read sheet: %w", err)
	}
	if len(rows) < 2 {
		return nil, nil, fmt.Errorf("file must contain a header row and at least one data row")
	}

	return rows[0], rows[1:], nil
}

// resolveColumns maps each canonical field to the index of the first
// matching alias in the header row, or -1 when no alias is present.
// Header comparison is case-insensitive and ignores surrounding space.
func resolveColumns(headers []string) map[string]int {
	headerIndex := make(map[string]int, len(headers))
	for i, h := range headers {
		norm := strings.ToLower(strings.TrimSpace(h))
		if _, taken := headerIndex[norm]; !taken {
			headerIndex[norm] = i
		}
	}

	resolved := make(map[string]int, len(columnAliases))
	for field, aliases := range columnAliases {
		resolved[field] = -1
		for _, alias := range aliases {
			if idx, ok := headerIndex[alias]; ok {
				resolved[field] = idx
				break
			}
		}
	}
	return resolved
}

// NormalizePriceRows maps raw spreadsheet rows onto PriceRecord candidates.
// A row is accepted only when the category is non-empty and all four
// dimension bounds plus the price parse as finite numbers. Rejection never
// aborts the batch.
func NormalizePriceRows(headers []string, rows [][]string) ImportResult {
	columns := resolveColumns(headers)
	result := ImportResult{TotalRows: len(rows)}

	for rowIdx, row := range rows {
		rowNum := rowIdx + 2 // 1-indexed, +1 for the header row

		cell := func(field string) string {
			idx := columns[field]
			if idx < 0 || idx >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[idx])
		}
		rawRow := func() map[string]string {
			raw := make(map[string]string, len(headers))
			for i, h := range headers {
				if i < len(row) {
					raw[h] = row[i]
				}
			}
			return raw
		}

		rec := PriceRecord{
			Category: cell("category"),
			System:   cell("system"),
			Code1:    cell("code1"),
			Code2:    cell("code2"),
		}
		if rec.Category == "" {
			result.Rejected = append(result.Rejected, RejectedRow{
				Row: rowNum, Field: "category", Reason: RejectMissingField, Raw: rawRow(),
			})
			continue
		}

		numeric := []struct {
			field string
			dst   *float64
		}{
			{"width_min", &rec.WidthMin},
			{"width_max", &rec.WidthMax},
			{"height_min", &rec.HeightMin},
			{"height_max", &rec.HeightMax},
			{"price", &rec.Price},
		}
		rejected := false
		for _, n := range numeric {
			raw := cell(n.field)
			if raw == "" {
				result.Rejected = append(result.Rejected, RejectedRow{
					Row: rowNum, Field: n.field, Reason: RejectMissingField, Raw: rawRow(),
				})
				rejected = true
				break
			}
			v, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				result.Rejected = append(result.Rejected, RejectedRow{
					Row: rowNum, Field: n.field, Reason: RejectNonNumeric, Raw: rawRow(),
				})
				rejected = true
				break
			}
			*n.dst = v
		}
		if rejected {
			continue
		}

		if field, reason, ok := ValidatePriceRecord(rec); !ok {
			result.Rejected = append(result.Rejected, RejectedRow{
				Row: rowNum, Field: field, Reason: reason, Raw: rawRow(),
			})
			continue
		}

		result.Accepted = append(result.Accepted, rec)
	}

	return result
}
