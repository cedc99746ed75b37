package services

import (
	"bytes"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestParseCSV_Valid(t *testing.T) {
	input := "category,width_min,width_max,height_min,height_max,price\nGlass,0,100,0,100,50\nGlass,0,150,0,150,75\n"
	headers, rows, err := parseCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("parseCSV() error = %v", err)
	}
	if len(headers) != 6 {
		t.Errorf("expected 6 headers, got %d", len(headers))
	}
	if len(rows) != 2 {
		t.Errorf("expected 2 data rows, got %d", len(rows))
	}
}

func TestParseCSV_HeaderOnly(t *testing.T) {
	_, _, err := parseCSV(strings.NewReader("category,price\n"))
	if err == nil {
		t.Error("expected error for header-only file")
	}
	if !strings.Contains(err.Error(), "at least one data row") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestParseCSV_Empty(t *testing.T) {
	if _, _, err := parseCSV(strings.NewReader("")); err == nil {
		t.Error("expected error for empty file")
	}
}

func TestParsePriceFile_UnsupportedExtension(t *testing.T) {
	_, _, err := ParsePriceFile(strings.NewReader("whatever"), "prices.pdf")
	if err == nil || !strings.Contains(err.Error(), "unsupported file format") {
		t.Errorf("expected unsupported format error, got %v", err)
	}
}

func TestParsePriceFile_Excel(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	f.SetCellValue(sheet, "A1", "category")
	f.SetCellValue(sheet, "B1", "price")
	f.SetCellValue(sheet, "A2", "Glass")
	f.SetCellValue(sheet, "B2", 50)
	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("build workbook: %v", err)
	}

	headers, rows, err := ParsePriceFile(bytes.NewReader(buf.Bytes()), "prices.xlsx")
	if err != nil {
		t.Fatalf("ParsePriceFile() error = %v", err)
	}
	if len(headers) != 2 || headers[0] != "category" {
		t.Errorf("unexpected headers: %v", headers)
	}
	if len(rows) != 1 || rows[0][0] != "Glass" {
		t.Errorf("unexpected rows: %v", rows)
	}
}

func TestNormalizePriceRows_Aliases(t *testing.T) {
	// Legacy export headers resolve onto the canonical schema.
	headers := []string{"category_cn", "system_cn", "code_1", "code_2", "w_min_cm", "w_max_cm", "h_min_cm", "h_max_cm", "unit_price"}
	rows := [][]string{
		{"标准产品", "标准", "A1", "B1", "30.5", "55.8", "35.6", "63.5", "18.19"},
	}

	result := NormalizePriceRows(headers, rows)
	if len(result.Rejected) != 0 {
		t.Fatalf("expected no rejections, got %+v", result.Rejected)
	}
	if len(result.Accepted) != 1 {
		t.Fatalf("expected 1 accepted row, got %d", len(result.Accepted))
	}

	rec := result.Accepted[0]
	if rec.Category != "标准产品" {
		t.Errorf("category = %q, want 标准产品", rec.Category)
	}
	if rec.WidthMin != 30.5 || rec.WidthMax != 55.8 {
		t.Errorf("width bounds = %v..%v, want 30.5..55.8", rec.WidthMin, rec.WidthMax)
	}
	if rec.HeightMin != 35.6 || rec.HeightMax != 63.5 {
		t.Errorf("height bounds = %v..%v, want 35.6..63.5", rec.HeightMin, rec.HeightMax)
	}
	if rec.Price != 18.19 {
		t.Errorf("price = %v, want 18.19", rec.Price)
	}
}

func TestNormalizePriceRows_AliasPriority(t *testing.T) {
	// unit_price wins over price when both columns exist.
	headers := []string{"category", "width_min", "width_max", "height_min", "height_max", "unit_price", "price"}
	rows := [][]string{{"Glass", "0", "100", "0", "100", "18.19", "99.99"}}

	result := NormalizePriceRows(headers, rows)
	if len(result.Accepted) != 1 {
		t.Fatalf("expected 1 accepted row, got %+v", result.Rejected)
	}
	if result.Accepted[0].Price != 18.19 {
		t.Errorf("price = %v, want 18.19 (unit_price alias has priority)", result.Accepted[0].Price)
	}
}

func TestNormalizePriceRows_Rejections(t *testing.T) {
	headers := []string{"category", "width_min", "width_max", "height_min", "height_max", "price"}

	tests := []struct {
		name   string
		row    []string
		reason RejectReason
	}{
		{"missing category", []string{"", "0", "100", "0", "100", "50"}, RejectMissingField},
		{"missing bound", []string{"Glass", "0", "", "0", "100", "50"}, RejectMissingField},
		{"non-numeric price", []string{"Glass", "0", "100", "0", "100", "cheap"}, RejectNonNumeric},
		{"inverted width range", []string{"Glass", "100", "0", "0", "100", "50"}, RejectInvertedRange},
		{"inverted height range", []string{"Glass", "0", "100", "100", "0", "50"}, RejectInvertedRange},
		{"negative price", []string{"Glass", "0", "100", "0", "100", "-5"}, RejectNegativePrice},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := NormalizePriceRows(headers, [][]string{tt.row})
			if len(result.Accepted) != 0 {
				t.Fatalf("expected rejection, row was accepted")
			}
			if len(result.Rejected) != 1 {
				t.Fatalf("expected 1 rejection, got %d", len(result.Rejected))
			}
			rej := result.Rejected[0]
			if rej.Reason != tt.reason {
				t.Errorf("reason = %q, want %q", rej.Reason, tt.reason)
			}
			if rej.Row != 2 {
				t.Errorf("row = %d, want 2 (1-indexed after header)", rej.Row)
			}
			if len(rej.Raw) == 0 {
				t.Error("expected raw row content preserved for diagnostics")
			}
		})
	}
}

func TestNormalizePriceRows_BadRowDoesNotAbortBatch(t *testing.T) {
	headers := []string{"category", "width_min", "width_max", "height_min", "height_max", "price"}
	rows := [][]string{
		{"Glass", "0", "100", "0", "100", "50"},
		{"", "0", "100", "0", "100", "50"},
		{"Glass", "0", "150", "0", "150", "75"},
	}

	result := NormalizePriceRows(headers, rows)
	if result.TotalRows != 3 {
		t.Errorf("total = %d, want 3", result.TotalRows)
	}
	if len(result.Accepted) != 2 {
		t.Errorf("accepted = %d, want 2", len(result.Accepted))
	}
	if len(result.Rejected) != 1 {
		t.Errorf("rejected = %d, want 1", len(result.Rejected))
	}
	if len(result.Accepted)+len(result.Rejected) != result.TotalRows {
		t.Error("accepted + rejected must equal total rows")
	}
}
