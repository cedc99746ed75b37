package services

import (
	"fmt"
	"math"
	"sort"

	"github.com/pocketbase/pocketbase/core"
)

// PriceRecordsCollection is the collection holding the dimension-bucketed
// price table.
const PriceRecordsCollection = "price_records"

// PriceRecord is one priced rectangular (width × height) interval for a
// product identity. All bounds are in centimeters.
type PriceRecord struct {
	ID        string
	Category  string
	System    string
	Code1     string
	Code2     string
	WidthMin  float64
	WidthMax  float64
	HeightMin float64
	HeightMax float64
	Price     float64
}

// RejectReason classifies why an import row was skipped.
type RejectReason string

const (
	RejectMissingField  RejectReason = "missing_field"
	RejectNonNumeric    RejectReason = "non_numeric"
	RejectInvertedRange RejectReason = "inverted_range"
	RejectNegativePrice RejectReason = "negative_price"
)

// RejectedRow describes a single skipped row, keeping the original raw
// content for diagnostics.
type RejectedRow struct {
	Row    int               `json:"row"`
	Field  string            `json:"field,omitempty"`
	Reason RejectReason      `json:"reason"`
	Raw    map[string]string `json:"raw,omitempty"`
}

// ImportReport summarizes an insert/replace batch. Row-level problems are
// counted and reported, never fatal to the batch.
type ImportReport struct {
	Total    int           `json:"total"`
	Accepted int           `json:"accepted"`
	Rejected int           `json:"rejected"`
	Rows     []RejectedRow `json:"rejections,omitempty"`
}

// ValidatePriceRecord checks a candidate record against the table rules.
// It returns the offending field and a reject reason, or ok=true.
func ValidatePriceRecord(r PriceRecord) (field string, reason RejectReason, ok bool) {
	if r.Category == "" {
		return "category", RejectMissingField, false
	}
	bounds := []struct {
		name  string
		value float64
	}{
		{"width_min", r.WidthMin},
		{"width_max", r.WidthMax},
		{"height_min", r.HeightMin},
		{"height_max", r.HeightMax},
		{"price", r.Price},
	}
	for _, b := range bounds {
		if math.IsNaN(b.value) || math.IsInf(b.value, 0) {
			return b.name, RejectNonNumeric, false
		}
	}
	if r.WidthMin > r.WidthMax {
		return "width_min", RejectInvertedRange, false
	}
	if r.HeightMin > r.HeightMax {
		return "height_min", RejectInvertedRange, false
	}
	if r.Price < 0 {
		return "price", RejectNegativePrice, false
	}
	return "", "", true
}

// InsertPriceRecords validates and saves a batch of price records. Invalid
// records are skipped and reported, not fatal. The whole batch is written
// in one transaction so readers never observe a partial insert.
func InsertPriceRecords(app core.App, records []PriceRecord) (*ImportReport, error) {
	col, err := app.FindCollectionByNameOrId(PriceRecordsCollection)
	if err != nil {
		return nil, fmt.Errorf("price table unavailable: %w", err)
	}

	report := &ImportReport{Total: len(records)}
	var valid []PriceRecord
	for i, r := range records {
		if field, reason, ok := ValidatePriceRecord(r); !ok {
			report.Rejected++
			report.Rows = append(report.Rows, RejectedRow{Row: i + 1, Field: field, Reason: reason})
			continue
		}
		valid = append(valid, r)
	}

	err = app.RunInTransaction(func(txApp core.App) error {
		for _, r := range valid {
			rec := core.NewRecord(col)
			rec.Set("category", r.Category)
			rec.Set("system", r.System)
			rec.Set("code1", r.Code1)
			rec.Set("code2", r.Code2)
			rec.Set("width_min", r.WidthMin)
			rec.Set("width_max", r.WidthMax)
			rec.Set("height_min", r.HeightMin)
			rec.Set("height_max", r.HeightMax)
			rec.Set("price", r.Price)
			if err := txApp.Save(rec); err != nil {
				return fmt.Errorf("save price record: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	report.Accepted = len(valid)
	return report, nil
}

// ReplaceAllPriceRecords clears the price table and inserts the given
// records as one atomic step. This is the bulk-import operation: repeated
// imports must not accumulate duplicate intervals.
func ReplaceAllPriceRecords(app core.App, records []PriceRecord) (*ImportReport, error) {
	report := &ImportReport{Total: len(records)}
	var valid []PriceRecord
	for i, r := range records {
		if field, reason, ok := ValidatePriceRecord(r); !ok {
			report.Rejected++
			report.Rows = append(report.Rows, RejectedRow{Row: i + 1, Field: field, Reason: reason})
			continue
		}
		valid = append(valid, r)
	}

	err := app.RunInTransaction(func(txApp core.App) error {
		if err := clearPriceRecords(txApp); err != nil {
			return err
		}
		col, err := txApp.FindCollectionByNameOrId(PriceRecordsCollection)
		if err != nil {
			return fmt.Errorf("price table unavailable: %w", err)
		}
		for _, r := range valid {
			rec := core.NewRecord(col)
			rec.Set("category", r.Category)
			rec.Set("system", r.System)
			rec.Set("code1", r.Code1)
			rec.Set("code2", r.Code2)
			rec.Set("width_min", r.WidthMin)
			rec.Set("width_max", r.WidthMax)
			rec.Set("height_min", r.HeightMin)
			rec.Set("height_max", r.HeightMax)
			rec.Set("price", r.Price)
			if err := txApp.Save(rec); err != nil {
				return fmt.Errorf("save price record: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	report.Accepted = len(valid)
	return report, nil
}

// AllPriceRecords returns a snapshot of the whole price table in insertion
// order. Lookup and facet enumeration operate on this snapshot.
func AllPriceRecords(app core.App) ([]PriceRecord, error) {
	recs, err := app.FindAllRecords(PriceRecordsCollection)
	if err != nil {
		return nil, fmt.Errorf("read price table: %w", err)
	}
	// FindAllRecords gives no ordering guarantee; insertion order is the
	// documented tie-break order for lookups.
	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].GetString("created") < recs[j].GetString("created") ||
			(recs[i].GetString("created") == recs[j].GetString("created") && recs[i].Id < recs[j].Id)
	})
	out := make([]PriceRecord, 0, len(recs))
	for _, rec := range recs {
		out = append(out, priceRecordFromRecord(rec))
	}
	return out, nil
}

// CountPriceRecords returns the number of rows in the price table.
func CountPriceRecords(app core.App) (int64, error) {
	n, err := app.CountRecords(PriceRecordsCollection)
	if err != nil {
		return 0, fmt.Errorf("count price table: %w", err)
	}
	return n, nil
}

// ClearPriceRecords truncates the price table. Destructive and
// irreversible; callers gate this behind an explicit confirmation.
func ClearPriceRecords(app core.App) error {
	return app.RunInTransaction(clearPriceRecords)
}

func clearPriceRecords(app core.App) error {
	recs, err := app.FindAllRecords(PriceRecordsCollection)
	if err != nil {
		return fmt.Errorf("read price table: %w", err)
	}
	for _, rec := range recs {
		if err := app.Delete(rec); err != nil {
			return fmt.Errorf("delete price record %s: %w", rec.Id, err)
		}
	}
	return nil
}

func priceRecordFromRecord(rec *core.Record) PriceRecord {
	return PriceRecord{
		ID:        rec.Id,
		Category:  rec.GetString("category"),
		System:    rec.GetString("system"),
		Code1:     rec.GetString("code1"),
		Code2:     rec.GetString("code2"),
		WidthMin:  rec.GetFloat("width_min"),
		WidthMax:  rec.GetFloat("width_max"),
		HeightMin: rec.GetFloat("height_min"),
		HeightMax: rec.GetFloat("height_max"),
		Price:     rec.GetFloat("price"),
	}
}
