package services

import (
	"fmt"
	"time"

	"github.com/pocketbase/pocketbase/core"
	"github.com/shopspring/decimal"
)

const (
	QuotationsCollection     = "quotations"
	QuotationItemsCollection = "quotation_items"
)

// CustomerInfo is the by-value customer snapshot stored on a quotation.
// Editing the customer record afterwards does not change saved quotations.
type CustomerInfo struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// Quotation is a saved quotation with its lines and derived totals.
type Quotation struct {
	ID          string          `json:"id"`
	Number      string          `json:"number"`
	Created     string          `json:"created"`
	Customer    CustomerInfo    `json:"customer"`
	Salesperson string          `json:"salesperson"`
	Lines       []QuotationLine `json:"lines"`
	Totals      QuotationTotals `json:"totals"`
}

// SaveQuotation persists a quotation and its lines as one transaction and
// returns the saved snapshot. Line order is preserved for display.
func SaveQuotation(app core.App, customer CustomerInfo, salesperson string, lines []QuotationLine, totals QuotationTotals, now time.Time) (*Quotation, error) {
	if len(lines) == 0 {
		return nil, fmt.Errorf("quotation must contain at least one line")
	}

	number, err := GenerateQuoteNumber(app, now)
	if err != nil {
		return nil, fmt.Errorf("generate quote number: %w", err)
	}

	var quotationID string
	err = app.RunInTransaction(func(txApp core.App) error {
		quotationsCol, err := txApp.FindCollectionByNameOrId(QuotationsCollection)
		if err != nil {
			return fmt.Errorf("quotations collection unavailable: %w", err)
		}
		itemsCol, err := txApp.FindCollectionByNameOrId(QuotationItemsCollection)
		if err != nil {
			return fmt.Errorf("quotation items collection unavailable: %w", err)
		}

		rec := core.NewRecord(quotationsCol)
		rec.Set("number", number)
		rec.Set("customer_name", customer.Name)
		rec.Set("customer_phone", customer.Phone)
		rec.Set("customer_address", customer.Address)
		rec.Set("salesperson", salesperson)
		rec.Set("subtotal", totals.Subtotal.StringFixed(2))
		rec.Set("tax_rate", totals.TaxRate.String())
		rec.Set("tax_amount", totals.TaxAmount.StringFixed(2))
		rec.Set("shipping_fee", totals.ShippingFee.StringFixed(2))
		rec.Set("total_amount", totals.Total.StringFixed(2))
		if err := txApp.Save(rec); err != nil {
			return fmt.Errorf("save quotation: %w", err)
		}
		quotationID = rec.Id

		for i, line := range lines {
			item := core.NewRecord(itemsCol)
			item.Set("quotation", quotationID)
			item.Set("sort_order", i+1)
			item.Set("category", line.Category)
			item.Set("system", line.System)
			item.Set("code1", line.Code1)
			item.Set("code2", line.Code2)
			item.Set("width", line.Width)
			item.Set("height", line.Height)
			item.Set("width_unit", string(line.WidthUnit))
			item.Set("height_unit", string(line.HeightUnit))
			item.Set("unit_price", line.UnitPrice.StringFixed(2))
			item.Set("quantity", line.Quantity)
			item.Set("line_total", line.LineTotal.StringFixed(2))
			if err := txApp.Save(item); err != nil {
				return fmt.Errorf("save quotation line %d: %w", i+1, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return FindQuotation(app, quotationID)
}

// FindQuotation loads a quotation with its lines in sort order.
func FindQuotation(app core.App, id string) (*Quotation, error) {
	rec, err := app.FindRecordById(QuotationsCollection, id)
	if err != nil {
		return nil, fmt.Errorf("quotation not found: %w", err)
	}

	items, err := app.FindRecordsByFilter(
		QuotationItemsCollection,
		"quotation = {:id}",
		"sort_order",
		0,
		0,
		map[string]any{"id": id},
	)
	if err != nil {
		return nil, fmt.Errorf("read quotation lines: %w", err)
	}

	q := quotationFromRecord(rec)
	for _, item := range items {
		q.Lines = append(q.Lines, QuotationLine{
			Category:   item.GetString("category"),
			System:     item.GetString("system"),
			Code1:      item.GetString("code1"),
			Code2:      item.GetString("code2"),
			Width:      item.GetFloat("width"),
			Height:     item.GetFloat("height"),
			WidthUnit:  Unit(item.GetString("width_unit")),
			HeightUnit: Unit(item.GetString("height_unit")),
			UnitPrice:  decimalField(item, "unit_price"),
			Quantity:   item.GetInt("quantity"),
			LineTotal:  decimalField(item, "line_total"),
		})
	}
	return q, nil
}

// ListQuotations returns all saved quotations, newest first, without lines.
func ListQuotations(app core.App) ([]Quotation, error) {
	recs, err := app.FindRecordsByFilter(QuotationsCollection, "id != ''", "-created", 0, 0, nil)
	if err != nil {
		return nil, fmt.Errorf("read quotations: %w", err)
	}
	out := make([]Quotation, 0, len(recs))
	for _, rec := range recs {
		out = append(out, *quotationFromRecord(rec))
	}
	return out, nil
}

// DeleteQuotation removes a quotation; its lines cascade.
func DeleteQuotation(app core.App, id string) error {
	rec, err := app.FindRecordById(QuotationsCollection, id)
	if err != nil {
		return fmt.Errorf("quotation not found: %w", err)
	}
	if err := app.Delete(rec); err != nil {
		return fmt.Errorf("delete quotation: %w", err)
	}
	return nil
}

func quotationFromRecord(rec *core.Record) *Quotation {
	return &Quotation{
		ID:      rec.Id,
		Number:  rec.GetString("number"),
		Created: rec.GetString("created"),
		Customer: CustomerInfo{
			Name:    rec.GetString("customer_name"),
			Phone:   rec.GetString("customer_phone"),
			Address: rec.GetString("customer_address"),
		},
		Salesperson: rec.GetString("salesperson"),
		Totals: QuotationTotals{
			Subtotal:    decimalField(rec, "subtotal"),
			TaxRate:     decimalField(rec, "tax_rate"),
			TaxAmount:   decimalField(rec, "tax_amount"),
			ShippingFee: decimalField(rec, "shipping_fee"),
			Total:       decimalField(rec, "total_amount"),
		},
	}
}

// decimalField parses a stored money/rate string; blank reads as zero.
func decimalField(rec *core.Record, name string) decimal.Decimal {
	raw := rec.GetString(name)
	if raw == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero
	}
	return d
}
