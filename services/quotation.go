package services

import (
	"errors"

	"github.com/shopspring/decimal"
)

// ErrInvalidQuantity is returned when a line is added with a quantity that
// is not a positive integer.
var ErrInvalidQuantity = errors.New("quantity must be a positive integer")

// QuotationLine is one row of a quotation being assembled. Dimensions are
// kept in their original entry unit for display; the unit price comes from
// the matched price record.
type QuotationLine struct {
	Category   string          `json:"category"`
	System     string          `json:"system"`
	Code1      string          `json:"code1"`
	Code2      string          `json:"code2"`
	Width      float64         `json:"width"`
	Height     float64         `json:"height"`
	WidthUnit  Unit            `json:"width_unit"`
	HeightUnit Unit            `json:"height_unit"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	Quantity   int             `json:"quantity"`
	LineTotal  decimal.Decimal `json:"line_total"`
}

// QuotationTotals are the derived financial fields of a quotation.
// All amounts are rounded to 2 decimal places.
type QuotationTotals struct {
	Subtotal    decimal.Decimal `json:"subtotal"`
	TaxRate     decimal.Decimal `json:"tax_rate"`
	TaxAmount   decimal.Decimal `json:"tax_amount"`
	ShippingFee decimal.Decimal `json:"shipping_fee"`
	Total       decimal.Decimal `json:"total"`
}

// NewQuotationLine builds a line from a successful lookup plus the entered
// dimensions and quantity.
func NewQuotationLine(match PriceRecord, width, height float64, widthUnit, heightUnit Unit, quantity int) (QuotationLine, error) {
	if quantity <= 0 {
		return QuotationLine{}, ErrInvalidQuantity
	}
	unitPrice := decimal.NewFromFloat(match.Price)
	return QuotationLine{
		Category:   match.Category,
		System:     match.System,
		Code1:      match.Code1,
		Code2:      match.Code2,
		Width:      width,
		Height:     height,
		WidthUnit:  widthUnit,
		HeightUnit: heightUnit,
		UnitPrice:  unitPrice,
		Quantity:   quantity,
		LineTotal:  unitPrice.Mul(decimal.NewFromInt(int64(quantity))),
	}, nil
}

// SummarizeQuotation totals the lines: subtotal, tax on the subtotal at
// taxRatePercent, plus a flat shipping fee. Decimal arithmetic throughout;
// tax and total are rounded to cents at this boundary.
func SummarizeQuotation(lines []QuotationLine, taxRatePercent, shippingFee decimal.Decimal) QuotationTotals {
	subtotal := decimal.Zero
	for _, line := range lines {
		subtotal = subtotal.Add(line.LineTotal)
	}
	subtotal = subtotal.Round(2)
	taxAmount := subtotal.Mul(taxRatePercent).Div(decimal.NewFromInt(100)).Round(2)
	total := subtotal.Add(taxAmount).Add(shippingFee).Round(2)
	return QuotationTotals{
		Subtotal:    subtotal,
		TaxRate:     taxRatePercent,
		TaxAmount:   taxAmount,
		ShippingFee: shippingFee,
		Total:       total,
	}
}
