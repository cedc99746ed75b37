package services

import (
	"fmt"
	"math"
	"time"

	"github.com/pocketbase/pocketbase/core"
)

// QuotationExportRow is a single line on a quotation export.
type QuotationExportRow struct {
	Index     string
	Product   string // "category / system / code1 (code2)"
	Size      string // "120 × 80 cm"
	UnitPrice string
	Quantity  int
	LineTotal string
}

// QuotationExportData holds everything the PDF/Excel exporters need.
type QuotationExportData struct {
	Number         string
	Date           string
	CompanyName    string
	CompanyPhone   string
	CompanyAddress string
	CustomerName   string
	CustomerPhone  string
	CustomerAddr   string
	Salesperson    string
	Rows           []QuotationExportRow
	Subtotal       string
	TaxLabel       string // "Tax (8%)"
	TaxAmount      string
	ShippingFee    string
	Total          string
}

// BuildQuotationExport loads a saved quotation plus company settings and
// shapes them for export.
func BuildQuotationExport(app core.App, quotationID string) (QuotationExportData, error) {
	q, err := FindQuotation(app, quotationID)
	if err != nil {
		return QuotationExportData{}, err
	}
	settings, err := LoadSettings(app)
	if err != nil {
		return QuotationExportData{}, err
	}

	date := q.Created
	if t, perr := time.Parse("2006-01-02 15:04:05.000Z", q.Created); perr == nil {
		date = t.Format("2006-01-02")
	}

	data := QuotationExportData{
		Number:         q.Number,
		Date:           date,
		CompanyName:    settings.CompanyName,
		CompanyPhone:   settings.CompanyPhone,
		CompanyAddress: settings.CompanyAddress,
		CustomerName:   q.Customer.Name,
		CustomerPhone:  q.Customer.Phone,
		CustomerAddr:   q.Customer.Address,
		Salesperson:    q.Salesperson,
		Subtotal:       FormatUSD(q.Totals.Subtotal),
		TaxLabel:       fmt.Sprintf("Tax (%s%%)", q.Totals.TaxRate.String()),
		TaxAmount:      FormatUSD(q.Totals.TaxAmount),
		ShippingFee:    FormatUSD(q.Totals.ShippingFee),
		Total:          FormatUSD(q.Totals.Total),
	}

	for i, line := range q.Lines {
		data.Rows = append(data.Rows, QuotationExportRow{
			Index:     fmt.Sprintf("%d", i+1),
			Product:   formatProduct(line),
			Size:      formatSize(line),
			UnitPrice: FormatUSD(line.UnitPrice),
			Quantity:  line.Quantity,
			LineTotal: FormatUSD(line.LineTotal),
		})
	}
	return data, nil
}

func formatProduct(line QuotationLine) string {
	s := line.Category
	if line.System != "" {
		s += " / " + line.System
	}
	if line.Code1 != "" {
		s += " / " + line.Code1
	}
	if line.Code2 != "" {
		s += " (" + line.Code2 + ")"
	}
	return s
}

func formatSize(line QuotationLine) string {
	return fmt.Sprintf("%s %s × %s %s",
		formatDim(line.Width), line.WidthUnit,
		formatDim(line.Height), line.HeightUnit)
}

// formatDim prints a dimension as a whole number when it has no fractional
// part, otherwise with 2 decimals.
func formatDim(v float64) string {
	if v == math.Trunc(v) {
		return fmt.Sprintf("%.0f", v)
	}
	return fmt.Sprintf("%.2f", v)
}
