package services

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// GenerateQuotationPDF renders a saved quotation as a PDF document using
// maroto/v2 and returns the raw bytes.
func GenerateQuotationPDF(data QuotationExportData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(12).
		WithTopMargin(12).
		WithRightMargin(12).
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
			Size:    7,
			Color:   &props.Color{Red: 120, Green: 120, Blue: 120},
		}).
		Build()

	m := maroto.New(cfg)

	addQuotationHeader(m, data)
	addQuotationTableHeader(m)
	for _, r := range data.Rows {
		addQuotationTableRow(m, r)
	}
	addQuotationSummary(m, data)
	addQuotationFooter(m, data)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}
	return doc.GetBytes(), nil
}

// addQuotationHeader adds the company block, title and customer block.
func addQuotationHeader(m core.Maroto, data QuotationExportData) {
	m.AddRows(
		row.New(12).Add(
			col.New(12).Add(
				text.New("QUOTATION", props.Text{
					Size:  16,
					Style: fontstyle.Bold,
					Align: align.Center,
				}),
			),
		),
	)

	gray := &props.Color{Red: 80, Green: 80, Blue: 80}
	m.AddRows(
		row.New(8).Add(
			col.New(6).Add(
				text.New(fmt.Sprintf("No: %s", data.Number), props.Text{Size: 9, Align: align.Left, Color: gray}),
			),
			col.New(6).Add(
				text.New(fmt.Sprintf("Date: %s", data.Date), props.Text{Size: 9, Align: align.Right, Color: gray}),
			),
		),
	)

	labelText := props.Text{Size: 8, Style: fontstyle.Bold, Align: align.Left}
	bodyText := props.Text{Size: 8, Align: align.Left, Color: gray}

	m.AddRows(
		row.New(6).Add(
			col.New(6).Add(text.New("From", labelText)),
			col.New(6).Add(text.New("To", labelText)),
		),
		row.New(5).Add(
			col.New(6).Add(text.New(data.CompanyName, bodyText)),
			col.New(6).Add(text.New(data.CustomerName, bodyText)),
		),
		row.New(5).Add(
			col.New(6).Add(text.New(data.CompanyPhone, bodyText)),
			col.New(6).Add(text.New(data.CustomerPhone, bodyText)),
		),
		row.New(5).Add(
			col.New(6).Add(text.New(data.CompanyAddress, bodyText)),
			col.New(6).Add(text.New(data.CustomerAddr, bodyText)),
		),
	)

	// Spacer
	m.AddRows(row.New(4))
}

// addQuotationTableHeader adds the column header row for the line table.
func addQuotationTableHeader(m core.Maroto) {
	headerBg := &props.Color{Red: 33, Green: 37, Blue: 41}
	headerText := props.Text{
		Size:  8,
		Style: fontstyle.Bold,
		Align: align.Center,
		Color: &props.Color{Red: 255, Green: 255, Blue: 255},
	}
	headerTextLeft := headerText
	headerTextLeft.Align = align.Left

	headerCell := props.Cell{BackgroundColor: headerBg}

	m.AddRows(
		row.New(8).Add(
			col.New(1).Add(text.New("#", headerText)).WithStyle(&headerCell),
			col.New(4).Add(text.New("Product", headerTextLeft)).WithStyle(&headerCell),
			col.New(3).Add(text.New("Size", headerText)).WithStyle(&headerCell),
			col.New(1).Add(text.New("Qty", headerText)).WithStyle(&headerCell),
			col.New(1).Add(text.New("Unit Price", headerText)).WithStyle(&headerCell),
			col.New(2).Add(text.New("Total", headerText)).WithStyle(&headerCell),
		),
	)
}

// addQuotationTableRow adds a single quotation line to the table.
func addQuotationTableRow(m core.Maroto, r QuotationExportRow) {
	baseText := props.Text{Size: 8, Align: align.Center}
	leftText := baseText
	leftText.Align = align.Left
	rightText := baseText
	rightText.Align = align.Right

	m.AddRows(
		row.New(7).Add(
			col.New(1).Add(text.New(r.Index, baseText)),
			col.New(4).Add(text.New(r.Product, leftText)),
			col.New(3).Add(text.New(r.Size, baseText)),
			col.New(1).Add(text.New(fmt.Sprintf("%d", r.Quantity), rightText)),
			col.New(1).Add(text.New(r.UnitPrice, rightText)),
			col.New(2).Add(text.New(r.LineTotal, rightText)),
		),
	)
}

// addQuotationSummary adds the subtotal/tax/shipping/total block.
func addQuotationSummary(m core.Maroto, data QuotationExportData) {
	m.AddRows(row.New(6))

	summaryBg := &props.Color{Red: 240, Green: 240, Blue: 240}
	summaryCell := &props.Cell{BackgroundColor: summaryBg}

	labelStyle := props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Right}
	valueStyle := props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Right}

	summaryRows := []struct {
		label string
		value string
	}{
		{"Subtotal", data.Subtotal},
		{data.TaxLabel, data.TaxAmount},
		{"Shipping", data.ShippingFee},
		{"Total", data.Total},
	}
	for _, s := range summaryRows {
		m.AddRows(
			row.New(8).Add(
				col.New(8).Add(text.New(s.label, labelStyle)).WithStyle(summaryCell),
				col.New(4).Add(text.New(s.value, valueStyle)).WithStyle(summaryCell),
			),
		)
	}
}

// addQuotationFooter adds the salesperson and generated-date line.
func addQuotationFooter(m core.Maroto, data QuotationExportData) {
	m.AddRows(row.New(6))
	footer := fmt.Sprintf("Prepared by %s on %s", data.Salesperson, data.Date)
	if data.Salesperson == "" {
		footer = fmt.Sprintf("Generated on %s", data.Date)
	}
	m.AddRows(
		row.New(6).Add(
			col.New(12).Add(
				text.New(footer, props.Text{
					Size:  7,
					Align: align.Left,
					Color: &props.Color{Red: 140, Green: 140, Blue: 140},
				}),
			),
		),
	)
}
