package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
	"github.com/shopspring/decimal"

	"curtainquote/services"
)

// QuotationLineRequest is one requested line. The unit price is always
// resolved server-side through the lookup engine, never trusted from the
// client.
type QuotationLineRequest struct {
	Category   string  `json:"category"`
	System     string  `json:"system"`
	Code1      string  `json:"code1"`
	Code2      string  `json:"code2"`
	Width      float64 `json:"width"`
	Height     float64 `json:"height"`
	WidthUnit  string  `json:"width_unit"`
	HeightUnit string  `json:"height_unit"`
	Quantity   int     `json:"quantity"`
}

// QuotationCreateRequest is the JSON body for saving a quotation. Customer
// details come either from a directory record (customer_id) or inline;
// tax rate and shipping fee fall back to the company defaults.
type QuotationCreateRequest struct {
	CustomerID      string                 `json:"customer_id"`
	CustomerName    string                 `json:"customer_name"`
	CustomerPhone   string                 `json:"customer_phone"`
	CustomerAddress string                 `json:"customer_address"`
	Salesperson     string                 `json:"salesperson"`
	TaxRate         *string                `json:"tax_rate"`
	ShippingFee     *string                `json:"shipping_fee"`
	Lines           []QuotationLineRequest `json:"lines"`
}

// HandleQuotationCreate prices every requested line against the current
// table, totals them, and saves the quotation with a by-value customer
// snapshot.
// Route: POST /api/quotations
func HandleQuotationCreate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var req QuotationCreateRequest
		if err := e.BindBody(&req); err != nil {
			return e.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		}
		if len(req.Lines) == 0 {
			return e.JSON(http.StatusBadRequest, map[string]string{"error": "quotation must contain at least one line"})
		}

		customer := services.CustomerInfo{
			Name:    req.CustomerName,
			Phone:   req.CustomerPhone,
			Address: req.CustomerAddress,
		}
		if req.CustomerID != "" {
			c, err := services.FindCustomer(app, req.CustomerID)
			if err != nil {
				return e.JSON(http.StatusNotFound, map[string]string{"error": "customer not found"})
			}
			customer = services.CustomerInfo{Name: c.Name, Phone: c.Phone, Address: c.Address}
		}

		settings, err := services.LoadSettings(app)
		if err != nil {
			log.Printf("quotation: load settings: %v", err)
			return e.JSON(http.StatusServiceUnavailable, map[string]string{"error": "settings unavailable"})
		}
		taxRate := settings.DefaultTaxRate
		if req.TaxRate != nil {
			taxRate, err = decimal.NewFromString(*req.TaxRate)
			if err != nil {
				return e.JSON(http.StatusBadRequest, map[string]string{"error": "invalid tax_rate"})
			}
		}
		shippingFee := settings.DefaultShippingFee
		if req.ShippingFee != nil {
			shippingFee, err = decimal.NewFromString(*req.ShippingFee)
			if err != nil {
				return e.JSON(http.StatusBadRequest, map[string]string{"error": "invalid shipping_fee"})
			}
		}

		records, err := services.AllPriceRecords(app)
		if err != nil {
			log.Printf("quotation: %v", err)
			return e.JSON(http.StatusServiceUnavailable, map[string]string{"error": "price table unavailable"})
		}

		lines := make([]services.QuotationLine, 0, len(req.Lines))
		for i, lr := range req.Lines {
			filter := services.LookupFilter{
				Category: lr.Category,
				System:   lr.System,
				Code1:    lr.Code1,
				Code2:    lr.Code2,
			}
			match, found, err := services.LookupPrice(records, filter,
				lr.Width, lr.Height,
				services.Unit(lr.WidthUnit), services.Unit(lr.HeightUnit))
			if err != nil {
				return e.JSON(http.StatusBadRequest, map[string]string{
					"error": fmt.Sprintf("line %d: %v", i+1, err),
				})
			}
			if !found {
				return e.JSON(http.StatusUnprocessableEntity, map[string]string{
					"error": fmt.Sprintf("line %d: no price record covers these dimensions", i+1),
				})
			}
			line, err := services.NewQuotationLine(match,
				lr.Width, lr.Height,
				services.Unit(lr.WidthUnit), services.Unit(lr.HeightUnit), lr.Quantity)
			if err != nil {
				if errors.Is(err, services.ErrInvalidQuantity) {
					return e.JSON(http.StatusBadRequest, map[string]string{
						"error": fmt.Sprintf("line %d: %v", i+1, err),
					})
				}
				log.Printf("quotation: build line: %v", err)
				return e.JSON(http.StatusInternalServerError, map[string]string{"error": "could not build quotation line"})
			}
			lines = append(lines, line)
		}

		totals := services.SummarizeQuotation(lines, taxRate, shippingFee)
		saved, err := services.SaveQuotation(app, customer, req.Salesperson, lines, totals, time.Now())
		if err != nil {
			log.Printf("quotation: save: %v", err)
			return e.JSON(http.StatusServiceUnavailable, map[string]string{"error": "could not save quotation"})
		}
		return e.JSON(http.StatusCreated, saved)
	}
}

// HandleQuotationList returns all saved quotations, newest first.
// Route: GET /api/quotations
func HandleQuotationList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		quotations, err := services.ListQuotations(app)
		if err != nil {
			log.Printf("quotation: list: %v", err)
			return e.JSON(http.StatusServiceUnavailable, map[string]string{"error": "quotations unavailable"})
		}
		return e.JSON(http.StatusOK, map[string]any{"total": len(quotations), "quotations": quotations})
	}
}

// HandleQuotationGet returns one quotation with its lines.
// Route: GET /api/quotations/{id}
func HandleQuotationGet(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		q, err := services.FindQuotation(app, e.Request.PathValue("id"))
		if err != nil {
			return e.JSON(http.StatusNotFound, map[string]string{"error": "quotation not found"})
		}
		return e.JSON(http.StatusOK, q)
	}
}

// HandleQuotationDelete discards a saved quotation and its lines.
// Route: DELETE /api/quotations/{id}
func HandleQuotationDelete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := services.DeleteQuotation(app, e.Request.PathValue("id")); err != nil {
			return e.JSON(http.StatusNotFound, map[string]string{"error": "quotation not found"})
		}
		return e.JSON(http.StatusOK, map[string]any{"deleted": true})
	}
}

// HandleQuotationPDF downloads a quotation as PDF.
// Route: GET /api/quotations/{id}/pdf
func HandleQuotationPDF(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		data, err := services.BuildQuotationExport(app, e.Request.PathValue("id"))
		if err != nil {
			return e.JSON(http.StatusNotFound, map[string]string{"error": "quotation not found"})
		}
		pdf, err := services.GenerateQuotationPDF(data)
		if err != nil {
			log.Printf("quotation: pdf: %v", err)
			return e.JSON(http.StatusInternalServerError, map[string]string{"error": "pdf generation failed"})
		}
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", data.Number+".pdf"))
		return e.Blob(http.StatusOK, "application/pdf", pdf)
	}
}
