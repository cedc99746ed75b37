package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
	"github.com/shopspring/decimal"

	"curtainquote/services"
)

// SettingsRequest is the JSON body for saving company settings. Rates and
// fees arrive as strings to avoid float round-trips.
type SettingsRequest struct {
	CompanyName        string `json:"company_name"`
	CompanyPhone       string `json:"company_phone"`
	CompanyEmail       string `json:"company_email"`
	CompanyAddress     string `json:"company_address"`
	DefaultTaxRate     string `json:"default_tax_rate"`
	DefaultShippingFee string `json:"default_shipping_fee"`
	Currency           string `json:"currency"`
}

// HandleSettingsGet returns the company settings.
// Route: GET /api/settings
func HandleSettingsGet(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		settings, err := services.LoadSettings(app)
		if err != nil {
			log.Printf("settings: %v", err)
			return e.JSON(http.StatusServiceUnavailable, map[string]string{"error": "settings unavailable"})
		}
		return e.JSON(http.StatusOK, settings)
	}
}

// HandleSettingsSave updates the company settings.
// Route: POST /api/settings
func HandleSettingsSave(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var req SettingsRequest
		if err := e.BindBody(&req); err != nil {
			return e.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		}
		if req.CompanyName == "" {
			return e.JSON(http.StatusBadRequest, map[string]string{"error": "company_name is required"})
		}

		taxRate := decimal.Zero
		if req.DefaultTaxRate != "" {
			d, err := decimal.NewFromString(req.DefaultTaxRate)
			if err != nil {
				return e.JSON(http.StatusBadRequest, map[string]string{"error": "invalid default_tax_rate"})
			}
			taxRate = d
		}
		shippingFee := decimal.Zero
		if req.DefaultShippingFee != "" {
			d, err := decimal.NewFromString(req.DefaultShippingFee)
			if err != nil {
				return e.JSON(http.StatusBadRequest, map[string]string{"error": "invalid default_shipping_fee"})
			}
			shippingFee = d
		}

		currency := req.Currency
		if currency == "" {
			currency = "USD"
		}

		settings := services.AppSettings{
			CompanyName:        req.CompanyName,
			CompanyPhone:       req.CompanyPhone,
			CompanyEmail:       req.CompanyEmail,
			CompanyAddress:     req.CompanyAddress,
			DefaultTaxRate:     taxRate,
			DefaultShippingFee: shippingFee,
			Currency:           currency,
		}
		if err := services.SaveSettings(app, settings); err != nil {
			log.Printf("settings: save: %v", err)
			return e.JSON(http.StatusServiceUnavailable, map[string]string{"error": "could not save settings"})
		}
		return e.JSON(http.StatusOK, settings)
	}
}
