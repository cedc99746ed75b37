package services

import (
	"fmt"

	"github.com/pocketbase/pocketbase/core"
	"github.com/shopspring/decimal"
)

// SettingsCollection holds a single company-settings record.
const SettingsCollection = "app_settings"

// AppSettings are the company details and quotation defaults shown on
// quotations and exports.
type AppSettings struct {
	CompanyName        string          `json:"company_name"`
	CompanyPhone       string          `json:"company_phone"`
	CompanyEmail       string          `json:"company_email"`
	CompanyAddress     string          `json:"company_address"`
	DefaultTaxRate     decimal.Decimal `json:"default_tax_rate"`
	DefaultShippingFee decimal.Decimal `json:"default_shipping_fee"`
	Currency           string          `json:"currency"`
}

// DefaultSettings are applied on first run and on settings reset.
func DefaultSettings() AppSettings {
	return AppSettings{
		CompanyName:        "Your Company",
		Currency:           "USD",
		DefaultTaxRate:     decimal.Zero,
		DefaultShippingFee: decimal.Zero,
	}
}

// LoadSettings reads the settings record, falling back to defaults when
// none exists yet.
func LoadSettings(app core.App) (AppSettings, error) {
	recs, err := app.FindAllRecords(SettingsCollection)
	if err != nil {
		return AppSettings{}, fmt.Errorf("read settings: %w", err)
	}
	if len(recs) == 0 {
		return DefaultSettings(), nil
	}
	rec := recs[0]
	return AppSettings{
		CompanyName:        rec.GetString("company_name"),
		CompanyPhone:       rec.GetString("company_phone"),
		CompanyEmail:       rec.GetString("company_email"),
		CompanyAddress:     rec.GetString("company_address"),
		DefaultTaxRate:     decimalField(rec, "default_tax_rate"),
		DefaultShippingFee: decimalField(rec, "default_shipping_fee"),
		Currency:           rec.GetString("currency"),
	}, nil
}

// SaveSettings upserts the single settings record.
func SaveSettings(app core.App, s AppSettings) error {
	col, err := app.FindCollectionByNameOrId(SettingsCollection)
	if err != nil {
		return fmt.Errorf("settings collection unavailable: %w", err)
	}

	recs, err := app.FindAllRecords(SettingsCollection)
	if err != nil {
		return fmt.Errorf("read settings: %w", err)
	}

	var rec *core.Record
	if len(recs) > 0 {
		rec = recs[0]
	} else {
		rec = core.NewRecord(col)
	}

	rec.Set("company_name", s.CompanyName)
	rec.Set("company_phone", s.CompanyPhone)
	rec.Set("company_email", s.CompanyEmail)
	rec.Set("company_address", s.CompanyAddress)
	rec.Set("default_tax_rate", s.DefaultTaxRate.String())
	rec.Set("default_shipping_fee", s.DefaultShippingFee.String())
	rec.Set("currency", s.Currency)

	if err := app.Save(rec); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}
