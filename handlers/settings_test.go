package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"curtainquote/services"
	"curtainquote/testhelpers"
)

func TestHandleSettingsGet_Defaults(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	handler := HandleSettingsGet(app)
	req := httptest.NewRequest(http.MethodGet, "/api/settings", nil)
	rec := httptest.NewRecorder()

	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var resp struct {
		CompanyName string `json:"company_name"`
		Currency    string `json:"currency"`
	}
	decodeJSON(t, rec, &resp)
	if resp.CompanyName != "Your Company" || resp.Currency != "USD" {
		t.Errorf("defaults = %+v, want Your Company / USD", resp)
	}
}

func TestHandleSettingsSave(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	handler := HandleSettingsSave(app)
	req := newJSONRequest(t, http.MethodPost, "/api/settings", SettingsRequest{
		CompanyName:        "North Shade Co",
		CompanyPhone:       "555-0100",
		DefaultTaxRate:     "8",
		DefaultShippingFee: "10",
	})
	rec := httptest.NewRecorder()

	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}

	loaded, err := services.LoadSettings(app)
	if err != nil {
		t.Fatalf("load settings: %v", err)
	}
	if loaded.CompanyName != "North Shade Co" {
		t.Errorf("company name = %q, want North Shade Co", loaded.CompanyName)
	}
	if loaded.DefaultTaxRate.String() != "8" {
		t.Errorf("tax rate = %s, want 8", loaded.DefaultTaxRate)
	}
	if loaded.Currency != "USD" {
		t.Errorf("currency = %q, want USD fallback", loaded.Currency)
	}
}

func TestHandleSettingsSave_Invalid(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	handler := HandleSettingsSave(app)

	tests := []struct {
		name string
		req  SettingsRequest
	}{
		{"missing company name", SettingsRequest{DefaultTaxRate: "8"}},
		{"bad tax rate", SettingsRequest{CompanyName: "X", DefaultTaxRate: "eight"}},
		{"bad shipping fee", SettingsRequest{CompanyName: "X", DefaultShippingFee: "ten"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := newJSONRequest(t, http.MethodPost, "/api/settings", tt.req)
			rec := httptest.NewRecorder()

			if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
				t.Fatalf("handler returned error: %v", err)
			}
			if rec.Code != http.StatusBadRequest {
				t.Errorf("expected status 400, got %d", rec.Code)
			}
		})
	}
}
