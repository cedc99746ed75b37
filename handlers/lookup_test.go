package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"curtainquote/testhelpers"
)

func TestHandlePriceLookup_Match(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	testhelpers.CreateTestPriceRecord(t, app, "Shade Blind", "Roller", "R100", "RC1", 30, 60, 40, 80, 20)

	handler := HandlePriceLookup(app)
	req := newJSONRequest(t, http.MethodPost, "/api/price/lookup", LookupRequest{
		Category:   "Shade Blind",
		Width:      55,
		Height:     70,
		WidthUnit:  "cm",
		HeightUnit: "cm",
	})
	rec := httptest.NewRecorder()

	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp LookupResponse
	decodeJSON(t, rec, &resp)
	if !resp.Found {
		t.Fatal("expected found=true")
	}
	if resp.Record == nil || resp.Record.Price != 20 {
		t.Errorf("record = %+v, want price 20", resp.Record)
	}
}

func TestHandlePriceLookup_UnitConversion(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	testhelpers.CreateTestPriceRecord(t, app, "Shade Blind", "Roller", "R100", "RC1", 30, 60, 40, 80, 20)

	handler := HandlePriceLookup(app)
	// 550mm = 55cm, 23.62in ~= 60cm, both inside the record's rectangle
	req := newJSONRequest(t, http.MethodPost, "/api/price/lookup", LookupRequest{
		Category:   "Shade Blind",
		Width:      550,
		Height:     23.62,
		WidthUnit:  "mm",
		HeightUnit: "in",
	})
	rec := httptest.NewRecorder()

	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestHandlePriceLookup_NoMatch(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	testhelpers.CreateTestPriceRecord(t, app, "Shade Blind", "Roller", "R100", "RC1", 30, 60, 40, 80, 20)

	handler := HandlePriceLookup(app)
	req := newJSONRequest(t, http.MethodPost, "/api/price/lookup", LookupRequest{
		Category:   "Shade Blind",
		Width:      500,
		Height:     500,
		WidthUnit:  "cm",
		HeightUnit: "cm",
	})
	rec := httptest.NewRecorder()

	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", rec.Code)
	}

	var resp LookupResponse
	decodeJSON(t, rec, &resp)
	if resp.Found {
		t.Error("expected found=false")
	}
}

func TestHandlePriceLookup_InvalidInput(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	testhelpers.CreateTestPriceRecord(t, app, "Shade Blind", "Roller", "R100", "RC1", 30, 60, 40, 80, 20)

	tests := []struct {
		name string
		req  LookupRequest
	}{
		{"missing category", LookupRequest{Width: 55, Height: 70, WidthUnit: "cm", HeightUnit: "cm"}},
		{"zero width", LookupRequest{Category: "Shade Blind", Width: 0, Height: 70, WidthUnit: "cm", HeightUnit: "cm"}},
		{"negative height", LookupRequest{Category: "Shade Blind", Width: 55, Height: -1, WidthUnit: "cm", HeightUnit: "cm"}},
		{"unknown unit", LookupRequest{Category: "Shade Blind", Width: 55, Height: 70, WidthUnit: "furlong", HeightUnit: "cm"}},
	}

	handler := HandlePriceLookup(app)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := newJSONRequest(t, http.MethodPost, "/api/price/lookup", tt.req)
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

func TestHandleCode2Match(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	testhelpers.CreateTestPriceRecord(t, app, "Glass", "Standard", "G001", "S001", 0, 100, 0, 100, 50)

	handler := HandleCode2Match(app)
	req := httptest.NewRequest(http.MethodGet, "/api/price/code2?category=Glass&system=Standard&code1=G001", nil)
	rec := httptest.NewRecorder()

	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var resp struct {
		Found bool   `json:"found"`
		Code2 string `json:"code2"`
	}
	decodeJSON(t, rec, &resp)
	if !resp.Found || resp.Code2 != "S001" {
		t.Errorf("resp = %+v, want found S001", resp)
	}
}

func TestHandleCode2Match_NotFound(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	handler := HandleCode2Match(app)
	req := httptest.NewRequest(http.MethodGet, "/api/price/code2?category=Glass&system=Standard&code1=ZZZ", nil)
	rec := httptest.NewRecorder()

	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", rec.Code)
	}
}
