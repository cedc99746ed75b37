package handlers

import (
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"curtainquote/testhelpers"
)

func TestHandleFacetCategories(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	testhelpers.CreateTestPriceRecord(t, app, "Shade Blind", "Roller", "R100", "RC1", 30, 60, 40, 80, 20)
	testhelpers.CreateTestPriceRecord(t, app, "Glass", "Standard", "G001", "S001", 0, 100, 0, 100, 50)
	testhelpers.CreateTestPriceRecord(t, app, "Glass", "Premium", "G002", "P001", 0, 150, 0, 150, 75)

	handler := HandleFacetCategories(app)
	req := httptest.NewRequest(http.MethodGet, "/api/facets/categories", nil)
	rec := httptest.NewRecorder()

	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var resp struct {
		Values []string `json:"values"`
	}
	decodeJSON(t, rec, &resp)
	want := []string{"Glass", "Shade Blind"}
	if !reflect.DeepEqual(resp.Values, want) {
		t.Errorf("values = %v, want %v", resp.Values, want)
	}
}

func TestHandleFacetCategories_EmptyTable(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	handler := HandleFacetCategories(app)
	req := httptest.NewRequest(http.MethodGet, "/api/facets/categories", nil)
	rec := httptest.NewRecorder()

	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var resp struct {
		Values []string `json:"values"`
	}
	decodeJSON(t, rec, &resp)
	if resp.Values == nil || len(resp.Values) != 0 {
		t.Errorf("expected empty (not null) values array, got %v", resp.Values)
	}
}

func TestHandleFacetSystems(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	testhelpers.CreateTestPriceRecord(t, app, "Glass", "Standard", "G001", "S001", 0, 100, 0, 100, 50)
	testhelpers.CreateTestPriceRecord(t, app, "Glass", "Premium", "G002", "P001", 0, 150, 0, 150, 75)
	testhelpers.CreateTestPriceRecord(t, app, "Shade Blind", "Roller", "R100", "RC1", 30, 60, 40, 80, 20)

	handler := HandleFacetSystems(app)
	req := httptest.NewRequest(http.MethodGet, "/api/facets/systems?category=Glass", nil)
	rec := httptest.NewRecorder()

	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	var resp struct {
		Values []string `json:"values"`
	}
	decodeJSON(t, rec, &resp)
	want := []string{"Premium", "Standard"}
	if !reflect.DeepEqual(resp.Values, want) {
		t.Errorf("values = %v, want %v", resp.Values, want)
	}
}

func TestHandleFacetSystems_MissingCategory(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	handler := HandleFacetSystems(app)
	req := httptest.NewRequest(http.MethodGet, "/api/facets/systems", nil)
	rec := httptest.NewRecorder()

	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", rec.Code)
	}
}

func TestHandleFacetCodes1(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	testhelpers.CreateTestPriceRecord(t, app, "Glass", "Standard", "G001", "S001", 0, 100, 0, 100, 50)
	testhelpers.CreateTestPriceRecord(t, app, "Glass", "Standard", "G003", "S003", 0, 100, 0, 100, 60)
	testhelpers.CreateTestPriceRecord(t, app, "Glass", "Premium", "G002", "P001", 0, 150, 0, 150, 75)

	handler := HandleFacetCodes1(app)
	req := httptest.NewRequest(http.MethodGet, "/api/facets/codes1?category=Glass&system=Standard", nil)
	rec := httptest.NewRecorder()

	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	var resp struct {
		Values []string `json:"values"`
	}
	decodeJSON(t, rec, &resp)
	want := []string{"G001", "G003"}
	if !reflect.DeepEqual(resp.Values, want) {
		t.Errorf("values = %v, want %v", resp.Values, want)
	}
}

func TestHandleFacetCodes2(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	testhelpers.CreateTestPriceRecord(t, app, "Glass", "Standard", "G001", "S001", 0, 100, 0, 100, 50)
	testhelpers.CreateTestPriceRecord(t, app, "Glass", "Standard", "G001", "S002", 0, 200, 0, 200, 80)

	handler := HandleFacetCodes2(app)
	req := httptest.NewRequest(http.MethodGet, "/api/facets/codes2?category=Glass&system=Standard&code1=G001", nil)
	rec := httptest.NewRecorder()

	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	var resp struct {
		Values []string `json:"values"`
	}
	decodeJSON(t, rec, &resp)
	want := []string{"S001", "S002"}
	if !reflect.DeepEqual(resp.Values, want) {
		t.Errorf("values = %v, want %v", resp.Values, want)
	}
}
