package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"curtainquote/services"
)

// LookupRequest is the JSON body of a price lookup.
type LookupRequest struct {
	Category   string  `json:"category"`
	System     string  `json:"system"`
	Code1      string  `json:"code1"`
	Code2      string  `json:"code2"`
	Width      float64 `json:"width"`
	Height     float64 `json:"height"`
	WidthUnit  string  `json:"width_unit"`
	HeightUnit string  `json:"height_unit"`
}

// LookupResponse carries the matched record, when one exists.
type LookupResponse struct {
	Found  bool                  `json:"found"`
	Record *services.PriceRecord `json:"record,omitempty"`
}

// HandlePriceLookup resolves a unit price for a product identity plus
// dimensions. No match is a 404 with found=false, not an error.
// Route: POST /api/price/lookup
func HandlePriceLookup(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var req LookupRequest
		if err := e.BindBody(&req); err != nil {
			return e.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		}

		records, err := services.AllPriceRecords(app)
		if err != nil {
			log.Printf("lookup: %v", err)
			return e.JSON(http.StatusServiceUnavailable, map[string]string{"error": "price table unavailable"})
		}

		filter := services.LookupFilter{
			Category: req.Category,
			System:   req.System,
			Code1:    req.Code1,
			Code2:    req.Code2,
		}
		match, found, err := services.LookupPrice(records, filter,
			req.Width, req.Height,
			services.Unit(req.WidthUnit), services.Unit(req.HeightUnit))
		if err != nil {
			if errors.Is(err, services.ErrInvalidQuery) || errors.Is(err, services.ErrInvalidUnit) {
				return e.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
			}
			log.Printf("lookup: %v", err)
			return e.JSON(http.StatusInternalServerError, map[string]string{"error": "lookup failed"})
		}
		if !found {
			return e.JSON(http.StatusNotFound, LookupResponse{Found: false})
		}
		return e.JSON(http.StatusOK, LookupResponse{Found: true, Record: &match})
	}
}

// HandleCode2Match auto-fills code2 from category/system/code1.
// Route: GET /api/price/code2?category=...&system=...&code1=...
func HandleCode2Match(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		q := e.Request.URL.Query()
		records, err := services.AllPriceRecords(app)
		if err != nil {
			log.Printf("lookup: %v", err)
			return e.JSON(http.StatusServiceUnavailable, map[string]string{"error": "price table unavailable"})
		}
		code2, ok := services.MatchCode2(records, q.Get("category"), q.Get("system"), q.Get("code1"))
		if !ok {
			return e.JSON(http.StatusNotFound, map[string]any{"found": false})
		}
		return e.JSON(http.StatusOK, map[string]any{"found": true, "code2": code2})
	}
}
