// Package handlers wires the quotation tool's JSON API onto PocketBase
// routes.
package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"curtainquote/services"
)

// HandleFacetCategories returns the distinct categories in the price table.
// Route: GET /api/facets/categories
func HandleFacetCategories(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		records, err := services.AllPriceRecords(app)
		if err != nil {
			log.Printf("facets: %v", err)
			return e.JSON(http.StatusServiceUnavailable, map[string]string{"error": "price table unavailable"})
		}
		return e.JSON(http.StatusOK, map[string]any{"values": services.Categories(records)})
	}
}

// HandleFacetSystems returns the systems under a category.
// Route: GET /api/facets/systems?category=...
func HandleFacetSystems(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		category := e.Request.URL.Query().Get("category")
		if category == "" {
			return e.JSON(http.StatusBadRequest, map[string]string{"error": "category is required"})
		}
		records, err := services.AllPriceRecords(app)
		if err != nil {
			log.Printf("facets: %v", err)
			return e.JSON(http.StatusServiceUnavailable, map[string]string{"error": "price table unavailable"})
		}
		return e.JSON(http.StatusOK, map[string]any{"values": services.Systems(records, category)})
	}
}

// HandleFacetCodes1 returns the code1 values under a category/system pair.
// Route: GET /api/facets/codes1?category=...&system=...
func HandleFacetCodes1(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		q := e.Request.URL.Query()
		category := q.Get("category")
		if category == "" {
			return e.JSON(http.StatusBadRequest, map[string]string{"error": "category is required"})
		}
		records, err := services.AllPriceRecords(app)
		if err != nil {
			log.Printf("facets: %v", err)
			return e.JSON(http.StatusServiceUnavailable, map[string]string{"error": "price table unavailable"})
		}
		return e.JSON(http.StatusOK, map[string]any{"values": services.Codes1(records, category, q.Get("system"))})
	}
}

// HandleFacetCodes2 returns the code2 values under category/system/code1.
// Route: GET /api/facets/codes2?category=...&system=...&code1=...
func HandleFacetCodes2(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		q := e.Request.URL.Query()
		category := q.Get("category")
		if category == "" {
			return e.JSON(http.StatusBadRequest, map[string]string{"error": "category is required"})
		}
		records, err := services.AllPriceRecords(app)
		if err != nil {
			log.Printf("facets: %v", err)
			return e.JSON(http.StatusServiceUnavailable, map[string]string{"error": "price table unavailable"})
		}
		return e.JSON(http.StatusOK, map[string]any{
			"values": services.Codes2(records, category, q.Get("system"), q.Get("code1")),
		})
	}
}
