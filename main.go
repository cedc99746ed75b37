package main

import (
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"curtainquote/collections"
	"curtainquote/handlers"
)

func main() {
	app := pocketbase.New()

	// Create collections and seed data on startup
	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		collections.Setup(app)
		if err := collections.Seed(app); err != nil {
			log.Printf("Warning: seed data failed: %v", err)
		}
		return se.Next()
	})

	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		// ── Facet pickers (category → system → code1 → code2) ────
		se.Router.GET("/api/facets/categories", handlers.HandleFacetCategories(app))
		se.Router.GET("/api/facets/systems", handlers.HandleFacetSystems(app))
		se.Router.GET("/api/facets/codes1", handlers.HandleFacetCodes1(app))
		se.Router.GET("/api/facets/codes2", handlers.HandleFacetCodes2(app))

		// ── Price lookup ─────────────────────────────────────────
		se.Router.POST("/api/price/lookup", handlers.HandlePriceLookup(app))
		se.Router.GET("/api/price/code2", handlers.HandleCode2Match(app))

		// ── Price table administration ───────────────────────────
		se.Router.GET("/api/price-table", handlers.HandlePriceTableList(app))
		se.Router.GET("/api/price-table/count", handlers.HandlePriceTableCount(app))
		se.Router.DELETE("/api/price-table", handlers.HandlePriceTableClear(app))
		se.Router.GET("/api/price-table/export", handlers.HandlePriceTableExport(app))
		se.Router.GET("/api/price-table/template", handlers.HandlePriceTableTemplate(app))
		se.Router.POST("/api/price-table/import", handlers.HandlePriceImportApply(app))
		se.Router.POST("/api/price-table/import/validate", handlers.HandlePriceImportValidate(app))

		// ── Quotations ───────────────────────────────────────────
		se.Router.POST("/api/quotations", handlers.HandleQuotationCreate(app))
		se.Router.GET("/api/quotations", handlers.HandleQuotationList(app))
		se.Router.GET("/api/quotations/{id}", handlers.HandleQuotationGet(app))
		se.Router.DELETE("/api/quotations/{id}", handlers.HandleQuotationDelete(app))
		se.Router.GET("/api/quotations/{id}/pdf", handlers.HandleQuotationPDF(app))

		// ── Customers ────────────────────────────────────────────
		se.Router.GET("/api/customers", handlers.HandleCustomerList(app))
		se.Router.POST("/api/customers", handlers.HandleCustomerCreate(app))
		se.Router.POST("/api/customers/{id}", handlers.HandleCustomerUpdate(app))
		se.Router.DELETE("/api/customers/{id}", handlers.HandleCustomerDelete(app))

		// ── Company settings ─────────────────────────────────────
		se.Router.GET("/api/settings", handlers.HandleSettingsGet(app))
		se.Router.POST("/api/settings", handlers.HandleSettingsSave(app))

		return se.Next()
	})

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}
