package handlers

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"curtainquote/services"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// HandlePriceTableList returns the full price table.
// Route: GET /api/price-table
func HandlePriceTableList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		records, err := services.AllPriceRecords(app)
		if err != nil {
			log.Printf("price_table: %v", err)
			return e.JSON(http.StatusServiceUnavailable, map[string]string{"error": "price table unavailable"})
		}
		return e.JSON(http.StatusOK, map[string]any{"total": len(records), "records": records})
	}
}

// HandlePriceTableCount returns the row count only.
// Route: GET /api/price-table/count
func HandlePriceTableCount(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		count, err := services.CountPriceRecords(app)
		if err != nil {
			log.Printf("price_table: %v", err)
			return e.JSON(http.StatusServiceUnavailable, map[string]string{"error": "price table unavailable"})
		}
		return e.JSON(http.StatusOK, map[string]any{"total": count})
	}
}

// HandlePriceTableClear truncates the price table. Destructive; the caller
// must send confirm=yes explicitly, distinct from the import/replace flow.
// Route: DELETE /api/price-table?confirm=yes
func HandlePriceTableClear(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if e.Request.URL.Query().Get("confirm") != "yes" {
			return e.JSON(http.StatusBadRequest, map[string]string{"error": "clearing the price table requires confirm=yes"})
		}
		if err := services.ClearPriceRecords(app); err != nil {
			log.Printf("price_table: clear: %v", err)
			return e.JSON(http.StatusServiceUnavailable, map[string]string{"error": "price table unavailable"})
		}
		return e.JSON(http.StatusOK, map[string]any{"cleared": true})
	}
}

// HandlePriceTableExport downloads the price table as an xlsx workbook.
// Route: GET /api/price-table/export
func HandlePriceTableExport(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		records, err := services.AllPriceRecords(app)
		if err != nil {
			log.Printf("price_table: %v", err)
			return e.JSON(http.StatusServiceUnavailable, map[string]string{"error": "price table unavailable"})
		}
		data, err := services.GeneratePriceTableExcel(records)
		if err != nil {
			log.Printf("price_table: export: %v", err)
			return e.JSON(http.StatusInternalServerError, map[string]string{"error": "export failed"})
		}
		fileName := fmt.Sprintf("price_table_%s.xlsx", time.Now().Format("20060102"))
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
		return e.Blob(http.StatusOK, xlsxContentType, data)
	}
}

// HandlePriceTableTemplate downloads a blank import template.
// Route: GET /api/price-table/template
func HandlePriceTableTemplate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		data, err := services.GenerateImportTemplate()
		if err != nil {
			log.Printf("price_table: template: %v", err)
			return e.JSON(http.StatusInternalServerError, map[string]string{"error": "template generation failed"})
		}
		e.Response.Header().Set("Content-Disposition", `attachment; filename="price_list_template.xlsx"`)
		return e.Blob(http.StatusOK, xlsxContentType, data)
	}
}
