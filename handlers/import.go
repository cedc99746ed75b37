package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"curtainquote/services"
)

// ImportResponse reports the outcome of a price-list validation or import.
type ImportResponse struct {
	Applied  bool                   `json:"applied"`
	Total    int                    `json:"total"`
	Accepted int                    `json:"accepted"`
	Rejected int                    `json:"rejected"`
	Rows     []services.RejectedRow `json:"rejections,omitempty"`
}

// HandlePriceImportValidate receives a CSV/XLSX upload and reports what
// would be imported without writing anything.
// Route: POST /api/price-table/import/validate
func HandlePriceImportValidate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		result, err := parseUpload(e)
		if err != nil {
			return e.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return e.JSON(http.StatusOK, ImportResponse{
			Applied:  false,
			Total:    result.TotalRows,
			Accepted: len(result.Accepted),
			Rejected: len(result.Rejected),
			Rows:     result.Rejected,
		})
	}
}

// HandlePriceImportApply receives a CSV/XLSX upload and replaces the whole
// price table with its accepted rows. Replace, not append: repeated
// imports must not accumulate duplicate intervals.
// Route: POST /api/price-table/import
func HandlePriceImportApply(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		result, err := parseUpload(e)
		if err != nil {
			return e.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}

		report, err := services.ReplaceAllPriceRecords(app, result.Accepted)
		if err != nil {
			log.Printf("import: replace price table: %v", err)
			return e.JSON(http.StatusServiceUnavailable, map[string]string{"error": "price table unavailable"})
		}

		return e.JSON(http.StatusOK, ImportResponse{
			Applied:  true,
			Total:    result.TotalRows,
			Accepted: report.Accepted,
			Rejected: len(result.Rejected) + report.Rejected,
			Rows:     append(result.Rejected, report.Rows...),
		})
	}
}

// parseUpload reads the "file" form part and normalizes its rows. All
// failures here are client errors; callers answer them with a 400.
func parseUpload(e *core.RequestEvent) (services.ImportResult, error) {
	// Parse multipart form (max 20MB)
	if err := e.Request.ParseMultipartForm(20 << 20); err != nil {
		return services.ImportResult{}, errors.New("file too large or invalid form data")
	}

	file, header, err := e.Request.FormFile("file")
	if err != nil {
		return services.ImportResult{}, errors.New("please select a file to upload")
	}
	defer file.Close()

	headers, rows, err := services.ParsePriceFile(file, header.Filename)
	if err != nil {
		log.Printf("import: parse %q: %v", header.Filename, err)
		return services.ImportResult{}, err
	}

	return services.NormalizePriceRows(headers, rows), nil
}
