package services

import (
	"fmt"
	"time"

	"github.com/pocketbase/pocketbase/core"
)

// formatQuoteNumber constructs the quotation number string from components.
func formatQuoteNumber(day string, sequence int) string {
	return fmt.Sprintf("Q-%s-%03d", day, sequence)
}

// GenerateQuoteNumber creates the next quotation number for the given day.
// Format: Q-YYYYMMDD-NNN with a 3-digit sequence that restarts daily.
func GenerateQuoteNumber(app core.App, now time.Time) (string, error) {
	day := now.Format("20060102")
	prefix := fmt.Sprintf("Q-%s-", day)

	existing, err := app.FindRecordsByFilter(
		QuotationsCollection,
		"number ~ {:prefix}",
		"",
		0,
		0,
		map[string]any{"prefix": prefix + "%"},
	)
	if err != nil {
		// Collection missing or empty: start at 1
		existing = nil
	}

	return formatQuoteNumber(day, len(existing)+1), nil
}
