package collections

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// ── Definition structs ───────────────────────────────────────────────────

type priceDef struct {
	category  string
	system    string
	code1     string
	code2     string
	widthMin  float64
	widthMax  float64
	heightMin float64
	heightMax float64
	price     float64
}

// samplePrices is the starter price table written on first run so the
// lookup flow works before an admin imports a real price list.
var samplePrices = []priceDef{
	{"Glass", "Standard", "G001", "S001", 0, 100, 0, 100, 50.00},
	{"Glass", "Premium", "G002", "P001", 0, 150, 0, 150, 75.00},
}

// Seed populates default settings and sample price data on first run.
// Safe to call on every startup; it only writes into empty collections.
func Seed(app *pocketbase.PocketBase) error {
	if err := seedSettings(app); err != nil {
		return err
	}
	return seedPrices(app)
}

func seedSettings(app *pocketbase.PocketBase) error {
	existing, err := app.FindAllRecords("app_settings")
	if err != nil {
		return fmt.Errorf("seed: read settings: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}

	col, err := app.FindCollectionByNameOrId("app_settings")
	if err != nil {
		return fmt.Errorf("seed: settings collection unavailable: %w", err)
	}
	rec := core.NewRecord(col)
	rec.Set("company_name", "Your Company")
	rec.Set("default_tax_rate", "0")
	rec.Set("default_shipping_fee", "0")
	rec.Set("currency", "USD")
	if err := app.Save(rec); err != nil {
		return fmt.Errorf("seed: default settings: %w", err)
	}
	log.Println("Seeded default settings")
	return nil
}

func seedPrices(app *pocketbase.PocketBase) error {
	count, err := app.CountRecords("price_records")
	if err != nil {
		return fmt.Errorf("seed: count price records: %w", err)
	}
	if count > 0 {
		return nil
	}

	col, err := app.FindCollectionByNameOrId("price_records")
	if err != nil {
		return fmt.Errorf("seed: price_records collection unavailable: %w", err)
	}
	for _, def := range samplePrices {
		rec := core.NewRecord(col)
		rec.Set("category", def.category)
		rec.Set("system", def.system)
		rec.Set("code1", def.code1)
		rec.Set("code2", def.code2)
		rec.Set("width_min", def.widthMin)
		rec.Set("width_max", def.widthMax)
		rec.Set("height_min", def.heightMin)
		rec.Set("height_max", def.heightMax)
		rec.Set("price", def.price)
		if err := app.Save(rec); err != nil {
			return fmt.Errorf("seed: insert sample price: %w", err)
		}
	}
	log.Printf("Seeded %d sample price records", len(samplePrices))
	return nil
}
