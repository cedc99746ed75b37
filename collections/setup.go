// Package collections programmatically creates the application's
// PocketBase collections and seeds default data.
package collections

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// Setup ensures the price_records, customers, quotations, quotation_items
// and app_settings collections exist.
func Setup(app *pocketbase.PocketBase) {
	ensureCollection(app, "price_records", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "category", Required: true})
		c.Fields.Add(&core.TextField{Name: "system", Required: false})
		c.Fields.Add(&core.TextField{Name: "code1", Required: false})
		c.Fields.Add(&core.TextField{Name: "code2", Required: false})
		c.Fields.Add(&core.NumberField{Name: "width_min", Required: false})
		c.Fields.Add(&core.NumberField{Name: "width_max", Required: false})
		c.Fields.Add(&core.NumberField{Name: "height_min", Required: false})
		c.Fields.Add(&core.NumberField{Name: "height_max", Required: false})
		c.Fields.Add(&core.NumberField{Name: "price", Required: false})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})

	ensureCollection(app, "customers", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "name", Required: true})
		c.Fields.Add(&core.TextField{Name: "phone", Required: false})
		c.Fields.Add(&core.TextField{Name: "email", Required: false})
		c.Fields.Add(&core.TextField{Name: "address", Required: false})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})

	quotations := ensureCollection(app, "quotations", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "number", Required: true})
		// Customer fields are copied by value at save time so later edits
		// to the customer record do not change saved quotations.
		c.Fields.Add(&core.TextField{Name: "customer_name", Required: false})
		c.Fields.Add(&core.TextField{Name: "customer_phone", Required: false})
		c.Fields.Add(&core.TextField{Name: "customer_address", Required: false})
		c.Fields.Add(&core.TextField{Name: "salesperson", Required: false})
		// Money is stored as fixed-point decimal strings.
		c.Fields.Add(&core.TextField{Name: "subtotal", Required: false})
		c.Fields.Add(&core.TextField{Name: "tax_rate", Required: false})
		c.Fields.Add(&core.TextField{Name: "tax_amount", Required: false})
		c.Fields.Add(&core.TextField{Name: "shipping_fee", Required: false})
		c.Fields.Add(&core.TextField{Name: "total_amount", Required: false})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})

	ensureCollection(app, "quotation_items", func(c *core.Collection) {
		c.Fields.Add(&core.RelationField{
			Name:          "quotation",
			Required:      true,
			CollectionId:  quotations.Id,
			CascadeDelete: true,
			MaxSelect:     1,
		})
		c.Fields.Add(&core.NumberField{Name: "sort_order", Required: true})
		c.Fields.Add(&core.TextField{Name: "category", Required: true})
		c.Fields.Add(&core.TextField{Name: "system", Required: false})
		c.Fields.Add(&core.TextField{Name: "code1", Required: false})
		c.Fields.Add(&core.TextField{Name: "code2", Required: false})
		c.Fields.Add(&core.NumberField{Name: "width", Required: true})
		c.Fields.Add(&core.NumberField{Name: "height", Required: true})
		c.Fields.Add(&core.SelectField{
			Name:      "width_unit",
			Required:  true,
			Values:    []string{"cm", "mm", "in", "m"},
			MaxSelect: 1,
		})
		c.Fields.Add(&core.SelectField{
			Name:      "height_unit",
			Required:  true,
			Values:    []string{"cm", "mm", "in", "m"},
			MaxSelect: 1,
		})
		c.Fields.Add(&core.TextField{Name: "unit_price", Required: false})
		c.Fields.Add(&core.NumberField{Name: "quantity", Required: true})
		c.Fields.Add(&core.TextField{Name: "line_total", Required: false})
	})

	ensureCollection(app, "app_settings", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "company_name", Required: false})
		c.Fields.Add(&core.TextField{Name: "company_phone", Required: false})
		c.Fields.Add(&core.TextField{Name: "company_email", Required: false})
		c.Fields.Add(&core.TextField{Name: "company_address", Required: false})
		c.Fields.Add(&core.TextField{Name: "default_tax_rate", Required: false})
		c.Fields.Add(&core.TextField{Name: "default_shipping_fee", Required: false})
		c.Fields.Add(&core.TextField{Name: "currency", Required: false})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})
}

// ensureCollection checks if a collection already exists by name. If it
// does, the existing collection is returned. Otherwise a new base
// collection is created, the addFields callback is invoked to populate its
// fields, and the collection is saved.
func ensureCollection(app *pocketbase.PocketBase, name string, addFields func(*core.Collection)) *core.Collection {
	existing, err := app.FindCollectionByNameOrId(name)
	if err == nil && existing != nil {
		return existing
	}

	collection := core.NewBaseCollection(name)
	addFields(collection)

	if err := app.Save(collection); err != nil {
		log.Fatalf("Failed to create collection %q: %v", name, err)
	}

	fmt.Printf("Created collection %q (id=%s)\n", name, collection.Id)
	return collection
}
