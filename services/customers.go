package services

import (
	"fmt"

	"github.com/pocketbase/pocketbase/core"
)

// CustomersCollection holds the customer directory. Quotations copy
// customer display fields by value, so these records stay freely editable.
const CustomersCollection = "customers"

// Customer is one customer directory entry.
type Customer struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

// ListCustomers returns all customers sorted by name.
func ListCustomers(app core.App) ([]Customer, error) {
	recs, err := app.FindRecordsByFilter(CustomersCollection, "id != ''", "name", 0, 0, nil)
	if err != nil {
		return nil, fmt.Errorf("read customers: %w", err)
	}
	out := make([]Customer, 0, len(recs))
	for _, rec := range recs {
		out = append(out, customerFromRecord(rec))
	}
	return out, nil
}

// FindCustomer loads one customer by id.
func FindCustomer(app core.App, id string) (Customer, error) {
	rec, err := app.FindRecordById(CustomersCollection, id)
	if err != nil {
		return Customer{}, fmt.Errorf("customer not found: %w", err)
	}
	return customerFromRecord(rec), nil
}

// SaveCustomer creates or updates a customer. A blank ID creates a new
// record; the saved customer is returned.
func SaveCustomer(app core.App, c Customer) (Customer, error) {
	if c.Name == "" {
		return Customer{}, fmt.Errorf("customer name is required")
	}

	col, err := app.FindCollectionByNameOrId(CustomersCollection)
	if err != nil {
		return Customer{}, fmt.Errorf("customers collection unavailable: %w", err)
	}

	var rec *core.Record
	if c.ID != "" {
		rec, err = app.FindRecordById(CustomersCollection, c.ID)
		if err != nil {
			return Customer{}, fmt.Errorf("customer not found: %w", err)
		}
	} else {
		rec = core.NewRecord(col)
	}

	rec.Set("name", c.Name)
	rec.Set("phone", c.Phone)
	rec.Set("email", c.Email)
	rec.Set("address", c.Address)
	if err := app.Save(rec); err != nil {
		return Customer{}, fmt.Errorf("save customer: %w", err)
	}
	return customerFromRecord(rec), nil
}

// DeleteCustomer removes a customer record. Saved quotations keep their
// by-value copy of the customer fields.
func DeleteCustomer(app core.App, id string) error {
	rec, err := app.FindRecordById(CustomersCollection, id)
	if err != nil {
		return fmt.Errorf("customer not found: %w", err)
	}
	if err := app.Delete(rec); err != nil {
		return fmt.Errorf("delete customer: %w", err)
	}
	return nil
}

func customerFromRecord(rec *core.Record) Customer {
	return Customer{
		ID:      rec.Id,
		Name:    rec.GetString("name"),
		Phone:   rec.GetString("phone"),
		Email:   rec.GetString("email"),
		Address: rec.GetString("address"),
	}
}
