package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"curtainquote/services"
)

// HandleCustomerList returns all customers sorted by name.
// Route: GET /api/customers
func HandleCustomerList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		customers, err := services.ListCustomers(app)
		if err != nil {
			log.Printf("customers: list: %v", err)
			return e.JSON(http.StatusServiceUnavailable, map[string]string{"error": "customers unavailable"})
		}
		return e.JSON(http.StatusOK, map[string]any{"total": len(customers), "customers": customers})
	}
}

// HandleCustomerCreate adds a new customer.
// Route: POST /api/customers
func HandleCustomerCreate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var c services.Customer
		if err := e.BindBody(&c); err != nil {
			return e.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		}
		c.ID = ""
		saved, err := services.SaveCustomer(app, c)
		if err != nil {
			return e.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return e.JSON(http.StatusCreated, saved)
	}
}

// HandleCustomerUpdate edits an existing customer. Saved quotations keep
// their by-value snapshot.
// Route: POST /api/customers/{id}
func HandleCustomerUpdate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var c services.Customer
		if err := e.BindBody(&c); err != nil {
			return e.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		}
		c.ID = e.Request.PathValue("id")
		saved, err := services.SaveCustomer(app, c)
		if err != nil {
			return e.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
		}
		return e.JSON(http.StatusOK, saved)
	}
}

// HandleCustomerDelete removes a customer.
// Route: DELETE /api/customers/{id}
func HandleCustomerDelete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := services.DeleteCustomer(app, e.Request.PathValue("id")); err != nil {
			return e.JSON(http.StatusNotFound, map[string]string{"error": "customer not found"})
		}
		return e.JSON(http.StatusOK, map[string]any{"deleted": true})
	}
}
