package store

import "github.com/rmello/shopfront/internal/models"

// Seed fills an empty catalog with a small demo inventory so the CLI has
// something to browse against a fresh stub.
func Seed(catalog CatalogStore) error {
	existing, err := catalog.GetAll()
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	demo := []models.Product{
		{Name: "Widget", Description: "Standard widget", Price: 50, Quantity: 0, SKU: "WID-001", Category: "Widgets", Status: models.StatusOutOfStock},
		{Name: "Widget Pro", Description: "Widget with the pro finish", Price: 80, Quantity: 5, SKU: "WID-002", Category: "Widgets"},
		{Name: "Gadget", Description: "Entry level gadget", Price: 25.5, Quantity: 40, SKU: "GAD-001", Category: "Gadgets"},
		{Name: "Gadget Max", Description: "Oversized gadget", Price: 120, Quantity: 8, SKU: "GAD-002", Category: "Gadgets"},
		{Name: "Sprocket", Description: "Spare sprocket", Price: 9.99, Quantity: 200, SKU: "SPR-001", Category: "Parts"},
	}
	for _, p := range demo {
		if _, err := catalog.Create(p); err != nil {
			return err
		}
	}
	return nil
}
