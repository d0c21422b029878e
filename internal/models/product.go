package models

// StatusOutOfStock is the status flag the backend sets on products that
// cannot currently be ordered, independently of the quantity counter.
const StatusOutOfStock = "OUT_OF_STOCK"

// Product is the read-only snapshot entry served by the inventory backend.
// The client never mutates products; it only re-fetches the snapshot.
type Product struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
	SKU         string  `json:"sku,omitempty"`
	Category    string  `json:"category,omitempty"`
	ImageURL    string  `json:"imageUrl,omitempty"`
	Status      string  `json:"status,omitempty"`
	CreatedAt   string  `json:"createdAt,omitempty"`
	UpdatedAt   string  `json:"updatedAt,omitempty"`
}

// InStock reports whether the product can be added to a cart.
func (p Product) InStock() bool {
	return p.Quantity > 0 && p.Status != StatusOutOfStock
}
