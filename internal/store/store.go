// Package store provides the storage backends of the stub inventory
// service: in-memory implementations for tests and local runs, Postgres
// for the catalog and Redis for the activity counters when configured.
package store

import (
	"errors"

	"github.com/rmello/shopfront/internal/models"
)

// ErrProductNotFound is returned when a product is not found in the catalog.
var ErrProductNotFound = errors.New("product not found")

// ErrInsufficientStock is returned when an order asks for more units than
// the catalog has on hand.
var ErrInsufficientStock = errors.New("insufficient stock")

// CatalogStore holds the products served to the storefront.
type CatalogStore interface {
	GetAll() ([]models.Product, error)
	GetByID(id int) (models.Product, error)
	Create(p models.Product) (models.Product, error)
	// DecrementStock removes qty units from a product, failing with
	// ErrInsufficientStock when fewer units are on hand.
	DecrementStock(id, qty int) (models.Product, error)
}

// OrderStore records placed orders.
type OrderStore interface {
	Create(order models.OrderSummary, email string) (models.OrderSummary, error)
	ByEmail(email string) ([]models.OrderSummary, error)
}

// ReviewStore records product reviews.
type ReviewStore interface {
	ByProduct(productID int) ([]models.Review, error)
	Add(review models.Review) error
	TopRated(n int) ([]models.RatedProduct, error)
}

// ActivityStore counts product views for the trending feed.
type ActivityStore interface {
	RecordView(productID int) error
	Trending(n int) ([]models.TrendingEntry, error)
}
