// Package catalog holds the last fetched product snapshot and computes
// filtered views of it. The snapshot is immutable until replaced by a
// successful reload.
package catalog

import (
	"context"
	"iter"
	"math"
	"strings"
	"sync"

	"github.com/rmello/shopfront/internal/models"
)

// Source fetches a fresh product snapshot, typically an *api.Client.
type Source interface {
	StorefrontProducts(ctx context.Context, page, size int) ([]models.Product, error)
}

// Criteria is the set of filters applied to the snapshot. The zero value
// matches every product.
type Criteria struct {
	Search      string
	Categories  map[string]bool
	MinPrice    *float64
	MaxPrice    *float64
	InStockOnly bool
}

// Catalog is the product snapshot plus the active filter criteria.
// All methods are safe for use while a load is outstanding.
type Catalog struct {
	source   Source
	pageSize int

	mu       sync.Mutex
	products []models.Product
	criteria Criteria

	nextSeq    uint64
	appliedSeq uint64
}

// New creates an empty catalog backed by source. pageSize bounds a single
// storefront fetch; values < 1 fall back to 100 (the original page size).
func New(source Source, pageSize int) *Catalog {
	if pageSize < 1 {
		pageSize = 100
	}
	return &Catalog{source: source, pageSize: pageSize}
}

// Load fetches a fresh snapshot and replaces the current one. On error the
// previous snapshot is left untouched. Each load reserves a sequence number
// before the fetch is issued; a response is applied only if no later load
// has completed in the meantime, so a stale response can never overwrite a
// newer snapshot.
func (c *Catalog) Load(ctx context.Context) error {
	c.mu.Lock()
	c.nextSeq++
	seq := c.nextSeq
	c.mu.Unlock()

	products, err := c.source.StorefrontProducts(ctx, 0, c.pageSize)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if seq <= c.appliedSeq {
		// A load issued after this one already landed; drop this response.
		return nil
	}
	c.appliedSeq = seq
	c.products = products
	return nil
}

// SetFilter replaces the active criteria. No external side effects.
func (c *Catalog) SetFilter(criteria Criteria) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.criteria = criteria
}

// Filter returns the active criteria.
func (c *Catalog) Filter() Criteria {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.criteria
}

// Len returns the size of the current snapshot.
func (c *Catalog) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.products)
}

// Product looks up a snapshot entry by ID.
func (c *Catalog) Product(id int) (models.Product, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, p := range c.products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

// FilteredView returns a lazy, restartable sequence of the snapshot
// products matching the active criteria, in snapshot order. The sequence
// iterates over the snapshot and criteria captured at call time.
func (c *Catalog) FilteredView() iter.Seq[models.Product] {
	c.mu.Lock()
	products := c.products
	criteria := c.criteria
	c.mu.Unlock()

	return func(yield func(models.Product) bool) {
		for _, p := range products {
			if !matches(p, criteria) {
				continue
			}
			if !yield(p) {
				return
			}
		}
	}
}

// Categories returns the distinct non-empty category values present in the
// snapshot, in order of first occurrence. Used to populate the filter UI.
func (c *Catalog) Categories() []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	seen := make(map[string]bool)
	var categories []string
	for _, p := range c.products {
		if p.Category == "" || seen[p.Category] {
			continue
		}
		seen[p.Category] = true
		categories = append(categories, p.Category)
	}
	return categories
}

func matches(p models.Product, criteria Criteria) bool {
	if term := strings.ToLower(strings.TrimSpace(criteria.Search)); term != "" {
		name := strings.ToLower(p.Name)
		category := strings.ToLower(p.Category)
		if !strings.Contains(name, term) && !strings.Contains(category, term) {
			return false
		}
	}
	if len(criteria.Categories) > 0 && !criteria.Categories[p.Category] {
		return false
	}
	minPrice := 0.0
	if criteria.MinPrice != nil {
		minPrice = *criteria.MinPrice
	}
	maxPrice := math.Inf(1)
	if criteria.MaxPrice != nil {
		maxPrice = *criteria.MaxPrice
	}
	if p.Price < minPrice || p.Price > maxPrice {
		return false
	}
	if criteria.InStockOnly && !p.InStock() {
		return false
	}
	return true
}

// TrendingProducts joins a trending feed against the snapshot, dropping
// entries for products not currently present, and returns at most n
// products in feed order.
func (c *Catalog) TrendingProducts(entries []models.TrendingEntry, n int) []models.Product {
	var joined []models.Product
	for _, entry := range entries {
		if p, ok := c.Product(entry.ProductID); ok {
			joined = append(joined, p)
			if len(joined) == n {
				break
			}
		}
	}
	return joined
}
