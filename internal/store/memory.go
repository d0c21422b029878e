package store

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/rmello/shopfront/internal/models"
)

// InMemoryCatalogStore is an in-memory implementation of CatalogStore.
type InMemoryCatalogStore struct {
	mu       sync.Mutex
	products []models.Product
	nextID   int
}

// NewInMemoryCatalogStore creates an empty in-memory catalog.
func NewInMemoryCatalogStore() *InMemoryCatalogStore {
	return &InMemoryCatalogStore{nextID: 1}
}

func (s *InMemoryCatalogStore) Create(p models.Product) (models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p.ID = s.nextID
	s.nextID++
	s.products = append(s.products, p)
	return p, nil
}

func (s *InMemoryCatalogStore) GetAll() ([]models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	products := make([]models.Product, len(s.products))
	copy(products, s.products)
	return products, nil
}

func (s *InMemoryCatalogStore) GetByID(id int) (models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.products {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Product{}, ErrProductNotFound
}

func (s *InMemoryCatalogStore) DecrementStock(id, qty int) (models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, p := range s.products {
		if p.ID != id {
			continue
		}
		if p.Quantity < qty {
			return models.Product{}, ErrInsufficientStock
		}
		p.Quantity -= qty
		if p.Quantity == 0 {
			p.Status = models.StatusOutOfStock
		}
		p.UpdatedAt = time.Now().UTC().Format(time.RFC3339)
		s.products[i] = p
		return p, nil
	}
	return models.Product{}, ErrProductNotFound
}

// Clear removes all products. Used by tests.
func (s *InMemoryCatalogStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = nil
	s.nextID = 1
}

// InMemoryOrderStore is an in-memory implementation of OrderStore.
type InMemoryOrderStore struct {
	mu     sync.Mutex
	orders []storedOrder
}

type storedOrder struct {
	order models.OrderSummary
	email string
}

func NewInMemoryOrderStore() *InMemoryOrderStore {
	return &InMemoryOrderStore{}
}

func (s *InMemoryOrderStore) Create(order models.OrderSummary, email string) (models.OrderSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if order.ID == "" {
		order.ID = uuid.NewString()
	}
	if order.OrderDate == "" {
		order.OrderDate = time.Now().UTC().Format(time.RFC3339)
	}
	if order.Status == "" {
		order.Status = "CONFIRMED"
	}
	s.orders = append(s.orders, storedOrder{order: order, email: email})
	return order, nil
}

func (s *InMemoryOrderStore) ByEmail(email string) ([]models.OrderSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var orders []models.OrderSummary
	// Newest first, matching the backend's order history endpoint.
	for i := len(s.orders) - 1; i >= 0; i-- {
		if s.orders[i].email == email {
			orders = append(orders, s.orders[i].order)
		}
	}
	return orders, nil
}

// InMemoryReviewStore is an in-memory implementation of ReviewStore.
type InMemoryReviewStore struct {
	mu      sync.Mutex
	reviews []models.Review
	names   map[int]string
}

func NewInMemoryReviewStore() *InMemoryReviewStore {
	return &InMemoryReviewStore{names: make(map[int]string)}
}

func (s *InMemoryReviewStore) Add(review models.Review) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if review.CreatedAt == "" {
		review.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	}
	s.reviews = append(s.reviews, review)
	return nil
}

// SetProductName records the display name used in the top-rated feed.
func (s *InMemoryReviewStore) SetProductName(productID int, name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.names[productID] = name
}

func (s *InMemoryReviewStore) ByProduct(productID int) ([]models.Review, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var reviews []models.Review
	for i := len(s.reviews) - 1; i >= 0; i-- {
		if s.reviews[i].ProductID == productID {
			reviews = append(reviews, s.reviews[i])
		}
	}
	return reviews, nil
}

func (s *InMemoryReviewStore) TopRated(n int) ([]models.RatedProduct, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sums := make(map[int]int)
	counts := make(map[int]int)
	for _, r := range s.reviews {
		sums[r.ProductID] += r.Rating
		counts[r.ProductID]++
	}

	rated := make([]models.RatedProduct, 0, len(counts))
	for id, count := range counts {
		rated = append(rated, models.RatedProduct{
			ProductID:   id,
			ProductName: s.names[id],
			AvgRating:   float64(sums[id]) / float64(count),
			ReviewCount: count,
		})
	}
	sort.Slice(rated, func(i, j int) bool {
		if rated[i].AvgRating != rated[j].AvgRating {
			return rated[i].AvgRating > rated[j].AvgRating
		}
		return rated[i].ReviewCount > rated[j].ReviewCount
	})
	if n > 0 && len(rated) > n {
		rated = rated[:n]
	}
	return rated, nil
}

// InMemoryActivityStore is an in-memory implementation of ActivityStore.
type InMemoryActivityStore struct {
	mu    sync.Mutex
	views map[int]int64
}

func NewInMemoryActivityStore() *InMemoryActivityStore {
	return &InMemoryActivityStore{views: make(map[int]int64)}
}

func (s *InMemoryActivityStore) RecordView(productID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.views[productID]++
	return nil
}

func (s *InMemoryActivityStore) Trending(n int) ([]models.TrendingEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := make([]models.TrendingEntry, 0, len(s.views))
	for id, views := range s.views {
		entries = append(entries, models.TrendingEntry{ProductID: id, Views: views})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Views != entries[j].Views {
			return entries[i].Views > entries[j].Views
		}
		return entries[i].ProductID < entries[j].ProductID
	})
	if n > 0 && len(entries) > n {
		entries = entries[:n]
	}
	return entries, nil
}
