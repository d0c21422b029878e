package store

import (
	"errors"
	"testing"

	"github.com/rmello/shopfront/internal/models"
)

func TestDecrementStock(t *testing.T) {
	s := NewInMemoryCatalogStore()
	p, _ := s.Create(models.Product{Name: "Widget", Price: 10, Quantity: 3})

	updated, err := s.DecrementStock(p.ID, 2)
	if err != nil {
		t.Fatalf("decrement failed: %v", err)
	}
	if updated.Quantity != 1 {
		t.Errorf("expected 1 left, got %d", updated.Quantity)
	}

	if _, err := s.DecrementStock(p.ID, 2); !errors.Is(err, ErrInsufficientStock) {
		t.Fatalf("expected ErrInsufficientStock, got %v", err)
	}
	current, _ := s.GetByID(p.ID)
	if current.Quantity != 1 {
		t.Errorf("failed decrement changed stock: %d", current.Quantity)
	}

	updated, err = s.DecrementStock(p.ID, 1)
	if err != nil {
		t.Fatalf("decrement failed: %v", err)
	}
	if updated.Quantity != 0 || updated.Status != models.StatusOutOfStock {
		t.Errorf("sold out product should be flagged, got %+v", updated)
	}

	if _, err := s.DecrementStock(999, 1); !errors.Is(err, ErrProductNotFound) {
		t.Errorf("expected ErrProductNotFound, got %v", err)
	}
}

func TestSeedIsIdempotent(t *testing.T) {
	s := NewInMemoryCatalogStore()
	if err := Seed(s); err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	first, _ := s.GetAll()
	if len(first) == 0 {
		t.Fatal("seed produced no products")
	}
	if err := Seed(s); err != nil {
		t.Fatalf("second seed failed: %v", err)
	}
	second, _ := s.GetAll()
	if len(second) != len(first) {
		t.Errorf("seed is not idempotent: %d then %d products", len(first), len(second))
	}
}

func TestOrderStoreByEmailNewestFirst(t *testing.T) {
	s := NewInMemoryOrderStore()
	first, _ := s.Create(models.OrderSummary{TotalAmount: 10}, "jo@example.com")
	second, _ := s.Create(models.OrderSummary{TotalAmount: 20}, "jo@example.com")
	_, _ = s.Create(models.OrderSummary{TotalAmount: 30}, "other@example.com")

	orders, err := s.ByEmail("jo@example.com")
	if err != nil {
		t.Fatalf("by email failed: %v", err)
	}
	if len(orders) != 2 {
		t.Fatalf("expected 2 orders, got %d", len(orders))
	}
	if orders[0].ID != second.ID || orders[1].ID != first.ID {
		t.Errorf("expected newest first, got %+v", orders)
	}
	if orders[0].ID == "" || first.ID == second.ID {
		t.Error("orders should get distinct identifiers")
	}
}

func TestTopRatedOrdering(t *testing.T) {
	s := NewInMemoryReviewStore()
	_ = s.Add(models.Review{ProductID: 1, Rating: 3})
	_ = s.Add(models.Review{ProductID: 2, Rating: 5})
	_ = s.Add(models.Review{ProductID: 2, Rating: 4})
	_ = s.Add(models.Review{ProductID: 3, Rating: 5})
	_ = s.Add(models.Review{ProductID: 3, Rating: 4})
	_ = s.Add(models.Review{ProductID: 3, Rating: 5})

	rated, err := s.TopRated(2)
	if err != nil {
		t.Fatalf("top rated failed: %v", err)
	}
	if len(rated) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(rated))
	}
	if rated[0].ProductID != 3 || rated[1].ProductID != 2 {
		t.Errorf("unexpected ordering: %+v", rated)
	}
}

func TestTrendingOrdering(t *testing.T) {
	s := NewInMemoryActivityStore()
	for i := 0; i < 3; i++ {
		_ = s.RecordView(2)
	}
	_ = s.RecordView(1)

	entries, err := s.Trending(10)
	if err != nil {
		t.Fatalf("trending failed: %v", err)
	}
	if len(entries) != 2 || entries[0].ProductID != 2 || entries[0].Views != 3 {
		t.Errorf("unexpected trending: %+v", entries)
	}
}
