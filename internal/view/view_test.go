package view

import (
	"slices"
	"strings"
	"testing"

	"github.com/rmello/shopfront/internal/cart"
	"github.com/rmello/shopfront/internal/models"
)

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		usd  float64
		code string
		want string
	}{
		{50, "USD", "$50.00"},
		{50, "EUR", "€46.00"},
		{100, "GBP", "£79.00"},
		{10, "BRL", "R$51.00"},
		{12.5, "XXX", "$12.50"}, // unknown code falls back to USD
	}
	for _, tt := range tests {
		if got := FormatPrice(tt.usd, tt.code); got != tt.want {
			t.Errorf("FormatPrice(%v, %q) = %q, want %q", tt.usd, tt.code, got, tt.want)
		}
	}
}

func TestStockBadge(t *testing.T) {
	tests := []struct {
		product models.Product
		want    string
	}{
		{models.Product{Quantity: 0}, "out of stock"},
		{models.Product{Quantity: 3, Status: models.StatusOutOfStock}, "out of stock"},
		{models.Product{Quantity: 4}, "only 4 left"},
		{models.Product{Quantity: 10}, "in stock"},
	}
	for _, tt := range tests {
		if got := stockBadge(tt.product); got != tt.want {
			t.Errorf("stockBadge(%+v) = %q, want %q", tt.product, got, tt.want)
		}
	}
}

func TestProductsEmptyState(t *testing.T) {
	var buf strings.Builder
	r := NewRenderer(&buf, "USD")
	r.Products(slices.Values([]models.Product{}))
	if !strings.Contains(buf.String(), "No products found.") {
		t.Errorf("expected the empty-state line, got %q", buf.String())
	}
}

func TestCartRendering(t *testing.T) {
	var buf strings.Builder
	r := NewRenderer(&buf, "USD")

	c := cart.New(nil)
	r.Cart(c)
	if !strings.Contains(buf.String(), "Your cart is empty") {
		t.Errorf("expected the empty-cart line, got %q", buf.String())
	}

	buf.Reset()
	_ = c.AddItem(1, "Widget", 10, 5, "")
	_ = c.AddItem(1, "Widget", 10, 5, "")
	r.Cart(c)
	out := buf.String()
	if !strings.Contains(out, "Widget") || !strings.Contains(out, "$20.00") {
		t.Errorf("cart output missing line or total: %q", out)
	}
	if !strings.Contains(out, "2 item(s)") {
		t.Errorf("cart output missing unit count: %q", out)
	}
}
