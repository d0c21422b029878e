// Package view renders catalog, cart and order state as text. It holds no
// state of its own; it is driven entirely by the core packages.
package view

import (
	"fmt"
	"io"
	"iter"
	"text/tabwriter"

	"github.com/rmello/shopfront/internal/cart"
	"github.com/rmello/shopfront/internal/models"
)

// lowStockThreshold is the quantity below which the storefront shows an
// "only N left" badge instead of a plain in-stock one.
const lowStockThreshold = 10

// Renderer writes text views to out using the configured currency code.
type Renderer struct {
	out      io.Writer
	currency string
}

func NewRenderer(out io.Writer, currency string) *Renderer {
	if currency == "" {
		currency = "USD"
	}
	return &Renderer{out: out, currency: currency}
}

func stockBadge(p models.Product) string {
	switch {
	case !p.InStock():
		return "out of stock"
	case p.Quantity < lowStockThreshold:
		return fmt.Sprintf("only %d left", p.Quantity)
	default:
		return "in stock"
	}
}

// Products renders a filtered view. An empty view yields the storefront's
// empty-state line.
func (r *Renderer) Products(products iter.Seq[models.Product]) {
	w := tabwriter.NewWriter(r.out, 0, 4, 2, ' ', 0)
	count := 0
	for p := range products {
		category := p.Category
		if category == "" {
			category = "General"
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", p.ID, p.Name, category, FormatPrice(p.Price, r.currency), stockBadge(p))
		count++
	}
	w.Flush()
	if count == 0 {
		fmt.Fprintln(r.out, "No products found.")
	}
}

// ProductDetail renders one product card with its description.
func (r *Renderer) ProductDetail(p models.Product) {
	fmt.Fprintf(r.out, "%s — %s (%s)\n", p.Name, FormatPrice(p.Price, r.currency), stockBadge(p))
	if p.Description != "" {
		fmt.Fprintln(r.out, p.Description)
	}
}

// Cart renders the cart lines, the unit count and the running total.
func (r *Renderer) Cart(c *cart.Checkout) {
	if c.Empty() {
		fmt.Fprintln(r.out, "Your cart is empty")
		return
	}
	w := tabwriter.NewWriter(r.out, 0, 4, 2, ' ', 0)
	for _, l := range c.Lines() {
		fmt.Fprintf(w, "%d\t%s\t%s x %d\t%s\n", l.ProductID, l.Name, FormatPrice(l.UnitPrice, r.currency), l.Quantity, FormatPrice(l.Subtotal(), r.currency))
	}
	w.Flush()
	fmt.Fprintf(r.out, "%d item(s), total %s\n", c.Count(), FormatPrice(c.Total(), r.currency))
}

// Orders renders an order-tracking result.
func (r *Renderer) Orders(orders []models.OrderSummary) {
	if len(orders) == 0 {
		fmt.Fprintln(r.out, "No orders found for this email.")
		return
	}
	for _, o := range orders {
		fmt.Fprintf(r.out, "Order #%s  %s  %s  %s\n", o.ID, o.OrderDate, o.Status, FormatPrice(o.TotalAmount, r.currency))
		for _, item := range o.Items {
			fmt.Fprintf(r.out, "  %dx %s\n", item.Quantity, item.ProductName)
		}
	}
}

// Reviews renders a product's review list.
func (r *Renderer) Reviews(reviews []models.Review) {
	if len(reviews) == 0 {
		fmt.Fprintln(r.out, "No reviews yet. Be the first!")
		return
	}
	for _, rv := range reviews {
		user := rv.UserID
		if user == "" {
			user = "Anonymous"
		}
		fmt.Fprintf(r.out, "%s  %s\n", user, stars(rv.Rating))
		if rv.ReviewText != "" {
			fmt.Fprintf(r.out, "  %s\n", rv.ReviewText)
		}
	}
}

func stars(rating int) string {
	if rating < 0 {
		rating = 0
	}
	if rating > 5 {
		rating = 5
	}
	s := ""
	for i := 0; i < 5; i++ {
		if i < rating {
			s += "★"
		} else {
			s += "☆"
		}
	}
	return s
}
