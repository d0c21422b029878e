// Package cart owns the cart line items and the three-step checkout state
// machine ending in an order submission.
package cart

// Line is one cart entry. Name, unit price and the stock ceiling are
// denormalized from the product snapshot at the time the line is created;
// a later snapshot refresh does not retroactively change existing lines.
type Line struct {
	ProductID    int
	Name         string
	UnitPrice    float64
	Quantity     int
	StockCeiling int
	ImageURL     string
}

// Subtotal is quantity × unit price for this line.
func (l Line) Subtotal() float64 {
	return float64(l.Quantity) * l.UnitPrice
}

// AddItem adds one unit of a product. If a line for productID already
// exists its quantity is incremented, unless it has reached the stock
// ceiling, in which case ErrStockExceeded is returned and the line is left
// unchanged. Otherwise a new line with quantity 1 is appended. Adding a
// product whose ceiling is below 1 also fails with ErrStockExceeded.
// A successful add opens the cart view.
func (c *Checkout) AddItem(productID int, name string, unitPrice float64, stockCeiling int, imageURL string) error {
	for i := range c.lines {
		if c.lines[i].ProductID != productID {
			continue
		}
		if c.lines[i].Quantity >= c.lines[i].StockCeiling {
			return ErrStockExceeded
		}
		c.lines[i].Quantity++
		c.open()
		c.notify(Event{Kind: EventCartChanged, Step: c.step})
		return nil
	}

	if stockCeiling < 1 {
		return ErrStockExceeded
	}
	c.lines = append(c.lines, Line{
		ProductID:    productID,
		Name:         name,
		UnitPrice:    unitPrice,
		Quantity:     1,
		StockCeiling: stockCeiling,
		ImageURL:     imageURL,
	})
	c.open()
	c.notify(Event{Kind: EventCartChanged, Step: c.step})
	return nil
}

// RemoveItem deletes the line for productID; no-op when absent.
func (c *Checkout) RemoveItem(productID int) {
	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			c.notify(Event{Kind: EventCartChanged, Step: c.step})
			return
		}
	}
}

// Lines returns a copy of the cart lines in insertion order.
func (c *Checkout) Lines() []Line {
	lines := make([]Line, len(c.lines))
	copy(lines, c.lines)
	return lines
}

// Total is the sum of all line subtotals.
func (c *Checkout) Total() float64 {
	var total float64
	for _, l := range c.lines {
		total += l.Subtotal()
	}
	return total
}

// Count is the total number of units across all lines (the cart badge).
func (c *Checkout) Count() int {
	var count int
	for _, l := range c.lines {
		count += l.Quantity
	}
	return count
}

// Empty reports whether the cart has no lines.
func (c *Checkout) Empty() bool {
	return len(c.lines) == 0
}

// Clear removes every line.
func (c *Checkout) Clear() {
	if len(c.lines) == 0 {
		return
	}
	c.lines = nil
	c.notify(Event{Kind: EventCartChanged, Step: c.step})
}
