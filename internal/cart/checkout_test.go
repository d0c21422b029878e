package cart

import (
	"context"
	"errors"
	"testing"

	"github.com/rmello/shopfront/internal/models"
)

type fakePlacer struct {
	req     models.OrderRequest
	called  int
	orderID string
	err     error
}

func (p *fakePlacer) PlaceOrder(ctx context.Context, req models.OrderRequest) (string, error) {
	p.called++
	p.req = req
	if p.err != nil {
		return "", p.err
	}
	return p.orderID, nil
}

func validationFails(t *testing.T, err error) *ValidationError {
	t.Helper()
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	return verr
}

func filledCheckout(placer Placer) *Checkout {
	c := New(placer)
	_ = c.AddItem(1, "Widget", 10, 2, "")
	_ = c.AddItem(1, "Widget", 10, 2, "")
	_ = c.AddItem(3, "Gadget", 25.5, 40, "")
	return c
}

func TestNextWithEmptyCartFails(t *testing.T) {
	c := New(nil)
	err := c.Next()
	validationFails(t, err)
	if c.Step() != StepCart {
		t.Errorf("step should stay at cart, got %v", c.Step())
	}
}

func TestPaymentGuard(t *testing.T) {
	tests := []struct {
		name    string
		method  string
		card    CardDetails
		blocked bool
	}{
		{name: "no method selected", blocked: true},
		{name: "cash on delivery needs no card", method: models.PaymentCashOnDelivery},
		{name: "online with blank card fields", method: models.PaymentOnline, blocked: true},
		{
			name:    "online with blank cvc",
			method:  models.PaymentOnline,
			card:    CardDetails{Number: "4111111111111111", Expiry: "12/30", CVC: "  "},
			blocked: true,
		},
		{
			name:   "online with full card details",
			method: models.PaymentOnline,
			card:   CardDetails{Number: "4111111111111111", Expiry: "12/30", CVC: "123"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := filledCheckout(nil)
			if err := c.Next(); err != nil {
				t.Fatalf("cart step should pass with a non-empty cart: %v", err)
			}
			c.PaymentMethod = tt.method
			c.Card = tt.card

			err := c.Next()
			if tt.blocked {
				validationFails(t, err)
				if c.Step() != StepPayment {
					t.Errorf("step should stay at payment, got %v", c.Step())
				}
				return
			}
			if err != nil {
				t.Fatalf("expected transition to address, got %v", err)
			}
			if c.Step() != StepAddress {
				t.Errorf("expected address step, got %v", c.Step())
			}
		})
	}
}

func TestBackIsAlwaysPermitted(t *testing.T) {
	c := filledCheckout(nil)
	c.PaymentMethod = models.PaymentCashOnDelivery
	_ = c.Next()
	_ = c.Next()
	if c.Step() != StepAddress {
		t.Fatalf("setup: expected address step, got %v", c.Step())
	}

	c.Back()
	if c.Step() != StepPayment {
		t.Errorf("expected payment after back, got %v", c.Step())
	}
	c.Back()
	if c.Step() != StepCart {
		t.Errorf("expected cart after back, got %v", c.Step())
	}
	c.Back() // no-op on the first step
	if c.Step() != StepCart {
		t.Errorf("back on cart step should be a no-op, got %v", c.Step())
	}
}

func TestSubmitOrderOutsideAddressFails(t *testing.T) {
	placer := &fakePlacer{orderID: "ord-1"}
	c := filledCheckout(placer)

	if _, err := c.SubmitOrder(context.Background()); err == nil {
		t.Fatal("submit from cart step must fail")
	}
	c.PaymentMethod = models.PaymentCashOnDelivery
	_ = c.Next()
	if _, err := c.SubmitOrder(context.Background()); err == nil {
		t.Fatal("submit from payment step must fail")
	}
	if placer.called != 0 {
		t.Errorf("nothing should have been sent, got %d calls", placer.called)
	}
}

func TestSubmitOrderAddressGuard(t *testing.T) {
	placer := &fakePlacer{orderID: "ord-1"}
	c := filledCheckout(placer)
	c.PaymentMethod = models.PaymentCashOnDelivery
	_ = c.Next()
	_ = c.Next()

	c.CustomerEmail = "  "
	c.ShippingAddress = "1 Main St"
	_, err := c.SubmitOrder(context.Background())
	validationFails(t, err)
	if c.Step() != StepAddress {
		t.Errorf("step should stay at address, got %v", c.Step())
	}
	if placer.called != 0 {
		t.Error("guard failure must not reach the API")
	}
}

func TestSubmitOrderSuccess(t *testing.T) {
	placer := &fakePlacer{orderID: "ord-42"}
	c := filledCheckout(placer)
	c.PaymentMethod = models.PaymentOnline
	c.Card = CardDetails{Number: "4111111111111111", Expiry: "12/30", CVC: "123"}
	_ = c.Next()
	_ = c.Next()
	c.CustomerEmail = "jo@example.com"
	c.ShippingAddress = "1 Main St"

	var reloaded bool
	c.OnOrderPlaced(func() { reloaded = true })
	var placedID string
	c.OnChange(func(ev Event) {
		if ev.Kind == EventOrderPlaced {
			placedID = ev.OrderID
		}
	})

	orderID, err := c.SubmitOrder(context.Background())
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if orderID != "ord-42" || placedID != "ord-42" {
		t.Errorf("expected order ID ord-42, got %q (event %q)", orderID, placedID)
	}
	if !c.Empty() {
		t.Error("cart should be cleared after a successful order")
	}
	if c.Step() != StepCart {
		t.Errorf("flow should return to cart, got %v", c.Step())
	}
	if !reloaded {
		t.Error("catalog reload hook should fire")
	}

	want := models.OrderRequest{
		CustomerEmail:   "jo@example.com",
		ShippingAddress: "1 Main St",
		PaymentMethod:   models.PaymentOnline,
		Items: []models.OrderItem{
			{ProductID: 1, Quantity: 2},
			{ProductID: 3, Quantity: 1},
		},
	}
	got := placer.req
	if got.CustomerEmail != want.CustomerEmail || got.ShippingAddress != want.ShippingAddress ||
		got.PaymentMethod != want.PaymentMethod || len(got.Items) != len(want.Items) {
		t.Fatalf("unexpected order request: %+v", got)
	}
	for i := range want.Items {
		if got.Items[i] != want.Items[i] {
			t.Errorf("item %d: expected %+v, got %+v", i, want.Items[i], got.Items[i])
		}
	}
}

func TestSubmitOrderFailureIsRetryable(t *testing.T) {
	placer := &fakePlacer{err: errors.New("order failed: insufficient stock for Widget")}
	c := filledCheckout(placer)
	c.PaymentMethod = models.PaymentCashOnDelivery
	_ = c.Next()
	_ = c.Next()
	c.CustomerEmail = "jo@example.com"
	c.ShippingAddress = "1 Main St"

	if _, err := c.SubmitOrder(context.Background()); err == nil {
		t.Fatal("expected submission error")
	}
	if c.Empty() {
		t.Error("cart must survive a failed submission")
	}
	if c.Step() != StepAddress {
		t.Errorf("step must stay at address for a retry, got %v", c.Step())
	}

	// Retry succeeds once the backend recovers.
	placer.err = nil
	placer.orderID = "ord-7"
	orderID, err := c.SubmitOrder(context.Background())
	if err != nil {
		t.Fatalf("retry failed: %v", err)
	}
	if orderID != "ord-7" {
		t.Errorf("expected ord-7, got %q", orderID)
	}
}

func TestDismissResetsStepKeepsCart(t *testing.T) {
	c := filledCheckout(nil)
	c.PaymentMethod = models.PaymentCashOnDelivery
	_ = c.Next()

	c.Dismiss()
	if c.Step() != StepCart {
		t.Errorf("dismiss should reset to cart step, got %v", c.Step())
	}
	if c.Visible() {
		t.Error("cart view should be closed")
	}
	if c.Empty() {
		t.Error("dismiss must not clear the cart")
	}
}
