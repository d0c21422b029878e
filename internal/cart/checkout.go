package cart

import (
	"context"
	"strings"

	"github.com/rmello/shopfront/internal/models"
)

// Step is the current checkout step. The flow is Cart → Payment → Address;
// no step is terminal until order submission succeeds, which exits the
// flow entirely and returns to StepCart with an emptied cart.
type Step int

const (
	StepCart Step = iota
	StepPayment
	StepAddress
)

func (s Step) String() string {
	switch s {
	case StepCart:
		return "cart"
	case StepPayment:
		return "payment"
	case StepAddress:
		return "address"
	}
	return "unknown"
}

// CardDetails are the online-card fields collected on the payment step.
// They are required to be non-blank for the ONLINE method but are not
// validated against a payment gateway.
type CardDetails struct {
	Number string
	Expiry string
	CVC    string
}

// Placer submits the final order, typically an *api.Client.
type Placer interface {
	PlaceOrder(ctx context.Context, req models.OrderRequest) (string, error)
}

// Checkout owns the cart lines and drives the checkout state machine.
// It is not safe for concurrent use; all mutations are expected to happen
// on the single event loop driving the view.
type Checkout struct {
	placer Placer

	lines   []Line
	step    Step
	visible bool

	PaymentMethod   string
	Card            CardDetails
	CustomerEmail   string
	ShippingAddress string

	// onPlaced runs after a successful submission, before subscribers are
	// notified. Used to trigger a catalog reload.
	onPlaced  func()
	observers []func(Event)
}

// New creates a checkout flow on StepCart with an empty cart.
func New(placer Placer) *Checkout {
	return &Checkout{placer: placer, step: StepCart}
}

// OnChange registers a state-change subscriber. Subscribers run
// synchronously in registration order.
func (c *Checkout) OnChange(fn func(Event)) {
	c.observers = append(c.observers, fn)
}

// OnOrderPlaced registers the hook run after a successful submission,
// before subscribers see EventOrderPlaced.
func (c *Checkout) OnOrderPlaced(fn func()) {
	c.onPlaced = fn
}

// Step returns the current checkout step.
func (c *Checkout) Step() Step {
	return c.step
}

// Visible reports whether the cart view is open.
func (c *Checkout) Visible() bool {
	return c.visible
}

func (c *Checkout) open() {
	if c.visible {
		return
	}
	c.visible = true
	c.notify(Event{Kind: EventCartOpened, Step: c.step})
}

// Dismiss closes the cart view and resets the flow to StepCart. The cart
// contents survive; only the checkout progress is transient.
func (c *Checkout) Dismiss() {
	c.visible = false
	if c.step != StepCart {
		c.step = StepCart
		c.notify(Event{Kind: EventStepChanged, Step: c.step})
	}
	c.notify(Event{Kind: EventCartDismissed, Step: c.step})
}

// Next advances the state machine one step, enforcing the guard of the
// current step. A guard failure returns *ValidationError and leaves the
// step unchanged. Next never submits; use SubmitOrder from StepAddress.
func (c *Checkout) Next() error {
	switch c.step {
	case StepCart:
		if c.Empty() {
			return &ValidationError{Reason: "cart is empty"}
		}
		c.setStep(StepPayment)
	case StepPayment:
		if err := c.paymentGuard(); err != nil {
			return err
		}
		c.setStep(StepAddress)
	case StepAddress:
		return &ValidationError{Reason: "already on the final step"}
	}
	return nil
}

// Back moves one step backwards. It is always permitted and a no-op on
// StepCart.
func (c *Checkout) Back() {
	if c.step > StepCart {
		c.setStep(c.step - 1)
	}
}

func (c *Checkout) paymentGuard() error {
	switch c.PaymentMethod {
	case "":
		return &ValidationError{Reason: "select a payment method"}
	case models.PaymentOnline:
		if isBlank(c.Card.Number) || isBlank(c.Card.Expiry) || isBlank(c.Card.CVC) {
			return &ValidationError{Reason: "please enter all card details"}
		}
	}
	return nil
}

func (c *Checkout) addressGuard() error {
	if isBlank(c.CustomerEmail) || isBlank(c.ShippingAddress) {
		return &ValidationError{Reason: "please fill in email and shipping address"}
	}
	return nil
}

// SubmitOrder finalizes the checkout. It is only callable from StepAddress
// with the address guard satisfied; otherwise it returns *ValidationError
// and nothing is sent. On success the cart is cleared, the flow returns to
// StepCart, the order-placed hook fires (catalog reload) and the created
// order's identifier is returned. On submission failure the cart and step
// are left unchanged so the user may retry; no automatic retry happens.
func (c *Checkout) SubmitOrder(ctx context.Context) (string, error) {
	if c.step != StepAddress {
		return "", &ValidationError{Reason: "complete payment and address steps first"}
	}
	if err := c.addressGuard(); err != nil {
		return "", err
	}
	if c.Empty() {
		return "", &ValidationError{Reason: "cart is empty"}
	}

	req := models.OrderRequest{
		CustomerEmail:   strings.TrimSpace(c.CustomerEmail),
		ShippingAddress: strings.TrimSpace(c.ShippingAddress),
		PaymentMethod:   c.PaymentMethod,
		Items:           make([]models.OrderItem, 0, len(c.lines)),
	}
	for _, l := range c.lines {
		req.Items = append(req.Items, models.OrderItem{ProductID: l.ProductID, Quantity: l.Quantity})
	}

	orderID, err := c.placer.PlaceOrder(ctx, req)
	if err != nil {
		return "", err
	}

	c.lines = nil
	c.step = StepCart
	c.visible = false
	if c.onPlaced != nil {
		c.onPlaced()
	}
	c.notify(Event{Kind: EventOrderPlaced, Step: c.step, OrderID: orderID})
	return orderID, nil
}

func (c *Checkout) setStep(step Step) {
	c.step = step
	c.notify(Event{Kind: EventStepChanged, Step: c.step})
}

func (c *Checkout) notify(ev Event) {
	for _, fn := range c.observers {
		fn(ev)
	}
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
