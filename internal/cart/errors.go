package cart

import "errors"

// ErrStockExceeded is returned when adding a product whose cart line has
// already reached the stock ceiling recorded when the line was created.
var ErrStockExceeded = errors.New("no more stock available")

// ValidationError is a checkout guard failure. It is a local, user-visible
// message and never escalates; the state machine stays on its current step.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }
