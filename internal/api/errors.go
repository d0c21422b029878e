package api

import "fmt"

// FetchError is returned when a snapshot or listing request fails, either
// on the wire or with a non-success status. The caller keeps whatever data
// it already had.
type FetchError struct {
	Endpoint string
	Status   int
	Err      error
}

func (e *FetchError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("fetch %s: unexpected status %d", e.Endpoint, e.Status)
	}
	return fmt.Sprintf("fetch %s: %v", e.Endpoint, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// OrderError carries the server-supplied rejection message for a failed
// order submission. The cart is left untouched so the user may retry.
type OrderError struct {
	Message string
}

func (e *OrderError) Error() string {
	if e.Message == "" {
		return "order failed: unknown error"
	}
	return "order failed: " + e.Message
}
