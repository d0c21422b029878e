package cart

// EventKind identifies what changed in the cart or checkout flow. The view
// layer subscribes via OnChange and re-renders; the core never renders.
type EventKind int

const (
	// EventCartChanged fires on add, remove and clear.
	EventCartChanged EventKind = iota
	// EventCartOpened fires when an add makes the cart view visible.
	EventCartOpened
	// EventCartDismissed fires when the cart view is dismissed.
	EventCartDismissed
	// EventStepChanged fires on every checkout step transition.
	EventStepChanged
	// EventOrderPlaced fires after a successful order submission.
	EventOrderPlaced
)

// Event carries the change notification. OrderID is set only for
// EventOrderPlaced.
type Event struct {
	Kind    EventKind
	Step    Step
	OrderID string
}
