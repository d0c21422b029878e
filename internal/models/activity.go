package models

// Activity actions recorded by the analytics service.
const (
	ActionProductView = "PRODUCT_VIEW"
	ActionAddToCart   = "ADD_TO_CART"
)

// ActivityEvent is the body posted to POST /api/v1/activity. Failures to
// record activity are never surfaced to the user.
type ActivityEvent struct {
	ProductID int               `json:"productId"`
	UserID    string            `json:"userId"`
	Action    string            `json:"action"`
	Metadata  map[string]string `json:"metadata,omitempty"`
	Timestamp string            `json:"timestamp"`
}

// TrendingEntry is one entry of the trending analytics feed, ordered by
// view count descending.
type TrendingEntry struct {
	ProductID   int    `json:"productId"`
	ProductName string `json:"productName,omitempty"`
	Views       int64  `json:"views"`
}
