package models

// Payment method values accepted by the orders endpoint.
const (
	PaymentOnline         = "ONLINE"
	PaymentCashOnDelivery = "COD"
)

// OrderItem is one line of an order request or summary.
type OrderItem struct {
	ProductID   int    `json:"productId"`
	ProductName string `json:"productName,omitempty"`
	Quantity    int    `json:"quantity"`
}

// OrderRequest is the body posted to POST /api/v1/orders.
type OrderRequest struct {
	CustomerEmail   string      `json:"customerEmail"`
	ShippingAddress string      `json:"shippingAddress"`
	PaymentMethod   string      `json:"paymentMethod"`
	Items           []OrderItem `json:"items"`
}

// OrderSummary is what the backend returns for a placed or tracked order.
type OrderSummary struct {
	ID          string      `json:"id"`
	OrderDate   string      `json:"orderDate,omitempty"`
	Status      string      `json:"status,omitempty"`
	TotalAmount float64     `json:"totalAmount,omitempty"`
	Items       []OrderItem `json:"items,omitempty"`
}
