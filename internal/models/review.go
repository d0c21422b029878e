package models

// Review is a customer review attached to a product.
type Review struct {
	ProductID  int      `json:"productId,omitempty"`
	UserID     string   `json:"userId"`
	Rating     int      `json:"rating"`
	ReviewText string   `json:"reviewText"`
	Tags       []string `json:"tags,omitempty"`
	CreatedAt  string   `json:"createdAt,omitempty"`
}

// RatedProduct is one entry of the top-rated analytics feed.
type RatedProduct struct {
	ProductID   int     `json:"productId"`
	ProductName string  `json:"productName,omitempty"`
	AvgRating   float64 `json:"avgRating"`
	ReviewCount int     `json:"reviewCount"`
}
