package entity

import "time"

// Order records a single product purchase. Price is captured from the product
// at creation time so historical reports stay stable when catalog prices move.
type Order struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	ProductID int64     `json:"product_id"`
	Price     float64   `json:"price"`
	CreatedAt time.Time `json:"created_at"`
}
