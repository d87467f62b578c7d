package entity

import "time"

// Product is a catalog item offered for sale.
type Product struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Price       float64   `json:"price"` // Current listed price; orders capture their own copy.
	Description string    `json:"description"`
	IsAvailable bool      `json:"is_available"` // Unavailable products are hidden from the public listing.
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
