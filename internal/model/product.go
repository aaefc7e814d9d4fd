package model

import "time"

// Product represents one inventory row
type Product struct {
	ID        int64      `json:"id"`
	Name      string     `json:"name"`
	Price     Price      `json:"price"`
	Quantity  int        `json:"quantity"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"` // nil until first update
}

// ProductRequest is the payload for creating or updating a product.
// Price arrives as a JSON number or string; Quantity is optional and
// defaults to zero.
type ProductRequest struct {
	Name     string `json:"name"`
	Price    Price  `json:"price"`
	Quantity *int   `json:"quantity,omitempty"`
}
