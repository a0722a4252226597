package models

import "time"

// Product is a catalog entry. CategoryID is empty when the product was
// created without a category, and may point at a deleted category since
// category deletion does not cascade.
type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Price       float64   `json:"price"`
	Description string    `json:"description"`
	CategoryID  string    `json:"category,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}
