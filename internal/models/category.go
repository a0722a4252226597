package models

import "time"

// Category groups products under a human-readable name. Description may be
// empty when the category was auto-created during product insertion.
type Category struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}
