package domain

import (
	"errors"
	"time"
)

// ErrProductNotFound covers both a missing product and a product owned by
// someone else. The two cases are deliberately indistinguishable.
var ErrProductNotFound = errors.New("product not found")

// Categories lists the accepted product categories.
var Categories = []string{
	"Spices", "Herbs", "Seeds", "Powders", "Whole Spices", "Blends", "Other", "Uncategorized",
}

const CategoryDefault = "Uncategorized"

// ValidCategory reports whether c is an accepted category.
func ValidCategory(c string) bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Product is a catalog item owned by a single buyer.
type Product struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"owner_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Category    string    `json:"category"`
	Image       string    `json:"image,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
