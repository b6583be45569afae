package models

import "github.com/shopspring/decimal"

// PlaceholderImage is served when a catalog record carries no image URL.
const PlaceholderImage = "https://via.placeholder.com/300?text=No+Image"

type Product struct {
	ID          string          `json:"id"` // Assigned by the remote store on creation
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
	Image       string          `json:"image"`
}

// ProductInput is the caller-supplied shape for create and update.
// Field validation lives in the validation package; the catalog
// forwards inputs as-is.
type ProductInput struct {
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
	Image       string          `json:"image"`
}
