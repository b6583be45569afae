package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order is the checkout confirmation handed back to the shopper.
// There is no payment processing behind it; the number exists so the
// confirmation page has something to show.
type Order struct {
	Number   string          `json:"number"`
	Items    []CartView      `json:"items"`
	Total    decimal.Decimal `json:"total"`
	PlacedAt time.Time       `json:"placed_at"`
}
