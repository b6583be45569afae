package models

import "github.com/shopspring/decimal"

// CartLine references a catalog product by ID; it never snapshots
// price or name. Quantity is always >= 1; a decrement to zero
// removes the line instead.
type CartLine struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// CartView is one merged row of the cart reconciled against the live
// catalog: current catalog price/name/image, cart quantity.
type CartView struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Image     string          `json:"image"`
	Quantity  int             `json:"quantity"`
	LineTotal decimal.Decimal `json:"line_total"`
}
