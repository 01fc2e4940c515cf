package domain

import "github.com/shopspring/decimal" // Exact currency arithmetic

// Order is the computed result of a submitted order form. It is never
// written to the database; the most recent one per user is kept in the
// summary store so the confirmation page survives a redirect.
type Order struct {
	Flavor        string          `json:"flavor"`
	Size          string          `json:"size"`
	Quantity      int             `json:"quantity"`       // Always positive
	PaymentMethod string          `json:"payment_method"` // Optional
	UnitPrice     decimal.Decimal `json:"unit_price"`
	TotalPrice    decimal.Decimal `json:"total_price"` // UnitPrice * Quantity, unrounded
}
