package domain

import "github.com/shopspring/decimal" // Exact currency arithmetic

// CatalogItem is one purchasable drink. Items are compiled into the
// process and never persisted or mutated.
type CatalogItem struct {
	ID     string          `json:"id"`     // e.g. MT002
	Flavor string          `json:"flavor"` // Display name, matched exactly on order
	Price  decimal.Decimal `json:"price"`  // Unit price
	Image  string          `json:"image"`  // Template asset name
}
