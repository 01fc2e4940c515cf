// Package catalog holds the fixed menu. It is compiled into the binary:
// there is no persistence, no admin surface and no mutation.
package catalog

import (
	"github.com/daryan97/bobatea/internal/domain"

	"github.com/shopspring/decimal"
)

var items = []domain.CatalogItem{
	{ID: "MT001", Flavor: "Classic Milk Tea", Price: decimal.RequireFromString("4.50"), Image: "milk.jpg"},
	{ID: "MT002", Flavor: "Taro Milk Tea", Price: decimal.RequireFromString("5.00"), Image: "milk3.jpg"},
	{ID: "MT003", Flavor: "Matcha Milk Tea", Price: decimal.RequireFromString("5.50"), Image: "milk4.jpg"},
	{ID: "MT004", Flavor: "Brown Sugar Milk Tea", Price: decimal.RequireFromString("5.00"), Image: "brown_sugar.jpg"},
	{ID: "MT005", Flavor: "Honeydew Milk Tea", Price: decimal.RequireFromString("4.75"), Image: "honeydew.jpg"},
}

var sizes = []string{"Small", "Medium", "Large"}

var paymentMethods = []string{"Cash", "Card", "E-Wallet"}

// Items returns a copy of the menu so callers cannot mutate the fixed data
func Items() []domain.CatalogItem {
	out := make([]domain.CatalogItem, len(items))
	copy(out, items)
	return out
}

// Sizes returns the fixed size labels
func Sizes() []string {
	out := make([]string, len(sizes))
	copy(out, sizes)
	return out
}

// PaymentMethods returns the accepted payment method labels
func PaymentMethods() []string {
	out := make([]string, len(paymentMethods))
	copy(out, paymentMethods)
	return out
}

// LookupPrice resolves a flavor to its unit price. The match is exact and
// case-sensitive; the first matching item wins.
func LookupPrice(flavor string) (decimal.Decimal, error) {
	for _, item := range items {
		if item.Flavor == flavor {
			return item.Price, nil
		}
	}
	return decimal.Decimal{}, domain.ErrUnknownItem
}

// ValidSize reports whether size is one of the fixed labels
func ValidSize(size string) bool {
	for _, s := range sizes {
		if s == size {
			return true
		}
	}
	return false
}
