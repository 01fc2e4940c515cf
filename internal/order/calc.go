// Package order computes an order total from validated form input.
package order

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/daryan97/bobatea/internal/catalog"
	"github.com/daryan97/bobatea/internal/domain"

	"github.com/shopspring/decimal"
)

// Input is the raw order form as submitted. Quantity stays a string here:
// parsing it is part of validation, and a non-numeric value must become a
// domain error rather than a handler-level parse fault.
type Input struct {
	Flavor        string
	Size          string
	Quantity      string
	PaymentMethod string // Optional
}

// Compute validates in and produces the priced order. The total is exact
// decimal arithmetic; callers round to 2 fractional digits at render time.
func Compute(in Input) (domain.Order, error) {
	qty, err := strconv.Atoi(strings.TrimSpace(in.Quantity))
	if err != nil || qty <= 0 {
		return domain.Order{}, fmt.Errorf("%w: %q", domain.ErrInvalidQuantity, in.Quantity)
	}
	price, err := catalog.LookupPrice(in.Flavor)
	if err != nil {
		return domain.Order{}, fmt.Errorf("%w: %q", err, in.Flavor)
	}
	if !catalog.ValidSize(in.Size) {
		return domain.Order{}, fmt.Errorf("%w: %q", domain.ErrInvalidSize, in.Size)
	}
	return domain.Order{
		Flavor:        in.Flavor,
		Size:          in.Size,
		Quantity:      qty,
		PaymentMethod: in.PaymentMethod,
		UnitPrice:     price,
		TotalPrice:    price.Mul(decimal.NewFromInt(int64(qty))),
	}, nil
}
