package order_test

import (
	"testing"

	"github.com/daryan97/bobatea/internal/domain"
	"github.com/daryan97/bobatea/internal/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompute(t *testing.T) {
	tests := []struct {
		name      string
		in        order.Input
		wantTotal string
		wantErr   error
	}{
		{
			name:      "taro medium times three",
			in:        order.Input{Flavor: "Taro Milk Tea", Size: "Medium", Quantity: "3"},
			wantTotal: "15.00",
		},
		{
			name:      "fractional unit price stays exact",
			in:        order.Input{Flavor: "Honeydew Milk Tea", Size: "Large", Quantity: "3"},
			wantTotal: "14.25",
		},
		{
			name:      "payment method is carried through",
			in:        order.Input{Flavor: "Matcha Milk Tea", Size: "Small", Quantity: "1", PaymentMethod: "Card"},
			wantTotal: "5.50",
		},
		{
			name:      "quantity with surrounding spaces",
			in:        order.Input{Flavor: "Classic Milk Tea", Size: "Small", Quantity: " 2 "},
			wantTotal: "9.00",
		},
		{
			name:    "unknown flavor",
			in:      order.Input{Flavor: "Nonexistent Flavor", Size: "Small", Quantity: "1"},
			wantErr: domain.ErrUnknownItem,
		},
		{
			name:    "unknown size",
			in:      order.Input{Flavor: "Taro Milk Tea", Size: "Venti", Quantity: "1"},
			wantErr: domain.ErrInvalidSize,
		},
		{
			name:    "zero quantity",
			in:      order.Input{Flavor: "Taro Milk Tea", Size: "Small", Quantity: "0"},
			wantErr: domain.ErrInvalidQuantity,
		},
		{
			name:    "negative quantity",
			in:      order.Input{Flavor: "Taro Milk Tea", Size: "Small", Quantity: "-1"},
			wantErr: domain.ErrInvalidQuantity,
		},
		{
			name:    "non-numeric quantity",
			in:      order.Input{Flavor: "Taro Milk Tea", Size: "Small", Quantity: "abc"},
			wantErr: domain.ErrInvalidQuantity,
		},
		{
			name:    "empty quantity",
			in:      order.Input{Flavor: "Taro Milk Tea", Size: "Small", Quantity: ""},
			wantErr: domain.ErrInvalidQuantity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := order.Compute(tt.in)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.in.Flavor, got.Flavor)
			assert.Equal(t, tt.in.Size, got.Size)
			assert.Equal(t, tt.in.PaymentMethod, got.PaymentMethod)
			assert.Equal(t, tt.wantTotal, got.TotalPrice.StringFixed(2))
		})
	}
}
