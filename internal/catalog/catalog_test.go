package catalog_test

import (
	"testing"

	"github.com/daryan97/bobatea/internal/catalog"
	"github.com/daryan97/bobatea/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupPrice(t *testing.T) {
	tests := []struct {
		name      string
		flavor    string
		wantPrice string
		wantErr   error
	}{
		{name: "known flavor", flavor: "Taro Milk Tea", wantPrice: "5.00"},
		{name: "cheapest flavor", flavor: "Classic Milk Tea", wantPrice: "4.50"},
		{name: "unknown flavor", flavor: "Nonexistent Flavor", wantErr: domain.ErrUnknownItem},
		{name: "match is case-sensitive", flavor: "taro milk tea", wantErr: domain.ErrUnknownItem},
		{name: "empty flavor", flavor: "", wantErr: domain.ErrUnknownItem},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			price, err := catalog.LookupPrice(tt.flavor)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantPrice, price.StringFixed(2))
		})
	}
}

func TestItemsReturnsCopy(t *testing.T) {
	items := catalog.Items()
	require.Len(t, items, 5)

	items[0].Flavor = "Mutated"
	again := catalog.Items()
	assert.Equal(t, "Classic Milk Tea", again[0].Flavor)
}

func TestSizes(t *testing.T) {
	assert.Equal(t, []string{"Small", "Medium", "Large"}, catalog.Sizes())

	assert.True(t, catalog.ValidSize("Medium"))
	assert.False(t, catalog.ValidSize("medium"))
	assert.False(t, catalog.ValidSize("Venti"))
}

func TestPaymentMethods(t *testing.T) {
	assert.Equal(t, []string{"Cash", "Card", "E-Wallet"}, catalog.PaymentMethods())
}
