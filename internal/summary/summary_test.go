package summary_test

import (
	"context"
	"testing"

	"github.com/daryan97/bobatea/internal/domain"
	"github.com/daryan97/bobatea/internal/summary"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRoundTrip(t *testing.T) {
	s := summary.NewMemory()
	ctx := context.Background()

	_, ok, err := s.Load(ctx, "alice")
	require.NoError(t, err)
	assert.False(t, ok, "no order saved yet")

	order := domain.Order{
		Flavor:     "Taro Milk Tea",
		Size:       "Medium",
		Quantity:   3,
		UnitPrice:  decimal.RequireFromString("5.00"),
		TotalPrice: decimal.RequireFromString("15.00"),
	}
	require.NoError(t, s.Save(ctx, "alice", order))

	got, ok, err := s.Load(ctx, "alice")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Taro Milk Tea", got.Flavor)
	assert.True(t, got.TotalPrice.Equal(order.TotalPrice))

	// Other users are unaffected
	_, ok, err = s.Load(ctx, "bob")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryOverwritesLastOrder(t *testing.T) {
	s := summary.NewMemory()
	ctx := context.Background()

	first := domain.Order{Flavor: "Classic Milk Tea", Quantity: 1}
	second := domain.Order{Flavor: "Matcha Milk Tea", Quantity: 2}
	require.NoError(t, s.Save(ctx, "alice", first))
	require.NoError(t, s.Save(ctx, "alice", second))

	got, ok, err := s.Load(ctx, "alice")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Matcha Milk Tea", got.Flavor)
}
