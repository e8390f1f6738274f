package entity

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	jamon = CartProduct{ID: 1, Name: "Jamón Ibérico", Price: decimal.RequireFromString("24.90"), Category: "Charcuterie & Fromages"}
	rioja = CartProduct{ID: 2, Name: "Rioja Reserva", Price: decimal.RequireFromString("12.50"), Category: "Boissons & Vins"}
)

func TestCart_AddMergesAndKeepsOrder(t *testing.T) {
	cart := NewCart()
	require.NoError(t, cart.Add(rioja, 1))
	require.NoError(t, cart.Add(jamon, 2))
	require.NoError(t, cart.Add(rioja, 2))

	assert.True(t, decimal.RequireFromString("87.30").Equal(cart.Total()), cart.Total().String())

	items := cart.Snapshot()
	require.Len(t, items, 2)
	assert.Equal(t, int64(2), items[0].ID)
	assert.Equal(t, 3, items[0].Quantity)
	assert.Equal(t, int64(1), items[1].ID)
	assert.Equal(t, "Charcuterie & Fromages", items[1].Category)
}

func TestCart_RejectsNonPositiveQuantity(t *testing.T) {
	cart := NewCart()
	assert.ErrorIs(t, cart.Add(jamon, 0), ErrInvalidQuantity)
	assert.ErrorIs(t, cart.Add(jamon, -1), ErrInvalidQuantity)
	assert.Empty(t, cart.Snapshot())
}

func TestCart_RejectsConflictingPrice(t *testing.T) {
	cart := NewCart()
	require.NoError(t, cart.Add(jamon, 1))

	cheaper := jamon
	cheaper.Price = decimal.RequireFromString("1.00")
	assert.ErrorIs(t, cart.Add(cheaper, 1), ErrPriceMismatch)

	// same value, different scale is the same price
	rescaled := jamon
	rescaled.Price = decimal.RequireFromString("24.9")
	require.NoError(t, cart.Add(rescaled, 1))

	items := cart.Snapshot()
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
	assert.True(t, decimal.RequireFromString("49.80").Equal(cart.Total()), cart.Total().String())
}
