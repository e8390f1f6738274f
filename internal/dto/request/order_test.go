package request

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryLabel_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		raw  string
		want CategoryLabel
	}{
		{`"Boissons & Vins"`, "Boissons & Vins"},
		{`{"id": 2, "name": "Boissons & Vins"}`, "Boissons & Vins"},
		{`null`, ""},
	}

	for _, tt := range tests {
		var got CategoryLabel
		require.NoError(t, json.Unmarshal([]byte(tt.raw), &got), tt.raw)
		assert.Equal(t, tt.want, got)
	}

	var bad CategoryLabel
	assert.Error(t, json.Unmarshal([]byte(`42`), &bad))
}

func TestCreateOrderRequest_AcceptsNumbersAndStrings(t *testing.T) {
	raw := `{
		"items": [{"id": 1, "name": "Rioja", "price": 12.5, "quantity": 2, "category": {"name": "Boissons & Vins"}}],
		"total": "25.00",
		"deliveryAddress": "1 rue des Clercs",
		"postalCode": "57000",
		"phone": "0600000000"
	}`

	var req CreateOrderRequest
	require.NoError(t, json.Unmarshal([]byte(raw), &req))
	require.Len(t, req.Items, 1)
	assert.True(t, decimal.RequireFromString("12.5").Equal(req.Items[0].Price))
	assert.True(t, decimal.RequireFromString("25").Equal(req.Total))
	assert.Equal(t, CategoryLabel("Boissons & Vins"), req.Items[0].Category)
}
