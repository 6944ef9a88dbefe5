package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexPrice_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		json string
		want float64
	}{
		{
			name: "Plain number",
			json: `{"price": 14.5}`,
			want: 14.5,
		},
		{
			name: "Numeric string",
			json: `{"price": "8"}`,
			want: 8,
		},
		{
			name: "Range string resolves to minimum",
			json: `{"price": "10-14"}`,
			want: 10,
		},
		{
			name: "Range with spaces",
			json: `{"price": "12 - 9"}`,
			want: 9,
		},
		{
			name: "Unparsable string resolves to zero",
			json: `{"price": "market price"}`,
			want: 0,
		},
		{
			name: "Missing price",
			json: `{}`,
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var item CatalogItem
			require.NoError(t, json.Unmarshal([]byte(tt.json), &item))
			assert.Equal(t, tt.want, float64(item.Price))
		})
	}
}

func TestCatalogItem_UnmarshalSizesAndTypes(t *testing.T) {
	data := `{
		"id": "house-burger",
		"title": "House Burger",
		"size": [{"name": "Regular", "price": 9}, {"name": "Large", "price": 12}],
		"type": ["White", "Wholegrain"]
	}`

	var item CatalogItem
	require.NoError(t, json.Unmarshal([]byte(data), &item))

	assert.Equal(t, "house-burger", item.ID)
	require.Len(t, item.Sizes, 2)
	assert.Equal(t, SizeOption{Name: "Large", Price: 12}, item.Sizes[1])
	assert.Equal(t, []string{"White", "Wholegrain"}, item.Types)
}

func TestLineKey_String(t *testing.T) {
	assert.Equal(t, "lemonade", LineKey{ItemID: "lemonade"}.String())
	assert.Equal(t, "lemonade-Large", LineKey{ItemID: "lemonade", Variant: "Large"}.String())
}

func TestCart_IndexOf(t *testing.T) {
	cart := Cart{
		{Key: LineKey{ItemID: "a"}, Quantity: 1},
		{Key: LineKey{ItemID: "a", Variant: "Large"}, Quantity: 2},
	}

	assert.Equal(t, 0, cart.IndexOf(LineKey{ItemID: "a"}))
	assert.Equal(t, 1, cart.IndexOf(LineKey{ItemID: "a", Variant: "Large"}))
	assert.Equal(t, -1, cart.IndexOf(LineKey{ItemID: "b"}))
}

func TestCart_TotalQuantity(t *testing.T) {
	cart := Cart{
		{Key: LineKey{ItemID: "a"}, Quantity: 2},
		{Key: LineKey{ItemID: "b"}, Quantity: 3},
	}

	assert.Equal(t, 5, cart.TotalQuantity())
	assert.False(t, cart.IsEmpty())
	assert.True(t, Cart{}.IsEmpty())
}
