package order

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToOrderResponse(t *testing.T) {
	in := validOrderInput()
	in.Items = []OrderItemInput{
		{MenuItemID: 1, MenuItemName: "Soup", Quantity: 3, UnitPrice: decimal.RequireFromString("9.99")},
		{MenuItemID: 2, MenuItemName: "Mint", Quantity: 1, UnitPrice: decimal.RequireFromString("0.01")},
	}

	o, err := NewOrder(in)
	require.NoError(t, err)
	o.ID = 12

	resp := ToOrderResponse(o)

	assert.Equal(t, int64(12), resp.ID)
	assert.Equal(t, CustomerResponse{Name: "Jane Doe", Phone: "0123456789"}, resp.Customer)
	assert.Equal(t, "30.00", resp.TotalPrice)
	assert.Equal(t, resp.TotalPrice, resp.OrderTotal, "order_total aliases total_price")
	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, resp.Status, resp.OrderStatus, "order_status aliases status")
	require.Len(t, resp.Items, 2)
	assert.Equal(t, "9.99", resp.Items[0].UnitPrice)
	assert.Equal(t, "29.97", resp.Items[0].ItemTotal)
}

func TestOrderRoundTrip(t *testing.T) {
	original, err := NewOrder(validOrderInput())
	require.NoError(t, err)
	original.ID = 3

	payload, err := json.Marshal(ToOrderResponse(original))
	require.NoError(t, err)

	var back OrderInput
	require.NoError(t, json.Unmarshal(payload, &back))

	restored, err := NewOrder(back)
	require.NoError(t, err)
	restored.ID = original.ID

	assert.Equal(t, original.Customer, restored.Customer)
	assert.Equal(t, original.Status, restored.Status)
	require.Len(t, restored.Items, len(original.Items))
	for i := range original.Items {
		assert.Equal(t, original.Items[i].MenuItemID, restored.Items[i].MenuItemID)
		assert.True(t, original.Items[i].UnitPrice.Equal(restored.Items[i].UnitPrice))
	}

	// The derived total re-derives to the same value.
	assert.True(t, original.TotalPrice().Equal(restored.TotalPrice()))
}

func TestToOrderResponsesEmpty(t *testing.T) {
	out := ToOrderResponses(nil)
	assert.NotNil(t, out)
	assert.Empty(t, out)
}
