package orderintake

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testOrder() OrderRequest {
	return OrderRequest{
		Items: []OrderItem{
			{ID: "house-burger-Large", Name: "House Burger (Large)", Qty: 2, Price: 12},
		},
		Customer: Customer{Name: "Ada", Phone: "555-0100", Address: "1 Main St"},
		Totals:   Totals{Subtotal: 24, Delivery: 3.5, Total: 27.5},
	}
}

func TestNewClient_RequiresBaseURL(t *testing.T) {
	_, err := NewClient(Config{})
	assert.Error(t, err)
}

func TestClient_SubmitOrder_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/submit_order", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var order OrderRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&order))
		assert.Len(t, order.Items, 1)
		assert.Equal(t, 27.5, order.Totals.Total)

		json.NewEncoder(w).Encode(SubmitResponse{Success: true, OrderID: 12})
	}))
	defer server.Close()

	client, err := NewClient(Config{BaseURL: server.URL})
	require.NoError(t, err)

	resp, err := client.SubmitOrder(context.Background(), testOrder())
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, uint(12), resp.OrderID)
}

func TestClient_SubmitOrder_RejectionCarriesDetail(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"detail": "Out of stock"})
	}))
	defer server.Close()

	client, err := NewClient(Config{BaseURL: server.URL})
	require.NoError(t, err)

	_, err = client.SubmitOrder(context.Background(), testOrder())

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "Out of stock", apiErr.Detail)
}

func TestClient_SubmitOrder_RejectionWithoutDetail(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client, err := NewClient(Config{BaseURL: server.URL})
	require.NoError(t, err)

	_, err = client.SubmitOrder(context.Background(), testOrder())

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "order submission failed", apiErr.Detail)
}

func TestClient_SubmitOrder_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client, err := NewClient(Config{BaseURL: server.URL})
	require.NoError(t, err)

	_, err = client.SubmitOrder(context.Background(), testOrder())
	assert.ErrorIs(t, err, ErrServiceUnreachable)
}
