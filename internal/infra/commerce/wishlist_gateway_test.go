package commerce

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"neocart/internal/domain/entity"
	"neocart/internal/domain/gateway"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWishlistGateway_Add(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/wishlist/add", r.URL.Path)

		var payload wishlistLineDTO
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))

		_ = json.NewEncoder(w).Encode(payload)
	}))
	g := NewWishlistGateway(client, discardLogger())

	line, err := g.Add(context.Background(), "token-abc", entity.WishlistLine{
		ProductID:   "prod-1",
		ProductName: "Widget",
		Price:       decimal.NewFromInt(100),
	})
	require.NoError(t, err)
	assert.Equal(t, "prod-1", line.ProductID)
	assert.True(t, line.Price.Equal(decimal.NewFromInt(100)))
}

func TestWishlistGateway_Remove(t *testing.T) {
	var gotPath string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		assert.Equal(t, http.MethodDelete, r.Method)
		w.WriteHeader(http.StatusOK)
	}))
	g := NewWishlistGateway(client, discardLogger())

	require.NoError(t, g.Remove(context.Background(), "token-abc", "prod-1"))
	assert.Equal(t, "/api/wishlist/remove/prod-1", gotPath)
}

func TestWishlistGateway_Remove_CredentialRejected(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"detail": "Could not validate credentials"})
	}))
	g := NewWishlistGateway(client, discardLogger())

	err := g.Remove(context.Background(), "stale", "prod-1")
	assert.ErrorIs(t, err, gateway.ErrCredentialRejected)
}
