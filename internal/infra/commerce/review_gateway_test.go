package commerce

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"neocart/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReviewGateway_List_NoCredentialNeeded(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/reviews/prod-1", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))

		_ = json.NewEncoder(w).Encode([]reviewDTO{
			{ID: "rev-1", ProductID: "prod-1", UserName: "Ada", Rating: 5, Comment: "Great"},
		})
	}))
	g := NewReviewGateway(client, discardLogger())

	reviews, err := g.List(context.Background(), "prod-1")
	require.NoError(t, err)
	require.Len(t, reviews, 1)
	assert.Equal(t, 5, reviews[0].Rating)
	assert.Equal(t, "Ada", reviews[0].UserName)
}

func TestReviewGateway_Create(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer token-abc", r.Header.Get("Authorization"))

		var payload map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "prod-1", payload["product_id"])
		assert.Equal(t, float64(4), payload["rating"])

		_ = json.NewEncoder(w).Encode(reviewDTO{ID: "rev-2", ProductID: "prod-1", Rating: 4, Comment: "Solid"})
	}))
	g := NewReviewGateway(client, discardLogger())

	review, err := g.Create(context.Background(), "token-abc", entity.ReviewInput{
		ProductID: "prod-1",
		Rating:    4,
		Comment:   "Solid",
	})
	require.NoError(t, err)
	assert.Equal(t, "rev-2", review.ID)
	assert.Equal(t, 4, review.Rating)
}
