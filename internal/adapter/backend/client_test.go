package backend

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookcatalog/internal/mockapi"
	"bookcatalog/pkg/errors"
)

func newTestClient(t *testing.T) (*Client, *mockapi.Server) {
	t.Helper()

	api := mockapi.NewServer(mockapi.SeedProducts())
	server := httptest.NewServer(api.Echo())
	t.Cleanup(server.Close)

	return NewClient(server.URL, 5*time.Second), api
}

func TestListReturnsSeededProducts(t *testing.T) {
	client, _ := newTestClient(t)

	products, err := client.List(context.Background())

	require.NoError(t, err)
	require.Len(t, products, 4)
	assert.Equal(t, "MongoDB: The Definitive Guide", products[0].Title)
	assert.Equal(t, "Shannon Bradshaw", products[0].Author)
	assert.Equal(t, 25, products[0].Stock)
	assert.Equal(t, "O'Reilly Media", products[0].Specifications.Publisher)

	// The discount carries through decoding and drives the effective price.
	require.NotNil(t, products[1].DiscountPrice)
	assert.Equal(t, 34.99, products[1].EffectivePrice())
}

func TestListRejectsUnsuccessfulResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success":false,"products":[],"total":0}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)
	_, err := client.List(context.Background())

	assert.True(t, errors.Is(err, "BAD_RESPONSE"))
}

func TestListRejectsServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)
	_, err := client.List(context.Background())

	assert.True(t, errors.Is(err, "BAD_RESPONSE"))
}

func TestListRejectsMalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":`))
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)
	_, err := client.List(context.Background())

	assert.True(t, errors.Is(err, "BAD_RESPONSE"))
}

func TestListUnreachableBackend(t *testing.T) {
	client := NewClient("http://127.0.0.1:1", time.Second)

	_, err := client.List(context.Background())

	assert.True(t, errors.Is(err, "UPSTREAM_UNAVAILABLE"))
}

func TestCartSummaryAndAddItem(t *testing.T) {
	client, _ := newTestClient(t)
	ctx := context.Background()

	cart, err := client.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, cart.TotalItems)

	cart, err = client.AddItem(ctx, "68a1f0c2b5d4a11fe09b3301", 1)
	require.NoError(t, err)
	assert.Equal(t, 1, cart.TotalItems)

	cart, err = client.AddItem(ctx, "68a1f0c2b5d4a11fe09b3302", 2)
	require.NoError(t, err)
	assert.Equal(t, 3, cart.TotalItems)
}

func TestAddItemUnknownProduct(t *testing.T) {
	client, _ := newTestClient(t)

	_, err := client.AddItem(context.Background(), "nope", 1)

	assert.True(t, errors.Is(err, "BAD_RESPONSE"))
}

func TestClearCartEmptiesIt(t *testing.T) {
	client, _ := newTestClient(t)
	ctx := context.Background()

	_, err := client.AddItem(ctx, "68a1f0c2b5d4a11fe09b3301", 2)
	require.NoError(t, err)

	require.NoError(t, client.Clear(ctx))

	cart, err := client.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, cart.TotalItems)
}

func TestPaymentStatus(t *testing.T) {
	client, api := newTestClient(t)
	ctx := context.Background()

	status, err := client.Status(ctx, "cs_unknown")
	require.NoError(t, err)
	assert.Equal(t, "unpaid", status)

	api.SetPaymentStatus("cs_123", "paid")
	status, err = client.Status(ctx, "cs_123")
	require.NoError(t, err)
	assert.Equal(t, "paid", status)
}
