package catalog

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fjacquet/sales-csv/internal/logging"
	"fjacquet/sales-csv/internal/parsererror"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const productsJSON = `{
	"products": [
		{"id": 1, "title": "iPhone 9", "category": "smartphones", "brand": "Apple", "price": 549, "rating": 4.69},
		{"id": 2, "title": "iPhone X", "category": "smartphones", "brand": "Apple", "price": 899, "rating": 4.44}
	],
	"total": 2,
	"skip": 0,
	"limit": 2
}`

func TestFetchProducts(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/products", r.URL.Path)
		assert.Equal(t, "100", r.URL.Query().Get("limit"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(productsJSON))
	}))
	defer server.Close()

	client := NewClient(&logging.MockLogger{}, WithBaseURL(server.URL))
	products, err := client.FetchProducts(context.Background())

	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, 1, products[0].ID)
	assert.Equal(t, "iPhone 9", products[0].Title)
	assert.Equal(t, "smartphones", products[0].Category)
	assert.Equal(t, "Apple", products[0].Brand)
	assert.True(t, products[0].Price.Equal(decimal.NewFromInt(549)))
	assert.True(t, products[0].Rating.Equal(decimal.RequireFromString("4.69")))
}

func TestFetchProducts_CustomLimit(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "25", r.URL.Query().Get("limit"))
		_, _ = w.Write([]byte(`{"products": []}`))
	}))
	defer server.Close()

	client := NewClient(&logging.MockLogger{}, WithBaseURL(server.URL), WithLimit(25))
	products, err := client.FetchProducts(context.Background())

	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestFetchProducts_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(&logging.MockLogger{}, WithBaseURL(server.URL))
	_, err := client.FetchProducts(context.Background())

	require.Error(t, err)
	var fetchErr *parsererror.FetchError
	assert.True(t, errors.As(err, &fetchErr))
}

func TestFetchProducts_MalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer server.Close()

	client := NewClient(&logging.MockLogger{}, WithBaseURL(server.URL))
	_, err := client.FetchProducts(context.Background())

	require.Error(t, err)
	var fetchErr *parsererror.FetchError
	assert.True(t, errors.As(err, &fetchErr))
}

func TestFetchProducts_UnreachableServer(t *testing.T) {
	client := NewClient(&logging.MockLogger{},
		WithBaseURL("http://127.0.0.1:1"),
		WithTimeout(500*time.Millisecond))
	_, err := client.FetchProducts(context.Background())
	assert.Error(t, err)
}

func TestFetchProducts_ContextCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		_, _ = w.Write([]byte(productsJSON))
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := NewClient(&logging.MockLogger{}, WithBaseURL(server.URL))
	_, err := client.FetchProducts(ctx)
	assert.Error(t, err)
}
