package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/vcstore/orderservice/internal/adapter/config"
	"github.com/govalues/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := NewClient(&config.Catalog{
		HostString: strings.TrimPrefix(srv.URL, "http://"),
		Timeout:    2 * time.Second,
	}, zap.NewNop())
	require.NoError(t, err)

	return client, srv
}

func TestClient_ProductByID(t *testing.T) {
	t.Run("Good lookup", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/products/11", r.URL.Path)
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"id":11,"name":"Shirt","description":"Plain",` +
				`"price":20.00,"stockQuantity":5,"categoryName":"Apparel"}`))
		})

		product, ok := client.ProductByID(context.Background(), 11)

		assert.True(t, ok)
		assert.Equal(t, uint64(11), product.ID)
		assert.Equal(t, "Shirt", product.Name)
		assert.Zero(t, decimal.MustParse("20.00").Cmp(product.Price))
		assert.Equal(t, int32(5), product.StockQuantity)
	})

	t.Run("Unknown id is absent", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		})

		product, ok := client.ProductByID(context.Background(), 99)

		assert.False(t, ok)
		assert.Nil(t, product)
	})

	t.Run("Server error is absent", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		})

		_, ok := client.ProductByID(context.Background(), 11)
		assert.False(t, ok)
	})

	t.Run("Garbled body is absent", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"id":`))
		})

		_, ok := client.ProductByID(context.Background(), 11)
		assert.False(t, ok)
	})

	t.Run("Unreachable catalog is absent", func(t *testing.T) {
		client, srv := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {})
		srv.Close()

		_, ok := client.ProductByID(context.Background(), 11)
		assert.False(t, ok)
	})
}

func TestClient_Products(t *testing.T) {
	t.Run("Good listing", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/products", r.URL.Path)
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`[{"id":11,"name":"Shirt","price":20.00},` +
				`{"id":12,"name":"Hat","price":15.50}]`))
		})

		list := client.Products(context.Background())

		assert.Len(t, list, 2)
		assert.Equal(t, "Hat", list[1].Name)
		assert.Zero(t, decimal.MustParse("15.50").Cmp(list[1].Price))
	})

	t.Run("Server error degrades to empty list", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		})

		list := client.Products(context.Background())

		assert.NotNil(t, list)
		assert.Empty(t, list)
	})

	t.Run("Unreachable catalog degrades to empty list", func(t *testing.T) {
		client, srv := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {})
		srv.Close()

		list := client.Products(context.Background())

		assert.NotNil(t, list)
		assert.Empty(t, list)
	})
}
