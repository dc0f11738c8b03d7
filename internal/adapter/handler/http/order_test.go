package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/vcstore/orderservice/internal/adapter/config"
	"github.com/vcstore/orderservice/internal/core/domain"
	"github.com/vcstore/orderservice/internal/core/port/mock"
	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/govalues/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupRouter(t *testing.T, service *mock.MockService,
	catalog *mock.MockCatalogClient) *Router {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger := zap.NewNop()

	orderHandler, err := NewOrderHandler(service, logger)
	require.NoError(t, err)
	customerHandler, err := NewCustomerHandler(service, logger)
	require.NoError(t, err)
	productHandler, err := NewProductHandler(catalog, logger)
	require.NoError(t, err)

	router, err := NewRouter(&config.HTTP{}, orderHandler, customerHandler,
		productHandler, logger)
	require.NoError(t, err)

	return router
}

func perform(router *Router, method, target, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func sampleOrder() *domain.Order {
	return &domain.Order{
		ID:          7,
		CustomerID:  1,
		Status:      domain.OrderStatusPending,
		TotalAmount: decimal.MustParse("60.00"),
		Customer:    &domain.Customer{ID: 1, FirstName: "Jane", LastName: "Doe"},
		Lines: []*domain.OrderLine{
			{ID: 70, OrderID: 7, ProductID: 11, ProductName: "Shirt",
				Price: decimal.MustParse("20.00"), Quantity: 3},
		},
	}
}

func TestOrderHandler_GetOrder(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	t.Run("Found", func(t *testing.T) {
		service := mock.NewMockService(mockCtrl)
		catalog := mock.NewMockCatalogClient(mockCtrl)
		service.EXPECT().GetOrder(gomock.Any(), uint64(7)).
			Return(sampleOrder(), nil)

		rec := perform(setupRouter(t, service, catalog), http.MethodGet, "/api/orders/7", "")

		assert.Equal(t, http.StatusOK, rec.Code)

		var resp struct {
			ID           uint64 `json:"id"`
			CustomerName string `json:"customerName"`
			Items        []struct {
				ProductName string `json:"productName"`
			} `json:"items"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, uint64(7), resp.ID)
		assert.Equal(t, "Jane Doe", resp.CustomerName)
		assert.Len(t, resp.Items, 1)
		assert.Equal(t, "Shirt", resp.Items[0].ProductName)
		assert.Contains(t, rec.Body.String(), `"totalAmount":60.00`)
	})

	t.Run("Missing order reads as 404", func(t *testing.T) {
		service := mock.NewMockService(mockCtrl)
		catalog := mock.NewMockCatalogClient(mockCtrl)
		service.EXPECT().GetOrder(gomock.Any(), uint64(99)).
			Return(nil, domain.ErrOrderNotFound)

		rec := perform(setupRouter(t, service, catalog), http.MethodGet, "/api/orders/99", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("Malformed id", func(t *testing.T) {
		service := mock.NewMockService(mockCtrl)
		catalog := mock.NewMockCatalogClient(mockCtrl)

		rec := perform(setupRouter(t, service, catalog), http.MethodGet, "/api/orders/abc", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestOrderHandler_CreateOrder(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	body := `{"customerId":1,"items":[{"productId":11,"quantity":3}]}`

	t.Run("Created", func(t *testing.T) {
		service := mock.NewMockService(mockCtrl)
		catalog := mock.NewMockCatalogClient(mockCtrl)
		service.EXPECT().ComposeOrder(gomock.Any(), gomock.Any()).
			Return(sampleOrder(), nil)

		rec := perform(setupRouter(t, service, catalog), http.MethodPost, "/api/orders", body)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"id":7`)
	})

	t.Run("Unknown product is a client error", func(t *testing.T) {
		service := mock.NewMockService(mockCtrl)
		catalog := mock.NewMockCatalogClient(mockCtrl)
		service.EXPECT().ComposeOrder(gomock.Any(), gomock.Any()).
			Return(nil, domain.ErrProductNotFound)

		rec := perform(setupRouter(t, service, catalog), http.MethodPost, "/api/orders", body)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Consistency fault surfaces as server error", func(t *testing.T) {
		service := mock.NewMockService(mockCtrl)
		catalog := mock.NewMockCatalogClient(mockCtrl)
		service.EXPECT().ComposeOrder(gomock.Any(), gomock.Any()).
			Return(nil, domain.ErrOrderInconsistent)

		rec := perform(setupRouter(t, service, catalog), http.MethodPost, "/api/orders", body)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestOrderHandler_Products(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	t.Run("Add product", func(t *testing.T) {
		service := mock.NewMockService(mockCtrl)
		catalog := mock.NewMockCatalogClient(mockCtrl)
		service.EXPECT().AddProduct(gomock.Any(), uint64(7), uint64(11), int32(2)).
			Return(sampleOrder(), nil)

		rec := perform(setupRouter(t, service, catalog), http.MethodPost,
			"/api/orders/7/products?productId=11&quantity=2", "")

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Add to missing order is a client error", func(t *testing.T) {
		service := mock.NewMockService(mockCtrl)
		catalog := mock.NewMockCatalogClient(mockCtrl)
		service.EXPECT().AddProduct(gomock.Any(), uint64(7), uint64(11), int32(2)).
			Return(nil, domain.ErrOrderNotFound)

		rec := perform(setupRouter(t, service, catalog), http.MethodPost,
			"/api/orders/7/products?productId=11&quantity=2", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Remove product", func(t *testing.T) {
		service := mock.NewMockService(mockCtrl)
		catalog := mock.NewMockCatalogClient(mockCtrl)
		service.EXPECT().RemoveProduct(gomock.Any(), uint64(7), uint64(11)).
			Return(sampleOrder(), nil)

		rec := perform(setupRouter(t, service, catalog), http.MethodDelete,
			"/api/orders/7/products/11", "")

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
}

func TestProductHandler(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	t.Run("Degraded catalog lists empty", func(t *testing.T) {
		service := mock.NewMockService(mockCtrl)
		catalog := mock.NewMockCatalogClient(mockCtrl)
		catalog.EXPECT().Products(gomock.Any()).
			Return([]domain.Product{})

		rec := perform(setupRouter(t, service, catalog), http.MethodGet, "/api/products", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[]`, rec.Body.String())
	})

	t.Run("Absent product is 404", func(t *testing.T) {
		service := mock.NewMockService(mockCtrl)
		catalog := mock.NewMockCatalogClient(mockCtrl)
		catalog.EXPECT().ProductByID(gomock.Any(), uint64(99)).
			Return(nil, false)

		rec := perform(setupRouter(t, service, catalog), http.MethodGet, "/api/products/99", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestFallbackRoutes(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	service := mock.NewMockService(mockCtrl)
	catalog := mock.NewMockCatalogClient(mockCtrl)
	router := setupRouter(t, service, catalog)

	for _, target := range []string{"/fallback", "/fallback/api/products", "/fallback/api/orders"} {
		rec := perform(router, http.MethodGet, target, "")

		assert.Equal(t, http.StatusOK, rec.Code, target)
		assert.JSONEq(t, `[]`, rec.Body.String(), target)
	}
}

func TestCustomerHandler(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	t.Run("Duplicate email conflicts", func(t *testing.T) {
		service := mock.NewMockService(mockCtrl)
		catalog := mock.NewMockCatalogClient(mockCtrl)
		service.EXPECT().SaveCustomer(gomock.Any(), gomock.Any()).
			Return(nil, domain.ErrConflictingData)

		rec := perform(setupRouter(t, service, catalog), http.MethodPost, "/api/customers",
			`{"firstName":"Jane","lastName":"Doe","email":"jane@example.com"}`)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("Get customer", func(t *testing.T) {
		service := mock.NewMockService(mockCtrl)
		catalog := mock.NewMockCatalogClient(mockCtrl)
		service.EXPECT().GetCustomer(gomock.Any(), uint64(1)).
			Return(&domain.Customer{ID: 1, FirstName: "Jane", LastName: "Doe"}, nil)

		rec := perform(setupRouter(t, service, catalog), http.MethodGet, "/api/customers/1", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"firstName":"Jane"`)
	})
}
