package http

import (
	"strconv"

	"github.com/vcstore/orderservice/internal/core/domain"
	"github.com/vcstore/orderservice/internal/core/port"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ProductHandler forwards catalog reads through the remote catalog
// client. Listing degrades to an empty collection when the catalog is
// down; a single lookup degrades to 404.
type ProductHandler struct {
	Handler
	catalog port.CatalogClient
}

func NewProductHandler(catalog port.CatalogClient, logger *zap.Logger) (*ProductHandler, error) {
	return &ProductHandler{
		Handler: *NewHandler(logger),
		catalog: catalog,
	}, nil
}

type ProductResp struct {
	ID            uint64      `json:"id"`
	Name          string      `json:"name"`
	Description   string      `json:"description,omitempty"`
	Price         jsonDecimal `json:"price"`
	StockQuantity int32       `json:"stockQuantity"`
	CategoryName  string      `json:"categoryName,omitempty"`
}

func productToResp(product *domain.Product) ProductResp {
	return ProductResp{
		ID:            product.ID,
		Name:          product.Name,
		Description:   product.Description,
		Price:         jsonDecimal(product.Price),
		StockQuantity: product.StockQuantity,
		CategoryName:  product.CategoryName,
	}
}

func (ph *ProductHandler) ListProducts(ctx *gin.Context) {
	list := ph.catalog.Products(ctx)

	result := make([]ProductResp, 0, len(list))
	for i := range list {
		result = append(result, productToResp(&list[i]))
	}

	ph.handleSuccess(ctx, result)
}

func (ph *ProductHandler) GetProduct(ctx *gin.Context) {
	productID, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		ph.handleValidationError(ctx, err)
		return
	}

	product, ok := ph.catalog.ProductByID(ctx, productID)
	if !ok {
		ph.handleError(ctx, domain.ErrProductNotFound)
		return
	}

	ph.handleSuccess(ctx, productToResp(product))
}
