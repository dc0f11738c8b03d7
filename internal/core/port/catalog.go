package port

import (
	"context"

	"github.com/vcstore/orderservice/internal/core/domain"
)

//go:generate mockgen -source=catalog.go -destination=mock/catalog.go -package=mock

// CatalogClient is the synchronous accessor of the remote product
// catalog. Absence is a value, not an error: when the catalog is
// unreachable or the id is unknown, ProductByID reports ok=false and
// Products returns an empty slice. Callers translate ok=false into a
// domain NotFound; the empty list is served as-is.
type CatalogClient interface {
	ProductByID(ctx context.Context, id uint64) (*domain.Product, bool)
	Products(ctx context.Context) []domain.Product
}
