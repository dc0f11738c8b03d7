package port

import (
	"context"

	"github.com/vcstore/orderservice/internal/core/domain"
)

//go:generate mockgen -source=order.go -destination=mock/order.go -package=mock

// OrderStore is durable storage for order headers. ReadOrder and
// ListOrders return orders with their lines loaded. Deleting an order
// cascades to its lines.
type OrderStore interface {
	CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error)
	UpdateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error)
	ReadOrder(ctx context.Context, orderID uint64) (*domain.Order, error)
	ListOrders(ctx context.Context, filter domain.OrderFilter) ([]*domain.Order, error)
	DeleteOrder(ctx context.Context, orderID uint64) error
}

// OrderLineStore is durable storage for order line records.
type OrderLineStore interface {
	CreateLine(ctx context.Context, line *domain.OrderLine) (*domain.OrderLine, error)
	DeleteLinesByProduct(ctx context.Context, orderID uint64, productID uint64) error
	DeleteLinesByOrder(ctx context.Context, orderID uint64) error
}
