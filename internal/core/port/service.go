package port

import (
	"context"

	"github.com/vcstore/orderservice/internal/core/domain"
)

//go:generate mockgen -source=service.go -destination=mock/service.go -package=mock

// Service is the order aggregation engine.
type Service interface {
	CreateOrder(ctx context.Context, customerID uint64, lines []domain.LineRequest) (*domain.Order, error)
	ComposeOrder(ctx context.Context, draft *domain.OrderDraft) (*domain.Order, error)
	UpdateOrder(ctx context.Context, orderID uint64, draft *domain.OrderDraft) (*domain.Order, error)
	GetOrder(ctx context.Context, orderID uint64) (*domain.Order, error)
	ListOrders(ctx context.Context, filter domain.OrderFilter) ([]*domain.Order, error)
	DeleteOrder(ctx context.Context, orderID uint64) error

	AddProduct(ctx context.Context, orderID uint64, productID uint64, quantity int32) (*domain.Order, error)
	RemoveProduct(ctx context.Context, orderID uint64, productID uint64) (*domain.Order, error)

	GetCustomer(ctx context.Context, customerID uint64) (*domain.Customer, error)
	ListCustomers(ctx context.Context) ([]*domain.Customer, error)
	SaveCustomer(ctx context.Context, customer *domain.Customer) (*domain.Customer, error)
	DeleteCustomer(ctx context.Context, customerID uint64) error
}
