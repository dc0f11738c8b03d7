package port

import (
	"context"

	"github.com/vcstore/orderservice/internal/core/domain"
)

//go:generate mockgen -source=customer.go -destination=mock/customer.go -package=mock

// CustomerDirectory looks up and maintains customer records.
// Absence is reported as domain.ErrDataNotFound.
type CustomerDirectory interface {
	CustomerByID(ctx context.Context, id uint64) (*domain.Customer, error)
	ListCustomers(ctx context.Context) ([]*domain.Customer, error)
	SaveCustomer(ctx context.Context, customer *domain.Customer) (*domain.Customer, error)
	DeleteCustomer(ctx context.Context, id uint64) error
}
