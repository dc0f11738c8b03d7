package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/vcstore/orderservice/internal/core/domain"
	"github.com/vcstore/orderservice/internal/core/port"
	"go.uber.org/zap"
)

// Service aggregates orders out of customer and catalog data. All four
// collaborators are injected; there is no ambient lookup.
type Service struct {
	orders    port.OrderStore
	lines     port.OrderLineStore
	customers port.CustomerDirectory
	catalog   port.CatalogClient
	logger    *zap.Logger
}

func NewService(orders port.OrderStore, lines port.OrderLineStore,
	customers port.CustomerDirectory, catalog port.CatalogClient,
	logger *zap.Logger) (*Service, error) {
	return &Service{
		orders:    orders,
		lines:     lines,
		customers: customers,
		catalog:   catalog,
		logger:    logger,
	}, nil
}

func (s *Service) CreateOrder(ctx context.Context, customerID uint64,
	requests []domain.LineRequest) (*domain.Order, error) {
	customer, err := s.resolveCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}

	order := &domain.Order{
		CustomerID: customerID,
		OrderDate:  time.Now(),
		Status:     domain.OrderStatusPending,
		Customer:   customer,
	}

	// Resolution is all-or-nothing: any absent product fails the
	// whole construction before anything is written.
	for _, req := range requests {
		line, err := s.snapshotLine(ctx, req.ProductID, req.Quantity)
		if err != nil {
			return nil, err
		}
		order.Lines = append(order.Lines, line)
	}

	if err := s.recomputeTotal(order); err != nil {
		return nil, err
	}

	return s.persistNewOrder(ctx, order)
}

func (s *Service) ComposeOrder(ctx context.Context, draft *domain.OrderDraft) (*domain.Order, error) {
	order, err := s.resolveDraft(ctx, draft)
	if err != nil {
		return nil, err
	}
	return s.persistNewOrder(ctx, order)
}

func (s *Service) UpdateOrder(ctx context.Context, orderID uint64,
	draft *domain.OrderDraft) (*domain.Order, error) {
	if _, err := s.readOrder(ctx, orderID); err != nil {
		return nil, err
	}

	order, err := s.resolveDraft(ctx, draft)
	if err != nil {
		return nil, err
	}
	order.ID = orderID

	// Replace the line set wholesale. A failure between the delete
	// and the last insert leaves the order torn and must surface.
	if err := s.lines.DeleteLinesByOrder(ctx, orderID); err != nil {
		s.logger.Error("Delete order lines", zap.Error(err))
		return nil, domain.ErrInternal
	}
	for _, line := range order.Lines {
		line.OrderID = orderID
		created, err := s.lines.CreateLine(ctx, line)
		if err != nil {
			s.logger.Error("Replace order lines", zap.Uint64("order", orderID), zap.Error(err))
			return nil, fmt.Errorf("%w: line replace failed: %w", domain.ErrOrderInconsistent, err)
		}
		line.ID = created.ID
	}

	updated, err := s.orders.UpdateOrder(ctx, order)
	if err != nil {
		s.logger.Error("Update order", zap.Uint64("order", orderID), zap.Error(err))
		return nil, fmt.Errorf("%w: header update failed: %w", domain.ErrOrderInconsistent, err)
	}
	updated.Lines = order.Lines
	updated.Customer = order.Customer

	return updated, nil
}

func (s *Service) GetOrder(ctx context.Context, orderID uint64) (*domain.Order, error) {
	order, err := s.readOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	s.projectCustomer(ctx, order)
	return order, nil
}

func (s *Service) ListOrders(ctx context.Context, filter domain.OrderFilter) ([]*domain.Order, error) {
	list, err := s.orders.ListOrders(ctx, filter)
	if err != nil {
		s.logger.Error("List orders", zap.Error(err))
		return nil, err
	}

	seen := make(map[uint64]*domain.Customer)
	for _, order := range list {
		if customer, ok := seen[order.CustomerID]; ok {
			order.Customer = customer
			continue
		}
		s.projectCustomer(ctx, order)
		seen[order.CustomerID] = order.Customer
	}

	return list, nil
}

func (s *Service) DeleteOrder(ctx context.Context, orderID uint64) error {
	if _, err := s.readOrder(ctx, orderID); err != nil {
		return err
	}

	// Lines cascade with the header.
	if err := s.orders.DeleteOrder(ctx, orderID); err != nil {
		s.logger.Error("Delete order", zap.Uint64("order", orderID), zap.Error(err))
		return domain.ErrInternal
	}
	return nil
}

func (s *Service) AddProduct(ctx context.Context, orderID uint64,
	productID uint64, quantity int32) (*domain.Order, error) {
	order, err := s.readOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	// A fresh snapshot per addition: if the catalog re-priced the
	// product since an earlier line, the new line carries the new
	// price while existing lines keep theirs.
	line, err := s.snapshotLine(ctx, productID, quantity)
	if err != nil {
		return nil, err
	}
	line.OrderID = orderID

	created, err := s.lines.CreateLine(ctx, line)
	if err != nil {
		s.logger.Error("Create order line", zap.Uint64("order", orderID), zap.Error(err))
		return nil, domain.ErrInternal
	}
	line.ID = created.ID
	order.Lines = append(order.Lines, line)

	return s.storeRecomputedTotal(ctx, order)
}

func (s *Service) RemoveProduct(ctx context.Context, orderID uint64,
	productID uint64) (*domain.Order, error) {
	order, err := s.readOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	kept := make([]*domain.OrderLine, 0, len(order.Lines))
	for _, line := range order.Lines {
		if line.ProductID != productID {
			kept = append(kept, line)
		}
	}
	if len(kept) == len(order.Lines) {
		// Nothing matched, nothing to persist.
		s.projectCustomer(ctx, order)
		return order, nil
	}
	order.Lines = kept

	if err := s.lines.DeleteLinesByProduct(ctx, orderID, productID); err != nil {
		s.logger.Error("Delete order lines", zap.Uint64("order", orderID), zap.Error(err))
		return nil, domain.ErrInternal
	}

	return s.storeRecomputedTotal(ctx, order)
}

func (s *Service) GetCustomer(ctx context.Context, customerID uint64) (*domain.Customer, error) {
	return s.resolveCustomer(ctx, customerID)
}

func (s *Service) ListCustomers(ctx context.Context) ([]*domain.Customer, error) {
	list, err := s.customers.ListCustomers(ctx)
	if err != nil {
		s.logger.Error("List customers", zap.Error(err))
		return nil, err
	}
	return list, nil
}

func (s *Service) SaveCustomer(ctx context.Context, customer *domain.Customer) (*domain.Customer, error) {
	saved, err := s.customers.SaveCustomer(ctx, customer)
	if err != nil {
		if errors.Is(err, domain.ErrConflictingData) {
			return nil, err
		}
		s.logger.Error("Save customer", zap.Error(err))
		return nil, domain.ErrInternal
	}
	return saved, nil
}

func (s *Service) DeleteCustomer(ctx context.Context, customerID uint64) error {
	if _, err := s.resolveCustomer(ctx, customerID); err != nil {
		return err
	}
	if err := s.customers.DeleteCustomer(ctx, customerID); err != nil {
		s.logger.Error("Delete customer", zap.Error(err))
		return domain.ErrInternal
	}
	return nil
}

// resolveDraft turns a wire representation into a domain order.
// Price and name of every line come from the live catalog resolution,
// never from the caller. A caller-supplied total is accepted as-is;
// otherwise it is computed from the resolved lines.
func (s *Service) resolveDraft(ctx context.Context, draft *domain.OrderDraft) (*domain.Order, error) {
	customer, err := s.resolveCustomer(ctx, draft.CustomerID)
	if err != nil {
		return nil, err
	}

	order := &domain.Order{
		CustomerID: draft.CustomerID,
		OrderDate:  draft.OrderDate,
		Status:     draft.Status,
		Customer:   customer,
	}
	if order.OrderDate.IsZero() {
		order.OrderDate = time.Now()
	}
	if order.Status == "" {
		order.Status = domain.OrderStatusPending
	}

	for _, ld := range draft.Lines {
		line, err := s.snapshotLine(ctx, ld.ProductID, ld.Quantity)
		if err != nil {
			return nil, err
		}
		order.Lines = append(order.Lines, line)
	}

	if draft.TotalAmount != nil {
		order.TotalAmount = *draft.TotalAmount
		return order, nil
	}
	if err := s.recomputeTotal(order); err != nil {
		return nil, err
	}
	return order, nil
}

// snapshotLine resolves a product and fixes its id, name and price
// into a new line. The snapshot never changes afterwards.
func (s *Service) snapshotLine(ctx context.Context, productID uint64, quantity int32) (*domain.OrderLine, error) {
	if quantity <= 0 {
		return nil, domain.ErrBadRequest
	}

	product, ok := s.catalog.ProductByID(ctx, productID)
	if !ok {
		return nil, domain.ErrProductNotFound
	}

	return &domain.OrderLine{
		ProductID:   product.ID,
		ProductName: product.Name,
		Price:       product.Price,
		Quantity:    quantity,
	}, nil
}

// persistNewOrder writes the header to obtain an id, then every line.
// The two steps form one logical unit: a failed line write triggers a
// compensating header delete, and a failed compensation is surfaced
// as a consistency fault.
func (s *Service) persistNewOrder(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	saved, err := s.orders.CreateOrder(ctx, order)
	if err != nil {
		s.logger.Error("Create order", zap.Error(err))
		return nil, domain.ErrInternal
	}

	for _, line := range order.Lines {
		line.OrderID = saved.ID
		created, err := s.lines.CreateLine(ctx, line)
		if err != nil {
			s.logger.Error("Create order line", zap.Uint64("order", saved.ID), zap.Error(err))
			if delErr := s.orders.DeleteOrder(ctx, saved.ID); delErr != nil {
				s.logger.Error("Compensating order delete", zap.Uint64("order", saved.ID), zap.Error(delErr))
				return nil, fmt.Errorf("%w: header %d kept without lines: %w",
					domain.ErrOrderInconsistent, saved.ID, delErr)
			}
			return nil, domain.ErrInternal
		}
		line.ID = created.ID
	}

	saved.Lines = order.Lines
	saved.Customer = order.Customer

	return saved, nil
}

// storeRecomputedTotal restores the total invariant after a line
// mutation and persists the header.
func (s *Service) storeRecomputedTotal(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	if err := s.recomputeTotal(order); err != nil {
		return nil, err
	}

	updated, err := s.orders.UpdateOrder(ctx, order)
	if err != nil {
		s.logger.Error("Update order total", zap.Uint64("order", order.ID), zap.Error(err))
		return nil, domain.ErrInternal
	}
	updated.Lines = order.Lines
	s.projectCustomer(ctx, updated)

	return updated, nil
}

func (s *Service) recomputeTotal(order *domain.Order) error {
	total, err := order.ComputeTotal()
	if err != nil {
		s.logger.Error("Compute order total", zap.Error(err))
		return domain.ErrInternal
	}
	order.TotalAmount = total
	return nil
}

func (s *Service) readOrder(ctx context.Context, orderID uint64) (*domain.Order, error) {
	order, err := s.orders.ReadOrder(ctx, orderID)
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			return nil, domain.ErrOrderNotFound
		}
		s.logger.Error("Read order", zap.Uint64("order", orderID), zap.Error(err))
		return nil, domain.ErrInternal
	}
	return order, nil
}

func (s *Service) resolveCustomer(ctx context.Context, customerID uint64) (*domain.Customer, error) {
	customer, err := s.customers.CustomerByID(ctx, customerID)
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			return nil, domain.ErrCustomerNotFound
		}
		s.logger.Error("Read customer", zap.Uint64("customer", customerID), zap.Error(err))
		return nil, domain.ErrInternal
	}
	return customer, nil
}

// projectCustomer attaches the customer record for response
// projection. Absence at read time only blanks the name.
func (s *Service) projectCustomer(ctx context.Context, order *domain.Order) {
	customer, err := s.customers.CustomerByID(ctx, order.CustomerID)
	if err != nil {
		if !errors.Is(err, domain.ErrDataNotFound) {
			s.logger.Warn("Project customer", zap.Uint64("order", order.ID), zap.Error(err))
		}
		return
	}
	order.Customer = customer
}
