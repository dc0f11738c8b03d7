package domain

import (
	"fmt"
	"time"

	"github.com/govalues/decimal"
)

type OrderStatus string

// Only Pending is ever assigned by this service. Other values arrive
// from wire representations and are kept as opaque tags.
const OrderStatusPending OrderStatus = "PENDING"

// Order is the header record. TotalAmount must equal the sum of
// Price × Quantity over Lines whenever the order is persisted.
type Order struct {
	ID          uint64
	CustomerID  uint64
	OrderDate   time.Time
	Status      OrderStatus
	TotalAmount decimal.Decimal
	Lines       []*OrderLine

	// Customer is filled at projection time from the directory,
	// never stored with the order.
	Customer *Customer
}

// OrderLine holds a snapshot of the product's id, name and price taken
// when the line was created. The snapshot is never refreshed, so a
// placed order keeps its total even if the catalog changes.
type OrderLine struct {
	ID          uint64
	OrderID     uint64
	ProductID   uint64
	ProductName string
	Price       decimal.Decimal
	Quantity    int32
}

// Subtotal returns Price × Quantity.
func (l *OrderLine) Subtotal() (decimal.Decimal, error) {
	qty, err := decimal.New(int64(l.Quantity), 0)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("math error:%w", err)
	}
	sub, err := l.Price.Mul(qty)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("math error:%w", err)
	}
	return sub, nil
}

// ComputeTotal sums the subtotals of the order's current lines.
func (o *Order) ComputeTotal() (decimal.Decimal, error) {
	total := decimal.Zero
	for _, line := range o.Lines {
		sub, err := line.Subtotal()
		if err != nil {
			return decimal.Decimal{}, err
		}
		total, err = total.Add(sub)
		if err != nil {
			return decimal.Decimal{}, fmt.Errorf("math error:%w", err)
		}
	}
	return total, nil
}

// LineRequest is a (product, quantity) pair for order construction.
type LineRequest struct {
	ProductID uint64
	Quantity  int32
}

// LineDraft is a caller-supplied line of a wire order representation.
// It carries no price or name: those are always resolved from the
// live catalog, never taken from the caller.
type LineDraft struct {
	ProductID uint64
	Quantity  int32
}

// OrderDraft is an externally supplied order representation used by
// create and update flows.
type OrderDraft struct {
	CustomerID  uint64
	OrderDate   time.Time
	Status      OrderStatus
	TotalAmount *decimal.Decimal
	Lines       []LineDraft
}

// OrderFilter narrows and pages an order listing. The date range is
// applied only when both bounds are set, inclusive on both ends.
type OrderFilter struct {
	StartDate  *time.Time
	EndDate    *time.Time
	CustomerID *uint64
	Page       int
	Size       int
}
