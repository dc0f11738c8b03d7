package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/vcstore/orderservice/internal/adapter/storage"
	"github.com/vcstore/orderservice/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

type OrderRepository struct {
	db *storage.DB
}

func NewOrderRepository(db *storage.DB) (*OrderRepository, error) {
	return &OrderRepository{db: db}, nil
}

func (or *OrderRepository) CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	statement := or.db.QueryBuilder.Insert("orders").
		Columns("customer_id", "order_date", "status", "total_amount").
		Values(order.CustomerID, order.OrderDate, order.Status, order.TotalAmount).
		Suffix("returning id")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	err = or.db.QueryRow(ctx, sql, args...).Scan(&order.ID)
	if err != nil {
		return nil, err
	}

	return order, nil
}

func (or *OrderRepository) UpdateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	statement := or.db.QueryBuilder.Update("orders").
		Set("customer_id", order.CustomerID).
		Set("order_date", order.OrderDate).
		Set("status", order.Status).
		Set("total_amount", order.TotalAmount).
		Where(sq.Eq{"id": order.ID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	tag, err := or.db.Exec(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	if tag.RowsAffected() == 0 {
		return nil, domain.ErrDataNotFound
	}

	return order, nil
}

func (or *OrderRepository) ReadOrder(ctx context.Context, orderID uint64) (*domain.Order, error) {
	statement := or.db.QueryBuilder.
		Select("id", "customer_id", "order_date", "status", "total_amount").
		From("orders").
		Where(sq.Eq{"id": orderID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	order := domain.Order{}

	err = or.db.QueryRow(ctx, sql, args...).Scan(
		&order.ID,
		&order.CustomerID,
		&order.OrderDate,
		&order.Status,
		&order.TotalAmount,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrDataNotFound
		}
		return nil, err
	}

	order.Lines, err = or.readLines(ctx, order.ID)
	if err != nil {
		return nil, err
	}

	return &order, nil
}

func (or *OrderRepository) ListOrders(ctx context.Context, filter domain.OrderFilter) ([]*domain.Order, error) {
	statement := or.db.QueryBuilder.
		Select("id", "customer_id", "order_date", "status", "total_amount").
		From("orders").
		OrderBy("id")

	// Date range filters only when both bounds are present,
	// inclusive on both ends.
	if filter.StartDate != nil && filter.EndDate != nil {
		statement = statement.
			Where(sq.GtOrEq{"order_date": *filter.StartDate}).
			Where(sq.LtOrEq{"order_date": *filter.EndDate})
	}
	if filter.CustomerID != nil {
		statement = statement.Where(sq.Eq{"customer_id": *filter.CustomerID})
	}
	if filter.Size > 0 {
		statement = statement.
			Limit(uint64(filter.Size)).
			Offset(uint64(filter.Page) * uint64(filter.Size))
	}

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := or.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]*domain.Order, 0)
	for rows.Next() {
		order := domain.Order{}
		err := rows.Scan(
			&order.ID,
			&order.CustomerID,
			&order.OrderDate,
			&order.Status,
			&order.TotalAmount,
		)
		if err != nil {
			return nil, err
		}
		list = append(list, &order)
	}

	err = rows.Err()
	if err != nil {
		return nil, err
	}

	for _, order := range list {
		order.Lines, err = or.readLines(ctx, order.ID)
		if err != nil {
			return nil, err
		}
	}

	return list, nil
}

func (or *OrderRepository) DeleteOrder(ctx context.Context, orderID uint64) error {
	statement := or.db.QueryBuilder.
		Delete("orders").
		Where(sq.Eq{"id": orderID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return err
	}

	tag, err := or.db.Exec(ctx, sql, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrDataNotFound
	}

	return nil
}

func (or *OrderRepository) readLines(ctx context.Context, orderID uint64) ([]*domain.OrderLine, error) {
	statement := or.db.QueryBuilder.
		Select("id", "order_id", "product_id", "product_name", "price", "quantity").
		From("order_lines").
		Where(sq.Eq{"order_id": orderID}).
		OrderBy("id")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := or.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	lines := make([]*domain.OrderLine, 0)
	for rows.Next() {
		line := domain.OrderLine{}
		err := rows.Scan(
			&line.ID,
			&line.OrderID,
			&line.ProductID,
			&line.ProductName,
			&line.Price,
			&line.Quantity,
		)
		if err != nil {
			return nil, err
		}
		lines = append(lines, &line)
	}

	return lines, rows.Err()
}

type OrderLineRepository struct {
	db *storage.DB
}

func NewOrderLineRepository(db *storage.DB) (*OrderLineRepository, error) {
	return &OrderLineRepository{db: db}, nil
}

func (lr *OrderLineRepository) CreateLine(ctx context.Context, line *domain.OrderLine) (*domain.OrderLine, error) {
	statement := lr.db.QueryBuilder.Insert("order_lines").
		Columns("order_id", "product_id", "product_name", "price", "quantity").
		Values(line.OrderID, line.ProductID, line.ProductName, line.Price, line.Quantity).
		Suffix("returning id")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	err = lr.db.QueryRow(ctx, sql, args...).Scan(&line.ID)
	if err != nil {
		return nil, err
	}

	return line, nil
}

func (lr *OrderLineRepository) DeleteLinesByProduct(ctx context.Context, orderID uint64, productID uint64) error {
	statement := lr.db.QueryBuilder.
		Delete("order_lines").
		Where(sq.Eq{"order_id": orderID, "product_id": productID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return err
	}

	// Zero matched lines is a valid outcome.
	_, err = lr.db.Exec(ctx, sql, args...)
	return err
}

func (lr *OrderLineRepository) DeleteLinesByOrder(ctx context.Context, orderID uint64) error {
	statement := lr.db.QueryBuilder.
		Delete("order_lines").
		Where(sq.Eq{"order_id": orderID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return err
	}

	_, err = lr.db.Exec(ctx, sql, args...)
	return err
}
