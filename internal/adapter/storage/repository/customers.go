package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/vcstore/orderservice/internal/adapter/storage"
	"github.com/vcstore/orderservice/internal/core/domain"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type CustomerRepository struct {
	db *storage.DB
}

func NewCustomerRepository(db *storage.DB) (*CustomerRepository, error) {
	return &CustomerRepository{db: db}, nil
}

func (cr *CustomerRepository) CustomerByID(ctx context.Context, id uint64) (*domain.Customer, error) {
	statement := cr.db.QueryBuilder.
		Select("id", "first_name", "last_name", "email", "phone", "created_at").
		From("customers").
		Where(sq.Eq{"id": id})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	customer := domain.Customer{}

	err = cr.db.QueryRow(ctx, sql, args...).Scan(
		&customer.ID,
		&customer.FirstName,
		&customer.LastName,
		&customer.Email,
		&customer.Phone,
		&customer.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrDataNotFound
		}
		return nil, err
	}

	return &customer, nil
}

func (cr *CustomerRepository) ListCustomers(ctx context.Context) ([]*domain.Customer, error) {
	statement := cr.db.QueryBuilder.
		Select("id", "first_name", "last_name", "email", "phone", "created_at").
		From("customers").
		OrderBy("id")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := cr.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]*domain.Customer, 0)
	for rows.Next() {
		customer := domain.Customer{}
		err := rows.Scan(
			&customer.ID,
			&customer.FirstName,
			&customer.LastName,
			&customer.Email,
			&customer.Phone,
			&customer.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		list = append(list, &customer)
	}

	return list, rows.Err()
}

func (cr *CustomerRepository) SaveCustomer(ctx context.Context, customer *domain.Customer) (*domain.Customer, error) {
	if customer.ID == 0 {
		statement := cr.db.QueryBuilder.Insert("customers").
			Columns("first_name", "last_name", "email", "phone").
			Values(customer.FirstName, customer.LastName, customer.Email, customer.Phone).
			Suffix("returning id, created_at")

		sql, args, err := statement.ToSql()
		if err != nil {
			return nil, err
		}

		err = cr.db.QueryRow(ctx, sql, args...).Scan(&customer.ID, &customer.CreatedAt)
		if err != nil {
			if pgErr, ok := err.(*pgconn.PgError); ok && pgErr.Code == pgerrcode.UniqueViolation {
				return nil, domain.ErrConflictingData
			}
			return nil, err
		}

		return customer, nil
	}

	statement := cr.db.QueryBuilder.Update("customers").
		Set("first_name", customer.FirstName).
		Set("last_name", customer.LastName).
		Set("email", customer.Email).
		Set("phone", customer.Phone).
		Where(sq.Eq{"id": customer.ID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	tag, err := cr.db.Exec(ctx, sql, args...)
	if err != nil {
		if pgErr, ok := err.(*pgconn.PgError); ok && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, domain.ErrConflictingData
		}
		return nil, err
	}
	if tag.RowsAffected() == 0 {
		return nil, domain.ErrDataNotFound
	}

	return customer, nil
}

func (cr *CustomerRepository) DeleteCustomer(ctx context.Context, id uint64) error {
	statement := cr.db.QueryBuilder.
		Delete("customers").
		Where(sq.Eq{"id": id})

	sql, args, err := statement.ToSql()
	if err != nil {
		return err
	}

	tag, err := cr.db.Exec(ctx, sql, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrDataNotFound
	}

	return nil
}
