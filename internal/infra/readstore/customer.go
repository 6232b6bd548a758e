// Package readstore implements the read side over Postgres.
package readstore

import (
	"context"
	"errors"

	"workshop-admin-api/internal/infra"
	"workshop-admin-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CustomerReadStore struct {
	pool *pgxpool.Pool
}

func NewCustomerReadStore(pool *pgxpool.Pool) *CustomerReadStore {
	return &CustomerReadStore{pool: pool}
}

var _ queries.CustomerReadStore = (*CustomerReadStore)(nil)

const customerViewColumns = `
	c.id, c.first_name, c.last_name, c.email, c.phone, c.phone_country,
	c.company_name, c.address, c.archived, c.created_at, c.updated_at,
	(SELECT count(*) FROM vehicles v WHERE v.customer_id = c.id AND NOT v.archived) AS vehicle_count`

func (s *CustomerReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.CustomerView, error) {
	query := `SELECT` + customerViewColumns + ` FROM customers c WHERE c.id = $1`

	view, err := scanCustomer(s.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("customer not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find customer by ID", err)
	}
	return view, nil
}

func (s *CustomerReadStore) List(ctx context.Context, filters queries.ListCustomersFilters) ([]*queries.CustomerView, int, error) {
	where := `WHERE ($1 = '' OR c.last_name ILIKE '%' || $1 || '%' OR c.first_name ILIKE '%' || $1 || '%'
		OR c.phone ILIKE '%' || $1 || '%' OR c.company_name ILIKE '%' || $1 || '%')
		AND ($2 OR NOT c.archived)`

	var total int
	countQuery := `SELECT count(*) FROM customers c ` + where
	if err := s.pool.QueryRow(ctx, countQuery, filters.Search, filters.IncludeArchived).Scan(&total); err != nil {
		return nil, 0, infra.WrapRepoErr("failed to count customers", err)
	}

	listQuery := `SELECT` + customerViewColumns + ` FROM customers c ` + where +
		` ORDER BY lower(c.last_name), lower(c.first_name) LIMIT $3 OFFSET $4`

	offset := (filters.Page - 1) * filters.Limit
	rows, err := s.pool.Query(ctx, listQuery, filters.Search, filters.IncludeArchived, filters.Limit, offset)
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to list customers", err)
	}
	defer rows.Close()

	views := make([]*queries.CustomerView, 0, filters.Limit)
	for rows.Next() {
		view, err := scanCustomer(rows)
		if err != nil {
			return nil, 0, infra.WrapRepoErr("failed to scan customer row", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, infra.WrapRepoErr("failed to iterate customer rows", err)
	}
	return views, total, nil
}

func scanCustomer(row pgx.Row) (*queries.CustomerView, error) {
	var v queries.CustomerView
	err := row.Scan(
		&v.ID, &v.FirstName, &v.LastName, &v.Email, &v.Phone, &v.PhoneCountry,
		&v.CompanyName, &v.Address, &v.Archived, &v.CreatedAt, &v.UpdatedAt,
		&v.VehicleCount,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
