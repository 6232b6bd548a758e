// Package repository implements the write side over Postgres.
package repository

import (
	"context"
	"errors"

	"workshop-admin-api/internal/domain/customer"
	"workshop-admin-api/internal/infra"
	"workshop-admin-api/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

func repoErrKind(err error) infra.RepositoryErrorKind {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation:
			return infra.KindDuplicateKey
		case pgerrcode.ForeignKeyViolation:
			return infra.KindForeignKeyViolated
		}
	}
	return infra.KindDBFailure
}

type CustomerRepository struct {
	pool *pgxpool.Pool
}

func NewCustomerRepository(pool *pgxpool.Pool) *CustomerRepository {
	return &CustomerRepository{pool: pool}
}

var _ commands.CustomerRepository = (*CustomerRepository)(nil)

func (r *CustomerRepository) Create(ctx context.Context, c *customer.Customer) error {
	const query = `
		INSERT INTO customers (id, first_name, last_name, email, phone, phone_country, company_name, address, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $9)`

	_, err := r.pool.Exec(ctx, query,
		c.ID(), c.FirstName(), c.LastName(), c.Email(), c.Phone(), c.PhoneCountry(),
		c.CompanyName(), c.Address(), c.CreatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to insert customer", err, repoErrKind(err))
	}
	return nil
}

func (r *CustomerRepository) Update(ctx context.Context, id uuid.UUID, patch commands.CustomerPatch) error {
	const query = `
		UPDATE customers SET
			first_name = COALESCE($2, first_name),
			last_name = COALESCE($3, last_name),
			email = COALESCE($4, email),
			phone = COALESCE($5, phone),
			phone_country = COALESCE($6, phone_country),
			company_name = COALESCE($7, company_name),
			address = COALESCE($8, address),
			updated_at = now()
		WHERE id = $1 AND NOT archived`

	tag, err := r.pool.Exec(ctx, query,
		id, patch.FirstName, patch.LastName, patch.Email, patch.Phone,
		patch.PhoneCountry, patch.CompanyName, patch.Address,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update customer", err, repoErrKind(err))
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("customer not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *CustomerRepository) GetPhone(ctx context.Context, id uuid.UUID) (string, string, error) {
	const query = `SELECT phone, phone_country FROM customers WHERE id = $1 AND NOT archived`

	var phone, country string
	if err := r.pool.QueryRow(ctx, query, id).Scan(&phone, &country); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", "", infra.WrapRepoErr("customer not found", err, infra.KindNotFound)
		}
		return "", "", infra.WrapRepoErr("failed to load customer phone", err, repoErrKind(err))
	}
	return phone, country, nil
}

func (r *CustomerRepository) Archive(ctx context.Context, id uuid.UUID) error {
	const query = `UPDATE customers SET archived = TRUE, updated_at = now() WHERE id = $1 AND NOT archived`

	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return infra.WrapRepoErr("failed to archive customer", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("customer not found", nil, infra.KindNotFound)
	}
	return nil
}
