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

type VehicleReadStore struct {
	pool *pgxpool.Pool
}

func NewVehicleReadStore(pool *pgxpool.Pool) *VehicleReadStore {
	return &VehicleReadStore{pool: pool}
}

var _ queries.VehicleReadStore = (*VehicleReadStore)(nil)

const vehicleViewColumns = `
	v.id, v.customer_id, c.first_name || ' ' || c.last_name AS owner_name,
	v.brand, v.model, v.license_plate, v.vin, v.year_of_production, v.mileage,
	v.archived, v.created_at, v.updated_at`

func (s *VehicleReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.VehicleView, error) {
	query := `SELECT` + vehicleViewColumns + `
		FROM vehicles v JOIN customers c ON c.id = v.customer_id
		WHERE v.id = $1`

	view, err := scanVehicle(s.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("vehicle not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find vehicle by ID", err)
	}
	return view, nil
}

func (s *VehicleReadStore) List(ctx context.Context, filters queries.ListVehiclesFilters) ([]*queries.VehicleView, int, error) {
	where := `WHERE ($1 = '' OR v.license_plate ILIKE '%' || $1 || '%'
		OR v.brand ILIKE '%' || $1 || '%' OR v.model ILIKE '%' || $1 || '%')
		AND ($2::uuid IS NULL OR v.customer_id = $2)
		AND ($3 OR NOT v.archived)`

	var total int
	countQuery := `SELECT count(*) FROM vehicles v ` + where
	if err := s.pool.QueryRow(ctx, countQuery, filters.Search, filters.CustomerID, filters.IncludeArchived).Scan(&total); err != nil {
		return nil, 0, infra.WrapRepoErr("failed to count vehicles", err)
	}

	listQuery := `SELECT` + vehicleViewColumns + `
		FROM vehicles v JOIN customers c ON c.id = v.customer_id ` + where +
		` ORDER BY v.created_at DESC LIMIT $4 OFFSET $5`

	offset := (filters.Page - 1) * filters.Limit
	rows, err := s.pool.Query(ctx, listQuery, filters.Search, filters.CustomerID, filters.IncludeArchived, filters.Limit, offset)
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to list vehicles", err)
	}
	defer rows.Close()

	views := make([]*queries.VehicleView, 0, filters.Limit)
	for rows.Next() {
		view, err := scanVehicle(rows)
		if err != nil {
			return nil, 0, infra.WrapRepoErr("failed to scan vehicle row", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, infra.WrapRepoErr("failed to iterate vehicle rows", err)
	}
	return views, total, nil
}

func scanVehicle(row pgx.Row) (*queries.VehicleView, error) {
	var v queries.VehicleView
	err := row.Scan(
		&v.ID, &v.CustomerID, &v.OwnerName, &v.Brand, &v.Model, &v.LicensePlate,
		&v.VIN, &v.Year, &v.Mileage, &v.Archived, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
