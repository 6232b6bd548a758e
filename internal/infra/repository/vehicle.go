package repository

import (
	"context"

	"workshop-admin-api/internal/domain/vehicle"
	"workshop-admin-api/internal/infra"
	"workshop-admin-api/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type VehicleRepository struct {
	pool *pgxpool.Pool
}

func NewVehicleRepository(pool *pgxpool.Pool) *VehicleRepository {
	return &VehicleRepository{pool: pool}
}

var _ commands.VehicleRepository = (*VehicleRepository)(nil)

func (r *VehicleRepository) Create(ctx context.Context, v *vehicle.Vehicle) error {
	const query = `
		INSERT INTO vehicles (id, customer_id, brand, model, license_plate, vin, year_of_production, mileage, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $9)`

	_, err := r.pool.Exec(ctx, query,
		v.ID(), v.CustomerID(), v.Brand(), v.Model(), v.LicensePlate(), v.VIN(),
		v.Year(), v.Mileage(), v.CreatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to insert vehicle", err, repoErrKind(err))
	}
	return nil
}

func (r *VehicleRepository) Update(ctx context.Context, id uuid.UUID, patch commands.VehiclePatch) error {
	const query = `
		UPDATE vehicles SET
			brand = COALESCE($2, brand),
			model = COALESCE($3, model),
			license_plate = COALESCE($4, license_plate),
			vin = COALESCE($5, vin),
			year_of_production = COALESCE($6, year_of_production),
			mileage = COALESCE($7, mileage),
			updated_at = now()
		WHERE id = $1 AND NOT archived`

	tag, err := r.pool.Exec(ctx, query,
		id, patch.Brand, patch.Model, patch.LicensePlate, patch.VIN, patch.Year, patch.Mileage,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update vehicle", err, repoErrKind(err))
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("vehicle not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *VehicleRepository) Archive(ctx context.Context, id uuid.UUID) error {
	const query = `UPDATE vehicles SET archived = TRUE, updated_at = now() WHERE id = $1 AND NOT archived`

	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return infra.WrapRepoErr("failed to archive vehicle", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("vehicle not found", nil, infra.KindNotFound)
	}
	return nil
}
