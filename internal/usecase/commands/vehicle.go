package commands

import (
	"context"

	"workshop-admin-api/internal/domain/vehicle"
	"workshop-admin-api/internal/infra"
	"workshop-admin-api/internal/pkg/errs"

	"github.com/google/uuid"
)

type CreateVehicleParams struct {
	CustomerID   uuid.UUID
	Brand        string
	Model        string
	LicensePlate string
	VIN          string
	Year         int
	Mileage      int
}

// VehiclePatch carries partial updates; nil fields are left unchanged.
type VehiclePatch struct {
	Brand        *string
	Model        *string
	LicensePlate *string
	VIN          *string
	Year         *int
	Mileage      *int
}

type VehicleRepository interface {
	Create(ctx context.Context, v *vehicle.Vehicle) error
	Update(ctx context.Context, id uuid.UUID, patch VehiclePatch) error
	Archive(ctx context.Context, id uuid.UUID) error
}

type VehicleCommands interface {
	Create(ctx context.Context, params CreateVehicleParams) (uuid.UUID, error)
	Update(ctx context.Context, id uuid.UUID, patch VehiclePatch) error
	Archive(ctx context.Context, id uuid.UUID) error
}

type vehicleCommandsImpl struct {
	repo VehicleRepository
}

func NewVehicleCommands(repo VehicleRepository) VehicleCommands {
	return &vehicleCommandsImpl{repo: repo}
}

func (c *vehicleCommandsImpl) Create(ctx context.Context, params CreateVehicleParams) (uuid.UUID, error) {
	entity, err := vehicle.NewVehicle(
		params.CustomerID,
		params.Brand,
		params.Model,
		params.LicensePlate,
		params.VIN,
		params.Year,
		params.Mileage,
	)
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	if err := c.repo.Create(ctx, entity); err != nil {
		switch {
		case infra.IsKind(err, infra.KindDuplicateKey):
			return uuid.Nil, errs.Mark(err, errs.ErrDuplicateLicensePlate)
		case infra.IsKind(err, infra.KindForeignKeyViolated):
			return uuid.Nil, errs.Mark(err, errs.ErrCustomerNotFound)
		default:
			return uuid.Nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
	}

	return entity.ID(), nil
}

func (c *vehicleCommandsImpl) Update(ctx context.Context, id uuid.UUID, patch VehiclePatch) error {
	if err := c.repo.Update(ctx, id, patch); err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			return errs.Mark(err, errs.ErrVehicleNotFound)
		case infra.IsKind(err, infra.KindDuplicateKey):
			return errs.Mark(err, errs.ErrDuplicateLicensePlate)
		default:
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
	}
	return nil
}

func (c *vehicleCommandsImpl) Archive(ctx context.Context, id uuid.UUID) error {
	if err := c.repo.Archive(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, errs.ErrVehicleNotFound)
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}
