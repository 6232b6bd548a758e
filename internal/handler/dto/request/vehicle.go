package request

import (
	"workshop-admin-api/internal/pkg/patch"
	"workshop-admin-api/internal/usecase/commands"
	"workshop-admin-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type CreateVehicleRequest struct {
	CustomerID   uuid.UUID `json:"customerId" binding:"required"`
	Brand        string    `json:"brand" binding:"required"`
	Model        string    `json:"model" binding:"required"`
	LicensePlate string    `json:"licensePlate" binding:"required"`
	VIN          string    `json:"vin,omitempty"`
	Year         int       `json:"yearOfProduction,omitempty"`
	Mileage      int       `json:"mileage,omitempty"`
}

func (r CreateVehicleRequest) ToParams() commands.CreateVehicleParams {
	return commands.CreateVehicleParams{
		CustomerID:   r.CustomerID,
		Brand:        r.Brand,
		Model:        r.Model,
		LicensePlate: r.LicensePlate,
		VIN:          r.VIN,
		Year:         r.Year,
		Mileage:      r.Mileage,
	}
}

type UpdateVehicleRequest struct {
	Brand        *string `json:"brand,omitempty"`
	Model        *string `json:"model,omitempty"`
	LicensePlate *string `json:"licensePlate,omitempty"`
	VIN          *string `json:"vin,omitempty"`
	Year         *int    `json:"yearOfProduction,omitempty"`
	Mileage      *int    `json:"mileage,omitempty"`
}

func (r UpdateVehicleRequest) ToPatch() commands.VehiclePatch {
	return commands.VehiclePatch{
		Brand:        r.Brand,
		Model:        r.Model,
		LicensePlate: r.LicensePlate,
		VIN:          r.VIN,
		Year:         r.Year,
		Mileage:      r.Mileage,
	}
}

type ListVehiclesQuery struct {
	Search          string     `form:"search"`
	CustomerID      *uuid.UUID `form:"customerId"`
	Page            *int       `form:"page"`
	Limit           *int       `form:"limit"`
	IncludeArchived bool       `form:"includeArchived"`
}

func (q ListVehiclesQuery) ToFilters() queries.ListVehiclesFilters {
	return queries.ListVehiclesFilters{
		Search:          q.Search,
		CustomerID:      q.CustomerID,
		Page:            patch.Coalesce(q.Page, 1),
		Limit:           patch.Coalesce(q.Limit, queries.DefaultPageSize),
		IncludeArchived: q.IncludeArchived,
	}
}
