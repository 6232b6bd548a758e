package queries

import (
	"context"

	"workshop-admin-api/internal/infra"
	"workshop-admin-api/internal/pkg/errs"

	"github.com/google/uuid"
)

type ListVehiclesFilters struct {
	// Matches license plate, brand, or model.
	Search          string
	CustomerID      *uuid.UUID
	Page            int
	Limit           int
	IncludeArchived bool
}

type VehiclesPage struct {
	Data       []*VehicleView
	Pagination Pagination
}

type VehicleReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*VehicleView, error)
	List(ctx context.Context, filters ListVehiclesFilters) ([]*VehicleView, int, error)
}

type VehicleQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*VehicleView, error)
	List(ctx context.Context, filters ListVehiclesFilters) (*VehiclesPage, error)
}

type vehicleQueriesImpl struct {
	store VehicleReadStore
}

func NewVehicleQueries(store VehicleReadStore) VehicleQueries {
	return &vehicleQueriesImpl{store: store}
}

func (q *vehicleQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*VehicleView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrVehicleNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (q *vehicleQueriesImpl) List(ctx context.Context, filters ListVehiclesFilters) (*VehiclesPage, error) {
	filters.Limit = ValidateLimit(filters.Limit)
	if filters.Page < 1 {
		filters.Page = 1
	}

	views, total, err := q.store.List(ctx, filters)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return &VehiclesPage{
		Data:       views,
		Pagination: offsetPagination(filters.Page, filters.Limit, total),
	}, nil
}
