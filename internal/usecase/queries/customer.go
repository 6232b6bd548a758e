package queries

import (
	"context"

	"workshop-admin-api/internal/infra"
	"workshop-admin-api/internal/pkg/errs"

	"github.com/google/uuid"
)

type ListCustomersFilters struct {
	Search          string
	Page            int
	Limit           int
	IncludeArchived bool
}

type CustomersPage struct {
	Data       []*CustomerView
	Pagination Pagination
}

type CustomerReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*CustomerView, error)
	List(ctx context.Context, filters ListCustomersFilters) ([]*CustomerView, int, error)
}

type CustomerQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*CustomerView, error)
	List(ctx context.Context, filters ListCustomersFilters) (*CustomersPage, error)
}

type customerQueriesImpl struct {
	store CustomerReadStore
}

func NewCustomerQueries(store CustomerReadStore) CustomerQueries {
	return &customerQueriesImpl{store: store}
}

func (q *customerQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*CustomerView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrCustomerNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (q *customerQueriesImpl) List(ctx context.Context, filters ListCustomersFilters) (*CustomersPage, error) {
	filters.Limit = ValidateLimit(filters.Limit)
	if filters.Page < 1 {
		filters.Page = 1
	}

	views, total, err := q.store.List(ctx, filters)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return &CustomersPage{
		Data:       views,
		Pagination: offsetPagination(filters.Page, filters.Limit, total),
	}, nil
}

func offsetPagination(page, limit, total int) Pagination {
	totalPages := (total + limit - 1) / limit
	if totalPages < 1 {
		totalPages = 1
	}
	return Pagination{
		CurrentPage:  page,
		TotalPages:   totalPages,
		TotalItems:   total,
		ItemsPerPage: limit,
	}
}
