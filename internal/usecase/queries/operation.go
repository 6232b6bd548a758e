package queries

import (
	"context"

	"workshop-admin-api/internal/domain/operation"
	"workshop-admin-api/internal/pkg/errs"

	"golang.org/x/sync/errgroup"
)

const (
	SortByStartDateTime = "startDateTime"
	SortDirectionDesc   = "desc"

	// Page size used when both sources are fetched for merging. The merged
	// result is reported as a single page, so each source is read wide enough
	// to cover realistic daily volumes.
	mergeFetchLimit = 1000
)

// ListOperationsFilters carries the dashboard filter state for one request.
type ListOperationsFilters struct {
	// Case-insensitive substring over last name, first name, phone, plate.
	Search string
	Page   int
	Limit  int
	// Restricts to exactly one source; nil fetches and merges both.
	Type   *operation.Type
	Status string
	// Only startDateTime/desc is honored on the merge path; other values are
	// accepted but ignored there.
	SortBy        string
	SortDirection string
}

type OperationsPage struct {
	Data       []operation.Operation
	Pagination Pagination
}

// VisitListParams are the native parameters of the visits upstream. It has no
// server-side search; filtering happens locally.
type VisitListParams struct {
	Page int
	Size int
}

// AppointmentListParams are the native parameters of the appointments
// upstream. Search is intentionally absent: the dashboard filters locally so
// both sources behave identically.
type AppointmentListParams struct {
	Page          int
	Limit         int
	Status        string
	SortBy        string
	SortDirection string
}

// OperationSourcePage is one upstream's records already mapped into the
// unified shape. Pagination is nil when the source has no native envelope.
type OperationSourcePage struct {
	Items      []operation.Operation
	Pagination *Pagination
}

type VisitReadStore interface {
	ListOperations(ctx context.Context, params VisitListParams) (*OperationSourcePage, error)
}

type AppointmentReadStore interface {
	ListOperations(ctx context.Context, params AppointmentListParams) (*OperationSourcePage, error)
}

type OperationQueries interface {
	List(ctx context.Context, filters ListOperationsFilters) (*OperationsPage, error)
}

type operationQueriesImpl struct {
	visits       VisitReadStore
	appointments AppointmentReadStore
}

func NewOperationQueries(visits VisitReadStore, appointments AppointmentReadStore) OperationQueries {
	return &operationQueriesImpl{
		visits:       visits,
		appointments: appointments,
	}
}

// List produces one page of unified operations. With a type filter it reads a
// single source and passes its native pagination through; without one it
// fetches both sources concurrently (all-or-nothing), merges, and reports the
// combined result as a single synthesized page.
func (q *operationQueriesImpl) List(ctx context.Context, filters ListOperationsFilters) (*OperationsPage, error) {
	limit := ValidateLimit(filters.Limit)
	page := filters.Page
	if page < 1 {
		page = 1
	}

	if filters.Type != nil {
		switch *filters.Type {
		case operation.TypeVisit:
			return q.listVisits(ctx, filters, page, limit)
		case operation.TypeReservation:
			return q.listReservations(ctx, filters, page, limit)
		default:
			return nil, errs.Mark(operation.ErrInvalidType, errs.ErrDomainValidation)
		}
	}

	return q.listMerged(ctx, filters)
}

func (q *operationQueriesImpl) listVisits(ctx context.Context, filters ListOperationsFilters, page, limit int) (*OperationsPage, error) {
	src, err := q.visits.ListOperations(ctx, VisitListParams{Page: page, Size: limit})
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "failed to list visits"), errs.ErrUpstreamFailure)
	}

	// The visits backend ignores search and has no status parameter, so both
	// are applied locally on the fetched page.
	items := filterBySearch(src.Items, filters.Search)
	items = filterByStatus(items, filters.Status)

	return &OperationsPage{
		Data:       items,
		Pagination: normalizePagination(src.Pagination, len(items)),
	}, nil
}

func (q *operationQueriesImpl) listReservations(ctx context.Context, filters ListOperationsFilters, page, limit int) (*OperationsPage, error) {
	params := AppointmentListParams{
		Page:          page,
		Limit:         limit,
		Status:        operation.NormalizeStatus(filters.Status),
		SortBy:        filters.SortBy,
		SortDirection: filters.SortDirection,
	}

	src, err := q.appointments.ListOperations(ctx, params)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "failed to list reservations"), errs.ErrUpstreamFailure)
	}

	items := filterBySearch(src.Items, filters.Search)

	return &OperationsPage{
		Data:       items,
		Pagination: normalizePagination(src.Pagination, len(items)),
	}, nil
}

// listMerged implements the dual-source path: concurrent fetch, concatenate
// visits before reservations, local search and status filters, stable sort by
// start time descending. The envelope reports everything as one page; real
// cross-source pagination is deliberately not attempted.
func (q *operationQueriesImpl) listMerged(ctx context.Context, filters ListOperationsFilters) (*OperationsPage, error) {
	var (
		visitsPage       *OperationSourcePage
		appointmentsPage *OperationSourcePage
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		visitsPage, err = q.visits.ListOperations(gctx, VisitListParams{Page: 1, Size: mergeFetchLimit})
		return errs.Wrap(err, "failed to list visits")
	})
	g.Go(func() error {
		var err error
		appointmentsPage, err = q.appointments.ListOperations(gctx, AppointmentListParams{
			Page:          1,
			Limit:         mergeFetchLimit,
			SortBy:        SortByStartDateTime,
			SortDirection: SortDirectionDesc,
		})
		return errs.Wrap(err, "failed to list reservations")
	})
	// All-or-nothing join: either source failing fails the aggregation, no
	// partial results are returned.
	if err := g.Wait(); err != nil {
		return nil, errs.Mark(err, errs.ErrUpstreamFailure)
	}

	merged := make([]operation.Operation, 0, len(visitsPage.Items)+len(appointmentsPage.Items))
	merged = append(merged, visitsPage.Items...)
	merged = append(merged, appointmentsPage.Items...)

	merged = filterBySearch(merged, filters.Search)
	merged = filterByStatus(merged, filters.Status)
	operation.SortByStartDesc(merged)

	return &OperationsPage{
		Data: merged,
		Pagination: Pagination{
			CurrentPage:  1,
			TotalPages:   1,
			TotalItems:   len(merged),
			ItemsPerPage: DefaultPageSize,
		},
	}, nil
}

func filterBySearch(ops []operation.Operation, search string) []operation.Operation {
	if search == "" {
		return ops
	}
	filtered := make([]operation.Operation, 0, len(ops))
	for _, op := range ops {
		if op.MatchesSearch(search) {
			filtered = append(filtered, op)
		}
	}
	return filtered
}

func filterByStatus(ops []operation.Operation, status string) []operation.Operation {
	if status == "" {
		return ops
	}
	want := operation.NormalizeStatus(status)
	filtered := make([]operation.Operation, 0, len(ops))
	for _, op := range ops {
		if op.Status == want {
			filtered = append(filtered, op)
		}
	}
	return filtered
}

// normalizePagination keeps the native envelope when the source provided one
// and synthesizes a single-page envelope otherwise.
func normalizePagination(native *Pagination, itemCount int) Pagination {
	if native != nil {
		return *native
	}
	return Pagination{
		CurrentPage:  1,
		TotalPages:   1,
		TotalItems:   itemCount,
		ItemsPerPage: DefaultPageSize,
	}
}
