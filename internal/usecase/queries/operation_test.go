//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"workshop-admin-api/internal/domain/operation"
	"workshop-admin-api/internal/pkg/errs"
	"workshop-admin-api/internal/usecase/queries"

	"github.com/stretchr/testify/suite"
)

type stubVisitStore struct {
	page       *queries.OperationSourcePage
	err        error
	lastParams queries.VisitListParams
	calls      int
}

func (s *stubVisitStore) ListOperations(_ context.Context, params queries.VisitListParams) (*queries.OperationSourcePage, error) {
	s.calls++
	s.lastParams = params
	if s.err != nil {
		return nil, s.err
	}
	return s.page, nil
}

type stubAppointmentStore struct {
	page       *queries.OperationSourcePage
	err        error
	lastParams queries.AppointmentListParams
	calls      int
}

func (s *stubAppointmentStore) ListOperations(_ context.Context, params queries.AppointmentListParams) (*queries.OperationSourcePage, error) {
	s.calls++
	s.lastParams = params
	if s.err != nil {
		return nil, s.err
	}
	return s.page, nil
}

type OperationQueriesTestSuite struct {
	suite.Suite
	visits       *stubVisitStore
	appointments *stubAppointmentStore
	queries      queries.OperationQueries
}

func (s *OperationQueriesTestSuite) SetupTest() {
	s.visits = &stubVisitStore{page: &queries.OperationSourcePage{}}
	s.appointments = &stubAppointmentStore{page: &queries.OperationSourcePage{}}
	s.queries = queries.NewOperationQueries(s.visits, s.appointments)
}

func TestOperationQueriesSuite(t *testing.T) {
	suite.Run(t, new(OperationQueriesTestSuite))
}

func visitOp(id string, start time.Time, plate string) operation.Operation {
	return operation.Operation{
		ID:                id,
		Type:              operation.TypeVisit,
		CustomerFirstName: "Jan",
		CustomerLastName:  "Kowalski",
		CustomerPhone:     "600100200",
		Status:            "IN_PROGRESS",
		Vehicle:           &operation.Vehicle{Brand: "Skoda", Model: "Octavia", LicensePlate: plate},
		StartDateTime:     start,
		EndDateTime:       start,
	}
}

func reservationOp(id string, start time.Time) operation.Operation {
	return operation.Operation{
		ID:                id,
		Type:              operation.TypeReservation,
		CustomerFirstName: "Anna",
		CustomerLastName:  "Nowak",
		CustomerPhone:     "511222333",
		Status:            "CREATED",
		StartDateTime:     start,
		EndDateTime:       start.Add(2 * time.Hour),
	}
}

func at(day, hour int) time.Time {
	return time.Date(2026, 1, day, hour, 0, 0, 0, time.UTC)
}

// ================================================================================
// Merged (no type filter) path
// ================================================================================

func (s *OperationQueriesTestSuite) TestListMergedCompleteness() {
	s.visits.page = &queries.OperationSourcePage{Items: []operation.Operation{
		visitOp("v1", at(11, 9), "WA11111"),
		visitOp("v2", at(13, 8), "WA22222"),
	}}
	s.appointments.page = &queries.OperationSourcePage{Items: []operation.Operation{
		reservationOp("r1", at(12, 10)),
	}}

	page, err := s.queries.List(context.Background(), queries.ListOperationsFilters{})
	s.Require().NoError(err)

	s.Len(page.Data, 3)
	seen := map[string]operation.Type{}
	for _, op := range page.Data {
		_, dup := seen[op.ID]
		s.False(dup, "id %s appears more than once", op.ID)
		seen[op.ID] = op.Type
	}
	s.Equal(operation.TypeVisit, seen["v1"])
	s.Equal(operation.TypeVisit, seen["v2"])
	s.Equal(operation.TypeReservation, seen["r1"])

	s.Equal(1, s.visits.calls)
	s.Equal(1, s.appointments.calls)

	s.Equal(queries.Pagination{CurrentPage: 1, TotalPages: 1, TotalItems: 3, ItemsPerPage: 20}, page.Pagination)
}

func (s *OperationQueriesTestSuite) TestListMergedOrdering() {
	// v1 and r1 share a start time; visits are concatenated first and the
	// sort is stable, so v1 must stay ahead of r1.
	s.visits.page = &queries.OperationSourcePage{Items: []operation.Operation{
		visitOp("v1", at(11, 9), "WA11111"),
	}}
	s.appointments.page = &queries.OperationSourcePage{Items: []operation.Operation{
		reservationOp("r1", at(11, 9)),
		reservationOp("r2", at(14, 10)),
	}}

	page, err := s.queries.List(context.Background(), queries.ListOperationsFilters{})
	s.Require().NoError(err)

	ids := []string{page.Data[0].ID, page.Data[1].ID, page.Data[2].ID}
	s.Equal([]string{"r2", "v1", "r1"}, ids)
}

func (s *OperationQueriesTestSuite) TestListMergedSearchFilter() {
	s.visits.page = &queries.OperationSourcePage{Items: []operation.Operation{
		visitOp("v1", at(11, 9), "WA11111"),
	}}
	s.appointments.page = &queries.OperationSourcePage{Items: []operation.Operation{
		reservationOp("r1", at(12, 10)),
	}}

	s.Run("no match yields empty data and zero totals", func() {
		page, err := s.queries.List(context.Background(), queries.ListOperationsFilters{Search: "zzz"})
		s.Require().NoError(err)
		s.Empty(page.Data)
		s.Equal(0, page.Pagination.TotalItems)
	})

	s.Run("empty search equals no filter", func() {
		page, err := s.queries.List(context.Background(), queries.ListOperationsFilters{Search: ""})
		s.Require().NoError(err)
		s.Len(page.Data, 2)
	})

	s.Run("matches by last name case-insensitively", func() {
		page, err := s.queries.List(context.Background(), queries.ListOperationsFilters{Search: "NOWAK"})
		s.Require().NoError(err)
		s.Require().Len(page.Data, 1)
		s.Equal("r1", page.Data[0].ID)
	})

	s.Run("matches by license plate", func() {
		page, err := s.queries.List(context.Background(), queries.ListOperationsFilters{Search: "wa111"})
		s.Require().NoError(err)
		s.Require().Len(page.Data, 1)
		s.Equal("v1", page.Data[0].ID)
	})
}

func (s *OperationQueriesTestSuite) TestListMergedStatusFilter() {
	s.visits.page = &queries.OperationSourcePage{Items: []operation.Operation{
		visitOp("v1", at(11, 9), "WA11111"),
	}}
	s.appointments.page = &queries.OperationSourcePage{Items: []operation.Operation{
		reservationOp("r1", at(12, 10)),
	}}

	page, err := s.queries.List(context.Background(), queries.ListOperationsFilters{Status: "created"})
	s.Require().NoError(err)
	s.Require().Len(page.Data, 1)
	s.Equal("r1", page.Data[0].ID)
}

func (s *OperationQueriesTestSuite) TestListMergedAllOrNothing() {
	s.visits.err = errors.New("connection refused")
	s.appointments.page = &queries.OperationSourcePage{Items: []operation.Operation{
		reservationOp("r1", at(12, 10)),
	}}

	_, err := s.queries.List(context.Background(), queries.ListOperationsFilters{})
	s.Require().Error(err)
	s.True(errs.Is(err, errs.ErrUpstreamFailure))
}

// Mirrors the dashboard scenario: an open visit and a later reservation.
func (s *OperationQueriesTestSuite) TestListMergedEndToEndScenario() {
	visit := operation.Operation{
		ID:            "v1",
		Type:          operation.TypeVisit,
		Status:        "IN_PROGRESS",
		Vehicle:       &operation.Vehicle{Brand: "Skoda", Model: "Octavia", LicensePlate: "WA11111"},
		StartDateTime: time.Date(2026, 1, 11, 9, 0, 0, 0, time.UTC),
		// Open visit: no completion yet, end falls back to start
		EndDateTime: time.Date(2026, 1, 11, 9, 0, 0, 0, time.UTC),
		Financials:  operation.Financials{NetAmount: 2032.52, GrossAmount: 2500, Currency: "PLN"},
	}
	reservation := operation.Operation{
		ID:            "r1",
		Type:          operation.TypeReservation,
		Status:        "CREATED",
		StartDateTime: time.Date(2026, 1, 12, 10, 0, 0, 0, time.UTC),
		EndDateTime:   time.Date(2026, 1, 12, 12, 0, 0, 0, time.UTC),
		Financials:    operation.Financials{NetAmount: 1000, GrossAmount: 1230, Currency: "PLN"},
	}
	s.visits.page = &queries.OperationSourcePage{Items: []operation.Operation{visit}}
	s.appointments.page = &queries.OperationSourcePage{Items: []operation.Operation{reservation}}

	page, err := s.queries.List(context.Background(), queries.ListOperationsFilters{})
	s.Require().NoError(err)
	s.Require().Len(page.Data, 2)

	s.Equal("r1", page.Data[0].ID)
	s.Equal("v1", page.Data[1].ID)

	got := page.Data[1]
	s.InEpsilon(2032.52, got.Financials.NetAmount, 1e-9)
	s.Equal(got.StartDateTime, got.EndDateTime)
	s.Equal("IN_PROGRESS", got.Status)
}

// ================================================================================
// Single-source paths
// ================================================================================

func (s *OperationQueriesTestSuite) TestListVisitsOnly() {
	native := queries.Pagination{CurrentPage: 2, TotalPages: 5, TotalItems: 93, ItemsPerPage: 20}
	s.visits.page = &queries.OperationSourcePage{
		Items:      []operation.Operation{visitOp("v1", at(11, 9), "WA11111")},
		Pagination: &native,
	}

	typ := operation.TypeVisit
	page, err := s.queries.List(context.Background(), queries.ListOperationsFilters{Type: &typ, Page: 2, Limit: 20})
	s.Require().NoError(err)

	s.Equal(0, s.appointments.calls)
	s.Equal(queries.VisitListParams{Page: 2, Size: 20}, s.visits.lastParams)
	// Native envelope passes through unmodified
	s.Equal(native, page.Pagination)
	s.Len(page.Data, 1)
}

func (s *OperationQueriesTestSuite) TestListVisitsOnlyFiltersLocally() {
	s.visits.page = &queries.OperationSourcePage{Items: []operation.Operation{
		visitOp("v1", at(11, 9), "WA11111"),
		visitOp("v2", at(12, 9), "KR99999"),
	}}

	typ := operation.TypeVisit
	page, err := s.queries.List(context.Background(), queries.ListOperationsFilters{Type: &typ, Search: "kr999"})
	s.Require().NoError(err)
	s.Require().Len(page.Data, 1)
	s.Equal("v2", page.Data[0].ID)
	// No native envelope on the stub: synthesized single page
	s.Equal(queries.Pagination{CurrentPage: 1, TotalPages: 1, TotalItems: 1, ItemsPerPage: 20}, page.Pagination)
}

func (s *OperationQueriesTestSuite) TestListReservationsOnly() {
	s.appointments.page = &queries.OperationSourcePage{Items: []operation.Operation{
		reservationOp("r1", at(12, 10)),
	}}

	typ := operation.TypeReservation
	page, err := s.queries.List(context.Background(), queries.ListOperationsFilters{
		Type:          &typ,
		Status:        "created",
		SortBy:        queries.SortByStartDateTime,
		SortDirection: queries.SortDirectionDesc,
	})
	s.Require().NoError(err)

	s.Equal(0, s.visits.calls)
	// Status is pushed down to the appointments upstream, normalized
	s.Equal("CREATED", s.appointments.lastParams.Status)
	s.Equal(queries.SortByStartDateTime, s.appointments.lastParams.SortBy)
	s.Len(page.Data, 1)
}

func (s *OperationQueriesTestSuite) TestListSingleSourceFailure() {
	s.appointments.err = errors.New("upstream 503")

	typ := operation.TypeReservation
	_, err := s.queries.List(context.Background(), queries.ListOperationsFilters{Type: &typ})
	s.Require().Error(err)
	s.True(errs.Is(err, errs.ErrUpstreamFailure))

	// The other source's health is irrelevant on this path
	s.Equal(0, s.visits.calls)
}

func (s *OperationQueriesTestSuite) TestListDefaultsPageAndLimit() {
	typ := operation.TypeVisit
	_, err := s.queries.List(context.Background(), queries.ListOperationsFilters{Type: &typ, Page: -3, Limit: 0})
	s.Require().NoError(err)
	s.Equal(queries.VisitListParams{Page: 1, Size: 20}, s.visits.lastParams)
}
