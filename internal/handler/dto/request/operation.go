package request

import (
	"strings"
	"time"

	"workshop-admin-api/internal/domain/operation"
	"workshop-admin-api/internal/usecase/queries"
)

type ListOperationsQuery struct {
	Search        string `form:"search"`
	Page          int    `form:"page"`
	Limit         int    `form:"limit"`
	Type          string `form:"type"`
	Status        string `form:"status"`
	SortBy        string `form:"sortBy"`
	SortDirection string `form:"sortDirection"`
}

func (q ListOperationsQuery) ToFilters() (queries.ListOperationsFilters, error) {
	filters := queries.ListOperationsFilters{
		Search:        q.Search,
		Page:          q.Page,
		Limit:         q.Limit,
		Status:        q.Status,
		SortBy:        q.SortBy,
		SortDirection: q.SortDirection,
	}
	if q.Type != "" {
		t, err := operation.NewType(strings.ToUpper(q.Type))
		if err != nil {
			return queries.ListOperationsFilters{}, err
		}
		filters.Type = &t
	}
	return filters, nil
}

type RescheduleReservationRequest struct {
	StartDateTime time.Time `json:"startDateTime" binding:"required"`
	EndDateTime   time.Time `json:"endDateTime" binding:"required"`
}
