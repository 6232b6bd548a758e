//go:build unit

package upstream

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"workshop-admin-api/internal/domain/operation"
	"workshop-admin-api/internal/pkg/config"
	"workshop-admin-api/internal/usecase/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testUpstreamConfig(visitsURL, appointmentsURL string) config.UpstreamConfig {
	return config.UpstreamConfig{
		VisitsBaseURL:       visitsURL,
		AppointmentsBaseURL: appointmentsURL,
		Timeout:             2 * time.Second,
		RetryMax:            0,
	}
}

func TestVisitsListOperations(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/visits", r.URL.Path)
		require.Equal(t, "2", r.URL.Query().Get("page"))
		require.Equal(t, "20", r.URL.Query().Get("size"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"data": [
				{
					"id": "v1",
					"customer": {"firstName": "Jan", "lastName": "Kowalski", "phone": "600123456", "email": "jan@example.com", "companyName": "JK Trans"},
					"vehicle": {"brand": "Skoda", "model": "Octavia", "licensePlate": "WA12345", "yearOfProduction": 2019},
					"status": "in_progress",
					"scheduledDate": "2026-01-11T09:00:00Z",
					"completedDate": null,
					"totalNet": 203252,
					"totalGross": 250000,
					"createdAt": "2026-01-10T08:00:00Z",
					"updatedAt": "2026-01-11T10:30:00Z"
				},
				{
					"id": "v2",
					"customer": {"firstName": "Anna", "lastName": "Nowak", "phone": "511222333", "email": "", "companyName": ""},
					"vehicle": {"brand": "Toyota", "model": "Corolla", "licensePlate": "KR99999", "yearOfProduction": 2021},
					"status": "completed",
					"scheduledDate": "2026-01-09T12:00:00Z",
					"completedDate": "2026-01-09T16:45:00Z",
					"totalNet": 15000,
					"totalGross": 18450,
					"createdAt": "2026-01-08T08:00:00Z",
					"updatedAt": "2026-01-09T16:45:00Z"
				}
			],
			"pagination": {"total": 42, "page": 2, "pageSize": 20, "totalPages": 3}
		}`))
	}))
	defer ts.Close()

	client := NewVisitsClient(testUpstreamConfig(ts.URL, ts.URL), config.BillingConfig{Currency: "PLN"})

	page, err := client.ListOperations(context.Background(), queries.VisitListParams{Page: 2, Size: 20})
	require.NoError(t, err)
	require.Len(t, page.Items, 2)

	open := page.Items[0]
	assert.Equal(t, "v1", open.ID)
	assert.Equal(t, operation.TypeVisit, open.Type)
	assert.Equal(t, "IN_PROGRESS", open.Status)
	assert.Equal(t, "Kowalski", open.CustomerLastName)
	require.NotNil(t, open.Vehicle)
	assert.Equal(t, "WA12345", open.Vehicle.LicensePlate)
	// Minor units divided by exactly 100
	assert.InEpsilon(t, 2032.52, open.Financials.NetAmount, 1e-9)
	assert.InEpsilon(t, 2500.00, open.Financials.GrossAmount, 1e-9)
	assert.Equal(t, "PLN", open.Financials.Currency)
	// Open visit: end falls back to start
	assert.Equal(t, open.StartDateTime, open.EndDateTime)
	assert.Equal(t, operation.SentinelActor, open.LastModification.PerformedBy)
	assert.Equal(t, time.Date(2026, 1, 11, 10, 30, 0, 0, time.UTC), open.LastModification.Timestamp)

	completed := page.Items[1]
	assert.Equal(t, time.Date(2026, 1, 9, 16, 45, 0, 0, time.UTC), completed.EndDateTime)
	assert.NotEqual(t, completed.StartDateTime, completed.EndDateTime)

	// Native envelope carried through
	require.NotNil(t, page.Pagination)
	assert.Equal(t, queries.Pagination{CurrentPage: 2, TotalPages: 3, TotalItems: 42, ItemsPerPage: 20}, *page.Pagination)
}

func TestVisitsListOperationsUpstreamError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer ts.Close()

	client := NewVisitsClient(testUpstreamConfig(ts.URL, ts.URL), config.BillingConfig{Currency: "PLN"})

	_, err := client.ListOperations(context.Background(), queries.VisitListParams{Page: 1, Size: 20})
	require.Error(t, err)

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusBadGateway, statusErr.StatusCode)
	assert.Equal(t, "visits", statusErr.Service)
}

func TestVisitsListOperationsContextCancelled(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer ts.Close()

	client := NewVisitsClient(testUpstreamConfig(ts.URL, ts.URL), config.BillingConfig{Currency: "PLN"})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := client.ListOperations(ctx, queries.VisitListParams{Page: 1, Size: 20})
	require.Error(t, err)
}
