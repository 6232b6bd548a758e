package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"workshop-admin-api/internal/domain/operation"
	"workshop-admin-api/internal/pkg/config"
	"workshop-admin-api/internal/usecase/queries"
)

// visitDTO mirrors the subset of the visits service response the dashboard
// consumes.
type visitDTO struct {
	ID         string `json:"id"`
	CustomerID string `json:"customerId"`
	VehicleID  string `json:"vehicleId"`
	Customer   struct {
		FirstName   string `json:"firstName"`
		LastName    string `json:"lastName"`
		Phone       string `json:"phone"`
		Email       string `json:"email"`
		CompanyName string `json:"companyName"`
	} `json:"customer"`
	Vehicle struct {
		Brand            string `json:"brand"`
		Model            string `json:"model"`
		LicensePlate     string `json:"licensePlate"`
		YearOfProduction int    `json:"yearOfProduction"`
	} `json:"vehicle"`
	Status        string     `json:"status"`
	ScheduledDate time.Time  `json:"scheduledDate"`
	CompletedDate *time.Time `json:"completedDate"`
	TotalNet      int64      `json:"totalNet"`
	TotalGross    int64      `json:"totalGross"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

type visitsEnvelope struct {
	Data       []visitDTO `json:"data"`
	Pagination struct {
		Total      int `json:"total"`
		Page       int `json:"page"`
		PageSize   int `json:"pageSize"`
		TotalPages int `json:"totalPages"`
	} `json:"pagination"`
}

// VisitsClient reads the visits service. The endpoint accepts page/size only;
// it has no server-side search.
type VisitsClient struct {
	baseURL    string
	httpClient *http.Client
	currency   string
}

func NewVisitsClient(cfg config.UpstreamConfig, billing config.BillingConfig) *VisitsClient {
	return &VisitsClient{
		baseURL:    normalizeBaseURL(cfg.VisitsBaseURL),
		httpClient: newHTTPClient(cfg),
		currency:   billing.Currency,
	}
}

func (c *VisitsClient) ListOperations(ctx context.Context, params queries.VisitListParams) (*queries.OperationSourcePage, error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(params.Page))
	q.Set("size", strconv.Itoa(params.Size))

	reqURL := c.baseURL + "/visits?" + q.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch visits: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, responseError("visits", resp)
	}

	var envelope visitsEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("decode visits response: %w", err)
	}

	items := make([]operation.Operation, len(envelope.Data))
	for i, dto := range envelope.Data {
		items[i] = mapVisit(dto, c.currency)
	}

	return &queries.OperationSourcePage{
		Items: items,
		Pagination: &queries.Pagination{
			CurrentPage:  envelope.Pagination.Page,
			TotalPages:   envelope.Pagination.TotalPages,
			TotalItems:   envelope.Pagination.Total,
			ItemsPerPage: envelope.Pagination.PageSize,
		},
	}, nil
}
