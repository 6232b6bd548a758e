package upstream

import (
	"bytes"
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

// appointmentDTO mirrors the subset of the appointments service response the
// dashboard consumes. Vehicle is null when no vehicle was linked.
type appointmentDTO struct {
	ID         string `json:"id"`
	CustomerID string `json:"customerId"`
	VehicleID  string `json:"vehicleId"`
	Customer   struct {
		FirstName string `json:"firstName"`
		LastName  string `json:"lastName"`
		Phone     string `json:"phone"`
		Email     string `json:"email"`
	} `json:"customer"`
	Vehicle *struct {
		Brand        string `json:"brand"`
		Model        string `json:"model"`
		Year         int    `json:"year"`
		LicensePlate string `json:"licensePlate"`
	} `json:"vehicle"`
	Schedule struct {
		IsAllDay      bool      `json:"isAllDay"`
		StartDateTime time.Time `json:"startDateTime"`
		EndDateTime   time.Time `json:"endDateTime"`
	} `json:"schedule"`
	Status     string    `json:"status"`
	TotalNet   int64     `json:"totalNet"`
	TotalGross int64     `json:"totalGross"`
	TotalVat   int64     `json:"totalVat"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

type scheduleBody struct {
	StartDateTime time.Time `json:"startDateTime"`
	EndDateTime   time.Time `json:"endDateTime"`
}

// AppointmentsClient talks to the appointments (reservations) service. It
// also hosts the operation soft-delete, which lives on the same backend.
type AppointmentsClient struct {
	baseURL    string
	httpClient *http.Client
	currency   string
}

func NewAppointmentsClient(cfg config.UpstreamConfig, billing config.BillingConfig) *AppointmentsClient {
	return &AppointmentsClient{
		baseURL:    normalizeBaseURL(cfg.AppointmentsBaseURL),
		httpClient: newHTTPClient(cfg),
		currency:   billing.Currency,
	}
}

// ListOperations fetches appointments. The endpoint returns a bare array with
// no pagination envelope, so Pagination is nil and the caller synthesizes one.
func (c *AppointmentsClient) ListOperations(ctx context.Context, params queries.AppointmentListParams) (*queries.OperationSourcePage, error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(params.Page))
	q.Set("limit", strconv.Itoa(params.Limit))
	if params.Status != "" {
		q.Set("status", params.Status)
	}
	if params.SortBy != "" {
		q.Set("sortBy", params.SortBy)
	}
	if params.SortDirection != "" {
		q.Set("sortDirection", params.SortDirection)
	}

	reqURL := c.baseURL + "/v1/appointments?" + q.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch appointments: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, responseError("appointments", resp)
	}

	var dtos []appointmentDTO
	if err := json.NewDecoder(resp.Body).Decode(&dtos); err != nil {
		return nil, fmt.Errorf("decode appointments response: %w", err)
	}

	items := make([]operation.Operation, len(dtos))
	for i, dto := range dtos {
		items[i] = mapAppointment(dto, c.currency)
	}

	return &queries.OperationSourcePage{Items: items}, nil
}

// UpdateSchedule moves an appointment to a new window.
func (c *AppointmentsClient) UpdateSchedule(ctx context.Context, id string, startDateTime, endDateTime time.Time) error {
	body := struct {
		Schedule scheduleBody `json:"schedule"`
	}{
		Schedule: scheduleBody{StartDateTime: startDateTime, EndDateTime: endDateTime},
	}
	return c.patchAppointment(ctx, id, body)
}

// Cancel marks an appointment CANCELLED.
func (c *AppointmentsClient) Cancel(ctx context.Context, id string) error {
	body := struct {
		Status string `json:"status"`
	}{
		Status: "CANCELLED",
	}
	return c.patchAppointment(ctx, id, body)
}

func (c *AppointmentsClient) patchAppointment(ctx context.Context, id string, body any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode request body: %w", err)
	}

	reqURL := c.baseURL + "/v1/appointments/" + url.PathEscape(id)
	req, err := http.NewRequestWithContext(ctx, http.MethodPatch, reqURL, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("patch appointment: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		return responseError("appointments", resp)
	}
	return nil
}

// DeleteOperation soft-deletes an operation on the backend.
func (c *AppointmentsClient) DeleteOperation(ctx context.Context, id string) error {
	reqURL := c.baseURL + "/operations/" + url.PathEscape(id)
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, reqURL, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("delete operation: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		return responseError("appointments", resp)
	}
	return nil
}
