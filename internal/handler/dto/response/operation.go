package response

import (
	"time"

	"workshop-admin-api/internal/domain/operation"
	"workshop-admin-api/internal/usecase/queries"
)

type VehicleSummary struct {
	Brand        string `json:"brand"`
	Model        string `json:"model"`
	LicensePlate string `json:"licensePlate"`
}

type FinancialsResponse struct {
	NetAmount   float64 `json:"netAmount"`
	GrossAmount float64 `json:"grossAmount"`
	Currency    string  `json:"currency"`
}

type ActorResponse struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type ModificationResponse struct {
	Timestamp   time.Time     `json:"timestamp"`
	PerformedBy ActorResponse `json:"performedBy"`
}

type OperationResponse struct {
	ID                string               `json:"id"`
	Type              string               `json:"type"`
	CustomerFirstName string               `json:"customerFirstName"`
	CustomerLastName  string               `json:"customerLastName"`
	CustomerPhone     string               `json:"customerPhone"`
	Status            string               `json:"status"`
	Vehicle           *VehicleSummary      `json:"vehicle"`
	StartDateTime     time.Time            `json:"startDateTime"`
	EndDateTime       time.Time            `json:"endDateTime"`
	Financials        FinancialsResponse   `json:"financials"`
	LastModification  ModificationResponse `json:"lastModification"`
}

type OperationsListResponse struct {
	Data       []OperationResponse `json:"data"`
	Pagination queries.Pagination  `json:"pagination"`
}

func FromOperation(op operation.Operation) OperationResponse {
	resp := OperationResponse{
		ID:                op.ID,
		Type:              op.Type.String(),
		CustomerFirstName: op.CustomerFirstName,
		CustomerLastName:  op.CustomerLastName,
		CustomerPhone:     op.CustomerPhone,
		Status:            op.Status,
		StartDateTime:     op.StartDateTime,
		EndDateTime:       op.EndDateTime,
		Financials: FinancialsResponse{
			NetAmount:   op.Financials.NetAmount,
			GrossAmount: op.Financials.GrossAmount,
			Currency:    op.Financials.Currency,
		},
		LastModification: ModificationResponse{
			Timestamp: op.LastModification.Timestamp,
			PerformedBy: ActorResponse{
				FirstName: op.LastModification.PerformedBy.FirstName,
				LastName:  op.LastModification.PerformedBy.LastName,
			},
		},
	}
	if op.Vehicle != nil {
		resp.Vehicle = &VehicleSummary{
			Brand:        op.Vehicle.Brand,
			Model:        op.Vehicle.Model,
			LicensePlate: op.Vehicle.LicensePlate,
		}
	}
	return resp
}

func FromOperationsPage(page *queries.OperationsPage) OperationsListResponse {
	data := make([]OperationResponse, len(page.Data))
	for i, op := range page.Data {
		data[i] = FromOperation(op)
	}
	return OperationsListResponse{
		Data:       data,
		Pagination: page.Pagination,
	}
}
