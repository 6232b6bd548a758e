//go:build unit || e2e

package builder

import (
	"time"

	"workshop-admin-api/internal/domain/operation"
)

// OperationBuilder assembles unified operation records for tests.
type OperationBuilder struct {
	op operation.Operation
}

func NewOperationBuilder(id string, opType operation.Type) *OperationBuilder {
	start := time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC)
	return &OperationBuilder{
		op: operation.Operation{
			ID:                id,
			Type:              opType,
			CustomerFirstName: "Jan",
			CustomerLastName:  "Kowalski",
			CustomerPhone:     "600123456",
			Status:            "CREATED",
			StartDateTime:     start,
			EndDateTime:       start.Add(2 * time.Hour),
			Financials: operation.Financials{
				NetAmount:   1000,
				GrossAmount: 1230,
				Currency:    "PLN",
			},
			LastModification: operation.Modification{
				Timestamp:   start,
				PerformedBy: operation.SentinelActor,
			},
		},
	}
}

func (b *OperationBuilder) WithCustomer(firstName, lastName, phone string) *OperationBuilder {
	b.op.CustomerFirstName = firstName
	b.op.CustomerLastName = lastName
	b.op.CustomerPhone = phone
	return b
}

func (b *OperationBuilder) WithStatus(status string) *OperationBuilder {
	b.op.Status = status
	return b
}

func (b *OperationBuilder) WithVehicle(brand, model, plate string) *OperationBuilder {
	b.op.Vehicle = &operation.Vehicle{Brand: brand, Model: model, LicensePlate: plate}
	return b
}

func (b *OperationBuilder) WithStart(start time.Time) *OperationBuilder {
	b.op.StartDateTime = start
	b.op.EndDateTime = start.Add(2 * time.Hour)
	return b
}

func (b *OperationBuilder) Build() operation.Operation {
	return b.op
}
