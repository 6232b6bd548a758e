package upstream

import (
	"workshop-admin-api/internal/domain/operation"
)

// Mapping from native records into the unified shape. Per-record defensive
// defaulting only; a malformed field never fails the whole page.

func mapVisit(dto visitDTO, currency string) operation.Operation {
	// Open visit: no completion timestamp yet, the end falls back to the
	// start and must not be assumed to be >= start downstream.
	end := dto.ScheduledDate
	if dto.CompletedDate != nil {
		end = *dto.CompletedDate
	}

	return operation.Operation{
		ID:                dto.ID,
		Type:              operation.TypeVisit,
		CustomerFirstName: dto.Customer.FirstName,
		CustomerLastName:  dto.Customer.LastName,
		CustomerPhone:     dto.Customer.Phone,
		Status:            operation.NormalizeStatus(dto.Status),
		Vehicle: &operation.Vehicle{
			Brand:        dto.Vehicle.Brand,
			Model:        dto.Vehicle.Model,
			LicensePlate: dto.Vehicle.LicensePlate,
		},
		StartDateTime: dto.ScheduledDate,
		EndDateTime:   end,
		Financials: operation.Financials{
			NetAmount:   operation.MajorUnits(dto.TotalNet),
			GrossAmount: operation.MajorUnits(dto.TotalGross),
			Currency:    currency,
		},
		LastModification: operation.Modification{
			Timestamp:   dto.UpdatedAt,
			PerformedBy: operation.SentinelActor,
		},
	}
}

func mapAppointment(dto appointmentDTO, currency string) operation.Operation {
	var vehicle *operation.Vehicle
	if dto.Vehicle != nil {
		vehicle = &operation.Vehicle{
			Brand:        dto.Vehicle.Brand,
			Model:        dto.Vehicle.Model,
			LicensePlate: dto.Vehicle.LicensePlate,
		}
	}

	return operation.Operation{
		ID:                dto.ID,
		Type:              operation.TypeReservation,
		CustomerFirstName: dto.Customer.FirstName,
		CustomerLastName:  dto.Customer.LastName,
		CustomerPhone:     dto.Customer.Phone,
		Status:            operation.NormalizeStatus(dto.Status),
		Vehicle:           vehicle,
		StartDateTime:     dto.Schedule.StartDateTime,
		EndDateTime:       dto.Schedule.EndDateTime,
		Financials: operation.Financials{
			NetAmount:   operation.MajorUnits(dto.TotalNet),
			GrossAmount: operation.MajorUnits(dto.TotalGross),
			Currency:    currency,
		},
		LastModification: operation.Modification{
			Timestamp:   dto.UpdatedAt,
			PerformedBy: operation.SentinelActor,
		},
	}
}
