package response

import (
	"time"

	"workshop-admin-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type VehicleResponse struct {
	ID           uuid.UUID `json:"id"`
	CustomerID   uuid.UUID `json:"customerId"`
	OwnerName    string    `json:"ownerName"`
	Brand        string    `json:"brand"`
	Model        string    `json:"model"`
	LicensePlate string    `json:"licensePlate"`
	VIN          string    `json:"vin,omitempty"`
	Year         int       `json:"yearOfProduction,omitempty"`
	Mileage      int       `json:"mileage"`
	Archived     bool      `json:"archived"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type VehiclesListResponse struct {
	Data       []*VehicleResponse `json:"data"`
	Pagination queries.Pagination `json:"pagination"`
}

func FromVehicleView(view *queries.VehicleView) *VehicleResponse {
	var resp VehicleResponse
	_ = copier.Copy(&resp, view)
	return &resp
}

func FromVehiclesPage(page *queries.VehiclesPage) VehiclesListResponse {
	data := make([]*VehicleResponse, len(page.Data))
	for i, view := range page.Data {
		data[i] = FromVehicleView(view)
	}
	return VehiclesListResponse{
		Data:       data,
		Pagination: page.Pagination,
	}
}
