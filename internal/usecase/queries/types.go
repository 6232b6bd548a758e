package queries

import (
	"time"

	"github.com/google/uuid"
)

// Pagination is the envelope returned with every list query. On the merged
// operations path it is synthesized, not a real cross-source page.
type Pagination struct {
	CurrentPage  int `json:"currentPage"`
	TotalPages   int `json:"totalPages"`
	TotalItems   int `json:"totalItems"`
	ItemsPerPage int `json:"itemsPerPage"`
}

const DefaultPageSize = 20

func ValidateLimit(limit int) int {
	if limit <= 0 {
		return DefaultPageSize
	}
	if limit > 200 {
		return 200
	}
	return limit
}

// CustomerView represents read-optimized customer data
type CustomerView struct {
	ID           uuid.UUID `json:"id"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	PhoneCountry string    `json:"phoneCountry"`
	CompanyName  string    `json:"companyName,omitempty"`
	Address      string    `json:"address,omitempty"`
	VehicleCount int       `json:"vehicleCount"`
	Archived     bool      `json:"archived"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// VehicleView represents read-optimized vehicle data
type VehicleView struct {
	ID            uuid.UUID `json:"id"`
	CustomerID    uuid.UUID `json:"customerId"`
	OwnerName     string    `json:"ownerName"`
	Brand         string    `json:"brand"`
	Model         string    `json:"model"`
	LicensePlate  string    `json:"licensePlate"`
	VIN           string    `json:"vin,omitempty"`
	Year          int       `json:"yearOfProduction,omitempty"`
	Mileage       int       `json:"mileage"`
	Archived      bool      `json:"archived"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// ConsentTemplateView represents a legal-document template
type ConsentTemplateView struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Version   int       `json:"version"`
	Required  bool      `json:"required"`
	CreatedAt time.Time `json:"createdAt"`
}

// ConsentGrantView represents one customer's acceptance of a template
type ConsentGrantView struct {
	ID            uuid.UUID  `json:"id"`
	TemplateID    uuid.UUID  `json:"templateId"`
	TemplateTitle string     `json:"templateTitle"`
	CustomerID    uuid.UUID  `json:"customerId"`
	Status        string     `json:"status"`
	GrantedAt     time.Time  `json:"grantedAt"`
	WithdrawnAt   *time.Time `json:"withdrawnAt,omitempty"`
}
