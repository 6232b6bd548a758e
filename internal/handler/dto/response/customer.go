package response

import (
	"time"

	"workshop-admin-api/internal/domain/phone"
	"workshop-admin-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type CustomerResponse struct {
	ID             uuid.UUID `json:"id"`
	FirstName      string    `json:"firstName"`
	LastName       string    `json:"lastName"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	PhoneCountry   string    `json:"phoneCountry"`
	PhoneFormatted string    `json:"phoneFormatted,omitempty"`
	CompanyName    string    `json:"companyName,omitempty"`
	Address        string    `json:"address,omitempty"`
	VehicleCount   int       `json:"vehicleCount"`
	Archived       bool      `json:"archived"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

type CustomersListResponse struct {
	Data       []*CustomerResponse `json:"data"`
	Pagination queries.Pagination  `json:"pagination"`
}

func FromCustomerView(view *queries.CustomerView) *CustomerResponse {
	var resp CustomerResponse
	_ = copier.Copy(&resp, view)
	resp.PhoneFormatted = formatPhone(view.Phone, view.PhoneCountry)
	return &resp
}

func formatPhone(raw, countryCode string) string {
	country, err := phone.CountryByCode(countryCode)
	if err != nil {
		return raw
	}
	return phone.Format(raw, country)
}

func FromCustomersPage(page *queries.CustomersPage) CustomersListResponse {
	data := make([]*CustomerResponse, len(page.Data))
	for i, view := range page.Data {
		data[i] = FromCustomerView(view)
	}
	return CustomersListResponse{
		Data:       data,
		Pagination: page.Pagination,
	}
}
