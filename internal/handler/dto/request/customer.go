package request

import (
	"workshop-admin-api/internal/pkg/patch"
	"workshop-admin-api/internal/usecase/commands"
	"workshop-admin-api/internal/usecase/queries"
)

type CreateCustomerRequest struct {
	FirstName    string `json:"firstName" binding:"required"`
	LastName     string `json:"lastName" binding:"required"`
	Email        string `json:"email,omitempty"`
	Phone        string `json:"phone,omitempty"`
	PhoneCountry string `json:"phoneCountry,omitempty"`
	CompanyName  string `json:"companyName,omitempty"`
	Address      string `json:"address,omitempty"`
}

func (r CreateCustomerRequest) ToParams() commands.CreateCustomerParams {
	return commands.CreateCustomerParams{
		FirstName:    r.FirstName,
		LastName:     r.LastName,
		Email:        r.Email,
		Phone:        r.Phone,
		PhoneCountry: r.PhoneCountry,
		CompanyName:  r.CompanyName,
		Address:      r.Address,
	}
}

type UpdateCustomerRequest struct {
	FirstName    *string `json:"firstName,omitempty"`
	LastName     *string `json:"lastName,omitempty"`
	Email        *string `json:"email,omitempty"`
	Phone        *string `json:"phone,omitempty"`
	PhoneCountry *string `json:"phoneCountry,omitempty"`
	CompanyName  *string `json:"companyName,omitempty"`
	Address      *string `json:"address,omitempty"`
}

func (r UpdateCustomerRequest) ToPatch() commands.CustomerPatch {
	return commands.CustomerPatch{
		FirstName:    r.FirstName,
		LastName:     r.LastName,
		Email:        r.Email,
		Phone:        r.Phone,
		PhoneCountry: r.PhoneCountry,
		CompanyName:  r.CompanyName,
		Address:      r.Address,
	}
}

type ListCustomersQuery struct {
	Search          string `form:"search"`
	Page            *int   `form:"page"`
	Limit           *int   `form:"limit"`
	IncludeArchived bool   `form:"includeArchived"`
}

func (q ListCustomersQuery) ToFilters() queries.ListCustomersFilters {
	return queries.ListCustomersFilters{
		Search:          q.Search,
		Page:            patch.Coalesce(q.Page, 1),
		Limit:           patch.Coalesce(q.Limit, queries.DefaultPageSize),
		IncludeArchived: q.IncludeArchived,
	}
}
