//go:build unit || e2e

package builder

import (
	reqdto "workshop-admin-api/internal/handler/dto/request"
)

type CustomerBuilder struct {
	req reqdto.CreateCustomerRequest
}

func NewCustomerBuilder() *CustomerBuilder {
	return &CustomerBuilder{
		req: reqdto.CreateCustomerRequest{
			FirstName:    "Anna",
			LastName:     "Nowak",
			Email:        "anna.nowak@example.com",
			Phone:        "600123456",
			PhoneCountry: "PL",
		},
	}
}

func (b *CustomerBuilder) WithName(firstName, lastName string) *CustomerBuilder {
	b.req.FirstName = firstName
	b.req.LastName = lastName
	return b
}

func (b *CustomerBuilder) WithEmail(email string) *CustomerBuilder {
	b.req.Email = email
	return b
}

func (b *CustomerBuilder) BuildCreateRequestDTO() reqdto.CreateCustomerRequest {
	return b.req
}
