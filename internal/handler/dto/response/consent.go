package response

import (
	"time"

	"workshop-admin-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ConsentTemplateResponse struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Version   int       `json:"version"`
	Required  bool      `json:"required"`
	CreatedAt time.Time `json:"createdAt"`
}

type ConsentGrantResponse struct {
	ID            uuid.UUID  `json:"id"`
	TemplateID    uuid.UUID  `json:"templateId"`
	TemplateTitle string     `json:"templateTitle"`
	CustomerID    uuid.UUID  `json:"customerId"`
	Status        string     `json:"status"`
	GrantedAt     time.Time  `json:"grantedAt"`
	WithdrawnAt   *time.Time `json:"withdrawnAt,omitempty"`
}

func FromConsentTemplateView(view *queries.ConsentTemplateView) *ConsentTemplateResponse {
	var resp ConsentTemplateResponse
	_ = copier.Copy(&resp, view)
	return &resp
}

func FromConsentTemplateList(views []*queries.ConsentTemplateView) []*ConsentTemplateResponse {
	resp := make([]*ConsentTemplateResponse, len(views))
	for i, view := range views {
		resp[i] = FromConsentTemplateView(view)
	}
	return resp
}

func FromConsentGrantView(view *queries.ConsentGrantView) *ConsentGrantResponse {
	var resp ConsentGrantResponse
	_ = copier.Copy(&resp, view)
	return &resp
}

func FromConsentGrantList(views []*queries.ConsentGrantView) []*ConsentGrantResponse {
	resp := make([]*ConsentGrantResponse, len(views))
	for i, view := range views {
		resp[i] = FromConsentGrantView(view)
	}
	return resp
}
