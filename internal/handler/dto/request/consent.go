package request

import (
	"workshop-admin-api/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateConsentTemplateRequest struct {
	Title    string `json:"title" binding:"required"`
	Content  string `json:"content" binding:"required"`
	Version  int    `json:"version,omitempty"`
	Required bool   `json:"required,omitempty"`
}

func (r CreateConsentTemplateRequest) ToParams() commands.CreateConsentTemplateParams {
	return commands.CreateConsentTemplateParams{
		Title:    r.Title,
		Content:  r.Content,
		Version:  r.Version,
		Required: r.Required,
	}
}

type GrantConsentRequest struct {
	TemplateID uuid.UUID `json:"templateId" binding:"required"`
	CustomerID uuid.UUID `json:"customerId" binding:"required"`
}
