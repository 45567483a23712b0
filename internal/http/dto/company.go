package dto

import (
	"time"

	"masteria.app/panel/internal/model"
)

type UpdateCompanyRequest struct {
	Name string `json:"name" binding:"required,min=1,max=255"`
}

type CompanyResponse struct {
	ID        int64     `json:"id,string"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func ToCompanyResponse(c *model.Company) *CompanyResponse {
	if c == nil {
		return nil
	}
	return &CompanyResponse{
		ID:        c.ID,
		Name:      c.Name,
		Slug:      c.Slug,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// WebhookSecretResponse is only returned right after a rotation.
type WebhookSecretResponse struct {
	WebhookSecret string `json:"webhook_secret"`
	WebhookURL    string `json:"webhook_url"`
}
