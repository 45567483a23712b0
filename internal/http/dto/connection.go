package dto

import (
	"time"

	"masteria.app/panel/internal/model"
)

type CreateConnectionRequest struct {
	Name               string               `json:"name" binding:"required,min=1,max=255"`
	ConnectionType     model.ConnectionType `json:"connection_type" binding:"required,oneof=meta_api baileys"`
	PhoneNumber        string               `json:"phone_number" binding:"required,max=32"`
	PhoneNumberID      *string              `json:"phone_number_id,omitempty"`
	WabaID             *string              `json:"waba_id,omitempty"`
	AccessToken        *string              `json:"access_token,omitempty"`
	WebhookVerifyToken *string              `json:"webhook_verify_token,omitempty"`
}

type UpdateConnectionRequest struct {
	Name               *string `json:"name,omitempty" binding:"omitempty,min=1,max=255"`
	PhoneNumber        *string `json:"phone_number,omitempty" binding:"omitempty,max=32"`
	PhoneNumberID      *string `json:"phone_number_id,omitempty"`
	WabaID             *string `json:"waba_id,omitempty"`
	AccessToken        *string `json:"access_token,omitempty"`
	WebhookVerifyToken *string `json:"webhook_verify_token,omitempty"`
}

type ConnectionResponse struct {
	ID             int64                `json:"id,string"`
	Name           string               `json:"name"`
	ConnectionType model.ConnectionType `json:"connection_type"`
	PhoneNumber    string               `json:"phone_number"`
	PhoneNumberID  *string              `json:"phone_number_id,omitempty"`
	WabaID         *string              `json:"waba_id,omitempty"`
	HasAccessToken bool                 `json:"has_access_token"`
	IsActive       bool                 `json:"is_active"`
	CreatedAt      time.Time            `json:"created_at"`
	UpdatedAt      time.Time            `json:"updated_at"`
}

func ToConnectionResponse(c *model.Connection) *ConnectionResponse {
	return &ConnectionResponse{
		ID:             c.ID,
		Name:           c.Name,
		ConnectionType: c.ConnectionType,
		PhoneNumber:    c.PhoneNumber,
		PhoneNumberID:  c.PhoneNumberID,
		WabaID:         c.WabaID,
		HasAccessToken: c.HasAccessToken(),
		IsActive:       c.IsActive,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}

func ToConnectionResponses(conns []model.Connection) []*ConnectionResponse {
	out := make([]*ConnectionResponse, 0, len(conns))
	for i := range conns {
		out = append(out, ToConnectionResponse(&conns[i]))
	}
	return out
}
