package dto

import (
	"time"

	"masteria.app/panel/internal/model"
)

type CampaignRequest struct {
	Name         *string `json:"name,omitempty" binding:"omitempty,min=1,max=255"`
	Message      *string `json:"message,omitempty" binding:"omitempty,max=4096"`
	ConnectionID *int64  `json:"connection_id,omitempty,string"`
}

type ScheduleCampaignRequest struct {
	ScheduledAt time.Time `json:"scheduled_at" binding:"required"`
}

type CampaignResponse struct {
	ID             int64                `json:"id,string"`
	ConnectionID   *int64               `json:"connection_id,omitempty,string"`
	Name           string               `json:"name"`
	Message        string               `json:"message"`
	Status         model.CampaignStatus `json:"status"`
	ScheduledAt    *time.Time           `json:"scheduled_at,omitempty"`
	SentCount      int32                `json:"sent_count"`
	DeliveredCount int32                `json:"delivered_count"`
	ReadCount      int32                `json:"read_count"`
	FailedCount    int32                `json:"failed_count"`
	CreatedAt      time.Time            `json:"created_at"`
	UpdatedAt      time.Time            `json:"updated_at"`
}

func ToCampaignResponse(c *model.Campaign) *CampaignResponse {
	return &CampaignResponse{
		ID:             c.ID,
		ConnectionID:   c.ConnectionID,
		Name:           c.Name,
		Message:        c.Message,
		Status:         c.Status,
		ScheduledAt:    c.ScheduledAt,
		SentCount:      c.SentCount,
		DeliveredCount: c.DeliveredCount,
		ReadCount:      c.ReadCount,
		FailedCount:    c.FailedCount,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}

func ToCampaignResponses(campaigns []model.Campaign) []*CampaignResponse {
	out := make([]*CampaignResponse, 0, len(campaigns))
	for i := range campaigns {
		out = append(out, ToCampaignResponse(&campaigns[i]))
	}
	return out
}
