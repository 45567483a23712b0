package model

import "time"

type CampaignStatus string

const (
	CampaignStatusDraft     CampaignStatus = "draft"
	CampaignStatusScheduled CampaignStatus = "scheduled"
	CampaignStatusSending   CampaignStatus = "sending"
	CampaignStatusCompleted CampaignStatus = "completed"
	CampaignStatusCancelled CampaignStatus = "cancelled"
)

// campaignTransitions lists the moves the panel may make. sending and
// completed are set by the external dispatcher, never by the panel.
var campaignTransitions = map[CampaignStatus][]CampaignStatus{
	CampaignStatusDraft:     {CampaignStatusScheduled, CampaignStatusCancelled},
	CampaignStatusScheduled: {CampaignStatusCancelled},
}

func (s CampaignStatus) CanTransitionTo(next CampaignStatus) bool {
	for _, allowed := range campaignTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

type Campaign struct {
	ID             int64          `json:"id"`
	CompanyID      int64          `json:"company_id"`
	ConnectionID   *int64         `json:"connection_id,omitempty"`
	Name           string         `json:"name"`
	Message        string         `json:"message"`
	Status         CampaignStatus `json:"status"`
	ScheduledAt    *time.Time     `json:"scheduled_at,omitempty"`
	SentCount      int32          `json:"sent_count"`
	DeliveredCount int32          `json:"delivered_count"`
	ReadCount      int32          `json:"read_count"`
	FailedCount    int32          `json:"failed_count"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

func (c *Campaign) IsEditable() bool {
	return c.Status == CampaignStatusDraft
}

// CampaignTotals aggregates delivery counters over a company's campaigns.
type CampaignTotals struct {
	Campaigns int64 `json:"campaigns"`
	Sent      int64 `json:"sent"`
	Delivered int64 `json:"delivered"`
	Read      int64 `json:"read"`
	Failed    int64 `json:"failed"`
}

type CampaignReport struct {
	Totals       CampaignTotals           `json:"totals"`
	ByStatus     map[CampaignStatus]int64 `json:"by_status"`
	DeliveryRate float64                  `json:"delivery_rate"`
	ReadRate     float64                  `json:"read_rate"`
}
