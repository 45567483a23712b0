package model

import "time"

// ConnectionType is how the panel talks to a WhatsApp number.
type ConnectionType string

const (
	ConnectionTypeMetaAPI ConnectionType = "meta_api"
	ConnectionTypeBaileys ConnectionType = "baileys"
)

func (t ConnectionType) Valid() bool {
	return t == ConnectionTypeMetaAPI || t == ConnectionTypeBaileys
}

type Connection struct {
	ID                 int64          `json:"id"`
	CompanyID          int64          `json:"company_id"`
	Name               string         `json:"name"`
	ConnectionType     ConnectionType `json:"connection_type"`
	PhoneNumber        string         `json:"phone_number"`
	PhoneNumberID      *string        `json:"phone_number_id,omitempty"`
	WabaID             *string        `json:"waba_id,omitempty"`
	AccessToken        *string        `json:"-"` // never expose tokens in API
	WebhookVerifyToken *string        `json:"-"`
	IsActive           bool           `json:"is_active"`
	CreatedAt          time.Time      `json:"created_at"`
	UpdatedAt          time.Time      `json:"updated_at"`
}

func (c *Connection) HasAccessToken() bool {
	return c.AccessToken != nil && *c.AccessToken != ""
}
