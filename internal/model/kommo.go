package model

import "time"

type KommoEvent struct {
	ID              int64
	CompanyID       int64
	EventType       string
	Payload         []byte
	DedupeKey       string
	ProcessedAt     *time.Time
	ProcessingError *string
	CreatedAt       time.Time
}

// Trigger is the automation trigger fired by this event.
func (e *KommoEvent) Trigger() string {
	return "kommo." + e.EventType
}
