package dto

import (
	"time"

	"masteria.app/panel/internal/automation"
	"masteria.app/panel/internal/model"
)

type AutomationRuleRequest struct {
	automation.RuleDefinition
	IsActive *bool `json:"is_active,omitempty"`
}

type AutomationRuleResponse struct {
	ID           int64             `json:"id,string"`
	Name         string            `json:"name"`
	TriggerEvent string            `json:"trigger_event"`
	Conditions   []model.Condition `json:"conditions"`
	Actions      []model.Action    `json:"actions"`
	IsActive     bool              `json:"is_active"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
}

func ToAutomationRuleResponse(r *model.AutomationRule) *AutomationRuleResponse {
	conditions := r.Conditions
	if conditions == nil {
		conditions = []model.Condition{}
	}
	return &AutomationRuleResponse{
		ID:           r.ID,
		Name:         r.Name,
		TriggerEvent: r.TriggerEvent,
		Conditions:   conditions,
		Actions:      r.Actions,
		IsActive:     r.IsActive,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

func ToAutomationRuleResponses(rules []model.AutomationRule) []*AutomationRuleResponse {
	out := make([]*AutomationRuleResponse, 0, len(rules))
	for i := range rules {
		out = append(out, ToAutomationRuleResponse(&rules[i]))
	}
	return out
}

type AutomationLogResponse struct {
	ID        int64                     `json:"id,string"`
	RuleID    int64                     `json:"rule_id,string"`
	EventType string                    `json:"event_type"`
	Status    model.AutomationLogStatus `json:"status"`
	Details   *string                   `json:"details,omitempty"`
	CreatedAt time.Time                 `json:"created_at"`
}

func ToAutomationLogResponses(logs []model.AutomationLog) []AutomationLogResponse {
	out := make([]AutomationLogResponse, 0, len(logs))
	for _, l := range logs {
		out = append(out, AutomationLogResponse{
			ID:        l.ID,
			RuleID:    l.RuleID,
			EventType: l.EventType,
			Status:    l.Status,
			Details:   l.Details,
			CreatedAt: l.CreatedAt,
		})
	}
	return out
}
