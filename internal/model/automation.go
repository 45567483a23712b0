package model

import "time"

type ConditionOperator string

const (
	OperatorEquals    ConditionOperator = "equals"
	OperatorNotEquals ConditionOperator = "not_equals"
	OperatorContains  ConditionOperator = "contains"
	OperatorExists    ConditionOperator = "exists"
)

func (o ConditionOperator) Valid() bool {
	switch o {
	case OperatorEquals, OperatorNotEquals, OperatorContains, OperatorExists:
		return true
	}
	return false
}

type ActionType string

const (
	ActionNotify      ActionType = "notify"
	ActionAddTag      ActionType = "add_tag"
	ActionSendMessage ActionType = "send_message"
	ActionWebhook     ActionType = "webhook"
)

func (t ActionType) Valid() bool {
	switch t {
	case ActionNotify, ActionAddTag, ActionSendMessage, ActionWebhook:
		return true
	}
	return false
}

// Condition matches a dotted path in the event payload, e.g. "lead.status_id".
type Condition struct {
	Field    string            `json:"field" jsonschema:"minLength=1,description=Dotted path into the event payload"`
	Operator ConditionOperator `json:"operator" jsonschema:"enum=equals,enum=not_equals,enum=contains,enum=exists"`
	Value    any               `json:"value,omitempty"`
}

type Action struct {
	Type   ActionType     `json:"type" jsonschema:"enum=notify,enum=add_tag,enum=send_message,enum=webhook"`
	Params map[string]any `json:"params,omitempty"`
}

type AutomationRule struct {
	ID           int64       `json:"id"`
	CompanyID    int64       `json:"company_id"`
	Name         string      `json:"name"`
	TriggerEvent string      `json:"trigger_event"`
	Conditions   []Condition `json:"conditions"`
	Actions      []Action    `json:"actions"`
	IsActive     bool        `json:"is_active"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

type AutomationLogStatus string

const (
	AutomationLogDispatched AutomationLogStatus = "dispatched"
	AutomationLogSkipped    AutomationLogStatus = "skipped"
	AutomationLogFailed     AutomationLogStatus = "failed"
)

type AutomationLog struct {
	ID        int64               `json:"id"`
	RuleID    int64               `json:"rule_id"`
	CompanyID int64               `json:"company_id"`
	EventType string              `json:"event_type"`
	Status    AutomationLogStatus `json:"status"`
	Details   *string             `json:"details,omitempty"`
	CreatedAt time.Time           `json:"created_at"`
}
