package automation

import (
	"errors"
	"fmt"
	"strings"

	"masteria.app/panel/internal/model"
)

var ErrInvalidRule = errors.New("invalid automation rule")

const (
	maxConditions = 20
	maxActions    = 10
)

// Validate checks a rule before it is stored.
func Validate(rule *model.AutomationRule) error {
	if strings.TrimSpace(rule.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidRule)
	}
	if strings.TrimSpace(rule.TriggerEvent) == "" {
		return fmt.Errorf("%w: trigger_event is required", ErrInvalidRule)
	}
	if len(rule.Conditions) > maxConditions {
		return fmt.Errorf("%w: at most %d conditions", ErrInvalidRule, maxConditions)
	}
	if len(rule.Actions) == 0 || len(rule.Actions) > maxActions {
		return fmt.Errorf("%w: between 1 and %d actions required", ErrInvalidRule, maxActions)
	}

	for i, c := range rule.Conditions {
		if strings.TrimSpace(c.Field) == "" {
			return fmt.Errorf("%w: condition %d has no field", ErrInvalidRule, i)
		}
		if !c.Operator.Valid() {
			return fmt.Errorf("%w: condition %d has unknown operator %q", ErrInvalidRule, i, c.Operator)
		}
		if c.Operator != model.OperatorExists && c.Value == nil {
			return fmt.Errorf("%w: condition %d needs a value", ErrInvalidRule, i)
		}
	}

	for i, a := range rule.Actions {
		if !a.Type.Valid() {
			return fmt.Errorf("%w: action %d has unknown type %q", ErrInvalidRule, i, a.Type)
		}
		if err := requireParams(a); err != nil {
			return fmt.Errorf("%w: action %d: %v", ErrInvalidRule, i, err)
		}
	}

	return nil
}

func requireParams(a model.Action) error {
	var required []string
	switch a.Type {
	case model.ActionWebhook:
		required = []string{"url"}
	case model.ActionSendMessage:
		required = []string{"message"}
	case model.ActionAddTag:
		required = []string{"tag"}
	}
	for _, key := range required {
		s, _ := a.Params[key].(string)
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s requires params.%s", a.Type, key)
		}
	}
	if a.Type == model.ActionWebhook {
		u, _ := a.Params["url"].(string)
		if !strings.HasPrefix(u, "https://") && !strings.HasPrefix(u, "http://") {
			return errors.New("webhook url must be http or https")
		}
	}
	return nil
}

// Decision is the outcome of running one rule against one event.
type Decision struct {
	Rule    model.AutomationRule
	Matched bool
	Actions []model.Action
}

// Decide evaluates every rule against payload. Rules that do not match are
// returned with Matched=false so callers can log skips.
func Decide(rules []model.AutomationRule, payload map[string]any) []Decision {
	decisions := make([]Decision, 0, len(rules))
	for _, rule := range rules {
		d := Decision{Rule: rule}
		if rule.IsActive && Matches(rule.Conditions, payload) {
			d.Matched = true
			d.Actions = rule.Actions
		}
		decisions = append(decisions, d)
	}
	return decisions
}
