package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"masteria.app/panel/common/id"
	"masteria.app/panel/internal/automation"
	"masteria.app/panel/internal/model"
	"masteria.app/panel/internal/store"
)

const (
	defaultLogLimit = 50
	maxLogLimit     = 200
)

type AutomationService interface {
	List(ctx context.Context, companyID int64) ([]model.AutomationRule, error)
	Get(ctx context.Context, companyID, id int64) (*model.AutomationRule, error)
	Create(ctx context.Context, companyID int64, def automation.RuleDefinition, active bool) (*model.AutomationRule, error)
	Update(ctx context.Context, companyID, id int64, def automation.RuleDefinition) (*model.AutomationRule, error)
	SetActive(ctx context.Context, companyID, id int64, active bool) (*model.AutomationRule, error)
	Delete(ctx context.Context, companyID, id int64) error
	Logs(ctx context.Context, companyID, ruleID int64, limit int32) ([]model.AutomationLog, error)
	Schema() (json.RawMessage, error)

	// Evaluate runs the company's active rules for trigger against payload
	// and records one log per rule.
	Evaluate(ctx context.Context, companyID int64, trigger string, payload map[string]any) ([]model.AutomationLog, error)
}

type automationService struct {
	rules store.AutomationRuleStore
	logs  store.AutomationLogStore
}

func NewAutomationService(rules store.AutomationRuleStore, logs store.AutomationLogStore) AutomationService {
	return &automationService{rules: rules, logs: logs}
}

func (s *automationService) List(ctx context.Context, companyID int64) ([]model.AutomationRule, error) {
	rules, err := s.rules.List(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("listing automation rules: %w", err)
	}
	return rules, nil
}

func (s *automationService) Get(ctx context.Context, companyID, ruleID int64) (*model.AutomationRule, error) {
	rule, err := s.rules.GetByID(ctx, companyID, ruleID)
	if err != nil {
		return nil, fmt.Errorf("getting automation rule: %w", err)
	}
	return rule, nil
}

func (s *automationService) Create(ctx context.Context, companyID int64, def automation.RuleDefinition, active bool) (*model.AutomationRule, error) {
	rule := &model.AutomationRule{
		ID:        id.New(),
		CompanyID: companyID,
		IsActive:  active,
	}
	applyDefinition(rule, def)

	if err := validateRule(rule); err != nil {
		return nil, err
	}
	if err := s.rules.Create(ctx, rule); err != nil {
		return nil, fmt.Errorf("creating automation rule: %w", err)
	}

	slog.InfoContext(ctx, "automation rule created", "rule_id", rule.ID, "trigger", rule.TriggerEvent)
	return rule, nil
}

func (s *automationService) Update(ctx context.Context, companyID, ruleID int64, def automation.RuleDefinition) (*model.AutomationRule, error) {
	rule, err := s.rules.GetByID(ctx, companyID, ruleID)
	if err != nil {
		return nil, fmt.Errorf("getting automation rule: %w", err)
	}

	applyDefinition(rule, def)
	if err := validateRule(rule); err != nil {
		return nil, err
	}
	if err := s.rules.Update(ctx, rule); err != nil {
		return nil, fmt.Errorf("updating automation rule: %w", err)
	}
	return rule, nil
}

func (s *automationService) SetActive(ctx context.Context, companyID, ruleID int64, active bool) (*model.AutomationRule, error) {
	rule, err := s.rules.SetActive(ctx, companyID, ruleID, active)
	if err != nil {
		return nil, fmt.Errorf("setting automation rule active: %w", err)
	}
	return rule, nil
}

func (s *automationService) Delete(ctx context.Context, companyID, ruleID int64) error {
	if err := s.rules.Delete(ctx, companyID, ruleID); err != nil {
		return fmt.Errorf("deleting automation rule: %w", err)
	}
	return nil
}

func (s *automationService) Logs(ctx context.Context, companyID, ruleID int64, limit int32) ([]model.AutomationLog, error) {
	if limit <= 0 {
		limit = defaultLogLimit
	}
	limit = min(limit, maxLogLimit)

	logs, err := s.logs.ListByRule(ctx, companyID, ruleID, limit)
	if err != nil {
		return nil, fmt.Errorf("listing automation logs: %w", err)
	}
	return logs, nil
}

func (s *automationService) Schema() (json.RawMessage, error) {
	return automation.Schema()
}

func (s *automationService) Evaluate(ctx context.Context, companyID int64, trigger string, payload map[string]any) ([]model.AutomationLog, error) {
	rules, err := s.rules.ListActiveByTrigger(ctx, companyID, trigger)
	if err != nil {
		return nil, fmt.Errorf("listing rules for %s: %w", trigger, err)
	}
	if len(rules) == 0 {
		slog.DebugContext(ctx, "no automation rules for trigger", "trigger", trigger)
		return nil, nil
	}

	decisions := automation.Decide(rules, payload)
	logs := make([]model.AutomationLog, 0, len(decisions))
	for _, d := range decisions {
		entry := model.AutomationLog{
			ID:        id.New(),
			RuleID:    d.Rule.ID,
			CompanyID: companyID,
			EventType: trigger,
			Status:    model.AutomationLogSkipped,
		}
		if d.Matched {
			// Delivery belongs to the external agent service; the panel
			// only records what it handed over.
			entry.Status = model.AutomationLogDispatched
			details, err := json.Marshal(map[string]any{"actions": d.Actions})
			if err != nil {
				return nil, fmt.Errorf("encoding actions of rule %d: %w", d.Rule.ID, err)
			}
			detailsStr := string(details)
			entry.Details = &detailsStr
		}

		if err := s.logs.Create(ctx, &entry); err != nil {
			return nil, fmt.Errorf("recording automation log: %w", err)
		}
		logs = append(logs, entry)
	}

	slog.InfoContext(ctx, "automation rules evaluated", "trigger", trigger, "rules", len(rules))
	return logs, nil
}

func applyDefinition(rule *model.AutomationRule, def automation.RuleDefinition) {
	rule.Name = def.Name
	rule.TriggerEvent = def.TriggerEvent
	rule.Conditions = def.Conditions
	rule.Actions = def.Actions
}

func validateRule(rule *model.AutomationRule) error {
	if err := automation.Validate(rule); err != nil {
		if errors.Is(err, automation.ErrInvalidRule) {
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		return err
	}
	return nil
}
