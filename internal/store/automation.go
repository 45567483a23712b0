package store

import (
	"context"
	"encoding/json"
	"fmt"

	"masteria.app/panel/core/db/sqlc"
	"masteria.app/panel/internal/model"
)

type automationRuleStore struct {
	queries *sqlc.Queries
}

func newAutomationRuleStore(queries *sqlc.Queries) AutomationRuleStore {
	return &automationRuleStore{queries: queries}
}

func (s *automationRuleStore) GetByID(ctx context.Context, companyID, id int64) (*model.AutomationRule, error) {
	row, err := s.queries.GetAutomationRule(ctx, sqlc.GetAutomationRuleParams{ID: id, CompanyID: companyID})
	if err != nil {
		return nil, mapErr(err)
	}
	return toAutomationRuleModel(row)
}

func (s *automationRuleStore) List(ctx context.Context, companyID int64) ([]model.AutomationRule, error) {
	rows, err := s.queries.ListAutomationRulesByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	return toAutomationRuleModels(rows)
}

func (s *automationRuleStore) ListActiveByTrigger(ctx context.Context, companyID int64, trigger string) ([]model.AutomationRule, error) {
	rows, err := s.queries.ListActiveAutomationRulesByTrigger(ctx, sqlc.ListActiveAutomationRulesByTriggerParams{
		CompanyID:    companyID,
		TriggerEvent: trigger,
	})
	if err != nil {
		return nil, err
	}
	return toAutomationRuleModels(rows)
}

func (s *automationRuleStore) Create(ctx context.Context, rule *model.AutomationRule) error {
	conditions, actions, err := marshalRuleBody(rule)
	if err != nil {
		return err
	}
	row, err := s.queries.CreateAutomationRule(ctx, sqlc.CreateAutomationRuleParams{
		ID:           rule.ID,
		CompanyID:    rule.CompanyID,
		Name:         rule.Name,
		TriggerEvent: rule.TriggerEvent,
		Conditions:   conditions,
		Actions:      actions,
		IsActive:     rule.IsActive,
	})
	if err != nil {
		return mapErr(err)
	}
	created, err := toAutomationRuleModel(row)
	if err != nil {
		return err
	}
	*rule = *created
	return nil
}

func (s *automationRuleStore) Update(ctx context.Context, rule *model.AutomationRule) error {
	conditions, actions, err := marshalRuleBody(rule)
	if err != nil {
		return err
	}
	row, err := s.queries.UpdateAutomationRule(ctx, sqlc.UpdateAutomationRuleParams{
		ID:           rule.ID,
		CompanyID:    rule.CompanyID,
		Name:         rule.Name,
		TriggerEvent: rule.TriggerEvent,
		Conditions:   conditions,
		Actions:      actions,
	})
	if err != nil {
		return mapErr(err)
	}
	updated, err := toAutomationRuleModel(row)
	if err != nil {
		return err
	}
	*rule = *updated
	return nil
}

func (s *automationRuleStore) SetActive(ctx context.Context, companyID, id int64, active bool) (*model.AutomationRule, error) {
	row, err := s.queries.SetAutomationRuleActive(ctx, sqlc.SetAutomationRuleActiveParams{
		ID:        id,
		CompanyID: companyID,
		IsActive:  active,
	})
	if err != nil {
		return nil, mapErr(err)
	}
	return toAutomationRuleModel(row)
}

func (s *automationRuleStore) Delete(ctx context.Context, companyID, id int64) error {
	return affected(s.queries.DeleteAutomationRule(ctx, sqlc.DeleteAutomationRuleParams{ID: id, CompanyID: companyID}))
}

func marshalRuleBody(rule *model.AutomationRule) (conditions, actions []byte, err error) {
	conds := rule.Conditions
	if conds == nil {
		conds = []model.Condition{}
	}
	acts := rule.Actions
	if acts == nil {
		acts = []model.Action{}
	}
	if conditions, err = json.Marshal(conds); err != nil {
		return nil, nil, fmt.Errorf("marshal conditions: %w", err)
	}
	if actions, err = json.Marshal(acts); err != nil {
		return nil, nil, fmt.Errorf("marshal actions: %w", err)
	}
	return conditions, actions, nil
}

func toAutomationRuleModel(row sqlc.AutomationRule) (*model.AutomationRule, error) {
	rule := &model.AutomationRule{
		ID:           row.ID,
		CompanyID:    row.CompanyID,
		Name:         row.Name,
		TriggerEvent: row.TriggerEvent,
		Conditions:   []model.Condition{},
		Actions:      []model.Action{},
		IsActive:     row.IsActive,
		CreatedAt:    row.CreatedAt.Time,
		UpdatedAt:    row.UpdatedAt.Time,
	}
	if len(row.Conditions) > 0 {
		if err := json.Unmarshal(row.Conditions, &rule.Conditions); err != nil {
			return nil, fmt.Errorf("rule %d conditions: %w", row.ID, err)
		}
	}
	if len(row.Actions) > 0 {
		if err := json.Unmarshal(row.Actions, &rule.Actions); err != nil {
			return nil, fmt.Errorf("rule %d actions: %w", row.ID, err)
		}
	}
	return rule, nil
}

func toAutomationRuleModels(rows []sqlc.AutomationRule) ([]model.AutomationRule, error) {
	rules := make([]model.AutomationRule, 0, len(rows))
	for _, row := range rows {
		rule, err := toAutomationRuleModel(row)
		if err != nil {
			return nil, err
		}
		rules = append(rules, *rule)
	}
	return rules, nil
}

type automationLogStore struct {
	queries *sqlc.Queries
}

func newAutomationLogStore(queries *sqlc.Queries) AutomationLogStore {
	return &automationLogStore{queries: queries}
}

func (s *automationLogStore) Create(ctx context.Context, log *model.AutomationLog) error {
	row, err := s.queries.CreateAutomationLog(ctx, sqlc.CreateAutomationLogParams{
		ID:        log.ID,
		RuleID:    log.RuleID,
		CompanyID: log.CompanyID,
		EventType: log.EventType,
		Status:    string(log.Status),
		Details:   log.Details,
	})
	if err != nil {
		return mapErr(err)
	}
	*log = toAutomationLogModel(row)
	return nil
}

func (s *automationLogStore) ListByRule(ctx context.Context, companyID, ruleID int64, limit int32) ([]model.AutomationLog, error) {
	rows, err := s.queries.ListAutomationLogsByRule(ctx, sqlc.ListAutomationLogsByRuleParams{
		RuleID:    ruleID,
		CompanyID: companyID,
		Limit:     limit,
	})
	if err != nil {
		return nil, err
	}
	logs := make([]model.AutomationLog, len(rows))
	for i, row := range rows {
		logs[i] = toAutomationLogModel(row)
	}
	return logs, nil
}

func toAutomationLogModel(row sqlc.AutomationLog) model.AutomationLog {
	return model.AutomationLog{
		ID:        row.ID,
		RuleID:    row.RuleID,
		CompanyID: row.CompanyID,
		EventType: row.EventType,
		Status:    model.AutomationLogStatus(row.Status),
		Details:   row.Details,
		CreatedAt: row.CreatedAt.Time,
	}
}
