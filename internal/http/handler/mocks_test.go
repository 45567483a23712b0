package handler_test

import (
	"context"
	"encoding/json"
	"time"

	"masteria.app/panel/internal/automation"
	"masteria.app/panel/internal/model"
	"masteria.app/panel/internal/service"
	"masteria.app/panel/internal/store"
)

type mockAuthService struct {
	registerFn func(ctx context.Context, params service.RegisterParams) (*service.Session, error)
	loginFn    func(ctx context.Context, email, password string) (*service.Session, error)
	meFn       func(ctx context.Context, userID int64) (*model.User, *model.Company, error)
}

func (m *mockAuthService) Register(ctx context.Context, params service.RegisterParams) (*service.Session, error) {
	if m.registerFn != nil {
		return m.registerFn(ctx, params)
	}
	return nil, nil
}

func (m *mockAuthService) Login(ctx context.Context, email, password string) (*service.Session, error) {
	if m.loginFn != nil {
		return m.loginFn(ctx, email, password)
	}
	return nil, nil
}

func (m *mockAuthService) Authenticate(_ context.Context, _ string) (*model.User, error) {
	return nil, service.ErrInvalidSession
}

func (m *mockAuthService) Me(ctx context.Context, userID int64) (*model.User, *model.Company, error) {
	if m.meFn != nil {
		return m.meFn(ctx, userID)
	}
	return nil, nil, store.ErrNotFound
}

type mockPasswordResetService struct {
	requestResetFn  func(ctx context.Context, email string) error
	validateTokenFn func(ctx context.Context, token string) error
	resetPasswordFn func(ctx context.Context, token, newPassword string) error
}

func (m *mockPasswordResetService) RequestReset(ctx context.Context, email string) error {
	if m.requestResetFn != nil {
		return m.requestResetFn(ctx, email)
	}
	return nil
}

func (m *mockPasswordResetService) ValidateToken(ctx context.Context, token string) error {
	if m.validateTokenFn != nil {
		return m.validateTokenFn(ctx, token)
	}
	return nil
}

func (m *mockPasswordResetService) ResetPassword(ctx context.Context, token, newPassword string) error {
	if m.resetPasswordFn != nil {
		return m.resetPasswordFn(ctx, token, newPassword)
	}
	return nil
}

type mockUserService struct {
	listFn      func(ctx context.Context, companyID int64) ([]model.User, error)
	createFn    func(ctx context.Context, actor *model.User, params service.CreateUserParams) (*model.User, error)
	updateFn    func(ctx context.Context, actor *model.User, id int64, params service.UpdateUserParams) (*model.User, error)
	setActiveFn func(ctx context.Context, actor *model.User, id int64, active bool) (*model.User, error)
	deleteFn    func(ctx context.Context, actor *model.User, id int64) error
}

func (m *mockUserService) List(ctx context.Context, companyID int64) ([]model.User, error) {
	if m.listFn != nil {
		return m.listFn(ctx, companyID)
	}
	return []model.User{}, nil
}

func (m *mockUserService) Create(ctx context.Context, actor *model.User, params service.CreateUserParams) (*model.User, error) {
	if m.createFn != nil {
		return m.createFn(ctx, actor, params)
	}
	return &model.User{ID: 9, CompanyID: actor.CompanyID, Name: params.Name, Email: params.Email, Role: params.Role, IsActive: true}, nil
}

func (m *mockUserService) Update(ctx context.Context, actor *model.User, id int64, params service.UpdateUserParams) (*model.User, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, actor, id, params)
	}
	return &model.User{ID: id, CompanyID: actor.CompanyID}, nil
}

func (m *mockUserService) SetActive(ctx context.Context, actor *model.User, id int64, active bool) (*model.User, error) {
	if m.setActiveFn != nil {
		return m.setActiveFn(ctx, actor, id, active)
	}
	return &model.User{ID: id, CompanyID: actor.CompanyID, IsActive: active}, nil
}

func (m *mockUserService) Delete(ctx context.Context, actor *model.User, id int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, actor, id)
	}
	return nil
}

type mockCampaignService struct {
	getFn      func(ctx context.Context, companyID, id int64) (*model.Campaign, error)
	createFn   func(ctx context.Context, companyID int64, params service.CampaignParams) (*model.Campaign, error)
	updateFn   func(ctx context.Context, companyID, id int64, params service.CampaignParams) (*model.Campaign, error)
	scheduleFn func(ctx context.Context, companyID, id int64, at time.Time) (*model.Campaign, error)
	cancelFn   func(ctx context.Context, companyID, id int64) (*model.Campaign, error)
	reportFn   func(ctx context.Context, companyID int64) (*model.CampaignReport, error)
	deleted    []int64
}

func (m *mockCampaignService) List(_ context.Context, _ int64) ([]model.Campaign, error) {
	return []model.Campaign{}, nil
}

func (m *mockCampaignService) Get(ctx context.Context, companyID, id int64) (*model.Campaign, error) {
	if m.getFn != nil {
		return m.getFn(ctx, companyID, id)
	}
	return nil, service.ErrNotFound
}

func (m *mockCampaignService) Create(ctx context.Context, companyID int64, params service.CampaignParams) (*model.Campaign, error) {
	if m.createFn != nil {
		return m.createFn(ctx, companyID, params)
	}
	return &model.Campaign{ID: 5, CompanyID: companyID, Status: model.CampaignStatusDraft}, nil
}

func (m *mockCampaignService) Update(ctx context.Context, companyID, id int64, params service.CampaignParams) (*model.Campaign, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, companyID, id, params)
	}
	return &model.Campaign{ID: id, CompanyID: companyID}, nil
}

func (m *mockCampaignService) Delete(_ context.Context, _, id int64) error {
	m.deleted = append(m.deleted, id)
	return nil
}

func (m *mockCampaignService) Schedule(ctx context.Context, companyID, id int64, at time.Time) (*model.Campaign, error) {
	if m.scheduleFn != nil {
		return m.scheduleFn(ctx, companyID, id, at)
	}
	return &model.Campaign{ID: id, Status: model.CampaignStatusScheduled, ScheduledAt: &at}, nil
}

func (m *mockCampaignService) Cancel(ctx context.Context, companyID, id int64) (*model.Campaign, error) {
	if m.cancelFn != nil {
		return m.cancelFn(ctx, companyID, id)
	}
	return &model.Campaign{ID: id, Status: model.CampaignStatusCancelled}, nil
}

func (m *mockCampaignService) Report(ctx context.Context, companyID int64) (*model.CampaignReport, error) {
	if m.reportFn != nil {
		return m.reportFn(ctx, companyID)
	}
	return &model.CampaignReport{ByStatus: map[model.CampaignStatus]int64{}}, nil
}

type mockAutomationService struct {
	createFn  func(ctx context.Context, companyID int64, def automation.RuleDefinition, active bool) (*model.AutomationRule, error)
	lastLimit int32
}

func (m *mockAutomationService) List(_ context.Context, _ int64) ([]model.AutomationRule, error) {
	return []model.AutomationRule{}, nil
}

func (m *mockAutomationService) Get(_ context.Context, _, _ int64) (*model.AutomationRule, error) {
	return nil, service.ErrNotFound
}

func (m *mockAutomationService) Create(ctx context.Context, companyID int64, def automation.RuleDefinition, active bool) (*model.AutomationRule, error) {
	if m.createFn != nil {
		return m.createFn(ctx, companyID, def, active)
	}
	return &model.AutomationRule{ID: 3, CompanyID: companyID, Name: def.Name, TriggerEvent: def.TriggerEvent, Actions: def.Actions, IsActive: active}, nil
}

func (m *mockAutomationService) Update(_ context.Context, companyID, id int64, def automation.RuleDefinition) (*model.AutomationRule, error) {
	return &model.AutomationRule{ID: id, CompanyID: companyID, Name: def.Name}, nil
}

func (m *mockAutomationService) SetActive(_ context.Context, companyID, id int64, active bool) (*model.AutomationRule, error) {
	return &model.AutomationRule{ID: id, CompanyID: companyID, IsActive: active}, nil
}

func (m *mockAutomationService) Delete(_ context.Context, _, _ int64) error {
	return nil
}

func (m *mockAutomationService) Logs(_ context.Context, _, _ int64, limit int32) ([]model.AutomationLog, error) {
	m.lastLimit = limit
	return []model.AutomationLog{{ID: 1, RuleID: 3, Status: model.AutomationLogDispatched}}, nil
}

func (m *mockAutomationService) Schema() (json.RawMessage, error) {
	return automation.Schema()
}

func (m *mockAutomationService) Evaluate(_ context.Context, _ int64, _ string, _ map[string]any) ([]model.AutomationLog, error) {
	return nil, nil
}

type mockKnowledgeService struct {
	err error
}

func (m *mockKnowledgeService) AddDocument(_ context.Context, companyID int64, title, _ string) (*model.KnowledgeDocument, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &model.KnowledgeDocument{ID: 4, CompanyID: companyID, Title: title, ChunkCount: 1}, nil
}

func (m *mockKnowledgeService) List(_ context.Context, _ int64) ([]model.KnowledgeDocument, error) {
	if m.err != nil {
		return nil, m.err
	}
	return []model.KnowledgeDocument{}, nil
}

func (m *mockKnowledgeService) Delete(_ context.Context, _, _ int64) error {
	return m.err
}

func (m *mockKnowledgeService) Search(_ context.Context, _ int64, _ string, _ int) ([]model.KnowledgeMatch, error) {
	if m.err != nil {
		return nil, m.err
	}
	return []model.KnowledgeMatch{{DocumentID: 4, Title: "FAQ", Content: "PIX", Score: 0.9}}, nil
}
