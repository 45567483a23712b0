package service_test

import (
	"context"
	"time"

	"masteria.app/panel/internal/model"
	"masteria.app/panel/internal/queue"
	"masteria.app/panel/internal/service"
	"masteria.app/panel/internal/storage"
	"masteria.app/panel/internal/store"
)

type mockUserStore struct {
	getByIDFn        func(ctx context.Context, id int64) (*model.User, error)
	getByEmailFn     func(ctx context.Context, email string) (*model.User, error)
	listByCompanyFn  func(ctx context.Context, companyID int64) ([]model.User, error)
	createFn         func(ctx context.Context, user *model.User) error
	updateFn         func(ctx context.Context, user *model.User) error
	updatePasswordFn func(ctx context.Context, id int64, hash string) error
	setActiveFn      func(ctx context.Context, companyID, id int64, active bool) (*model.User, error)
	deleteFn         func(ctx context.Context, companyID, id int64) error
}

func (m *mockUserStore) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, store.ErrNotFound
}

func (m *mockUserStore) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	if m.getByEmailFn != nil {
		return m.getByEmailFn(ctx, email)
	}
	return nil, store.ErrNotFound
}

func (m *mockUserStore) ListByCompany(ctx context.Context, companyID int64) ([]model.User, error) {
	if m.listByCompanyFn != nil {
		return m.listByCompanyFn(ctx, companyID)
	}
	return []model.User{}, nil
}

func (m *mockUserStore) Create(ctx context.Context, user *model.User) error {
	if m.createFn != nil {
		return m.createFn(ctx, user)
	}
	return nil
}

func (m *mockUserStore) Update(ctx context.Context, user *model.User) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, user)
	}
	return nil
}

func (m *mockUserStore) UpdatePassword(ctx context.Context, id int64, hash string) error {
	if m.updatePasswordFn != nil {
		return m.updatePasswordFn(ctx, id, hash)
	}
	return nil
}

func (m *mockUserStore) SetActive(ctx context.Context, companyID, id int64, active bool) (*model.User, error) {
	if m.setActiveFn != nil {
		return m.setActiveFn(ctx, companyID, id, active)
	}
	return &model.User{ID: id, CompanyID: companyID, IsActive: active}, nil
}

func (m *mockUserStore) Delete(ctx context.Context, companyID, id int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, companyID, id)
	}
	return nil
}

type mockCompanyStore struct {
	getByIDFn   func(ctx context.Context, id int64) (*model.Company, error)
	getBySlugFn func(ctx context.Context, slug string) (*model.Company, error)
	createFn    func(ctx context.Context, company *model.Company) error
	secrets     []string
}

func (m *mockCompanyStore) GetByID(ctx context.Context, id int64) (*model.Company, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return &model.Company{ID: id, Name: "Acme", Slug: "acme"}, nil
}

func (m *mockCompanyStore) GetBySlug(ctx context.Context, slug string) (*model.Company, error) {
	if m.getBySlugFn != nil {
		return m.getBySlugFn(ctx, slug)
	}
	return nil, store.ErrNotFound
}

func (m *mockCompanyStore) Create(ctx context.Context, company *model.Company) error {
	if m.createFn != nil {
		return m.createFn(ctx, company)
	}
	return nil
}

func (m *mockCompanyStore) UpdateName(_ context.Context, id int64, name string) (*model.Company, error) {
	return &model.Company{ID: id, Name: name}, nil
}

func (m *mockCompanyStore) UpdateWebhookSecret(_ context.Context, id int64, secret string) (*model.Company, error) {
	m.secrets = append(m.secrets, secret)
	return &model.Company{ID: id, WebhookSecret: secret}, nil
}

type mockResetTokenStore struct {
	tokens        map[string]*model.PasswordResetToken
	created       []*model.PasswordResetToken
	markUsedErr   error
	markedUsed    []int64
	deleteExpired int
	purgedBefore  time.Time
}

func (m *mockResetTokenStore) Create(_ context.Context, token *model.PasswordResetToken) error {
	m.created = append(m.created, token)
	if m.tokens == nil {
		m.tokens = map[string]*model.PasswordResetToken{}
	}
	m.tokens[token.TokenHash] = token
	return nil
}

func (m *mockResetTokenStore) GetByHash(_ context.Context, hash string) (*model.PasswordResetToken, error) {
	if t, ok := m.tokens[hash]; ok {
		return t, nil
	}
	return nil, store.ErrNotFound
}

func (m *mockResetTokenStore) MarkUsed(_ context.Context, id int64) error {
	if m.markUsedErr != nil {
		return m.markUsedErr
	}
	m.markedUsed = append(m.markedUsed, id)
	for _, t := range m.tokens {
		if t.ID == id {
			now := time.Now()
			t.UsedAt = &now
		}
	}
	return nil
}

func (m *mockResetTokenStore) DeleteExpired(_ context.Context, before time.Time) (int64, error) {
	m.deleteExpired++
	m.purgedBefore = before
	var n int64
	for hash, t := range m.tokens {
		if t.ExpiresAt.Before(before) {
			delete(m.tokens, hash)
			n++
		}
	}
	return n, nil
}

type mockConnectionStore struct {
	getByIDFn func(ctx context.Context, companyID, id int64) (*model.Connection, error)
	created   []*model.Connection
	updated   []*model.Connection
}

func (m *mockConnectionStore) GetByID(ctx context.Context, companyID, id int64) (*model.Connection, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, companyID, id)
	}
	return nil, store.ErrNotFound
}

func (m *mockConnectionStore) List(_ context.Context, _ int64, _ bool) ([]model.Connection, error) {
	return []model.Connection{}, nil
}

func (m *mockConnectionStore) Create(_ context.Context, conn *model.Connection) error {
	m.created = append(m.created, conn)
	return nil
}

func (m *mockConnectionStore) Update(_ context.Context, conn *model.Connection) error {
	m.updated = append(m.updated, conn)
	return nil
}

func (m *mockConnectionStore) SetActive(_ context.Context, companyID, id int64, active bool) (*model.Connection, error) {
	return &model.Connection{ID: id, CompanyID: companyID, IsActive: active}, nil
}

func (m *mockConnectionStore) Delete(_ context.Context, _, _ int64) error {
	return nil
}

type mockRuleStore struct {
	listActiveByTriggerFn func(ctx context.Context, companyID int64, trigger string) ([]model.AutomationRule, error)
	getByIDFn             func(ctx context.Context, companyID, id int64) (*model.AutomationRule, error)
	created               []*model.AutomationRule
	updated               []*model.AutomationRule
}

func (m *mockRuleStore) GetByID(ctx context.Context, companyID, id int64) (*model.AutomationRule, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, companyID, id)
	}
	return nil, store.ErrNotFound
}

func (m *mockRuleStore) List(_ context.Context, _ int64) ([]model.AutomationRule, error) {
	return []model.AutomationRule{}, nil
}

func (m *mockRuleStore) ListActiveByTrigger(ctx context.Context, companyID int64, trigger string) ([]model.AutomationRule, error) {
	if m.listActiveByTriggerFn != nil {
		return m.listActiveByTriggerFn(ctx, companyID, trigger)
	}
	return nil, nil
}

func (m *mockRuleStore) Create(_ context.Context, rule *model.AutomationRule) error {
	m.created = append(m.created, rule)
	return nil
}

func (m *mockRuleStore) Update(_ context.Context, rule *model.AutomationRule) error {
	m.updated = append(m.updated, rule)
	return nil
}

func (m *mockRuleStore) SetActive(_ context.Context, companyID, id int64, active bool) (*model.AutomationRule, error) {
	return &model.AutomationRule{ID: id, CompanyID: companyID, IsActive: active}, nil
}

func (m *mockRuleStore) Delete(_ context.Context, _, _ int64) error {
	return nil
}

type mockLogStore struct {
	created   []model.AutomationLog
	lastLimit int32
}

func (m *mockLogStore) Create(_ context.Context, log *model.AutomationLog) error {
	m.created = append(m.created, *log)
	return nil
}

func (m *mockLogStore) ListByRule(_ context.Context, _, _ int64, limit int32) ([]model.AutomationLog, error) {
	m.lastLimit = limit
	return []model.AutomationLog{}, nil
}

type mockCampaignStore struct {
	getByIDFn       func(ctx context.Context, companyID, id int64) (*model.Campaign, error)
	totals          model.CampaignTotals
	byStatus        map[model.CampaignStatus]int64
	created         []*model.Campaign
	deleted         []int64
	statusUpdates   []model.CampaignStatus
	lastScheduledAt *time.Time
	updateErr       error
	updateStatusErr error
}

func (m *mockCampaignStore) GetByID(ctx context.Context, companyID, id int64) (*model.Campaign, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, companyID, id)
	}
	return nil, store.ErrNotFound
}

func (m *mockCampaignStore) List(_ context.Context, _ int64) ([]model.Campaign, error) {
	return []model.Campaign{}, nil
}

func (m *mockCampaignStore) Create(_ context.Context, c *model.Campaign) error {
	m.created = append(m.created, c)
	return nil
}

func (m *mockCampaignStore) Update(_ context.Context, _ *model.Campaign) error {
	return m.updateErr
}

func (m *mockCampaignStore) UpdateStatus(_ context.Context, companyID, id int64, _, status model.CampaignStatus, at *time.Time) (*model.Campaign, error) {
	if m.updateStatusErr != nil {
		return nil, m.updateStatusErr
	}
	m.statusUpdates = append(m.statusUpdates, status)
	m.lastScheduledAt = at
	return &model.Campaign{ID: id, CompanyID: companyID, Status: status, ScheduledAt: at}, nil
}

func (m *mockCampaignStore) Delete(_ context.Context, _, id int64) error {
	m.deleted = append(m.deleted, id)
	return nil
}

func (m *mockCampaignStore) Totals(_ context.Context, _ int64) (model.CampaignTotals, error) {
	return m.totals, nil
}

func (m *mockCampaignStore) CountByStatus(_ context.Context, _ int64) (map[model.CampaignStatus]int64, error) {
	return m.byStatus, nil
}

type mockKommoEventStore struct {
	createFn func(ctx context.Context, event *model.KommoEvent) (bool, error)
	created  []*model.KommoEvent
}

func (m *mockKommoEventStore) Create(ctx context.Context, event *model.KommoEvent) (bool, error) {
	m.created = append(m.created, event)
	if m.createFn != nil {
		return m.createFn(ctx, event)
	}
	return true, nil
}

func (m *mockKommoEventStore) GetByID(_ context.Context, _ int64) (*model.KommoEvent, error) {
	return nil, store.ErrNotFound
}

func (m *mockKommoEventStore) MarkProcessed(_ context.Context, _ int64) error { return nil }

func (m *mockKommoEventStore) MarkFailed(_ context.Context, _ int64, _ string) error { return nil }

func (m *mockKommoEventStore) MarkRejected(_ context.Context, _ int64, _ string) error { return nil }

type mockKnowledgeStore struct {
	docs      []*model.KnowledgeDocument
	chunks    []model.KnowledgeChunk
	lastLimit int32
}

func (m *mockKnowledgeStore) CreateDocument(_ context.Context, doc *model.KnowledgeDocument) error {
	m.docs = append(m.docs, doc)
	return nil
}

func (m *mockKnowledgeStore) CreateChunk(_ context.Context, chunk model.KnowledgeChunk) error {
	m.chunks = append(m.chunks, chunk)
	return nil
}

func (m *mockKnowledgeStore) ListDocuments(_ context.Context, _ int64) ([]model.KnowledgeDocument, error) {
	return []model.KnowledgeDocument{}, nil
}

func (m *mockKnowledgeStore) DeleteDocument(_ context.Context, _, _ int64) error {
	return nil
}

func (m *mockKnowledgeStore) Search(_ context.Context, _ int64, _ []float32, limit int32) ([]model.KnowledgeMatch, error) {
	m.lastLimit = limit
	return []model.KnowledgeMatch{{ChunkID: 1, Score: 0.9}}, nil
}

type mockKnowledgeTx struct {
	ks *mockKnowledgeStore
}

func (m *mockKnowledgeTx) WithTx(_ context.Context, fn func(store.KnowledgeStore) error) error {
	return fn(m.ks)
}

type mockEmbedder struct {
	inputs [][]string
	err    error
}

func (m *mockEmbedder) Embed(_ context.Context, inputs []string) ([][]float32, error) {
	m.inputs = append(m.inputs, inputs)
	if m.err != nil {
		return nil, m.err
	}
	out := make([][]float32, len(inputs))
	for i := range out {
		out[i] = []float32{float32(i), 1}
	}
	return out, nil
}

func (m *mockEmbedder) Model() string { return "test-embedding" }

type mockProducer struct {
	tasks []queue.Task
	err   error
}

func (m *mockProducer) Enqueue(_ context.Context, task queue.Task) error {
	if m.err != nil {
		return m.err
	}
	m.tasks = append(m.tasks, task)
	return nil
}

func (m *mockProducer) Close() error { return nil }

type mockPresigner struct {
	keys []string
}

func (m *mockPresigner) PresignPut(_ context.Context, key, _ string) (storage.PresignedPut, error) {
	m.keys = append(m.keys, key)
	return storage.PresignedPut{URL: "https://bucket.example/" + key + "?sig=1", Method: "PUT"}, nil
}

func (m *mockPresigner) PublicURL(key string) string {
	return "https://media.example/" + key
}

type mockStoreProvider struct {
	companies store.CompanyStore
	users     store.UserStore
	tokens    store.PasswordResetTokenStore
}

func (m *mockStoreProvider) Companies() store.CompanyStore { return m.companies }
func (m *mockStoreProvider) Users() store.UserStore { return m.users }
func (m *mockStoreProvider) PasswordResetTokens() store.PasswordResetTokenStore { return m.tokens }

type mockTxRunner struct {
	stores service.StoreProvider
	calls  int
}

func (m *mockTxRunner) WithTx(_ context.Context, fn func(service.StoreProvider) error) error {
	m.calls++
	return fn(m.stores)
}
