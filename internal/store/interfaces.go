package store

import (
	"context"
	"errors"
	"time"

	"masteria.app/panel/internal/model"
)

var (
	// ErrNotFound is returned when a requested entity does not exist
	// or belongs to another company.
	ErrNotFound = errors.New("not found")
	// ErrConflict is returned when a unique constraint rejects a write.
	ErrConflict = errors.New("already exists")
)

type CompanyStore interface {
	GetByID(ctx context.Context, id int64) (*model.Company, error)
	GetBySlug(ctx context.Context, slug string) (*model.Company, error)
	Create(ctx context.Context, company *model.Company) error
	UpdateName(ctx context.Context, id int64, name string) (*model.Company, error)
	UpdateWebhookSecret(ctx context.Context, id int64, secret string) (*model.Company, error)
}

type UserStore interface {
	GetByID(ctx context.Context, id int64) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	ListByCompany(ctx context.Context, companyID int64) ([]model.User, error)
	Create(ctx context.Context, user *model.User) error
	Update(ctx context.Context, user *model.User) error // name and role
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
	SetActive(ctx context.Context, companyID, id int64, active bool) (*model.User, error)
	Delete(ctx context.Context, companyID, id int64) error
}

type PasswordResetTokenStore interface {
	Create(ctx context.Context, token *model.PasswordResetToken) error
	GetByHash(ctx context.Context, tokenHash string) (*model.PasswordResetToken, error)
	MarkUsed(ctx context.Context, id int64) error // ErrNotFound if already used
	// DeleteExpired removes tokens, used or not, that expired before the cutoff.
	DeleteExpired(ctx context.Context, before time.Time) (int64, error)
}

type ConnectionStore interface {
	GetByID(ctx context.Context, companyID, id int64) (*model.Connection, error)
	List(ctx context.Context, companyID int64, activeOnly bool) ([]model.Connection, error)
	Create(ctx context.Context, conn *model.Connection) error
	Update(ctx context.Context, conn *model.Connection) error
	SetActive(ctx context.Context, companyID, id int64, active bool) (*model.Connection, error)
	Delete(ctx context.Context, companyID, id int64) error
}

type AutomationRuleStore interface {
	GetByID(ctx context.Context, companyID, id int64) (*model.AutomationRule, error)
	List(ctx context.Context, companyID int64) ([]model.AutomationRule, error)
	ListActiveByTrigger(ctx context.Context, companyID int64, trigger string) ([]model.AutomationRule, error)
	Create(ctx context.Context, rule *model.AutomationRule) error
	Update(ctx context.Context, rule *model.AutomationRule) error
	SetActive(ctx context.Context, companyID, id int64, active bool) (*model.AutomationRule, error)
	Delete(ctx context.Context, companyID, id int64) error
}

type AutomationLogStore interface {
	Create(ctx context.Context, log *model.AutomationLog) error
	ListByRule(ctx context.Context, companyID, ruleID int64, limit int32) ([]model.AutomationLog, error)
}

type CampaignStore interface {
	GetByID(ctx context.Context, companyID, id int64) (*model.Campaign, error)
	List(ctx context.Context, companyID int64) ([]model.Campaign, error)
	Create(ctx context.Context, campaign *model.Campaign) error
	// Update writes connection, name and message of a draft. ErrNotFound if
	// the campaign is gone or no longer a draft.
	Update(ctx context.Context, campaign *model.Campaign) error
	// UpdateStatus moves the campaign from one status to another. ErrNotFound
	// if it is gone or no longer in from.
	UpdateStatus(ctx context.Context, companyID, id int64, from, to model.CampaignStatus, scheduledAt *time.Time) (*model.Campaign, error)
	Delete(ctx context.Context, companyID, id int64) error
	Totals(ctx context.Context, companyID int64) (model.CampaignTotals, error)
	CountByStatus(ctx context.Context, companyID int64) (map[model.CampaignStatus]int64, error)
}

type KommoEventStore interface {
	// Create inserts the event unless its dedupe key is taken. On a duplicate
	// it loads the existing row into event and returns created=false.
	Create(ctx context.Context, event *model.KommoEvent) (created bool, err error)
	GetByID(ctx context.Context, id int64) (*model.KommoEvent, error)
	MarkProcessed(ctx context.Context, id int64) error
	// MarkFailed records a retryable failure; the event stays unprocessed.
	MarkFailed(ctx context.Context, id int64, reason string) error
	// MarkRejected closes the event with reason. It is never retried.
	MarkRejected(ctx context.Context, id int64, reason string) error
}

// KnowledgeStore lives on the vector database.
type KnowledgeStore interface {
	CreateDocument(ctx context.Context, doc *model.KnowledgeDocument) error
	CreateChunk(ctx context.Context, chunk model.KnowledgeChunk) error
	ListDocuments(ctx context.Context, companyID int64) ([]model.KnowledgeDocument, error)
	DeleteDocument(ctx context.Context, companyID, id int64) error
	Search(ctx context.Context, companyID int64, embedding []float32, limit int32) ([]model.KnowledgeMatch, error)
}
