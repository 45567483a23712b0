package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"masteria.app/panel/internal/model"
	"masteria.app/panel/internal/store"
)

type CompanyService interface {
	Get(ctx context.Context, companyID int64) (*model.Company, error)
	Update(ctx context.Context, companyID int64, name string) (*model.Company, error)
	// RotateWebhookSecret returns the company with its new secret set. It is
	// the only time the secret leaves the server.
	RotateWebhookSecret(ctx context.Context, companyID int64) (*model.Company, error)
}

type companyService struct {
	companies store.CompanyStore
}

func NewCompanyService(companies store.CompanyStore) CompanyService {
	return &companyService{companies: companies}
}

func (s *companyService) Get(ctx context.Context, companyID int64) (*model.Company, error) {
	company, err := s.companies.GetByID(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("getting company: %w", err)
	}
	return company, nil
}

func (s *companyService) Update(ctx context.Context, companyID int64, name string) (*model.Company, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	company, err := s.companies.UpdateName(ctx, companyID, name)
	if err != nil {
		return nil, fmt.Errorf("renaming company: %w", err)
	}
	return company, nil
}

func (s *companyService) RotateWebhookSecret(ctx context.Context, companyID int64) (*model.Company, error) {
	secret, err := randomToken(webhookSecretBytes)
	if err != nil {
		return nil, err
	}

	company, err := s.companies.UpdateWebhookSecret(ctx, companyID, secret)
	if err != nil {
		return nil, fmt.Errorf("rotating webhook secret: %w", err)
	}

	slog.InfoContext(ctx, "webhook secret rotated", "company_id", companyID)
	return company, nil
}
