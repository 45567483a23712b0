package store

import (
	"context"

	"masteria.app/panel/core/db/sqlc"
	"masteria.app/panel/internal/model"
)

type companyStore struct {
	queries *sqlc.Queries
}

func newCompanyStore(queries *sqlc.Queries) CompanyStore {
	return &companyStore{queries: queries}
}

func (s *companyStore) GetByID(ctx context.Context, id int64) (*model.Company, error) {
	row, err := s.queries.GetCompany(ctx, id)
	if err != nil {
		return nil, mapErr(err)
	}
	return toCompanyModel(row), nil
}

func (s *companyStore) GetBySlug(ctx context.Context, slug string) (*model.Company, error) {
	row, err := s.queries.GetCompanyBySlug(ctx, slug)
	if err != nil {
		return nil, mapErr(err)
	}
	return toCompanyModel(row), nil
}

func (s *companyStore) Create(ctx context.Context, company *model.Company) error {
	row, err := s.queries.CreateCompany(ctx, sqlc.CreateCompanyParams{
		ID:            company.ID,
		Name:          company.Name,
		Slug:          company.Slug,
		WebhookSecret: company.WebhookSecret,
	})
	if err != nil {
		return mapErr(err)
	}
	*company = *toCompanyModel(row)
	return nil
}

func (s *companyStore) UpdateName(ctx context.Context, id int64, name string) (*model.Company, error) {
	row, err := s.queries.UpdateCompanyName(ctx, sqlc.UpdateCompanyNameParams{ID: id, Name: name})
	if err != nil {
		return nil, mapErr(err)
	}
	return toCompanyModel(row), nil
}

func (s *companyStore) UpdateWebhookSecret(ctx context.Context, id int64, secret string) (*model.Company, error) {
	row, err := s.queries.UpdateCompanyWebhookSecret(ctx, sqlc.UpdateCompanyWebhookSecretParams{
		ID:            id,
		WebhookSecret: secret,
	})
	if err != nil {
		return nil, mapErr(err)
	}
	return toCompanyModel(row), nil
}

func toCompanyModel(row sqlc.Company) *model.Company {
	return &model.Company{
		ID:            row.ID,
		Name:          row.Name,
		Slug:          row.Slug,
		WebhookSecret: row.WebhookSecret,
		CreatedAt:     row.CreatedAt.Time,
		UpdatedAt:     row.UpdatedAt.Time,
	}
}
