package store

import (
	"context"
	"time"

	"masteria.app/panel/core/db/sqlc"
	"masteria.app/panel/internal/model"
)

type campaignStore struct {
	queries *sqlc.Queries
}

func newCampaignStore(queries *sqlc.Queries) CampaignStore {
	return &campaignStore{queries: queries}
}

func (s *campaignStore) GetByID(ctx context.Context, companyID, id int64) (*model.Campaign, error) {
	row, err := s.queries.GetCampaign(ctx, sqlc.GetCampaignParams{ID: id, CompanyID: companyID})
	if err != nil {
		return nil, mapErr(err)
	}
	return toCampaignModel(row), nil
}

func (s *campaignStore) List(ctx context.Context, companyID int64) ([]model.Campaign, error) {
	rows, err := s.queries.ListCampaignsByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	campaigns := make([]model.Campaign, len(rows))
	for i, row := range rows {
		campaigns[i] = *toCampaignModel(row)
	}
	return campaigns, nil
}

func (s *campaignStore) Create(ctx context.Context, campaign *model.Campaign) error {
	row, err := s.queries.CreateCampaign(ctx, sqlc.CreateCampaignParams{
		ID:           campaign.ID,
		CompanyID:    campaign.CompanyID,
		ConnectionID: campaign.ConnectionID,
		Name:         campaign.Name,
		Message:      campaign.Message,
		Status:       string(campaign.Status),
	})
	if err != nil {
		return mapErr(err)
	}
	*campaign = *toCampaignModel(row)
	return nil
}

func (s *campaignStore) Update(ctx context.Context, campaign *model.Campaign) error {
	row, err := s.queries.UpdateCampaign(ctx, sqlc.UpdateCampaignParams{
		ID:           campaign.ID,
		CompanyID:    campaign.CompanyID,
		ConnectionID: campaign.ConnectionID,
		Name:         campaign.Name,
		Message:      campaign.Message,
	})
	if err != nil {
		return mapErr(err)
	}
	*campaign = *toCampaignModel(row)
	return nil
}

func (s *campaignStore) UpdateStatus(ctx context.Context, companyID, id int64, from, to model.CampaignStatus, scheduledAt *time.Time) (*model.Campaign, error) {
	row, err := s.queries.UpdateCampaignStatus(ctx, sqlc.UpdateCampaignStatusParams{
		ID:             id,
		CompanyID:      companyID,
		Status:         string(to),
		ScheduledAt:    timestamptz(scheduledAt),
		ExpectedStatus: string(from),
	})
	if err != nil {
		return nil, mapErr(err)
	}
	return toCampaignModel(row), nil
}

func (s *campaignStore) Delete(ctx context.Context, companyID, id int64) error {
	return affected(s.queries.DeleteCampaign(ctx, sqlc.DeleteCampaignParams{ID: id, CompanyID: companyID}))
}

func (s *campaignStore) Totals(ctx context.Context, companyID int64) (model.CampaignTotals, error) {
	row, err := s.queries.GetCampaignTotals(ctx, companyID)
	if err != nil {
		return model.CampaignTotals{}, err
	}
	return model.CampaignTotals{
		Campaigns: row.Campaigns,
		Sent:      row.Sent,
		Delivered: row.Delivered,
		Read:      row.Read,
		Failed:    row.Failed,
	}, nil
}

func (s *campaignStore) CountByStatus(ctx context.Context, companyID int64) (map[model.CampaignStatus]int64, error) {
	rows, err := s.queries.CountCampaignsByStatus(ctx, companyID)
	if err != nil {
		return nil, err
	}
	counts := make(map[model.CampaignStatus]int64, len(rows))
	for _, row := range rows {
		counts[model.CampaignStatus(row.Status)] = row.Total
	}
	return counts, nil
}

func toCampaignModel(row sqlc.Campaign) *model.Campaign {
	return &model.Campaign{
		ID:             row.ID,
		CompanyID:      row.CompanyID,
		ConnectionID:   row.ConnectionID,
		Name:           row.Name,
		Message:        row.Message,
		Status:         model.CampaignStatus(row.Status),
		ScheduledAt:    timePtr(row.ScheduledAt),
		SentCount:      row.SentCount,
		DeliveredCount: row.DeliveredCount,
		ReadCount:      row.ReadCount,
		FailedCount:    row.FailedCount,
		CreatedAt:      row.CreatedAt.Time,
		UpdatedAt:      row.UpdatedAt.Time,
	}
}
