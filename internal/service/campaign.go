package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"masteria.app/panel/common/id"
	"masteria.app/panel/internal/model"
	"masteria.app/panel/internal/store"
)

var (
	ErrCampaignNotEditable = errors.New("only draft campaigns can be changed")
	ErrInvalidTransition   = errors.New("campaign status transition not allowed")
)

// CampaignParams is used for create and, as a patch, for update.
type CampaignParams struct {
	Name         *string
	Message      *string
	ConnectionID *int64
}

type CampaignService interface {
	List(ctx context.Context, companyID int64) ([]model.Campaign, error)
	Get(ctx context.Context, companyID, id int64) (*model.Campaign, error)
	Create(ctx context.Context, companyID int64, params CampaignParams) (*model.Campaign, error)
	Update(ctx context.Context, companyID, id int64, params CampaignParams) (*model.Campaign, error)
	Delete(ctx context.Context, companyID, id int64) error
	Schedule(ctx context.Context, companyID, id int64, at time.Time) (*model.Campaign, error)
	Cancel(ctx context.Context, companyID, id int64) (*model.Campaign, error)
	Report(ctx context.Context, companyID int64) (*model.CampaignReport, error)
}

type campaignService struct {
	campaigns   store.CampaignStore
	connections store.ConnectionStore
	now         func() time.Time
}

func NewCampaignService(campaigns store.CampaignStore, connections store.ConnectionStore) CampaignService {
	return &campaignService{
		campaigns:   campaigns,
		connections: connections,
		now:         time.Now,
	}
}

func (s *campaignService) List(ctx context.Context, companyID int64) ([]model.Campaign, error) {
	campaigns, err := s.campaigns.List(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("listing campaigns: %w", err)
	}
	return campaigns, nil
}

func (s *campaignService) Get(ctx context.Context, companyID, campaignID int64) (*model.Campaign, error) {
	campaign, err := s.campaigns.GetByID(ctx, companyID, campaignID)
	if err != nil {
		return nil, fmt.Errorf("getting campaign: %w", err)
	}
	return campaign, nil
}

func (s *campaignService) Create(ctx context.Context, companyID int64, params CampaignParams) (*model.Campaign, error) {
	campaign := &model.Campaign{
		ID:        id.New(),
		CompanyID: companyID,
		Status:    model.CampaignStatusDraft,
	}
	if err := s.apply(ctx, campaign, params); err != nil {
		return nil, err
	}

	if err := s.campaigns.Create(ctx, campaign); err != nil {
		return nil, fmt.Errorf("creating campaign: %w", err)
	}

	slog.InfoContext(ctx, "campaign created", "campaign_id", campaign.ID)
	return campaign, nil
}

func (s *campaignService) Update(ctx context.Context, companyID, campaignID int64, params CampaignParams) (*model.Campaign, error) {
	campaign, err := s.Get(ctx, companyID, campaignID)
	if err != nil {
		return nil, err
	}
	if !campaign.IsEditable() {
		return nil, ErrCampaignNotEditable
	}

	if err := s.apply(ctx, campaign, params); err != nil {
		return nil, err
	}
	if err := s.campaigns.Update(ctx, campaign); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// left draft after it was read
			return nil, ErrCampaignNotEditable
		}
		return nil, fmt.Errorf("updating campaign: %w", err)
	}
	return campaign, nil
}

func (s *campaignService) Delete(ctx context.Context, companyID, campaignID int64) error {
	campaign, err := s.Get(ctx, companyID, campaignID)
	if err != nil {
		return err
	}
	// A campaign that went out keeps its counters for reports.
	if campaign.Status != model.CampaignStatusDraft && campaign.Status != model.CampaignStatusCancelled {
		return ErrCampaignNotEditable
	}

	if err := s.campaigns.Delete(ctx, companyID, campaignID); err != nil {
		return fmt.Errorf("deleting campaign: %w", err)
	}
	return nil
}

func (s *campaignService) Schedule(ctx context.Context, companyID, campaignID int64, at time.Time) (*model.Campaign, error) {
	if !at.After(s.now()) {
		return nil, fmt.Errorf("%w: scheduled_at must be in the future", ErrInvalidInput)
	}

	campaign, err := s.Get(ctx, companyID, campaignID)
	if err != nil {
		return nil, err
	}
	if campaign.ConnectionID == nil {
		return nil, fmt.Errorf("%w: a connection is required before scheduling", ErrInvalidInput)
	}

	return s.transition(ctx, campaign, model.CampaignStatusScheduled, &at)
}

func (s *campaignService) Cancel(ctx context.Context, companyID, campaignID int64) (*model.Campaign, error) {
	campaign, err := s.Get(ctx, companyID, campaignID)
	if err != nil {
		return nil, err
	}
	return s.transition(ctx, campaign, model.CampaignStatusCancelled, campaign.ScheduledAt)
}

func (s *campaignService) Report(ctx context.Context, companyID int64) (*model.CampaignReport, error) {
	totals, err := s.campaigns.Totals(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("getting campaign totals: %w", err)
	}
	byStatus, err := s.campaigns.CountByStatus(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("counting campaigns by status: %w", err)
	}

	report := &model.CampaignReport{
		Totals:   totals,
		ByStatus: byStatus,
	}
	if totals.Sent > 0 {
		report.DeliveryRate = float64(totals.Delivered) / float64(totals.Sent)
	}
	if totals.Delivered > 0 {
		report.ReadRate = float64(totals.Read) / float64(totals.Delivered)
	}
	return report, nil
}

func (s *campaignService) transition(ctx context.Context, campaign *model.Campaign, next model.CampaignStatus, scheduledAt *time.Time) (*model.Campaign, error) {
	if !campaign.Status.CanTransitionTo(next) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, campaign.Status, next)
	}

	updated, err := s.campaigns.UpdateStatus(ctx, campaign.CompanyID, campaign.ID, campaign.Status, next, scheduledAt)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// the dispatcher moved it first
			return nil, fmt.Errorf("%w: %s changed before -> %s", ErrInvalidTransition, campaign.Status, next)
		}
		return nil, fmt.Errorf("updating campaign status: %w", err)
	}

	slog.InfoContext(ctx, "campaign status changed",
		"campaign_id", campaign.ID,
		"from", campaign.Status,
		"to", next)
	return updated, nil
}

func (s *campaignService) apply(ctx context.Context, campaign *model.Campaign, p CampaignParams) error {
	if p.Name != nil {
		campaign.Name = strings.TrimSpace(*p.Name)
	}
	if p.Message != nil {
		campaign.Message = strings.TrimSpace(*p.Message)
	}
	if p.ConnectionID != nil {
		if _, err := s.connections.GetByID(ctx, campaign.CompanyID, *p.ConnectionID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return fmt.Errorf("%w: connection %d does not exist", ErrInvalidInput, *p.ConnectionID)
			}
			return fmt.Errorf("getting connection: %w", err)
		}
		campaign.ConnectionID = p.ConnectionID
	}

	if campaign.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if campaign.Message == "" {
		return fmt.Errorf("%w: message is required", ErrInvalidInput)
	}
	return nil
}
