package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"masteria.app/panel/core/db/sqlc"
	"masteria.app/panel/internal/model"
)

type kommoEventStore struct {
	queries *sqlc.Queries
}

func newKommoEventStore(queries *sqlc.Queries) KommoEventStore {
	return &kommoEventStore{queries: queries}
}

func (s *kommoEventStore) Create(ctx context.Context, event *model.KommoEvent) (bool, error) {
	row, err := s.queries.CreateKommoEvent(ctx, sqlc.CreateKommoEventParams{
		ID:        event.ID,
		CompanyID: event.CompanyID,
		EventType: event.EventType,
		Payload:   event.Payload,
		DedupeKey: event.DedupeKey,
	})
	if err == nil {
		*event = *toKommoEventModel(row)
		return true, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return false, mapErr(err)
	}

	// ON CONFLICT DO NOTHING returned no row: the key is already stored.
	existing, err := s.queries.GetKommoEventByDedupeKey(ctx, event.DedupeKey)
	if err != nil {
		return false, mapErr(err)
	}
	*event = *toKommoEventModel(existing)
	return false, nil
}

func (s *kommoEventStore) GetByID(ctx context.Context, id int64) (*model.KommoEvent, error) {
	row, err := s.queries.GetKommoEvent(ctx, id)
	if err != nil {
		return nil, mapErr(err)
	}
	return toKommoEventModel(row), nil
}

func (s *kommoEventStore) MarkProcessed(ctx context.Context, id int64) error {
	return s.queries.MarkKommoEventProcessed(ctx, id)
}

func (s *kommoEventStore) MarkFailed(ctx context.Context, id int64, reason string) error {
	return s.queries.MarkKommoEventFailed(ctx, sqlc.MarkKommoEventFailedParams{
		ID:              id,
		ProcessingError: &reason,
	})
}

func (s *kommoEventStore) MarkRejected(ctx context.Context, id int64, reason string) error {
	return s.queries.MarkKommoEventRejected(ctx, sqlc.MarkKommoEventRejectedParams{
		ID:              id,
		ProcessingError: &reason,
	})
}

func toKommoEventModel(row sqlc.KommoEvent) *model.KommoEvent {
	return &model.KommoEvent{
		ID:              row.ID,
		CompanyID:       row.CompanyID,
		EventType:       row.EventType,
		Payload:         row.Payload,
		DedupeKey:       row.DedupeKey,
		ProcessedAt:     timePtr(row.ProcessedAt),
		ProcessingError: row.ProcessingError,
		CreatedAt:       row.CreatedAt.Time,
	}
}
