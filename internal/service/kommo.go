package service

import (
	"context"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"masteria.app/panel/common/id"
	"masteria.app/panel/common/logger"
	"masteria.app/panel/internal/mapper"
	"masteria.app/panel/internal/model"
	"masteria.app/panel/internal/queue"
	"masteria.app/panel/internal/store"
)

var ErrWebhookUnauthorized = errors.New("webhook secret mismatch")

type KommoWebhook struct {
	CompanyID   int64
	Secret      string
	ContentType string
	Body        []byte
	Headers     map[string]string
}

type KommoIngestResult struct {
	Event      *model.KommoEvent
	Enqueued   bool
	Duplicated bool
}

type KommoService interface {
	Ingest(ctx context.Context, hook KommoWebhook) (*KommoIngestResult, error)
}

type kommoService struct {
	companies store.CompanyStore
	events    store.KommoEventStore
	mapper    mapper.EventMapper
	queue     queue.Producer
}

func NewKommoService(companies store.CompanyStore, events store.KommoEventStore, eventMapper mapper.EventMapper, producer queue.Producer) KommoService {
	return &kommoService{
		companies: companies,
		events:    events,
		mapper:    eventMapper,
		queue:     producer,
	}
}

func (s *kommoService) Ingest(ctx context.Context, hook KommoWebhook) (*KommoIngestResult, error) {
	company, err := s.companies.GetByID(ctx, hook.CompanyID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// same answer as a bad secret, so company ids cannot be probed
			return nil, ErrWebhookUnauthorized
		}
		return nil, fmt.Errorf("getting company: %w", err)
	}
	if company.WebhookSecret == "" || subtle.ConstantTimeCompare([]byte(company.WebhookSecret), []byte(hook.Secret)) != 1 {
		return nil, ErrWebhookUnauthorized
	}

	body, err := mapper.DecodeKommoBody(hook.ContentType, hook.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	eventType, err := s.mapper.Map(ctx, body, hook.Headers)
	if err != nil {
		if errors.Is(err, mapper.ErrUnknownEvent) {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		return nil, err
	}

	ctx = logger.WithLogFields(ctx, logger.LogFields{
		CompanyID: &company.ID,
		EventType: &eventType,
	})

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encoding payload: %w", err)
	}

	event := &model.KommoEvent{
		ID:        id.New(),
		CompanyID: company.ID,
		EventType: eventType,
		Payload:   payload,
		DedupeKey: kommoDedupeKey(company.ID, hook.Body),
	}

	created, err := s.events.Create(ctx, event)
	if err != nil {
		return nil, fmt.Errorf("storing kommo event: %w", err)
	}
	if !created && event.ProcessedAt != nil {
		slog.InfoContext(ctx, "duplicate kommo event deduped", "kommo_event_id", event.ID)
		return &KommoIngestResult{Event: event, Duplicated: true}, nil
	}

	// An unprocessed duplicate may be a redelivery after a failed enqueue.
	// The worker skips processed events, so enqueueing it again is safe.
	if err := s.queue.Enqueue(ctx, queue.Task{
		TaskType:     queue.TaskTypeKommoEvent,
		CompanyID:    &company.ID,
		KommoEventID: &event.ID,
		EventType:    event.EventType,
		TraceID:      traceID(ctx),
	}); err != nil {
		return nil, fmt.Errorf("enqueueing kommo event: %w", err)
	}

	slog.InfoContext(ctx, "kommo event accepted", "kommo_event_id", event.ID, "duplicate", !created)
	return &KommoIngestResult{Event: event, Duplicated: !created, Enqueued: true}, nil
}

// Kommo retries deliveries with the same body, so the body is the identity.
func kommoDedupeKey(companyID int64, body []byte) string {
	sum := sha256.Sum256(body)
	return fmt.Sprintf("kommo:%d:%s", companyID, hex.EncodeToString(sum[:]))
}
