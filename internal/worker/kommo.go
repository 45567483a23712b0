package worker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"masteria.app/panel/common/logger"
	"masteria.app/panel/internal/model"
	"masteria.app/panel/internal/queue"
	"masteria.app/panel/internal/store"
)

// KommoEventProcessor fires automation rules for a stored Kommo webhook event.
type KommoEventProcessor struct {
	events    store.KommoEventStore
	evaluator RuleEvaluator
}

func NewKommoEventProcessor(events store.KommoEventStore, evaluator RuleEvaluator) *KommoEventProcessor {
	return &KommoEventProcessor{events: events, evaluator: evaluator}
}

func (p *KommoEventProcessor) Process(ctx context.Context, msg queue.Message) error {
	event, err := p.events.GetByID(ctx, *msg.KommoEventID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			slog.WarnContext(ctx, "kommo event no longer exists, skipping", "kommo_event_id", *msg.KommoEventID)
			return nil
		}
		return fmt.Errorf("loading kommo event: %w", err)
	}

	ctx = logger.WithLogFields(ctx, logger.LogFields{
		CompanyID: &event.CompanyID,
		EventType: &event.EventType,
		Component: "masteria.worker.kommo",
	})

	if event.ProcessedAt != nil {
		slog.InfoContext(ctx, "kommo event already processed, skipping", "kommo_event_id", event.ID)
		return nil
	}

	var payload map[string]any
	if err := json.Unmarshal(event.Payload, &payload); err != nil {
		// A payload that does not decode now never will.
		reason := fmt.Sprintf("decoding payload: %v", err)
		if markErr := p.events.MarkRejected(ctx, event.ID, reason); markErr != nil {
			return fmt.Errorf("marking kommo event rejected: %w", markErr)
		}
		slog.WarnContext(ctx, "kommo event payload rejected", "kommo_event_id", event.ID, "error", err)
		return nil
	}

	logs, err := p.evaluator.Evaluate(ctx, event.CompanyID, event.Trigger(), payload)
	if err != nil {
		if markErr := p.events.MarkFailed(ctx, event.ID, err.Error()); markErr != nil {
			slog.ErrorContext(ctx, "failed to mark kommo event failed", "error", markErr)
		}
		return fmt.Errorf("evaluating automation rules: %w", err)
	}

	if err := p.events.MarkProcessed(ctx, event.ID); err != nil {
		return fmt.Errorf("marking kommo event processed: %w", err)
	}

	slog.InfoContext(ctx, "kommo event processed",
		"kommo_event_id", event.ID,
		"trigger", event.Trigger(),
		"dispatched", countStatus(logs, model.AutomationLogDispatched),
		"skipped", countStatus(logs, model.AutomationLogSkipped))
	return nil
}

func countStatus(logs []model.AutomationLog, status model.AutomationLogStatus) int {
	n := 0
	for _, l := range logs {
		if l.Status == status {
			n++
		}
	}
	return n
}
