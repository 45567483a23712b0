package worker

import (
	"context"

	"masteria.app/panel/internal/model"
	"masteria.app/panel/internal/queue"
)

// Consumer abstracts the message queue for testability.
type Consumer interface {
	Read(ctx context.Context) ([]queue.Message, error)
	Ack(ctx context.Context, msg queue.Message) error
	Requeue(ctx context.Context, msg queue.Message, errMsg string) error
	SendDLQ(ctx context.Context, msg queue.Message, errMsg string) error
}

// Processor handles one task type. Returning an error retries the message.
type Processor interface {
	Process(ctx context.Context, msg queue.Message) error
}

// RuleEvaluator runs a company's active automation rules for a trigger and
// records the outcome. service.AutomationService satisfies it.
type RuleEvaluator interface {
	Evaluate(ctx context.Context, companyID int64, trigger string, payload map[string]any) ([]model.AutomationLog, error)
}
