// Package mapper turns raw CRM webhook bodies into panel events.
package mapper

import (
	"context"
	"errors"
)

var ErrUnknownEvent = errors.New("unknown webhook event")

// EventMapper derives the event type from a decoded webhook body.
type EventMapper interface {
	Map(ctx context.Context, body map[string]any, headers map[string]string) (string, error)
}
