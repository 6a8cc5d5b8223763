// Package events holds the publisher used when no message broker is configured.
package events

import (
	"context"
	"log/slog"

	"grubdash/internal/core/domain/model/order"
)

// LogPublisher writes each order.ChangedEvent to a structured log.
type LogPublisher struct {
	logger *slog.Logger
}

func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	return &LogPublisher{logger: logger.With("component", "order-events")}
}

func (p *LogPublisher) Publish(ctx context.Context, event order.ChangedEvent) error {
	p.logger.InfoContext(ctx, "order changed",
		"order_id", event.OrderID,
		"status", event.Status.String(),
		"change", string(event.Change),
		"occurred_at", event.OccurredAt,
	)
	return nil
}
