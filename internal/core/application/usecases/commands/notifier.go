package commands

import (
	"context"
	"log/slog"

	"grubdash/internal/core/domain/model/order"
	"grubdash/internal/core/ports"
)

// notifier publishes order changes after commit. A failed publish is logged and never
// reported to the caller: the change is already durable.
type notifier struct {
	publisher ports.OrderEventPublisher
	logger    *slog.Logger
}

func newNotifier(publisher ports.OrderEventPublisher, logger *slog.Logger) notifier {
	if logger == nil {
		logger = slog.Default()
	}
	return notifier{
		publisher: publisher,
		logger:    logger.With("component", "order-events"),
	}
}

func (n notifier) notify(ctx context.Context, event order.ChangedEvent) {
	if n.publisher == nil {
		return
	}
	if err := n.publisher.Publish(ctx, event); err != nil {
		n.logger.WarnContext(ctx, "failed to publish order event",
			"order_id", event.OrderID,
			"change", event.Change,
			"error", err,
		)
	}
}
