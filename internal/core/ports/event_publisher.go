package ports

import (
	"context"

	"grubdash/internal/core/domain/model/order"
)

// OrderEventPublisher delivers order change notifications after commit.
type OrderEventPublisher interface {
	Publish(ctx context.Context, event order.ChangedEvent) error
}
