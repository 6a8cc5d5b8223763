package ports

import (
	"context"

	"grubdash/internal/core/domain/model/kernel"
	"grubdash/internal/core/domain/model/order"
)

// OrderRepository is the write-side store of orders, bound to a unit of work.
type OrderRepository interface {
	// NextID returns an id that no order uses.
	NextID(ctx context.Context) (kernel.ID, error)

	// Add appends a new order to the collection.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update replaces the stored order with the same id.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get returns a copy of the order, or an errs.ObjectNotFoundError.
	Get(ctx context.Context, id kernel.ID) (*order.Order, error)

	// Remove deletes the order, or returns an errs.ObjectNotFoundError.
	Remove(ctx context.Context, id kernel.ID) error
}

// OrderReader is the read side used by queries.
type OrderReader interface {
	// List returns all orders in insertion order.
	List(ctx context.Context) ([]*order.Order, error)

	// Get returns a copy of the order, or an errs.ObjectNotFoundError.
	Get(ctx context.Context, id kernel.ID) (*order.Order, error)

	// CountByStatus returns how many orders are in each status. Statuses without
	// orders may be absent from the map.
	CountByStatus(ctx context.Context) (map[order.Status]int, error)
}
