// Package ports defines the contracts between the application core and its adapters:
// repositories, read models, the unit of work and the event publisher.
package ports

import (
	"context"

	"grubdash/internal/core/domain/model/dish"
	"grubdash/internal/core/domain/model/kernel"
)

// DishRepository is the write-side store of dishes, bound to a unit of work.
type DishRepository interface {
	// NextID returns an id that no dish uses.
	NextID(ctx context.Context) (kernel.ID, error)

	// Add appends a new dish to the collection.
	Add(ctx context.Context, aggregate *dish.Dish) error

	// Update replaces the stored dish with the same id.
	Update(ctx context.Context, aggregate *dish.Dish) error

	// Get returns a copy of the dish, or an errs.ObjectNotFoundError.
	Get(ctx context.Context, id kernel.ID) (*dish.Dish, error)
}

// DishReader is the read side used by queries.
type DishReader interface {
	// List returns all dishes in insertion order.
	List(ctx context.Context) ([]*dish.Dish, error)

	// Get returns a copy of the dish, or an errs.ObjectNotFoundError.
	Get(ctx context.Context, id kernel.ID) (*dish.Dish, error)
}
