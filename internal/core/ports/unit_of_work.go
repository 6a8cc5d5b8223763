package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is the boundary inside which a command runs its checks and its mutation.
// No other command observes the store between Begin and Commit/Rollback.
type UnitOfWork interface {
	// Begin opens the boundary.
	Begin(ctx context.Context) error

	// Commit makes the changes visible and closes the boundary.
	Commit(ctx context.Context) error

	// Rollback discards pending changes and closes the boundary.
	// Returns an error if no boundary is open.
	Rollback(ctx context.Context) error

	// DishRepository returns a DishRepository bound to the current boundary.
	DishRepository() DishRepository

	// OrderRepository returns an OrderRepository bound to the current boundary.
	OrderRepository() OrderRepository
}
