// Package commands contains business operations that modify system state.
// Every command runs its validation chain and its mutation inside one unit of work,
// so no other command observes the store between the checks and the write.
package commands

import (
	"context"

	"grubdash/internal/core/ports"
)

// Unit of Work interfaces provide the mutual-exclusion boundary for command handlers.
type (
	// TxManager handles the lifecycle of the boundary.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// DishRepoFactory provides access to the dish repository within a boundary.
	DishRepoFactory interface {
		DishRepository() ports.DishRepository
	}

	// OrderRepoFactory provides access to the order repository within a boundary.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// DishUoW manages the boundary for dish operations.
	DishUoW interface {
		TxManager
		DishRepoFactory
	}

	// DishUoWFactory creates new dish unit of work instances.
	DishUoWFactory interface {
		Create() DishUoW
	}

	// OrderUoW manages the boundary for order operations.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   repo := uow.OrderRepository()
	//   // ... run checks, mutate
	//
	//   err = uow.Commit(ctx)
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}
)
