package memory

import (
	"context"
	"errors"

	"grubdash/internal/core/ports"
)

var ErrUnitOfWorkIsNotActive = errors.New("unit of work is not active: call Begin first")

// UnitOfWorkFactory creates units of work over one Store.
type UnitOfWorkFactory struct {
	store *Store
}

func NewUnitOfWorkFactory(store *Store) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{store: store}
}

func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{store: f.store}
}

// UnitOfWork serializes commands on the store's write lock. Writes are staged and
// applied on Commit; Rollback drops them.
//
// A UnitOfWork is used by a single goroutine.
type UnitOfWork struct {
	store   *Store
	active  bool
	pending []func(*Store)
}

// Begin takes the write lock. Calling Begin on an active unit of work is a no-op.
func (uow *UnitOfWork) Begin(ctx context.Context) error {
	if uow.active {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	uow.store.mu.Lock()
	uow.active = true
	return nil
}

// Commit applies the staged writes in order and releases the lock.
func (uow *UnitOfWork) Commit(_ context.Context) error {
	if !uow.active {
		return ErrUnitOfWorkIsNotActive
	}

	for _, apply := range uow.pending {
		apply(uow.store)
	}
	uow.release()
	return nil
}

// Rollback discards the staged writes and releases the lock.
func (uow *UnitOfWork) Rollback(_ context.Context) error {
	if !uow.active {
		return ErrUnitOfWorkIsNotActive
	}

	uow.release()
	return nil
}

func (uow *UnitOfWork) DishRepository() ports.DishRepository {
	return &dishRepository{uow: uow}
}

func (uow *UnitOfWork) OrderRepository() ports.OrderRepository {
	return &orderRepository{uow: uow}
}

func (uow *UnitOfWork) stage(apply func(*Store)) {
	uow.pending = append(uow.pending, apply)
}

func (uow *UnitOfWork) release() {
	uow.pending = nil
	uow.active = false
	uow.store.mu.Unlock()
}

func (uow *UnitOfWork) check() error {
	if !uow.active {
		return ErrUnitOfWorkIsNotActive
	}
	return nil
}
