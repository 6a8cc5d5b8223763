package memory

import (
	"context"
	"fmt"

	"grubdash/internal/core/domain/model/kernel"
	"grubdash/internal/core/domain/model/order"
	"grubdash/internal/pkg/errs"
)

type orderRepository struct {
	uow *UnitOfWork
}

func (r *orderRepository) NextID(_ context.Context) (kernel.ID, error) {
	if err := r.uow.check(); err != nil {
		return kernel.ID{}, err
	}
	s := r.uow.store
	return nextID(s.orderIDs, &s.orders), nil
}

func (r *orderRepository) Add(_ context.Context, aggregate *order.Order) error {
	if err := r.uow.check(); err != nil {
		return err
	}
	if err := aggregate.Validate(); err != nil {
		return err
	}

	record := orderFromDomain(aggregate)
	if r.uow.store.orders.findIndex(record.ID) >= 0 {
		return errs.NewValueIsInvalidErrorWithCause("orderId", fmt.Errorf("order %s already exists", record.ID))
	}

	r.uow.stage(func(s *Store) {
		s.orders.append(record)
		s.orderIDs.Observe(aggregate.ID())
	})
	return nil
}

func (r *orderRepository) Update(_ context.Context, aggregate *order.Order) error {
	if err := r.uow.check(); err != nil {
		return err
	}
	if err := aggregate.Validate(); err != nil {
		return err
	}

	record := orderFromDomain(aggregate)
	if r.uow.store.orders.findIndex(record.ID) < 0 {
		return errs.NewObjectNotFoundError("orderId", record.ID)
	}

	r.uow.stage(func(s *Store) {
		if i := s.orders.findIndex(record.ID); i >= 0 {
			s.orders.replaceAt(i, record)
		}
	})
	return nil
}

func (r *orderRepository) Get(_ context.Context, id kernel.ID) (*order.Order, error) {
	if err := r.uow.check(); err != nil {
		return nil, err
	}
	return getOrder(r.uow.store, id)
}

func (r *orderRepository) Remove(_ context.Context, id kernel.ID) error {
	if err := r.uow.check(); err != nil {
		return err
	}
	if err := id.Validate(); err != nil {
		return err
	}
	if r.uow.store.orders.findIndex(id.String()) < 0 {
		return errs.NewObjectNotFoundError("orderId", id.String())
	}

	r.uow.stage(func(s *Store) {
		if i := s.orders.findIndex(id.String()); i >= 0 {
			s.orders.removeAt(i)
		}
	})
	return nil
}

// OrderReader serves queries under the read lock.
type OrderReader struct {
	store *Store
}

func NewOrderReader(store *Store) *OrderReader {
	return &OrderReader{store: store}
}

func (r *OrderReader) List(_ context.Context) ([]*order.Order, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	records := r.store.orders.list()
	orders := make([]*order.Order, 0, len(records))
	for _, record := range records {
		o, err := orderToDomain(record.clone())
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}

func (r *OrderReader) Get(_ context.Context, id kernel.ID) (*order.Order, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return getOrder(r.store, id)
}

func (r *OrderReader) CountByStatus(_ context.Context) (map[order.Status]int, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	counts := make(map[order.Status]int)
	for _, record := range r.store.orders.list() {
		counts[order.Status(record.Status)]++
	}
	return counts, nil
}

// getOrder expects the caller to hold the store lock.
func getOrder(s *Store, id kernel.ID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	record, ok := s.orders.find(id.String())
	if !ok {
		return nil, errs.NewObjectNotFoundError("orderId", id.String())
	}
	return orderToDomain(record.clone())
}
