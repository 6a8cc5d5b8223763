package memory

import (
	"context"
	"fmt"

	"grubdash/internal/core/domain/model/dish"
	"grubdash/internal/core/domain/model/kernel"
	"grubdash/internal/pkg/errs"
)

type dishRepository struct {
	uow *UnitOfWork
}

func (r *dishRepository) NextID(_ context.Context) (kernel.ID, error) {
	if err := r.uow.check(); err != nil {
		return kernel.ID{}, err
	}
	s := r.uow.store
	return nextID(s.dishIDs, &s.dishes), nil
}

func (r *dishRepository) Add(_ context.Context, aggregate *dish.Dish) error {
	if err := r.uow.check(); err != nil {
		return err
	}
	if err := aggregate.Validate(); err != nil {
		return err
	}

	record := dishFromDomain(aggregate)
	if r.uow.store.dishes.findIndex(record.ID) >= 0 {
		return errs.NewValueIsInvalidErrorWithCause("dishId", fmt.Errorf("dish %s already exists", record.ID))
	}

	r.uow.stage(func(s *Store) {
		s.dishes.append(record)
		s.dishIDs.Observe(aggregate.ID())
	})
	return nil
}

func (r *dishRepository) Update(_ context.Context, aggregate *dish.Dish) error {
	if err := r.uow.check(); err != nil {
		return err
	}
	if err := aggregate.Validate(); err != nil {
		return err
	}

	record := dishFromDomain(aggregate)
	if r.uow.store.dishes.findIndex(record.ID) < 0 {
		return errs.NewObjectNotFoundError("dishId", record.ID)
	}

	r.uow.stage(func(s *Store) {
		if i := s.dishes.findIndex(record.ID); i >= 0 {
			s.dishes.replaceAt(i, record)
		}
	})
	return nil
}

func (r *dishRepository) Get(_ context.Context, id kernel.ID) (*dish.Dish, error) {
	if err := r.uow.check(); err != nil {
		return nil, err
	}
	return getDish(r.uow.store, id)
}

// DishReader serves queries under the read lock.
type DishReader struct {
	store *Store
}

func NewDishReader(store *Store) *DishReader {
	return &DishReader{store: store}
}

func (r *DishReader) List(_ context.Context) ([]*dish.Dish, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	records := r.store.dishes.list()
	dishes := make([]*dish.Dish, 0, len(records))
	for _, record := range records {
		d, err := dishToDomain(record)
		if err != nil {
			return nil, err
		}
		dishes = append(dishes, d)
	}
	return dishes, nil
}

func (r *DishReader) Get(_ context.Context, id kernel.ID) (*dish.Dish, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return getDish(r.store, id)
}

// getDish expects the caller to hold the store lock.
func getDish(s *Store, id kernel.ID) (*dish.Dish, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	record, ok := s.dishes.find(id.String())
	if !ok {
		return nil, errs.NewObjectNotFoundError("dishId", id.String())
	}
	return dishToDomain(record)
}
