package queries

import (
	"context"

	"grubdash/internal/core/domain/model/dish"
	"grubdash/internal/core/ports"
)

type ListDishesQueryHandler struct {
	reader ports.DishReader
}

func NewListDishesQueryHandler(reader ports.DishReader) ListDishesQueryHandler {
	return ListDishesQueryHandler{reader: reader}
}

// Handle returns every dish. An empty menu yields an empty, non-nil slice.
func (h ListDishesQueryHandler) Handle(ctx context.Context, query ListDishesQuery) ([]*dish.Dish, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	dishes, err := h.reader.List(ctx)
	if err != nil {
		return nil, err
	}
	if dishes == nil {
		dishes = make([]*dish.Dish, 0)
	}
	return dishes, nil
}
