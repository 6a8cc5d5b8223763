package queries

import (
	"context"

	"grubdash/internal/core/application/pipeline"
	"grubdash/internal/core/domain/model/dish"
	"grubdash/internal/core/ports"
)

type GetDishQueryHandler struct {
	reader ports.DishReader
}

func NewGetDishQueryHandler(reader ports.DishReader) GetDishQueryHandler {
	return GetDishQueryHandler{reader: reader}
}

// Handle runs the Exists check alone, so a missing dish is reported with the same
// not-found message the update chain uses.
func (h GetDishQueryHandler) Handle(ctx context.Context, query GetDishQuery) (*dish.Dish, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	c := &pipeline.Context[*dish.Dish]{RouteID: query.DishID()}
	if err := pipeline.Run(ctx, c, pipeline.Exists("Dish", h.reader.Get)); err != nil {
		return nil, err
	}
	return c.Found, nil
}
