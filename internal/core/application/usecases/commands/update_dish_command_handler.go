package commands

import (
	"context"

	"grubdash/internal/core/application/pipeline"
	"grubdash/internal/core/domain/model/dish"
)

// UpdateDishCommandHandler overwrites name, description, price and image_url of an
// existing dish. The id never changes.
type UpdateDishCommandHandler struct {
	uowFactory DishUoWFactory
}

func NewUpdateDishCommandHandler(uowFactory DishUoWFactory) UpdateDishCommandHandler {
	return UpdateDishCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h UpdateDishCommandHandler) Handle(ctx context.Context, cmd UpdateDishCommand) (*dish.Dish, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.DishRepository()
	data := cmd.Data()
	c := &pipeline.Context[*dish.Dish]{RouteID: cmd.DishID(), Data: data}

	if err := pipeline.Run(ctx, c, UpdateDishChecks(repo)...); err != nil {
		return nil, err
	}

	updated := c.Found
	price, _ := data.Integer("price")
	if err := updated.Replace(data.Text("name"), data.Text("description"), price, data.Text("image_url")); err != nil {
		return nil, invalid("Dish", err)
	}

	if err := repo.Update(ctx, updated); err != nil {
		return nil, err
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}

	return updated, nil
}
