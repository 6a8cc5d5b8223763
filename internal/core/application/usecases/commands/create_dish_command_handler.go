package commands

import (
	"context"

	"grubdash/internal/core/application/pipeline"
	"grubdash/internal/core/domain/model/dish"
)

// CreateDishCommandHandler validates a new dish, assigns it an id and appends it to
// the menu.
type CreateDishCommandHandler struct {
	uowFactory DishUoWFactory
}

func NewCreateDishCommandHandler(uowFactory DishUoWFactory) CreateDishCommandHandler {
	return CreateDishCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle returns the stored dish. A failed check returns a classified error and
// leaves the store untouched.
func (h CreateDishCommandHandler) Handle(ctx context.Context, cmd CreateDishCommand) (*dish.Dish, error) {
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

	if err := pipeline.Run(ctx, &pipeline.Context[*dish.Dish]{Data: data}, CreateDishChecks()...); err != nil {
		return nil, err
	}

	id, err := repo.NextID(ctx)
	if err != nil {
		return nil, err
	}

	price, _ := data.Integer("price")
	created, err := dish.NewDish(id, data.Text("name"), data.Text("description"), price, data.Text("image_url"))
	if err != nil {
		return nil, invalid("Dish", err)
	}

	if err = repo.Add(ctx, created); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return created, nil
}
