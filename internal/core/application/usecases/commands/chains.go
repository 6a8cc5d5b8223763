package commands

import (
	"context"

	"grubdash/internal/core/application/pipeline"
	"grubdash/internal/core/domain/model/dish"
	"grubdash/internal/core/domain/model/kernel"
	"grubdash/internal/core/domain/model/order"
	"grubdash/internal/core/ports"
)

const priceMessage = "Dish must have a price that is an integer greater than 0"

var (
	dishFields  = []string{"name", "description", "price", "image_url"}
	orderFields = []string{"deliverTo", "mobileNumber", "dishes"}
)

// CreateDishChecks is the chain run before a dish is created.
func CreateDishChecks() []pipeline.Check[*dish.Dish] {
	return []pipeline.Check[*dish.Dish]{
		pipeline.RequiredFields[*dish.Dish]("Dish", dishFields...),
		pipeline.IsPositiveInteger[*dish.Dish]("price", priceMessage),
	}
}

// UpdateDishChecks is the chain run before a dish is replaced.
func UpdateDishChecks(repo ports.DishRepository) []pipeline.Check[*dish.Dish] {
	return []pipeline.Check[*dish.Dish]{
		pipeline.Exists("Dish", func(ctx context.Context, id kernel.ID) (*dish.Dish, error) {
			return repo.Get(ctx, id)
		}),
		pipeline.RequiredFields[*dish.Dish]("Dish", dishFields...),
		pipeline.IsNumber[*dish.Dish]("price", priceMessage),
		pipeline.IsPositiveInteger[*dish.Dish]("price", priceMessage),
		pipeline.IDMatchesRoute[*dish.Dish]("Dish"),
	}
}

// CreateOrderChecks is the chain run before an order is created.
func CreateOrderChecks() []pipeline.Check[*order.Order] {
	return []pipeline.Check[*order.Order]{
		pipeline.RequiredFields[*order.Order]("Order", orderFields...),
		pipeline.HasLineItems[*order.Order]("dishes"),
		pipeline.OptionalStatusIsValid[*order.Order](),
	}
}

// UpdateOrderChecks is the chain run before an order is replaced.
func UpdateOrderChecks(repo ports.OrderRepository) []pipeline.Check[*order.Order] {
	return []pipeline.Check[*order.Order]{
		existingOrder(repo),
		pipeline.IDMatchesRoute[*order.Order]("Order"),
		pipeline.RequiredFields[*order.Order]("Order", orderFields...),
		pipeline.HasLineItems[*order.Order]("dishes"),
		pipeline.StatusIsValid(),
	}
}

// DeleteOrderChecks is the chain run before an order is removed.
func DeleteOrderChecks(repo ports.OrderRepository) []pipeline.Check[*order.Order] {
	return []pipeline.Check[*order.Order]{
		existingOrder(repo),
		pipeline.StatusIsPending(),
	}
}

func existingOrder(repo ports.OrderRepository) pipeline.Check[*order.Order] {
	return pipeline.Exists("Order", func(ctx context.Context, id kernel.ID) (*order.Order, error) {
		return repo.Get(ctx, id)
	})
}
