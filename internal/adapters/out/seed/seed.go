// Package seed fills an empty store with the sample menu and orders embedded in data/.
// Fixtures go through the domain constructors, so an invalid fixture fails start-up.
package seed

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"

	"grubdash/internal/core/domain/model/dish"
	"grubdash/internal/core/domain/model/kernel"
	"grubdash/internal/core/domain/model/order"
	"grubdash/internal/core/ports"
)

//go:embed data/*.json
var fixtures embed.FS

type dishFixture struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int    `json:"price"`
	ImageURL    string `json:"image_url"`
}

type lineItemFixture struct {
	DishID   string `json:"dishId"`
	Quantity int    `json:"quantity"`
}

type orderFixture struct {
	ID           string            `json:"id"`
	DeliverTo    string            `json:"deliverTo"`
	MobileNumber string            `json:"mobileNumber"`
	Status       string            `json:"status"`
	Dishes       []lineItemFixture `json:"dishes"`
}

// Dishes returns the embedded sample menu.
func Dishes() ([]*dish.Dish, error) {
	var raw []dishFixture
	if err := decode("data/dishes.json", &raw); err != nil {
		return nil, err
	}

	dishes := make([]*dish.Dish, 0, len(raw))
	for _, f := range raw {
		id, err := kernel.NewID(f.ID)
		if err != nil {
			return nil, err
		}
		d, err := dish.NewDish(id, f.Name, f.Description, f.Price, f.ImageURL)
		if err != nil {
			return nil, fmt.Errorf("dish fixture %s: %w", f.ID, err)
		}
		dishes = append(dishes, d)
	}
	return dishes, nil
}

// Orders returns the embedded sample orders.
func Orders() ([]*order.Order, error) {
	var raw []orderFixture
	if err := decode("data/orders.json", &raw); err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(raw))
	for _, f := range raw {
		o, err := f.toDomain()
		if err != nil {
			return nil, fmt.Errorf("order fixture %s: %w", f.ID, err)
		}
		orders = append(orders, o)
	}
	return orders, nil
}

// Run inserts the fixtures in one unit of work when both collections are empty.
// It reports whether anything was inserted.
func Run(
	ctx context.Context,
	factory ports.UnitOfWorkFactory,
	dishReader ports.DishReader,
	orderReader ports.OrderReader,
) (bool, error) {
	existingDishes, err := dishReader.List(ctx)
	if err != nil {
		return false, err
	}
	existingOrders, err := orderReader.List(ctx)
	if err != nil {
		return false, err
	}
	if len(existingDishes) > 0 || len(existingOrders) > 0 {
		return false, nil
	}

	dishes, err := Dishes()
	if err != nil {
		return false, err
	}
	orders, err := Orders()
	if err != nil {
		return false, err
	}

	uow := factory.Create()
	if err = uow.Begin(ctx); err != nil {
		return false, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	for _, d := range dishes {
		if err = uow.DishRepository().Add(ctx, d); err != nil {
			return false, err
		}
	}
	for _, o := range orders {
		if err = uow.OrderRepository().Add(ctx, o); err != nil {
			return false, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return false, err
	}
	return true, nil
}

func (f orderFixture) toDomain() (*order.Order, error) {
	id, err := kernel.NewID(f.ID)
	if err != nil {
		return nil, err
	}
	status, err := order.ParseStatus(f.Status)
	if err != nil {
		return nil, err
	}

	items := make([]order.LineItem, 0, len(f.Dishes))
	for _, d := range f.Dishes {
		item, itemErr := order.NewLineItem(d.DishID, d.Quantity)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(id, f.DeliverTo, f.MobileNumber, status, items)
}

func decode(name string, v any) error {
	b, err := fixtures.ReadFile(name)
	if err != nil {
		return err
	}
	if err = json.Unmarshal(b, v); err != nil {
		return fmt.Errorf("failed to decode %s: %w", name, err)
	}
	return nil
}
