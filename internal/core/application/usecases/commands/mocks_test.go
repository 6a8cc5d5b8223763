package commands_test

import (
	"context"

	"grubdash/internal/core/application/usecases/commands"
	"grubdash/internal/core/domain/model/dish"
	"grubdash/internal/core/domain/model/kernel"
	"grubdash/internal/core/domain/model/order"
	"grubdash/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockDishRepository struct{ mock.Mock }

func (m *MockDishRepository) NextID(ctx context.Context) (kernel.ID, error) {
	args := m.Called(ctx)
	return args.Get(0).(kernel.ID), args.Error(1)
}
func (m *MockDishRepository) Add(ctx context.Context, d *dish.Dish) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}
func (m *MockDishRepository) Update(ctx context.Context, d *dish.Dish) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}
func (m *MockDishRepository) Get(ctx context.Context, id kernel.ID) (*dish.Dish, error) {
	args := m.Called(ctx, id)
	d, _ := args.Get(0).(*dish.Dish)
	return d, args.Error(1)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) NextID(ctx context.Context) (kernel.ID, error) {
	args := m.Called(ctx)
	return args.Get(0).(kernel.ID), args.Error(1)
}
func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOrderRepository) Get(ctx context.Context, id kernel.ID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}
func (m *MockOrderRepository) Remove(ctx context.Context, id kernel.ID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) DishRepository() ports.DishRepository {
	args := m.Called()
	return args.Get(0).(ports.DishRepository)
}
func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockDishUoWFactory struct{ mock.Mock }

func (m *MockDishUoWFactory) Create() commands.DishUoW {
	args := m.Called()
	return args.Get(0).(commands.DishUoW)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockPublisher struct{ mock.Mock }

func (m *MockPublisher) Publish(ctx context.Context, event order.ChangedEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}
