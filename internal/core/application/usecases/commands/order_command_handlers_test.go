package commands_test

import (
	"errors"
	"testing"

	"grubdash/internal/core/application/pipeline"
	"grubdash/internal/core/application/usecases/commands"
	"grubdash/internal/core/domain/model/kernel"
	"grubdash/internal/core/domain/model/order"
	"grubdash/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func validOrderPayload() pipeline.Payload {
	return pipeline.Payload{
		"deliverTo":    "Rick Sanchez, Earth C-137",
		"mobileNumber": "(202) 456-1111",
		"dishes": []any{
			map[string]any{"dishId": "1", "quantity": 2.0},
			map[string]any{"dishId": "2", "quantity": 1.0},
		},
	}
}

func orderFactory(uow *MockUoW) *MockOrderUoWFactory {
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()
	return factory
}

func storedOrder(t *testing.T, id string, status order.Status) *order.Order {
	t.Helper()
	item, err := order.NewLineItem("1", 1)
	require.NoError(t, err)
	o, err := order.RestoreOrder(kernel.MustNewID(id), "Old address", "555", status, []order.LineItem{item})
	require.NoError(t, err)
	return o
}

func isChange(change order.Change, id string, status order.Status) any {
	return mock.MatchedBy(func(e order.ChangedEvent) bool {
		return e.Change == change && e.OrderID == id && e.Status == status
	})
}

func TestCreateOrderCommandHandler_Handle_DefaultsToPending(t *testing.T) {
	ctx := t.Context()
	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	publisher := new(MockPublisher)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("NextID", ctx).Return(kernel.MustNewID("11"), nil).Once(),
		repo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		publisher.On("Publish", ctx, isChange(order.ChangeCreated, "11", order.Pending)).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewCreateOrderCommandHandler(orderFactory(uow), publisher, nil)
	created, err := h.Handle(ctx, commands.NewCreateOrderCommand(validOrderPayload()))

	require.NoError(t, err)
	assert.Equal(t, "11", created.ID().String())
	assert.Equal(t, order.Pending, created.Status())
	require.Len(t, created.Items(), 2)
	assert.Equal(t, "1", created.Items()[0].DishID())
	assert.Equal(t, 2, created.Items()[0].Quantity())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_KeepsSuppliedStatus(t *testing.T) {
	ctx := t.Context()
	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	repo.On("NextID", ctx).Return(kernel.MustNewID("1"), nil).Once()
	repo.On("Add", ctx, mock.Anything).Return(nil).Once()

	data := validOrderPayload()
	data["status"] = "preparing"

	h := commands.NewCreateOrderCommandHandler(orderFactory(uow), nil, nil)
	created, err := h.Handle(ctx, commands.NewCreateOrderCommand(data))

	require.NoError(t, err)
	assert.Equal(t, order.Preparing, created.Status())
}

func TestCreateOrderCommandHandler_Handle_PublishFailureIsNotReported(t *testing.T) {
	ctx := t.Context()
	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	publisher := new(MockPublisher)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	repo.On("NextID", ctx).Return(kernel.MustNewID("1"), nil).Once()
	repo.On("Add", ctx, mock.Anything).Return(nil).Once()
	publisher.On("Publish", ctx, mock.Anything).Return(errors.New("broker down")).Once()

	h := commands.NewCreateOrderCommandHandler(orderFactory(uow), publisher, nil)
	created, err := h.Handle(ctx, commands.NewCreateOrderCommand(validOrderPayload()))

	require.NoError(t, err)
	assert.NotNil(t, created)
	publisher.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_ValidationFailureWritesNothing(t *testing.T) {
	testCases := []struct {
		name    string
		mutate  func(pipeline.Payload)
		message string
	}{
		{"missing deliverTo", func(p pipeline.Payload) { delete(p, "deliverTo") }, "Order must include a deliverTo"},
		{"missing dishes", func(p pipeline.Payload) { delete(p, "dishes") }, "Order must include a dishes"},
		{"empty dishes", func(p pipeline.Payload) {
			p["dishes"] = []any{}
		}, "Order must include at least one dish"},
		{"bad quantity", func(p pipeline.Payload) {
			p["dishes"] = []any{
				map[string]any{"dishId": "1", "quantity": 1.0},
				map[string]any{"dishId": "2", "quantity": 0.0},
			}
		}, "Dish 1 must have a quantity that is an integer greater than 0"},
		{"unknown status", func(p pipeline.Payload) {
			p["status"] = "cooking"
		}, "Order must have a status of pending, preparing, out-for-delivery, delivered"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctx := t.Context()
			repo := new(MockOrderRepository)
			uow := new(MockUoW)
			publisher := new(MockPublisher)
			uow.On("Begin", ctx).Return(nil).Once()
			uow.On("OrderRepository").Return(repo).Once()
			uow.On("Rollback", ctx).Return(nil).Once()

			data := validOrderPayload()
			tc.mutate(data)

			h := commands.NewCreateOrderCommandHandler(orderFactory(uow), publisher, nil)
			_, err := h.Handle(ctx, commands.NewCreateOrderCommand(data))

			assert.True(t, errs.IsValidation(err))
			assert.Equal(t, tc.message, err.Error())
			repo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
			publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
		})
	}
}

func TestUpdateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	publisher := new(MockPublisher)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, kernel.MustNewID("5")).Return(storedOrder(t, "5", order.Pending), nil).Once(),
		repo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		publisher.On("Publish", ctx, isChange(order.ChangeUpdated, "5", order.Delivered)).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	data := validOrderPayload()
	data["status"] = "delivered"

	h := commands.NewUpdateOrderCommandHandler(orderFactory(uow), publisher, nil)
	updated, err := h.Handle(ctx, commands.NewUpdateOrderCommand("5", data))

	require.NoError(t, err)
	assert.Equal(t, "5", updated.ID().String())
	assert.Equal(t, "Rick Sanchez, Earth C-137", updated.DeliverTo())
	assert.Equal(t, order.Delivered, updated.Status())
	assert.Len(t, updated.Items(), 2)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestUpdateOrderCommandHandler_Handle_RejectsBeforeWriting(t *testing.T) {
	testCases := []struct {
		name    string
		stored  order.Status
		mutate  func(pipeline.Payload)
		message string
	}{
		{"delivered order", order.Delivered, func(p pipeline.Payload) {
			p["status"] = "pending"
		}, "A delivered order cannot be changed"},
		{"missing status", order.Pending, func(pipeline.Payload) {},
			"Order must have a status of pending, preparing, out-for-delivery, delivered"},
		{"id mismatch before missing fields", order.Pending, func(p pipeline.Payload) {
			p["id"] = "6"
			delete(p, "deliverTo")
		}, "Order id does not match route id. Order: 6, Route: 5."},
		{"missing fields before status", order.Pending, func(p pipeline.Payload) {
			delete(p, "mobileNumber")
			p["status"] = "bogus"
		}, "Order must include a mobileNumber"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctx := t.Context()
			repo := new(MockOrderRepository)
			uow := new(MockUoW)
			uow.On("Begin", ctx).Return(nil).Once()
			uow.On("OrderRepository").Return(repo).Once()
			uow.On("Rollback", ctx).Return(nil).Once()
			repo.On("Get", ctx, kernel.MustNewID("5")).Return(storedOrder(t, "5", tc.stored), nil).Once()

			data := validOrderPayload()
			tc.mutate(data)

			h := commands.NewUpdateOrderCommandHandler(orderFactory(uow), nil, nil)
			_, err := h.Handle(ctx, commands.NewUpdateOrderCommand("5", data))

			assert.True(t, errs.IsValidation(err))
			assert.Equal(t, tc.message, err.Error())
			repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
		})
	}
}

func TestUpdateOrderCommandHandler_Handle_NotFoundBeforeValidation(t *testing.T) {
	ctx := t.Context()
	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	repo.On("Get", ctx, kernel.MustNewID("42")).
		Return(nil, errs.NewObjectNotFoundError("orderId", "42")).Once()

	h := commands.NewUpdateOrderCommandHandler(orderFactory(uow), nil, nil)
	_, err := h.Handle(ctx, commands.NewUpdateOrderCommand("42", pipeline.Payload{}))

	assert.True(t, errs.IsNotFound(err))
	assert.Equal(t, "Order does not exist: 42.", err.Error())
}

func TestDeleteOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	publisher := new(MockPublisher)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, kernel.MustNewID("5")).Return(storedOrder(t, "5", order.Pending), nil).Once(),
		repo.On("Remove", ctx, kernel.MustNewID("5")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		publisher.On("Publish", ctx, isChange(order.ChangeDeleted, "5", order.Pending)).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewDeleteOrderCommandHandler(orderFactory(uow), publisher, nil)
	err := h.Handle(ctx, commands.NewDeleteOrderCommand("5"))

	require.NoError(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestDeleteOrderCommandHandler_Handle_RejectsNonPending(t *testing.T) {
	for _, status := range []order.Status{order.Preparing, order.OutForDelivery, order.Delivered} {
		t.Run(status.String(), func(t *testing.T) {
			ctx := t.Context()
			repo := new(MockOrderRepository)
			uow := new(MockUoW)
			uow.On("Begin", ctx).Return(nil).Once()
			uow.On("OrderRepository").Return(repo).Once()
			uow.On("Rollback", ctx).Return(nil).Once()
			repo.On("Get", ctx, kernel.MustNewID("5")).Return(storedOrder(t, "5", status), nil).Once()

			h := commands.NewDeleteOrderCommandHandler(orderFactory(uow), nil, nil)
			err := h.Handle(ctx, commands.NewDeleteOrderCommand("5"))

			assert.True(t, errs.IsValidation(err))
			assert.Equal(t, "An order cannot be deleted unless it is pending", err.Error())
			repo.AssertNotCalled(t, "Remove", mock.Anything, mock.Anything)
		})
	}
}

func TestDeleteOrderCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	repo.On("Get", ctx, kernel.MustNewID("8")).
		Return(nil, errs.NewObjectNotFoundError("orderId", "8")).Once()

	h := commands.NewDeleteOrderCommandHandler(orderFactory(uow), nil, nil)
	err := h.Handle(ctx, commands.NewDeleteOrderCommand("8"))

	assert.True(t, errs.IsNotFound(err))
	assert.Equal(t, "Order does not exist: 8.", err.Error())
}
