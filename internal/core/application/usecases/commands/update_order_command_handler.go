package commands

import (
	"context"
	"log/slog"

	"grubdash/internal/core/application/pipeline"
	"grubdash/internal/core/domain/model/order"
	"grubdash/internal/core/ports"
)

// UpdateOrderCommandHandler replaces an order in full. Delivered orders are rejected
// by StatusIsValid before anything is written.
type UpdateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   notifier
}

func NewUpdateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.OrderEventPublisher,
	logger *slog.Logger,
) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   newNotifier(publisher, logger),
	}
}

func (h UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) (*order.Order, error) {
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

	repo := uow.OrderRepository()
	data := cmd.Data()
	c := &pipeline.Context[*order.Order]{RouteID: cmd.OrderID(), Data: data}

	if err := pipeline.Run(ctx, c, UpdateOrderChecks(repo)...); err != nil {
		return nil, err
	}

	items, err := lineItems(data)
	if err != nil {
		return nil, invalid("Order", err)
	}
	status, err := requestedStatus(data)
	if err != nil {
		return nil, invalid("Order", err)
	}

	updated := c.Found
	if err = updated.Replace(data.Text("deliverTo"), data.Text("mobileNumber"), status, items); err != nil {
		return nil, invalid("Order", err)
	}

	if err = repo.Update(ctx, updated); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.notifier.notify(ctx, order.NewChangedEvent(updated, order.ChangeUpdated))
	return updated, nil
}
