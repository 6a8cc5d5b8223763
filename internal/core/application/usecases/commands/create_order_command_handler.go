package commands

import (
	"context"
	"log/slog"

	"grubdash/internal/core/application/pipeline"
	"grubdash/internal/core/domain/model/order"
	"grubdash/internal/core/ports"
)

// CreateOrderCommandHandler validates a new order, assigns it an id and appends it.
// The status defaults to pending when the payload has none.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   notifier
}

// NewCreateOrderCommandHandler creates the handler. publisher may be nil to disable
// change events.
func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.OrderEventPublisher,
	logger *slog.Logger,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   newNotifier(publisher, logger),
	}
}

func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
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

	if err := pipeline.Run(ctx, &pipeline.Context[*order.Order]{Data: data}, CreateOrderChecks()...); err != nil {
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

	id, err := repo.NextID(ctx)
	if err != nil {
		return nil, err
	}

	created, err := order.NewOrder(id, data.Text("deliverTo"), data.Text("mobileNumber"), status, items)
	if err != nil {
		return nil, invalid("Order", err)
	}

	if err = repo.Add(ctx, created); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.notifier.notify(ctx, order.NewChangedEvent(created, order.ChangeCreated))
	return created, nil
}
