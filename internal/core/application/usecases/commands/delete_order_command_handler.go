package commands

import (
	"context"
	"log/slog"

	"grubdash/internal/core/application/pipeline"
	"grubdash/internal/core/domain/model/order"
	"grubdash/internal/core/ports"
)

type DeleteOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   notifier
}

func NewDeleteOrderCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.OrderEventPublisher,
	logger *slog.Logger,
) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   newNotifier(publisher, logger),
	}
}

// Handle removes the order. Nothing is returned on success.
func (h DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()
	c := &pipeline.Context[*order.Order]{RouteID: cmd.OrderID()}

	if err := pipeline.Run(ctx, c, DeleteOrderChecks(repo)...); err != nil {
		return err
	}

	if err := repo.Remove(ctx, c.Found.ID()); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.notify(ctx, order.NewChangedEvent(c.Found, order.ChangeDeleted))
	return nil
}
