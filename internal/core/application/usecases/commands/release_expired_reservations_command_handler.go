package commands

import (
	"context"
	"errors"
	"log/slog"

	"buttery/internal/core/domain/model/order"
	"buttery/internal/pkg/errs"
)

// ReleaseExpiredReservationsCommandHandler deletes Pending orders created
// before the cutoff whose customer has not written since, puts their portions
// back on the menu and resets the customer's conversation.
type ReleaseExpiredReservationsCommandHandler struct {
	uowFactory UoWFactory
	logger     *slog.Logger
}

func NewReleaseExpiredReservationsCommandHandler(
	uowFactory UoWFactory,
	logger *slog.Logger,
) ReleaseExpiredReservationsCommandHandler {
	return ReleaseExpiredReservationsCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With("component", "release_expired_reservations"),
	}
}

// Handle returns the number of released orders.
func (h ReleaseExpiredReservationsCommandHandler) Handle(
	ctx context.Context,
	cmd ReleaseExpiredReservationsCommand,
) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	convRepo := uow.ConversationRepository()
	cutoff := cmd.Cutoff()

	pending, err := orderRepo.GetAllInStatus(ctx, order.Pending)
	if err != nil {
		return 0, err
	}

	released := 0
	for _, o := range pending {
		if o.CreatedAt().After(cutoff) {
			continue
		}

		conv, convErr := convRepo.Get(ctx, o.CustomerName())
		switch {
		case errors.Is(convErr, errs.ErrObjectNotFound):
			conv = nil
		case convErr != nil:
			return 0, convErr
		case conv.UpdatedAt().After(cutoff):
			continue
		}

		if err = h.release(ctx, uow, o); err != nil {
			return 0, err
		}
		if conv != nil {
			conv.Reset(cmd.Now())
			if err = convRepo.Save(ctx, conv); err != nil {
				return 0, err
			}
		}

		h.logger.Info("released abandoned order", "order_id", o.ID().Int64(), "customer", o.CustomerName(),
			"created_at", o.CreatedAt())
		released++
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return released, nil
}

func (h ReleaseExpiredReservationsCommandHandler) release(
	ctx context.Context,
	uow UoW,
	o *order.Order,
) error {
	menuRepo := uow.MenuRepository()
	for _, line := range o.Lines() {
		item, err := menuRepo.Get(ctx, line.ItemID())
		if errors.Is(err, errs.ErrObjectNotFound) {
			h.logger.Warn("order line refers to a missing menu item", "order_id", o.ID().Int64(),
				"item_id", line.ItemID().Int64())
			continue
		}
		if err != nil {
			return err
		}

		if err = item.Release(line.Quantity()); err != nil {
			return err
		}
		if err = menuRepo.Update(ctx, item); err != nil {
			return err
		}
	}

	return uow.OrderRepository().Delete(ctx, o.ID())
}
