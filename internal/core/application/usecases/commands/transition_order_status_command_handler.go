package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"buttery/internal/core/domain/model/order"
	"buttery/internal/core/ports"
	"buttery/internal/pkg/errs"
)

const orderReadyText = "Your order is ready to collect!"

// TransitionOrderStatusCommandHandler applies admin status changes. Only the
// current status matters. Moving an order to OrderReady notifies its customer
// after the commit.
type TransitionOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.Notifier
	logger     *slog.Logger
}

func NewTransitionOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	notifier ports.Notifier,
	logger *slog.Logger,
) TransitionOrderStatusCommandHandler {
	return TransitionOrderStatusCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		logger:     logger.With("component", "transition_order_status"),
	}
}

func (h TransitionOrderStatusCommandHandler) Handle(ctx context.Context, cmd TransitionOrderStatusCommand) error {
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

	orderRepo := uow.OrderRepository()

	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return fmt.Errorf("%w: %w", ErrOrderNotFound, err)
	}
	if err != nil {
		return err
	}

	from := o.Status()
	if err = o.ChangeStatus(cmd.Target(), cmd.Restricted()); err != nil {
		return err
	}

	if cmd.Target() == order.Pending && from != order.Pending {
		orders, listErr := orderRepo.GetAllByCustomer(ctx, o.CustomerName())
		if listErr != nil {
			return listErr
		}
		for _, other := range orders {
			if other.Status() == order.Pending && !other.ID().IsEqual(o.ID()) {
				return fmt.Errorf("%w: order %s", ErrDuplicatePendingOrder, other.ID())
			}
		}
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.logger.Info("order status changed", "order_id", o.ID().Int64(), "from", from.String(),
		"to", o.Status().String(), "restricted", cmd.Restricted())

	if o.Status() == order.OrderReady && o.ChatID() == 0 {
		h.logger.Warn("order ready but customer has no chat", "order_id", o.ID().Int64())
	} else if o.Status() == order.OrderReady {
		n := ports.Notification{
			Event:           ports.EventOrderReady,
			RecipientChatID: o.ChatID(),
			OrderID:         o.ID(),
			Customer:        o.CustomerName(),
			Text:            orderReadyText,
		}
		if notifyErr := h.notifier.Notify(ctx, n); notifyErr != nil {
			h.logger.Error("failed to notify customer", "order_id", o.ID().Int64(),
				"chat_id", o.ChatID(), "error", notifyErr)
		}
	}

	return nil
}
