package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"buttery/internal/core/domain/model/conversation"
	"buttery/internal/core/domain/model/kernel"
	"buttery/internal/core/domain/model/menu"
	"buttery/internal/core/domain/model/order"
	"buttery/internal/core/domain/services"
	"buttery/internal/core/ports"
	"buttery/internal/pkg/errs"
)

// Choice is a menu item offered to the customer.
type Choice struct {
	ItemID   kernel.ID
	Name     string
	Price    kernel.Money
	Quantity int
}

func newChoice(item *menu.Item) Choice {
	return Choice{
		ItemID:   item.ID(),
		Name:     item.Name(),
		Price:    item.Price(),
		Quantity: item.Quantity(),
	}
}

// customerRef identifies the customer behind a conversational intent.
type customerRef struct {
	name   string
	chatID int64
}

func newCustomerRef(name string, chatID int64) (customerRef, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return customerRef{}, errs.NewValueIsRequiredError("customer name")
	}
	if chatID == 0 {
		return customerRef{}, errs.NewValueIsRequiredError("chat id")
	}
	return customerRef{name: name, chatID: chatID}, nil
}

// loadConversation returns the stored conversation, or a new idle one, with
// the chat id refreshed.
func loadConversation(
	ctx context.Context,
	repo ports.ConversationRepository,
	customer customerRef,
	now time.Time,
) (*conversation.Conversation, error) {
	c, err := repo.Get(ctx, customer.name)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return conversation.New(customer.name, customer.chatID, now)
	}
	if err != nil {
		return nil, err
	}

	c.Touch(customer.chatID, now)
	return c, nil
}

// pendingOrder returns the only Pending order among orders, nil if there is none.
func pendingOrder(orders []*order.Order) (*order.Order, error) {
	var found *order.Order
	for _, o := range orders {
		if o.Status() != order.Pending {
			continue
		}
		if found != nil {
			return nil, fmt.Errorf("%w: orders %s and %s of %s",
				ErrMultiplePendingOrdersDetected, found.ID(), o.ID(), o.CustomerName())
		}
		found = o
	}
	return found, nil
}

// customerPendingOrder loads the customer's Pending order and logs a broken
// one-pending-order invariant.
func customerPendingOrder(
	ctx context.Context,
	repo ports.OrderRepository,
	customer string,
	logger *slog.Logger,
) (*order.Order, error) {
	orders, err := repo.GetAllByCustomer(ctx, customer)
	if err != nil {
		return nil, err
	}

	pending, err := pendingOrder(orders)
	if err != nil {
		logger.Warn("invariant violated", "customer", customer, "error", err)
		return nil, err
	}
	return pending, nil
}

// selectableItems lists menu items not on the pending order, in id order.
func selectableItems(items []*menu.Item, pending *order.Order) []Choice {
	choices := make([]Choice, 0, len(items))
	for _, item := range items {
		if pending != nil && pending.HasItem(item.ID()) {
			continue
		}
		choices = append(choices, newChoice(item))
	}
	return choices
}

// finalizeOrder prices the customer's only Pending order, closes it for editing
// and moves the conversation on to the payment proof.
func finalizeOrder(
	ctx context.Context,
	uow UoW,
	conv *conversation.Conversation,
	now time.Time,
	logger *slog.Logger,
) (services.Receipt, error) {
	pending, err := customerPendingOrder(ctx, uow.OrderRepository(), conv.CustomerName(), logger)
	if err != nil {
		return services.Receipt{}, err
	}
	if pending == nil {
		logger.Warn("finalize without a pending order", "customer", conv.CustomerName())
		return services.Receipt{}, fmt.Errorf("%w: no pending order for %s", ErrOrderNotFound, conv.CustomerName())
	}

	items, err := uow.MenuRepository().GetAll(ctx)
	if err != nil {
		return services.Receipt{}, err
	}

	receipt, err := services.NewOrderPricer().Price(pending, items)
	if err != nil {
		return services.Receipt{}, err
	}

	if err = pending.Finalize(); err != nil {
		return services.Receipt{}, err
	}
	if err = uow.OrderRepository().Update(ctx, pending); err != nil {
		return services.Receipt{}, err
	}

	conv.AwaitPaymentProof(pending.ID(), now)
	if err = uow.ConversationRepository().Save(ctx, conv); err != nil {
		return services.Receipt{}, err
	}

	logger.Info("order finalized", "order_id", pending.ID().Int64(), "customer", pending.CustomerName(),
		"total", receipt.Total.String())
	return receipt, nil
}
