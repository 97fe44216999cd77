package http

import (
	"log/slog"
	"net/http"

	"buttery/internal/core/application/usecases/commands"
	"buttery/internal/core/application/usecases/queries"
	"buttery/internal/core/domain/model/kernel"
	"buttery/internal/core/domain/model/order"
	"buttery/internal/core/domain/services"

	"github.com/labstack/echo/v4"
)

// Handlers groups the use cases the server dispatches to.
type Handlers struct {
	StartOrder         commands.StartOrderCommandHandler
	SelectItem         commands.SelectItemCommandHandler
	SubmitQuantity     commands.SubmitQuantityCommandHandler
	ConfirmOrMore      commands.ConfirmOrMoreCommandHandler
	SubmitPaymentProof commands.SubmitPaymentProofCommandHandler
	TransitionStatus   commands.TransitionOrderStatusCommandHandler
	RestockMenuItem    commands.RestockMenuItemCommandHandler
	ReduceMenuItem     commands.ReduceMenuItemStockCommandHandler

	GetMenu            queries.GetMenuQueryHandler
	GetSelectableItems queries.GetSelectableItemsQueryHandler
	GetCustomerStatus  queries.GetCustomerStatusQueryHandler
	GetConversation    queries.GetConversationQueryHandler
	ListOrders         queries.ListOrdersQueryHandler
	GetOrderLines      queries.GetOrderLinesQueryHandler
}

// Server implements ServerInterface on top of the application use cases.
type Server struct {
	handlers Handlers
	logger   *slog.Logger
}

func NewServer(handlers Handlers, logger *slog.Logger) *Server {
	return &Server{
		handlers: handlers,
		logger:   logger.With("component", "http"),
	}
}

// GetMenu handles GET /api/v1/menu.
func (s *Server) GetMenu(ctx echo.Context) error {
	items, err := s.handlers.GetMenu.Handle(ctx.Request().Context(), queries.NewGetMenuQuery())
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toMenuItems(items))
}

// StartOrder handles POST /api/v1/customers/{customer}/order.
func (s *Server) StartOrder(ctx echo.Context, customer string) error {
	var body ChatRequest
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx)
	}

	cmd, err := commands.NewStartOrderCommand(customer, body.ChatID)
	if err != nil {
		return s.fail(ctx, err)
	}

	result, err := s.handlers.StartOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, ChoicesResponse{Choices: toChoices(result.Choices)})
}

// SelectItem handles POST /api/v1/customers/{customer}/order/item.
func (s *Server) SelectItem(ctx echo.Context, customer string) error {
	var body SelectItemRequest
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx)
	}

	cmd, err := commands.NewSelectItemCommand(customer, body.ChatID, body.Item)
	if err != nil {
		return s.fail(ctx, err)
	}

	choice, err := s.handlers.SelectItem.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toChoice(choice))
}

// SubmitQuantity handles POST /api/v1/customers/{customer}/order/quantity.
func (s *Server) SubmitQuantity(ctx echo.Context, customer string) error {
	var body QuantityRequest
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx)
	}

	cmd, err := commands.NewSubmitQuantityCommand(customer, body.ChatID, body.Quantity)
	if err != nil {
		return s.fail(ctx, err)
	}

	result, err := s.handlers.SubmitQuantity.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, QuantityResponse{
		OrderID:  result.OrderID.Int64(),
		Item:     toChoice(result.Item),
		Quantity: result.Quantity,
		Receipt:  toReceipt(result.Receipt),
	})
}

// ConfirmOrMore handles POST /api/v1/customers/{customer}/order/confirm.
func (s *Server) ConfirmOrMore(ctx echo.Context, customer string) error {
	var body ConfirmRequest
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx)
	}

	cmd, err := commands.NewConfirmOrMoreCommand(customer, body.ChatID, body.More)
	if err != nil {
		return s.fail(ctx, err)
	}

	result, err := s.handlers.ConfirmOrMore.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, ConfirmResponse{
		Choices: toChoices(result.Choices),
		Receipt: toReceipt(result.Receipt),
	})
}

// SubmitPaymentProof handles POST /api/v1/customers/{customer}/order/payment-proof.
func (s *Server) SubmitPaymentProof(ctx echo.Context, customer string) error {
	var body PaymentProofRequest
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx)
	}

	cmd, err := commands.NewSubmitPaymentProofCommand(customer, body.ChatID, body.Attachment)
	if err != nil {
		return s.fail(ctx, err)
	}

	result, err := s.handlers.SubmitPaymentProof.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, PaymentProofResponse{
		OrderID:   result.OrderID.Int64(),
		Forwarded: result.Forwarded,
	})
}

// GetCustomerStatus handles GET /api/v1/customers/{customer}/status.
func (s *Server) GetCustomerStatus(ctx echo.Context, customer string) error {
	query, err := queries.NewGetCustomerStatusQuery(customer)
	if err != nil {
		return s.fail(ctx, err)
	}

	status, err := s.handlers.GetCustomerStatus.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, CustomerStatus{
		OrderID: status.OrderID.Int64(),
		Status:  status.Status.String(),
	})
}

// GetConversation handles GET /api/v1/customers/{customer}/conversation.
func (s *Server) GetConversation(ctx echo.Context, customer string) error {
	query, err := queries.NewGetConversationQuery(customer)
	if err != nil {
		return s.fail(ctx, err)
	}

	conv, err := s.handlers.GetConversation.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := Conversation{
		Customer:       conv.CustomerName,
		Step:           conv.Step.String(),
		SelectedItemID: optionalID(conv.SelectedItem),
		OrderID:        optionalID(conv.OrderID),
	}
	if !conv.UpdatedAt.IsZero() {
		updatedAt := conv.UpdatedAt.UTC()
		response.UpdatedAt = &updatedAt
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetSelectableItems handles GET /api/v1/customers/{customer}/selectable-items.
func (s *Server) GetSelectableItems(ctx echo.Context, customer string) error {
	query, err := queries.NewGetSelectableItemsQuery(customer)
	if err != nil {
		return s.fail(ctx, err)
	}

	items, err := s.handlers.GetSelectableItems.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toMenuItems(items))
}

// ListOrders handles GET /api/v1/admin/orders.
func (s *Server) ListOrders(ctx echo.Context, params ListOrdersParams) error {
	var statuses []order.Status
	if params.Status != nil {
		for _, name := range *params.Status {
			status, err := order.ParseStatus(name)
			if err != nil {
				return s.fail(ctx, err)
			}
			statuses = append(statuses, status)
		}
	}

	query, err := queries.NewListOrdersQuery(statuses...)
	if err != nil {
		return s.fail(ctx, err)
	}

	details, err := s.handlers.ListOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]OrderDetail, len(details))
	for i, d := range details {
		response[i] = OrderDetail{
			OrderID:  d.OrderID.Int64(),
			Customer: d.CustomerName,
			Status:   d.Status.String(),
			Contents: d.Contents,
		}
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetOrderLines handles GET /api/v1/admin/orders/{orderId}/lines.
func (s *Server) GetOrderLines(ctx echo.Context, orderID int64) error {
	id, err := kernel.NewID(orderID)
	if err != nil {
		return s.fail(ctx, err)
	}
	query, err := queries.NewGetOrderLinesQuery(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	lines, err := s.handlers.GetOrderLines.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]OrderLine, len(lines))
	for i, l := range lines {
		response[i] = OrderLine{
			ItemID:    l.ItemID.Int64(),
			Name:      l.Name,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice.String(),
			Subtotal:  l.Subtotal.String(),
		}
	}
	return ctx.JSON(http.StatusOK, response)
}

// ChangeOrderStatus handles POST /api/v1/admin/orders/{orderId}/status.
// Without force only transitions of the restricted graph are accepted.
func (s *Server) ChangeOrderStatus(ctx echo.Context, orderID int64) error {
	var body StatusChangeRequest
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx)
	}

	id, err := kernel.NewID(orderID)
	if err != nil {
		return s.fail(ctx, err)
	}
	target, err := order.ParseStatus(body.Status)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewTransitionOrderStatusCommand(id, target, !body.Force)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err = s.handlers.TransitionStatus.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// SetMenuItemQuantity handles PUT /api/v1/admin/menu/{itemId}/quantity.
func (s *Server) SetMenuItemQuantity(ctx echo.Context, itemID int64) error {
	var body QuantityUpdate
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx)
	}

	id, err := kernel.NewID(itemID)
	if err != nil {
		return s.fail(ctx, err)
	}
	cmd, err := commands.NewRestockMenuItemCommand(id, body.Quantity)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err = s.handlers.RestockMenuItem.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// ReduceMenuItemStock handles POST /api/v1/admin/menu/{itemId}/reduce.
func (s *Server) ReduceMenuItemStock(ctx echo.Context, itemID int64) error {
	var body ReduceRequest
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx)
	}

	id, err := kernel.NewID(itemID)
	if err != nil {
		return s.fail(ctx, err)
	}
	cmd, err := commands.NewReduceMenuItemStockCommand(id, body.Amount)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err = s.handlers.ReduceMenuItem.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

func toMenuItems(items []queries.MenuItemResponse) []MenuItem {
	response := make([]MenuItem, len(items))
	for i, item := range items {
		response[i] = MenuItem{
			ID:       item.ID.Int64(),
			Name:     item.Name,
			Quantity: item.Quantity,
			Price:    item.Price.String(),
		}
	}
	return response
}

func toChoice(c commands.Choice) Choice {
	return Choice{
		ItemID:   c.ItemID.Int64(),
		Name:     c.Name,
		Price:    c.Price.String(),
		Quantity: c.Quantity,
	}
}

func toChoices(choices []commands.Choice) []Choice {
	if choices == nil {
		return nil
	}
	response := make([]Choice, len(choices))
	for i, c := range choices {
		response[i] = toChoice(c)
	}
	return response
}

func toReceipt(r *services.Receipt) *Receipt {
	if r == nil {
		return nil
	}
	lines := make([]ReceiptLine, len(r.Lines))
	for i, l := range r.Lines {
		lines[i] = ReceiptLine{
			ItemID:    l.ItemID.Int64(),
			Name:      l.Name,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice.String(),
			Subtotal:  l.Subtotal.String(),
		}
	}
	return &Receipt{
		OrderID:  r.OrderID.Int64(),
		Customer: r.Customer,
		Lines:    lines,
		Total:    r.Total.String(),
	}
}

func optionalID(id kernel.ID) *int64 {
	if id.IsZero() {
		return nil
	}
	v := id.Int64()
	return &v
}
