package http

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// ServerInterface represents all server handlers of api/openapi.yaml.
type ServerInterface interface {
	// (GET /api/v1/menu)
	GetMenu(ctx echo.Context) error
	// (POST /api/v1/customers/{customer}/order)
	StartOrder(ctx echo.Context, customer string) error
	// (POST /api/v1/customers/{customer}/order/item)
	SelectItem(ctx echo.Context, customer string) error
	// (POST /api/v1/customers/{customer}/order/quantity)
	SubmitQuantity(ctx echo.Context, customer string) error
	// (POST /api/v1/customers/{customer}/order/confirm)
	ConfirmOrMore(ctx echo.Context, customer string) error
	// (POST /api/v1/customers/{customer}/order/payment-proof)
	SubmitPaymentProof(ctx echo.Context, customer string) error
	// (GET /api/v1/customers/{customer}/status)
	GetCustomerStatus(ctx echo.Context, customer string) error
	// (GET /api/v1/customers/{customer}/conversation)
	GetConversation(ctx echo.Context, customer string) error
	// (GET /api/v1/customers/{customer}/selectable-items)
	GetSelectableItems(ctx echo.Context, customer string) error
	// (GET /api/v1/admin/orders)
	ListOrders(ctx echo.Context, params ListOrdersParams) error
	// (GET /api/v1/admin/orders/{orderId}/lines)
	GetOrderLines(ctx echo.Context, orderID int64) error
	// (POST /api/v1/admin/orders/{orderId}/status)
	ChangeOrderStatus(ctx echo.Context, orderID int64) error
	// (PUT /api/v1/admin/menu/{itemId}/quantity)
	SetMenuItemQuantity(ctx echo.Context, itemID int64) error
	// (POST /api/v1/admin/menu/{itemId}/reduce)
	ReduceMenuItemStock(ctx echo.Context, itemID int64) error
}

// ListOrdersParams defines parameters for ListOrders.
type ListOrdersParams struct {
	Status *[]string `form:"status,omitempty" json:"status,omitempty"`
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

func bindPath(ctx echo.Context, name string, dest any) error {
	err := runtime.BindStyledParameterWithOptions("simple", name, ctx.Param(name), dest,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter %s: %s", name, err))
	}
	return nil
}

func (w *ServerInterfaceWrapper) GetMenu(ctx echo.Context) error {
	return w.Handler.GetMenu(ctx)
}

func (w *ServerInterfaceWrapper) StartOrder(ctx echo.Context) error {
	var customer string
	if err := bindPath(ctx, "customer", &customer); err != nil {
		return err
	}
	return w.Handler.StartOrder(ctx, customer)
}

func (w *ServerInterfaceWrapper) SelectItem(ctx echo.Context) error {
	var customer string
	if err := bindPath(ctx, "customer", &customer); err != nil {
		return err
	}
	return w.Handler.SelectItem(ctx, customer)
}

func (w *ServerInterfaceWrapper) SubmitQuantity(ctx echo.Context) error {
	var customer string
	if err := bindPath(ctx, "customer", &customer); err != nil {
		return err
	}
	return w.Handler.SubmitQuantity(ctx, customer)
}

func (w *ServerInterfaceWrapper) ConfirmOrMore(ctx echo.Context) error {
	var customer string
	if err := bindPath(ctx, "customer", &customer); err != nil {
		return err
	}
	return w.Handler.ConfirmOrMore(ctx, customer)
}

func (w *ServerInterfaceWrapper) SubmitPaymentProof(ctx echo.Context) error {
	var customer string
	if err := bindPath(ctx, "customer", &customer); err != nil {
		return err
	}
	return w.Handler.SubmitPaymentProof(ctx, customer)
}

func (w *ServerInterfaceWrapper) GetCustomerStatus(ctx echo.Context) error {
	var customer string
	if err := bindPath(ctx, "customer", &customer); err != nil {
		return err
	}
	return w.Handler.GetCustomerStatus(ctx, customer)
}

func (w *ServerInterfaceWrapper) GetConversation(ctx echo.Context) error {
	var customer string
	if err := bindPath(ctx, "customer", &customer); err != nil {
		return err
	}
	return w.Handler.GetConversation(ctx, customer)
}

func (w *ServerInterfaceWrapper) GetSelectableItems(ctx echo.Context) error {
	var customer string
	if err := bindPath(ctx, "customer", &customer); err != nil {
		return err
	}
	return w.Handler.GetSelectableItems(ctx, customer)
}

func (w *ServerInterfaceWrapper) ListOrders(ctx echo.Context) error {
	var params ListOrdersParams
	err := runtime.BindQueryParameter("form", true, false, "status", ctx.QueryParams(), &params.Status)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter status: %s", err))
	}
	return w.Handler.ListOrders(ctx, params)
}

func (w *ServerInterfaceWrapper) GetOrderLines(ctx echo.Context) error {
	var orderID int64
	if err := bindPath(ctx, "orderId", &orderID); err != nil {
		return err
	}
	return w.Handler.GetOrderLines(ctx, orderID)
}

func (w *ServerInterfaceWrapper) ChangeOrderStatus(ctx echo.Context) error {
	var orderID int64
	if err := bindPath(ctx, "orderId", &orderID); err != nil {
		return err
	}
	return w.Handler.ChangeOrderStatus(ctx, orderID)
}

func (w *ServerInterfaceWrapper) SetMenuItemQuantity(ctx echo.Context) error {
	var itemID int64
	if err := bindPath(ctx, "itemId", &itemID); err != nil {
		return err
	}
	return w.Handler.SetMenuItemQuantity(ctx, itemID)
}

func (w *ServerInterfaceWrapper) ReduceMenuItemStock(ctx echo.Context) error {
	var itemID int64
	if err := bindPath(ctx, "itemId", &itemID); err != nil {
		return err
	}
	return w.Handler.ReduceMenuItemStock(ctx, itemID)
}

// EchoRouter is satisfied by *echo.Echo and *echo.Group.
type EchoRouter interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RouteMiddlewares are attached per route. Admin middlewares run before
// the common ones.
type RouteMiddlewares struct {
	Common []echo.MiddlewareFunc
	Admin  []echo.MiddlewareFunc
}

// RegisterHandlers adds each server route to the router.
func RegisterHandlers(router EchoRouter, si ServerInterface, m RouteMiddlewares) {
	wrapper := ServerInterfaceWrapper{Handler: si}

	customer := m.Common
	admin := make([]echo.MiddlewareFunc, 0, len(m.Admin)+len(m.Common))
	admin = append(admin, m.Admin...)
	admin = append(admin, m.Common...)

	router.GET("/api/v1/menu", wrapper.GetMenu, customer...)
	router.POST("/api/v1/customers/:customer/order", wrapper.StartOrder, customer...)
	router.POST("/api/v1/customers/:customer/order/item", wrapper.SelectItem, customer...)
	router.POST("/api/v1/customers/:customer/order/quantity", wrapper.SubmitQuantity, customer...)
	router.POST("/api/v1/customers/:customer/order/confirm", wrapper.ConfirmOrMore, customer...)
	router.POST("/api/v1/customers/:customer/order/payment-proof", wrapper.SubmitPaymentProof, customer...)
	router.GET("/api/v1/customers/:customer/status", wrapper.GetCustomerStatus, customer...)
	router.GET("/api/v1/customers/:customer/conversation", wrapper.GetConversation, customer...)
	router.GET("/api/v1/customers/:customer/selectable-items", wrapper.GetSelectableItems, customer...)

	router.GET("/api/v1/admin/orders", wrapper.ListOrders, admin...)
	router.GET("/api/v1/admin/orders/:orderId/lines", wrapper.GetOrderLines, admin...)
	router.POST("/api/v1/admin/orders/:orderId/status", wrapper.ChangeOrderStatus, admin...)
	router.PUT("/api/v1/admin/menu/:itemId/quantity", wrapper.SetMenuItemQuantity, admin...)
	router.POST("/api/v1/admin/menu/:itemId/reduce", wrapper.ReduceMenuItemStock, admin...)
}
