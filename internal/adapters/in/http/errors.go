package http

import (
	"errors"
	"net/http"

	"buttery/internal/core/application/usecases/commands"
	"buttery/internal/core/domain/model/menu"
	"buttery/internal/core/domain/model/order"
	"buttery/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const internalErrorMessage = "Something went wrong, please try again later"

// StatusFor maps a use case error to an HTTP status. Errors the caller cannot
// correct are 500.
func StatusFor(err error) int {
	if !commands.IsUserCorrectable(err) {
		return http.StatusInternalServerError
	}

	switch {
	case errors.Is(err, commands.ErrOrderNotFound), errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, menu.ErrInsufficientStock),
		errors.Is(err, commands.ErrDuplicatePendingOrder),
		errors.Is(err, commands.ErrActiveOrderExists),
		errors.Is(err, order.ErrInvalidTransition),
		errors.Is(err, commands.ErrUnexpectedInput),
		errors.Is(err, commands.ErrNoItemsAvailable):
		return http.StatusConflict
	default:
		return http.StatusBadRequest
	}
}

func (s *Server) fail(ctx echo.Context, err error) error {
	code := StatusFor(err)
	if code == http.StatusInternalServerError {
		s.logger.ErrorContext(ctx.Request().Context(), "request failed",
			"method", ctx.Request().Method,
			"path", ctx.Path(),
			"error", err,
		)
		return ctx.JSON(code, Error{Code: code, Message: internalErrorMessage})
	}
	return ctx.JSON(code, Error{Code: code, Message: err.Error()})
}

func badRequest(ctx echo.Context) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: "Invalid request body",
	})
}

// ErrorHandler renders errors raised outside the server methods, such as
// routing and parameter binding failures, in the Error shape.
func ErrorHandler(err error, ctx echo.Context) {
	if ctx.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := internalErrorMessage
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		code = httpErr.Code
		if m, ok := httpErr.Message.(string); ok {
			message = m
		} else {
			message = http.StatusText(code)
		}
	}

	if ctx.Request().Method == http.MethodHead {
		_ = ctx.NoContent(code)
		return
	}
	_ = ctx.JSON(code, Error{Code: code, Message: message})
}
