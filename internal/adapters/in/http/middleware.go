package http

import (
	"crypto/subtle"
	"errors"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/getkin/kin-openapi/routers/legacy"
	"github.com/labstack/echo/v4"
)

const (
	AdminKeyHeader  = "X-Admin-Key"
	AdminUserHeader = "X-Admin-User"
)

// AdminAuth guards the admin routes. When key is set the request must carry
// it in X-Admin-Key. When admins is not empty the username in X-Admin-User,
// set by the gateway in front of the API, must be one of them. With neither
// configured the admin routes are open.
func AdminAuth(key string, admins []string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(admins))
	for _, name := range admins {
		allowed[name] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			header := ctx.Request().Header
			if key != "" && subtle.ConstantTimeCompare([]byte(header.Get(AdminKeyHeader)), []byte(key)) != 1 {
				return ctx.JSON(http.StatusUnauthorized, Error{
					Code:    http.StatusUnauthorized,
					Message: "Admin key is missing or wrong",
				})
			}
			if len(allowed) > 0 {
				if _, ok := allowed[header.Get(AdminUserHeader)]; !ok {
					return ctx.JSON(http.StatusForbidden, Error{
						Code:    http.StatusForbidden,
						Message: "This command is for admins only",
					})
				}
			}
			return next(ctx)
		}
	}
}

// RequestValidator checks requests against the OpenAPI document. Paths the
// document does not describe pass through untouched.
func RequestValidator(doc *openapi3.T) (echo.MiddlewareFunc, error) {
	router, err := legacy.NewRouter(doc)
	if err != nil {
		return nil, err
	}

	options := &openapi3filter.Options{
		AuthenticationFunc: openapi3filter.NoopAuthenticationFunc,
		MultiError:         false,
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			req := ctx.Request()
			route, pathParams, findErr := router.FindRoute(req)
			if findErr != nil {
				var routeErr *routers.RouteError
				if errors.As(findErr, &routeErr) {
					return next(ctx)
				}
				return findErr
			}

			input := &openapi3filter.RequestValidationInput{
				Request:    req,
				PathParams: pathParams,
				Route:      route,
				Options:    options,
			}
			if validateErr := openapi3filter.ValidateRequest(req.Context(), input); validateErr != nil {
				return ctx.JSON(http.StatusBadRequest, Error{
					Code:    http.StatusBadRequest,
					Message: validationMessage(validateErr),
				})
			}
			return next(ctx)
		}
	}, nil
}

func validationMessage(err error) string {
	var reqErr *openapi3filter.RequestError
	if errors.As(err, &reqErr) {
		return reqErr.Error()
	}
	return "Request does not match the API document"
}
