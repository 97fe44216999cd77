// Package http exposes the ordering flow and the admin operations over
// JSON/HTTP. Routes, request bodies and responses are described by
// api/openapi.yaml; requests are validated against it before they reach a
// use case, and the document is served with Swagger UI under /swagger/.
package http

import (
	"log/slog"
	"net/http"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"github.com/swaggo/swag"
)

const swaggerInstance = "buttery"

var registerSwagger sync.Once

type swaggerDoc struct {
	json string
}

func (d swaggerDoc) ReadDoc() string {
	return d.json
}

type RouterConfig struct {
	Doc      *openapi3.T
	AdminKey string
	Admins   []string
	Logger   *slog.Logger
}

// NewRouter builds the echo instance with health check, Swagger UI,
// request validation and all API routes.
func NewRouter(server ServerInterface, cfg RouterConfig) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = ErrorHandler

	e.Use(middleware.Recover())
	e.Use(requestLogger(cfg.Logger))

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	body, err := cfg.Doc.MarshalJSON()
	if err != nil {
		return nil, err
	}
	registerSwagger.Do(func() {
		swag.Register(swaggerInstance, swaggerDoc{json: string(body)})
	})
	e.GET("/swagger/*", echoSwagger.EchoWrapHandler(echoSwagger.InstanceName(swaggerInstance)))

	validator, err := RequestValidator(cfg.Doc)
	if err != nil {
		return nil, err
	}
	RegisterHandlers(e, server, RouteMiddlewares{
		Common: []echo.MiddlewareFunc{validator},
		Admin:  []echo.MiddlewareFunc{AdminAuth(cfg.AdminKey, cfg.Admins)},
	})

	return e, nil
}

func requestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	logger = logger.With("component", "http")
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:  true,
		LogURI:     true,
		LogStatus:  true,
		LogLatency: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			logger.DebugContext(c.Request().Context(), "request",
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency,
			)
			return nil
		},
	})
}
