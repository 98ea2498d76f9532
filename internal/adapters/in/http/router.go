package http

import (
	"net/http"
	"time"

	"orders/internal/pkg/metrics"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// NewRouter builds the echo instance serving the API, documentation,
// health and metrics endpoints.
func NewRouter(s *Server, doc *openapi3.T, m *metrics.Metrics) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = s.errorHandler

	e.Use(middleware.Recover())
	e.Use(s.requestLogger())
	e.Use(observeRequests(m))

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/metrics", echo.WrapHandler(m.Handler()))

	if err := registerSwagger(e, doc); err != nil {
		return nil, err
	}

	validate, err := requestValidator(doc)
	if err != nil {
		return nil, err
	}

	api := e.Group("/api/v1", validate)
	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.FindAllOrders)
	api.GET("/orders/:id", s.FindOneOrder)
	api.PATCH("/orders/:id", s.ChangeOrderStatus)

	return e, nil
}

func (s *Server) requestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/health" || c.Path() == "/metrics"
		},
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []any{
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency_ms", v.Latency.Milliseconds(),
			}
			if v.Error != nil {
				s.logger.InfoContext(c.Request().Context(), "Request", append(attrs, "error", v.Error.Error())...)
				return nil
			}
			s.logger.DebugContext(c.Request().Context(), "Request", attrs...)
			return nil
		},
	})
}

// observeRequests records count and latency per route template.
func observeRequests(m *metrics.Metrics) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			route := c.Path()
			if route == "" {
				route = "unmatched"
			}
			m.ObserveRequest(c.Request().Method, route, c.Response().Status, time.Since(start))
			return err
		}
	}
}
