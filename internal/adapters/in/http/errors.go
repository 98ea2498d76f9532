package http

import (
	"errors"
	"net/http"

	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/domain/model/product"
	"orders/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// ErrorResponse is the body of every non-2xx answer.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// errorStatus maps an application error to a status code and a message
// that is safe to return to the caller. Infrastructure details never leave
// the service.
func errorStatus(err error) (int, string) {
	var httpErr *echo.HTTPError
	switch {
	case errors.As(err, &httpErr):
		if msg, ok := httpErr.Message.(string); ok {
			return httpErr.Code, msg
		}
		return httpErr.Code, http.StatusText(httpErr.Code)
	// Checked first: the creation error also unwraps to its cause.
	case errors.Is(err, commands.ErrOrderCreationFailed):
		return http.StatusBadRequest, commands.ErrOrderCreationFailed.Error()
	// A stored row that fails validation is a server fault, not a bad request.
	case errors.Is(err, errs.ErrPersistence):
		return http.StatusInternalServerError, "internal server error"
	case errs.IsValidation(err):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, product.ErrValidatorUnavailable):
		return http.StatusServiceUnavailable, "product service unavailable"
	case errors.Is(err, product.ErrProductNotFound):
		return http.StatusBadGateway, "product catalog could not resolve the order's products"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// errorHandler replaces echo's default handler so that every error,
// including router and binder errors, is rendered as ErrorResponse.
func (s *Server) errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code, message := errorStatus(err)
	if code >= http.StatusInternalServerError {
		s.logger.ErrorContext(c.Request().Context(), "Request failed",
			"method", c.Request().Method,
			"path", c.Path(),
			"status", code,
			"error", err,
		)
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(code)
	} else {
		err = c.JSON(code, ErrorResponse{Code: code, Message: message})
	}
	if err != nil {
		s.logger.Error("Failed to write error response", "error", err)
	}
}
