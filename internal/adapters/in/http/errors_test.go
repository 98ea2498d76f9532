package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/application/usecases/queries"
	"orders/internal/core/domain/model/order"
	"orders/internal/core/domain/model/product"
	"orders/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestErrorStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"validation", errs.NewValueIsRequiredError("items"), http.StatusBadRequest},
		{"invalid status", fmt.Errorf("%w: bad", order.ErrInvalidStatus), http.StatusBadRequest},
		{"order not found", queries.ErrOrderNotFound, http.StatusNotFound},
		{"repository not found", errs.NewObjectNotFoundError("order", "x"), http.StatusNotFound},
		{"creation failed over unavailable", &commands.OrderCreationFailedError{Cause: product.ErrValidatorUnavailable}, http.StatusBadRequest},
		{"creation failed over not found", &commands.OrderCreationFailedError{Cause: product.NewNotFoundError(4)}, http.StatusBadRequest},
		{"validator unavailable", product.ErrValidatorUnavailable, http.StatusServiceUnavailable},
		{"catalog inconsistent", product.NewNotFoundError(9), http.StatusBadGateway},
		{"persistence", errs.NewPersistenceError("op", errors.New("boom")), http.StatusInternalServerError},
		{"echo error", echo.NewHTTPError(http.StatusMethodNotAllowed, "nope"), http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, message := errorStatus(tt.err)

			assert.Equal(t, tt.code, code)
			assert.NotEmpty(t, message)
		})
	}
}

func TestErrorStatus_CreationFailedMessageIsGeneric(t *testing.T) {
	_, message := errorStatus(&commands.OrderCreationFailedError{Cause: errors.New("pq: relation does not exist")})

	assert.Equal(t, commands.ErrOrderCreationFailed.Error(), message)
}

func TestErrorStatus_CorruptStoredOrderIsInternal(t *testing.T) {
	cause := errs.NewValueIsInvalidErrorWithCause("totalAmount", errors.New("20.01 does not match line items sum 20.02"))

	code, message := errorStatus(errs.NewPersistenceError("restore order", cause))

	assert.Equal(t, http.StatusInternalServerError, code)
	assert.Equal(t, "internal server error", message)
	assert.NotContains(t, message, "totalAmount")
}
