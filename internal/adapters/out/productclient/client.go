// Package productclient calls the product service to validate product IDs.
// Calls are bounded by a timeout and guarded by a circuit breaker.
package productclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"orders/internal/core/domain/model/product"
	"orders/internal/pkg/metrics"

	"github.com/shopspring/decimal"
	"github.com/sony/gobreaker/v2"
)

const validatePath = "/api/v1/products/validate"

// errCallerDone marks a call abandoned because the caller's context ended.
// It does not count as a breaker failure.
var errCallerDone = errors.New("caller context done")

// Config holds connection and breaker settings.
type Config struct {
	BaseURL          string
	Timeout          time.Duration
	FailureThreshold uint32
	OpenTimeout      time.Duration
}

// DefaultConfig trips after 5 consecutive failures and half-opens after 30s.
func DefaultConfig(baseURL string) Config {
	return Config{
		BaseURL:          baseURL,
		Timeout:          3 * time.Second,
		FailureThreshold: 5,
		OpenTimeout:      30 * time.Second,
	}
}

type validateRequest struct {
	IDs []int64 `json:"ids"`
}

type productPayload struct {
	ID    int64           `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// Client implements ports.ProductValidator over HTTP/JSON.
type Client struct {
	baseURL string
	http    *http.Client
	breaker *gobreaker.CircuitBreaker[[]product.Product]
	metrics *metrics.Metrics
	logger  *slog.Logger
}

func New(cfg Config, m *metrics.Metrics, logger *slog.Logger) *Client {
	logger = logger.With("component", "product_client")

	c := &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    &http.Client{Timeout: cfg.Timeout},
		metrics: m,
		logger:  logger,
	}

	c.breaker = gobreaker.NewCircuitBreaker[[]product.Product](gobreaker.Settings{
		Name:        "product-service",
		MaxRequests: 1,
		Timeout:     cfg.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.FailureThreshold
		},
		IsSuccessful: func(err error) bool {
			return err == nil ||
				errors.Is(err, product.ErrProductNotFound) ||
				errors.Is(err, errCallerDone)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			m.SetBreakerState(int(to))
			logger.Warn("Circuit breaker state changed", "breaker", name, "from", from.String(), "to", to.String())
		},
	})

	return c
}

// ValidateProducts resolves ids. Unknown IDs yield product.ErrProductNotFound;
// transport errors, timeouts, 5xx and an open circuit yield
// product.ErrValidatorUnavailable.
func (c *Client) ValidateProducts(ctx context.Context, ids []int64) ([]product.Product, error) {
	ids = product.DistinctIDs(ids)

	products, err := c.breaker.Execute(func() ([]product.Product, error) {
		records, callErr := c.call(ctx, ids)
		if callErr != nil && ctx.Err() != nil {
			return nil, fmt.Errorf("%w: %w", errCallerDone, callErr)
		}
		return records, callErr
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			c.metrics.ObserveProductValidation(metrics.OutcomeRejected)
			return nil, fmt.Errorf("%w: %w", product.ErrValidatorUnavailable, err)
		}
		switch {
		case errors.Is(err, errCallerDone):
			c.metrics.ObserveProductValidation(metrics.OutcomeCancelled)
		case errors.Is(err, product.ErrProductNotFound):
			c.metrics.ObserveProductValidation(metrics.OutcomeNotFound)
		default:
			c.metrics.ObserveProductValidation(metrics.OutcomeUnavailable)
		}
		return nil, err
	}

	c.metrics.ObserveProductValidation(metrics.OutcomeOK)
	return products, nil
}

func (c *Client) call(ctx context.Context, ids []int64) ([]product.Product, error) {
	body, err := json.Marshal(validateRequest{IDs: ids})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+validatePath, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", product.ErrValidatorUnavailable, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", product.ErrValidatorUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusBadRequest:
		return nil, fmt.Errorf("%w: product service answered %d: %s",
			product.ErrProductNotFound, resp.StatusCode, readSnippet(resp.Body))
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return nil, fmt.Errorf("%w: product service answered %d",
			product.ErrValidatorUnavailable, resp.StatusCode)
	}

	var payload []productPayload
	if err = json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: malformed response: %w", product.ErrValidatorUnavailable, err)
	}

	products := make([]product.Product, 0, len(payload))
	for _, p := range payload {
		record, recordErr := product.NewProduct(p.ID, p.Name, p.Price)
		if recordErr != nil {
			return nil, fmt.Errorf("%w: invalid product record: %w", product.ErrValidatorUnavailable, recordErr)
		}
		products = append(products, record)
	}

	if err = product.VerifyExact(ids, products); err != nil {
		return nil, err
	}
	return products, nil
}

func readSnippet(r io.Reader) string {
	data, _ := io.ReadAll(io.LimitReader(r, 256))
	return strings.TrimSpace(string(data))
}
