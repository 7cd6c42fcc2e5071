// Package catalog provides the discount catalog sources.
package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"hafood/config"
	"hafood/internal/domain/entity"
	"hafood/internal/domain/repository"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/sony/gobreaker/v2"
)

const maxDiscountResponseSize = 1 << 20

// discountDTO is the wire shape served by the back-office discount endpoint.
type discountDTO struct {
	ID              json.RawMessage `json:"id"`
	MinQuantity     int             `json:"minQuantity"`
	DiscountPercent decimal.Decimal `json:"discountPercent"`
	IsActive        bool            `json:"isActive"`
}

// discountEnvelope is accepted in addition to a bare array.
type discountEnvelope struct {
	Data []discountDTO `json:"data"`
}

// httpDiscountRepository implements repository.DiscountRepository against a REST endpoint.
type httpDiscountRepository struct {
	client   *http.Client
	endpoint string
	timeout  time.Duration
	breaker  *gobreaker.CircuitBreaker[[]entity.Discount]
}

// NewHTTPDiscountRepository is the constructor for httpDiscountRepository.
func NewHTTPDiscountRepository(cfg config.DiscountsConfig, client *http.Client, logger *slog.Logger) (repository.DiscountRepository, error) {
	if cfg.Endpoint == "" {
		return nil, errors.New("http discount provider requires discounts.endpoint")
	}
	if client == nil {
		client = http.DefaultClient
	}

	return &httpDiscountRepository{
		client:   client,
		endpoint: cfg.Endpoint,
		timeout:  cfg.Timeout,
		breaker:  newBreaker(cfg.Breaker, logger),
	}, nil
}

func newBreaker(cfg config.BreakerConfig, logger *slog.Logger) *gobreaker.CircuitBreaker[[]entity.Discount] {
	failures := cfg.ConsecutiveFailures
	if failures == 0 {
		failures = 3
	}

	return gobreaker.NewCircuitBreaker[[]entity.Discount](gobreaker.Settings{
		Name:        "discount-catalog",
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= failures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("Circuit breaker state changed",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})
}

// FindAll fetches the catalog through the circuit breaker.
func (repo *httpDiscountRepository) FindAll(ctx context.Context) ([]entity.Discount, error) {
	discounts, err := repo.breaker.Execute(func() ([]entity.Discount, error) {
		return repo.fetch(ctx)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch discounts")
	}

	return discounts, nil
}

func (repo *httpDiscountRepository) fetch(ctx context.Context) ([]entity.Discount, error) {
	if repo.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, repo.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, repo.endpoint, http.NoBody)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create discount request")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := repo.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "discount request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, errors.Errorf("discount endpoint returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxDiscountResponseSize))
	if err != nil {
		return nil, errors.Wrap(err, "failed to read discount response")
	}

	return decodeDiscounts(body)
}

func decodeDiscounts(body []byte) ([]entity.Discount, error) {
	var dtos []discountDTO

	trimmed := bytes.TrimSpace(body)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		var envelope discountEnvelope
		if err := json.Unmarshal(trimmed, &envelope); err != nil {
			return nil, errors.Wrap(err, "failed to decode discount envelope")
		}
		dtos = envelope.Data
	} else if err := json.Unmarshal(trimmed, &dtos); err != nil {
		return nil, errors.Wrap(err, "failed to decode discounts")
	}

	discounts := make([]entity.Discount, 0, len(dtos))
	for _, dto := range dtos {
		discounts = append(discounts, entity.Discount{
			ID:              decodeID(dto.ID),
			MinQuantity:     dto.MinQuantity,
			DiscountPercent: dto.DiscountPercent,
			IsActive:        dto.IsActive,
		})
	}

	return discounts, nil
}

// decodeID accepts both string and numeric ids.
func decodeID(raw json.RawMessage) string {
	var id string
	if err := json.Unmarshal(raw, &id); err == nil {
		return id
	}

	return strings.TrimSpace(string(raw))
}
