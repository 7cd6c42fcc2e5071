package api

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"hafood/config"
	apimiddleware "hafood/internal/delivery/api/middleware"
	"hafood/internal/delivery/api/router"
	"hafood/internal/delivery/api/router/handler"
	deliverycontext "hafood/internal/delivery/context"
	"hafood/internal/domain/entity"
	domainerrors "hafood/internal/domain/errors"
	"hafood/internal/domain/pricing"
	"hafood/internal/domain/service"
	"hafood/internal/infra/auth"
	"hafood/internal/infra/clock"
	mockUsecase "hafood/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const sessionHeader = "X-Cart-Session"

type apiTestEnv struct {
	echo      *echo.Echo
	tokens    service.SessionTokenService
	cartUC    *mockUsecase.MockCartUsecase
	discounts *mockUsecase.MockDiscountUsecase
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string          `json:"code"`
		Message string          `json:"message"`
		Details json.RawMessage `json:"details"`
	} `json:"error"`
	Meta struct {
		RequestID string `json:"request_id"`
	} `json:"meta"`
}

func createTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "100KB"
	cfg.Session = config.SessionConfig{
		Secret: "test-secret",
		Header: sessionHeader,
		TTL:    time.Hour,
	}

	return cfg
}

func createTestEnv(t *testing.T) *apiTestEnv {
	t.Helper()

	cfg := createTestConfig()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	tokens, err := auth.NewJWTSessionTokenService(cfg, clock.NewRealClock())
	require.NoError(t, err)

	env := &apiTestEnv{
		tokens:    tokens,
		cartUC:    mockUsecase.NewMockCartUsecase(t),
		discounts: mockUsecase.NewMockDiscountUsecase(t),
	}
	env.echo = newEcho(cfg, logger, router.RouterParams{
		CartHandler: handler.NewCartHandler(handler.CartHandlerParams{
			CartUC: env.cartUC,
			Logger: logger,
		}),
		DiscountHandler: handler.NewDiscountHandler(handler.DiscountHandlerParams{
			DiscountUC: env.discounts,
			Logger:     logger,
		}),
		SessionMiddleware: apimiddleware.NewSessionMiddleware(tokens, cfg, logger),
	})

	return env
}

func (env *apiTestEnv) do(t *testing.T, method, path, body, token string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(sessionHeader, token)
	}
	rec := httptest.NewRecorder()
	env.echo.ServeHTTP(rec, req)

	var decoded envelope
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decoded))
	}

	return rec, decoded
}

func (env *apiTestEnv) issue(t *testing.T, sessionID string) string {
	t.Helper()

	token, err := env.tokens.Issue(sessionID)
	require.NoError(t, err)

	return token
}

func createTestCart() entity.Cart {
	return entity.Cart{
		Items: []entity.CartItem{{
			ProductSKU:    "A1",
			ProductName:   "Frozen dumplings",
			CurrentPrice:  decimal.NewFromInt(100000),
			OriginalPrice: decimal.NewFromInt(120000),
			Quantity:      2,
			MaxQuantity:   5,
			Available:     true,
		}},
		TotalItems: 2,
		TotalPrice: decimal.NewFromInt(200000),
		UpdatedAt:  time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC),
	}
}

func TestHealthCheck(t *testing.T) {
	env := createTestEnv(t)

	rec, body := env.do(t, http.MethodGet, "/health", "", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, string(body.Data))
	assert.NotEmpty(t, body.Meta.RequestID)
	assert.Equal(t, body.Meta.RequestID, rec.Header().Get(deliverycontext.HeaderXRequestID))
}

func TestCartSession(t *testing.T) {
	t.Run("missing token starts a new session", func(t *testing.T) {
		env := createTestEnv(t)
		var gotSession string
		env.cartUC.EXPECT().GetSummary(mock.Anything, mock.AnythingOfType("string")).
			Run(func(_ context.Context, sessionID string) { gotSession = sessionID }).
			Return(pricing.Summary{}, nil).Once()

		rec, _ := env.do(t, http.MethodGet, "/api/v1/cart", "", "")

		require.Equal(t, http.StatusOK, rec.Code)
		issued := rec.Header().Get(sessionHeader)
		require.NotEmpty(t, issued)
		parsed, err := env.tokens.Parse(issued)
		require.NoError(t, err)
		assert.Equal(t, gotSession, parsed)
	})

	t.Run("valid token keeps the session", func(t *testing.T) {
		env := createTestEnv(t)
		token := env.issue(t, "session-1")
		env.cartUC.EXPECT().GetSummary(mock.Anything, "session-1").Return(pricing.Summary{}, nil).Once()

		rec, _ := env.do(t, http.MethodGet, "/api/v1/cart", "", token)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, token, rec.Header().Get(sessionHeader))
	})

	t.Run("invalid token is replaced", func(t *testing.T) {
		env := createTestEnv(t)
		env.cartUC.EXPECT().GetSummary(mock.Anything, mock.MatchedBy(func(sessionID string) bool {
			return sessionID != "" && sessionID != "forged"
		})).Return(pricing.Summary{}, nil).Once()

		rec, _ := env.do(t, http.MethodGet, "/api/v1/cart", "", "not-a-token")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.NotEqual(t, "not-a-token", rec.Header().Get(sessionHeader))
	})
}

func TestCartHandler(t *testing.T) {
	t.Run("add item", func(t *testing.T) {
		env := createTestEnv(t)
		token := env.issue(t, "session-1")
		env.cartUC.EXPECT().AddToCart(mock.Anything, "session-1", mock.MatchedBy(func(product entity.Product) bool {
			return product.SKU == "A1" &&
				product.Available &&
				product.Quantity == 5 &&
				product.CurrentPrice.Equal(decimal.NewFromInt(100000))
		}), 2).Return(createTestCart(), nil).Once()

		rec, body := env.do(t, http.MethodPost, "/api/v1/cart/items",
			`{"product":{"sku":"A1","productName":"Frozen dumplings","currentPrice":100000,"originalPrice":120000,"available":true,"quantity":5},"quantity":2}`,
			token)

		require.Equal(t, http.StatusOK, rec.Code)
		var cart entity.Cart
		require.NoError(t, json.Unmarshal(body.Data, &cart))
		assert.Equal(t, 2, cart.TotalItems)
		assert.True(t, cart.TotalPrice.Equal(decimal.NewFromInt(200000)))
		assert.Contains(t, string(body.Data), `"totalPrice":200000`)
	})

	t.Run("add item defaults to one unit", func(t *testing.T) {
		env := createTestEnv(t)
		token := env.issue(t, "session-1")
		env.cartUC.EXPECT().AddToCart(mock.Anything, "session-1", mock.Anything, 1).Return(createTestCart(), nil).Once()

		rec, _ := env.do(t, http.MethodPost, "/api/v1/cart/items",
			`{"product":{"sku":"A1","currentPrice":100000,"available":true,"quantity":5}}`,
			token)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("add item passes an explicit zero through", func(t *testing.T) {
		env := createTestEnv(t)
		token := env.issue(t, "session-1")
		env.cartUC.EXPECT().AddToCart(mock.Anything, "session-1", mock.Anything, 0).Return(entity.EmptyCart(time.Now()), nil).Once()

		rec, _ := env.do(t, http.MethodPost, "/api/v1/cart/items",
			`{"product":{"sku":"A1","currentPrice":100000,"available":true,"quantity":5},"quantity":0}`,
			token)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("list items returns the stored cart", func(t *testing.T) {
		env := createTestEnv(t)
		token := env.issue(t, "session-1")
		env.cartUC.EXPECT().GetCart(mock.Anything, "session-1").Return(createTestCart(), nil).Once()

		rec, body := env.do(t, http.MethodGet, "/api/v1/cart/items", "", token)

		require.Equal(t, http.StatusOK, rec.Code)
		var cart entity.Cart
		require.NoError(t, json.Unmarshal(body.Data, &cart))
		require.Len(t, cart.Items, 1)
		assert.Equal(t, "A1", cart.Items[0].ProductSKU)
		assert.Equal(t, 2, cart.TotalItems)
	})

	t.Run("add item without sku is rejected", func(t *testing.T) {
		env := createTestEnv(t)

		rec, body := env.do(t, http.MethodPost, "/api/v1/cart/items", `{"product":{"quantity":5},"quantity":1}`, "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		require.NotNil(t, body.Error)
		assert.Equal(t, "VALIDATION_FAILED", body.Error.Code)
		assert.Contains(t, string(body.Error.Details), "SKU")
	})

	t.Run("malformed body is rejected", func(t *testing.T) {
		env := createTestEnv(t)

		rec, body := env.do(t, http.MethodPost, "/api/v1/cart/items", `{"product":`, "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		require.NotNil(t, body.Error)
		assert.Equal(t, "INVALID_INPUT", body.Error.Code)
	})

	t.Run("update quantity to zero", func(t *testing.T) {
		env := createTestEnv(t)
		token := env.issue(t, "session-1")
		env.cartUC.EXPECT().UpdateQuantity(mock.Anything, "session-1", "A1", 0).Return(entity.EmptyCart(time.Now()), nil).Once()

		rec, _ := env.do(t, http.MethodPut, "/api/v1/cart/items/A1", `{"quantity":0}`, token)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("update without quantity is rejected", func(t *testing.T) {
		env := createTestEnv(t)

		rec, body := env.do(t, http.MethodPut, "/api/v1/cart/items/A1", `{}`, "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		require.NotNil(t, body.Error)
		assert.Equal(t, "VALIDATION_FAILED", body.Error.Code)
	})

	t.Run("get item with discounted price", func(t *testing.T) {
		env := createTestEnv(t)
		token := env.issue(t, "session-1")
		item := createTestCart().Items[0]
		env.cartUC.EXPECT().GetCartItem(mock.Anything, "session-1", "A1").Return(item, nil).Once()
		env.cartUC.EXPECT().GetItemDiscountedPrice(item).Return(decimal.NewFromInt(90000)).Once()

		rec, body := env.do(t, http.MethodGet, "/api/v1/cart/items/A1", "", token)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, string(body.Data), `"discountedPrice":90000`)
	})

	t.Run("missing item is a 404", func(t *testing.T) {
		env := createTestEnv(t)
		token := env.issue(t, "session-1")
		env.cartUC.EXPECT().GetCartItem(mock.Anything, "session-1", "Z9").
			Return(entity.CartItem{}, domainerrors.ErrCartItemNotFound.WithDetails("sku Z9")).Once()

		rec, body := env.do(t, http.MethodGet, "/api/v1/cart/items/Z9", "", token)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		require.NotNil(t, body.Error)
		assert.Equal(t, "CART_ITEM_NOT_FOUND", body.Error.Code)
		assert.JSONEq(t, `"sku Z9"`, string(body.Error.Details))
	})

	t.Run("queries", func(t *testing.T) {
		env := createTestEnv(t)
		token := env.issue(t, "session-1")
		env.cartUC.EXPECT().IsInCart(mock.Anything, "session-1", "A1").Return(true, nil).Once()
		env.cartUC.EXPECT().GetCartItemCount(mock.Anything, "session-1").Return(2, nil).Once()
		env.cartUC.EXPECT().GetCartTotal(mock.Anything, "session-1").Return(decimal.NewFromInt(200000), nil).Once()
		env.cartUC.EXPECT().GetDiscountedTotal(mock.Anything, "session-1").Return(decimal.NewFromInt(180000), nil).Once()

		_, exists := env.do(t, http.MethodGet, "/api/v1/cart/items/A1/exists", "", token)
		_, count := env.do(t, http.MethodGet, "/api/v1/cart/count", "", token)
		_, total := env.do(t, http.MethodGet, "/api/v1/cart/total", "", token)
		_, discounted := env.do(t, http.MethodGet, "/api/v1/cart/discounted-total", "", token)

		assert.JSONEq(t, `{"inCart":true}`, string(exists.Data))
		assert.JSONEq(t, `{"count":2}`, string(count.Data))
		assert.JSONEq(t, `{"total":200000}`, string(total.Data))
		assert.JSONEq(t, `{"discountedTotal":180000}`, string(discounted.Data))
	})

	t.Run("remove and clear", func(t *testing.T) {
		env := createTestEnv(t)
		token := env.issue(t, "session-1")
		env.cartUC.EXPECT().RemoveFromCart(mock.Anything, "session-1", "A1").Return(entity.EmptyCart(time.Now()), nil).Once()
		env.cartUC.EXPECT().ClearCart(mock.Anything, "session-1").Return(entity.EmptyCart(time.Now()), nil).Once()

		removed, _ := env.do(t, http.MethodDelete, "/api/v1/cart/items/A1", "", token)
		cleared, body := env.do(t, http.MethodDelete, "/api/v1/cart", "", token)

		assert.Equal(t, http.StatusOK, removed.Code)
		assert.Equal(t, http.StatusOK, cleared.Code)
		assert.Contains(t, string(body.Data), `"items":[]`)
	})
}

func TestDiscountHandler(t *testing.T) {
	t.Run("list", func(t *testing.T) {
		env := createTestEnv(t)
		env.discounts.EXPECT().ListDiscounts().Return([]entity.Discount{{
			ID: "1", MinQuantity: 5, DiscountPercent: decimal.NewFromInt(10), IsActive: true,
		}}).Once()
		env.discounts.EXPECT().Loaded().Return(true).Once()

		rec, body := env.do(t, http.MethodGet, "/api/v1/discounts", "", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t,
			`{"discounts":[{"id":"1","minQuantity":5,"discountPercent":10,"isActive":true}],"loaded":true}`,
			string(body.Data))
	})

	t.Run("refresh failure", func(t *testing.T) {
		env := createTestEnv(t)
		env.discounts.EXPECT().RefreshDiscounts(mock.Anything).
			Return([]entity.Discount{}, domainerrors.ErrDiscountSourceUnavailable.WrapMessage("connection refused")).Once()

		rec, body := env.do(t, http.MethodPost, "/api/v1/discounts/refresh", "", "")

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		require.NotNil(t, body.Error)
		assert.Equal(t, "DISCOUNT_SOURCE_UNAVAILABLE", body.Error.Code)
	})
}

func TestRequestID(t *testing.T) {
	send := func(env *apiTestEnv, requestID string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.Header.Set(deliverycontext.HeaderXRequestID, requestID)
		rec := httptest.NewRecorder()
		env.echo.ServeHTTP(rec, req)

		return rec
	}

	t.Run("keeps a well-formed caller id", func(t *testing.T) {
		env := createTestEnv(t)

		rec := send(env, "checkout-42")

		assert.Equal(t, "checkout-42", rec.Header().Get(deliverycontext.HeaderXRequestID))
	})

	t.Run("replaces a malformed caller id", func(t *testing.T) {
		env := createTestEnv(t)

		rec := send(env, strings.Repeat("x", 200))

		got := rec.Header().Get(deliverycontext.HeaderXRequestID)
		assert.NotEmpty(t, got)
		assert.NotEqual(t, strings.Repeat("x", 200), got)
	})
}

func TestErrorHandler(t *testing.T) {
	t.Run("unknown route", func(t *testing.T) {
		env := createTestEnv(t)

		rec, body := env.do(t, http.MethodGet, "/api/v1/orders", "", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		require.NotNil(t, body.Error)
		assert.Equal(t, "ROUTE_NOT_FOUND", body.Error.Code)
		assert.NotEmpty(t, body.Meta.RequestID)
	})

	t.Run("unexpected usecase error is a 500 without details", func(t *testing.T) {
		env := createTestEnv(t)
		env.cartUC.EXPECT().GetCartItemCount(mock.Anything, "s-500").Return(0, context.DeadlineExceeded).Once()

		rec, body := env.do(t, http.MethodGet, "/api/v1/cart/count", "", env.issue(t, "s-500"))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		require.NotNil(t, body.Error)
		assert.Equal(t, "INTERNAL_ERROR", body.Error.Code)
		assert.Empty(t, body.Error.Details)
	})
}
