package handler

import (
	"log/slog"
	"net/http"

	"hafood/internal/delivery/api/middleware"
	"hafood/internal/delivery/api/response"
	"hafood/internal/delivery/api/validator"
	"hafood/internal/domain/entity"
	domainerrors "hafood/internal/domain/errors"
	"hafood/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// CartHandlerParams holds dependencies for CartHandler, injected by Fx.
type CartHandlerParams struct {
	fx.In

	CartUC usecase.CartUsecase
	Logger *slog.Logger
}

// CartHandler holds dependencies for cart-related handlers
type CartHandler struct {
	cartUC usecase.CartUsecase
	logger *slog.Logger
}

// NewCartHandler is the constructor for CartHandler
func NewCartHandler(params CartHandlerParams) *CartHandler {
	return &CartHandler{
		cartUC: params.CartUC,
		logger: params.Logger,
	}
}

// ProductRequest is the product snapshot supplied by the catalog when adding to the cart
type ProductRequest struct {
	SKU           string          `json:"sku" validate:"required"`
	ProductName   string          `json:"productName"`
	CurrentPrice  decimal.Decimal `json:"currentPrice"`
	OriginalPrice decimal.Decimal `json:"originalPrice"`
	Available     bool            `json:"available"`
	Quantity      int             `json:"quantity" validate:"gte=0"`
	Weight        string          `json:"weight"`
	ProductType   string          `json:"productType"`
	Images        []string        `json:"images"`
}

// defaultAddQuantity is added when the request omits a quantity.
const defaultAddQuantity = 1

// AddItemRequest represents the request body for adding a product to the cart
type AddItemRequest struct {
	Product  ProductRequest `json:"product"`
	Quantity *int           `json:"quantity"`
}

func (r AddItemRequest) quantity() int {
	if r.Quantity == nil {
		return defaultAddQuantity
	}

	return *r.Quantity
}

// UpdateQuantityRequest represents the request body for changing a line quantity
type UpdateQuantityRequest struct {
	Quantity *int `json:"quantity" validate:"required"`
}

// CartItemResponse is a cart line with its effective unit price
type CartItemResponse struct {
	Item            entity.CartItem `json:"item"`
	DiscountedPrice decimal.Decimal `json:"discountedPrice"`
}

func (r ProductRequest) toEntity() entity.Product {
	return entity.Product{
		SKU:           r.SKU,
		ProductName:   r.ProductName,
		CurrentPrice:  r.CurrentPrice,
		OriginalPrice: r.OriginalPrice,
		Available:     r.Available,
		Quantity:      r.Quantity,
		Weight:        r.Weight,
		ProductType:   r.ProductType,
		Images:        r.Images,
	}
}

// GetSummary returns the priced cart summary
func (h *CartHandler) GetSummary(c echo.Context) error {
	sessionID, ok := middleware.GetSessionID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrInvalidSession)
	}

	summary, err := h.cartUC.GetSummary(c.Request().Context(), sessionID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, summary)
}

// ListItems returns the cart as persisted, without derived prices
func (h *CartHandler) ListItems(c echo.Context) error {
	sessionID, ok := middleware.GetSessionID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrInvalidSession)
	}

	cart, err := h.cartUC.GetCart(c.Request().Context(), sessionID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, cart)
}

// ClearCart empties the cart
func (h *CartHandler) ClearCart(c echo.Context) error {
	sessionID, ok := middleware.GetSessionID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrInvalidSession)
	}

	cart, err := h.cartUC.ClearCart(c.Request().Context(), sessionID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, cart)
}

// AddItem adds a product to the cart, one unit when no quantity is given.
// Unavailable products and non-positive quantities leave the cart unchanged.
func (h *CartHandler) AddItem(c echo.Context) error {
	sessionID, ok := middleware.GetSessionID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrInvalidSession)
	}

	var req AddItemRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidInput(c, "Invalid cart item input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, validator.FieldErrors(err))
	}

	cart, err := h.cartUC.AddToCart(c.Request().Context(), sessionID, req.Product.toEntity(), req.quantity())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, cart)
}

// GetItem returns one cart line with its discounted unit price
func (h *CartHandler) GetItem(c echo.Context) error {
	sessionID, ok := middleware.GetSessionID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrInvalidSession)
	}

	item, err := h.cartUC.GetCartItem(c.Request().Context(), sessionID, c.Param("sku"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, CartItemResponse{
		Item:            item,
		DiscountedPrice: h.cartUC.GetItemDiscountedPrice(item),
	})
}

// ItemExists reports whether the SKU is in the cart
func (h *CartHandler) ItemExists(c echo.Context) error {
	sessionID, ok := middleware.GetSessionID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrInvalidSession)
	}

	inCart, err := h.cartUC.IsInCart(c.Request().Context(), sessionID, c.Param("sku"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"inCart": inCart})
}

// UpdateItem sets the quantity of a line. Zero removes it.
func (h *CartHandler) UpdateItem(c echo.Context) error {
	sessionID, ok := middleware.GetSessionID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrInvalidSession)
	}

	var req UpdateQuantityRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidInput(c, "Invalid quantity input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, validator.FieldErrors(err))
	}

	cart, err := h.cartUC.UpdateQuantity(c.Request().Context(), sessionID, c.Param("sku"), *req.Quantity)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, cart)
}

// RemoveItem drops a line from the cart
func (h *CartHandler) RemoveItem(c echo.Context) error {
	sessionID, ok := middleware.GetSessionID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrInvalidSession)
	}

	cart, err := h.cartUC.RemoveFromCart(c.Request().Context(), sessionID, c.Param("sku"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, cart)
}

// GetCount returns the number of units in the cart
func (h *CartHandler) GetCount(c echo.Context) error {
	sessionID, ok := middleware.GetSessionID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrInvalidSession)
	}

	count, err := h.cartUC.GetCartItemCount(c.Request().Context(), sessionID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]int{"count": count})
}

// GetTotal returns the undiscounted cart total
func (h *CartHandler) GetTotal(c echo.Context) error {
	sessionID, ok := middleware.GetSessionID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrInvalidSession)
	}

	total, err := h.cartUC.GetCartTotal(c.Request().Context(), sessionID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]decimal.Decimal{"total": total})
}

// GetDiscountedTotal returns the cart total with tier discounts applied
func (h *CartHandler) GetDiscountedTotal(c echo.Context) error {
	sessionID, ok := middleware.GetSessionID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrInvalidSession)
	}

	total, err := h.cartUC.GetDiscountedTotal(c.Request().Context(), sessionID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]decimal.Decimal{"discountedTotal": total})
}
