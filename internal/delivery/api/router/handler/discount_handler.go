package handler

import (
	"log/slog"
	"net/http"

	"hafood/internal/delivery/api/response"
	deliverycontext "hafood/internal/delivery/context"
	"hafood/internal/domain/entity"
	"hafood/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DiscountHandlerParams holds dependencies for DiscountHandler, injected by Fx.
type DiscountHandlerParams struct {
	fx.In

	DiscountUC usecase.DiscountUsecase
	Logger     *slog.Logger
}

// DiscountHandler exposes the discount catalog
type DiscountHandler struct {
	discountUC usecase.DiscountUsecase
	logger     *slog.Logger
}

// NewDiscountHandler is the constructor for DiscountHandler
func NewDiscountHandler(params DiscountHandlerParams) *DiscountHandler {
	return &DiscountHandler{
		discountUC: params.DiscountUC,
		logger:     params.Logger,
	}
}

// DiscountCatalogResponse is the current discount catalog
type DiscountCatalogResponse struct {
	Discounts []entity.Discount `json:"discounts"`
	Loaded    bool              `json:"loaded"`
}

// ListDiscounts returns the current catalog. It is empty until the first load succeeds.
func (h *DiscountHandler) ListDiscounts(c echo.Context) error {
	return response.Success(c, http.StatusOK, DiscountCatalogResponse{
		Discounts: h.discountUC.ListDiscounts(),
		Loaded:    h.discountUC.Loaded(),
	})
}

// RefreshDiscounts reloads the catalog from its source
func (h *DiscountHandler) RefreshDiscounts(c echo.Context) error {
	ctx := c.Request().Context()

	discounts, err := h.discountUC.RefreshDiscounts(ctx)
	if err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, h.logger).Warn("Discount refresh failed",
			slog.Int("kept", len(discounts)),
			slog.Any("error", err),
		)

		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, DiscountCatalogResponse{
		Discounts: discounts,
		Loaded:    true,
	})
}
