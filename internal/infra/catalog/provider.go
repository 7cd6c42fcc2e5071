package catalog

import (
	"log/slog"
	"net/http"

	"hafood/config"
	"hafood/internal/domain/constants"
	"hafood/internal/domain/repository"
	"hafood/internal/errors"
	"hafood/internal/infra/persistence/postgres"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

// DiscountParams holds dependencies for creating the discount source
type DiscountParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
	DB     *gorm.DB `optional:"true"`
}

// NewDiscountRepository creates the discount source for the configured provider
func NewDiscountRepository(params DiscountParams) (repository.DiscountRepository, error) {
	discounts := params.Config.Discounts

	switch discounts.Provider {
	case constants.DiscountProviderPostgres:
		if params.DB == nil {
			return nil, errors.New("postgres discount provider requires postgres configuration")
		}
		params.Logger.Info("Using PostgreSQL discount catalog")

		return postgres.NewDiscountRepository(params.DB), nil

	case constants.DiscountProviderStatic:
		params.Logger.Info("Using static discount catalog", slog.Int("entries", len(discounts.Static)))

		return NewStaticDiscountRepository(discounts.Static)

	case constants.DiscountProviderHTTP, "":
		params.Logger.Info("Using HTTP discount catalog", slog.String("endpoint", discounts.Endpoint))

		return NewHTTPDiscountRepository(discounts, &http.Client{}, params.Logger)

	default:
		return nil, errors.Errorf("unknown discount provider: %s", discounts.Provider)
	}
}
