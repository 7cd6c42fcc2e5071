package main

import (
	"context"
	"log/slog"
	"os"

	"hafood/config"
	"hafood/internal/delivery"
	"hafood/internal/delivery/worker"
	"hafood/internal/delivery/worker/handler"
	"hafood/internal/domain/repository"
	"hafood/internal/errors"
	"hafood/internal/infra/clock"
	logs "hafood/internal/infra/log"
	"hafood/internal/infra/persistence/postgres"
	"hafood/internal/usecase/impl"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectUsecase(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
		clock.NewRealClock,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			newCartActivityRepository,
		),
	)
}

// newCartActivityRepository requires PostgreSQL, the activity sink has no other backend
func newCartActivityRepository(db *gorm.DB) (repository.CartActivityRepository, error) {
	if db == nil {
		return nil, errors.New("cart worker requires postgres configuration")
	}

	return postgres.NewCartActivityRepository(db), nil
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewCartActivityService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewPushHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				worker.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
