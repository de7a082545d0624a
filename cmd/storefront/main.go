package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"storefront/config"
	"storefront/internal/delivery"
	"storefront/internal/delivery/http"
	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/router/handler"
	"storefront/internal/delivery/worker"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/infra/auth"
	logs "storefront/internal/infra/log"
	"storefront/internal/infra/payment"
	"storefront/internal/infra/persistence/jsonfile"
	"storefront/internal/infra/session"
	"storefront/internal/usecase"
	"storefront/internal/usecase/impl"

	"go.uber.org/fx"
)

const defaultCartTTL = 2 * time.Hour

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			ensureAdmin,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		newStore,
	)
}

// newStore opens the JSON-file store rooted at the configured data directory.
func newStore(cfg *config.Config) (*jsonfile.Store, error) {
	return jsonfile.NewStore(cfg.Storage.DataDir)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			jsonfile.NewUserRepository,
			jsonfile.NewProductRepository,
			jsonfile.NewOrderRepository,
			jsonfile.NewNotificationRepository,
			jsonfile.NewSupportMessageRepository,
			jsonfile.NewCountryRepository,
			newCartStore,
		),
	)
}

// newCartStore creates the in-memory session cart store with the configured TTL.
func newCartStore(cfg *config.Config) repository.CartStore {
	ttl := defaultCartTTL
	if cfg.Cart != nil && cfg.Cart.TTL > 0 {
		ttl = cfg.Cart.TTL
	}

	return session.NewCartStore(ttl)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			newPaymentConfirmer,
		),
	)
}

// newPaymentConfirmer creates the exchange wallet confirmer. A nil
// confirmer means approval is manual-only.
func newPaymentConfirmer(cfg *config.Config, logger *slog.Logger) service.PaymentConfirmer {
	return payment.NewBybitConfirmer(cfg, logger)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewCatalogService,
			impl.NewCartService,
			impl.NewOrderService,
			impl.NewSupportService,
			impl.NewNotificationService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewUserHandler,
			handler.NewCatalogHandler,
			handler.NewCartHandler,
			handler.NewOrderHandler,
			handler.NewSupportHandler,
			handler.NewNotificationHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				worker.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// ensureAdmin bootstraps the configured admin account before serving.
func ensureAdmin(ctx context.Context, users usecase.UserUsecase) error {
	return users.EnsureAdmin(ctx)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
