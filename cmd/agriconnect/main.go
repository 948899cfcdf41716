package main

import (
	"context"
	"log/slog"
	"os"

	"agriconnect/config"
	"agriconnect/internal/delivery"
	"agriconnect/internal/delivery/http"
	"agriconnect/internal/delivery/http/middleware"
	"agriconnect/internal/delivery/http/router/handler"
	"agriconnect/internal/domain/region"
	"agriconnect/internal/domain/repository"
	"agriconnect/internal/domain/service"
	"agriconnect/internal/infra/assistant"
	"agriconnect/internal/infra/auth"
	"agriconnect/internal/infra/localstore"
	logs "agriconnect/internal/infra/log"
	"agriconnect/internal/infra/qrcode"
	"agriconnect/internal/infra/sched"
	"agriconnect/internal/usecase/impl"

	"go.uber.org/fx"
)

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
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		localstore.NewStore,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			localstore.NewUserRepository,
			localstore.NewCropRepository,
			localstore.NewTransactionRepository,
			localstore.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			newAuthGateway,
			newRegionMatcher,
			assistant.NewHTTPClient,
			qrcode.NewQRCodeService,
			sched.NewTimerScheduler,
		),
	)
}

// newAuthGateway selects the remote auth proxy when an endpoint is
// configured, otherwise the store-backed gateway keeps the deployment
// functional offline.
func newAuthGateway(
	cfg *config.Config,
	logger *slog.Logger,
	userRepo repository.UserRepository,
	hasher service.PasswordHasher,
) service.AuthGateway {
	if cfg.Remote != nil && cfg.Remote.AuthBaseURL != "" {
		return auth.NewRemoteGateway(cfg, logger)
	}

	return auth.NewLocalGateway(userRepo, hasher)
}

// newRegionMatcher creates the regional affinity matcher from config.
func newRegionMatcher(cfg *config.Config) *region.Matcher {
	return region.NewMatcher(cfg.Region.MaxDistanceKm)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewLifecycleService,
			impl.NewListingService,
			impl.NewVerificationService,
			impl.NewAccountService,
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
			handler.NewAuthHandler,
			handler.NewCropHandler,
			handler.NewTransactionHandler,
			handler.NewCommunityHandler,
			handler.NewAssistantHandler,
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
		),
	)
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
