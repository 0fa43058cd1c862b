package main

import (
	"context"
	"log/slog"
	"os"

	"neocart/config"
	"neocart/internal/delivery"
	"neocart/internal/delivery/http"
	"neocart/internal/delivery/http/middleware"
	"neocart/internal/delivery/http/router/handler"
	"neocart/internal/domain/service"
	"neocart/internal/infra/auth"
	"neocart/internal/infra/commerce"
	"neocart/internal/infra/events"
	logs "neocart/internal/infra/log"
	"neocart/internal/infra/qrcode"
	"neocart/internal/infra/storage"
	"neocart/internal/state"
	"neocart/internal/usecase"
	"neocart/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Sessions   usecase.SessionUsecase
	Logger     *slog.Logger
	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectGateway(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			impl.RegisterSessionSubscribers,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		state.NewRegistry,
		commerce.NewClient,
	)
}

func injectGateway() fx.Option {
	return fx.Options(
		fx.Provide(
			commerce.NewAccountGateway,
			commerce.NewProductGateway,
			commerce.NewCartGateway,
			commerce.NewWishlistGateway,
			commerce.NewOrderGateway,
			commerce.NewReviewGateway,
			commerce.NewAdminGateway,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewCredentialVerifier,
			events.NewBus,
			storage.New,
			newQRCodeService,
		),
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M", "")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel, cfg.QRCode.BaseURL)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewSessionService,
			impl.NewCatalogService,
			impl.NewCartService,
			impl.NewWishlistService,
			impl.NewOrderService,
			impl.NewReviewService,
			impl.NewAdminService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewSessionMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewLoggerMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewSessionHandler,
			handler.NewCatalogHandler,
			handler.NewCartHandler,
			handler.NewWishlistHandler,
			handler.NewOrderHandler,
			handler.NewAdminHandler,
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
	// Replay any persisted credential before traffic arrives. A stale or
	// missing credential leaves the gateway anonymous.
	if _, err := params.Sessions.Restore(ctx); err != nil {
		params.Logger.Warn("Credential restore failed", slog.Any("error", err))
	}

	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
