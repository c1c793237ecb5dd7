package main

import (
	"context"
	"log/slog"
	"os"

	"clientverse/config"
	"clientverse/internal/delivery"
	"clientverse/internal/delivery/api"
	"clientverse/internal/delivery/api/middleware"
	"clientverse/internal/delivery/api/router/handler"
	"clientverse/internal/domain/service"
	"clientverse/internal/infra/auth"
	"clientverse/internal/infra/crypto"
	firebaseinfra "clientverse/internal/infra/firebase"
	"clientverse/internal/infra/llm"
	logs "clientverse/internal/infra/log"
	"clientverse/internal/infra/persistence"
	"clientverse/internal/infra/pubsub"
	"clientverse/internal/infra/qrcode"
	"clientverse/internal/usecase/impl"

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
		firebaseinfra.NewAppProvider,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		persistence.Module,
	)
}

func injectService() fx.Option {
	return fx.Options(
		auth.Module,
		pubsub.Module,
		fx.Provide(
			crypto.NewFieldCipherFromConfig,
			llm.NewTextGenerator,
			newContactCardService,
		),
	)
}

// newContactCardService creates the contact card renderer from the QR code settings
func newContactCardService(cfg *config.Config) service.ContactCardService {
	return qrcode.NewContactCardService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewClientService,
			impl.NewRecommendationService,
			impl.NewAutofillService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewClientHandler,
			handler.NewStreamHandler,
			handler.NewFlowHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
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
