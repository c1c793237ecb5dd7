// Package persistence selects the client repository backend.
package persistence

import (
	"context"
	"log/slog"

	"clientverse/config"
	"clientverse/internal/domain/constants"
	"clientverse/internal/domain/repository"
	firebaseinfra "clientverse/internal/infra/firebase"
	"clientverse/internal/infra/persistence/firestore"
	"clientverse/internal/infra/persistence/memory"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params holds dependencies for the client repository, injected by Fx
type Params struct {
	fx.In

	Lc          fx.Lifecycle
	Ctx         context.Context
	Config      *config.Config
	AppProvider *firebaseinfra.AppProvider
	Logger      *slog.Logger
}

// NewClientRepository creates the ClientRepository named by storage.provider
func NewClientRepository(params Params) (repository.ClientRepository, error) {
	provider := constants.StorageProviderFirestore
	if params.Config.Storage != nil && params.Config.Storage.Provider != "" {
		provider = params.Config.Storage.Provider
	}

	logger := params.Logger.With(slog.String("storage", provider))

	switch provider {
	case constants.StorageProviderMemory:
		logger.Warn("Using in-memory client storage, data is lost on restart")

		repo := memory.NewClientRepository(logger)
		params.Lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				return repo.Close()
			},
		})

		return repo, nil

	case constants.StorageProviderFirestore:
		client, err := firestore.NewClient(firestore.ClientParams{
			Lc:          params.Lc,
			Ctx:         params.Ctx,
			AppProvider: params.AppProvider,
			Logger:      logger,
		})
		if err != nil {
			return nil, err
		}

		return firestore.NewClientRepository(client, logger), nil

	default:
		return nil, errors.Errorf("unknown storage provider: %s", provider)
	}
}

// Module provides the persistence FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewClientRepository),
)
