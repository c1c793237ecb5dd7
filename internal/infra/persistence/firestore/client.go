package firestore

import (
	"context"
	"log/slog"

	firebaseinfra "clientverse/internal/infra/firebase"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ClientParams holds dependencies for the Firestore client, injected by Fx
type ClientParams struct {
	fx.In

	Lc          fx.Lifecycle
	Ctx         context.Context
	AppProvider *firebaseinfra.AppProvider
	Logger      *slog.Logger
}

// NewClient opens a Firestore client from the shared Firebase app and closes it on shutdown
func NewClient(params ClientParams) (*firestore.Client, error) {
	app, err := params.AppProvider.App(params.Ctx)
	if err != nil {
		return nil, err
	}

	client, err := app.Firestore(params.Ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get firestore client")
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			params.Logger.Info("Closing Firestore client")

			return errors.WithStack(client.Close())
		},
	})

	return client, nil
}
