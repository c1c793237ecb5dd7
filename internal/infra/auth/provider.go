package auth

import (
	"context"
	"log/slog"

	"clientverse/config"
	"clientverse/internal/domain/constants"
	"clientverse/internal/domain/service"
	firebaseinfra "clientverse/internal/infra/firebase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// VerifierParams holds dependencies for the IdentityVerifier, injected by Fx
type VerifierParams struct {
	fx.In

	Ctx         context.Context
	Config      *config.Config
	AppProvider *firebaseinfra.AppProvider
	Logger      *slog.Logger
}

// NewIdentityVerifier creates the IdentityVerifier named by auth.provider
func NewIdentityVerifier(params VerifierParams) (service.IdentityVerifier, error) {
	provider := constants.AuthProviderFirebase
	if params.Config.Auth != nil && params.Config.Auth.Provider != "" {
		provider = params.Config.Auth.Provider
	}

	switch provider {
	case constants.AuthProviderJWT:
		params.Logger.Info("Using HS256 JWT identity verifier")

		return NewJWTService(params.Config)

	case constants.AuthProviderFirebase:
		app, err := params.AppProvider.App(params.Ctx)
		if err != nil {
			return nil, err
		}

		client, err := app.Auth(params.Ctx)
		if err != nil {
			return nil, errors.Wrap(err, "failed to get firebase auth client")
		}

		params.Logger.Info("Using Firebase identity verifier")

		return NewFirebaseVerifier(client, params.Logger), nil

	default:
		return nil, errors.Errorf("unknown auth provider: %s", provider)
	}
}

// NewTokenIssuer creates a TokenIssuer for development tokens
func NewTokenIssuer(cfg *config.Config) (service.TokenIssuer, error) {
	return NewJWTService(cfg)
}

// Module provides the auth FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewIdentityVerifier),
)
