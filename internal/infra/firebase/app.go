// Package firebase initializes the shared Firebase app used for Firestore and ID token verification.
package firebase

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"clientverse/config"

	firebase "firebase.google.com/go/v4"
	"google.golang.org/api/option"
)

// AppProvider creates the Firebase app on first use, so deployments that use
// neither Firestore nor Firebase auth never need credentials.
type AppProvider struct {
	cfg    *config.FirebaseConfig
	logger *slog.Logger

	once sync.Once
	app  *firebase.App
	err  error
}

// NewAppProvider creates a lazy Firebase app provider
func NewAppProvider(cfg *config.Config, logger *slog.Logger) *AppProvider {
	firebaseCfg := cfg.Firebase
	if firebaseCfg == nil {
		firebaseCfg = &config.FirebaseConfig{}
	}

	return &AppProvider{cfg: firebaseCfg, logger: logger}
}

// App returns the initialized Firebase app
func (p *AppProvider) App(ctx context.Context) (*firebase.App, error) {
	p.once.Do(func() {
		p.app, p.err = newApp(ctx, p.cfg)
		if p.err == nil {
			p.logger.Info("Firebase app initialized", slog.String("project_id", p.cfg.ProjectID))
		}
	})

	return p.app, p.err
}

func newApp(ctx context.Context, cfg *config.FirebaseConfig) (*firebase.App, error) {
	var appConfig *firebase.Config
	if cfg.ProjectID != "" {
		appConfig = &firebase.Config{ProjectID: cfg.ProjectID}
	}

	var opts []option.ClientOption
	if cfg.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsPath))
	}

	app, err := firebase.NewApp(ctx, appConfig, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase app: %w", err)
	}

	return app, nil
}
