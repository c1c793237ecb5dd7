package main

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"strings"

	"clientverse/config"
	"clientverse/internal/domain/entity"
	"clientverse/internal/domain/service"
	"clientverse/internal/infra/crypto"
	firebaseinfra "clientverse/internal/infra/firebase"
	"clientverse/internal/infra/persistence"
	"clientverse/internal/infra/pubsub"
	"clientverse/internal/infra/qrcode"
	"clientverse/internal/usecase"
	"clientverse/internal/usecase/impl"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
	"gopkg.in/yaml.v3"
)

const (
	formatJSON = "json"
	formatYAML = "yaml"
)

type exportOptions struct {
	userID         string
	format         string
	query          string
	includeSecrets bool
}

func newExportCmd() *cobra.Command {
	opts := &exportOptions{}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export one user's clients as JSON or YAML",
		Long: `Export reads the current snapshot of a user's clients from the configured
store and writes it to stdout. Income tax passwords are omitted unless
--include-secrets is set.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(opts.userID) == "" {
				return errors.New("--user is required")
			}

			snapshot, err := loadSnapshot(cmd.Context(), opts)
			if err != nil {
				return err
			}

			return writeSnapshot(cmd.OutOrStdout(), snapshot, opts.format)
		},
	}

	cmd.Flags().StringVar(&opts.userID, "user", "", "User ID whose clients are exported")
	cmd.Flags().StringVar(&opts.format, "format", formatJSON, "Output format: json or yaml")
	cmd.Flags().StringVar(&opts.query, "query", "", "Only export clients whose name contains this text")
	cmd.Flags().BoolVar(&opts.includeSecrets, "include-secrets", false, "Include decrypted income tax passwords")

	return cmd
}

// loadSnapshot starts the storage graph, reads one snapshot and stops it again.
func loadSnapshot(ctx context.Context, opts *exportOptions) (*entity.ClientSnapshot, error) {
	var clientUC usecase.ClientUsecase

	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			newCLILogger,
			func() context.Context { return ctx },
			firebaseinfra.NewAppProvider,
			crypto.NewFieldCipherFromConfig,
			newContactCardService,
			impl.NewClientService,
		),
		persistence.Module,
		pubsub.Module,
		fx.Populate(&clientUC),
	)

	if err := app.Start(ctx); err != nil {
		return nil, errors.Wrap(err, "start storage")
	}
	defer func() { _ = app.Stop(context.WithoutCancel(ctx)) }()

	snapshot, err := clientUC.ListClients(ctx, opts.userID, usecase.ClientFilter{Query: opts.query})
	if err != nil {
		return nil, err
	}

	if !opts.includeSecrets {
		snapshot = redactSecrets(snapshot)
	}

	return snapshot, nil
}

func newCLILogger(cfg *config.Config) *slog.Logger {
	level := slog.LevelWarn
	if cfg.Env.Debug {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func newContactCardService(cfg *config.Config) service.ContactCardService {
	return qrcode.NewContactCardService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func redactSecrets(snapshot *entity.ClientSnapshot) *entity.ClientSnapshot {
	clients := make([]*entity.Client, 0, len(snapshot.Clients))
	for _, stored := range snapshot.Clients {
		client := *stored
		client.IncomeTaxPassword = ""
		clients = append(clients, &client)
	}

	return &entity.ClientSnapshot{Clients: clients, ReadTime: snapshot.ReadTime}
}

func writeSnapshot(w io.Writer, snapshot *entity.ClientSnapshot, format string) error {
	switch strings.ToLower(format) {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		return errors.WithStack(enc.Encode(snapshot))

	case formatYAML:
		return writeYAML(w, snapshot)

	default:
		return errors.Errorf("unknown format %q, want json or yaml", format)
	}
}

// writeYAML re-encodes the JSON form so YAML keys match the API field names and order.
func writeYAML(w io.Writer, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return errors.WithStack(err)
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return errors.WithStack(err)
	}

	blockStyle(&doc)

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	if err := enc.Encode(&doc); err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(enc.Close())
}

// blockStyle drops the flow and quoting styles inherited from JSON.
func blockStyle(node *yaml.Node) {
	node.Style = 0
	for _, child := range node.Content {
		blockStyle(child)
	}
}
