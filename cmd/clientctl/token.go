package main

import (
	"fmt"
	"strings"
	"time"

	"clientverse/config"
	"clientverse/internal/infra/auth"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

const defaultTokenTTL = time.Hour

func newTokenCmd() *cobra.Command {
	var (
		userID string
		ttl    time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint an HS256 bearer token for the jwt auth provider",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(userID) == "" {
				return errors.New("--user is required")
			}

			cfg, err := config.New()
			if err != nil {
				return err
			}

			if ttl <= 0 && cfg.Auth.TokenTTL > 0 {
				ttl = cfg.Auth.TokenTTL
			}

			if ttl <= 0 {
				ttl = defaultTokenTTL
			}

			issuer, err := auth.NewTokenIssuer(cfg)
			if err != nil {
				return err
			}

			token, err := issuer.IssueToken(userID, ttl)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), token)

			return errors.WithStack(err)
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "User ID placed in the token subject")
	cmd.Flags().DurationVar(&ttl, "ttl", 0, "Token lifetime; defaults to auth.tokenTTL or 1h")

	return cmd
}
