package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vaultpass/passgen-go/internal/config"
	"github.com/vaultpass/passgen-go/internal/crypto"
)

// tokenCommand mints a bearer token for the stats API.
func tokenCommand(cfg config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Generate a JWT for the stats API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			subject, _ := cmd.Flags().GetString("subject")
			ttl, _ := cmd.Flags().GetDuration("ttl")

			signed, err := crypto.GenerateToken(subject, cfg.JWTSecret, ttl)
			if err != nil {
				return fmt.Errorf("signing token: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), signed)
			return nil
		},
	}

	cmd.Flags().String("subject", "", "token subject, e.g. the dashboard or operator name")
	cmd.Flags().Duration("ttl", cfg.JWTExpiry, "token lifetime (e.g. 30m, 24h)")
	_ = cmd.MarkFlagRequired("subject")

	return cmd
}
