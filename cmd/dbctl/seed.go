package main

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"masteria.app/panel/common/id"
	"masteria.app/panel/core/config"
	"masteria.app/panel/core/db"
	"masteria.app/panel/internal/auth"
	"masteria.app/panel/internal/service"
	"masteria.app/panel/internal/store"
)

type seedAdminOptions struct {
	name     string
	email    string
	password string
	company  string
}

func newSeedAdminCmd(cfg config.Config) *cobra.Command {
	var opts seedAdminOptions

	cmd := &cobra.Command{
		Use:   "seed-admin",
		Short: "Create a company and its first admin user",
		Example: `  # bootstrap a local tenant
  dbctl seed-admin --company "Acme Vendas" --email admin@acme.test --password 'troque-esta-senha'`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			if err := id.Init(3); err != nil {
				return fmt.Errorf("initializing id generator: %w", err)
			}

			database, err := db.New(ctx, cfg.DB)
			if err != nil {
				return err
			}
			defer database.Close()

			stores := store.NewStores(database.Queries())
			authService := service.NewAuthService(
				stores.Users(),
				stores.Companies(),
				service.NewTxRunner(database),
				auth.NewTokenManager(signingSecret(cfg), cfg.Auth.SessionTTL),
				auth.NewHasher(0),
			)

			session, err := authService.Register(ctx, service.RegisterParams{
				Name:        opts.name,
				Email:       opts.email,
				Password:    opts.password,
				CompanyName: opts.company,
			})
			if err != nil {
				return fmt.Errorf("seeding admin: %w", err)
			}

			cmd.Printf("company %s (%d) created\n", session.Company.Slug, session.Company.ID)
			cmd.Printf("admin %s (%d) created\n", session.User.Email, session.User.ID)
			cmd.Printf("webhook secret: %s\n", session.Company.WebhookSecret)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.name, "name", "Administrador", "admin display name")
	cmd.Flags().StringVar(&opts.email, "email", "", "admin email (required)")
	cmd.Flags().StringVar(&opts.password, "password", "", "admin password (required)")
	cmd.Flags().StringVar(&opts.company, "company", "", "company name (required)")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	_ = cmd.MarkFlagRequired("company")

	return cmd
}

// signingSecret returns the configured JWT secret, or a throwaway one. The
// session Register issues is discarded, so any key works.
func signingSecret(cfg config.Config) string {
	if cfg.Auth.JWTSecret != "" {
		return cfg.Auth.JWTSecret
	}
	b := make([]byte, 32)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}
