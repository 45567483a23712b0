package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"masteria.app/panel/core/config"
	"masteria.app/panel/core/db/migrations"
)

const targetAll = "all"

// resolveTargets expands a target argument into migration targets. "all"
// skips the vector store when it is not configured; naming it explicitly
// does not.
func resolveTargets(cfg config.Config, arg string) ([]migrations.Target, error) {
	if arg == "" || arg == targetAll {
		targets := []migrations.Target{migrations.TargetPrimary}
		if cfg.VectorDB.Enabled() {
			targets = append(targets, migrations.TargetVector)
		}
		return targets, nil
	}

	target, err := migrations.ParseTarget(arg)
	if err != nil {
		return nil, err
	}
	return []migrations.Target{target}, nil
}

func dsnFor(cfg config.Config, target migrations.Target) string {
	if target == migrations.TargetVector {
		return cfg.VectorDB.DSN
	}
	return cfg.DB.DSN
}

// openAll opens a migrator per target. The caller closes them with closeAll
// even when an error is returned.
func openAll(cfg config.Config, targets []migrations.Target) ([]*migrations.Migrator, error) {
	migrators := make([]*migrations.Migrator, 0, len(targets))
	for _, target := range targets {
		m, err := migrations.Open(target, dsnFor(cfg, target))
		if err != nil {
			return migrators, err
		}
		migrators = append(migrators, m)
	}
	return migrators, nil
}

func closeAll(migrators []*migrations.Migrator) {
	for _, m := range migrators {
		if err := m.Close(); err != nil {
			slog.Warn("closing migrator", "target", m.Target(), "error", err)
		}
	}
}

func optionalTarget(args []string) string {
	if len(args) == 0 {
		return targetAll
	}
	return args[0]
}

func newMigrateCmd(cfg config.Config) *cobra.Command {
	return &cobra.Command{
		Use:       "migrate [primary|vector|all]",
		Short:     "Apply pending migrations",
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{string(migrations.TargetPrimary), string(migrations.TargetVector), targetAll},
		RunE: func(cmd *cobra.Command, args []string) error {
			targets, err := resolveTargets(cfg, optionalTarget(args))
			if err != nil {
				return err
			}
			migrators, err := openAll(cfg, targets)
			defer closeAll(migrators)
			if err != nil {
				return err
			}

			for _, m := range migrators {
				if err := m.Up(cmd.Context()); err != nil {
					return err
				}
			}
			cmd.Println("migrations applied")
			return nil
		},
	}
}

func newRollbackCmd(cfg config.Config) *cobra.Command {
	return &cobra.Command{
		Use:       "rollback <primary|vector>",
		Short:     "Roll back the most recent migration of one database",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{string(migrations.TargetPrimary), string(migrations.TargetVector)},
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := migrations.ParseTarget(args[0])
			if err != nil {
				return err
			}
			m, err := migrations.Open(target, dsnFor(cfg, target))
			if err != nil {
				return err
			}
			defer closeAll([]*migrations.Migrator{m})

			return m.Down(cmd.Context())
		},
	}
}

func newStatusCmd(cfg config.Config) *cobra.Command {
	return &cobra.Command{
		Use:       "status [primary|vector|all]",
		Short:     "Show applied and pending migrations",
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{string(migrations.TargetPrimary), string(migrations.TargetVector), targetAll},
		RunE: func(cmd *cobra.Command, args []string) error {
			targets, err := resolveTargets(cfg, optionalTarget(args))
			if err != nil {
				return err
			}
			migrators, err := openAll(cfg, targets)
			defer closeAll(migrators)
			if err != nil {
				return err
			}

			for _, m := range migrators {
				states, err := m.Status(cmd.Context())
				if err != nil {
					return err
				}
				cmd.Printf("%s:\n", m.Target())
				for _, s := range states {
					state := "pending"
					if s.Applied {
						state = "applied"
					}
					cmd.Printf("  %05d  %-8s %s\n", s.Version, state, s.Path)
				}
			}
			return nil
		},
	}
}

func newResetCmd(cfg config.Config) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Drop and re-apply every migration on every configured database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfg.IsProduction() && !force {
				return fmt.Errorf("refusing to reset a production database without --force")
			}

			targets, err := resolveTargets(cfg, targetAll)
			if err != nil {
				return err
			}
			migrators, err := openAll(cfg, targets)
			defer closeAll(migrators)
			if err != nil {
				return err
			}

			if err := migrations.Reset(cmd.Context(), migrators...); err != nil {
				return err
			}
			cmd.Println("databases reset")
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "allow resetting when APP_ENV=production")
	return cmd
}
