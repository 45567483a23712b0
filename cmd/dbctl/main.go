// Command dbctl manages the panel databases: goose migrations for the
// primary and vector stores, and bootstrapping the first admin account.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"masteria.app/panel/common/logger"
	"masteria.app/panel/core/config"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(config.ServiceTypeDBCtl)
	if err != nil {
		slog.ErrorContext(ctx, "failed to load config", "error", err)
		os.Exit(1)
	}
	logger.Setup(cfg)

	if err := newRootCmd(cfg).ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(cfg config.Config) *cobra.Command {
	root := &cobra.Command{
		Use:          "dbctl",
		Short:        "Manage the Master IA panel databases",
		SilenceUsage: true,
	}

	root.AddCommand(
		newMigrateCmd(cfg),
		newRollbackCmd(cfg),
		newStatusCmd(cfg),
		newResetCmd(cfg),
		newSeedAdminCmd(cfg),
	)

	return root
}
