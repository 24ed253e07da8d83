// Package cmd wires the dealflow CLI: batch reconciliation, table
// sweeps, derivation runs, and the sqlite mirror.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/openfield/dealflow/internal/config"
	"github.com/openfield/dealflow/pkg/logging"
	"github.com/openfield/dealflow/pkg/reconcile"
	"github.com/openfield/dealflow/pkg/retry"
	"github.com/openfield/dealflow/pkg/save"
)

// Execute runs the CLI with signal-aware cancellation.
func Execute(version string) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	return NewRootCmd(version).ExecuteContext(ctx)
}

// NewRootCmd builds the root command tree.
func NewRootCmd(version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "dealflow",
		Short: "Reconcile property-deal records against the deal workbook",
		Long: `dealflow ingests extracted deal introductions and comparable
transactions, dedups them against the workbook with tiered fuzzy
matching, merges partial records, derives missing figures, and commits
through a crash-safe write path.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			cfg := config.Load()
			logging.SetFormat(cfg.LogFormat)
			logging.SetLevel(cfg.LogLevel)
		},
	}

	flags := root.PersistentFlags()
	flags.String("store", "dealflow.yaml", "path to the workbook store file")
	flags.String("temp-dir", os.TempDir(), "directory for staging writes, outside the synced folder")
	flags.String("mirror", "", "path to the sqlite comps mirror (empty disables mirroring)")
	flags.Bool("dry-run", false, "report changes without writing")
	flags.String("log-level", "info", "log level (debug, info, warn, error)")
	flags.String("log-format", "console", "log format (console, json)")
	for _, name := range []string{"store", "temp-dir", "mirror", "dry-run", "log-level", "log-format"} {
		_ = viper.BindPFlag(name, flags.Lookup(name))
	}

	root.AddCommand(
		newReconcileCmd(),
		newSweepCmd(),
		newDeriveCmd(),
		newMirrorCmd(),
	)
	return root
}

// buildReconciler assembles a reconciler from the resolved settings.
// Flags take precedence over DEALFLOW_ environment variables and .env
// values through the viper bindings above.
func buildReconciler(cmd *cobra.Command) (*reconcile.Reconciler, string, error) {
	cfg := config.Load()
	dryRun := viper.GetBool("dry-run")

	gateway := save.New(
		save.WithTempDir(cfg.TempDir),
		save.WithLockPolicy(retry.DefaultPolicy()),
	)
	r := reconcile.New(
		reconcile.WithGateway(gateway),
		reconcile.WithDryRun(dryRun),
	)
	if dryRun {
		fmt.Fprintln(cmd.OutOrStdout(), "dry run: no changes will be written")
	}
	return r, cfg.StorePath, nil
}
