package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/openfield/dealflow/pkg/logging"
)

func newSweepCmd() *cobra.Command {
	sweep := &cobra.Command{
		Use:   "sweep",
		Short: "Dedup and clean an entire table pairwise",
	}

	sweep.AddCommand(&cobra.Command{
		Use:   "occupational",
		Short: "Remove vacant, contaminated, and duplicate occupational comps",
		RunE: func(cmd *cobra.Command, _ []string) error {
			r, store, err := buildReconciler(cmd)
			if err != nil {
				return err
			}
			ctx := logging.WithOperation(cmd.Context(), "sweep")
			report, err := r.SweepOccupational(ctx, store)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), report.Summary())
			return nil
		},
	})

	sweep.AddCommand(&cobra.Command{
		Use:   "investment",
		Short: "Collapse duplicate investment comps",
		RunE: func(cmd *cobra.Command, _ []string) error {
			r, store, err := buildReconciler(cmd)
			if err != nil {
				return err
			}
			ctx := logging.WithOperation(cmd.Context(), "sweep")
			report, err := r.SweepInvestment(ctx, store)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), report.Summary())
			return nil
		},
	})

	return sweep
}
