package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/openfield/dealflow/pkg/logging"
)

func newDeriveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "derive",
		Short: "Fill derivable cells across every table",
		RunE: func(cmd *cobra.Command, _ []string) error {
			r, store, err := buildReconciler(cmd)
			if err != nil {
				return err
			}
			report, err := r.Derive(logging.WithOperation(cmd.Context(), "derive"), store)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), report.Summary())
			return nil
		},
	}
}
