package cmd

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"

	"github.com/openfield/dealflow/pkg/errors"
	"github.com/openfield/dealflow/pkg/logging"
	"github.com/openfield/dealflow/pkg/records"
)

// Batch is the YAML shape of an extracted-records file handed to the
// reconcile command. Any combination of the three lists may appear.
type Batch struct {
	Deals        []records.DealRecord       `yaml:"deals"`
	Investment   []records.InvestmentComp   `yaml:"investment_comps"`
	Occupational []records.OccupationalComp `yaml:"occupational_comps"`
}

func newReconcileCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reconcile <batch.yaml> [batch.yaml...]",
		Short: "Reconcile extracted record batches into the store",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, store, err := buildReconciler(cmd)
			if err != nil {
				return err
			}
			ctx := logging.WithOperation(logging.WithStore(cmd.Context(), store), "reconcile")

			var total records.Report
			for _, path := range args {
				batch, err := loadBatch(path)
				if err != nil {
					return err
				}
				if len(batch.Deals) > 0 {
					report, err := r.Deals(ctx, store, batch.Deals)
					total.Add(report)
					if err != nil {
						return err
					}
				}
				if len(batch.Investment) > 0 {
					report, err := r.Investment(ctx, store, batch.Investment)
					total.Add(report)
					if err != nil {
						return err
					}
				}
				if len(batch.Occupational) > 0 {
					report, err := r.Occupational(ctx, store, batch.Occupational)
					total.Add(report)
					if err != nil {
						return err
					}
				}
			}

			fmt.Fprint(cmd.OutOrStdout(), total.Summary())
			return nil
		},
	}
}

func loadBatch(path string) (*Batch, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapIO("read", path, err)
	}
	var batch Batch
	if err := yaml.Unmarshal(data, &batch); err != nil {
		return nil, errors.WrapParse("yaml", path, err)
	}
	return &batch, nil
}
