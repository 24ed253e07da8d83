package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/openfield/dealflow/internal/config"
	"github.com/openfield/dealflow/pkg/errors"
	"github.com/openfield/dealflow/pkg/records"
	"github.com/openfield/dealflow/pkg/store"
	"github.com/openfield/dealflow/pkg/store/sqlite"
)

func newMirrorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mirror",
		Short: "Mirror the occupational comps into a sqlite database",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.Load()
			mirrorPath := cfg.MirrorPath
			if mirrorPath == "" {
				return errors.NewValidationError("mirror", "", "no mirror path configured")
			}

			wb, err := store.Load(cfg.StorePath)
			if err != nil {
				return err
			}
			tbl, err := wb.Table(store.OccupationalTable)
			if err != nil {
				return err
			}
			comps := make([]records.OccupationalComp, 0, tbl.RowCount())
			for row := 0; row < tbl.RowCount(); row++ {
				c, err := store.ReadOccupational(tbl, row)
				if err != nil {
					return err
				}
				comps = append(comps, *c)
			}

			m, err := sqlite.Open(mirrorPath)
			if err != nil {
				return err
			}
			defer m.Close()

			written, err := m.Upsert(cmd.Context(), comps)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "mirrored %d occupational comps to %s\n", written, mirrorPath)
			return nil
		},
	}
}
