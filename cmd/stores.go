package cmd

import (
	"inventory-manager/feature/store"

	"github.com/spf13/cobra"
)

// storesCmd lists the known stores.
var storesCmd = &cobra.Command{
	Use:   "stores",
	Short: "List stores",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := loadDeps()
		if err != nil {
			return err
		}
		defer d.close()

		if err := d.connectDatabase(); err != nil {
			return err
		}

		stores, err := store.NewService(d.db, d.log, d.cfg.Report.TopN, nil, nil).ListStores(cmd.Context())
		if err != nil {
			return err
		}
		return printJSON(stores)
	},
}

func init() {
	RootCmd.AddCommand(storesCmd)
}
