package cmd

import (
	"inventory-manager/feature/catalog/models"

	"github.com/spf13/cobra"
)

// migrateCmd creates or updates the catalog tables.
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply the catalog schema",
	Long:  `Creates the authors, books, stores and store_books tables and their unique indexes.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := loadDeps()
		if err != nil {
			return err
		}
		defer d.close()

		if err := d.connectDatabase(); err != nil {
			return err
		}
		if err := models.Migrate(d.db); err != nil {
			return err
		}
		d.log.Info("Schema is up to date")
		return nil
	},
}

func init() {
	RootCmd.AddCommand(migrateCmd)
}
