package cmd

import (
	"fmt"

	"inventory-manager/core/database"
	"inventory-manager/feature/catalog/models"
	"inventory-manager/feature/health/checks"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// checkCmd runs the health checks from the command line.
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check the database schema and the archive bucket",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := loadDeps()
		if err != nil {
			return err
		}
		defer d.close()

		if err := d.connectDatabase(); err != nil {
			return err
		}
		if err := database.Ping(cmd.Context(), d.db); err != nil {
			return fmt.Errorf("database ping failed: %w", err)
		}

		schema, err := checks.CheckSchema(d.db, models.ExpectedColumns())
		if err != nil {
			return err
		}
		for table, tbl := range schema.Tables {
			if tbl.Status != "ok" {
				d.log.Warn("Table is missing columns", zap.String("table", table), zap.Strings("columns", tbl.MissingColumns))
			}
		}
		for _, e := range schema.Errors {
			d.log.Warn("Schema inspection failed", zap.String("error", e))
		}

		if err := d.openArchiver(); err != nil {
			return err
		}
		st := checks.CheckStorage(cmd.Context(), d.archiver)
		d.log.Info("Storage check", zap.String("status", st.Status), zap.String("bucket", st.Bucket))

		if !schema.Matched || !st.Healthy() {
			return fmt.Errorf("health checks failed")
		}
		d.log.Info("All checks passed")
		return nil
	},
}

func init() {
	RootCmd.AddCommand(checkCmd)
}
