package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"inventory-manager/core/utils"
	"inventory-manager/feature/store"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	reportOutDir string
	reportJSON   bool
)

// reportCmd builds a store report and writes it as PDF, or prints it as JSON.
var reportCmd = &cobra.Command{
	Use:   "report <store-id>",
	Short: "Build a store report",
	Long: `Builds the report of a store: its priciest available books and its most
prolific authors. The PDF is written to the output directory under its download name.

Examples:
  # Write the PDF to the current directory
  report 3

  # Print the report as JSON
  report 3 --json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, ok := utils.ParseID(args[0])
		if !ok {
			return fmt.Errorf("invalid store id %q: must be a positive integer", args[0])
		}

		d, err := loadDeps()
		if err != nil {
			return err
		}
		defer d.close()

		if err := d.connectDatabase(); err != nil {
			return err
		}

		svc := store.NewService(d.db, d.log, d.cfg.Report.TopN, nil, nil)
		if reportJSON {
			r, err := svc.Report(cmd.Context(), id)
			if err != nil {
				return err
			}
			return printJSON(r)
		}

		filename, data, err := svc.RenderReport(cmd.Context(), id)
		if err != nil {
			return err
		}
		path := filepath.Join(reportOutDir, filename)
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
		d.log.Info("Report written", zap.Uint("store_id", id), zap.String("path", path))
		return nil
	},
}

func init() {
	reportCmd.Flags().StringVarP(&reportOutDir, "out", "o", ".", "Directory to write the PDF into")
	reportCmd.Flags().BoolVar(&reportJSON, "json", false, "Print the report as JSON instead of writing a PDF")
	RootCmd.AddCommand(reportCmd)
}
