package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"inventory-manager/feature/inventory"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// ingestCmd runs an inventory file through the same pipeline as the upload endpoint.
var ingestCmd = &cobra.Command{
	Use:   "ingest <file.csv>",
	Short: "Ingest an inventory CSV file",
	Long: `Validates every row of the file, then reconciles each record into the catalog.
The summary is printed as JSON on stdout.

Examples:
  # Ingest a local file
  ingest inventory.csv`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := loadDeps()
		if err != nil {
			return err
		}
		defer d.close()

		if err := d.connectDatabase(); err != nil {
			return err
		}
		if err := d.connectArchiver(cmd.Context()); err != nil {
			return err
		}
		d.connectSideEffects()

		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("failed to open %s: %w", args[0], err)
		}
		defer f.Close()

		svc := inventory.NewService(d.db, d.log, d.archiver, d.cache, d.publisher)
		summary, err := svc.Ingest(cmd.Context(), f)
		if err != nil {
			if errors.Is(err, inventory.ErrValidation) {
				return fmt.Errorf("validation failed: %w", err)
			}
			if summary != nil {
				_ = printJSON(summary)
			}
			return err
		}

		d.log.Info("Ingestion finished",
			zap.String("upload_id", summary.UploadID),
			zap.Int("created", summary.Created),
			zap.Int("updated", summary.Updated),
			zap.Int("errors", len(summary.Errors)),
		)
		return printJSON(summary)
	},
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func init() {
	RootCmd.AddCommand(ingestCmd)
}
