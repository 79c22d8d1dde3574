package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tabstat/tabstat/internal/logger"
	"github.com/tabstat/tabstat/internal/render"
	"github.com/tabstat/tabstat/internal/table"
)

var schemaCmd = &cobra.Command{
	Use:   "schema <file>",
	Short: "Show the inferred column types of a delimited file",
	Long: `Schema loads a delimited text file and reports the inferred type of
each column together with its non-null and null cell counts.

Example:
  tabstat schema measurements.csv`,
	Args: cobra.ExactArgs(1),
	RunE: runSchema,
}

func init() {
	rootCmd.AddCommand(schemaCmd)
}

func runSchema(cmd *cobra.Command, args []string) error {
	path := args[0]

	cfg, err := loadConfig("")
	if err != nil {
		return err
	}

	log, err := logger.New(&cfg.Logging)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer log.Sync()

	tbl, err := table.LoadCSV(path, csvOptions(cfg))
	if err != nil {
		return err
	}
	log.WithFile(path).Debugw("loaded input", "columns", tbl.NumCols())

	if err := render.Schema(outputWriter, tbl, renderOptions(cfg)); err != nil {
		return fmt.Errorf("failed to write schema: %w", err)
	}
	return nil
}
