package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tabstat/tabstat/internal/logger"
	"github.com/tabstat/tabstat/internal/render"
	"github.com/tabstat/tabstat/internal/table"
)

var headRows int

var headCmd = &cobra.Command{
	Use:   "head <file>",
	Short: "Print the first rows of a delimited file",
	Long: `Head loads a delimited text file and prints its first rows as an
aligned table. Null cells render empty.

Example:
  tabstat head -n 20 measurements.csv`,
	Args: cobra.ExactArgs(1),
	RunE: runHead,
}

func init() {
	headCmd.Flags().IntVarP(&headRows, "rows", "n", 10,
		"Number of rows to print")

	rootCmd.AddCommand(headCmd)
}

func runHead(cmd *cobra.Command, args []string) error {
	path := args[0]

	if headRows < 0 {
		return fmt.Errorf("row count cannot be negative")
	}

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

	if err := render.Head(outputWriter, tbl, headRows, renderOptions(cfg)); err != nil {
		return fmt.Errorf("failed to write rows: %w", err)
	}
	return nil
}
