package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tabstat/tabstat/internal/config"
	"github.com/tabstat/tabstat/internal/logger"
	"github.com/tabstat/tabstat/internal/render"
	"github.com/tabstat/tabstat/internal/stats"
	"github.com/tabstat/tabstat/internal/table"
)

var (
	describeColumns []string
	describeAll     bool
	describeFormat  string
)

var describeCmd = &cobra.Command{
	Use:   "describe <file>",
	Short: "Summarize the numeric columns of a delimited file",
	Long: `Describe loads a delimited text file with a header row, infers a type
for each column, and prints descriptive statistics for the numeric
columns: count, mean, std, min, the configured percentiles, and max.

Non-numeric columns are skipped unless --all is given, in which case
count/unique/top/freq statistics are reported for them as well.

Example:
  tabstat describe measurements.csv
  tabstat describe --columns height,weight --format json data.csv`,
	Args: cobra.ExactArgs(1),
	RunE: runDescribe,
}

func init() {
	describeCmd.Flags().StringSliceVar(&describeColumns, "columns", nil,
		"Restrict the summary to these columns")
	describeCmd.Flags().BoolVar(&describeAll, "all", false,
		"Also summarize non-numeric columns")
	describeCmd.Flags().StringVarP(&describeFormat, "format", "f", "",
		"Output format (table, csv, json)")

	rootCmd.AddCommand(describeCmd)
}

func runDescribe(cmd *cobra.Command, args []string) error {
	path := args[0]

	cfg, err := loadConfig(describeFormat)
	if err != nil {
		return err
	}

	log, err := logger.New(&cfg.Logging)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer log.Sync()

	tbl, err := loadInput(path, cfg, log)
	if err != nil {
		return err
	}

	summary := stats.Describe(tbl, statsOptions(cfg))
	log.WithFile(path).Debugw("computed summary",
		"numeric_columns", summary.Len(),
		"rows", tbl.NumRows())

	return writeDescribe(cfg, summary, tbl)
}

// loadInput loads and optionally projects the input file.
func loadInput(path string, cfg *config.Config, log *logger.Logger) (*table.Table, error) {
	tbl, err := table.LoadCSV(path, csvOptions(cfg))
	if err != nil {
		return nil, err
	}
	log.WithFile(path).Debugw("loaded input",
		"rows", tbl.NumRows(),
		"columns", tbl.NumCols())

	if len(describeColumns) > 0 {
		tbl, err = tbl.Select(describeColumns)
		if err != nil {
			return nil, fmt.Errorf("failed to select columns: %w", err)
		}
	}
	return tbl, nil
}

// writeDescribe renders the summary in the configured format.
func writeDescribe(cfg *config.Config, summary *stats.Summary, tbl *table.Table) error {
	opts := renderOptions(cfg)

	var text []stats.TextColumnSummary
	if describeAll {
		text = stats.DescribeText(tbl)
	}

	switch cfg.Output.Format {
	case "csv":
		if err := render.SummaryCSV(outputWriter, summary, opts); err != nil {
			return fmt.Errorf("failed to write summary: %w", err)
		}
		if describeAll {
			fmt.Fprintln(outputWriter)
			return render.TextSummaryCSV(outputWriter, text, opts)
		}
		return nil
	case "json":
		if describeAll {
			return render.SummaryJSONWithText(outputWriter, summary, text, opts)
		}
		return render.SummaryJSON(outputWriter, summary, opts)
	default:
		if err := render.Summary(outputWriter, summary, opts); err != nil {
			return fmt.Errorf("failed to write summary: %w", err)
		}
		if describeAll {
			fmt.Fprintln(outputWriter)
			return render.TextSummary(outputWriter, text, opts)
		}
		return nil
	}
}
