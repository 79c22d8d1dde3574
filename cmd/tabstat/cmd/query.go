package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tabstat/tabstat/internal/database"
	"github.com/tabstat/tabstat/internal/logger"
	"github.com/tabstat/tabstat/internal/render"
	"github.com/tabstat/tabstat/internal/sqlutil"
	"github.com/tabstat/tabstat/internal/stats"
)

var (
	queryTable  string
	queryLimit  int
	queryFormat string
)

var queryCmd = &cobra.Command{
	Use:   "query [sql]",
	Short: "Summarize a MySQL table or query result",
	Long: `Query runs a SQL statement (or selects a whole table with --table)
against the database configured in the config file and summarizes the
result set exactly like describe summarizes a file.

The connection settings come from the 'database' section of the config
file. A SIGINT cancels the running statement.

Example:
  tabstat query --table measurements
  tabstat query "SELECT height, weight FROM patients WHERE age > 40"`,
	Args: cobra.MaximumNArgs(1),
	RunE: runQuery,
}

func init() {
	queryCmd.Flags().StringVarP(&queryTable, "table", "t", "",
		"Summarize all rows of this table instead of running a SQL statement")
	queryCmd.Flags().IntVar(&queryLimit, "limit", 0,
		"Cap the number of rows fetched with --table (0 = no cap)")
	queryCmd.Flags().StringVarP(&queryFormat, "format", "f", "",
		"Output format (table, csv, json)")

	rootCmd.AddCommand(queryCmd)
}

func runQuery(cmd *cobra.Command, args []string) error {
	query, err := buildQuery(args)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(queryFormat)
	if err != nil {
		return err
	}
	if cfg.Database.Host == "" {
		return fmt.Errorf("no database configured: set the 'database' section in %s", GetConfigFile())
	}

	log, err := logger.New(&cfg.Logging)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer log.Sync()

	ctx := database.SetupSignalHandler()

	dbManager := database.NewManager(&cfg.Database)
	if err := dbManager.Connect(ctx); err != nil {
		return err
	}
	defer dbManager.Close()

	log.Debugw("running query", "query", query)

	tbl, err := database.FetchTable(ctx, dbManager.DB, query, csvOptions(cfg).Options)
	if err != nil {
		return err
	}
	log.Debugw("fetched result set", "rows", tbl.NumRows(), "columns", tbl.NumCols())

	summary := stats.Describe(tbl, statsOptions(cfg))

	opts := renderOptions(cfg)
	switch cfg.Output.Format {
	case "csv":
		return render.SummaryCSV(outputWriter, summary, opts)
	case "json":
		return render.SummaryJSON(outputWriter, summary, opts)
	default:
		return render.Summary(outputWriter, summary, opts)
	}
}

// buildQuery resolves the SQL to run from the --table flag or the
// positional argument. Table names are validated and quoted before they
// are spliced into the statement.
func buildQuery(args []string) (string, error) {
	if queryTable != "" && len(args) > 0 {
		return "", fmt.Errorf("--table and a SQL argument are mutually exclusive")
	}

	if queryTable != "" {
		quoted, err := sqlutil.QuoteIdentifierSafe(queryTable)
		if err != nil {
			return "", err
		}
		query := "SELECT * FROM " + quoted
		if queryLimit > 0 {
			query = fmt.Sprintf("%s LIMIT %d", query, queryLimit)
		}
		return query, nil
	}

	if len(args) == 0 {
		return "", fmt.Errorf("either --table or a SQL statement is required")
	}
	return args[0], nil
}
