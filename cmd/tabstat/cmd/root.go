package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// Version information (set via ldflags at build time)
var (
	Version = "0.0.1-dev"
	Commit  = "unknown"
)

// CLI flags that override config file values
var (
	cfgFile   string
	logLevel  string
	logFormat string
	delimiter string
	precision int
	noColor   bool
)

var rootCmd = &cobra.Command{
	Use:   "tabstat",
	Short: "Descriptive statistics for tabular data",
	Long: `A CLI tool that loads delimited text files (or MySQL result sets)
into a typed in-memory table and reports per-column descriptive
statistics: count, mean, std, min, quartiles, max.

Features:
  - Column type inference (int, float, bool, time, string)
  - Configurable delimiter, null tokens, and date formats
  - Table, CSV, and JSON output
  - Summaries over MySQL tables and ad-hoc queries`,
	Version: Version,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Config file flag
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "tabstat.yaml",
		"Path to configuration file (optional)")

	// Logging overrides
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "",
		"Override log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "",
		"Override log format (json, text)")

	// Input and output overrides
	rootCmd.PersistentFlags().StringVarP(&delimiter, "delimiter", "d", "",
		"Override field delimiter (single character)")
	rootCmd.PersistentFlags().IntVar(&precision, "precision", 0,
		"Override decimal digits in statistic output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false,
		"Disable colored output")
}

// GetConfigFile returns the config file path
func GetConfigFile() string {
	return cfgFile
}

// CLIOverrides contains flag values that override config file settings
type CLIOverrides struct {
	LogLevel  string
	LogFormat string
	Delimiter string
	Precision int
	NoColor   bool
}

// GetCLIOverrides returns the CLI flag override values
func GetCLIOverrides() CLIOverrides {
	return CLIOverrides{
		LogLevel:  logLevel,
		LogFormat: logFormat,
		Delimiter: delimiter,
		Precision: precision,
		NoColor:   noColor,
	}
}
