package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/tabstat/tabstat/internal/config"
	"github.com/tabstat/tabstat/internal/render"
	"github.com/tabstat/tabstat/internal/stats"
	"github.com/tabstat/tabstat/internal/table"
)

// outputWriter is used for printing results, can be overridden in tests
var outputWriter io.Writer = os.Stdout

// setOutputWriter sets the output writer (used for testing)
func setOutputWriter(w io.Writer) {
	outputWriter = w
}

// resetOutputWriter resets output to stdout (used for testing)
func resetOutputWriter() {
	outputWriter = os.Stdout
}

// loadConfig loads the config file (falling back to defaults when the
// default path does not exist), applies CLI overrides, and validates.
// format is the per-command --format value, empty when not applicable.
func loadConfig(format string) (*config.Config, error) {
	cfg, err := config.LoadOrDefault(GetConfigFile())
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	overrides := GetCLIOverrides()
	cfg.ApplyOverrides(overrides.LogLevel, overrides.LogFormat,
		overrides.Delimiter, format, overrides.Precision, overrides.NoColor)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// csvOptions converts the input config section into table loading options.
func csvOptions(cfg *config.Config) table.CSVOptions {
	opts := table.CSVOptions{
		Options: table.Options{
			NullValues:  cfg.Input.NullValues,
			DateFormats: cfg.Input.DateFormats,
			TrimSpace:   cfg.Input.TrimSpace,
		},
	}
	if cfg.Input.Delimiter != "" {
		opts.Delimiter = []rune(cfg.Input.Delimiter)[0]
	}
	if cfg.Input.Comment != "" {
		opts.Comment = []rune(cfg.Input.Comment)[0]
	}
	return opts
}

// renderOptions converts the output config section into render options.
func renderOptions(cfg *config.Config) render.Options {
	return render.Options{
		Precision:    cfg.Output.Precision,
		Color:        cfg.Output.Color,
		MaxCellWidth: cfg.Output.MaxCellWidth,
	}
}

// statsOptions converts the stats config section into describe options.
func statsOptions(cfg *config.Config) stats.Options {
	return stats.Options{
		Percentiles: cfg.Stats.Percentiles,
	}
}
