// Package config provides configuration structures and loading for tabstat.
package config

// Config represents the complete application configuration.
type Config struct {
	Input    InputConfig    `yaml:"input" mapstructure:"input"`
	Stats    StatsConfig    `yaml:"stats" mapstructure:"stats"`
	Output   OutputConfig   `yaml:"output" mapstructure:"output"`
	Database DatabaseConfig `yaml:"database" mapstructure:"database"`
	Logging  LoggingConfig  `yaml:"logging" mapstructure:"logging"`
}

// InputConfig controls how delimited input files are read and typed.
type InputConfig struct {
	Delimiter   string   `yaml:"delimiter" mapstructure:"delimiter"` // single character, default ","
	Comment     string   `yaml:"comment" mapstructure:"comment"`     // single character, empty disables
	TrimSpace   bool     `yaml:"trim_space" mapstructure:"trim_space"`
	NullValues  []string `yaml:"null_values" mapstructure:"null_values"`
	DateFormats []string `yaml:"date_formats" mapstructure:"date_formats"` // Go reference layouts
}

// StatsConfig controls which statistics are computed.
type StatsConfig struct {
	Percentiles []float64 `yaml:"percentiles" mapstructure:"percentiles"` // each in (0, 1), ascending
}

// OutputConfig controls result formatting.
type OutputConfig struct {
	Format       string `yaml:"format" mapstructure:"format"` // table, csv, or json
	Precision    int    `yaml:"precision" mapstructure:"precision"`
	Color        bool   `yaml:"color" mapstructure:"color"`
	MaxCellWidth int    `yaml:"max_cell_width" mapstructure:"max_cell_width"` // 0 disables truncation
}

// DatabaseConfig represents the MySQL connection used by the query command.
type DatabaseConfig struct {
	Host               string `yaml:"host" mapstructure:"host"`
	Port               int    `yaml:"port" mapstructure:"port"`
	User               string `yaml:"user" mapstructure:"user"`
	Password           string `yaml:"password" mapstructure:"password"`
	Database           string `yaml:"database" mapstructure:"database"`
	TLS                string `yaml:"tls" mapstructure:"tls"` // disable, preferred, required
	MaxConnections     int    `yaml:"max_connections" mapstructure:"max_connections"`
	MaxIdleConnections int    `yaml:"max_idle_connections" mapstructure:"max_idle_connections"`
}

// LoggingConfig represents logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`   // debug, info, warn, error
	Format string `yaml:"format" mapstructure:"format"` // json or text
	Output string `yaml:"output" mapstructure:"output"` // stdout, stderr, or file path
}

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() *Config {
	return &Config{
		Input: InputConfig{
			Delimiter:   ",",
			TrimSpace:   true,
			NullValues:  []string{"NA", "N/A", "NaN", "null", "NULL"},
			DateFormats: []string{"2006-01-02", "2006-01-02 15:04:05"},
		},
		Stats: StatsConfig{
			Percentiles: []float64{0.25, 0.5, 0.75},
		},
		Output: OutputConfig{
			Format:    "table",
			Precision: 6,
			Color:     true,
		},
		Database: DatabaseConfig{
			Port:               3306,
			TLS:                "preferred",
			MaxConnections:     10,
			MaxIdleConnections: 5,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
			Output: "stderr",
		},
	}
}

// ApplyOverrides applies CLI flag overrides to the configuration.
// Only non-zero/non-empty values are applied; noColor always wins over
// the config file when set.
func (c *Config) ApplyOverrides(logLevel, logFormat, delimiter, format string, precision int, noColor bool) {
	if logLevel != "" {
		c.Logging.Level = logLevel
	}
	if logFormat != "" {
		c.Logging.Format = logFormat
	}
	if delimiter != "" {
		c.Input.Delimiter = delimiter
	}
	if format != "" {
		c.Output.Format = format
	}
	if precision > 0 {
		c.Output.Precision = precision
	}
	if noColor {
		c.Output.Color = false
	}
}
