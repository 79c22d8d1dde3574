package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	// Create a temporary config file
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "test.yaml")

	configContent := `
input:
  delimiter: ";"
  comment: "#"
  trim_space: false
  null_values: ["-", "missing"]

stats:
  percentiles: [0.1, 0.5, 0.9]

output:
  format: csv
  precision: 3
  color: false
  max_cell_width: 40

database:
  host: localhost
  port: 3306
  user: testuser
  password: testpass
  database: testdb
  tls: disable
  max_connections: 5
  max_idle_connections: 2

logging:
  level: debug
  format: text
  output: stdout
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Input.Delimiter != ";" {
		t.Errorf("expected delimiter ';', got %q", cfg.Input.Delimiter)
	}
	if cfg.Input.Comment != "#" {
		t.Errorf("expected comment '#', got %q", cfg.Input.Comment)
	}
	if cfg.Input.TrimSpace {
		t.Errorf("expected trim_space false")
	}
	if len(cfg.Input.NullValues) != 2 || cfg.Input.NullValues[0] != "-" {
		t.Errorf("unexpected null_values: %v", cfg.Input.NullValues)
	}

	if len(cfg.Stats.Percentiles) != 3 || cfg.Stats.Percentiles[0] != 0.1 {
		t.Errorf("unexpected percentiles: %v", cfg.Stats.Percentiles)
	}

	if cfg.Output.Format != "csv" {
		t.Errorf("expected format csv, got %s", cfg.Output.Format)
	}
	if cfg.Output.Precision != 3 {
		t.Errorf("expected precision 3, got %d", cfg.Output.Precision)
	}
	if cfg.Output.MaxCellWidth != 40 {
		t.Errorf("expected max_cell_width 40, got %d", cfg.Output.MaxCellWidth)
	}

	if cfg.Database.Host != "localhost" {
		t.Errorf("expected database host localhost, got %s", cfg.Database.Host)
	}
	if cfg.Database.MaxConnections != 5 {
		t.Errorf("expected max_connections 5, got %d", cfg.Database.MaxConnections)
	}

	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level debug, got %s", cfg.Logging.Level)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatalf("expected error for missing config file")
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "partial.yaml")

	if err := os.WriteFile(configPath, []byte("output:\n  precision: 2\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Output.Precision != 2 {
		t.Errorf("expected precision 2, got %d", cfg.Output.Precision)
	}
	if cfg.Input.Delimiter != "," {
		t.Errorf("unset sections should keep defaults, got delimiter %q", cfg.Input.Delimiter)
	}
}

func TestLoadOrDefault(t *testing.T) {
	t.Run("missing file falls back to defaults", func(t *testing.T) {
		cfg, err := LoadOrDefault(filepath.Join(t.TempDir(), "absent.yaml"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Input.Delimiter != "," {
			t.Errorf("expected default config, got delimiter %q", cfg.Input.Delimiter)
		}
	})

	t.Run("existing file is loaded", func(t *testing.T) {
		configPath := filepath.Join(t.TempDir(), "present.yaml")
		if err := os.WriteFile(configPath, []byte("input:\n  delimiter: \"|\"\n"), 0644); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		cfg, err := LoadOrDefault(configPath)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Input.Delimiter != "|" {
			t.Errorf("expected delimiter '|', got %q", cfg.Input.Delimiter)
		}
	})

	t.Run("malformed file is an error", func(t *testing.T) {
		configPath := filepath.Join(t.TempDir(), "broken.yaml")
		if err := os.WriteFile(configPath, []byte("input: [unclosed"), 0644); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		if _, err := LoadOrDefault(configPath); err == nil {
			t.Fatalf("expected error for malformed config file")
		}
	})
}

func TestEnvVarSubstitution(t *testing.T) {
	t.Setenv("TABSTAT_TEST_PASSWORD", "s3cret")

	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "env.yaml")

	configContent := `
database:
  host: db.example.com
  user: app
  password: ${TABSTAT_TEST_PASSWORD}
  database: metrics
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Database.Password != "s3cret" {
		t.Errorf("expected substituted password, got %q", cfg.Database.Password)
	}
}

func TestEnvVarSubstitution_UnsetKeepsLiteral(t *testing.T) {
	got := expandEnvVar("${TABSTAT_DEFINITELY_UNSET_VAR}")
	if got != "${TABSTAT_DEFINITELY_UNSET_VAR}" {
		t.Errorf("unset variable should keep literal text, got %q", got)
	}
}
