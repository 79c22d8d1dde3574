package config

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	var msgs []string
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return fmt.Sprintf("validation failed:\n  - %s", strings.Join(msgs, "\n  - "))
}

// Validate checks the configuration for required fields and valid values.
func (c *Config) Validate() error {
	var errors ValidationErrors

	if err := c.validateInput(); err != nil {
		errors = append(errors, err...)
	}
	if err := c.validateStats(); err != nil {
		errors = append(errors, err...)
	}
	if err := c.validateOutput(); err != nil {
		errors = append(errors, err...)
	}
	// The database section is optional; it is validated only when a host
	// is configured, since file-based commands never touch it.
	if c.Database.Host != "" {
		if err := c.validateDatabase(); err != nil {
			errors = append(errors, err...)
		}
	}
	if err := c.validateLogging(); err != nil {
		errors = append(errors, err...)
	}

	if len(errors) > 0 {
		return errors
	}
	return nil
}

func (c *Config) validateInput() ValidationErrors {
	var errors ValidationErrors

	if utf8.RuneCountInString(c.Input.Delimiter) != 1 {
		errors = append(errors, ValidationError{
			Field:   "input.delimiter",
			Message: "delimiter must be a single character",
		})
	}

	if c.Input.Comment != "" && utf8.RuneCountInString(c.Input.Comment) != 1 {
		errors = append(errors, ValidationError{
			Field:   "input.comment",
			Message: "comment must be a single character",
		})
	}

	return errors
}

func (c *Config) validateStats() ValidationErrors {
	var errors ValidationErrors

	prev := 0.0
	for i, p := range c.Stats.Percentiles {
		field := fmt.Sprintf("stats.percentiles[%d]", i)
		if p <= 0 || p >= 1 {
			errors = append(errors, ValidationError{
				Field:   field,
				Message: "percentile must be between 0 and 1 exclusive",
			})
			continue
		}
		if p <= prev {
			errors = append(errors, ValidationError{
				Field:   field,
				Message: "percentiles must be strictly ascending",
			})
		}
		prev = p
	}

	return errors
}

func (c *Config) validateOutput() ValidationErrors {
	var errors ValidationErrors

	validFormats := map[string]bool{"table": true, "csv": true, "json": true, "": true}
	if !validFormats[c.Output.Format] {
		errors = append(errors, ValidationError{
			Field:   "output.format",
			Message: "format must be 'table', 'csv', or 'json'",
		})
	}

	if c.Output.Precision < 0 || c.Output.Precision > 15 {
		errors = append(errors, ValidationError{
			Field:   "output.precision",
			Message: "precision must be between 0 and 15",
		})
	}

	if c.Output.MaxCellWidth < 0 {
		errors = append(errors, ValidationError{
			Field:   "output.max_cell_width",
			Message: "max_cell_width cannot be negative",
		})
	}

	return errors
}

func (c *Config) validateDatabase() ValidationErrors {
	var errors ValidationErrors

	if c.Database.Port <= 0 || c.Database.Port > 65535 {
		errors = append(errors, ValidationError{
			Field:   "database.port",
			Message: "port must be between 1 and 65535",
		})
	}

	if c.Database.User == "" {
		errors = append(errors, ValidationError{
			Field:   "database.user",
			Message: "user is required",
		})
	}

	validTLS := map[string]bool{"disable": true, "preferred": true, "required": true, "": true}
	if !validTLS[c.Database.TLS] {
		errors = append(errors, ValidationError{
			Field:   "database.tls",
			Message: "tls must be 'disable', 'preferred', or 'required'",
		})
	}

	if c.Database.MaxConnections < 0 {
		errors = append(errors, ValidationError{
			Field:   "database.max_connections",
			Message: "max_connections cannot be negative",
		})
	}

	if c.Database.MaxIdleConnections < 0 {
		errors = append(errors, ValidationError{
			Field:   "database.max_idle_connections",
			Message: "max_idle_connections cannot be negative",
		})
	}

	return errors
}

func (c *Config) validateLogging() ValidationErrors {
	var errors ValidationErrors

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true, "": true}
	if !validLevels[c.Logging.Level] {
		errors = append(errors, ValidationError{
			Field:   "logging.level",
			Message: "level must be 'debug', 'info', 'warn', or 'error'",
		})
	}

	validFormats := map[string]bool{"json": true, "text": true, "": true}
	if !validFormats[c.Logging.Format] {
		errors = append(errors, ValidationError{
			Field:   "logging.format",
			Message: "format must be 'json' or 'text'",
		})
	}

	return errors
}
