// Package config provides configuration types and parsing for add-column.
package config

import (
	"fmt"
	"strings"
)

// DefaultTableName is the SQLite table used when --table is not given.
const DefaultTableName = "samples"

// Config holds all configuration options for add-column.
type Config struct {
	InputFile  string
	OutputFile string
	Delimiter  rune // 0 selects by input file extension

	IDColumn   string
	PathColumn string
	Column     string
	Strict     bool

	DBPath    string // optional SQLite snapshot
	TableName string

	Verbose bool
	Debug   bool
}

// ParseDelimiter converts a delimiter string to a rune.
// Valid values: "comma", "csv", "tab", "tsv", "auto".
// Returns 0 for auto-detection.
func ParseDelimiter(delimiterStr string) (rune, error) {
	switch strings.ToLower(delimiterStr) {
	case "comma", "csv":
		return ',', nil
	case "tab", "tsv":
		return '\t', nil
	case "auto":
		return 0, nil
	default:
		return 0, fmt.Errorf("invalid delimiter: %s (use 'tab', 'comma', or 'auto')", delimiterStr)
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.InputFile == "" || c.OutputFile == "" {
		return fmt.Errorf("input and output paths must not be empty")
	}
	if c.IDColumn == "" || c.PathColumn == "" || c.Column == "" {
		return fmt.Errorf("column names must not be empty")
	}
	if c.Column == c.IDColumn || c.Column == c.PathColumn {
		return fmt.Errorf("derived column %q would overwrite a source column", c.Column)
	}
	if c.DBPath != "" && c.TableName == "" {
		return fmt.Errorf("--table must not be empty when --db is set")
	}
	return nil
}
