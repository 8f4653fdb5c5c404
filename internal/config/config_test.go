package config

import (
	"testing"
)

func TestParseDelimiter(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    rune
		wantErr bool
	}{
		{"comma lowercase", "comma", ',', false},
		{"comma uppercase", "COMMA", ',', false},
		{"csv", "csv", ',', false},
		{"tab lowercase", "tab", '\t', false},
		{"tab uppercase", "TAB", '\t', false},
		{"tsv", "tsv", '\t', false},
		{"auto lowercase", "auto", 0, false},
		{"auto uppercase", "AUTO", 0, false},
		{"invalid", "semicolon", 0, true},
		{"empty", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDelimiter(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseDelimiter(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
				return
			}
			if got != tt.want {
				t.Errorf("ParseDelimiter(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func validConfig() Config {
	return Config{
		InputFile:  "in.tsv",
		OutputFile: "out.tsv",
		Delimiter:  '\t',
		IDColumn:   "IRIDA_ID",
		PathColumn: "Raw_forward",
		Column:     "safe_id",
		TableName:  DefaultTableName,
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"valid defaults", func(c *Config) {}, false},
		{"valid with db", func(c *Config) { c.DBPath = "samples.db" }, false},
		{"same input and output", func(c *Config) { c.OutputFile = c.InputFile }, false},
		{"missing input", func(c *Config) { c.InputFile = "" }, true},
		{"missing output", func(c *Config) { c.OutputFile = "" }, true},
		{"empty id column", func(c *Config) { c.IDColumn = "" }, true},
		{"empty derived column", func(c *Config) { c.Column = "" }, true},
		{"derived overwrites id", func(c *Config) { c.Column = "IRIDA_ID" }, true},
		{"derived overwrites path", func(c *Config) { c.Column = "Raw_forward" }, true},
		{"db without table", func(c *Config) { c.DBPath = "x.db"; c.TableName = "" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Config.Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
