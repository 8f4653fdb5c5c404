// Package cli provides the command-line interface for add-column.
package cli

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/seqtools/add-column/internal/augment"
	"github.com/seqtools/add-column/internal/config"
	"github.com/seqtools/add-column/internal/database"
	"github.com/seqtools/add-column/internal/exporter"
	"github.com/seqtools/add-column/internal/importer"
	"github.com/seqtools/add-column/internal/marker"
	"github.com/seqtools/add-column/internal/table"
)

// Version information, set from main.
var (
	Version   = "dev"
	BuildTime = "unknown"
)

var (
	// Colors for output
	successColor = color.New(color.FgGreen, color.Bold)
	errorColor   = color.New(color.FgRed, color.Bold)
	infoColor    = color.New(color.FgCyan)
	warnColor    = color.New(color.FgYellow)
)

// UsageError reports a command line that does not match the usage line.
type UsageError struct {
	Err error
}

func (e *UsageError) Error() string {
	return e.Err.Error()
}

func (e *UsageError) Unwrap() error {
	return e.Err
}

func newRootCmd(stderr io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add-column [flags] <original_tsv> <new_tsv>",
		Short: "Add a safe_id column to an IRIDA sample sheet",
		Long: `add-column - derive sample identifiers for sequencing runs

Reads a tab-separated sample sheet and appends a safe_id column built from
the IRIDA_ID column and the S<number> sample marker found in the file name
of the Raw_forward read, e.g. IRIDA_ID 1081 and
/runs/PID-0760-108s_S57_L001_R1_001.fastq.gz give 1081_S57.

Rows whose read file name has no marker get <IRIDA_ID>_None unless
--strict is set. The output is written atomically: on any error no output
file is left behind.`,
		Example: `  # Add safe_id to a sample sheet
  add-column samples.tsv samples.safe.tsv

  # Fail instead of writing <id>_None for unmarked reads
  add-column --strict samples.tsv samples.safe.tsv

  # Also keep a queryable SQLite copy
  add-column --db run.db --table run_230101 samples.tsv samples.safe.tsv`,
		Version:       fmt.Sprintf("%s (built %s)", Version, BuildTime),
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return &UsageError{Err: fmt.Errorf("expected 2 arguments, got %d", len(args))}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCommand(cmd, args, stderr)
		},
	}

	cmd.Flags().String("id-column", augment.DefaultIDColumn, "Column holding the sample identifier")
	cmd.Flags().String("path-column", augment.DefaultPathColumn, "Column holding the forward read path")
	cmd.Flags().String("column", augment.DefaultColumn, "Name of the derived column")
	cmd.Flags().String("delimiter", "tab", "Field delimiter: 'tab', 'comma', or 'auto' (by input extension)")
	cmd.Flags().Bool("strict", false, "Fail when a read file name has no S<number> marker")
	cmd.Flags().StringP("db", "d", "", "Also store the augmented table in this SQLite database")
	cmd.Flags().StringP("table", "t", config.DefaultTableName, "Table name for --db")
	cmd.Flags().BoolP("verbose", "v", false, "Print progress to stderr")
	cmd.Flags().Bool("debug", false, "Print debug logs to stderr")

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &UsageError{Err: err}
	})

	return cmd
}

// Main runs the command with args and returns the process exit code.
// Usage errors print the usage line to stdout; other errors print a
// single diagnostic line to stderr.
func Main(args []string, stdout, stderr io.Writer) int {
	if args == nil {
		// cobra falls back to os.Args for a nil slice
		args = []string{}
	}

	cmd := newRootCmd(stderr)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.Execute()
	if err == nil {
		return 0
	}

	var usageErr *UsageError
	if errors.As(err, &usageErr) {
		_, _ = errorColor.Fprintf(stderr, "Error: %v\n", usageErr)
		fmt.Fprintf(stdout, "Usage: %s\n", cmd.UseLine())
		return 1
	}

	_, _ = errorColor.Fprintf(stderr, "Error: %v\n", err)
	return 1
}

func runCommand(cmd *cobra.Command, args []string, stderr io.Writer) error {
	cfg := &config.Config{
		InputFile:  args[0],
		OutputFile: args[1],
	}

	// Get flags
	cfg.IDColumn, _ = cmd.Flags().GetString("id-column")
	cfg.PathColumn, _ = cmd.Flags().GetString("path-column")
	cfg.Column, _ = cmd.Flags().GetString("column")
	cfg.Strict, _ = cmd.Flags().GetBool("strict")
	cfg.DBPath, _ = cmd.Flags().GetString("db")
	cfg.TableName, _ = cmd.Flags().GetString("table")
	cfg.Verbose, _ = cmd.Flags().GetBool("verbose")
	cfg.Debug, _ = cmd.Flags().GetBool("debug")
	delimiterStr, _ := cmd.Flags().GetString("delimiter")

	// Parse delimiter
	delimiter, err := config.ParseDelimiter(delimiterStr)
	if err != nil {
		return &UsageError{Err: err}
	}
	cfg.Delimiter = delimiter

	// Validate inputs
	if err := cfg.Validate(); err != nil {
		return &UsageError{Err: err}
	}

	return run(cfg, newLogger(stderr, cfg.Debug), newReporter(stderr, cfg.Verbose))
}

func newLogger(w io.Writer, debug bool) zerolog.Logger {
	level := zerolog.Disabled
	if debug {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly}).
		Level(level).
		With().Timestamp().Logger()
}

func run(cfg *config.Config, log zerolog.Logger, rep *reporter) error {
	start := time.Now()

	delimiter := cfg.Delimiter
	if delimiter == 0 {
		delimiter = importer.DetectDelimiter(cfg.InputFile)
	}
	log.Debug().Str("input", cfg.InputFile).Str("delimiter", string(delimiter)).Msg("reading table")

	rep.info("Reading %s", cfg.InputFile)
	t, err := importer.Read(cfg.InputFile, delimiter)
	if err != nil {
		return err
	}
	rep.info("  Read %s rows, %d columns", fmtNum(int64(t.Len())), len(t.Header))

	opts := augment.Options{
		IDColumn:   cfg.IDColumn,
		PathColumn: cfg.PathColumn,
		Column:     cfg.Column,
		Strict:     cfg.Strict,
	}
	result, err := augment.Apply(t, opts, log)
	if err != nil {
		return fmt.Errorf("%s: %w", cfg.InputFile, err)
	}
	if result.NoMarker > 0 {
		rep.warn("Warning: %d row(s) have no S<number> marker in %s (first: record %d); %s set to <%s>%s%s",
			result.NoMarker, cfg.PathColumn, result.FirstMiss, cfg.Column, cfg.IDColumn, marker.Separator, marker.NoMarker)
	}
	if !result.Appended {
		rep.info("  Replaced existing column '%s'", cfg.Column)
	}

	if _, err := exporter.Write(t, cfg.OutputFile, delimiter); err != nil {
		return err
	}
	rep.success("✓ Wrote %s rows to %s", fmtNum(int64(t.Len())), shortPath(cfg.OutputFile))

	if cfg.DBPath != "" {
		if err := snapshot(cfg, t, log, rep); err != nil {
			return err
		}
	}

	log.Debug().Dur("elapsed", time.Since(start)).Msg("done")
	return nil
}

// snapshot stores the augmented table in SQLite, indexed on the derived column.
func snapshot(cfg *config.Config, t *table.Table, log zerolog.Logger, rep *reporter) error {
	db, err := database.Open(cfg.DBPath)
	if err != nil {
		return err
	}
	defer db.Close()

	rep.info("Storing snapshot in %s", db.Path)
	result, err := database.Store(db.DB, t, cfg.TableName, cfg.Column)
	if err != nil {
		return fmt.Errorf("failed to store snapshot in %s: %w", cfg.DBPath, err)
	}

	columns, err := database.GetTableColumns(db.DB, result.TableName)
	if err != nil {
		return fmt.Errorf("failed to verify snapshot in %s: %w", cfg.DBPath, err)
	}
	if len(columns) != len(t.Header) {
		return fmt.Errorf("snapshot table '%s' has %d columns, want %d", result.TableName, len(columns), len(t.Header))
	}
	log.Debug().Str("table", result.TableName).Strs("columns", columns).Msg("stored snapshot")
	rep.success("✓ Stored %s rows in table '%s'", fmtNum(int64(result.RowCount)), result.TableName)
	return nil
}
