package database

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/seqtools/add-column/internal/table"
)

func TestSanitizeColumnName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple", "name", "name"},
		{"uppercase", "IRIDA_ID", "IRIDA_ID"},
		{"with spaces", "sample name", "sample_name"},
		{"with special chars", "Raw-forward", "Raw_forward"},
		{"starts with number", "1column", "col_1column"},
		{"empty", "", "unnamed"},
		{"only spaces", "   ", "unnamed"},
		{"mixed", "Read 1 (path)", "Read_1__path_"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SanitizeColumnName(tt.input)
			if got != tt.want {
				t.Errorf("SanitizeColumnName(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestColumnNames(t *testing.T) {
	got := ColumnNames([]string{"Raw forward", "Raw_forward", "raw_forward", "", "IRIDA_ID"})
	want := []string{"Raw_forward", "Raw_forward_2", "raw_forward_3", "unnamed", "IRIDA_ID"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ColumnNames() mismatch (-want +got):\n%s", diff)
	}
}

func TestOpenWithSubdirectory(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "nested", "samples.db")

	db, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer db.Close()

	if db.Path != dbPath {
		t.Errorf("Path = %q, want %q", db.Path, dbPath)
	}
	if _, err := os.Stat(filepath.Dir(dbPath)); os.IsNotExist(err) {
		t.Error("Expected directory to be created")
	}
}

func TestOpenEmptyPath(t *testing.T) {
	if _, err := Open(""); err == nil {
		t.Error("Open(\"\") expected error")
	}
}

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestStore(t *testing.T) {
	db := openTestDB(t)

	tbl := &table.Table{
		Header: []string{"IRIDA_ID", "Raw_forward", "order", "safe_id"},
		Records: [][]string{
			{"1081", "/r/x_S57_R1.fastq.gz", "1", "1081_S57"},
			{"1082", "/r/y_R1.fastq.gz", "2", "1082_None"},
		},
	}

	result, err := Store(db.DB, tbl, "samples", "safe_id")
	if err != nil {
		t.Fatalf("Store() error = %v", err)
	}
	if result.RowCount != 2 || result.TableName != "samples" {
		t.Errorf("Store() result = %+v", result)
	}

	columns, err := GetTableColumns(db.DB, "samples")
	if err != nil {
		t.Fatalf("GetTableColumns() error = %v", err)
	}
	if diff := cmp.Diff(tbl.Header, columns); diff != "" {
		t.Errorf("columns mismatch (-want +got):\n%s", diff)
	}

	var rawForward string
	err = db.DB.QueryRow(`SELECT Raw_forward FROM samples WHERE safe_id = ?`, "1082_None").Scan(&rawForward)
	if err != nil {
		t.Fatalf("QueryRow() error = %v", err)
	}
	if rawForward != "/r/y_R1.fastq.gz" {
		t.Errorf("Raw_forward = %q", rawForward)
	}

	var indexCount int
	err = db.DB.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='index' AND tbl_name='samples' AND name='idx_samples_safe_id'").Scan(&indexCount)
	if err != nil {
		t.Fatalf("Query index error = %v", err)
	}
	if indexCount != 1 {
		t.Errorf("Expected 1 index, got %d", indexCount)
	}
}

func TestStoreReplacesPreviousSnapshot(t *testing.T) {
	db := openTestDB(t)

	first := &table.Table{
		Header:  []string{"IRIDA_ID", "safe_id"},
		Records: [][]string{{"1", "1_S1"}, {"2", "2_S2"}, {"3", "3_S3"}},
	}
	if _, err := Store(db.DB, first, "samples", "safe_id"); err != nil {
		t.Fatalf("Store() error = %v", err)
	}

	second := &table.Table{
		Header:  []string{"IRIDA_ID", "safe_id"},
		Records: [][]string{{"9", "9_S9"}},
	}
	if _, err := Store(db.DB, second, "samples", "safe_id"); err != nil {
		t.Fatalf("second Store() error = %v", err)
	}

	var count int
	if err := db.DB.QueryRow("SELECT COUNT(*) FROM samples").Scan(&count); err != nil {
		t.Fatalf("QueryRow() error = %v", err)
	}
	if count != 1 {
		t.Errorf("Expected 1 row after replace, got %d", count)
	}
}

func TestStoreMissingIndexColumn(t *testing.T) {
	db := openTestDB(t)

	tbl := &table.Table{Header: []string{"IRIDA_ID"}, Records: [][]string{{"1"}}}
	_, err := Store(db.DB, tbl, "samples", "safe_id")

	var missing *table.MissingColumnError
	if !errors.As(err, &missing) {
		t.Fatalf("Store() error = %v, want *table.MissingColumnError", err)
	}
}

func TestInsertBatchEmpty(t *testing.T) {
	db := openTestDB(t)

	columns := []string{"id", "name"}
	if err := CreateTable(db.DB, "test", columns); err != nil {
		t.Fatalf("CreateTable() error = %v", err)
	}

	// Empty batch should not error
	if err := InsertBatch(db.DB, "test", columns, [][]string{}); err != nil {
		t.Fatalf("InsertBatch() with empty batch error = %v", err)
	}
}
