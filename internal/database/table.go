package database

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/seqtools/add-column/internal/table"
)

const (
	// BatchSize is the number of rows to insert in a single transaction.
	BatchSize = 10000
)

// Result contains the result of a snapshot.
type Result struct {
	TableName string
	RowCount  int
}

// Store replaces tableName with the contents of t and indexes indexColumn.
// indexColumn is a header name of t; it is skipped when empty.
func Store(db *sql.DB, t *table.Table, tableName, indexColumn string) (*Result, error) {
	tableName = SanitizeColumnName(tableName)
	columns := ColumnNames(t.Header)

	if err := CreateTable(db, tableName, columns); err != nil {
		return nil, err
	}

	for i := 0; i < t.Len(); i += BatchSize {
		end := i + BatchSize
		if end > t.Len() {
			end = t.Len()
		}
		if err := InsertBatch(db, tableName, columns, t.Records[i:end]); err != nil {
			return nil, fmt.Errorf("failed to insert batch: %w", err)
		}
	}

	if indexColumn != "" {
		col := t.ColumnIndex(indexColumn)
		if col < 0 {
			return nil, &table.MissingColumnError{Columns: []string{indexColumn}}
		}
		if err := CreateIndex(db, tableName, columns[col]); err != nil {
			return nil, err
		}
	}

	return &Result{TableName: tableName, RowCount: t.Len()}, nil
}

// CreateTable creates a new table with the given name and sanitized columns.
// All columns are created as TEXT type.
// Drops the table first if it already exists.
func CreateTable(db *sql.DB, tableName string, columns []string) error {
	dropSQL := fmt.Sprintf("DROP TABLE IF EXISTS %s", quote(tableName))
	if _, err := db.Exec(dropSQL); err != nil {
		return fmt.Errorf("failed to drop table: %w", err)
	}

	defs := make([]string, len(columns))
	for i, c := range columns {
		defs[i] = fmt.Sprintf("%s TEXT", quote(c))
	}

	createSQL := fmt.Sprintf("CREATE TABLE %s (%s)", quote(tableName), strings.Join(defs, ", "))
	if _, err := db.Exec(createSQL); err != nil {
		return fmt.Errorf("failed to create table: %w", err)
	}

	return nil
}

// InsertBatch inserts a batch of rows into the specified table within a transaction.
func InsertBatch(db *sql.DB, tableName string, columns []string, batch [][]string) error {
	if len(batch) == 0 {
		return nil
	}

	placeholders := make([]string, len(columns))
	for i := range placeholders {
		placeholders[i] = "?"
	}

	quoted := make([]string, len(columns))
	for i, c := range columns {
		quoted[i] = quote(c)
	}

	insertSQL := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		quote(tableName),
		strings.Join(quoted, ", "),
		strings.Join(placeholders, ", "))

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(insertSQL)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	values := make([]interface{}, len(columns))
	for _, row := range batch {
		for i := range columns {
			values[i] = row[i]
		}
		if _, err := stmt.Exec(values...); err != nil {
			return fmt.Errorf("failed to insert row: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// GetTableColumns returns the column names for a table.
func GetTableColumns(db *sql.DB, tableName string) ([]string, error) {
	rows, err := db.Query(fmt.Sprintf("PRAGMA table_info(%s)", quote(tableName)))
	if err != nil {
		return nil, fmt.Errorf("failed to get table info: %w", err)
	}
	defer rows.Close()

	var columns []string
	for rows.Next() {
		var cid int
		var name, ctype string
		var notnull, pk int
		var dfltValue interface{}
		if err := rows.Scan(&cid, &name, &ctype, &notnull, &dfltValue, &pk); err != nil {
			return nil, fmt.Errorf("failed to scan column info: %w", err)
		}
		columns = append(columns, name)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error reading columns: %w", err)
	}

	return columns, nil
}

// CreateIndex creates an index on a sanitized column of tableName.
func CreateIndex(db *sql.DB, tableName, column string) error {
	indexName := fmt.Sprintf("idx_%s_%s", tableName, column)

	createSQL := fmt.Sprintf("CREATE INDEX IF NOT EXISTS %s ON %s (%s)", quote(indexName), quote(tableName), quote(column))
	if _, err := db.Exec(createSQL); err != nil {
		return fmt.Errorf("failed to create index on %s.%s: %w", tableName, column, err)
	}

	return nil
}

// quote wraps a sanitized identifier so SQL keywords such as "order" are usable as names.
func quote(name string) string {
	return `"` + name + `"`
}
