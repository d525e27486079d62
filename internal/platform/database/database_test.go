package database

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/jackc/pgx/v5/pgconn"
)

func openTempDB(t *testing.T) *DB {
	t.Helper()

	db, err := Open(context.Background(), DriverSQLite, filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func countRows(t *testing.T, db *DB, query string) int64 {
	t.Helper()
	var n int64
	if err := db.QueryRowContext(context.Background(), query).Scan(&n); err != nil {
		t.Fatalf("query %q: %v", query, err)
	}
	return n
}

func TestOpen_Rejects(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		driver Driver
		dsn    string
	}{
		{"unknown driver", Driver("mysql"), "x"},
		{"empty dsn", DriverSQLite, "  "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if _, err := Open(context.Background(), tt.driver, tt.dsn); err == nil {
				t.Errorf("Open(%q, %q) error = nil, want error", tt.driver, tt.dsn)
			}
		})
	}
}

func TestDriver_Rebind(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		driver Driver
		query  string
		want   string
	}{
		{"sqlite untouched", DriverSQLite, "SELECT * FROM t WHERE a = ? AND b = ?", "SELECT * FROM t WHERE a = ? AND b = ?"},
		{"postgres numbered", DriverPostgres, "SELECT * FROM t WHERE a = ? AND b = ?", "SELECT * FROM t WHERE a = $1 AND b = $2"},
		{"postgres without placeholders", DriverPostgres, "SELECT 1", "SELECT 1"},
		{"postgres ten args", DriverPostgres, "(?,?,?,?,?,?,?,?,?,?)", "($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.driver.Rebind(tt.query); got != tt.want {
				t.Errorf("Rebind() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMigrate_RecordsAndSkipsApplied(t *testing.T) {
	t.Parallel()
	db := openTempDB(t)

	migrations := fstest.MapFS{
		"sql/001_items.sql": &fstest.MapFile{
			Data: []byte("-- +migrate Up\nCREATE TABLE items (id BIGINT PRIMARY KEY);\nCREATE INDEX idx_items ON items (id);\n-- +migrate Down\nDROP TABLE items;"),
		},
		"sql/002_tags.sql": &fstest.MapFile{
			Data: []byte("CREATE TABLE tags (name TEXT PRIMARY KEY);"),
		},
		"sql/README.md": &fstest.MapFile{Data: []byte("ignored")},
	}

	for range 2 {
		if err := db.Migrate(context.Background(), migrations, "sql"); err != nil {
			t.Fatalf("Migrate() error = %v", err)
		}
	}

	if n := countRows(t, db, "SELECT COUNT(*) FROM schema_migrations"); n != 2 {
		t.Errorf("schema_migrations rows = %d, want 2", n)
	}
	if n := countRows(t, db, "SELECT COUNT(*) FROM items"); n != 0 {
		t.Errorf("items rows = %d, want 0", n)
	}
}

func TestMigrate_FailedMigrationIsNotRecorded(t *testing.T) {
	t.Parallel()
	db := openTempDB(t)

	bad := fstest.MapFS{
		"001_bad.sql": &fstest.MapFile{Data: []byte("CREAT TABLE broken (id INT);")},
	}
	if err := db.Migrate(context.Background(), bad, ""); err == nil {
		t.Fatal("Migrate() error = nil, want error for invalid SQL")
	}
	if n := countRows(t, db, "SELECT COUNT(*) FROM schema_migrations"); n != 0 {
		t.Errorf("schema_migrations rows = %d, want 0", n)
	}
}

func TestExtractUpMigration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"no markers", "CREATE TABLE a (id INT);", "CREATE TABLE a (id INT);"},
		{"up only", "-- +migrate Up\nCREATE TABLE a (id INT);", "\nCREATE TABLE a (id INT);"},
		{"up and down", "-- +migrate Up\nUP;\n-- +migrate Down\nDOWN;", "\nUP;\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := ExtractUpMigration(tt.content); got != tt.want {
				t.Errorf("ExtractUpMigration() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIsUniqueViolation(t *testing.T) {
	t.Parallel()

	db := openTempDB(t)
	ctx := context.Background()
	if _, err := db.ExecContext(ctx, "CREATE TABLE u (k TEXT PRIMARY KEY, v TEXT UNIQUE, n INT CHECK (n > 0))"); err != nil {
		t.Fatalf("create table: %v", err)
	}
	if _, err := db.ExecContext(ctx, "INSERT INTO u (k, v, n) VALUES ('a', 'x', 1)"); err != nil {
		t.Fatalf("seed: %v", err)
	}
	_, dupKey := db.ExecContext(ctx, "INSERT INTO u (k, v, n) VALUES ('a', 'y', 1)")
	_, dupValue := db.ExecContext(ctx, "INSERT INTO u (k, v, n) VALUES ('b', 'x', 1)")
	_, check := db.ExecContext(ctx, "INSERT INTO u (k, v, n) VALUES ('c', 'z', 0)")

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"sqlite primary key", dupKey, true},
		{"sqlite unique", dupValue, true},
		{"sqlite check", check, false},
		{"postgres unique", &pgconn.PgError{Code: "23505"}, true},
		{"postgres wrapped unique", fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"}), true},
		{"postgres foreign key", &pgconn.PgError{Code: "23503"}, false},
		{"plain error", errors.New("boom"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := IsUniqueViolation(tt.err); got != tt.want {
				t.Errorf("IsUniqueViolation(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}
