// Package database opens the SQL handle behind the repository store. SQLite
// (modernc.org/sqlite) is the default driver; Postgres is reached through the
// pgx database/sql driver. Queries are written with '?' placeholders and
// rebound per driver.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	// Registers the "pgx" database/sql driver.
	_ "github.com/jackc/pgx/v5/stdlib"
	// Registers the "sqlite" database/sql driver.
	_ "modernc.org/sqlite"
)

// Driver selects the SQL backend.
type Driver string

const (
	DriverSQLite   Driver = "sqlite"
	DriverPostgres Driver = "postgres"
)

// IsValid returns true if the driver is supported.
func (d Driver) IsValid() bool {
	return d == DriverSQLite || d == DriverPostgres
}

// sqlName is the name the driver registers with database/sql.
func (d Driver) sqlName() string {
	if d == DriverPostgres {
		return "pgx"
	}
	return "sqlite"
}

// Rebind rewrites '?' placeholders into the driver's native form.
// Placeholders inside quoted literals are not expected and not handled.
func (d Driver) Rebind(query string) string {
	if d != DriverPostgres || !strings.Contains(query, "?") {
		return query
	}

	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// DB pairs a handle with the driver it was opened with.
type DB struct {
	*sql.DB
	Driver Driver
}

// Rebind rewrites query for db's driver.
func (db *DB) Rebind(query string) string {
	return db.Driver.Rebind(query)
}

// Open opens and pings a database. For SQLite, dsn is a file path; WAL mode,
// foreign keys and a busy timeout are always enabled.
func Open(ctx context.Context, driver Driver, dsn string) (*DB, error) {
	if !driver.IsValid() {
		return nil, fmt.Errorf("unsupported storage driver %q", driver)
	}
	if strings.TrimSpace(dsn) == "" {
		return nil, fmt.Errorf("storage dsn is required")
	}

	source := dsn
	if driver == DriverSQLite {
		source = filepath.Clean(dsn) +
			"?_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"
	}

	sqlDB, err := sql.Open(driver.sqlName(), source)
	if err != nil {
		return nil, fmt.Errorf("open %s db: %w", driver, err)
	}
	if driver == DriverSQLite {
		// One writer at a time keeps SQLite from returning SQLITE_BUSY under load.
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxOpenConns(20)
		sqlDB.SetConnMaxIdleTime(5 * time.Minute)
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping %s db: %w", driver, err)
	}

	return &DB{DB: sqlDB, Driver: driver}, nil
}
