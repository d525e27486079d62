// Package sqlstore implements the repository ports on database/sql. The same
// queries run against SQLite and Postgres; ids are issued by the application
// rather than the database so inserts need no dialect-specific RETURNING.
package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/jsamuelsen11/project-service/internal/adapters/storage/sqlstore/migrations"
	"github.com/jsamuelsen11/project-service/internal/platform/database"
	"github.com/jsamuelsen11/project-service/internal/ports"
)

// Compile-time check that Store implements ports.HealthChecker.
var _ ports.HealthChecker = (*Store)(nil)

// IDGenerator issues unique positive ids for new rows.
type IDGenerator interface {
	NextID() (int64, error)
}

// Store owns the database handle shared by the repositories.
type Store struct {
	db  *database.DB
	ids IDGenerator
}

// New wraps an open, migrated database.
func New(db *database.DB, ids IDGenerator) *Store {
	return &Store{db: db, ids: ids}
}

// Open opens the database, applies the embedded migrations and returns a Store.
func Open(ctx context.Context, driver database.Driver, dsn string, ids IDGenerator) (*Store, error) {
	if ids == nil {
		return nil, fmt.Errorf("id generator is required")
	}

	db, err := database.Open(ctx, driver, dsn)
	if err != nil {
		return nil, err
	}
	if err := db.Migrate(ctx, migrations.FS, "."); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return New(db, ids), nil
}

// Close closes the database handle.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Name implements ports.HealthChecker.
func (s *Store) Name() string {
	return "database"
}

// HealthCheck pings the database.
func (s *Store) HealthCheck(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return fmt.Errorf("ping %s: %w", s.db.Driver, err)
	}
	return nil
}

// Projects returns the project repository.
func (s *Store) Projects() *ProjectRepository {
	return &ProjectRepository{store: s}
}

// Vacancies returns the vacancy repository.
func (s *Store) Vacancies() *VacancyRepository {
	return &VacancyRepository{store: s}
}

// Invitations returns the invitation repository.
func (s *Store) Invitations() *InvitationRepository {
	return &InvitationRepository{store: s}
}

func (s *Store) nextID() (int64, error) {
	id, err := s.ids.NextID()
	if err != nil {
		return 0, fmt.Errorf("allocating id: %w", err)
	}
	return id, nil
}

// withTx runs fn in a transaction, committing when fn returns nil.
func (s *Store) withTx(ctx context.Context, fn func(*sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

func (s *Store) rebind(query string) string {
	return s.db.Rebind(query)
}

// inClause returns "(?, ?, ...)" with n placeholders and ids as arguments.
func inClause(ids []int64) (string, []any) {
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}
	return "(" + strings.TrimSuffix(strings.Repeat("?, ", len(ids)), ", ") + ")", args
}

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}
