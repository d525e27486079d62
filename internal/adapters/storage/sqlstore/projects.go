package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jsamuelsen11/project-service/internal/domain"
	"github.com/jsamuelsen11/project-service/internal/domain/project"
	"github.com/jsamuelsen11/project-service/internal/platform/database"
	"github.com/jsamuelsen11/project-service/internal/ports"
)

// Compile-time check that ProjectRepository implements ports.ProjectRepository.
var _ ports.ProjectRepository = (*ProjectRepository)(nil)

const projectColumns = `id, name, description, owner_id, status, visibility, max_storage_size, created_at, updated_at`

// ProjectRepository stores projects in the projects table and their teams
// in project_members.
type ProjectRepository struct {
	store *Store
}

// FindByID returns the project with its team.
func (r *ProjectRepository) FindByID(ctx context.Context, id int64) (*project.Project, error) {
	row := r.store.db.QueryRowContext(ctx,
		r.store.rebind(`SELECT `+projectColumns+` FROM projects WHERE id = ?`), id)

	p, err := scanProject(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("project with id %d does not exist: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get project %d: %w", id, err)
	}

	teams, err := r.loadTeams(ctx, []int64{id})
	if err != nil {
		return nil, err
	}
	p.TeamMemberIDs = teams[id]
	return &p, nil
}

// FindByOwnerOrMember returns the projects userID owns or is on the team of.
func (r *ProjectRepository) FindByOwnerOrMember(ctx context.Context, userID int64) ([]project.Project, error) {
	return r.query(ctx, `SELECT `+projectColumns+` FROM projects
		WHERE owner_id = ? OR id IN (SELECT project_id FROM project_members WHERE user_id = ?)
		ORDER BY id`, userID, userID)
}

// ExistsByOwnerAndName reports whether ownerID already has a project called name.
func (r *ProjectRepository) ExistsByOwnerAndName(ctx context.Context, ownerID int64, name string) (bool, error) {
	var n int
	err := r.store.db.QueryRowContext(ctx,
		r.store.rebind(`SELECT COUNT(*) FROM projects WHERE owner_id = ? AND name = ?`), ownerID, name,
	).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("check project name: %w", err)
	}
	return n > 0, nil
}

// FindAllByIDs returns the existing projects among ids, ordered by id.
func (r *ProjectRepository) FindAllByIDs(ctx context.Context, ids []int64) ([]project.Project, error) {
	if len(ids) == 0 {
		return []project.Project{}, nil
	}
	in, args := inClause(ids)
	return r.query(ctx, `SELECT `+projectColumns+` FROM projects WHERE id IN `+in+` ORDER BY id`, args...)
}

// Save inserts p when p.ID is zero, otherwise updates its mutable columns and
// replaces its team.
func (r *ProjectRepository) Save(ctx context.Context, p *project.Project) (*project.Project, error) {
	out := *p
	if out.ID == 0 {
		id, err := r.store.nextID()
		if err != nil {
			return nil, err
		}
		out.ID = id
		err = r.store.withTx(ctx, func(tx *sql.Tx) error {
			if _, err := tx.ExecContext(ctx, r.store.rebind(`INSERT INTO projects (`+projectColumns+`)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`),
				out.ID, out.Name, out.Description, out.OwnerID, string(out.Status), string(out.Visibility),
				out.MaxStorageSize, toMillis(out.CreatedAt), toMillis(out.UpdatedAt),
			); err != nil {
				return err
			}
			return r.insertTeam(ctx, tx, out.ID, out.TeamMemberIDs)
		})
		if err != nil {
			if database.IsUniqueViolation(err) {
				return nil, &domain.ConflictError{
					Resource: "project",
					Message:  fmt.Sprintf("owner %d already has a project named %q", out.OwnerID, out.Name),
				}
			}
			return nil, fmt.Errorf("insert project: %w", err)
		}
		return &out, nil
	}

	err := r.store.withTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, r.store.rebind(`UPDATE projects
			SET description = ?, status = ?, updated_at = ? WHERE id = ?`),
			out.Description, string(out.Status), toMillis(out.UpdatedAt), out.ID,
		)
		if err != nil {
			return err
		}
		n, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if n == 0 {
			return fmt.Errorf("project with id %d does not exist: %w", out.ID, domain.ErrNotFound)
		}
		if _, err := tx.ExecContext(ctx, r.store.rebind(`DELETE FROM project_members WHERE project_id = ?`), out.ID); err != nil {
			return err
		}
		return r.insertTeam(ctx, tx, out.ID, out.TeamMemberIDs)
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("update project %d: %w", out.ID, err)
	}
	return &out, nil
}

func (r *ProjectRepository) insertTeam(ctx context.Context, tx *sql.Tx, projectID int64, members []int64) error {
	stmt := r.store.rebind(`INSERT INTO project_members (project_id, user_id) VALUES (?, ?)`)
	for _, userID := range members {
		if _, err := tx.ExecContext(ctx, stmt, projectID, userID); err != nil {
			return err
		}
	}
	return nil
}

func (r *ProjectRepository) query(ctx context.Context, query string, args ...any) ([]project.Project, error) {
	rows, err := r.store.db.QueryContext(ctx, r.store.rebind(query), args...)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	projects := []project.Project{}
	ids := []int64{}
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		projects = append(projects, p)
		ids = append(ids, p.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	// Release the connection before loading teams; SQLite runs on one.
	_ = rows.Close()

	if len(ids) == 0 {
		return projects, nil
	}
	teams, err := r.loadTeams(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range projects {
		projects[i].TeamMemberIDs = teams[projects[i].ID]
	}
	return projects, nil
}

func (r *ProjectRepository) loadTeams(ctx context.Context, projectIDs []int64) (map[int64][]int64, error) {
	in, args := inClause(projectIDs)
	rows, err := r.store.db.QueryContext(ctx, r.store.rebind(
		`SELECT project_id, user_id FROM project_members WHERE project_id IN `+in+` ORDER BY project_id, user_id`), args...)
	if err != nil {
		return nil, fmt.Errorf("list project members: %w", err)
	}
	defer rows.Close()

	teams := make(map[int64][]int64, len(projectIDs))
	for rows.Next() {
		var projectID, userID int64
		if err := rows.Scan(&projectID, &userID); err != nil {
			return nil, fmt.Errorf("scan project member: %w", err)
		}
		teams[projectID] = append(teams[projectID], userID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list project members: %w", err)
	}
	return teams, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProject(row rowScanner) (project.Project, error) {
	var (
		p                    project.Project
		status, visibility   string
		createdAt, updatedAt int64
	)
	if err := row.Scan(&p.ID, &p.Name, &p.Description, &p.OwnerID, &status, &visibility,
		&p.MaxStorageSize, &createdAt, &updatedAt); err != nil {
		return project.Project{}, err
	}
	p.Status = project.Status(status)
	p.Visibility = project.Visibility(visibility)
	p.CreatedAt = fromMillis(createdAt)
	p.UpdatedAt = fromMillis(updatedAt)
	return p, nil
}
