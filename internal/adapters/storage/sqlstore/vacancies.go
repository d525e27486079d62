package sqlstore

import (
	"context"
	"fmt"

	"github.com/jsamuelsen11/project-service/internal/domain/vacancy"
	"github.com/jsamuelsen11/project-service/internal/ports"
)

// Compile-time check that VacancyRepository implements ports.VacancyRepository.
var _ ports.VacancyRepository = (*VacancyRepository)(nil)

// VacancyRepository stores vacancies.
type VacancyRepository struct {
	store *Store
}

// FindByProjectIDs returns the vacancies of the given projects, ordered by id.
func (r *VacancyRepository) FindByProjectIDs(ctx context.Context, projectIDs []int64) ([]vacancy.Vacancy, error) {
	vacancies := []vacancy.Vacancy{}
	if len(projectIDs) == 0 {
		return vacancies, nil
	}

	in, args := inClause(projectIDs)
	rows, err := r.store.db.QueryContext(ctx, r.store.rebind(
		`SELECT id, name, project_id, created_at FROM vacancies WHERE project_id IN `+in+` ORDER BY id`), args...)
	if err != nil {
		return nil, fmt.Errorf("list vacancies: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			v         vacancy.Vacancy
			createdAt int64
		)
		if err := rows.Scan(&v.ID, &v.Name, &v.ProjectID, &createdAt); err != nil {
			return nil, fmt.Errorf("scan vacancy: %w", err)
		}
		v.CreatedAt = fromMillis(createdAt)
		vacancies = append(vacancies, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list vacancies: %w", err)
	}
	return vacancies, nil
}

// Save inserts a new vacancy.
func (r *VacancyRepository) Save(ctx context.Context, v *vacancy.Vacancy) (*vacancy.Vacancy, error) {
	id, err := r.store.nextID()
	if err != nil {
		return nil, err
	}

	out := *v
	out.ID = id
	if _, err := r.store.db.ExecContext(ctx, r.store.rebind(
		`INSERT INTO vacancies (id, name, project_id, created_at) VALUES (?, ?, ?, ?)`),
		out.ID, out.Name, out.ProjectID, toMillis(out.CreatedAt),
	); err != nil {
		return nil, fmt.Errorf("insert vacancy: %w", err)
	}
	return &out, nil
}
