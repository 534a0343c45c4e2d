package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/brunocardsx/sys-Obras/internal/domain"
	"github.com/brunocardsx/sys-Obras/internal/domain/entity"
	"github.com/brunocardsx/sys-Obras/internal/domain/repository"
)

var _ repository.ProjectRepository = (*ProjectRepo)(nil)

// ProjectRepo implementação do porto ProjectRepository sobre PostgreSQL (usável com pool ou tx).
type ProjectRepo struct {
	q Querier
}

// NewProjectRepository constrói o adaptador de persistência de obras. Passar pool ou tx (Querier).
func NewProjectRepository(q Querier) *ProjectRepo {
	return &ProjectRepo{q: q}
}

// Create persiste uma nova obra. Nome duplicado retorna domain.ErrDuplicate.
func (r *ProjectRepo) Create(ctx context.Context, project *entity.Project) error {
	query := `
		INSERT INTO projects (id, name, address, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(ctx, query,
		project.ID, project.Name, nullIfEmpty(project.Address),
		project.CreatedAt, project.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert project: %w", err)
	}
	return nil
}

// GetByID obtém uma obra por ID.
func (r *ProjectRepo) GetByID(ctx context.Context, id string) (*entity.Project, error) {
	query := `
		SELECT id, name, address, created_at, updated_at
		FROM projects WHERE id = $1`
	var (
		p       entity.Project
		address *string
	)
	err := r.q.QueryRow(ctx, query, id).Scan(&p.ID, &p.Name, &address, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get project: %w", err)
	}
	p.Address = derefStr(address)
	return &p, nil
}

// List lista todas as obras ordenadas por nome.
func (r *ProjectRepo) List(ctx context.Context) ([]*entity.Project, error) {
	query := `
		SELECT id, name, address, created_at, updated_at
		FROM projects ORDER BY name ASC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()
	var list []*entity.Project
	for rows.Next() {
		var (
			p       entity.Project
			address *string
		)
		if err := rows.Scan(&p.ID, &p.Name, &address, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		p.Address = derefStr(address)
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Update atualiza nome e endereço de uma obra existente.
func (r *ProjectRepo) Update(ctx context.Context, project *entity.Project) error {
	query := `
		UPDATE projects SET name = $2, address = $3, updated_at = $4
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		project.ID, project.Name, nullIfEmpty(project.Address), project.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update project: %w", err)
	}
	return nil
}

// Delete remove uma obra por ID. Retorna false se nada foi removido.
func (r *ProjectRepo) Delete(ctx context.Context, id string) (bool, error) {
	cmd, err := r.q.Exec(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete project: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}
