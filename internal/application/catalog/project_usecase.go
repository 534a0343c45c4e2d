package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/brunocardsx/sys-Obras/internal/application/dto"
	"github.com/brunocardsx/sys-Obras/internal/domain"
	"github.com/brunocardsx/sys-Obras/internal/domain/entity"
	"github.com/brunocardsx/sys-Obras/internal/domain/repository"
)

// ProjectUseCase operações de catálogo sobre obras. A exclusão checa
// explicitamente as notas fiscais que referenciam a obra (contagem via
// InvoiceRepository) em vez de depender de cascade do engine — o erro chega
// ao chamador como domain.InUseError, nunca como violação crua de constraint.
type ProjectUseCase struct {
	projectRepo repository.ProjectRepository
	invoiceRepo repository.InvoiceRepository
}

// NewProjectUseCase constrói o caso de uso.
func NewProjectUseCase(projectRepo repository.ProjectRepository, invoiceRepo repository.InvoiceRepository) *ProjectUseCase {
	return &ProjectUseCase{projectRepo: projectRepo, invoiceRepo: invoiceRepo}
}

// Create cadastra uma obra. Nome duplicado retorna domain.ErrDuplicate.
func (uc *ProjectUseCase) Create(ctx context.Context, in dto.CreateProjectRequest) (*dto.ProjectResponse, error) {
	if in.Name == "" {
		return nil, fmt.Errorf("%w: nome da obra é obrigatório", domain.ErrInvalidInput)
	}
	now := time.Now()
	project := &entity.Project{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Address:   in.Address,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.projectRepo.Create(ctx, project); err != nil {
		return nil, err
	}
	return toProjectResponse(project), nil
}

// GetByID busca uma obra.
func (uc *ProjectUseCase) GetByID(ctx context.Context, id string) (*dto.ProjectResponse, error) {
	project, err := uc.projectRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, fmt.Errorf("%w: obra %s", domain.ErrNotFound, id)
	}
	return toProjectResponse(project), nil
}

// List devolve todas as obras ordenadas por nome.
func (uc *ProjectUseCase) List(ctx context.Context) ([]dto.ProjectResponse, error) {
	projects, err := uc.projectRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProjectResponse, 0, len(projects))
	for _, p := range projects {
		out = append(out, *toProjectResponse(p))
	}
	return out, nil
}

// Update altera nome e/ou endereço.
func (uc *ProjectUseCase) Update(ctx context.Context, id string, in dto.UpdateProjectRequest) (*dto.ProjectResponse, error) {
	project, err := uc.projectRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, fmt.Errorf("%w: obra %s", domain.ErrNotFound, id)
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, fmt.Errorf("%w: nome não pode ser vazio", domain.ErrInvalidInput)
		}
		project.Name = *in.Name
	}
	if in.Address != nil {
		project.Address = *in.Address
	}
	project.UpdatedAt = time.Now()
	if err := uc.projectRepo.Update(ctx, project); err != nil {
		return nil, err
	}
	return toProjectResponse(project), nil
}

// Delete exclui a obra somente se nenhuma nota fiscal a referencia.
func (uc *ProjectUseCase) Delete(ctx context.Context, id string) error {
	project, err := uc.projectRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if project == nil {
		return fmt.Errorf("%w: obra %s", domain.ErrNotFound, id)
	}
	count, err := uc.invoiceRepo.CountByProject(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return &domain.InUseError{Resource: "obra", Count: count}
	}
	deleted, err := uc.projectRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return fmt.Errorf("%w: obra %s", domain.ErrNotFound, id)
	}
	return nil
}

func toProjectResponse(p *entity.Project) *dto.ProjectResponse {
	return &dto.ProjectResponse{
		ID:        p.ID,
		Name:      p.Name,
		Address:   p.Address,
		CreatedAt: p.CreatedAt.Format(time.RFC3339),
		UpdatedAt: p.UpdatedAt.Format(time.RFC3339),
	}
}
