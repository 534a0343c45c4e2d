package repository

import (
	"context"

	"github.com/brunocardsx/sys-Obras/internal/domain/entity"
)

// ProjectRepository define o porto de persistência para obras.
// Métodos Get* retornam (nil, nil) quando o registro não existe; o caso de
// uso converte para domain.ErrNotFound.
type ProjectRepository interface {
	Create(ctx context.Context, project *entity.Project) error
	GetByID(ctx context.Context, id string) (*entity.Project, error)
	List(ctx context.Context) ([]*entity.Project, error)
	Update(ctx context.Context, project *entity.Project) error
	// Delete remove a obra. Retorna false se o id não existe.
	// A proteção referencial (obra com notas) é responsabilidade do caso de
	// uso, via InvoiceRepository.CountByProject, antes de chamar Delete.
	Delete(ctx context.Context, id string) (bool, error)
}
