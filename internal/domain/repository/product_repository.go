package repository

import (
	"context"

	"github.com/brunocardsx/sys-Obras/internal/domain/entity"
)

// ProductRepository define o porto de persistência para o catálogo de produtos.
type ProductRepository interface {
	// Create persiste o produto. Violação de unicidade (código ou nome)
	// retorna domain.ErrDuplicate.
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	List(ctx context.Context) ([]*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	// Delete remove o produto. Retorna false se o id não existe.
	Delete(ctx context.Context, id string) (bool, error)
}
