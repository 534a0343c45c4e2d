package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/brunocardsx/sys-Obras/internal/application/dto"
	"github.com/brunocardsx/sys-Obras/internal/domain"
	"github.com/brunocardsx/sys-Obras/internal/domain/entity"
	"github.com/brunocardsx/sys-Obras/internal/domain/repository"
)

// ProductUseCase operações de catálogo sobre produtos. Mesma proteção
// referencial da obra: produto referenciado por itens de nota não pode ser
// excluído (os itens guardam snapshot de nome/código justamente para o caso
// de o produto sumir do catálogo um dia, mas a exclusão direta é bloqueada).
type ProductUseCase struct {
	productRepo repository.ProductRepository
	invoiceRepo repository.InvoiceRepository
}

// NewProductUseCase constrói o caso de uso.
func NewProductUseCase(productRepo repository.ProductRepository, invoiceRepo repository.InvoiceRepository) *ProductUseCase {
	return &ProductUseCase{productRepo: productRepo, invoiceRepo: invoiceRepo}
}

// Create cadastra um produto. Código ou nome duplicado retorna domain.ErrDuplicate.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Code == "" || in.Name == "" {
		return nil, fmt.Errorf("%w: código e nome do produto são obrigatórios", domain.ErrInvalidInput)
	}
	if in.CostPrice.LessThan(decimal.Zero) {
		return nil, fmt.Errorf("%w: custo unitário não pode ser negativo", domain.ErrInvalidInput)
	}
	now := time.Now()
	product := &entity.Product{
		ID:           uuid.New().String(),
		Code:         in.Code,
		Name:         in.Name,
		Description:  in.Description,
		Unit:         in.Unit,
		Category:     in.Category,
		CostPrice:    in.CostPrice.Round(2),
		CurrentStock: in.CurrentStock,
		MinStock:     in.MinStock,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID busca um produto.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	product, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, fmt.Errorf("%w: produto %s", domain.ErrNotFound, id)
	}
	return toProductResponse(product), nil
}

// List devolve todos os produtos ordenados por nome.
func (uc *ProductUseCase) List(ctx context.Context) ([]dto.ProductResponse, error) {
	products, err := uc.productRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, *toProductResponse(p))
	}
	return out, nil
}

// Update altera os campos do produto presentes no payload.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, fmt.Errorf("%w: produto %s", domain.ErrNotFound, id)
	}
	if in.Code != nil {
		if *in.Code == "" {
			return nil, fmt.Errorf("%w: código não pode ser vazio", domain.ErrInvalidInput)
		}
		product.Code = *in.Code
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, fmt.Errorf("%w: nome não pode ser vazio", domain.ErrInvalidInput)
		}
		product.Name = *in.Name
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.Unit != nil {
		product.Unit = *in.Unit
	}
	if in.Category != nil {
		product.Category = *in.Category
	}
	if in.CostPrice != nil {
		if in.CostPrice.LessThan(decimal.Zero) {
			return nil, fmt.Errorf("%w: custo unitário não pode ser negativo", domain.ErrInvalidInput)
		}
		product.CostPrice = in.CostPrice.Round(2)
	}
	if in.CurrentStock != nil {
		product.CurrentStock = *in.CurrentStock
	}
	if in.MinStock != nil {
		product.MinStock = *in.MinStock
	}
	product.UpdatedAt = time.Now()
	if err := uc.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Delete exclui o produto somente se nenhum item de nota o referencia.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	product, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if product == nil {
		return fmt.Errorf("%w: produto %s", domain.ErrNotFound, id)
	}
	count, err := uc.invoiceRepo.CountItemsByProduct(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return &domain.InUseError{Resource: "produto", Count: count}
	}
	deleted, err := uc.productRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return fmt.Errorf("%w: produto %s", domain.ErrNotFound, id)
	}
	return nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:           p.ID,
		Code:         p.Code,
		Name:         p.Name,
		Description:  p.Description,
		Unit:         p.Unit,
		Category:     p.Category,
		CostPrice:    p.CostPrice,
		CurrentStock: p.CurrentStock,
		MinStock:     p.MinStock,
		CreatedAt:    p.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    p.UpdatedAt.Format(time.RFC3339),
	}
}
