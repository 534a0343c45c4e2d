package repository

import (
	"context"
	"time"

	"github.com/brunocardsx/sys-Obras/internal/domain/entity"
)

// InvoiceFilter filtros do listagem de notas fiscais. Datas aplicam-se a
// issue_date (janela inclusiva); NumberContains é busca parcial case-insensitive.
type InvoiceFilter struct {
	StartDate      *time.Time
	EndDate        *time.Time
	NumberContains string
}

// InvoiceSummary linha de listagem: cabeça da nota com o nome da obra expandido.
type InvoiceSummary struct {
	Invoice     entity.Invoice
	ProjectName string
}

// InvoiceRepository define o porto de persistência para notas fiscais e seus itens.
//
// Create e CreateItem devem ser chamados dentro da mesma transação (via
// TxRunner) para que a nota e seus itens sejam gravados como uma unidade —
// nenhum leitor pode observar uma nota com conjunto parcial de itens.
type InvoiceRepository interface {
	// Create persiste a cabeça da nota. Número duplicado (constraint única no
	// storage, cobre também a corrida check-then-insert) retorna domain.ErrDuplicate.
	Create(ctx context.Context, invoice *entity.Invoice) error
	CreateItem(ctx context.Context, item *entity.InvoiceItem) error
	// Update atualiza somente os campos escalares da cabeça (itens não são
	// alterados por aqui).
	Update(ctx context.Context, invoice *entity.Invoice) error
	GetByID(ctx context.Context, id string) (*entity.Invoice, error)
	// GetByNumber busca por número exato (case-sensitive); usado no pré-check
	// de unicidade antes de criar ou renomear.
	GetByNumber(ctx context.Context, number string) (*entity.Invoice, error)
	GetItemsByInvoiceID(ctx context.Context, invoiceID string) ([]*entity.InvoiceItem, error)
	List(ctx context.Context, filter InvoiceFilter) ([]InvoiceSummary, error)
	// Delete apaga itens e cabeça na mesma transação e retorna quantas notas
	// foram removidas (0 = não encontrada; nunca é erro).
	Delete(ctx context.Context, id string) (int64, error)
	// CountByProject conta notas que referenciam a obra (proteção referencial).
	CountByProject(ctx context.Context, projectID string) (int, error)
	// CountItemsByProduct conta itens de nota que referenciam o produto.
	CountItemsByProduct(ctx context.Context, productID string) (int, error)
}
