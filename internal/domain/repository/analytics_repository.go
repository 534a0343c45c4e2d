package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceRow linha crua para agregação: cabeça da nota com obra expandida.
// A DB produz as linhas; o caso de uso reduz (agrupamentos por obra e por mês).
type InvoiceRow struct {
	ID          string
	Number      string
	TotalAmount decimal.Decimal
	IssueDate   time.Time
	ProjectID   string
	ProjectName string
	Status      string
}

// ProductSpendRow gasto agregado por produto (agrupa pelo snapshot
// product_name do item, então produtos já removidos do catálogo continuam
// aparecendo no ranking).
type ProductSpendRow struct {
	ProductName   string
	TotalQuantity decimal.Decimal
	TotalAmount   decimal.Decimal
}

// EntityCounts contagens globais exibidas no dashboard.
type EntityCounts struct {
	Projects int
	Invoices int
	Products int
}

// ProjectRow identificação de obra para o dashboard.
type ProjectRow struct {
	ID      string
	Name    string
	Address string
}

// AnalyticsRepository define as consultas de leitura do motor de agregação.
// Implementações são read-only (nunca modificam dados) e podem rodar com
// isolamento relaxado; não bloqueiam escritores.
type AnalyticsRepository interface {
	// ListInvoices devolve as notas da janela (inclusiva em issue_date),
	// ordenadas por issue_date decrescente. start/end nulos = sem filtro.
	ListInvoices(ctx context.Context, start, end *time.Time) ([]InvoiceRow, error)

	// ListInvoicesByProject devolve as notas da obra, mais recentes primeiro.
	ListInvoicesByProject(ctx context.Context, projectID string) ([]InvoiceRow, error)

	// Counts devolve os totais de obras, notas e produtos cadastrados.
	Counts(ctx context.Context) (EntityCounts, error)

	// ListProjects devolve todas as obras ordenadas por nome.
	ListProjects(ctx context.Context) ([]ProjectRow, error)

	// TopProducts devolve os `limit` produtos com maior gasto somado
	// (Σ total_price dos itens) na janela, decrescente. Empates mantêm a
	// ordem do banco — estável, sem significado de negócio.
	TopProducts(ctx context.Context, start, end *time.Time, limit int) ([]ProductSpendRow, error)
}
