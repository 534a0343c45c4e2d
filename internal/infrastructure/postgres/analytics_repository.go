package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/brunocardsx/sys-Obras/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas de leitura do motor de agregação. Só executa
// SELECTs; a redução (agrupar por obra e mês) acontece no caso de uso.
type AnalyticsRepo struct {
	q Querier
}

// NewAnalyticsRepository constrói o adaptador de consultas analíticas.
func NewAnalyticsRepository(q Querier) *AnalyticsRepo {
	return &AnalyticsRepo{q: q}
}

const invoiceRowColumns = `i.id, i.number, i.total_amount, i.issue_date, i.project_id, p.name, i.status`

// ListInvoices devolve as notas da janela (inclusiva), mais recentes primeiro.
func (r *AnalyticsRepo) ListInvoices(ctx context.Context, start, end *time.Time) ([]repository.InvoiceRow, error) {
	query := `
		SELECT ` + invoiceRowColumns + `
		FROM invoices i
		JOIN projects p ON p.id = i.project_id
		WHERE 1=1`
	var args []any
	if start != nil {
		args = append(args, *start)
		query += fmt.Sprintf(" AND i.issue_date >= $%d", len(args))
	}
	if end != nil {
		args = append(args, *end)
		query += fmt.Sprintf(" AND i.issue_date <= $%d", len(args))
	}
	query += " ORDER BY i.issue_date DESC, i.created_at DESC"
	return r.queryInvoiceRows(ctx, query, args...)
}

// ListInvoicesByProject devolve as notas da obra, mais recentes primeiro.
func (r *AnalyticsRepo) ListInvoicesByProject(ctx context.Context, projectID string) ([]repository.InvoiceRow, error) {
	query := `
		SELECT ` + invoiceRowColumns + `
		FROM invoices i
		JOIN projects p ON p.id = i.project_id
		WHERE i.project_id = $1
		ORDER BY i.issue_date DESC, i.created_at DESC`
	return r.queryInvoiceRows(ctx, query, projectID)
}

func (r *AnalyticsRepo) queryInvoiceRows(ctx context.Context, query string, args ...any) ([]repository.InvoiceRow, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list invoice rows: %w", err)
	}
	defer rows.Close()
	var list []repository.InvoiceRow
	for rows.Next() {
		var row repository.InvoiceRow
		if err := rows.Scan(&row.ID, &row.Number, &row.TotalAmount, &row.IssueDate,
			&row.ProjectID, &row.ProjectName, &row.Status); err != nil {
			return nil, fmt.Errorf("scan invoice row: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

// Counts devolve o total de obras, notas e produtos cadastrados.
func (r *AnalyticsRepo) Counts(ctx context.Context) (repository.EntityCounts, error) {
	var c repository.EntityCounts
	query := `
		SELECT
			(SELECT COUNT(*) FROM projects),
			(SELECT COUNT(*) FROM invoices),
			(SELECT COUNT(*) FROM products)`
	if err := r.q.QueryRow(ctx, query).Scan(&c.Projects, &c.Invoices, &c.Products); err != nil {
		return repository.EntityCounts{}, fmt.Errorf("count entities: %w", err)
	}
	return c, nil
}

// ListProjects devolve todas as obras ordenadas por nome.
func (r *AnalyticsRepo) ListProjects(ctx context.Context) ([]repository.ProjectRow, error) {
	rows, err := r.q.Query(ctx, `SELECT id, name, COALESCE(address, '') FROM projects ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("list project rows: %w", err)
	}
	defer rows.Close()
	var list []repository.ProjectRow
	for rows.Next() {
		var row repository.ProjectRow
		if err := rows.Scan(&row.ID, &row.Name, &row.Address); err != nil {
			return nil, fmt.Errorf("scan project row: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

// TopProducts devolve os produtos com maior gasto somado na janela,
// decrescente. Agrupa pelo snapshot product_name dos itens, então linhas de
// produtos já removidos do catálogo continuam contando.
func (r *AnalyticsRepo) TopProducts(ctx context.Context, start, end *time.Time, limit int) ([]repository.ProductSpendRow, error) {
	query := `
		SELECT it.product_name, SUM(it.quantity), SUM(it.total_price)
		FROM invoice_items it
		JOIN invoices i ON i.id = it.invoice_id
		WHERE 1=1`
	var args []any
	if start != nil {
		args = append(args, *start)
		query += fmt.Sprintf(" AND i.issue_date >= $%d", len(args))
	}
	if end != nil {
		args = append(args, *end)
		query += fmt.Sprintf(" AND i.issue_date <= $%d", len(args))
	}
	args = append(args, limit)
	query += fmt.Sprintf(" GROUP BY it.product_name ORDER BY SUM(it.total_price) DESC LIMIT $%d", len(args))

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("top products: %w", err)
	}
	defer rows.Close()
	var list []repository.ProductSpendRow
	for rows.Next() {
		var row repository.ProductSpendRow
		if err := rows.Scan(&row.ProductName, &row.TotalQuantity, &row.TotalAmount); err != nil {
			return nil, fmt.Errorf("scan product spend: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}
