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

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

const invoiceColumns = `id, number, series, project_id, issue_date, due_date, payment_date,
		subtotal, tax_amount, total_amount, status, notes, created_at, updated_at`

// InvoiceRepo implementação do porto InvoiceRepository sobre PostgreSQL (usável com pool ou tx).
type InvoiceRepo struct {
	q Querier
}

// NewInvoiceRepository constrói o adaptador de persistência de notas fiscais. Passar pool ou tx (Querier).
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

// Create persiste a cabeça da nota. Número duplicado retorna domain.ErrDuplicate.
func (r *InvoiceRepo) Create(ctx context.Context, invoice *entity.Invoice) error {
	query := `
		INSERT INTO invoices (id, number, series, project_id, issue_date, due_date, payment_date,
			subtotal, tax_amount, total_amount, status, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(ctx, query,
		invoice.ID, invoice.Number, nullIfEmpty(invoice.Series), invoice.ProjectID,
		invoice.IssueDate, invoice.DueDate, invoice.PaymentDate,
		invoice.Subtotal, invoice.TaxAmount, invoice.TotalAmount,
		invoice.Status, nullIfEmpty(invoice.Notes),
		invoice.CreatedAt, invoice.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert invoice: %w", err)
	}
	return nil
}

// CreateItem persiste um item de nota. Chamar na mesma transação do Create.
func (r *InvoiceRepo) CreateItem(ctx context.Context, item *entity.InvoiceItem) error {
	query := `
		INSERT INTO invoice_items (id, invoice_id, product_id, product_name, product_code,
			description, quantity, unit_price, total_price, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(ctx, query,
		item.ID, item.InvoiceID, item.ProductID, item.ProductName,
		nullIfEmpty(item.ProductCode), nullIfEmpty(item.Description),
		item.Quantity, item.UnitPrice, item.TotalPrice,
		item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert invoice item: %w", err)
	}
	return nil
}

// Update atualiza os campos escalares da cabeça da nota (itens ficam intactos).
func (r *InvoiceRepo) Update(ctx context.Context, invoice *entity.Invoice) error {
	query := `
		UPDATE invoices SET number = $2, series = $3, project_id = $4, issue_date = $5,
			due_date = $6, payment_date = $7, status = $8, notes = $9, updated_at = $10
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		invoice.ID, invoice.Number, nullIfEmpty(invoice.Series), invoice.ProjectID,
		invoice.IssueDate, invoice.DueDate, invoice.PaymentDate,
		invoice.Status, nullIfEmpty(invoice.Notes), invoice.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update invoice: %w", err)
	}
	return nil
}

// GetByID obtém a cabeça de uma nota por ID.
func (r *InvoiceRepo) GetByID(ctx context.Context, id string) (*entity.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE id = $1`
	inv, err := scanInvoice(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	return inv, nil
}

// GetByNumber obtém a cabeça de uma nota por número exato (case-sensitive).
func (r *InvoiceRepo) GetByNumber(ctx context.Context, number string) (*entity.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE number = $1`
	inv, err := scanInvoice(r.q.QueryRow(ctx, query, number))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invoice by number: %w", err)
	}
	return inv, nil
}

// GetItemsByInvoiceID lista os itens de uma nota na ordem de criação.
func (r *InvoiceRepo) GetItemsByInvoiceID(ctx context.Context, invoiceID string) ([]*entity.InvoiceItem, error) {
	query := `
		SELECT id, invoice_id, product_id, product_name, product_code, description,
			quantity, unit_price, total_price, created_at, updated_at
		FROM invoice_items WHERE invoice_id = $1 ORDER BY created_at ASC`
	rows, err := r.q.Query(ctx, query, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("list invoice items: %w", err)
	}
	defer rows.Close()
	var list []*entity.InvoiceItem
	for rows.Next() {
		var (
			it                       entity.InvoiceItem
			productCode, description *string
		)
		if err := rows.Scan(&it.ID, &it.InvoiceID, &it.ProductID, &it.ProductName,
			&productCode, &description, &it.Quantity, &it.UnitPrice, &it.TotalPrice,
			&it.CreatedAt, &it.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan invoice item: %w", err)
		}
		it.ProductCode = derefStr(productCode)
		it.Description = derefStr(description)
		list = append(list, &it)
	}
	return list, rows.Err()
}

// List lista as notas (com o nome da obra expandido) aplicando os filtros,
// mais recentes primeiro.
func (r *InvoiceRepo) List(ctx context.Context, filter repository.InvoiceFilter) ([]repository.InvoiceSummary, error) {
	query := `
		SELECT i.id, i.number, i.series, i.project_id, i.issue_date, i.due_date, i.payment_date,
			i.subtotal, i.tax_amount, i.total_amount, i.status, i.notes, i.created_at, i.updated_at,
			p.name
		FROM invoices i
		JOIN projects p ON p.id = i.project_id
		WHERE 1=1`
	var args []any
	if filter.StartDate != nil {
		args = append(args, *filter.StartDate)
		query += fmt.Sprintf(" AND i.issue_date >= $%d", len(args))
	}
	if filter.EndDate != nil {
		args = append(args, *filter.EndDate)
		query += fmt.Sprintf(" AND i.issue_date <= $%d", len(args))
	}
	if filter.NumberContains != "" {
		args = append(args, "%"+filter.NumberContains+"%")
		query += fmt.Sprintf(" AND i.number ILIKE $%d", len(args))
	}
	query += " ORDER BY i.issue_date DESC, i.created_at DESC"

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	defer rows.Close()
	var list []repository.InvoiceSummary
	for rows.Next() {
		var (
			s             repository.InvoiceSummary
			series, notes *string
		)
		if err := rows.Scan(&s.Invoice.ID, &s.Invoice.Number, &series, &s.Invoice.ProjectID,
			&s.Invoice.IssueDate, &s.Invoice.DueDate, &s.Invoice.PaymentDate,
			&s.Invoice.Subtotal, &s.Invoice.TaxAmount, &s.Invoice.TotalAmount,
			&s.Invoice.Status, &notes, &s.Invoice.CreatedAt, &s.Invoice.UpdatedAt,
			&s.ProjectName); err != nil {
			return nil, fmt.Errorf("scan invoice summary: %w", err)
		}
		s.Invoice.Series = derefStr(series)
		s.Invoice.Notes = derefStr(notes)
		list = append(list, s)
	}
	return list, rows.Err()
}

// Delete apaga os itens e depois a cabeça da nota. Retorna quantas notas
// foram removidas (0 = inexistente). Chamar dentro do TxRunner para que as
// duas instruções sejam atômicas.
func (r *InvoiceRepo) Delete(ctx context.Context, id string) (int64, error) {
	if _, err := r.q.Exec(ctx, `DELETE FROM invoice_items WHERE invoice_id = $1`, id); err != nil {
		return 0, fmt.Errorf("delete invoice items: %w", err)
	}
	cmd, err := r.q.Exec(ctx, `DELETE FROM invoices WHERE id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("delete invoice: %w", err)
	}
	return cmd.RowsAffected(), nil
}

// CountByProject conta as notas que referenciam a obra.
func (r *InvoiceRepo) CountByProject(ctx context.Context, projectID string) (int, error) {
	var count int
	err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM invoices WHERE project_id = $1`, projectID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count invoices by project: %w", err)
	}
	return count, nil
}

// CountItemsByProduct conta os itens de nota que referenciam o produto.
func (r *InvoiceRepo) CountItemsByProduct(ctx context.Context, productID string) (int, error) {
	var count int
	err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM invoice_items WHERE product_id = $1`, productID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count invoice items by product: %w", err)
	}
	return count, nil
}

func scanInvoice(row pgx.Row) (*entity.Invoice, error) {
	var (
		inv           entity.Invoice
		series, notes *string
	)
	err := row.Scan(&inv.ID, &inv.Number, &series, &inv.ProjectID,
		&inv.IssueDate, &inv.DueDate, &inv.PaymentDate,
		&inv.Subtotal, &inv.TaxAmount, &inv.TotalAmount,
		&inv.Status, &notes, &inv.CreatedAt, &inv.UpdatedAt)
	if err != nil {
		return nil, err
	}
	inv.Series = derefStr(series)
	inv.Notes = derefStr(notes)
	return &inv, nil
}
