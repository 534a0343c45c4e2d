package ledger

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

// InvoiceUseCase orquestra o ciclo de vida das notas fiscais: criação da nota
// com seus itens como unidade atômica, atualização dos campos escalares e
// exclusão em cascata. Toda validação é síncrona e acontece antes de qualquer
// tentativa de persistência.
type InvoiceUseCase struct {
	txRunner    LedgerTxRunner
	invoiceRepo repository.InvoiceRepository
	projectRepo repository.ProjectRepository
	productRepo repository.ProductRepository
}

// NewInvoiceUseCase constrói o caso de uso.
func NewInvoiceUseCase(
	txRunner LedgerTxRunner,
	invoiceRepo repository.InvoiceRepository,
	projectRepo repository.ProjectRepository,
	productRepo repository.ProductRepository,
) *InvoiceUseCase {
	return &InvoiceUseCase{
		txRunner:    txRunner,
		invoiceRepo: invoiceRepo,
		projectRepo: projectRepo,
		productRepo: productRepo,
	}
}

// Create cria a nota fiscal e todos os seus itens em uma transação.
//
// Sequência: valida o payload (número, obra, >= 1 item, quantidades e preços),
// resolve obra e produtos, pré-checa unicidade do número, recalcula
// TotalPrice de cada item e TotalAmount da nota, e só então persiste. A
// constraint única de invoices.number cobre a corrida entre dois
// check-then-insert concorrentes: o perdedor recebe domain.ErrDuplicate.
func (uc *InvoiceUseCase) Create(ctx context.Context, in dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	if in.Number == "" || in.ProjectID == "" {
		return nil, fmt.Errorf("%w: número e obra são obrigatórios", domain.ErrInvalidInput)
	}
	if len(in.Items) == 0 {
		return nil, fmt.Errorf("%w: a nota fiscal precisa de ao menos um item", domain.ErrInvalidInput)
	}
	issueDate, err := parseDate(in.IssueDate)
	if err != nil {
		return nil, fmt.Errorf("%w: data de emissão inválida (%q)", domain.ErrInvalidInput, in.IssueDate)
	}
	dueDate, err := parseOptionalDate(in.DueDate)
	if err != nil {
		return nil, fmt.Errorf("%w: data de vencimento inválida (%q)", domain.ErrInvalidInput, in.DueDate)
	}
	paymentDate, err := parseOptionalDate(in.PaymentDate)
	if err != nil {
		return nil, fmt.Errorf("%w: data de pagamento inválida (%q)", domain.ErrInvalidInput, in.PaymentDate)
	}
	for i := range in.Items {
		item := &in.Items[i]
		if item.ProductID == "" {
			return nil, fmt.Errorf("%w: item %d sem produto", domain.ErrInvalidInput, i+1)
		}
		if !item.Quantity.GreaterThan(decimal.Zero) {
			return nil, fmt.Errorf("%w: item %d com quantidade menor ou igual a zero", domain.ErrInvalidInput, i+1)
		}
		if item.UnitPrice.LessThan(decimal.Zero) {
			return nil, fmt.Errorf("%w: item %d com valor unitário negativo", domain.ErrInvalidInput, i+1)
		}
	}

	project, err := uc.projectRepo.GetByID(ctx, in.ProjectID)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, fmt.Errorf("%w: obra %s", domain.ErrNotFound, in.ProjectID)
	}

	// Resolve os produtos uma única vez; o nome e o código são copiados para
	// o item (snapshot) para que o histórico sobreviva ao catálogo.
	productsByID := make(map[string]*entity.Product)
	for _, item := range in.Items {
		if _, ok := productsByID[item.ProductID]; ok {
			continue
		}
		product, err := uc.productRepo.GetByID(ctx, item.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, fmt.Errorf("%w: produto %s", domain.ErrNotFound, item.ProductID)
		}
		productsByID[item.ProductID] = product
	}

	existing, err := uc.invoiceRepo.GetByNumber(ctx, in.Number)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: nota fiscal %q já cadastrada", domain.ErrDuplicate, in.Number)
	}

	now := time.Now()
	status := in.Status
	if status == "" {
		status = entity.StatusPending
	}
	inv := &entity.Invoice{
		ID:          uuid.New().String(),
		Number:      in.Number,
		Series:      in.Series,
		ProjectID:   in.ProjectID,
		IssueDate:   issueDate,
		DueDate:     dueDate,
		PaymentDate: paymentDate,
		Status:      status,
		Notes:       in.Notes,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	items := make([]*entity.InvoiceItem, 0, len(in.Items))
	total := decimal.Zero
	for _, item := range in.Items {
		product := productsByID[item.ProductID]
		productID := product.ID
		line := &entity.InvoiceItem{
			ID:          uuid.New().String(),
			InvoiceID:   inv.ID,
			ProductID:   &productID,
			ProductName: product.Name,
			ProductCode: product.Code,
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		line.ComputeTotal()
		total = total.Add(line.TotalPrice)
		items = append(items, line)
	}
	// Política: o total é sempre derivado no servidor como Σ TotalPrice dos
	// itens; valores enviados pelo chamador são ignorados.
	inv.TotalAmount = total.Round(2)
	inv.Subtotal = inv.TotalAmount
	inv.TaxAmount = decimal.Zero

	err = uc.txRunner.RunLedger(ctx, func(invoiceRepo repository.InvoiceRepository) error {
		if err := invoiceRepo.Create(ctx, inv); err != nil {
			return err
		}
		for _, line := range items {
			if err := invoiceRepo.CreateItem(ctx, line); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return toInvoiceResponse(inv, project.Name, items), nil
}

// Update altera os campos escalares da cabeça da nota. Itens não são tocados.
// Renomear o número refaz o check de unicidade excluindo a própria nota.
func (uc *InvoiceUseCase) Update(ctx context.Context, id string, in dto.UpdateInvoiceRequest) (*dto.InvoiceResponse, error) {
	inv, err := uc.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, fmt.Errorf("%w: nota fiscal %s", domain.ErrNotFound, id)
	}

	if in.Number != nil && *in.Number != inv.Number {
		if *in.Number == "" {
			return nil, fmt.Errorf("%w: número não pode ser vazio", domain.ErrInvalidInput)
		}
		existing, err := uc.invoiceRepo.GetByNumber(ctx, *in.Number)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != inv.ID {
			return nil, fmt.Errorf("%w: nota fiscal %q já cadastrada", domain.ErrDuplicate, *in.Number)
		}
		inv.Number = *in.Number
	}
	if in.ProjectID != nil && *in.ProjectID != inv.ProjectID {
		project, err := uc.projectRepo.GetByID(ctx, *in.ProjectID)
		if err != nil {
			return nil, err
		}
		if project == nil {
			return nil, fmt.Errorf("%w: obra %s", domain.ErrNotFound, *in.ProjectID)
		}
		inv.ProjectID = *in.ProjectID
	}
	if in.IssueDate != nil {
		d, err := parseDate(*in.IssueDate)
		if err != nil {
			return nil, fmt.Errorf("%w: data de emissão inválida (%q)", domain.ErrInvalidInput, *in.IssueDate)
		}
		inv.IssueDate = d
	}
	if in.DueDate != nil {
		d, err := parseOptionalDate(*in.DueDate)
		if err != nil {
			return nil, fmt.Errorf("%w: data de vencimento inválida (%q)", domain.ErrInvalidInput, *in.DueDate)
		}
		inv.DueDate = d
	}
	if in.PaymentDate != nil {
		d, err := parseOptionalDate(*in.PaymentDate)
		if err != nil {
			return nil, fmt.Errorf("%w: data de pagamento inválida (%q)", domain.ErrInvalidInput, *in.PaymentDate)
		}
		inv.PaymentDate = d
	}
	if in.Series != nil {
		inv.Series = *in.Series
	}
	if in.Status != nil {
		inv.Status = *in.Status
	}
	if in.Notes != nil {
		inv.Notes = *in.Notes
	}
	inv.UpdatedAt = time.Now()

	if err := uc.invoiceRepo.Update(ctx, inv); err != nil {
		return nil, err
	}
	return uc.expand(ctx, inv)
}

// Delete exclui a nota e todos os seus itens (cascata explícita, na mesma
// transação). Nota inexistente retorna domain.ErrNotFound.
func (uc *InvoiceUseCase) Delete(ctx context.Context, id string) error {
	return uc.txRunner.RunLedger(ctx, func(invoiceRepo repository.InvoiceRepository) error {
		count, err := invoiceRepo.Delete(ctx, id)
		if err != nil {
			return err
		}
		if count == 0 {
			return fmt.Errorf("%w: nota fiscal %s", domain.ErrNotFound, id)
		}
		return nil
	})
}

// GetByID devolve a nota completa: cabeça, itens e nome da obra.
func (uc *InvoiceUseCase) GetByID(ctx context.Context, id string) (*dto.InvoiceResponse, error) {
	inv, err := uc.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, fmt.Errorf("%w: nota fiscal %s", domain.ErrNotFound, id)
	}
	return uc.expand(ctx, inv)
}

// List devolve as notas da janela de filtro, mais recentes primeiro.
func (uc *InvoiceUseCase) List(ctx context.Context, q dto.InvoiceFilterQuery) ([]dto.InvoiceListItem, error) {
	start, err := parseOptionalDate(q.StartDate)
	if err != nil {
		return nil, fmt.Errorf("%w: startDate inválida (%q)", domain.ErrInvalidInput, q.StartDate)
	}
	end, err := parseOptionalDate(q.EndDate)
	if err != nil {
		return nil, fmt.Errorf("%w: endDate inválida (%q)", domain.ErrInvalidInput, q.EndDate)
	}
	summaries, err := uc.invoiceRepo.List(ctx, repository.InvoiceFilter{
		StartDate:      start,
		EndDate:        end,
		NumberContains: q.Number,
	})
	if err != nil {
		return nil, err
	}
	out := make([]dto.InvoiceListItem, 0, len(summaries))
	for _, s := range summaries {
		out = append(out, dto.InvoiceListItem{
			ID:          s.Invoice.ID,
			Number:      s.Invoice.Number,
			ProjectID:   s.Invoice.ProjectID,
			ProjectName: s.ProjectName,
			IssueDate:   formatDate(s.Invoice.IssueDate),
			TotalAmount: s.Invoice.TotalAmount,
			Status:      s.Invoice.Status,
		})
	}
	return out, nil
}

// expand carrega itens e o nome da obra para montar a resposta completa.
// Falha de storage em qualquer das buscas propaga; obra ausente (não é
// falha) degrada para nome vazio.
func (uc *InvoiceUseCase) expand(ctx context.Context, inv *entity.Invoice) (*dto.InvoiceResponse, error) {
	items, err := uc.invoiceRepo.GetItemsByInvoiceID(ctx, inv.ID)
	if err != nil {
		return nil, err
	}
	project, err := uc.projectRepo.GetByID(ctx, inv.ProjectID)
	if err != nil {
		return nil, err
	}
	projectName := ""
	if project != nil {
		projectName = project.Name
	}
	return toInvoiceResponse(inv, projectName, items), nil
}

func toInvoiceResponse(inv *entity.Invoice, projectName string, items []*entity.InvoiceItem) *dto.InvoiceResponse {
	resp := &dto.InvoiceResponse{
		ID:          inv.ID,
		Number:      inv.Number,
		Series:      inv.Series,
		ProjectID:   inv.ProjectID,
		ProjectName: projectName,
		IssueDate:   formatDate(inv.IssueDate),
		DueDate:     formatOptionalDate(inv.DueDate),
		PaymentDate: formatOptionalDate(inv.PaymentDate),
		Subtotal:    inv.Subtotal,
		TaxAmount:   inv.TaxAmount,
		TotalAmount: inv.TotalAmount,
		Status:      inv.Status,
		Notes:       inv.Notes,
		Items:       make([]dto.InvoiceItemResponse, 0, len(items)),
	}
	for _, item := range items {
		resp.Items = append(resp.Items, dto.InvoiceItemResponse{
			ID:          item.ID,
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			ProductCode: item.ProductCode,
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			TotalPrice:  item.TotalPrice,
		})
	}
	return resp
}
