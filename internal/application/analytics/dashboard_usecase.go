// Package analytics contém o motor de agregação: consultas read-only que
// agrupam os valores das notas fiscais por obra e por mês-calendário.
package analytics

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/brunocardsx/sys-Obras/internal/application/dto"
	"github.com/brunocardsx/sys-Obras/internal/domain"
	"github.com/brunocardsx/sys-Obras/internal/domain/repository"
)

const (
	topProductsLimit    = 10 // ranking de produtos no dashboard
	recentInvoicesLimit = 10 // notas recentes no dashboard
)

// DashboardUseCase reduz as linhas cruas de nota fiscal nos agregados do
// dashboard. Os agrupamentos acontecem aqui, em memória, chaveados por
// (ano, mês) — nunca pelo rótulo localizado, que é gerado só na montagem do
// DTO. Nunca modifica estado.
type DashboardUseCase struct {
	analyticsRepo repository.AnalyticsRepository
	projectRepo   repository.ProjectRepository
}

// NewDashboardUseCase constrói o caso de uso.
func NewDashboardUseCase(analyticsRepo repository.AnalyticsRepository, projectRepo repository.ProjectRepository) *DashboardUseCase {
	return &DashboardUseCase{analyticsRepo: analyticsRepo, projectRepo: projectRepo}
}

// Metrics monta o DashboardMetricsDTO para a janela dada (inclusiva em
// issue_date; start/end nulos = sem filtro).
//
// Quatro consultas em paralelo:
//  1. ListInvoices(janela)      → linhas para os agrupamentos
//  2. Counts()                  → totais globais
//  3. ListProjects()            → lista de obras
//  4. TopProducts(janela, 10)   → ranking de produtos
func (uc *DashboardUseCase) Metrics(ctx context.Context, start, end *time.Time) (*dto.DashboardMetricsDTO, error) {
	type rowsResult struct {
		rows []repository.InvoiceRow
		err  error
	}
	type countsResult struct {
		counts repository.EntityCounts
		err    error
	}
	type projectsResult struct {
		projects []repository.ProjectRow
		err      error
	}
	type topResult struct {
		top []repository.ProductSpendRow
		err error
	}

	rowsCh := make(chan rowsResult, 1)
	countsCh := make(chan countsResult, 1)
	projectsCh := make(chan projectsResult, 1)
	topCh := make(chan topResult, 1)

	go func() {
		rows, err := uc.analyticsRepo.ListInvoices(ctx, start, end)
		rowsCh <- rowsResult{rows, err}
	}()
	go func() {
		counts, err := uc.analyticsRepo.Counts(ctx)
		countsCh <- countsResult{counts, err}
	}()
	go func() {
		projects, err := uc.analyticsRepo.ListProjects(ctx)
		projectsCh <- projectsResult{projects, err}
	}()
	go func() {
		top, err := uc.analyticsRepo.TopProducts(ctx, start, end, topProductsLimit)
		topCh <- topResult{top, err}
	}()

	rows := <-rowsCh
	counts := <-countsCh
	projects := <-projectsCh
	top := <-topCh

	if rows.err != nil {
		return nil, fmt.Errorf("dashboard: notas da janela: %w", rows.err)
	}
	if counts.err != nil {
		return nil, fmt.Errorf("dashboard: contagens: %w", counts.err)
	}
	if projects.err != nil {
		return nil, fmt.Errorf("dashboard: obras: %w", projects.err)
	}
	if top.err != nil {
		return nil, fmt.Errorf("dashboard: ranking de produtos: %w", top.err)
	}

	metrics := &dto.DashboardMetricsDTO{
		TotalProjects:    counts.counts.Projects,
		TotalInvoices:    counts.counts.Invoices,
		TotalProducts:    counts.counts.Products,
		Projects:         make([]dto.ProjectRefDTO, 0, len(projects.projects)),
		ProjectBreakdown: []dto.ProjectBreakdownDTO{},
		MonthlySpending:  []dto.MonthlyBreakdownDTO{},
		ProjectSpending:  []dto.ProjectSpendingDTO{},
		RecentInvoices:   []dto.RecentInvoiceDTO{},
		TopProducts:      make([]dto.TopProductDTO, 0, len(top.top)),
	}
	for _, p := range projects.projects {
		metrics.Projects = append(metrics.Projects, dto.ProjectRefDTO{ID: p.ID, Name: p.Name, Address: p.Address})
	}
	for _, t := range top.top {
		metrics.TopProducts = append(metrics.TopProducts, dto.TopProductDTO{
			ProductName:   t.ProductName,
			TotalQuantity: t.TotalQuantity,
			TotalAmount:   t.TotalAmount,
		})
	}

	uc.reduce(rows.rows, metrics)
	return metrics, nil
}

// reduce percorre as linhas (já em issue_date decrescente) e preenche
// totalSpent, breakdown por obra com abertura mensal, gasto mensal global e
// notas recentes.
func (uc *DashboardUseCase) reduce(rows []repository.InvoiceRow, metrics *dto.DashboardMetricsDTO) {
	type monthAgg struct {
		amount   decimal.Decimal
		invoices int
	}
	type projectAgg struct {
		name     string
		amount   decimal.Decimal
		invoices int
		months   map[monthKey]*monthAgg
	}

	totalSpent := decimal.Zero
	byProject := make(map[string]*projectAgg)
	projectOrder := make([]string, 0)
	byMonth := make(map[monthKey]*monthAgg)

	for _, row := range rows {
		totalSpent = totalSpent.Add(row.TotalAmount)

		agg, ok := byProject[row.ProjectID]
		if !ok {
			agg = &projectAgg{name: row.ProjectName, months: make(map[monthKey]*monthAgg)}
			byProject[row.ProjectID] = agg
			projectOrder = append(projectOrder, row.ProjectID)
		}
		agg.amount = agg.amount.Add(row.TotalAmount)
		agg.invoices++

		key := monthKeyOf(row.IssueDate)
		pm, ok := agg.months[key]
		if !ok {
			pm = &monthAgg{}
			agg.months[key] = pm
		}
		pm.amount = pm.amount.Add(row.TotalAmount)
		pm.invoices++

		gm, ok := byMonth[key]
		if !ok {
			gm = &monthAgg{}
			byMonth[key] = gm
		}
		gm.amount = gm.amount.Add(row.TotalAmount)
		gm.invoices++

		if len(metrics.RecentInvoices) < recentInvoicesLimit {
			metrics.RecentInvoices = append(metrics.RecentInvoices, dto.RecentInvoiceDTO{
				ID:          row.ID,
				Number:      row.Number,
				TotalAmount: row.TotalAmount,
				IssueDate:   row.IssueDate.Format("2006-01-02"),
				ProjectName: row.ProjectName,
				Status:      row.Status,
			})
		}
	}
	metrics.TotalSpent = totalSpent.Round(2)

	sortedMonths := func(months map[monthKey]*monthAgg) []dto.MonthlyBreakdownDTO {
		keys := make([]monthKey, 0, len(months))
		for k := range months {
			keys = append(keys, k)
		}
		sort.Slice(keys, func(i, j int) bool { return keys[i].before(keys[j]) })
		out := make([]dto.MonthlyBreakdownDTO, 0, len(keys))
		for _, k := range keys {
			m := months[k]
			out = append(out, dto.MonthlyBreakdownDTO{
				Month:    k.String(),
				Label:    k.label(),
				Amount:   m.amount.Round(2),
				Invoices: m.invoices,
			})
		}
		return out
	}

	for _, projectID := range projectOrder {
		agg := byProject[projectID]
		metrics.ProjectBreakdown = append(metrics.ProjectBreakdown, dto.ProjectBreakdownDTO{
			ProjectID:        projectID,
			ProjectName:      agg.name,
			Amount:           agg.amount.Round(2),
			Invoices:         agg.invoices,
			MonthlyBreakdown: sortedMonths(agg.months),
		})
	}
	// Obras em ordem decrescente de gasto; empates mantêm a ordem de chegada.
	sort.SliceStable(metrics.ProjectBreakdown, func(i, j int) bool {
		return metrics.ProjectBreakdown[i].Amount.GreaterThan(metrics.ProjectBreakdown[j].Amount)
	})
	for _, pb := range metrics.ProjectBreakdown {
		metrics.ProjectSpending = append(metrics.ProjectSpending, dto.ProjectSpendingDTO{
			ProjectName: pb.ProjectName,
			Amount:      pb.Amount,
			Invoices:    pb.Invoices,
		})
	}

	metrics.MonthlySpending = sortedMonths(byMonth)
}

// ProjectSummary devolve o resumo financeiro de uma obra: contagem, total e
// notas mais recentes primeiro. Obra inexistente retorna domain.ErrNotFound;
// obra sem notas devolve listas vazias, nunca erro.
func (uc *DashboardUseCase) ProjectSummary(ctx context.Context, projectID string) (*dto.ProjectSummaryDTO, error) {
	project, err := uc.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, fmt.Errorf("%w: obra %s", domain.ErrNotFound, projectID)
	}
	rows, err := uc.analyticsRepo.ListInvoicesByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	summary := &dto.ProjectSummaryDTO{
		Project:       dto.ProjectRefDTO{ID: project.ID, Name: project.Name, Address: project.Address},
		TotalInvoices: len(rows),
		Invoices:      make([]dto.RecentInvoiceDTO, 0, len(rows)),
	}
	total := decimal.Zero
	for _, row := range rows {
		total = total.Add(row.TotalAmount)
		summary.Invoices = append(summary.Invoices, dto.RecentInvoiceDTO{
			ID:          row.ID,
			Number:      row.Number,
			TotalAmount: row.TotalAmount,
			IssueDate:   row.IssueDate.Format("2006-01-02"),
			ProjectName: project.Name,
			Status:      row.Status,
		})
	}
	summary.TotalAmount = total.Round(2)
	return summary, nil
}
