package analytics_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brunocardsx/sys-Obras/internal/application/analytics"
	"github.com/brunocardsx/sys-Obras/internal/domain"
	"github.com/brunocardsx/sys-Obras/internal/domain/entity"
	"github.com/brunocardsx/sys-Obras/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes em memória
// ──────────────────────────────────────────────────────────────────────────────

// fakeAnalyticsRepo devolve linhas pré-carregadas aplicando o filtro de
// janela, mais recentes primeiro — o mesmo contrato do adaptador PostgreSQL.
type fakeAnalyticsRepo struct {
	rows     []repository.InvoiceRow
	projects []repository.ProjectRow
	top      []repository.ProductSpendRow
}

func (f *fakeAnalyticsRepo) ListInvoices(_ context.Context, start, end *time.Time) ([]repository.InvoiceRow, error) {
	var out []repository.InvoiceRow
	for _, row := range f.rows {
		if start != nil && row.IssueDate.Before(*start) {
			continue
		}
		if end != nil && row.IssueDate.After(*end) {
			continue
		}
		out = append(out, row)
	}
	return out, nil
}

func (f *fakeAnalyticsRepo) ListInvoicesByProject(_ context.Context, projectID string) ([]repository.InvoiceRow, error) {
	var out []repository.InvoiceRow
	for _, row := range f.rows {
		if row.ProjectID == projectID {
			out = append(out, row)
		}
	}
	return out, nil
}

func (f *fakeAnalyticsRepo) Counts(_ context.Context) (repository.EntityCounts, error) {
	return repository.EntityCounts{
		Projects: len(f.projects),
		Invoices: len(f.rows),
		Products: len(f.top),
	}, nil
}

func (f *fakeAnalyticsRepo) ListProjects(_ context.Context) ([]repository.ProjectRow, error) {
	return f.projects, nil
}

func (f *fakeAnalyticsRepo) TopProducts(_ context.Context, _, _ *time.Time, limit int) ([]repository.ProductSpendRow, error) {
	if len(f.top) > limit {
		return f.top[:limit], nil
	}
	return f.top, nil
}

type fakeProjectRepo struct {
	projects map[string]*entity.Project
}

func (f *fakeProjectRepo) Create(_ context.Context, p *entity.Project) error {
	f.projects[p.ID] = p
	return nil
}

func (f *fakeProjectRepo) GetByID(_ context.Context, id string) (*entity.Project, error) {
	return f.projects[id], nil
}

func (f *fakeProjectRepo) List(_ context.Context) ([]*entity.Project, error) {
	out := make([]*entity.Project, 0, len(f.projects))
	for _, p := range f.projects {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakeProjectRepo) Update(_ context.Context, p *entity.Project) error {
	f.projects[p.ID] = p
	return nil
}

func (f *fakeProjectRepo) Delete(_ context.Context, id string) (bool, error) {
	if _, ok := f.projects[id]; !ok {
		return false, nil
	}
	delete(f.projects, id)
	return true, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Cenário base: três notas em duas obras, atravessando dois meses.
//
//	NF-A  100.00  2024-01-15  Obra Aurora
//	NF-B   50.00  2024-01-20  Obra Aurora
//	NF-C  200.00  2024-02-01  Obra Horizonte
// ──────────────────────────────────────────────────────────────────────────────

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func amount(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func buildDashboard() (*analytics.DashboardUseCase, *fakeAnalyticsRepo) {
	repo := &fakeAnalyticsRepo{
		// Ordem decrescente de issue_date, como o adaptador devolve.
		rows: []repository.InvoiceRow{
			{ID: "c", Number: "NF-C", TotalAmount: amount("200.00"), IssueDate: day(2024, time.February, 1), ProjectID: "p2", ProjectName: "Obra Horizonte", Status: "pending"},
			{ID: "b", Number: "NF-B", TotalAmount: amount("50.00"), IssueDate: day(2024, time.January, 20), ProjectID: "p1", ProjectName: "Obra Aurora", Status: "pending"},
			{ID: "a", Number: "NF-A", TotalAmount: amount("100.00"), IssueDate: day(2024, time.January, 15), ProjectID: "p1", ProjectName: "Obra Aurora", Status: "paid"},
		},
		projects: []repository.ProjectRow{
			{ID: "p1", Name: "Obra Aurora"},
			{ID: "p2", Name: "Obra Horizonte"},
		},
		top: []repository.ProductSpendRow{
			{ProductName: "Cimento CP-II 50kg", TotalQuantity: amount("30"), TotalAmount: amount("250.00")},
			{ProductName: "Areia média lavada", TotalQuantity: amount("5"), TotalAmount: amount("100.00")},
		},
	}
	projectRepo := &fakeProjectRepo{projects: map[string]*entity.Project{
		"p1": {ID: "p1", Name: "Obra Aurora"},
		"p2": {ID: "p2", Name: "Obra Horizonte"},
	}}
	return analytics.NewDashboardUseCase(repo, projectRepo), repo
}

// ──────────────────────────────────────────────────────────────────────────────
// Metrics
// ──────────────────────────────────────────────────────────────────────────────

func TestMetrics_TotaisEAgrupamentos(t *testing.T) {
	uc, _ := buildDashboard()

	out, err := uc.Metrics(context.Background(), nil, nil)
	require.NoError(t, err)

	assert.True(t, out.TotalSpent.Equal(amount("350.00")), "total gasto: obteve %s", out.TotalSpent)
	assert.Equal(t, 2, out.TotalProjects)
	assert.Equal(t, 3, out.TotalInvoices)

	// Obras em ordem decrescente de gasto: Horizonte (200) antes de Aurora (150).
	require.Len(t, out.ProjectSpending, 2)
	assert.Equal(t, "Obra Horizonte", out.ProjectSpending[0].ProjectName)
	assert.True(t, out.ProjectSpending[0].Amount.Equal(amount("200.00")))
	assert.Equal(t, "Obra Aurora", out.ProjectSpending[1].ProjectName)
	assert.True(t, out.ProjectSpending[1].Amount.Equal(amount("150.00")))
	assert.Equal(t, 2, out.ProjectSpending[1].Invoices)

	// Meses em ordem cronológica crescente, com chave estável e rótulo pt-BR.
	require.Len(t, out.MonthlySpending, 2)
	assert.Equal(t, "2024-01", out.MonthlySpending[0].Month)
	assert.Equal(t, "Janeiro 2024", out.MonthlySpending[0].Label)
	assert.True(t, out.MonthlySpending[0].Amount.Equal(amount("150.00")))
	assert.Equal(t, 2, out.MonthlySpending[0].Invoices)
	assert.Equal(t, "2024-02", out.MonthlySpending[1].Month)
	assert.True(t, out.MonthlySpending[1].Amount.Equal(amount("200.00")))
}

func TestMetrics_AberturaMensalPorObra(t *testing.T) {
	uc, _ := buildDashboard()

	out, err := uc.Metrics(context.Background(), nil, nil)
	require.NoError(t, err)

	require.Len(t, out.ProjectBreakdown, 2)
	aurora := out.ProjectBreakdown[1]
	require.Equal(t, "Obra Aurora", aurora.ProjectName)
	require.Len(t, aurora.MonthlyBreakdown, 1, "as duas notas da Aurora caem no mesmo mês")
	assert.Equal(t, "2024-01", aurora.MonthlyBreakdown[0].Month)
	assert.True(t, aurora.MonthlyBreakdown[0].Amount.Equal(amount("150.00")))
	assert.Equal(t, 2, aurora.MonthlyBreakdown[0].Invoices)
}

// Janela inclusiva: filtrar fevereiro deixa só a NF-C; as contagens globais
// não dependem da janela.
func TestMetrics_JanelaDeDatas(t *testing.T) {
	uc, _ := buildDashboard()

	start := day(2024, time.February, 1)
	end := day(2024, time.February, 29)
	out, err := uc.Metrics(context.Background(), &start, &end)
	require.NoError(t, err)

	assert.True(t, out.TotalSpent.Equal(amount("200.00")))
	require.Len(t, out.MonthlySpending, 1)
	assert.Equal(t, "2024-02", out.MonthlySpending[0].Month)
	require.Len(t, out.RecentInvoices, 1)
	assert.Equal(t, "NF-C", out.RecentInvoices[0].Number)
	assert.Equal(t, 3, out.TotalInvoices, "contagem global ignora a janela")
}

func TestMetrics_SemNotas(t *testing.T) {
	uc, repo := buildDashboard()
	repo.rows = nil

	out, err := uc.Metrics(context.Background(), nil, nil)
	require.NoError(t, err)

	assert.True(t, out.TotalSpent.IsZero())
	assert.Empty(t, out.MonthlySpending)
	assert.Empty(t, out.ProjectSpending)
	assert.Empty(t, out.RecentInvoices)
	assert.NotNil(t, out.MonthlySpending, "listas vazias serializam como [], não null")
}

func TestMetrics_NotasRecentesOrdemDesc(t *testing.T) {
	uc, _ := buildDashboard()

	out, err := uc.Metrics(context.Background(), nil, nil)
	require.NoError(t, err)

	require.Len(t, out.RecentInvoices, 3)
	assert.Equal(t, "NF-C", out.RecentInvoices[0].Number, "mais recente primeiro")
	assert.Equal(t, "NF-B", out.RecentInvoices[1].Number)
	assert.Equal(t, "NF-A", out.RecentInvoices[2].Number)
	assert.Equal(t, "2024-02-01", out.RecentInvoices[0].IssueDate)
}

func TestMetrics_RankingDeProdutos(t *testing.T) {
	uc, _ := buildDashboard()

	out, err := uc.Metrics(context.Background(), nil, nil)
	require.NoError(t, err)

	require.Len(t, out.TopProducts, 2)
	assert.Equal(t, "Cimento CP-II 50kg", out.TopProducts[0].ProductName)
	assert.True(t, out.TopProducts[0].TotalAmount.Equal(amount("250.00")))
}

// ──────────────────────────────────────────────────────────────────────────────
// ProjectSummary
// ──────────────────────────────────────────────────────────────────────────────

func TestProjectSummary_ObraComNotas(t *testing.T) {
	uc, _ := buildDashboard()

	out, err := uc.ProjectSummary(context.Background(), "p1")
	require.NoError(t, err)

	assert.Equal(t, "Obra Aurora", out.Project.Name)
	assert.Equal(t, 2, out.TotalInvoices)
	assert.True(t, out.TotalAmount.Equal(amount("150.00")))
	require.Len(t, out.Invoices, 2)
	assert.Equal(t, "NF-B", out.Invoices[0].Number, "mais recente primeiro")
}

func TestProjectSummary_ObraSemNotas(t *testing.T) {
	uc, repo := buildDashboard()
	repo.rows = nil

	out, err := uc.ProjectSummary(context.Background(), "p1")
	require.NoError(t, err, "obra sem notas não é erro")
	assert.Equal(t, 0, out.TotalInvoices)
	assert.True(t, out.TotalAmount.IsZero())
	assert.NotNil(t, out.Invoices)
	assert.Empty(t, out.Invoices)
}

func TestProjectSummary_ObraInexistente(t *testing.T) {
	uc, _ := buildDashboard()

	_, err := uc.ProjectSummary(context.Background(), "nao-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
