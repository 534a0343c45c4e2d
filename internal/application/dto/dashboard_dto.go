package dto

import "github.com/shopspring/decimal"

// MonthlyBreakdownDTO gasto agregado de um mês-calendário.
// Month é a chave estável (YYYY-MM) usada no agrupamento; Label é o rótulo
// pt-BR produzido apenas na borda de apresentação — nunca usado como chave.
type MonthlyBreakdownDTO struct {
	Month    string          `json:"month"`
	Label    string          `json:"label"`
	Amount   decimal.Decimal `json:"amount"`
	Invoices int             `json:"invoices"`
}

// ProjectBreakdownDTO gasto agregado de uma obra, com abertura mensal.
type ProjectBreakdownDTO struct {
	ProjectID        string                `json:"projectId"`
	ProjectName      string                `json:"projectName"`
	Amount           decimal.Decimal       `json:"amount"`
	Invoices         int                   `json:"invoices"`
	MonthlyBreakdown []MonthlyBreakdownDTO `json:"monthlyBreakdown"`
}

// ProjectSpendingDTO versão achatada do breakdown (widget de gráfico de barras).
type ProjectSpendingDTO struct {
	ProjectName string          `json:"projectName"`
	Amount      decimal.Decimal `json:"amount"`
	Invoices    int             `json:"invoices"`
}

// RecentInvoiceDTO nota recente exibida no dashboard.
type RecentInvoiceDTO struct {
	ID          string          `json:"id"`
	Number      string          `json:"number"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	IssueDate   string          `json:"issueDate"`
	ProjectName string          `json:"projectName"`
	Status      string          `json:"status"`
}

// TopProductDTO produto ranqueado por gasto somado.
type TopProductDTO struct {
	ProductName   string          `json:"productName"`
	TotalQuantity decimal.Decimal `json:"totalQuantity"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
}

// ProjectRefDTO identificação de obra na lista do dashboard.
type ProjectRefDTO struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
}

// DashboardMetricsDTO resposta completa de GET /api/dashboard/metrics.
type DashboardMetricsDTO struct {
	TotalProjects    int                   `json:"totalProjects"`
	TotalInvoices    int                   `json:"totalInvoices"`
	TotalProducts    int                   `json:"totalProducts"`
	TotalSpent       decimal.Decimal       `json:"totalSpent"`
	Projects         []ProjectRefDTO       `json:"projects"`
	ProjectBreakdown []ProjectBreakdownDTO `json:"projectBreakdown"`
	MonthlySpending  []MonthlyBreakdownDTO `json:"monthlySpending"`
	ProjectSpending  []ProjectSpendingDTO  `json:"projectSpending"`
	RecentInvoices   []RecentInvoiceDTO    `json:"recentInvoices"`
	TopProducts      []TopProductDTO       `json:"topProducts"`
}

// ProjectSummaryDTO resposta de GET /api/projects/:id/summary.
type ProjectSummaryDTO struct {
	Project       ProjectRefDTO      `json:"project"`
	TotalInvoices int                `json:"totalInvoices"`
	TotalAmount   decimal.Decimal    `json:"totalAmount"`
	Invoices      []RecentInvoiceDTO `json:"invoices"`
}
