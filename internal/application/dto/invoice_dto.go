package dto

import "github.com/shopspring/decimal"

// CreateInvoiceItemRequest linha de item no payload de criação de nota.
// TotalPrice não é aceito do chamador: é sempre recalculado no servidor.
// Quantity e UnitPrice não levam tag de validação: `required` não enxerga o
// zero dentro de decimal.Decimal; quem valida quantidade > 0 e preço >= 0 é
// o caso de uso.
type CreateInvoiceItemRequest struct {
	ProductID   string          `json:"productId" validate:"required"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
}

// CreateInvoiceRequest payload de criação de nota fiscal com itens.
// Datas em formato ISO-8601 (YYYY-MM-DD).
type CreateInvoiceRequest struct {
	Number      string                     `json:"number" validate:"required,min=1,max=100"`
	Series      string                     `json:"series" validate:"max=20"`
	ProjectID   string                     `json:"projectId" validate:"required"`
	IssueDate   string                     `json:"issueDate" validate:"required"`
	DueDate     string                     `json:"dueDate"`
	PaymentDate string                     `json:"paymentDate"`
	Status      string                     `json:"status" validate:"max=50"`
	Notes       string                     `json:"notes"`
	Items       []CreateInvoiceItemRequest `json:"items" validate:"required,min=1,dive"`
}

// UpdateInvoiceRequest atualização dos campos escalares da cabeça da nota.
// Itens não são alterados por esta operação (substituição de itens está fora
// do contrato de update). Ponteiros distinguem campo ausente.
type UpdateInvoiceRequest struct {
	Number      *string `json:"number" validate:"omitempty,min=1,max=100"`
	Series      *string `json:"series" validate:"omitempty,max=20"`
	ProjectID   *string `json:"projectId"`
	IssueDate   *string `json:"issueDate"`
	DueDate     *string `json:"dueDate"`
	PaymentDate *string `json:"paymentDate"`
	Status      *string `json:"status" validate:"omitempty,max=50"`
	Notes       *string `json:"notes"`
}

// InvoiceFilterQuery filtros de listagem (query string).
type InvoiceFilterQuery struct {
	StartDate string `query:"startDate"`
	EndDate   string `query:"endDate"`
	Number    string `query:"number"`
}

// InvoiceItemResponse linha de item nas respostas.
type InvoiceItemResponse struct {
	ID          string          `json:"id"`
	ProductID   *string         `json:"productId"`
	ProductName string          `json:"productName"`
	ProductCode string          `json:"productCode,omitempty"`
	Description string          `json:"description,omitempty"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	TotalPrice  decimal.Decimal `json:"totalPrice"`
}

// InvoiceResponse nota fiscal completa: cabeça, itens e obra expandida.
type InvoiceResponse struct {
	ID          string                `json:"id"`
	Number      string                `json:"number"`
	Series      string                `json:"series,omitempty"`
	ProjectID   string                `json:"projectId"`
	ProjectName string                `json:"projectName,omitempty"`
	IssueDate   string                `json:"issueDate"`
	DueDate     *string               `json:"dueDate,omitempty"`
	PaymentDate *string               `json:"paymentDate,omitempty"`
	Subtotal    decimal.Decimal       `json:"subtotal"`
	TaxAmount   decimal.Decimal       `json:"taxAmount"`
	TotalAmount decimal.Decimal       `json:"totalAmount"`
	Status      string                `json:"status"`
	Notes       string                `json:"notes,omitempty"`
	Items       []InvoiceItemResponse `json:"items"`
}

// InvoiceListItem linha de listagem (sem itens).
type InvoiceListItem struct {
	ID          string          `json:"id"`
	Number      string          `json:"number"`
	ProjectID   string          `json:"projectId"`
	ProjectName string          `json:"projectName"`
	IssueDate   string          `json:"issueDate"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	Status      string          `json:"status"`
}
