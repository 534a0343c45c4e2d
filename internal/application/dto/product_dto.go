package dto

import "github.com/shopspring/decimal"

// CreateProductRequest payload de criação de produto no catálogo.
type CreateProductRequest struct {
	Code         string          `json:"code" validate:"required,min=1,max=50"`
	Name         string          `json:"name" validate:"required,min=1,max=255"`
	Description  string          `json:"description"`
	Unit         string          `json:"unit" validate:"max=20"`
	Category     string          `json:"category" validate:"max=100"`
	CostPrice    decimal.Decimal `json:"costPrice"`
	CurrentStock decimal.Decimal `json:"currentStock"`
	MinStock     decimal.Decimal `json:"minStock"`
}

// UpdateProductRequest payload de atualização de produto.
type UpdateProductRequest struct {
	Code         *string          `json:"code" validate:"omitempty,min=1,max=50"`
	Name         *string          `json:"name" validate:"omitempty,min=1,max=255"`
	Description  *string          `json:"description"`
	Unit         *string          `json:"unit" validate:"omitempty,max=20"`
	Category     *string          `json:"category" validate:"omitempty,max=100"`
	CostPrice    *decimal.Decimal `json:"costPrice"`
	CurrentStock *decimal.Decimal `json:"currentStock"`
	MinStock     *decimal.Decimal `json:"minStock"`
}

// ProductResponse representação de produto nas respostas.
type ProductResponse struct {
	ID           string          `json:"id"`
	Code         string          `json:"code"`
	Name         string          `json:"name"`
	Description  string          `json:"description,omitempty"`
	Unit         string          `json:"unit,omitempty"`
	Category     string          `json:"category,omitempty"`
	CostPrice    decimal.Decimal `json:"costPrice"`
	CurrentStock decimal.Decimal `json:"currentStock"`
	MinStock     decimal.Decimal `json:"minStock"`
	CreatedAt    string          `json:"createdAt,omitempty"`
	UpdatedAt    string          `json:"updatedAt,omitempty"`
}
