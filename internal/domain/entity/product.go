package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa um item de catálogo (material ou serviço) referenciado
// pelos itens de nota fiscal. Código e nome são únicos no sistema.
// CostPrice é o custo unitário de referência; os campos de estoque são
// informativos (não há baixa automática de estoque neste sistema).
type Product struct {
	ID           string
	Code         string
	Name         string
	Description  string
	Unit         string // un, kg, m, m2, m3, sc...
	Category     string
	CostPrice    decimal.Decimal // >= 0
	CurrentStock decimal.Decimal
	MinStock     decimal.Decimal
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
