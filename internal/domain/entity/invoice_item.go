package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceItem representa uma linha de uma nota fiscal.
//
// ProductName e ProductCode são cópias desnormalizadas do catálogo, gravadas
// no momento da criação do item. É intencional: o histórico da nota precisa
// sobreviver a alterações (ou exclusão futura) do produto no catálogo, por
// isso ProductID pode ficar nulo sem perder a exibição da linha.
type InvoiceItem struct {
	ID          string
	InvoiceID   string
	ProductID   *string
	ProductName string
	ProductCode string
	Description string
	Quantity    decimal.Decimal // > 0, aceita frações (ex: 2.5 m3)
	UnitPrice   decimal.Decimal // >= 0
	TotalPrice  decimal.Decimal // sempre recalculado: Quantity × UnitPrice (2 casas)
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ComputeTotal recalcula TotalPrice a partir de Quantity e UnitPrice,
// arredondado a 2 casas decimais. Nunca confiar no total vindo do chamador.
func (i *InvoiceItem) ComputeTotal() {
	i.TotalPrice = i.Quantity.Mul(i.UnitPrice).Round(2)
}
