package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// StatusPending é o status inicial de uma nota fiscal quando o chamador não
// informa outro valor. O campo é texto livre; não há máquina de estados.
const StatusPending = "pending"

// Invoice representa a cabeça de uma nota fiscal lançada contra uma obra.
// Number é único e case-sensitive. TotalAmount é sempre derivado no servidor
// como a soma dos TotalPrice dos itens — valores enviados pelo chamador são
// ignorados para preservar a invariante de consistência.
type Invoice struct {
	ID          string
	Number      string
	Series      string
	ProjectID   string
	IssueDate   time.Time  // somente a data (YYYY-MM-DD); hora não é modelada
	DueDate     *time.Time
	PaymentDate *time.Time
	Subtotal    decimal.Decimal
	TaxAmount   decimal.Decimal
	TotalAmount decimal.Decimal
	Status      string
	Notes       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
