package ledger

import (
	"context"

	"github.com/brunocardsx/sys-Obras/internal/domain/repository"
)

// LedgerTxRunner executa fn dentro de uma transação do storage; o repositório
// recebido está atado à tx. Commit se fn retornar nil, rollback em qualquer
// outro caminho de saída. É a unidade de trabalho da escrita nota+itens:
// nenhum leitor observa uma nota com conjunto parcial de itens.
type LedgerTxRunner interface {
	RunLedger(ctx context.Context, fn func(invoiceRepo repository.InvoiceRepository) error) error
}
