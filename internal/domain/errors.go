package domain

import (
	"errors"
	"fmt"
)

// Erros de domínio (sem dependências externas).
var (
	ErrNotFound     = errors.New("recurso não encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrDuplicate    = errors.New("recurso duplicado")
	ErrUnauthorized = errors.New("não autorizado")
)

// InUseError indica que uma exclusão foi bloqueada porque outros registros
// ainda referenciam o recurso (ex: obra com notas fiscais, produto presente em
// itens de nota). Carrega a contagem de referências para compor a mensagem.
type InUseError struct {
	Resource string // "obra" | "produto"
	Count    int
}

func (e *InUseError) Error() string {
	return fmt.Sprintf("%s em uso: %d registro(s) dependem deste recurso", e.Resource, e.Count)
}
