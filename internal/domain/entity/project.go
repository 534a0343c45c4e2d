package entity

import "time"

// Project representa uma obra (canteiro/empreendimento) contra a qual as
// notas fiscais são lançadas. O nome é único no sistema.
type Project struct {
	ID        string
	Name      string
	Address   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
