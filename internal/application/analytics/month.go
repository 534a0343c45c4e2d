package analytics

import (
	"fmt"
	"time"
)

// monthKey chave estável de agrupamento mensal. Agrupar pelo par (ano, mês)
// — e não pelo rótulo localizado — evita divergências dependentes de locale
// ou timezone no bucketing.
type monthKey struct {
	year  int
	month time.Month
}

func monthKeyOf(t time.Time) monthKey {
	return monthKey{year: t.Year(), month: t.Month()}
}

func (k monthKey) before(other monthKey) bool {
	if k.year != other.year {
		return k.year < other.year
	}
	return k.month < other.month
}

// String devolve a chave no formato YYYY-MM.
func (k monthKey) String() string {
	return fmt.Sprintf("%04d-%02d", k.year, int(k.month))
}

// label devolve o rótulo pt-BR, ex: "Janeiro 2024". Somente exibição.
func (k monthKey) label() string {
	meses := [...]string{
		"Janeiro", "Fevereiro", "Março", "Abril", "Maio", "Junho",
		"Julho", "Agosto", "Setembro", "Outubro", "Novembro", "Dezembro",
	}
	return fmt.Sprintf("%s %d", meses[k.month-1], k.year)
}
