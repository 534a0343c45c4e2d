package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMonthKey_ChaveEstavel(t *testing.T) {
	jan := monthKeyOf(time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC))
	alsoJan := monthKeyOf(time.Date(2024, time.January, 31, 23, 59, 59, 0, time.UTC))
	feb := monthKeyOf(time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC))

	assert.Equal(t, jan, alsoJan, "qualquer dia do mesmo mês produz a mesma chave")
	assert.NotEqual(t, jan, feb)
	assert.Equal(t, "2024-01", jan.String())
	assert.Equal(t, "2024-02", feb.String())
}

func TestMonthKey_OrdemCronologica(t *testing.T) {
	dez23 := monthKey{year: 2023, month: time.December}
	jan24 := monthKey{year: 2024, month: time.January}
	fev24 := monthKey{year: 2024, month: time.February}

	assert.True(t, dez23.before(jan24), "dezembro/2023 vem antes de janeiro/2024")
	assert.True(t, jan24.before(fev24))
	assert.False(t, fev24.before(jan24))
	assert.False(t, jan24.before(jan24))
}

func TestMonthKey_RotuloPtBR(t *testing.T) {
	assert.Equal(t, "Janeiro 2024", monthKey{year: 2024, month: time.January}.label())
	assert.Equal(t, "Dezembro 2023", monthKey{year: 2023, month: time.December}.label())
	assert.Equal(t, "Março 2025", monthKey{year: 2025, month: time.March}.label())
}
