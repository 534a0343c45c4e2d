package ledger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOptionalDate(t *testing.T) {
	d, err := parseOptionalDate("2024-01-15")
	require.NoError(t, err)
	require.NotNil(t, d)
	assert.Equal(t, time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC), *d)

	d, err = parseOptionalDate("")
	require.NoError(t, err, "string vazia significa sem data")
	assert.Nil(t, d)

	d, err = parseOptionalDate("  ")
	require.NoError(t, err)
	assert.Nil(t, d)

	_, err = parseOptionalDate("15/01/2024")
	assert.Error(t, err, "formato fora de YYYY-MM-DD é rejeitado")

	_, err = parseOptionalDate("2024-02-30")
	assert.Error(t, err, "dia inexistente no calendário é rejeitado")
}

func TestFormatOptionalDate(t *testing.T) {
	assert.Nil(t, formatOptionalDate(nil))

	d := time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)
	s := formatOptionalDate(&d)
	require.NotNil(t, s)
	assert.Equal(t, "2024-03-05", *s)
}
