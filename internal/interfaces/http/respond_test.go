package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	nethttp "net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brunocardsx/sys-Obras/internal/domain"
)

// statusFor monta uma rota que devolve err via respondError e captura o
// status e o corpo resultantes.
func statusFor(t *testing.T, err error) (int, map[string]any) {
	t.Helper()
	app := fiber.New()
	app.Get("/x", func(c *fiber.Ctx) error {
		return respondError(c, err)
	})
	resp, reqErr := app.Test(httptest.NewRequest(nethttp.MethodGet, "/x", nil), -1)
	require.NoError(t, reqErr)
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body))
	return resp.StatusCode, body
}

func TestRespondError_MapeamentoDeStatus(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"nao encontrado", fmt.Errorf("%w: obra x", domain.ErrNotFound), nethttp.StatusNotFound},
		{"entrada invalida", fmt.Errorf("%w: sem itens", domain.ErrInvalidInput), nethttp.StatusBadRequest},
		{"duplicado", fmt.Errorf("%w: NF-1", domain.ErrDuplicate), nethttp.StatusConflict},
		{"nao autorizado", domain.ErrUnauthorized, nethttp.StatusUnauthorized},
		{"em uso", &domain.InUseError{Resource: "obra", Count: 2}, nethttp.StatusConflict},
		{"erro interno", fmt.Errorf("falha de rede"), nethttp.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, body := statusFor(t, tc.err)
			assert.Equal(t, tc.want, status)
			assert.Equal(t, false, body["status"], "corpo de erro sempre traz status:false")
			assert.NotEmpty(t, body["message"])
		})
	}
}

// Detalhes internos não vazam no corpo de erro 500.
func TestRespondError_ErroInternoNaoVaza(t *testing.T) {
	_, body := statusFor(t, fmt.Errorf("pgx: connection refused em 10.0.0.5"))
	assert.Equal(t, "erro interno do servidor", body["message"])
}

// O erro interno opaco na resposta é registrado por inteiro no log, com
// método e caminho da requisição.
func TestRespondError_ErroInternoLogado(t *testing.T) {
	var buf bytes.Buffer
	original := log.Logger
	log.Logger = zerolog.New(&buf)
	defer func() { log.Logger = original }()

	_, body := statusFor(t, fmt.Errorf("pgx: connection refused em 10.0.0.5"))
	assert.Equal(t, "erro interno do servidor", body["message"])

	logged := buf.String()
	assert.Contains(t, logged, "connection refused em 10.0.0.5", "o erro original deve ir para o log")
	assert.Contains(t, logged, `"path":"/x"`)
	assert.Contains(t, logged, `"method":"GET"`)
	assert.Contains(t, logged, "erro interno")
}

// Erros de domínio (4xx) não poluem o log de erro interno.
func TestRespondError_ErroDeDominioNaoLogado(t *testing.T) {
	var buf bytes.Buffer
	original := log.Logger
	log.Logger = zerolog.New(&buf)
	defer func() { log.Logger = original }()

	statusFor(t, fmt.Errorf("%w: obra x", domain.ErrNotFound))
	assert.Empty(t, buf.String())
}

// O erro de recurso em uso informa a contagem de dependentes na mensagem.
func TestRespondError_EmUsoInformaContagem(t *testing.T) {
	_, body := statusFor(t, &domain.InUseError{Resource: "produto", Count: 5})
	assert.Contains(t, body["message"], "5")
	assert.Contains(t, body["message"], "produto")
}
