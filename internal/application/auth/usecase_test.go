package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/brunocardsx/sys-Obras/internal/application/auth"
	"github.com/brunocardsx/sys-Obras/internal/application/dto"
	"github.com/brunocardsx/sys-Obras/internal/domain"
	pkgjwt "github.com/brunocardsx/sys-Obras/pkg/jwt"
)

const testSecret = "test-secret-key-for-unit-tests"

func buildAuthUC(t *testing.T) *auth.UseCase {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("senha-correta"), bcrypt.MinCost)
	require.NoError(t, err)
	return auth.NewUseCase(auth.Config{
		AdminUser:     "admin",
		AdminPassHash: string(hash),
		JWTSecret:     testSecret,
		ExpMinutes:    60,
		Issuer:        "sys-obras-test",
	})
}

func TestLogin_CredenciaisValidas(t *testing.T) {
	uc := buildAuthUC(t)

	out, err := uc.Login(dto.LoginRequest{Username: "admin", Password: "senha-correta"})
	require.NoError(t, err)
	require.NotEmpty(t, out.Token)

	username, role, err := pkgjwt.Parse(testSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, "admin", username)
	assert.Equal(t, "admin", role)
}

func TestLogin_SenhaErrada(t *testing.T) {
	uc := buildAuthUC(t)

	_, err := uc.Login(dto.LoginRequest{Username: "admin", Password: "senha-errada"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UsuarioErrado(t *testing.T) {
	uc := buildAuthUC(t)

	_, err := uc.Login(dto.LoginRequest{Username: "root", Password: "senha-correta"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized,
		"usuário e senha errados devem produzir o mesmo erro, sem distinguir qual falhou")
}

func TestLogin_CamposVazios(t *testing.T) {
	uc := buildAuthUC(t)

	_, err := uc.Login(dto.LoginRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
