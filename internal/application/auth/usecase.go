package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/brunocardsx/sys-Obras/internal/application/dto"
	"github.com/brunocardsx/sys-Obras/internal/domain"
	pkgjwt "github.com/brunocardsx/sys-Obras/pkg/jwt"
)

// Config credenciais do usuário administrador e parâmetros do JWT.
// O sistema tem um único usuário (admin), definido por ambiente; a senha é
// armazenada como hash bcrypt, nunca em claro.
type Config struct {
	AdminUser     string
	AdminPassHash string // hash bcrypt de ADMIN_PASS
	JWTSecret     string
	ExpMinutes    int
	Issuer        string
}

// UseCase autentica o admin e emite o token de acesso.
type UseCase struct {
	cfg Config
}

// NewUseCase constrói o caso de uso.
func NewUseCase(cfg Config) *UseCase {
	return &UseCase{cfg: cfg}
}

// Login compara as credenciais com o admin configurado e devolve um JWT.
// Credenciais erradas retornam domain.ErrUnauthorized sem distinguir usuário
// de senha.
func (uc *UseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	if in.Username == "" || in.Password == "" {
		return nil, fmt.Errorf("%w: usuário e senha são obrigatórios", domain.ErrInvalidInput)
	}
	if uc.cfg.AdminUser == "" || uc.cfg.AdminPassHash == "" || uc.cfg.JWTSecret == "" {
		return nil, fmt.Errorf("auth: configuração de autenticação incompleta")
	}
	if in.Username != uc.cfg.AdminUser {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(uc.cfg.AdminPassHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := pkgjwt.Generate(uc.cfg.JWTSecret, in.Username, "admin", uc.cfg.Issuer, uc.cfg.ExpMinutes)
	if err != nil {
		return nil, fmt.Errorf("gerar token: %w", err)
	}
	return &dto.LoginResponse{Token: token, Message: "Login realizado com sucesso"}, nil
}
