package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/brunocardsx/sys-Obras/internal/application/auth"
	"github.com/brunocardsx/sys-Obras/internal/application/dto"
)

// AuthHandler trata as requisições de autenticação.
type AuthHandler struct {
	uc *auth.UseCase
}

// NewAuthHandler constrói o handler.
func NewAuthHandler(uc *auth.UseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Login autentica as credenciais e emite o token JWT.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := parseBody(c, &in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("usuário e senha são obrigatórios"))
	}
	out, err := h.uc.Login(in)
	if err != nil {
		return respondError(c, err)
	}
	return ok(c, out, "autenticado com sucesso")
}
