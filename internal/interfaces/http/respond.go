package http

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/brunocardsx/sys-Obras/internal/application/dto"
	"github.com/brunocardsx/sys-Obras/internal/domain"
)

var validate = validator.New()

// parseBody faz o parse do corpo JSON e valida as tags do DTO. Retorna
// domain.ErrInvalidInput embrulhado quando o corpo não passa.
func parseBody(c *fiber.Ctx, out any) error {
	if err := c.BodyParser(out); err != nil {
		return domain.ErrInvalidInput
	}
	if err := validate.Struct(out); err != nil {
		return domain.ErrInvalidInput
	}
	return nil
}

// respondError traduz erros de domínio para status HTTP com o corpo padrão
// {status: false, message}.
func respondError(c *fiber.Ctx, err error) error {
	var inUse *domain.InUseError
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.Fail(err.Error()))
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail(err.Error()))
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.Fail(err.Error()))
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail(err.Error()))
	case errors.As(err, &inUse):
		return c.Status(fiber.StatusConflict).JSON(dto.Fail(inUse.Error()))
	default:
		// O erro completo vai para o log; o corpo da resposta fica opaco.
		log.Error().
			Err(err).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Msg("erro interno")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("erro interno do servidor"))
	}
}

func ok(c *fiber.Ctx, data any, message string) error {
	return c.JSON(dto.OK(data, message))
}

func created(c *fiber.Ctx, data any, message string) error {
	return c.Status(fiber.StatusCreated).JSON(dto.OK(data, message))
}
