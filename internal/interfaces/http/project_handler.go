package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/brunocardsx/sys-Obras/internal/application/analytics"
	"github.com/brunocardsx/sys-Obras/internal/application/catalog"
	"github.com/brunocardsx/sys-Obras/internal/application/dto"
)

// ProjectHandler trata as requisições HTTP de obras (protegido).
type ProjectHandler struct {
	uc        *catalog.ProjectUseCase
	dashboard *analytics.DashboardUseCase
}

// NewProjectHandler constrói o handler.
func NewProjectHandler(uc *catalog.ProjectUseCase, dashboard *analytics.DashboardUseCase) *ProjectHandler {
	return &ProjectHandler{uc: uc, dashboard: dashboard}
}

// Create cria uma obra.
func (h *ProjectHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProjectRequest
	if err := parseBody(c, &in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("nome da obra é obrigatório"))
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return created(c, out, "obra criada com sucesso")
}

// GetByID busca uma obra por ID.
func (h *ProjectHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return ok(c, out, "")
}

// List lista todas as obras.
func (h *ProjectHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return ok(c, out, "")
}

// Update atualiza nome e/ou endereço de uma obra.
func (h *ProjectHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateProjectRequest
	if err := parseBody(c, &in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("corpo inválido"))
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return ok(c, out, "obra atualizada com sucesso")
}

// Delete remove uma obra sem notas associadas.
func (h *ProjectHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return ok(c, nil, "obra removida com sucesso")
}

// Summary devolve o resumo financeiro da obra (total gasto e notas).
func (h *ProjectHandler) Summary(c *fiber.Ctx) error {
	out, err := h.dashboard.ProjectSummary(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return ok(c, out, "")
}
