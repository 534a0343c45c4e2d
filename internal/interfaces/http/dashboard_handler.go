package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/brunocardsx/sys-Obras/internal/application/analytics"
	"github.com/brunocardsx/sys-Obras/internal/application/dto"
)

// DashboardHandler trata as requisições do painel financeiro (protegido).
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler constrói o handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Metrics devolve as métricas agregadas do painel. Aceita startDate e
// endDate (YYYY-MM-DD, janela inclusiva sobre a data de emissão).
func (h *DashboardHandler) Metrics(c *fiber.Ctx) error {
	start, err := parseQueryDate(c.Query("startDate"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("startDate inválida: use o formato YYYY-MM-DD"))
	}
	end, err := parseQueryDate(c.Query("endDate"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("endDate inválida: use o formato YYYY-MM-DD"))
	}
	out, err := h.uc.Metrics(c.Context(), start, end)
	if err != nil {
		return respondError(c, err)
	}
	return ok(c, out, "")
}

func parseQueryDate(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
