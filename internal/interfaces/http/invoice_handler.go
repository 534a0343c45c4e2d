package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/brunocardsx/sys-Obras/internal/application/dto"
	"github.com/brunocardsx/sys-Obras/internal/application/ledger"
)

// InvoiceHandler trata as requisições HTTP de notas fiscais (protegido).
type InvoiceHandler struct {
	uc *ledger.InvoiceUseCase
}

// NewInvoiceHandler constrói o handler.
func NewInvoiceHandler(uc *ledger.InvoiceUseCase) *InvoiceHandler {
	return &InvoiceHandler{uc: uc}
}

// Create lança uma nota fiscal com seus itens (operação atômica).
func (h *InvoiceHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateInvoiceRequest
	if err := parseBody(c, &in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("número, obra, data de emissão e ao menos um item são obrigatórios"))
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return created(c, out, "nota fiscal criada com sucesso")
}

// GetByID busca uma nota (com itens) por ID.
func (h *InvoiceHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return ok(c, out, "")
}

// List lista notas com filtro opcional de janela de datas e número parcial.
func (h *InvoiceHandler) List(c *fiber.Ctx) error {
	var q dto.InvoiceFilterQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("filtros inválidos"))
	}
	out, err := h.uc.List(c.Context(), q)
	if err != nil {
		return respondError(c, err)
	}
	return ok(c, out, "")
}

// Update atualiza os campos escalares da cabeça da nota.
func (h *InvoiceHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateInvoiceRequest
	if err := parseBody(c, &in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("corpo inválido"))
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return ok(c, out, "nota fiscal atualizada com sucesso")
}

// Delete remove a nota e todos os seus itens na mesma transação.
func (h *InvoiceHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return ok(c, nil, "nota fiscal removida com sucesso")
}
