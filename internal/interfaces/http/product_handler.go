package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/brunocardsx/sys-Obras/internal/application/catalog"
	"github.com/brunocardsx/sys-Obras/internal/application/dto"
)

// ProductHandler trata as requisições HTTP do catálogo de produtos (protegido).
type ProductHandler struct {
	uc *catalog.ProductUseCase
}

// NewProductHandler constrói o handler.
func NewProductHandler(uc *catalog.ProductUseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// Create cria um produto no catálogo.
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := parseBody(c, &in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("código e nome do produto são obrigatórios"))
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return created(c, out, "produto criado com sucesso")
}

// GetByID busca um produto por ID.
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return ok(c, out, "")
}

// List lista todos os produtos do catálogo.
func (h *ProductHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return ok(c, out, "")
}

// Update atualiza um produto existente.
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateProductRequest
	if err := parseBody(c, &in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("corpo inválido"))
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return ok(c, out, "produto atualizado com sucesso")
}

// Delete remove um produto não referenciado por itens de nota.
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return ok(c, nil, "produto removido com sucesso")
}
