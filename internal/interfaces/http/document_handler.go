package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Alquiler-api/internal/application/documents"
	"github.com/jhoicas/Alquiler-api/internal/application/dto"
)

// DocumentHandler sirve los documentos PDF del pedido.
type DocumentHandler struct {
	uc *documents.UseCase
}

// NewDocumentHandler construye el handler.
func NewDocumentHandler(uc *documents.UseCase) *DocumentHandler {
	return &DocumentHandler{uc: uc}
}

// Receipt godoc
// @Summary      Ticket PDF de un recibo RC
// @Tags         documents
// @Security     Bearer
// @Produce      application/pdf
// @Param        id         path  string  true  "Código PD del pedido"
// @Param        receiptId  path  string  true  "Código RC del recibo"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orders/{id}/receipts/{receiptId}/pdf [get]
func (h *DocumentHandler) Receipt(c *fiber.Ctx) error {
	id := c.Params("id")
	receiptID := c.Params("receiptId")
	if id == "" || receiptID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id y receiptId son requeridos"})
	}
	pdf, err := h.uc.Receipt(c.Context(), id, receiptID)
	if err != nil {
		return respondDomainError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="`+receiptID+`.pdf"`)
	return c.Send(pdf)
}

// DeliveryGuide godoc
// @Summary      Guía de entrega PDF del pedido
// @Tags         documents
// @Security     Bearer
// @Produce      application/pdf
// @Param        id  path  string  true  "Código PD del pedido"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orders/{id}/delivery-guide/pdf [get]
func (h *DocumentHandler) DeliveryGuide(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	pdf, err := h.uc.DeliveryGuide(c.Context(), id)
	if err != nil {
		return respondDomainError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="`+id+`.pdf"`)
	return c.Send(pdf)
}
