package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Alquiler-api/internal/application/dto"
	"github.com/jhoicas/Alquiler-api/internal/application/returns"
)

// ReturnsHandler maneja novedades de retiro y su resolución.
type ReturnsHandler struct {
	uc *returns.UseCase
}

// NewReturnsHandler construye el handler.
func NewReturnsHandler(uc *returns.UseCase) *ReturnsHandler {
	return &ReturnsHandler{uc: uc}
}

// ReportNovelties godoc
// @Summary      Registrar novedades al retirar (deja el pedido en ingreso parcial)
// @Tags         returns
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "Código PD del pedido"
// @Param        body  body  dto.ReportNoveltyRequest  true  "Líneas afectadas y observación"
// @Success      200   {object}  dto.OrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/orders/{id}/novelties [post]
func (h *ReturnsHandler) ReportNovelties(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.ReportNoveltyRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	o, err := h.uc.ReportNovelties(c.Context(), id, in, GetUsername(c))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(dto.FromOrder(o))
}

// Resolve godoc
// @Summary      Resolver un ingreso parcial (cobro o reposición)
// @Tags         returns
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "Código PD del pedido"
// @Param        body  body  dto.ResolveNoveltyRequest  true  "Modo PAID o REPLACED"
// @Success      200   {object}  dto.ResolveNoveltyResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/orders/{id}/novelties/resolve [post]
func (h *ReturnsHandler) Resolve(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.ResolveNoveltyRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Resolve(c.Context(), id, in, GetUsername(c))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}
