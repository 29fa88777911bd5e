package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Alquiler-api/internal/application/dto"
	"github.com/jhoicas/Alquiler-api/internal/application/payments"
)

// PaymentHandler maneja cobros, egresos y el reporte de caja.
type PaymentHandler struct {
	uc *payments.UseCase
}

// NewPaymentHandler construye el handler.
func NewPaymentHandler(uc *payments.UseCase) *PaymentHandler {
	return &PaymentHandler{uc: uc}
}

// Apply godoc
// @Summary      Aplicar un pago al pedido
// @Tags         payments
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "Código PD del pedido"
// @Param        body  body  dto.ApplyPaymentRequest  true  "Datos del pago"
// @Success      201   {object}  dto.PaymentResultResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/orders/{id}/payments [post]
func (h *PaymentHandler) Apply(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.ApplyPaymentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.ApplyPayment(c.Context(), id, in, GetUsername(c))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// EntriesByOrder godoc
// @Summary      Asientos de caja de un pedido
// @Tags         cash
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "Código PD del pedido"
// @Success      200  {array}  dto.CashEntryResponse
// @Router       /api/orders/{id}/cash [get]
func (h *PaymentHandler) EntriesByOrder(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.EntriesByOrder(id)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// RegisterExpense godoc
// @Summary      Registrar egreso de caja (vale CC)
// @Tags         cash
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ExpenseRequest  true  "Datos del egreso"
// @Success      201   {object}  dto.CashEntryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/cash/expenses [post]
func (h *PaymentHandler) RegisterExpense(c *fiber.Ctx) error {
	var in dto.ExpenseRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	tx, err := h.uc.RegisterExpense(c.Context(), in, GetUsername(c))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.FromCashTransaction(tx))
}

// Report godoc
// @Summary      Reporte de caja de un rango de fechas
// @Tags         cash
// @Security     Bearer
// @Produce      json
// @Param        from  query  string  true  "Fecha inicio (RFC3339 o 2006-01-02)"
// @Param        to    query  string  true  "Fecha fin (RFC3339 o 2006-01-02)"
// @Success      200   {object}  dto.CashReportResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/cash/report [get]
func (h *PaymentHandler) Report(c *fiber.Ctx) error {
	from, err := parseDate(c.Query("from"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "from inválido, use RFC3339 o 2006-01-02"})
	}
	to, err := parseDate(c.Query("to"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "to inválido, use RFC3339 o 2006-01-02"})
	}
	// Un día suelto cubre hasta su medianoche siguiente.
	if to.Hour() == 0 && to.Minute() == 0 && to.Second() == 0 {
		to = to.Add(24 * time.Hour)
	}
	out, err := h.uc.Report(from, to)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// DeleteEntry godoc
// @Summary      Anular un asiento de caja
// @Tags         cash
// @Security     Bearer
// @Param        id  path  string  true  "Código del asiento"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/cash/entries/{id} [delete]
func (h *PaymentHandler) DeleteEntry(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	if err := h.uc.DeleteEntry(id); err != nil {
		return respondDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}
