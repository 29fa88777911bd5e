package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Alquiler-api/internal/application/dto"
	"github.com/jhoicas/Alquiler-api/internal/application/orders"
	"github.com/jhoicas/Alquiler-api/internal/domain/entity"
)

// OrderHandler maneja las peticiones HTTP del ciclo de vida del pedido.
type OrderHandler struct {
	uc *orders.UseCase
}

// NewOrderHandler construye el handler.
func NewOrderHandler(uc *orders.UseCase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

func pageParams(c *fiber.Ctx) (limit, offset int) {
	limit = c.QueryInt("limit", 20)
	offset = c.QueryInt("offset", 0)
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

func orderList(list []*entity.Order, limit, offset int) dto.OrderListResponse {
	items := make([]dto.OrderResponse, 0, len(list))
	for _, o := range list {
		items = append(items, dto.FromOrder(o))
	}
	return dto.OrderListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}
}

// Create godoc
// @Summary      Crear pedido (proforma o venta directa)
// @Tags         orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateOrderRequest  true  "Datos del pedido"
// @Success      201   {object}  dto.OrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/orders [post]
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	o, err := h.uc.Create(c.Context(), in, GetUsername(c))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.FromOrder(o))
}

// GetByID godoc
// @Summary      Obtener pedido por código
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "Código PD del pedido"
// @Success      200  {object}  dto.OrderResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orders/{id} [get]
func (h *OrderHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	o, err := h.uc.GetByID(id)
	if err != nil {
		return respondDomainError(c, err)
	}
	if o == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "pedido no encontrado"})
	}
	return c.JSON(dto.FromOrder(o))
}

// List godoc
// @Summary      Listar pedidos por estado
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        status  query  string  false  "Estados separados por coma"
// @Param        limit   query  int     false  "Límite"  default(20)
// @Param        offset  query  int     false  "Offset"  default(0)
// @Success      200     {object}  dto.OrderListResponse
// @Router       /api/orders [get]
func (h *OrderHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	var statuses []string
	if raw := c.Query("status"); raw != "" {
		for _, s := range strings.Split(raw, ",") {
			if s = strings.TrimSpace(s); s != "" {
				statuses = append(statuses, s)
			}
		}
	}
	list, err := h.uc.List(statuses, limit, offset)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(orderList(list, limit, offset))
}

// Update godoc
// @Summary      Editar pedido antes del despacho
// @Tags         orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "Código PD del pedido"
// @Param        body  body  dto.UpdateOrderRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.OrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/orders/{id} [put]
func (h *OrderHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.UpdateOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	o, err := h.uc.Update(id, in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(dto.FromOrder(o))
}

// Transition godoc
// @Summary      Mover el pedido de estado
// @Tags         orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "Código PD del pedido"
// @Param        body  body  dto.TransitionRequest  true  "Estado destino"
// @Success      200   {object}  dto.OrderResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/orders/{id}/transition [post]
func (h *OrderHandler) Transition(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.TransitionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Target == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "target es requerido"})
	}
	o, already, err := h.uc.Transition(id, in.Target, in.Notes)
	if err != nil {
		return respondDomainError(c, err)
	}
	// Despacho repetido: no-op informado, no error.
	if already {
		c.Set("X-Already-Transitioned", "true")
	}
	return c.JSON(dto.FromOrder(o))
}

// DispatchQueue godoc
// @Summary      Cola de despacho (confirmados y en proceso)
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.OrderListResponse
// @Router       /api/orders/queues/dispatch [get]
func (h *OrderHandler) DispatchQueue(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	list, err := h.uc.DispatchQueue(limit, offset)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(orderList(list, limit, offset))
}

// ReturnsQueue godoc
// @Summary      Cola de retiros (fecha fin vencida)
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.OrderListResponse
// @Router       /api/orders/queues/returns [get]
func (h *OrderHandler) ReturnsQueue(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	list, err := h.uc.ReturnsQueue(limit, offset)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(orderList(list, limit, offset))
}

// PendingsQueue godoc
// @Summary      Cola de pendientes (novedades sin resolver)
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.OrderListResponse
// @Router       /api/orders/queues/pendings [get]
func (h *OrderHandler) PendingsQueue(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	list, err := h.uc.PendingsQueue(limit, offset)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(orderList(list, limit, offset))
}

// Portfolio godoc
// @Summary      Cartera: pedidos vivos con saldo pendiente
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.PortfolioResponse
// @Router       /api/orders/portfolio [get]
func (h *OrderHandler) Portfolio(c *fiber.Ctx) error {
	list, total, err := h.uc.Portfolio()
	if err != nil {
		return respondDomainError(c, err)
	}
	items := make([]dto.OrderResponse, 0, len(list))
	for _, o := range list {
		items = append(items, dto.FromOrder(o))
	}
	return c.JSON(dto.PortfolioResponse{Items: items, TotalOutstanding: total})
}

// Delete godoc
// @Summary      Purgar pedido anulado o archivado
// @Tags         orders
// @Security     Bearer
// @Param        id  path  string  true  "Código PD del pedido"
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orders/{id} [delete]
func (h *OrderHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	if err := h.uc.Delete(id); err != nil {
		return respondDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
