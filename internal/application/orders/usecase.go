package orders

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Alquiler-api/internal/application/dto"
	"github.com/jhoicas/Alquiler-api/internal/domain"
	"github.com/jhoicas/Alquiler-api/internal/domain/entity"
	"github.com/jhoicas/Alquiler-api/internal/domain/order"
	"github.com/jhoicas/Alquiler-api/internal/domain/pricing"
	"github.com/jhoicas/Alquiler-api/internal/domain/repository"
	"github.com/jhoicas/Alquiler-api/internal/domain/sequence"
)

// PortfolioThreshold saldo mínimo para que un pedido cuente como cartera.
var PortfolioThreshold = decimal.NewFromFloat(0.01)

// UseCase gestiona el ciclo de vida del pedido: creación, edición previa al
// despacho, colas de trabajo y transiciones de estado. Los totales se
// recalculan siempre aquí, nunca se aceptan del cliente.
type UseCase struct {
	orders   repository.OrderRepository
	products repository.ProductRepository
	clients  repository.ClientRepository
	codes    CodeIssuer
	taxRate  decimal.Decimal
	leadDays int
}

// NewUseCase construye el caso de uso. taxRate y leadDays vienen de
// configuración.
func NewUseCase(
	orders repository.OrderRepository,
	products repository.ProductRepository,
	clients repository.ClientRepository,
	codes CodeIssuer,
	taxRate decimal.Decimal,
	leadDays int,
) *UseCase {
	return &UseCase{
		orders:   orders,
		products: products,
		clients:  clients,
		codes:    codes,
		taxRate:  taxRate,
		leadDays: leadDays,
	}
}

// buildItems congela código, nombre y precio de catálogo en las líneas y
// conserva las marcas de servicio puntual y exclusión de descuento.
func (uc *UseCase) buildItems(reqs []dto.OrderItemRequest) ([]entity.OrderItem, error) {
	if len(reqs) == 0 {
		return nil, domain.NewValidation("el pedido no tiene líneas")
	}
	items := make([]entity.OrderItem, 0, len(reqs))
	for _, r := range reqs {
		if r.Quantity < 1 {
			return nil, domain.NewValidation("cantidad inválida para producto %s", r.ProductID)
		}
		p, err := uc.products.GetByID(r.ProductID)
		if err != nil {
			return nil, err
		}
		if p == nil {
			return nil, domain.NewValidation("producto %s no existe en el catálogo", r.ProductID)
		}
		items = append(items, entity.OrderItem{
			ProductID:  p.ID,
			Code:       p.ID,
			Name:       p.Name,
			Quantity:   r.Quantity,
			Price:      p.RentalPrice,
			OneOff:     r.OneOff,
			NoDiscount: r.NoDiscount,
		})
	}
	return items, nil
}

// quote recalcula el desglose monetario del pedido y lo escribe en el agregado.
func (uc *UseCase) quote(o *entity.Order) {
	lines := make([]pricing.Line, 0, len(o.Items))
	for _, it := range o.Items {
		lines = append(lines, pricing.Line{
			Price:      it.Price,
			Quantity:   it.Quantity,
			OneOff:     it.OneOff,
			NoDiscount: it.NoDiscount,
		})
	}
	transport := decimal.Zero
	if o.HasTransport {
		transport = o.TransportValue
	}
	q := pricing.Calculate(pricing.Input{
		Lines:         lines,
		EventStart:    o.EventDateStart,
		EventEnd:      o.EventDateEnd,
		DiscountType:  o.DiscountType,
		DiscountValue: o.DiscountValue,
		ApplyTax:      o.ApplyTax,
		TaxRate:       uc.taxRate,
		Transport:     transport,
	})
	o.RentalDays = q.RentalDays
	o.Subtotal = q.Subtotal
	o.Tax = q.Tax
	o.Total = q.Total
}

// Create registra un pedido nuevo, como proforma o venta directa.
func (uc *UseCase) Create(ctx context.Context, in dto.CreateOrderRequest, user string) (*entity.Order, error) {
	client, err := uc.clients.GetByID(in.ClientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.NewValidation("cliente %s no existe", in.ClientID)
	}
	items, err := uc.buildItems(in.Items)
	if err != nil {
		return nil, err
	}
	if in.EventDateEnd.Before(in.EventDateStart) {
		return nil, domain.NewValidation("la fecha fin del evento es anterior al inicio")
	}
	logistics := in.LogisticsType
	if logistics == "" {
		if in.HasTransport {
			logistics = entity.LogisticsConTransporte
		} else {
			logistics = entity.LogisticsSinTransporte
		}
	}
	discountType := in.DiscountType
	if discountType == "" {
		discountType = entity.DiscountNominal
	}

	id, err := uc.codes.NextCode(ctx, sequence.PrefixOrder)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	o := &entity.Order{
		ID:              id,
		ClientID:        client.ID,
		ClientName:      client.Name,
		Status:          entity.StatusProforma,
		OrderDate:       now,
		EventDateStart:  in.EventDateStart,
		EventDateEnd:    in.EventDateEnd,
		Items:           items,
		HasTransport:    in.HasTransport,
		TransportValue:  in.TransportValue,
		DeliveryAddress: in.DeliveryAddress,
		DiscountType:    discountType,
		DiscountValue:   in.DiscountValue,
		ApplyTax:        in.ApplyTax,
		PaidAmount:      decimal.Zero,
		LogisticsType:   logistics,
		CreatedBy:       user,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	uc.quote(o)
	if in.Confirm {
		if err := order.Confirm(o); err != nil {
			return nil, err
		}
	}
	if err := uc.orders.Create(o); err != nil {
		return nil, err
	}
	return o, nil
}

// Update edita un pedido antes del despacho y recalcula los totales.
func (uc *UseCase) Update(id string, in dto.UpdateOrderRequest) (*entity.Order, error) {
	o, err := uc.orders.GetByID(id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, domain.ErrNotFound
	}
	if o.Status != entity.StatusProforma && o.Status != entity.StatusConfirmada {
		return nil, domain.NewValidation("el pedido %s ya fue despachado y no admite edición", id)
	}
	items, err := uc.buildItems(in.Items)
	if err != nil {
		return nil, err
	}
	if in.EventDateEnd.Before(in.EventDateStart) {
		return nil, domain.NewValidation("la fecha fin del evento es anterior al inicio")
	}
	o.Items = items
	o.EventDateStart = in.EventDateStart
	o.EventDateEnd = in.EventDateEnd
	o.HasTransport = in.HasTransport
	o.TransportValue = in.TransportValue
	o.DeliveryAddress = in.DeliveryAddress
	if in.DiscountType != "" {
		o.DiscountType = in.DiscountType
	}
	o.DiscountValue = in.DiscountValue
	o.ApplyTax = in.ApplyTax
	if in.LogisticsType != "" {
		o.LogisticsType = in.LogisticsType
	}
	if in.EBNumber != "" {
		o.EBNumber = in.EBNumber
	}
	uc.quote(o)
	if o.PaidAmount.GreaterThan(o.Total) {
		return nil, domain.NewValidation("el nuevo total %s es menor que lo ya cobrado %s", o.Total, o.PaidAmount)
	}
	o.UpdatedAt = time.Now()
	if err := uc.orders.Update(o); err != nil {
		return nil, err
	}
	return o, nil
}

// GetByID obtiene un pedido por su código.
func (uc *UseCase) GetByID(id string) (*entity.Order, error) {
	return uc.orders.GetByID(id)
}

// List lista pedidos filtrando por estados.
func (uc *UseCase) List(statuses []string, limit, offset int) ([]*entity.Order, error) {
	return uc.orders.ListByStatus(statuses, limit, offset)
}

// DispatchQueue pedidos confirmados o en despacho.
func (uc *UseCase) DispatchQueue(limit, offset int) ([]*entity.Order, error) {
	return uc.orders.ListByStatus([]string{entity.StatusConfirmada, entity.StatusEnProceso}, limit, offset)
}

// ReturnsQueue pedidos pendientes de retiro.
func (uc *UseCase) ReturnsQueue(limit, offset int) ([]*entity.Order, error) {
	return uc.orders.ListByStatus([]string{entity.StatusPorRetirar}, limit, offset)
}

// PendingsQueue pedidos con novedades sin resolver.
func (uc *UseCase) PendingsQueue(limit, offset int) ([]*entity.Order, error) {
	return uc.orders.ListByStatus([]string{entity.StatusIngresoParcial}, limit, offset)
}

// Portfolio pedidos vivos con saldo pendiente, más el total adeudado.
func (uc *UseCase) Portfolio() ([]*entity.Order, decimal.Decimal, error) {
	list, err := uc.orders.ListWithOutstanding(PortfolioThreshold)
	if err != nil {
		return nil, decimal.Zero, err
	}
	total := decimal.Zero
	for _, o := range list {
		total = total.Add(o.Outstanding())
	}
	return list, total, nil
}

// Transition mueve el pedido al estado destino. already=true cuando el
// despacho ya estaba iniciado (no-op informado, no error).
func (uc *UseCase) Transition(id, target, notes string) (o *entity.Order, already bool, err error) {
	o, err = uc.orders.GetByID(id)
	if err != nil {
		return nil, false, err
	}
	if o == nil {
		return nil, false, domain.ErrNotFound
	}

	now := time.Now()
	switch target {
	case entity.StatusConfirmada:
		err = order.Confirm(o)
	case entity.StatusEnProceso:
		already, err = order.StartDispatch(o, now, uc.leadDays)
		if already {
			return o, true, nil
		}
	case entity.DispatchCargado:
		err = order.MarkLoaded(o)
	case entity.StatusEntregado:
		err = order.Deliver(o)
		if err == nil && notes != "" {
			o.NoveltyNotes = notes
		}
	case entity.StatusEnDesarrollo:
		err = order.MarkInUse(o)
	case entity.StatusPorRetirar:
		err = order.MarkDueForReturn(o, now)
	case entity.StatusRetiroExitoso:
		err = order.CompleteReturn(o, now)
	case entity.StatusAnulado:
		err = order.Void(o)
	case entity.StatusArchivado:
		err = order.Archive(o, now)
	default:
		err = domain.NewValidation("estado destino desconocido: %s", target)
	}
	if err != nil {
		return nil, false, err
	}
	o.UpdatedAt = now
	if err := uc.orders.Update(o); err != nil {
		return nil, false, err
	}
	return o, false, nil
}

// Delete purga administrativamente un pedido. Solo anulados o archivados;
// el cierre normal es archivar, no borrar.
func (uc *UseCase) Delete(id string) error {
	o, err := uc.orders.GetByID(id)
	if err != nil {
		return err
	}
	if o == nil {
		return domain.ErrNotFound
	}
	if o.Status != entity.StatusAnulado && o.Status != entity.StatusArchivado {
		return domain.NewValidation("solo se purgan pedidos anulados o archivados")
	}
	return uc.orders.Delete(id)
}
