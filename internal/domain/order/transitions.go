// Package order implementa la máquina de estados del pedido. Las funciones
// mutan el agregado solo cuando la transición es legal; ante una transición
// ilegal devuelven *domain.IllegalTransitionError y dejan el pedido intacto.
package order

import (
	"time"

	"github.com/jhoicas/Alquiler-api/internal/domain"
	"github.com/jhoicas/Alquiler-api/internal/domain/entity"
)

// Saltos legales del ciclo de vida. Toda mutación de Status pasa por aquí.
var transitions = map[string][]string{
	entity.StatusProforma:       {entity.StatusConfirmada, entity.StatusAnulado},
	entity.StatusConfirmada:     {entity.StatusEnProceso, entity.StatusAnulado},
	entity.StatusEnProceso:      {entity.StatusEntregado},
	entity.StatusEntregado:      {entity.StatusEnDesarrollo, entity.StatusPorRetirar},
	entity.StatusEnDesarrollo:   {entity.StatusPorRetirar},
	entity.StatusPorRetirar:     {entity.StatusRetiroExitoso, entity.StatusIngresoParcial},
	entity.StatusIngresoParcial: {entity.StatusRetiroExitoso},
	entity.StatusRetiroExitoso:  {entity.StatusArchivado},
}

func canMove(from, to string) bool {
	for _, t := range transitions[from] {
		if t == to {
			return true
		}
	}
	return false
}

func illegal(from, to string) error {
	return &domain.IllegalTransitionError{From: from, To: to}
}

// Confirm pasa una proforma a venta confirmada. Exige al menos una línea
// y un cliente vinculado.
func Confirm(o *entity.Order) error {
	if !canMove(o.Status, entity.StatusConfirmada) {
		return illegal(o.Status, entity.StatusConfirmada)
	}
	if len(o.Items) == 0 {
		return domain.NewValidation("el pedido no tiene líneas")
	}
	if o.ClientID == "" {
		return domain.NewValidation("el pedido no tiene cliente vinculado")
	}
	o.Status = entity.StatusConfirmada
	return nil
}

// StartDispatch inicia el despacho. Solo se permite dentro de la ventana de
// leadDays días previos al inicio del evento. Repetir el despacho no es un
// error: devuelve already=true sin tocar el pedido.
func StartDispatch(o *entity.Order, now time.Time, leadDays int) (already bool, err error) {
	if o.Status == entity.StatusEnProceso {
		return true, nil
	}
	if !canMove(o.Status, entity.StatusEnProceso) {
		return false, illegal(o.Status, entity.StatusEnProceso)
	}
	window := time.Duration(leadDays) * 24 * time.Hour
	if o.EventDateStart.Sub(now) > window {
		return false, illegal(o.Status, entity.StatusEnProceso)
	}
	o.Status = entity.StatusEnProceso
	o.DispatchState = ""
	return false, nil
}

// MarkLoaded registra la carga del camión. Solo aplica a pedidos con
// transporte y en despacho.
func MarkLoaded(o *entity.Order) error {
	if o.Status != entity.StatusEnProceso {
		return illegal(o.Status, entity.StatusEnProceso)
	}
	if o.LogisticsType != entity.LogisticsConTransporte {
		return domain.NewValidation("el pedido no tiene logística de transporte")
	}
	o.DispatchState = entity.DispatchCargado
	return nil
}

// Deliver marca la mercadería como entregada. Con transporte exige el
// sub-estado CARGADO previo; el retiro en bodega entrega directo.
func Deliver(o *entity.Order) error {
	if !canMove(o.Status, entity.StatusEntregado) {
		return illegal(o.Status, entity.StatusEntregado)
	}
	if o.LogisticsType == entity.LogisticsConTransporte {
		if o.DispatchState != entity.DispatchCargado {
			return domain.NewValidation("el pedido con transporte debe cargarse antes de entregar")
		}
		o.DispatchState = entity.DispatchEntregadoDomicilio
	} else {
		o.DispatchState = entity.DispatchEntregadoBodega
	}
	o.Status = entity.StatusEntregado
	return nil
}

// MarkInUse marca el evento en curso.
func MarkInUse(o *entity.Order) error {
	if !canMove(o.Status, entity.StatusEnDesarrollo) {
		return illegal(o.Status, entity.StatusEnDesarrollo)
	}
	o.Status = entity.StatusEnDesarrollo
	return nil
}

// MarkDueForReturn pasa a POR_RETIRAR un pedido entregado cuya fecha fin ya
// venció. Lo invoca el job diario de retiros.
func MarkDueForReturn(o *entity.Order, now time.Time) error {
	if !canMove(o.Status, entity.StatusPorRetirar) {
		return illegal(o.Status, entity.StatusPorRetirar)
	}
	if now.Before(o.EventDateEnd) {
		return domain.NewValidation("el evento aún no termina")
	}
	o.Status = entity.StatusPorRetirar
	return nil
}

// CompleteReturn cierra un retiro sin novedades y archiva el pedido.
func CompleteReturn(o *entity.Order, now time.Time) error {
	if o.Status != entity.StatusPorRetirar {
		return illegal(o.Status, entity.StatusRetiroExitoso)
	}
	o.Status = entity.StatusRetiroExitoso
	at := now
	o.ArchivedAt = &at
	return nil
}

// RegisterNovelties registra novedades al retirar y deja el pedido en
// INGRESO_PARCIAL, pendiente de resolución.
func RegisterNovelties(o *entity.Order, items []entity.NoveltyItem, notes string) error {
	if !canMove(o.Status, entity.StatusIngresoParcial) {
		return illegal(o.Status, entity.StatusIngresoParcial)
	}
	o.Status = entity.StatusIngresoParcial
	o.NoveltyItems = items
	o.NoveltyNotes = notes
	o.NoveltiesResolved = false
	return nil
}

// ResolveNovelties cierra un ingreso parcial ya resuelto (pagado o repuesto)
// y archiva el pedido. Las cantidades afectadas quedan fijas.
func ResolveNovelties(o *entity.Order, now time.Time) error {
	if o.Status != entity.StatusIngresoParcial {
		return illegal(o.Status, entity.StatusRetiroExitoso)
	}
	o.Status = entity.StatusRetiroExitoso
	o.NoveltiesResolved = true
	for i := range o.NoveltyItems {
		o.NoveltyItems[i].Resolved = true
	}
	at := now
	o.ArchivedAt = &at
	return nil
}

// Void anula el pedido. Solo antes del despacho; la anulación es terminal y
// excluye el pedido de caja y cartera.
func Void(o *entity.Order) error {
	if !canMove(o.Status, entity.StatusAnulado) {
		return illegal(o.Status, entity.StatusAnulado)
	}
	o.Status = entity.StatusAnulado
	return nil
}

// Archive archiva un pedido cerrado.
func Archive(o *entity.Order, now time.Time) error {
	if !canMove(o.Status, entity.StatusArchivado) {
		return illegal(o.Status, entity.StatusArchivado)
	}
	o.Status = entity.StatusArchivado
	if o.ArchivedAt == nil {
		at := now
		o.ArchivedAt = &at
	}
	return nil
}
