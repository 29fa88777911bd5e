package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Alquiler-api/internal/domain/entity"
)

// OrderRepository define el puerto de persistencia para Order (DIP).
type OrderRepository interface {
	Create(order *entity.Order) error
	GetByID(id string) (*entity.Order, error)
	Update(order *entity.Order) error
	// GetForUpdate bloquea la fila del pedido (SELECT FOR UPDATE) para
	// serializar pagos y resoluciones concurrentes sobre el mismo pedido.
	GetForUpdate(id string) (*entity.Order, error)
	ListByStatus(statuses []string, limit, offset int) ([]*entity.Order, error)
	// ListDeliveredBefore lista pedidos entregados o en desarrollo cuya fecha
	// fin de evento ya pasó. Alimenta el job de retiros.
	ListDeliveredBefore(cutoff time.Time) ([]*entity.Order, error)
	// ListWithOutstanding lista pedidos no anulados ni archivados con saldo
	// pendiente mayor al umbral (cartera).
	ListWithOutstanding(threshold decimal.Decimal) ([]*entity.Order, error)
	Delete(id string) error
}
