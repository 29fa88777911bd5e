// Package jobs agrupa los trabajos programados del negocio y su scheduler
// cron.
package jobs

import (
	"time"

	"github.com/jhoicas/Alquiler-api/internal/domain/order"
	"github.com/jhoicas/Alquiler-api/internal/domain/repository"
	"github.com/jhoicas/Alquiler-api/pkg/logger"
)

// ReturnsJob barre los pedidos entregados cuya fecha fin de evento ya pasó
// y los marca POR_RETIRAR. Corre a diario; la operación es idempotente
// porque el barrido solo lee pedidos ENTREGADO o EN_DESARROLLO.
type ReturnsJob struct {
	orders repository.OrderRepository
	log    *logger.Logger
}

// NewReturnsJob construye el job.
func NewReturnsJob(orders repository.OrderRepository, log *logger.Logger) *ReturnsJob {
	return &ReturnsJob{orders: orders, log: log.Component("returns_sweep")}
}

// Run ejecuta un barrido. Un pedido que falla no corta el resto.
func (j *ReturnsJob) Run() {
	now := time.Now()
	list, err := j.orders.ListDeliveredBefore(now)
	if err != nil {
		j.log.Error().Err(err).Msg("no se pudo listar pedidos vencidos")
		return
	}
	marked := 0
	for _, o := range list {
		if err := order.MarkDueForReturn(o, now); err != nil {
			j.log.Warn().Err(err).Str("order_id", o.ID).Msg("pedido vencido no transicionable")
			continue
		}
		o.UpdatedAt = now
		if err := j.orders.Update(o); err != nil {
			j.log.Error().Err(err).Str("order_id", o.ID).Msg("no se pudo marcar pedido por retirar")
			continue
		}
		marked++
	}
	j.log.Info().Int("scanned", len(list)).Int("marked", marked).Msg("barrido de retiros completado")
}
