package stock

import (
	"context"
	"time"

	"github.com/jhoicas/Alquiler-api/internal/domain"
	"github.com/jhoicas/Alquiler-api/internal/domain/entity"
	"github.com/jhoicas/Alquiler-api/internal/domain/repository"
)

// UseCase mantiene el stock por producto con historial solo-anexar.
// Ninguna mutación de stock ocurre sin su entrada de historial, y un ajuste
// que dejaría existencias negativas se rechaza sin escribir nada.
type UseCase struct {
	txRunner TxRunner
}

// NewUseCase construye el caso de uso.
func NewUseCase(txRunner TxRunner) *UseCase {
	return &UseCase{txRunner: txRunner}
}

// AdjustInTx aplica un delta de stock sobre un producto ya bloqueado
// (GetForUpdate) usando el repositorio del caller, misma transacción.
// Lo reutiliza la resolución de novedades en modo reposición.
func AdjustInTx(
	productRepo repository.ProductRepository,
	p *entity.Product,
	delta int,
	action, actor string,
	now time.Time,
) error {
	if p.Stock+delta < 0 {
		return &domain.NegativeStockError{ProductID: p.ID, Current: p.Stock, Delta: delta}
	}
	p.Stock += delta
	p.History = append(p.History, entity.StockHistoryEntry{
		Date:     now,
		Action:   action,
		User:     actor,
		Quantity: delta,
	})
	p.UpdatedAt = now
	return productRepo.Update(p)
}

// Adjust ajusta el stock de un producto en una transacción propia, con
// bloqueo de fila. Devuelve el producto actualizado.
func (uc *UseCase) Adjust(ctx context.Context, productID string, delta int, reason, actor string) (*entity.Product, error) {
	if delta == 0 {
		return nil, domain.NewValidation("el ajuste de stock no puede ser cero")
	}
	if reason == "" {
		return nil, domain.NewValidation("el ajuste de stock requiere un motivo")
	}
	var out *entity.Product
	err := uc.txRunner.RunStock(ctx, func(productRepo repository.ProductRepository) error {
		p, err := productRepo.GetForUpdate(productID)
		if err != nil {
			return err
		}
		if p == nil {
			return domain.ErrNotFound
		}
		if err := AdjustInTx(productRepo, p, delta, reason, actor, time.Now()); err != nil {
			return err
		}
		out = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
