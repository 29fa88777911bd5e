package returns

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Alquiler-api/internal/application/dto"
	"github.com/jhoicas/Alquiler-api/internal/application/stock"
	"github.com/jhoicas/Alquiler-api/internal/domain"
	"github.com/jhoicas/Alquiler-api/internal/domain/entity"
	"github.com/jhoicas/Alquiler-api/internal/domain/order"
	"github.com/jhoicas/Alquiler-api/internal/domain/repository"
)

// UseCase procesa retiros con novedades: registra qué líneas volvieron
// dañadas o incompletas y resuelve el pedido cobrando la reposición o
// reintegrando los artículos al stock.
type UseCase struct {
	txRunner TxRunner
	charger  NoveltyCharger
}

// NewUseCase construye el caso de uso.
func NewUseCase(txRunner TxRunner, charger NoveltyCharger) *UseCase {
	return &UseCase{txRunner: txRunner, charger: charger}
}

// ReportNovelties registra las novedades detectadas al retirar y deja el
// pedido en INGRESO_PARCIAL. El precio de reposición de cada línea se
// congela desde el catálogo en este momento. Sin cantidades afectadas ni
// observación, la operación se rechaza como no-op.
func (uc *UseCase) ReportNovelties(ctx context.Context, orderID string, in dto.ReportNoveltyRequest, user string) (*entity.Order, error) {
	total := 0
	for _, l := range in.Lines {
		if l.Quantity < 0 {
			return nil, domain.NewValidation("cantidad afectada negativa para producto %s", l.ProductID)
		}
		total += l.Quantity
	}
	if total == 0 && in.Notes == "" {
		return nil, domain.NewValidation("debe indicar al menos una cantidad afectada o una observación")
	}

	var out *entity.Order
	err := uc.txRunner.RunReturns(ctx, func(
		orderRepo repository.OrderRepository,
		productRepo repository.ProductRepository,
		_ repository.CashRepository,
	) error {
		o, err := orderRepo.GetForUpdate(orderID)
		if err != nil {
			return err
		}
		if o == nil {
			return domain.ErrNotFound
		}

		var novelties []entity.NoveltyItem
		for _, l := range in.Lines {
			if l.Quantity == 0 {
				continue
			}
			item := findItem(o, l.ProductID)
			if item == nil {
				return domain.NewValidation("el producto %s no pertenece al pedido %s", l.ProductID, o.ID)
			}
			if l.Quantity > item.Quantity {
				return domain.NewValidation("cantidad afectada %d supera lo entregado %d de %s", l.Quantity, item.Quantity, item.Name)
			}
			p, err := productRepo.GetByID(l.ProductID)
			if err != nil {
				return err
			}
			if p == nil {
				return domain.NewValidation("producto %s no existe en el catálogo", l.ProductID)
			}
			novelties = append(novelties, entity.NoveltyItem{
				ProductID:        p.ID,
				Name:             item.Name,
				Quantity:         l.Quantity,
				ReplacementPrice: p.ReplacementPrice,
			})
		}

		if err := order.RegisterNovelties(o, novelties, in.Notes); err != nil {
			return err
		}
		o.UpdatedAt = time.Now()
		if err := orderRepo.Update(o); err != nil {
			return err
		}
		out = o
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Resolve cierra un ingreso parcial por una de las dos vías:
//
//   - PAID: cobra Σ(cantidad × precio de reposición) todo-o-nada a través
//     del libro de pagos (recibo RC y espejo en caja incluidos).
//   - REPLACED: reintegra cada cantidad afectada al stock, con una entrada
//     de historial por línea que referencia al pedido; no mueve dinero.
//
// Una novedad solo de observaciones (sin cantidades afectadas) se cierra
// directamente, sin cobro ni reposición. En todos los casos el pedido pasa a
// RETIRO_EXITOSO y queda archivado.
func (uc *UseCase) Resolve(ctx context.Context, orderID string, in dto.ResolveNoveltyRequest, user string) (*dto.ResolveNoveltyResponse, error) {
	if in.Mode != dto.ResolutionPaid && in.Mode != dto.ResolutionReplaced {
		return nil, domain.NewValidation("modo de resolución desconocido: %s", in.Mode)
	}

	var resp dto.ResolveNoveltyResponse
	err := uc.txRunner.RunReturns(ctx, func(
		orderRepo repository.OrderRepository,
		productRepo repository.ProductRepository,
		cashRepo repository.CashRepository,
	) error {
		o, err := orderRepo.GetForUpdate(orderID)
		if err != nil {
			return err
		}
		if o == nil {
			return domain.ErrNotFound
		}
		if o.Status != entity.StatusIngresoParcial {
			return &domain.IllegalTransitionError{From: o.Status, To: entity.StatusRetiroExitoso}
		}

		amountOwed := decimal.Zero
		affected := 0
		for _, n := range o.NoveltyItems {
			amountOwed = amountOwed.Add(n.ReplacementPrice.Mul(decimal.NewFromInt(int64(n.Quantity))))
			affected += n.Quantity
		}
		now := time.Now()
		if affected > 0 {
			switch in.Mode {
			case dto.ResolutionPaid:
				receiptID, change, err := uc.charger.ApplyNoveltyChargeInTx(
					ctx, orderRepo, cashRepo, o, amountOwed, in.Received, in.Method, in.Bank, user, now)
				if err != nil {
					return err
				}
				resp.ReceiptID = receiptID
				resp.Change = change
			case dto.ResolutionReplaced:
				for _, n := range o.NoveltyItems {
					p, err := productRepo.GetForUpdate(n.ProductID)
					if err != nil {
						return err
					}
					if p == nil {
						return domain.NewValidation("producto %s ya no existe en el catálogo", n.ProductID)
					}
					action := fmt.Sprintf("REPOSICIÓN POR NOVEDAD (PEDIDO %s)", o.ID)
					if err := stock.AdjustInTx(productRepo, p, n.Quantity, action, user, now); err != nil {
						return err
					}
				}
			}
		}

		if err := order.ResolveNovelties(o, now); err != nil {
			return err
		}
		o.UpdatedAt = now
		if err := orderRepo.Update(o); err != nil {
			return err
		}
		resp.Order = dto.FromOrder(o)
		resp.AmountOwed = amountOwed
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func findItem(o *entity.Order, productID string) *entity.OrderItem {
	for i := range o.Items {
		if o.Items[i].ProductID == productID {
			return &o.Items[i]
		}
	}
	return nil
}
