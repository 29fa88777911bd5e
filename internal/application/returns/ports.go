package returns

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Alquiler-api/internal/domain/entity"
	"github.com/jhoicas/Alquiler-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Pedido, stock y caja confirman juntos.
type TxRunner interface {
	RunReturns(ctx context.Context, fn func(
		orderRepo repository.OrderRepository,
		productRepo repository.ProductRepository,
		cashRepo repository.CashRepository,
	) error) error
}

// NoveltyCharger cobra el valor de reposición dentro de la transacción del
// caller (lo implementa el libro de pagos).
type NoveltyCharger interface {
	ApplyNoveltyChargeInTx(
		ctx context.Context,
		orderRepo repository.OrderRepository,
		cashRepo repository.CashRepository,
		o *entity.Order,
		amountOwed, received decimal.Decimal,
		method, bank, user string,
		now time.Time,
	) (receiptID string, change decimal.Decimal, err error)
}
