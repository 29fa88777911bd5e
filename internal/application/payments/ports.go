package payments

import (
	"context"

	"github.com/jhoicas/Alquiler-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. La mutación del pedido y su espejo en caja
// confirman o revierten juntos.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		orderRepo repository.OrderRepository,
		cashRepo repository.CashRepository,
	) error) error
}

// CodeIssuer emite códigos secuenciales de documento.
type CodeIssuer interface {
	NextCode(ctx context.Context, prefix string) (string, error)
}
