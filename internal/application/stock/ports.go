package stock

import (
	"context"

	"github.com/jhoicas/Alquiler-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD con el
// repositorio de productos atado a esa tx.
type TxRunner interface {
	RunStock(ctx context.Context, fn func(productRepo repository.ProductRepository) error) error
}
