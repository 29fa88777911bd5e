package repository

import (
	"time"

	"github.com/jhoicas/Alquiler-api/internal/domain/entity"
)

// CashRepository define el puerto del libro de caja (solo-anexar, salvo
// anulación administrativa).
type CashRepository interface {
	Create(tx *entity.CashTransaction) error
	GetByID(id string) (*entity.CashTransaction, error)
	ListBetween(from, to time.Time) ([]*entity.CashTransaction, error)
	ListByOrder(orderID string) ([]*entity.CashTransaction, error)
	Delete(id string) error
}
