package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Alquiler-api/internal/domain"
	"github.com/jhoicas/Alquiler-api/internal/domain/entity"
	"github.com/jhoicas/Alquiler-api/internal/domain/repository"
)

var _ repository.CashRepository = (*CashRepo)(nil)

// CashRepo implementación del puerto CashRepository sobre PostgreSQL
// (usable con pool o tx).
type CashRepo struct {
	q Querier
}

// NewCashRepository construye el adaptador de persistencia del libro de caja.
func NewCashRepository(q Querier) *CashRepo {
	return &CashRepo{q: q}
}

const cashColumns = `id, order_id, amount, change, type, category, reason, beneficiary, method, date, "user"`

func scanCash(row pgxScanner) (*entity.CashTransaction, error) {
	var t entity.CashTransaction
	err := row.Scan(
		&t.ID, &t.OrderID, &t.Amount, &t.Change, &t.Type, &t.Category,
		&t.Reason, &t.Beneficiary, &t.Method, &t.Date, &t.User,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// Create persiste un asiento de caja.
func (r *CashRepo) Create(t *entity.CashTransaction) error {
	query := `
		INSERT INTO cash (` + cashColumns + `)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)`
	_, err := r.q.Exec(context.Background(), query,
		t.ID, t.OrderID, t.Amount, t.Change, t.Type, t.Category,
		t.Reason, t.Beneficiary, t.Method, t.Date, t.User,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert cash entry: %w", err)
	}
	return nil
}

// GetByID obtiene un asiento por su código RC o CC.
func (r *CashRepo) GetByID(id string) (*entity.CashTransaction, error) {
	query := `SELECT ` + cashColumns + ` FROM cash WHERE id = $1`
	t, err := scanCash(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cash entry: %w", err)
	}
	return t, nil
}

// ListBetween lista asientos del rango [from, to], cronológicos.
func (r *CashRepo) ListBetween(from, to time.Time) ([]*entity.CashTransaction, error) {
	query := `SELECT ` + cashColumns + ` FROM cash WHERE date >= $1 AND date <= $2 ORDER BY date`
	rows, err := r.q.Query(context.Background(), query, from, to)
	if err != nil {
		return nil, fmt.Errorf("list cash entries: %w", err)
	}
	defer rows.Close()
	return collectCash(rows)
}

// ListByOrder lista los asientos originados por un pedido.
func (r *CashRepo) ListByOrder(orderID string) ([]*entity.CashTransaction, error) {
	query := `SELECT ` + cashColumns + ` FROM cash WHERE order_id = $1 ORDER BY date`
	rows, err := r.q.Query(context.Background(), query, orderID)
	if err != nil {
		return nil, fmt.Errorf("list cash entries by order: %w", err)
	}
	defer rows.Close()
	return collectCash(rows)
}

// Delete anula administrativamente un asiento.
func (r *CashRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM cash WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete cash entry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func collectCash(rows pgx.Rows) ([]*entity.CashTransaction, error) {
	var out []*entity.CashTransaction
	for rows.Next() {
		t, err := scanCash(rows)
		if err != nil {
			return nil, fmt.Errorf("scan cash entry: %w", err)
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate cash entries: %w", err)
	}
	return out, nil
}
