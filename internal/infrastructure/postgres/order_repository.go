package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Alquiler-api/internal/domain"
	"github.com/jhoicas/Alquiler-api/internal/domain/entity"
	"github.com/jhoicas/Alquiler-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación del puerto OrderRepository sobre PostgreSQL
// (usable con pool o tx). Items, payments y novelty_items viven como JSONB
// dentro de la fila: el pedido es un solo documento y sus mutaciones son
// atómicas por fila.
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador de persistencia para pedidos. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

const orderColumns = `
	id, client_id, client_name, status, order_date, event_date_start, event_date_end,
	rental_days, items, has_transport, transport_value, delivery_address,
	discount_type, discount_value, apply_tax, subtotal, tax, total, paid_amount,
	eb_number, logistics_type, dispatch_state, novelty_notes, novelty_items,
	novelties_resolved, payments, created_by, archived_at, created_at, updated_at`

type pgxScanner interface {
	Scan(dest ...any) error
}

func scanOrder(row pgxScanner) (*entity.Order, error) {
	var o entity.Order
	var items, novelties, payments []byte
	err := row.Scan(
		&o.ID, &o.ClientID, &o.ClientName, &o.Status, &o.OrderDate,
		&o.EventDateStart, &o.EventDateEnd, &o.RentalDays, &items,
		&o.HasTransport, &o.TransportValue, &o.DeliveryAddress,
		&o.DiscountType, &o.DiscountValue, &o.ApplyTax,
		&o.Subtotal, &o.Tax, &o.Total, &o.PaidAmount,
		&o.EBNumber, &o.LogisticsType, &o.DispatchState, &o.NoveltyNotes,
		&novelties, &o.NoveltiesResolved, &payments,
		&o.CreatedBy, &o.ArchivedAt, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if len(items) > 0 {
		if err := json.Unmarshal(items, &o.Items); err != nil {
			return nil, fmt.Errorf("unmarshal items: %w", err)
		}
	}
	if len(novelties) > 0 {
		if err := json.Unmarshal(novelties, &o.NoveltyItems); err != nil {
			return nil, fmt.Errorf("unmarshal novelty_items: %w", err)
		}
	}
	if len(payments) > 0 {
		if err := json.Unmarshal(payments, &o.Payments); err != nil {
			return nil, fmt.Errorf("unmarshal payments: %w", err)
		}
	}
	return &o, nil
}

func marshalOrderJSON(o *entity.Order) (items, novelties, payments []byte, err error) {
	if items, err = json.Marshal(o.Items); err != nil {
		return nil, nil, nil, fmt.Errorf("marshal items: %w", err)
	}
	if novelties, err = json.Marshal(o.NoveltyItems); err != nil {
		return nil, nil, nil, fmt.Errorf("marshal novelty_items: %w", err)
	}
	if payments, err = json.Marshal(o.Payments); err != nil {
		return nil, nil, nil, fmt.Errorf("marshal payments: %w", err)
	}
	return items, novelties, payments, nil
}

// Create persiste un pedido nuevo.
func (r *OrderRepo) Create(o *entity.Order) error {
	items, novelties, payments, err := marshalOrderJSON(o)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO orders (` + orderColumns + `)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,$21,$22,$23,$24,$25,$26,$27,$28,$29,$30)`
	_, err = r.q.Exec(context.Background(), query,
		o.ID, o.ClientID, o.ClientName, o.Status, o.OrderDate,
		o.EventDateStart, o.EventDateEnd, o.RentalDays, items,
		o.HasTransport, o.TransportValue, o.DeliveryAddress,
		o.DiscountType, o.DiscountValue, o.ApplyTax,
		o.Subtotal, o.Tax, o.Total, o.PaidAmount,
		o.EBNumber, o.LogisticsType, o.DispatchState, o.NoveltyNotes,
		novelties, o.NoveltiesResolved, payments,
		o.CreatedBy, o.ArchivedAt, o.CreatedAt, o.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

// GetByID obtiene un pedido por su código.
func (r *OrderRepo) GetByID(id string) (*entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`
	o, err := scanOrder(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	return o, nil
}

// GetForUpdate obtiene un pedido bloqueando la fila (SELECT FOR UPDATE).
func (r *OrderRepo) GetForUpdate(id string) (*entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1 FOR UPDATE`
	o, err := scanOrder(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order for update: %w", err)
	}
	return o, nil
}

// Update reescribe el pedido completo (documento único).
func (r *OrderRepo) Update(o *entity.Order) error {
	items, novelties, payments, err := marshalOrderJSON(o)
	if err != nil {
		return err
	}
	query := `
		UPDATE orders SET
			client_id = $2, client_name = $3, status = $4, order_date = $5,
			event_date_start = $6, event_date_end = $7, rental_days = $8, items = $9,
			has_transport = $10, transport_value = $11, delivery_address = $12,
			discount_type = $13, discount_value = $14, apply_tax = $15,
			subtotal = $16, tax = $17, total = $18, paid_amount = $19,
			eb_number = $20, logistics_type = $21, dispatch_state = $22,
			novelty_notes = $23, novelty_items = $24, novelties_resolved = $25,
			payments = $26, archived_at = $27, updated_at = $28
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		o.ID, o.ClientID, o.ClientName, o.Status, o.OrderDate,
		o.EventDateStart, o.EventDateEnd, o.RentalDays, items,
		o.HasTransport, o.TransportValue, o.DeliveryAddress,
		o.DiscountType, o.DiscountValue, o.ApplyTax,
		o.Subtotal, o.Tax, o.Total, o.PaidAmount,
		o.EBNumber, o.LogisticsType, o.DispatchState,
		o.NoveltyNotes, novelties, o.NoveltiesResolved,
		payments, o.ArchivedAt, o.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update order: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListByStatus lista pedidos cuyo estado esté en statuses, más recientes primero.
func (r *OrderRepo) ListByStatus(statuses []string, limit, offset int) ([]*entity.Order, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM orders WHERE status = ANY($1)
		ORDER BY order_date DESC
		LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, statuses, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list orders by status: %w", err)
	}
	defer rows.Close()
	return collectOrders(rows)
}

// ListDeliveredBefore lista pedidos entregados o en desarrollo con fecha fin
// de evento anterior al corte (alimenta el job de retiros).
func (r *OrderRepo) ListDeliveredBefore(cutoff time.Time) ([]*entity.Order, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM orders
		WHERE status = ANY($1) AND event_date_end <= $2
		ORDER BY event_date_end`
	rows, err := r.q.Query(context.Background(), query,
		[]string{entity.StatusEntregado, entity.StatusEnDesarrollo}, cutoff)
	if err != nil {
		return nil, fmt.Errorf("list orders delivered before: %w", err)
	}
	defer rows.Close()
	return collectOrders(rows)
}

// ListWithOutstanding lista pedidos vivos (ni anulados ni archivados) con
// saldo pendiente mayor al umbral (cartera).
func (r *OrderRepo) ListWithOutstanding(threshold decimal.Decimal) ([]*entity.Order, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM orders
		WHERE status NOT IN ($1, $2) AND total - paid_amount > $3
		ORDER BY order_date DESC`
	rows, err := r.q.Query(context.Background(), query,
		entity.StatusAnulado, entity.StatusArchivado, threshold)
	if err != nil {
		return nil, fmt.Errorf("list orders with outstanding: %w", err)
	}
	defer rows.Close()
	return collectOrders(rows)
}

// Delete purga un pedido (solo uso administrativo).
func (r *OrderRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete order: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func collectOrders(rows pgx.Rows) ([]*entity.Order, error) {
	var out []*entity.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		out = append(out, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate orders: %w", err)
	}
	return out, nil
}
