package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Alquiler-api/internal/domain"
	"github.com/jhoicas/Alquiler-api/internal/domain/repository"
)

var _ repository.CounterRepository = (*CounterRepo)(nil)

// Reintentos ante fallo de serialización (40001) antes de rendirse.
const counterMaxRetries = 5

// CounterRepo implementa el contador secuencial por prefijo sobre PostgreSQL.
// Cada Next es una transacción SERIALIZABLE propia: leer, incrementar,
// escribir. Dos llamadas concurrentes jamás confirman el mismo valor; la que
// pierde la serialización reintenta con backoff.
type CounterRepo struct {
	pool *pgxpool.Pool
}

// NewCounterRepository construye el repositorio.
func NewCounterRepository(pool *pgxpool.Pool) *CounterRepo {
	return &CounterRepo{pool: pool}
}

// Next incrementa y devuelve el contador del prefijo. Si los reintentos se
// agotan devuelve domain.ErrTransientStore: el llamador decide reintentar,
// nunca fabrica un número localmente.
func (r *CounterRepo) Next(ctx context.Context, prefix string) (int64, error) {
	var lastErr error
	for attempt := 0; attempt < counterMaxRetries; attempt++ {
		n, err := r.nextOnce(ctx, prefix)
		if err == nil {
			return n, nil
		}
		if !isSerializationFailure(err) {
			return 0, fmt.Errorf("counter %s: %w", prefix, err)
		}
		lastErr = err
		select {
		case <-ctx.Done():
			return 0, ctx.Err()
		case <-time.After(time.Duration(attempt+1) * 10 * time.Millisecond):
		}
	}
	return 0, fmt.Errorf("counter %s tras %d reintentos (%v): %w",
		prefix, counterMaxRetries, lastErr, domain.ErrTransientStore)
}

func (r *CounterRepo) nextOnce(ctx context.Context, prefix string) (int64, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var count int64
	err = tx.QueryRow(ctx, `SELECT count FROM counters WHERE prefix = $1`, prefix).Scan(&count)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return 0, err
	}
	count++

	_, err = tx.Exec(ctx, `
		INSERT INTO counters (prefix, count) VALUES ($1, $2)
		ON CONFLICT (prefix) DO UPDATE SET count = $2`,
		prefix, count)
	if err != nil {
		return 0, err
	}
	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}
	return count, nil
}
