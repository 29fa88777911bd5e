package repository

import "context"

// CounterRepository define el puerto del contador secuencial por prefijo.
// Next incrementa y devuelve el contador en una transacción SERIALIZABLE
// propia: dos llamadas concurrentes jamás observan el mismo valor. Si la
// transacción no logra confirmar tras los reintentos devuelve
// domain.ErrTransientStore; el llamador nunca fabrica un número localmente.
type CounterRepository interface {
	Next(ctx context.Context, prefix string) (int64, error)
}
