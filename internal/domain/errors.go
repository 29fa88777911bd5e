package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrInsufficientStock  = errors.New("stock insuficiente")
	ErrOrderVoided        = errors.New("el pedido está anulado")
	ErrNothingPending     = errors.New("el pedido no tiene saldo pendiente")
	ErrTransientStore     = errors.New("contención transitoria en el almacén, reintente")
)

// ValidationError describe una entrada que viola una regla de negocio.
// Envuelve ErrInvalidInput para que errors.Is siga funcionando.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validación: %s", e.Reason)
}

func (e *ValidationError) Unwrap() error { return ErrInvalidInput }

// NewValidation construye un *ValidationError con el motivo dado.
func NewValidation(format string, args ...any) *ValidationError {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// IllegalTransitionError indica un salto de estado no permitido por el
// ciclo de vida del pedido.
type IllegalTransitionError struct {
	From, To string
}

func (e *IllegalTransitionError) Error() string {
	return fmt.Sprintf("transición ilegal de %s a %s", e.From, e.To)
}

func (e *IllegalTransitionError) Unwrap() error { return ErrConflict }

// NegativeStockError indica un ajuste que dejaría existencias negativas.
type NegativeStockError struct {
	ProductID string
	Current   int
	Delta     int
}

func (e *NegativeStockError) Error() string {
	return fmt.Sprintf("stock negativo para producto %s: actual %d, ajuste %d", e.ProductID, e.Current, e.Delta)
}

func (e *NegativeStockError) Unwrap() error { return ErrInsufficientStock }
