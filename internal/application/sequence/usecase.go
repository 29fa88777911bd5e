package sequence

import (
	"context"
	"fmt"

	"github.com/jhoicas/Alquiler-api/internal/domain/repository"
	"github.com/jhoicas/Alquiler-api/internal/domain/sequence"
)

// UseCase emite códigos secuenciales de documento (PD, RC, CC, IN).
// El contador vive en el almacén y se incrementa en una transacción
// serializable; aquí solo se da formato. Nunca se fabrica un código local
// ante un fallo: el error del contador se propaga tal cual.
type UseCase struct {
	counters repository.CounterRepository
	width    int
}

// NewUseCase construye el emisor. width es el ancho total del código.
func NewUseCase(counters repository.CounterRepository, width int) *UseCase {
	if width <= 0 {
		width = sequence.DefaultWidth
	}
	return &UseCase{counters: counters, width: width}
}

// NextCode devuelve el siguiente código para el prefijo dado.
func (uc *UseCase) NextCode(ctx context.Context, prefix string) (string, error) {
	n, err := uc.counters.Next(ctx, prefix)
	if err != nil {
		return "", fmt.Errorf("next %s: %w", prefix, err)
	}
	return sequence.FormatCode(prefix, n, uc.width), nil
}
