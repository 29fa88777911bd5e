package orders

import "context"

// CodeIssuer emite códigos secuenciales de documento (puerto hacia el
// generador respaldado por el contador serializable).
type CodeIssuer interface {
	NextCode(ctx context.Context, prefix string) (string, error)
}
