// Package sequence da formato a los códigos secuenciales de documentos.
package sequence

import "fmt"

// Prefijos de documento.
const (
	PrefixOrder    = "PD" // pedidos
	PrefixReceipt  = "RC" // recibos de cobro
	PrefixVoucher  = "CC" // vales de caja chica
	PrefixProduct  = "IN" // artículos del catálogo
)

// DefaultWidth es el ancho total del código, prefijo incluido.
const DefaultWidth = 10

// FormatCode arma el código: prefijo más contador con ceros a la izquierda
// hasta completar width caracteres. Si el contador desborda el ancho, el
// código crece en lugar de truncarse.
func FormatCode(prefix string, n int64, width int) string {
	pad := width - len(prefix)
	if pad < 1 {
		pad = 1
	}
	return fmt.Sprintf("%s%0*d", prefix, pad, n)
}
