package dto

import "github.com/shopspring/decimal"

// NoveltyLineRequest cantidad afectada de una línea del pedido.
type NoveltyLineRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"min=0"`
}

// ReportNoveltyRequest entrada para registrar novedades al retirar.
// Debe traer al menos una línea con cantidad > 0 o una observación.
type ReportNoveltyRequest struct {
	Lines []NoveltyLineRequest `json:"lines"`
	Notes string               `json:"notes"`
}

// Modos de resolución de novedades.
const (
	ResolutionPaid     = "PAID"
	ResolutionReplaced = "REPLACED"
)

// ResolveNoveltyRequest entrada para resolver un ingreso parcial.
// En modo PAID el cobro es todo-o-nada: Received debe cubrir el total adeudado.
type ResolveNoveltyRequest struct {
	Mode     string          `json:"mode" validate:"required"` // PAID o REPLACED
	Received decimal.Decimal `json:"received"`
	Method   string          `json:"method"` // requerido en PAID
	Bank     string          `json:"bank,omitempty"`
}

// ResolveNoveltyResponse resultado de la resolución.
type ResolveNoveltyResponse struct {
	Order      OrderResponse   `json:"order"`
	AmountOwed decimal.Decimal `json:"amount_owed"`
	ReceiptID  string          `json:"receipt_id,omitempty"` // solo en PAID
	Change     decimal.Decimal `json:"change"`
}
