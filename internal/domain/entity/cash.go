package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Direcciones del movimiento de caja.
const (
	CashIncome  = "INCOME"
	CashExpense = "EXPENSE"
)

// Categorías de caja.
const (
	CashCategoryVenta     = "VENTA"      // cobro de un pedido
	CashCategoryCartera   = "CARTERA"    // abono de saldo pendiente
	CashCategoryGasto     = "GASTO"      // egreso general
	CashCategoryCajaChica = "CAJA_CHICA" // vale de caja chica
)

// CashTransaction es un asiento del libro de caja, independiente del agregado
// Order. Cada ingreso con categoría VENTA o CARTERA comparte ID y monto con
// exactamente un PaymentRecord del pedido que lo originó.
type CashTransaction struct {
	ID          string // código RC (ingresos) o CC (egresos de caja chica)
	OrderID     string // vacío si no proviene de un pedido
	Amount      decimal.Decimal
	Change      decimal.Decimal
	Type        string // INCOME o EXPENSE
	Category    string
	Reason      string
	Beneficiary string
	Method      string
	Date        time.Time
	User        string
}
