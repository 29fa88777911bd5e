package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Alquiler-api/internal/domain/entity"
)

// CheckInfoRequest detalle de un pago con cheque.
type CheckInfoRequest struct {
	Client  string `json:"client"`
	Bank    string `json:"bank"`
	Number  string `json:"number"`
	Account string `json:"account"`
	Obs     string `json:"obs"`
}

// ApplyPaymentRequest entrada para aplicar un pago a un pedido.
type ApplyPaymentRequest struct {
	Type     string            `json:"type" validate:"required"`   // CONTADO, PARCIAL, CREDITO
	Method   string            `json:"method" validate:"required"` // EFECTIVO, CHEQUE, TRANSFERENCIA, DEPOSITO
	Received decimal.Decimal   `json:"received"`
	Bank     string            `json:"bank,omitempty"`
	Check    *CheckInfoRequest `json:"check,omitempty"`
}

// PaymentResultResponse resultado de aplicar un pago.
type PaymentResultResponse struct {
	ReceiptID  string          `json:"receipt_id,omitempty"` // código RC; vacío en CREDITO
	Applied    decimal.Decimal `json:"applied"`
	Change     decimal.Decimal `json:"change"`
	NewBalance decimal.Decimal `json:"new_balance"`
}

// ExpenseRequest entrada para registrar un egreso de caja (vale CC).
type ExpenseRequest struct {
	Amount      decimal.Decimal `json:"amount" validate:"required"`
	Reason      string          `json:"reason" validate:"required"`
	Beneficiary string          `json:"beneficiary"`
	Method      string          `json:"method"`
	Category    string          `json:"category"` // GASTO o CAJA_CHICA
}

// CashEntryResponse asiento del libro de caja.
type CashEntryResponse struct {
	ID          string          `json:"id"`
	OrderID     string          `json:"order_id,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
	Change      decimal.Decimal `json:"change"`
	Type        string          `json:"type"`
	Category    string          `json:"category"`
	Reason      string          `json:"reason,omitempty"`
	Beneficiary string          `json:"beneficiary,omitempty"`
	Method      string          `json:"method"`
	Date        time.Time       `json:"date"`
	User        string          `json:"user"`
}

// FromCashTransaction mapea un asiento de caja a su respuesta HTTP.
func FromCashTransaction(t *entity.CashTransaction) CashEntryResponse {
	return CashEntryResponse{
		ID: t.ID, OrderID: t.OrderID, Amount: t.Amount, Change: t.Change,
		Type: t.Type, Category: t.Category, Reason: t.Reason,
		Beneficiary: t.Beneficiary, Method: t.Method, Date: t.Date, User: t.User,
	}
}

// CashReportResponse reporte de caja de un rango de fechas.
// balance = Σ ingresos − Σ egresos, derivable sin tocar los pedidos.
type CashReportResponse struct {
	From        time.Time           `json:"from"`
	To          time.Time           `json:"to"`
	Income      decimal.Decimal     `json:"income"`
	Expense     decimal.Decimal     `json:"expense"`
	ChangeTotal decimal.Decimal     `json:"change_total"`
	Balance     decimal.Decimal     `json:"balance"`
	Entries     []CashEntryResponse `json:"entries"`
}
