package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados del ciclo de vida del pedido.
const (
	StatusProforma       = "PROFORMA"        // cotización, editable
	StatusConfirmada     = "CONFIRMADA"      // venta firme, en espera de despacho
	StatusEnProceso      = "EN_PROCESO"      // despacho iniciado
	StatusEntregado      = "ENTREGADO"       // mercadería entregada al cliente
	StatusEnDesarrollo   = "EN_DESARROLLO"   // evento en curso
	StatusPorRetirar     = "POR_RETIRAR"     // fecha fin vencida, pendiente de retiro
	StatusIngresoParcial = "INGRESO_PARCIAL" // retiro con novedades sin resolver
	StatusRetiroExitoso  = "RETIRO_EXITOSO"  // retiro cerrado (con o sin novedades resueltas)
	StatusAnulado        = "ANULADO"
	StatusArchivado      = "ARCHIVADO"
)

// Sub-estados de despacho.
const (
	DispatchCargado            = "CARGADO"
	DispatchEntregadoBodega    = "ENTREGADO_BODEGA"
	DispatchEntregadoDomicilio = "ENTREGADO_DOMICILIO"
)

// Tipos de logística.
const (
	LogisticsConTransporte = "CON_TRANSPORTE"
	LogisticsSinTransporte = "SIN_TRANSPORTE"
)

// Tipos de descuento.
const (
	DiscountPercentage = "PERCENTAGE"
	DiscountNominal    = "NOMINAL"
)

// Tipos y métodos de pago.
const (
	PaymentContado = "CONTADO"
	PaymentParcial = "PARCIAL"
	PaymentCredito = "CREDITO"

	MethodEfectivo      = "EFECTIVO"
	MethodCreditoTotal  = "CREDITO_TOTAL" // anotación en registros a crédito, sin caja
	MethodCheque        = "CHEQUE"
	MethodTransferencia = "TRANSFERENCIA"
	MethodDeposito      = "DEPOSITO"
)

// OrderItem es una línea del pedido. Precio y nombre se congelan al crear
// (el catálogo puede cambiar después). Se persiste como JSONB dentro del pedido.
type OrderItem struct {
	ProductID  string          `json:"productId"`
	Code       string          `json:"code"`
	Name       string          `json:"name"`
	Quantity   int             `json:"quantity"`
	Price      decimal.Decimal `json:"price"`
	OneOff     bool            `json:"oneOff,omitempty"`     // servicio puntual, no multiplica por días
	NoDiscount bool            `json:"noDiscount,omitempty"` // transporte o personal, excluido de descuento
}

// CheckInfo detalla un pago con cheque.
type CheckInfo struct {
	Client  string `json:"client"`
	Bank    string `json:"bank"`
	Number  string `json:"number"`
	Account string `json:"account"`
	Obs     string `json:"obs"`
}

// PaymentRecord es una aplicación de dinero al pedido (histórico solo-anexar).
// El ID es el código RC del recibo; un CashTransaction de ingreso comparte ese ID.
type PaymentRecord struct {
	ID       string          `json:"id"`
	Date     time.Time       `json:"date"`
	Amount   decimal.Decimal `json:"amount"`   // monto aplicado al saldo
	Received decimal.Decimal `json:"received"` // monto recibido en caja
	Change   decimal.Decimal `json:"change"`   // vuelto = received - amount
	Type     string          `json:"type"`     // CONTADO, PARCIAL, CREDITO
	Method   string          `json:"method"`   // EFECTIVO, CHEQUE, TRANSFERENCIA, DEPOSITO
	Bank     string          `json:"bank,omitempty"`
	Check    *CheckInfo      `json:"check,omitempty"`
	User     string          `json:"user"`
}

// NoveltyItem registra daño o faltante detectado al retirar la mercadería.
// El precio de reposición se congela al reportar la novedad.
type NoveltyItem struct {
	ProductID        string          `json:"productId"`
	Name             string          `json:"name"`
	Quantity         int             `json:"quantity"`
	ReplacementPrice decimal.Decimal `json:"replacementPrice"`
	Resolved         bool            `json:"resolved"`
}

// Order es el agregado central: cotización, venta, despacho, retiro y cobro
// de un alquiler. Items, Payments y NoveltyItems viven embebidos (JSONB).
type Order struct {
	ID                string // código secuencial PD, inmutable
	ClientID          string
	ClientName        string
	Status            string
	OrderDate         time.Time
	EventDateStart    time.Time
	EventDateEnd      time.Time
	RentalDays        int
	Items             []OrderItem
	HasTransport      bool
	TransportValue    decimal.Decimal
	DeliveryAddress   string
	DiscountType      string // PERCENTAGE o NOMINAL
	DiscountValue     decimal.Decimal
	ApplyTax          bool
	Subtotal          decimal.Decimal
	Tax               decimal.Decimal
	Total             decimal.Decimal
	PaidAmount        decimal.Decimal
	EBNumber          string
	LogisticsType     string // CON_TRANSPORTE o SIN_TRANSPORTE
	DispatchState     string // CARGADO, ENTREGADO_BODEGA, ENTREGADO_DOMICILIO; vacío si no aplica
	NoveltyNotes      string
	NoveltyItems      []NoveltyItem
	NoveltiesResolved bool
	Payments          []PaymentRecord
	CreatedBy         string
	ArchivedAt        *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// Outstanding devuelve el saldo pendiente (nunca negativo).
func (o *Order) Outstanding() decimal.Decimal {
	bal := o.Total.Sub(o.PaidAmount)
	if bal.IsNegative() {
		return decimal.Zero
	}
	return bal
}
