package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Alquiler-api/internal/domain/entity"
)

// OrderItemRequest línea de pedido en la entrada. Precio y nombre se toman
// del catálogo al crear, no del cliente HTTP.
type OrderItemRequest struct {
	ProductID  string `json:"product_id" validate:"required"`
	Quantity   int    `json:"quantity" validate:"required,min=1"`
	OneOff     bool   `json:"one_off"`     // servicio puntual, no multiplica por días
	NoDiscount bool   `json:"no_discount"` // excluido de la base de descuento
}

// CreateOrderRequest entrada para crear un pedido (proforma o venta directa).
type CreateOrderRequest struct {
	ClientID        string             `json:"client_id" validate:"required"`
	Items           []OrderItemRequest `json:"items" validate:"required,min=1"`
	EventDateStart  time.Time          `json:"event_date_start" validate:"required"`
	EventDateEnd    time.Time          `json:"event_date_end" validate:"required"`
	HasTransport    bool               `json:"has_transport"`
	TransportValue  decimal.Decimal    `json:"transport_value"`
	DeliveryAddress string             `json:"delivery_address"`
	DiscountType    string             `json:"discount_type"` // PERCENTAGE o NOMINAL
	DiscountValue   decimal.Decimal    `json:"discount_value"`
	ApplyTax        bool               `json:"apply_tax"`
	LogisticsType   string             `json:"logistics_type"` // CON_TRANSPORTE o SIN_TRANSPORTE
	Confirm         bool               `json:"confirm"`        // true = venta directa (CONFIRMADA)
}

// UpdateOrderRequest entrada para editar un pedido antes del despacho.
// Los totales se recalculan siempre en el servidor.
type UpdateOrderRequest struct {
	Items           []OrderItemRequest `json:"items" validate:"required,min=1"`
	EventDateStart  time.Time          `json:"event_date_start"`
	EventDateEnd    time.Time          `json:"event_date_end"`
	HasTransport    bool               `json:"has_transport"`
	TransportValue  decimal.Decimal    `json:"transport_value"`
	DeliveryAddress string             `json:"delivery_address"`
	DiscountType    string             `json:"discount_type"`
	DiscountValue   decimal.Decimal    `json:"discount_value"`
	ApplyTax        bool               `json:"apply_tax"`
	LogisticsType   string             `json:"logistics_type"`
	EBNumber        string             `json:"eb_number"`
}

// TransitionRequest entrada para mover el pedido de estado.
type TransitionRequest struct {
	Target string `json:"target" validate:"required"` // CONFIRMADA, EN_PROCESO, CARGADO, ENTREGADO, EN_DESARROLLO, RETIRO_EXITOSO, ANULADO, ARCHIVADO
	Notes  string `json:"notes"`
}

// OrderItemResponse línea de pedido en la salida.
type OrderItemResponse struct {
	ProductID  string          `json:"product_id"`
	Code       string          `json:"code"`
	Name       string          `json:"name"`
	Quantity   int             `json:"quantity"`
	Price      decimal.Decimal `json:"price"`
	OneOff     bool            `json:"one_off,omitempty"`
	NoDiscount bool            `json:"no_discount,omitempty"`
}

// PaymentRecordResponse pago histórico en la salida.
type PaymentRecordResponse struct {
	ID       string          `json:"id"`
	Date     time.Time       `json:"date"`
	Amount   decimal.Decimal `json:"amount"`
	Received decimal.Decimal `json:"received"`
	Change   decimal.Decimal `json:"change"`
	Type     string          `json:"type"`
	Method   string          `json:"method"`
	Bank     string          `json:"bank,omitempty"`
	User     string          `json:"user"`
}

// NoveltyItemResponse novedad registrada en la salida.
type NoveltyItemResponse struct {
	ProductID        string          `json:"product_id"`
	Name             string          `json:"name"`
	Quantity         int             `json:"quantity"`
	ReplacementPrice decimal.Decimal `json:"replacement_price"`
	Resolved         bool            `json:"resolved"`
}

// OrderResponse salida de un pedido.
type OrderResponse struct {
	ID                string                  `json:"id"`
	ClientID          string                  `json:"client_id"`
	ClientName        string                  `json:"client_name"`
	Status            string                  `json:"status"`
	OrderDate         time.Time               `json:"order_date"`
	EventDateStart    time.Time               `json:"event_date_start"`
	EventDateEnd      time.Time               `json:"event_date_end"`
	RentalDays        int                     `json:"rental_days"`
	Items             []OrderItemResponse     `json:"items"`
	HasTransport      bool                    `json:"has_transport"`
	TransportValue    decimal.Decimal         `json:"transport_value"`
	DeliveryAddress   string                  `json:"delivery_address,omitempty"`
	DiscountType      string                  `json:"discount_type"`
	DiscountValue     decimal.Decimal         `json:"discount_value"`
	ApplyTax          bool                    `json:"apply_tax"`
	Subtotal          decimal.Decimal         `json:"subtotal"`
	Tax               decimal.Decimal         `json:"tax"`
	Total             decimal.Decimal         `json:"total"`
	PaidAmount        decimal.Decimal         `json:"paid_amount"`
	Outstanding       decimal.Decimal         `json:"outstanding"`
	EBNumber          string                  `json:"eb_number,omitempty"`
	LogisticsType     string                  `json:"logistics_type"`
	DispatchState     string                  `json:"dispatch_state,omitempty"`
	NoveltyNotes      string                  `json:"novelty_notes,omitempty"`
	NoveltyItems      []NoveltyItemResponse   `json:"novelty_items,omitempty"`
	NoveltiesResolved bool                    `json:"novelties_resolved"`
	Payments          []PaymentRecordResponse `json:"payments"`
	CreatedBy         string                  `json:"created_by"`
	ArchivedAt        *time.Time              `json:"archived_at,omitempty"`
	CreatedAt         time.Time               `json:"created_at"`
}

// FromOrder mapea la entidad a su respuesta HTTP.
func FromOrder(o *entity.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, OrderItemResponse{
			ProductID: it.ProductID, Code: it.Code, Name: it.Name,
			Quantity: it.Quantity, Price: it.Price,
			OneOff: it.OneOff, NoDiscount: it.NoDiscount,
		})
	}
	payments := make([]PaymentRecordResponse, 0, len(o.Payments))
	for _, p := range o.Payments {
		payments = append(payments, PaymentRecordResponse{
			ID: p.ID, Date: p.Date, Amount: p.Amount, Received: p.Received,
			Change: p.Change, Type: p.Type, Method: p.Method, Bank: p.Bank, User: p.User,
		})
	}
	var novelties []NoveltyItemResponse
	for _, n := range o.NoveltyItems {
		novelties = append(novelties, NoveltyItemResponse{
			ProductID: n.ProductID, Name: n.Name, Quantity: n.Quantity,
			ReplacementPrice: n.ReplacementPrice, Resolved: n.Resolved,
		})
	}
	return OrderResponse{
		ID: o.ID, ClientID: o.ClientID, ClientName: o.ClientName, Status: o.Status,
		OrderDate: o.OrderDate, EventDateStart: o.EventDateStart, EventDateEnd: o.EventDateEnd,
		RentalDays: o.RentalDays, Items: items, HasTransport: o.HasTransport,
		TransportValue: o.TransportValue, DeliveryAddress: o.DeliveryAddress,
		DiscountType: o.DiscountType, DiscountValue: o.DiscountValue, ApplyTax: o.ApplyTax,
		Subtotal: o.Subtotal, Tax: o.Tax, Total: o.Total, PaidAmount: o.PaidAmount,
		Outstanding: o.Outstanding(), EBNumber: o.EBNumber, LogisticsType: o.LogisticsType,
		DispatchState: o.DispatchState, NoveltyNotes: o.NoveltyNotes, NoveltyItems: novelties,
		NoveltiesResolved: o.NoveltiesResolved, Payments: payments, CreatedBy: o.CreatedBy,
		ArchivedAt: o.ArchivedAt, CreatedAt: o.CreatedAt,
	}
}

// OrderListResponse lista de pedidos.
type OrderListResponse struct {
	Items []OrderResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}

// PortfolioResponse cartera: pedidos con saldo pendiente y total adeudado.
type PortfolioResponse struct {
	Items            []OrderResponse `json:"items"`
	TotalOutstanding decimal.Decimal `json:"total_outstanding"`
}
