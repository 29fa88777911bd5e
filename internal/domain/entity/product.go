package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockHistoryEntry es una línea del historial de movimientos de un producto
// (solo-anexar, persistido como JSONB). Quantity es el delta firmado; 0 para
// acciones sin efecto en stock (creación, edición de precios).
type StockHistoryEntry struct {
	Date     time.Time `json:"date"`
	Action   string    `json:"action"`
	User     string    `json:"user"`
	Quantity int       `json:"quantity,omitempty"`
}

// Product representa un artículo alquilable del catálogo.
// Stock nunca baja de cero; cada mutación de stock anexa una entrada a History.
type Product struct {
	ID               string // código secuencial IN, inmutable
	Name             string
	Brand            string
	Stock            int
	RentalPrice      decimal.Decimal // precio de alquiler por día
	ReplacementPrice decimal.Decimal // valor cobrado por pérdida o daño
	ImageURL         string
	History          []StockHistoryEntry
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
