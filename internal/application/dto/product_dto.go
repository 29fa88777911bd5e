package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Alquiler-api/internal/domain/entity"
)

// CreateProductRequest entrada para crear un artículo del catálogo.
// El código IN lo asigna el generador secuencial, no el cliente.
type CreateProductRequest struct {
	Name             string          `json:"name" validate:"required,min=1,max=200"`
	Brand            string          `json:"brand"`
	Stock            int             `json:"stock" validate:"min=0"`
	RentalPrice      decimal.Decimal `json:"rental_price"`
	ReplacementPrice decimal.Decimal `json:"replacement_price"`
	ImageURL         string          `json:"image_url"`
}

// UpdateProductRequest entrada para editar un artículo (el stock se ajusta
// solo vía /adjust, con su entrada de historial).
type UpdateProductRequest struct {
	Name             *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Brand            *string          `json:"brand"`
	RentalPrice      *decimal.Decimal `json:"rental_price"`
	ReplacementPrice *decimal.Decimal `json:"replacement_price"`
	ImageURL         *string          `json:"image_url"`
}

// AdjustStockRequest entrada para un ajuste manual de stock.
type AdjustStockRequest struct {
	Delta  int    `json:"delta" validate:"required"`
	Reason string `json:"reason" validate:"required"`
}

// StockHistoryResponse entrada del historial de movimientos.
type StockHistoryResponse struct {
	Date     time.Time `json:"date"`
	Action   string    `json:"action"`
	User     string    `json:"user"`
	Quantity int       `json:"quantity,omitempty"`
}

// ProductResponse salida de un artículo.
type ProductResponse struct {
	ID               string                 `json:"id"`
	Name             string                 `json:"name"`
	Brand            string                 `json:"brand"`
	Stock            int                    `json:"stock"`
	RentalPrice      decimal.Decimal        `json:"rental_price"`
	ReplacementPrice decimal.Decimal        `json:"replacement_price"`
	ImageURL         string                 `json:"image_url,omitempty"`
	History          []StockHistoryResponse `json:"history"`
	CreatedAt        time.Time              `json:"created_at"`
	UpdatedAt        time.Time              `json:"updated_at"`
}

// FromProduct mapea la entidad a su respuesta HTTP.
func FromProduct(p *entity.Product) ProductResponse {
	history := make([]StockHistoryResponse, 0, len(p.History))
	for _, h := range p.History {
		history = append(history, StockHistoryResponse{
			Date: h.Date, Action: h.Action, User: h.User, Quantity: h.Quantity,
		})
	}
	return ProductResponse{
		ID: p.ID, Name: p.Name, Brand: p.Brand, Stock: p.Stock,
		RentalPrice: p.RentalPrice, ReplacementPrice: p.ReplacementPrice,
		ImageURL: p.ImageURL, History: history,
		CreatedAt: p.CreatedAt, UpdatedAt: p.UpdatedAt,
	}
}

// ProductListResponse lista paginada de artículos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
