package documents

import (
	"context"

	"github.com/jhoicas/Alquiler-api/internal/domain/entity"
)

// Generator produce los documentos imprimibles del negocio. La aplicación
// no conoce la librería de PDF; solo este puerto.
type Generator interface {
	// GenerateReceiptPDF genera el ticket RC de un cobro.
	GenerateReceiptPDF(ctx context.Context, order *entity.Order, payment *entity.PaymentRecord, company *entity.CompanyData) ([]byte, error)
	// GenerateDeliveryGuidePDF genera la guía de entrega del pedido.
	GenerateDeliveryGuidePDF(ctx context.Context, order *entity.Order, company *entity.CompanyData) ([]byte, error)
}
