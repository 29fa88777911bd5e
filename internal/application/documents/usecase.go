package documents

import (
	"context"

	"github.com/jhoicas/Alquiler-api/internal/domain"
	"github.com/jhoicas/Alquiler-api/internal/domain/entity"
	"github.com/jhoicas/Alquiler-api/internal/domain/repository"
)

// UseCase arma los documentos imprimibles leyendo pedido y datos de la
// empresa. Solo lectura: nunca muta agregados.
type UseCase struct {
	orders  repository.OrderRepository
	company repository.CompanyRepository
	gen     Generator
}

// NewUseCase construye el caso de uso.
func NewUseCase(orders repository.OrderRepository, company repository.CompanyRepository, gen Generator) *UseCase {
	return &UseCase{orders: orders, company: company, gen: gen}
}

func (uc *UseCase) companyOrEmpty() (*entity.CompanyData, error) {
	c, err := uc.company.Get()
	if err != nil {
		return nil, err
	}
	if c == nil {
		c = &entity.CompanyData{}
	}
	return c, nil
}

// Receipt genera el ticket PDF del recibo RC indicado.
func (uc *UseCase) Receipt(ctx context.Context, orderID, receiptID string) ([]byte, error) {
	o, err := uc.orders.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, domain.ErrNotFound
	}
	var payment *entity.PaymentRecord
	for i := range o.Payments {
		if o.Payments[i].ID == receiptID {
			payment = &o.Payments[i]
			break
		}
	}
	if payment == nil {
		return nil, domain.ErrNotFound
	}
	company, err := uc.companyOrEmpty()
	if err != nil {
		return nil, err
	}
	return uc.gen.GenerateReceiptPDF(ctx, o, payment, company)
}

// DeliveryGuide genera la guía de entrega PDF del pedido.
func (uc *UseCase) DeliveryGuide(ctx context.Context, orderID string) ([]byte, error) {
	o, err := uc.orders.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, domain.ErrNotFound
	}
	company, err := uc.companyOrEmpty()
	if err != nil {
		return nil, err
	}
	return uc.gen.GenerateDeliveryGuidePDF(ctx, o, company)
}
