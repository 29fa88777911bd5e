// Package pdf implementa los documentos imprimibles del negocio de alquiler
// con Maroto v2: el ticket de cobro (RC) y la guía de entrega del pedido.
//
// Layout de la guía de entrega (A4):
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre de fantasía + RUC  │  N° Pedido + Fecha     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CLIENTE: nombre / dirección de entrega / teléfono          │
//	│  EVENTO: fechas, días de alquiler, logística                │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Cant | Código | Artículo | Precio | Importe         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES y firmas de entrega/recepción                      │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Alquiler-api/internal/application/documents"
	"github.com/jhoicas/Alquiler-api/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 15, Green: 23, Blue: 42}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ documents.Generator = (*MarotoPDFGenerator)(nil)

// MarotoPDFGenerator implementa documents.Generator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerateReceiptPDF genera el ticket del recibo RC.
func (g *MarotoPDFGenerator) GenerateReceiptPDF(
	_ context.Context,
	order *entity.Order,
	payment *entity.PaymentRecord,
	company *entity.CompanyData,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Recibo de cobro "+payment.ID, true).
		WithAuthor(company.FantasyName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(company, "RECIBO DE COBRO", payment.ID, payment.Date.Format("02/01/2006 15:04")))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(row.New(14).Add(
		col.New(12).Add(
			text.New("PEDIDO: "+order.ID, props.Text{Style: fontstyle.Bold, Size: 10, Top: 1}),
			text.New("CLIENTE: "+order.ClientName, props.Text{Size: 9, Top: 7, Color: colorGray}),
		),
	))

	m.AddRows(
		amountRow("TIPO", payment.Type),
		amountRow("MÉTODO", payment.Method),
		amountRow("MONTO APLICADO", money(payment.Amount)),
		amountRow("RECIBIDO", money(payment.Received)),
		amountRow("VUELTO", money(payment.Change)),
	)
	if payment.Bank != "" {
		m.AddRows(amountRow("BANCO", payment.Bank))
	}
	if payment.Check != nil {
		m.AddRows(amountRow("CHEQUE", fmt.Sprintf("%s N° %s CTA %s", payment.Check.Bank, payment.Check.Number, payment.Check.Account)))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(amountRow("SALDO PENDIENTE", money(order.Outstanding())))
	m.AddRows(row.New(10).Add(col.New(12).Add(
		text.New("ATENDIDO POR: "+payment.User, props.Text{Size: 8, Color: colorGray, Top: 2}),
	)))

	return generate(m)
}

// GenerateDeliveryGuidePDF genera la guía de entrega del pedido.
func (g *MarotoPDFGenerator) GenerateDeliveryGuidePDF(
	_ context.Context,
	order *entity.Order,
	company *entity.CompanyData,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Guía de entrega "+order.ID, true).
		WithAuthor(company.FantasyName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(company, "GUÍA DE ENTREGA", order.ID, order.EventDateStart.Format("02/01/2006")))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	address := order.DeliveryAddress
	if address == "" {
		address = "RETIRO EN BODEGA"
	}
	m.AddRows(row.New(20).Add(
		col.New(7).Add(
			text.New("CLIENTE: "+order.ClientName, props.Text{Style: fontstyle.Bold, Size: 10, Top: 1}),
			text.New("ENTREGA: "+address, props.Text{Size: 9, Top: 8, Color: colorGray}),
			text.New("LOGÍSTICA: "+order.LogisticsType, props.Text{Size: 8, Top: 14, Color: colorGray}),
		),
		col.New(5).Add(
			text.New(fmt.Sprintf("EVENTO: %s AL %s",
				order.EventDateStart.Format("02/01/2006"),
				order.EventDateEnd.Format("02/01/2006")),
				props.Text{Size: 9, Align: align.Right, Top: 1}),
			text.New(fmt.Sprintf("DÍAS DE ALQUILER: %d", order.RentalDays),
				props.Text{Size: 9, Align: align.Right, Top: 8}),
		),
	))

	m.AddRows(tableHeaderRow())
	for _, it := range order.Items {
		m.AddRows(itemRow(it, order.RentalDays))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(
		amountRow("SUBTOTAL", money(order.Subtotal)),
		amountRow("IMPUESTO", money(order.Tax)),
		amountRow("TRANSPORTE", money(order.TransportValue)),
		amountRow("TOTAL", money(order.Total)),
	)

	m.AddRows(line.NewRow(8))
	m.AddRows(row.New(18).Add(
		col.New(6).Add(
			text.New("_____________________________", props.Text{Align: align.Center, Top: 6}),
			text.New("ENTREGA", props.Text{Size: 8, Align: align.Center, Top: 12, Color: colorGray}),
		),
		col.New(6).Add(
			text.New("_____________________________", props.Text{Align: align.Center, Top: 6}),
			text.New("RECIBE", props.Text{Size: 8, Align: align.Center, Top: 12, Color: colorGray}),
		),
	))

	return generate(m)
}

func generate(m core.Maroto) ([]byte, error) {
	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

func headerRow(company *entity.CompanyData, docName, number, date string) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(company.FantasyName, props.Text{Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1}),
			text.New("RUC: "+company.RUC, props.Text{Size: 9, Top: 9, Color: colorGray}),
		),
		col.New(5).Add(
			text.New(docName, props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 1}),
			text.New(number, props.Text{Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7}),
			text.New("Fecha: "+date, props.Text{Size: 8, Align: align.Right, Top: 14, Color: colorGray}),
		),
	)
}

func tableHeaderRow() core.Row {
	return row.New(7).Add(
		col.New(1).Add(text.New("CANT", props.Text{Style: fontstyle.Bold, Size: 8})),
		col.New(2).Add(text.New("CÓDIGO", props.Text{Style: fontstyle.Bold, Size: 8})),
		col.New(5).Add(text.New("ARTÍCULO", props.Text{Style: fontstyle.Bold, Size: 8})),
		col.New(2).Add(text.New("P. DÍA", props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Right})),
		col.New(2).Add(text.New("IMPORTE", props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Right})),
	)
}

func itemRow(it entity.OrderItem, rentalDays int) core.Row {
	days := decimal.NewFromInt(int64(rentalDays))
	if it.OneOff {
		days = decimal.NewFromInt(1)
	}
	amount := it.Price.Mul(decimal.NewFromInt(int64(it.Quantity))).Mul(days)
	return row.New(6).Add(
		col.New(1).Add(text.New(fmt.Sprintf("%d", it.Quantity), props.Text{Size: 8})),
		col.New(2).Add(text.New(it.Code, props.Text{Size: 8})),
		col.New(5).Add(text.New(it.Name, props.Text{Size: 8})),
		col.New(2).Add(text.New(money(it.Price), props.Text{Size: 8, Align: align.Right})),
		col.New(2).Add(text.New(money(amount), props.Text{Size: 8, Align: align.Right})),
	)
}

func amountRow(label, value string) core.Row {
	return row.New(6).Add(
		col.New(8).Add(text.New(label, props.Text{Size: 9, Color: colorGray})),
		col.New(4).Add(text.New(value, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right})),
	)
}

func money(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}
