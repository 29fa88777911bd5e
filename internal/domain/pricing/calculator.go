// Package pricing calcula los totales de un pedido de alquiler.
// Función pura: sin efectos, sin I/O, toda la aritmética en decimal.
package pricing

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Alquiler-api/internal/domain/entity"
)

// Line es una línea de pedido vista por el calculador.
type Line struct {
	Price      decimal.Decimal
	Quantity   int
	OneOff     bool // servicio puntual: no multiplica por días de alquiler
	NoDiscount bool // excluido de la base de descuento (transporte, personal)
}

// Input son los parámetros de cotización de un pedido.
type Input struct {
	Lines         []Line
	EventStart    time.Time
	EventEnd      time.Time
	DiscountType  string // entity.DiscountPercentage o entity.DiscountNominal
	DiscountValue decimal.Decimal
	ApplyTax      bool
	TaxRate       decimal.Decimal // tasa vigente, inyectada desde configuración
	Transport     decimal.Decimal // valor plano, se suma después del impuesto
}

// Quote es el desglose monetario resultante.
type Quote struct {
	RentalDays int
	Subtotal   decimal.Decimal
	Discount   decimal.Decimal
	Tax        decimal.Decimal
	Transport  decimal.Decimal
	Total      decimal.Decimal
}

// RentalDays devuelve los días de alquiler entre dos fechas, ambas inclusive.
// Mínimo 1 día aunque las fechas coincidan o vengan invertidas.
func RentalDays(start, end time.Time) int {
	diff := end.Sub(start)
	if diff < 0 {
		return 1
	}
	days := int(diff.Hours()/24) + 1
	if diff%(24*time.Hour) != 0 {
		days++
	}
	if days < 1 {
		return 1
	}
	return days
}

// Calculate cotiza el pedido. Determinista: la misma entrada produce siempre
// el mismo desglose, por lo que puede recomputarse en cada edición.
//
// Reglas:
//   - subtotal = Σ(precio × cantidad) × días; líneas puntuales multiplican por 1
//   - la base de descuento excluye líneas NoDiscount
//   - descuento porcentual o nominal, acotado a la base (nunca deja el
//     subtotal post-descuento negativo ni toca transporte o personal)
//   - impuesto sobre (subtotal − descuento) si aplica
//   - transporte plano, después del impuesto, sin gravar
func Calculate(in Input) Quote {
	days := RentalDays(in.EventStart, in.EventEnd)
	daysDec := decimal.NewFromInt(int64(days))

	subtotal := decimal.Zero
	discountBase := decimal.Zero
	for _, l := range in.Lines {
		line := l.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
		if !l.OneOff {
			line = line.Mul(daysDec)
		}
		subtotal = subtotal.Add(line)
		if !l.NoDiscount {
			discountBase = discountBase.Add(line)
		}
	}

	var discount decimal.Decimal
	switch in.DiscountType {
	case entity.DiscountPercentage:
		discount = discountBase.Mul(in.DiscountValue).Div(decimal.NewFromInt(100))
	default:
		discount = in.DiscountValue
	}
	if discount.IsNegative() {
		discount = decimal.Zero
	}
	if discount.GreaterThan(discountBase) {
		discount = discountBase
	}

	taxed := subtotal.Sub(discount)
	tax := decimal.Zero
	if in.ApplyTax {
		tax = taxed.Mul(in.TaxRate)
	}

	total := taxed.Add(tax).Add(in.Transport)

	return Quote{
		RentalDays: days,
		Subtotal:   subtotal,
		Discount:   discount,
		Tax:        tax,
		Transport:  in.Transport,
		Total:      total,
	}
}
