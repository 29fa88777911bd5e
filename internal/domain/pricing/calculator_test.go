package pricing_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Alquiler-api/internal/domain/pricing"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

var (
	testTaxRate = decimal.NewFromFloat(0.15)
	testStart   = time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
)

func dec(f float64) decimal.Decimal { return decimal.NewFromFloat(f) }

// buildInput arma una cotización base: 10 sillas a $2 y 2 mesas a $5,
// evento de dos días (subtotal 30 × 2 = 60).
func buildInput() pricing.Input {
	return pricing.Input{
		Lines: []pricing.Line{
			{Price: dec(2), Quantity: 10},
			{Price: dec(5), Quantity: 2},
		},
		EventStart: testStart,
		EventEnd:   testStart.AddDate(0, 0, 1),
		TaxRate:    testTaxRate,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// RentalDays
// ──────────────────────────────────────────────────────────────────────────────

func TestRentalDays_MismoDiaEsUno(t *testing.T) {
	assert.Equal(t, 1, pricing.RentalDays(testStart, testStart))
}

func TestRentalDays_AmbosExtremosInclusive(t *testing.T) {
	// 14 al 16 de marzo: tres días de alquiler, no dos.
	end := testStart.AddDate(0, 0, 2)
	assert.Equal(t, 3, pricing.RentalDays(testStart, end))
}

func TestRentalDays_FraccionDeDiaRedondeaArriba(t *testing.T) {
	end := testStart.Add(30 * time.Hour)
	assert.Equal(t, 3, pricing.RentalDays(testStart, end))
}

func TestRentalDays_FechasInvertidasEsUno(t *testing.T) {
	assert.Equal(t, 1, pricing.RentalDays(testStart, testStart.AddDate(0, 0, -5)))
}

// ──────────────────────────────────────────────────────────────────────────────
// Calculate
// ──────────────────────────────────────────────────────────────────────────────

// Escenario de referencia: subtotal 60, descuento 10% = 6, impuesto
// 15% × 54 = 8.10, transporte 8 → total 70.10.
func TestCalculate_EscenarioCompleto(t *testing.T) {
	in := buildInput()
	in.DiscountType = "PERCENTAGE"
	in.DiscountValue = dec(10)
	in.ApplyTax = true
	in.Transport = dec(8)

	q := pricing.Calculate(in)

	assert.Equal(t, 2, q.RentalDays)
	assert.True(t, q.Subtotal.Equal(dec(60)), "subtotal: %s", q.Subtotal)
	assert.True(t, q.Discount.Equal(dec(6)), "descuento: %s", q.Discount)
	assert.True(t, q.Tax.Equal(dec(8.10)), "impuesto: %s", q.Tax)
	assert.True(t, q.Total.Equal(dec(70.10)), "total: %s", q.Total)
}

func TestCalculate_Determinista(t *testing.T) {
	in := buildInput()
	in.DiscountType = "PERCENTAGE"
	in.DiscountValue = dec(10)
	in.ApplyTax = true

	q1 := pricing.Calculate(in)
	q2 := pricing.Calculate(in)

	assert.True(t, q1.Total.Equal(q2.Total), "la misma entrada debe producir el mismo total")
	assert.Equal(t, q1, q2)
}

func TestCalculate_LineaPuntualNoMultiplicaPorDias(t *testing.T) {
	in := buildInput()
	// Servicio de montaje: una sola vez aunque el evento dure dos días.
	in.Lines = append(in.Lines, pricing.Line{Price: dec(25), Quantity: 1, OneOff: true})

	q := pricing.Calculate(in)

	// 60 del alquiler + 25 del servicio puntual.
	assert.True(t, q.Subtotal.Equal(dec(85)), "subtotal: %s", q.Subtotal)
}

func TestCalculate_DescuentoExcluyeLineasProtegidas(t *testing.T) {
	in := pricing.Input{
		Lines: []pricing.Line{
			{Price: dec(100), Quantity: 1, OneOff: true},
			{Price: dec(50), Quantity: 1, OneOff: true, NoDiscount: true}, // personal
		},
		EventStart:    testStart,
		EventEnd:      testStart,
		DiscountType:  "PERCENTAGE",
		DiscountValue: dec(20),
	}

	q := pricing.Calculate(in)

	// 20% solo sobre los 100 descontables, nunca sobre los 50 de personal.
	assert.True(t, q.Discount.Equal(dec(20)), "descuento: %s", q.Discount)
	assert.True(t, q.Total.Equal(dec(130)), "total: %s", q.Total)
}

func TestCalculate_DescuentoNominalAcotadoALaBase(t *testing.T) {
	in := pricing.Input{
		Lines: []pricing.Line{
			{Price: dec(30), Quantity: 1, OneOff: true},
			{Price: dec(70), Quantity: 1, OneOff: true, NoDiscount: true},
		},
		EventStart:    testStart,
		EventEnd:      testStart,
		DiscountValue: dec(500), // nominal desproporcionado
	}

	q := pricing.Calculate(in)

	// El descuento se acota a los 30 descontables: el transporte y el
	// personal nunca se regalan.
	assert.True(t, q.Discount.Equal(dec(30)), "descuento: %s", q.Discount)
	assert.True(t, q.Total.Equal(dec(70)), "total: %s", q.Total)
	assert.False(t, q.Total.IsNegative())
}

func TestCalculate_DescuentoNegativoSeIgnora(t *testing.T) {
	in := buildInput()
	in.DiscountValue = dec(-10)

	q := pricing.Calculate(in)

	assert.True(t, q.Discount.IsZero(), "descuento: %s", q.Discount)
	assert.True(t, q.Total.Equal(dec(60)), "total: %s", q.Total)
}

func TestCalculate_TransporteNoSeGrava(t *testing.T) {
	in := buildInput()
	in.ApplyTax = true
	in.Transport = dec(100)

	q := pricing.Calculate(in)

	// Impuesto solo sobre el subtotal: 60 × 0.15 = 9.
	assert.True(t, q.Tax.Equal(dec(9)), "impuesto: %s", q.Tax)
	assert.True(t, q.Total.Equal(dec(169)), "total: %s", q.Total)
}

func TestCalculate_SinImpuestoNiDescuento(t *testing.T) {
	q := pricing.Calculate(buildInput())

	require.True(t, q.Tax.IsZero())
	require.True(t, q.Discount.IsZero())
	assert.True(t, q.Total.Equal(q.Subtotal))
}
