package payments_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Alquiler-api/internal/application/dto"
	"github.com/jhoicas/Alquiler-api/internal/application/payments"
	"github.com/jhoicas/Alquiler-api/internal/domain"
	"github.com/jhoicas/Alquiler-api/internal/domain/entity"
	"github.com/jhoicas/Alquiler-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeOrderRepo struct {
	orders map[string]*entity.Order
}

func newFakeOrderRepo(orders ...*entity.Order) *fakeOrderRepo {
	m := make(map[string]*entity.Order, len(orders))
	for _, o := range orders {
		m[o.ID] = o
	}
	return &fakeOrderRepo{orders: m}
}

func (f *fakeOrderRepo) Create(o *entity.Order) error { f.orders[o.ID] = o; return nil }
func (f *fakeOrderRepo) GetByID(id string) (*entity.Order, error) {
	return f.orders[id], nil
}
func (f *fakeOrderRepo) GetForUpdate(id string) (*entity.Order, error) {
	return f.orders[id], nil
}
func (f *fakeOrderRepo) Update(o *entity.Order) error {
	if _, ok := f.orders[o.ID]; !ok {
		return domain.ErrNotFound
	}
	f.orders[o.ID] = o
	return nil
}
func (f *fakeOrderRepo) ListByStatus([]string, int, int) ([]*entity.Order, error) { return nil, nil }
func (f *fakeOrderRepo) ListDeliveredBefore(time.Time) ([]*entity.Order, error)   { return nil, nil }
func (f *fakeOrderRepo) ListWithOutstanding(decimal.Decimal) ([]*entity.Order, error) {
	return nil, nil
}
func (f *fakeOrderRepo) Delete(id string) error { delete(f.orders, id); return nil }

type fakeCashRepo struct {
	entries []*entity.CashTransaction
}

func (f *fakeCashRepo) Create(tx *entity.CashTransaction) error {
	f.entries = append(f.entries, tx)
	return nil
}
func (f *fakeCashRepo) GetByID(id string) (*entity.CashTransaction, error) {
	for _, e := range f.entries {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, nil
}
func (f *fakeCashRepo) ListBetween(from, to time.Time) ([]*entity.CashTransaction, error) {
	var out []*entity.CashTransaction
	for _, e := range f.entries {
		if !e.Date.Before(from) && e.Date.Before(to) {
			out = append(out, e)
		}
	}
	return out, nil
}
func (f *fakeCashRepo) ListByOrder(orderID string) ([]*entity.CashTransaction, error) {
	var out []*entity.CashTransaction
	for _, e := range f.entries {
		if e.OrderID == orderID {
			out = append(out, e)
		}
	}
	return out, nil
}
func (f *fakeCashRepo) Delete(id string) error {
	for i, e := range f.entries {
		if e.ID == id {
			f.entries = append(f.entries[:i], f.entries[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

// fakeTxRunner pasa los repos en memoria a la función; no hay transacción
// real, los tests verifican la semántica, no el commit.
type fakeTxRunner struct {
	orders *fakeOrderRepo
	cash   *fakeCashRepo
}

func (f *fakeTxRunner) Run(_ context.Context, fn func(repository.OrderRepository, repository.CashRepository) error) error {
	return fn(f.orders, f.cash)
}

type fakeCodes struct{ n int }

func (f *fakeCodes) NextCode(_ context.Context, prefix string) (string, error) {
	f.n++
	return fmt.Sprintf("%s%08d", prefix, f.n), nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

func dec(f float64) decimal.Decimal { return decimal.NewFromFloat(f) }

// buildOrder arma un pedido confirmado con total 70.10 y nada cobrado.
func buildOrder() *entity.Order {
	return &entity.Order{
		ID:         "PD00000001",
		ClientID:   "c-1",
		Status:     entity.StatusConfirmada,
		Total:      dec(70.10),
		PaidAmount: decimal.Zero,
	}
}

func buildUseCase(o *entity.Order) (*payments.UseCase, *fakeOrderRepo, *fakeCashRepo) {
	orders := newFakeOrderRepo(o)
	cash := &fakeCashRepo{}
	uc := payments.NewUseCase(&fakeTxRunner{orders: orders, cash: cash}, cash, &fakeCodes{})
	return uc, orders, cash
}

// ──────────────────────────────────────────────────────────────────────────────
// ApplyPayment
// ──────────────────────────────────────────────────────────────────────────────

func TestApplyPayment_ContadoConVuelto(t *testing.T) {
	o := buildOrder()
	uc, _, cash := buildUseCase(o)

	out, err := uc.ApplyPayment(context.Background(), o.ID, dto.ApplyPaymentRequest{
		Type:     entity.PaymentContado,
		Method:   entity.MethodEfectivo,
		Received: dec(100),
	}, "maria")

	require.NoError(t, err)
	assert.True(t, out.Applied.Equal(dec(70.10)), "aplicado: %s", out.Applied)
	assert.True(t, out.Change.Equal(dec(29.90)), "vuelto: %s", out.Change)
	assert.True(t, out.NewBalance.IsZero(), "saldo: %s", out.NewBalance)

	// El pedido registra el pago y la caja lo espeja con el mismo RC.
	require.Len(t, o.Payments, 1)
	assert.Equal(t, out.ReceiptID, o.Payments[0].ID)
	require.Len(t, cash.entries, 1)
	assert.Equal(t, out.ReceiptID, cash.entries[0].ID)
	assert.True(t, cash.entries[0].Amount.Equal(out.Applied))
	assert.Equal(t, entity.CashIncome, cash.entries[0].Type)
	assert.Equal(t, entity.CashCategoryVenta, cash.entries[0].Category)
}

func TestApplyPayment_TrasElDespachoSeEspejaComoCartera(t *testing.T) {
	o := buildOrder()
	o.Status = entity.StatusEntregado
	o.PaidAmount = dec(40)
	uc, _, cash := buildUseCase(o)

	out, err := uc.ApplyPayment(context.Background(), o.ID, dto.ApplyPaymentRequest{
		Type:     entity.PaymentParcial,
		Method:   entity.MethodEfectivo,
		Received: dec(30),
	}, "maria")

	require.NoError(t, err)
	assert.True(t, out.Applied.Equal(dec(30)))

	// Recuperar saldo de un pedido ya despachado es cartera, no venta.
	require.Len(t, cash.entries, 1)
	assert.Equal(t, entity.CashCategoryCartera, cash.entries[0].Category)
}

func TestApplyPayment_ContadoInsuficienteSeRechaza(t *testing.T) {
	o := buildOrder()
	uc, _, cash := buildUseCase(o)

	_, err := uc.ApplyPayment(context.Background(), o.ID, dto.ApplyPaymentRequest{
		Type:     entity.PaymentContado,
		Method:   entity.MethodEfectivo,
		Received: dec(50),
	}, "maria")

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, o.Payments, "el pedido debe quedar intacto")
	assert.True(t, o.PaidAmount.IsZero())
	assert.Empty(t, cash.entries, "sin pago no hay asiento de caja")
}

func TestApplyPayment_ParcialAplicaLoRecibido(t *testing.T) {
	o := buildOrder()
	uc, _, _ := buildUseCase(o)

	out, err := uc.ApplyPayment(context.Background(), o.ID, dto.ApplyPaymentRequest{
		Type:     entity.PaymentParcial,
		Method:   entity.MethodTransferencia,
		Received: dec(30),
		Bank:     "Banco Pichincha",
	}, "maria")

	require.NoError(t, err)
	assert.True(t, out.Applied.Equal(dec(30)))
	assert.True(t, out.Change.IsZero())
	assert.True(t, out.NewBalance.Equal(dec(40.10)), "saldo: %s", out.NewBalance)
	assert.Equal(t, "Banco Pichincha", o.Payments[0].Bank)
}

func TestApplyPayment_ParcialQueExcedeElSaldoDaVuelto(t *testing.T) {
	o := buildOrder()
	uc, _, _ := buildUseCase(o)

	out, err := uc.ApplyPayment(context.Background(), o.ID, dto.ApplyPaymentRequest{
		Type:     entity.PaymentParcial,
		Method:   entity.MethodEfectivo,
		Received: dec(100),
	}, "maria")

	require.NoError(t, err)
	assert.True(t, out.Applied.Equal(dec(70.10)), "nunca se aplica más que el saldo")
	assert.True(t, out.Change.Equal(dec(29.90)))
}

func TestApplyPayment_CreditoNoMueveCaja(t *testing.T) {
	o := buildOrder()
	uc, _, cash := buildUseCase(o)

	out, err := uc.ApplyPayment(context.Background(), o.ID, dto.ApplyPaymentRequest{
		Type: entity.PaymentCredito,
	}, "maria")

	require.NoError(t, err)
	assert.True(t, out.Applied.IsZero())
	assert.True(t, out.NewBalance.Equal(dec(70.10)), "el saldo completo queda diferido")
	assert.Empty(t, cash.entries, "crédito no toca caja")

	// El registro queda anotado con método CREDITO_TOTAL y su código RC.
	require.Len(t, o.Payments, 1)
	assert.Equal(t, entity.MethodCreditoTotal, o.Payments[0].Method)
	assert.NotEmpty(t, o.Payments[0].ID)
}

func TestApplyPayment_PedidoAnuladoSeRechaza(t *testing.T) {
	o := buildOrder()
	o.Status = entity.StatusAnulado
	uc, _, _ := buildUseCase(o)

	_, err := uc.ApplyPayment(context.Background(), o.ID, dto.ApplyPaymentRequest{
		Type:     entity.PaymentContado,
		Method:   entity.MethodEfectivo,
		Received: dec(100),
	}, "maria")

	assert.ErrorIs(t, err, domain.ErrOrderVoided)
}

func TestApplyPayment_SinSaldoPendienteSeRechaza(t *testing.T) {
	o := buildOrder()
	o.PaidAmount = o.Total
	uc, _, _ := buildUseCase(o)

	_, err := uc.ApplyPayment(context.Background(), o.ID, dto.ApplyPaymentRequest{
		Type:     entity.PaymentParcial,
		Method:   entity.MethodEfectivo,
		Received: dec(10),
	}, "maria")

	assert.ErrorIs(t, err, domain.ErrNothingPending)
}

func TestApplyPayment_PaidAmountSoloCrece(t *testing.T) {
	o := buildOrder()
	uc, _, _ := buildUseCase(o)
	ctx := context.Background()

	prev := o.PaidAmount
	for i := 0; i < 3; i++ {
		_, err := uc.ApplyPayment(ctx, o.ID, dto.ApplyPaymentRequest{
			Type:     entity.PaymentParcial,
			Method:   entity.MethodEfectivo,
			Received: dec(20),
		}, "maria")
		if err != nil {
			break // el saldo se agota en el último abono
		}
		assert.True(t, o.PaidAmount.GreaterThanOrEqual(prev), "PaidAmount nunca decrece")
		prev = o.PaidAmount
	}
	assert.True(t, o.PaidAmount.LessThanOrEqual(o.Total))
}

// ──────────────────────────────────────────────────────────────────────────────
// Cobro de novedades
// ──────────────────────────────────────────────────────────────────────────────

func TestApplyNoveltyChargeInTx_TodoONada(t *testing.T) {
	o := buildOrder()
	o.PaidAmount = o.Total // pedido saldado antes del retiro
	uc, orders, cash := buildUseCase(o)

	_, _, err := uc.ApplyNoveltyChargeInTx(
		context.Background(), orders, cash, o,
		dec(30), dec(20), entity.MethodEfectivo, "", "maria", time.Now())

	assert.ErrorIs(t, err, domain.ErrInvalidInput, "recibir menos que lo adeudado se rechaza")
	assert.Empty(t, cash.entries)
}

func TestApplyNoveltyChargeInTx_SaldoQuedaEnCero(t *testing.T) {
	o := buildOrder()
	o.PaidAmount = o.Total
	uc, orders, cash := buildUseCase(o)

	receiptID, change, err := uc.ApplyNoveltyChargeInTx(
		context.Background(), orders, cash, o,
		dec(30), dec(50), entity.MethodEfectivo, "", "maria", time.Now())

	require.NoError(t, err)
	assert.True(t, change.Equal(dec(20)))
	assert.True(t, o.Total.Equal(dec(100.10)), "el total sube por la reposición")
	assert.True(t, o.Outstanding().IsZero(), "total y cobrado suben juntos")
	require.Len(t, cash.entries, 1)
	assert.Equal(t, receiptID, cash.entries[0].ID)
	assert.True(t, cash.entries[0].Amount.Equal(dec(30)))
	assert.Equal(t, entity.CashCategoryCartera, cash.entries[0].Category)
}

// ──────────────────────────────────────────────────────────────────────────────
// Egresos y reporte de caja
// ──────────────────────────────────────────────────────────────────────────────

func TestRegisterExpense_ValoresPorDefecto(t *testing.T) {
	uc, _, _ := buildUseCase(buildOrder())

	tx, err := uc.RegisterExpense(context.Background(), dto.ExpenseRequest{
		Amount: dec(15),
		Reason: "compra de cinta de embalaje",
	}, "maria")

	require.NoError(t, err)
	assert.Equal(t, entity.CashExpense, tx.Type)
	assert.Equal(t, entity.CashCategoryCajaChica, tx.Category)
	assert.Equal(t, entity.MethodEfectivo, tx.Method)
	assert.Contains(t, tx.ID, "CC")
}

func TestRegisterExpense_SinMotivoSeRechaza(t *testing.T) {
	uc, _, _ := buildUseCase(buildOrder())

	_, err := uc.RegisterExpense(context.Background(), dto.ExpenseRequest{
		Amount: dec(15),
	}, "maria")

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestReport_BalanceIngresosMenosEgresos(t *testing.T) {
	o := buildOrder()
	uc, _, _ := buildUseCase(o)
	ctx := context.Background()

	_, err := uc.ApplyPayment(ctx, o.ID, dto.ApplyPaymentRequest{
		Type:     entity.PaymentContado,
		Method:   entity.MethodEfectivo,
		Received: dec(80),
	}, "maria")
	require.NoError(t, err)
	_, err = uc.RegisterExpense(ctx, dto.ExpenseRequest{Amount: dec(10), Reason: "gasolina"}, "maria")
	require.NoError(t, err)

	from := time.Now().Add(-time.Hour)
	to := time.Now().Add(time.Hour)
	report, err := uc.Report(from, to)

	require.NoError(t, err)
	assert.True(t, report.Income.Equal(dec(70.10)), "ingresos: %s", report.Income)
	assert.True(t, report.Expense.Equal(dec(10)), "egresos: %s", report.Expense)
	assert.True(t, report.Balance.Equal(dec(60.10)), "balance: %s", report.Balance)
	assert.True(t, report.ChangeTotal.Equal(dec(9.90)), "vueltos: %s", report.ChangeTotal)
	assert.Len(t, report.Entries, 2)
}
