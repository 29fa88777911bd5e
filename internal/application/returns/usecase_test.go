package returns_test

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
	"github.com/jhoicas/Alquiler-api/internal/application/returns"
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

func (f *fakeOrderRepo) Create(o *entity.Order) error                { f.orders[o.ID] = o; return nil }
func (f *fakeOrderRepo) GetByID(id string) (*entity.Order, error)    { return f.orders[id], nil }
func (f *fakeOrderRepo) GetForUpdate(id string) (*entity.Order, error) { return f.orders[id], nil }
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

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func (f *fakeProductRepo) Create(p *entity.Product) error                  { f.products[p.ID] = p; return nil }
func (f *fakeProductRepo) GetByID(id string) (*entity.Product, error)      { return f.products[id], nil }
func (f *fakeProductRepo) GetForUpdate(id string) (*entity.Product, error) { return f.products[id], nil }
func (f *fakeProductRepo) Update(p *entity.Product) error {
	if _, ok := f.products[p.ID]; !ok {
		return domain.ErrNotFound
	}
	f.products[p.ID] = p
	return nil
}
func (f *fakeProductRepo) List(int, int) ([]*entity.Product, error)      { return nil, nil }
func (f *fakeProductRepo) Search(string, int) ([]*entity.Product, error) { return nil, nil }
func (f *fakeProductRepo) Delete(id string) error                        { delete(f.products, id); return nil }

type fakeCashRepo struct {
	entries []*entity.CashTransaction
}

func (f *fakeCashRepo) Create(tx *entity.CashTransaction) error {
	f.entries = append(f.entries, tx)
	return nil
}
func (f *fakeCashRepo) GetByID(string) (*entity.CashTransaction, error) { return nil, nil }
func (f *fakeCashRepo) ListBetween(time.Time, time.Time) ([]*entity.CashTransaction, error) {
	return f.entries, nil
}
func (f *fakeCashRepo) ListByOrder(string) ([]*entity.CashTransaction, error) {
	return f.entries, nil
}
func (f *fakeCashRepo) Delete(string) error { return nil }

type fakeTxRunner struct {
	orders   *fakeOrderRepo
	products *fakeProductRepo
	cash     *fakeCashRepo
}

func (f *fakeTxRunner) RunReturns(_ context.Context, fn func(
	repository.OrderRepository, repository.ProductRepository, repository.CashRepository) error) error {
	return fn(f.orders, f.products, f.cash)
}

func (f *fakeTxRunner) Run(_ context.Context, fn func(
	repository.OrderRepository, repository.CashRepository) error) error {
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

type fixture struct {
	uc       *returns.UseCase
	order    *entity.Order
	products *fakeProductRepo
	cash     *fakeCashRepo
}

// buildFixture arma un pedido POR_RETIRAR con 10 sillas entregadas y el
// catálogo con reposición a $15 la silla. El libro de pagos real actúa de
// cobrador dentro de la misma transacción en memoria.
func buildFixture() *fixture {
	o := &entity.Order{
		ID:         "PD00000001",
		ClientID:   "c-1",
		Status:     entity.StatusPorRetirar,
		Total:      dec(60),
		PaidAmount: dec(60),
		Items: []entity.OrderItem{
			{ProductID: "IN00000001", Name: "Silla tiffany", Quantity: 10, Price: dec(2)},
		},
	}
	orders := &fakeOrderRepo{orders: map[string]*entity.Order{o.ID: o}}
	products := &fakeProductRepo{products: map[string]*entity.Product{
		"IN00000001": {ID: "IN00000001", Name: "Silla tiffany", Stock: 40, ReplacementPrice: dec(15)},
	}}
	cash := &fakeCashRepo{}
	runner := &fakeTxRunner{orders: orders, products: products, cash: cash}
	charger := payments.NewUseCase(runner, cash, &fakeCodes{})
	return &fixture{
		uc:       returns.NewUseCase(runner, charger),
		order:    o,
		products: products,
		cash:     cash,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// ReportNovelties
// ──────────────────────────────────────────────────────────────────────────────

func TestReportNovelties_CongelaPrecioDeReposicion(t *testing.T) {
	fx := buildFixture()

	o, err := fx.uc.ReportNovelties(context.Background(), fx.order.ID, dto.ReportNoveltyRequest{
		Lines: []dto.NoveltyLineRequest{{ProductID: "IN00000001", Quantity: 2}},
		Notes: "dos sillas con el respaldo roto",
	}, "maria")

	require.NoError(t, err)
	assert.Equal(t, entity.StatusIngresoParcial, o.Status)
	require.Len(t, o.NoveltyItems, 1)
	assert.True(t, o.NoveltyItems[0].ReplacementPrice.Equal(dec(15)),
		"el precio de reposición se congela al reportar")
}

func TestReportNovelties_SinCantidadNiNotasSeRechaza(t *testing.T) {
	fx := buildFixture()

	_, err := fx.uc.ReportNovelties(context.Background(), fx.order.ID, dto.ReportNoveltyRequest{
		Lines: []dto.NoveltyLineRequest{{ProductID: "IN00000001", Quantity: 0}},
	}, "maria")

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, entity.StatusPorRetirar, fx.order.Status)
}

func TestReportNovelties_CantidadMayorQueLoEntregadoSeRechaza(t *testing.T) {
	fx := buildFixture()

	_, err := fx.uc.ReportNovelties(context.Background(), fx.order.ID, dto.ReportNoveltyRequest{
		Lines: []dto.NoveltyLineRequest{{ProductID: "IN00000001", Quantity: 11}},
	}, "maria")

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestReportNovelties_ProductoAjenoAlPedidoSeRechaza(t *testing.T) {
	fx := buildFixture()

	_, err := fx.uc.ReportNovelties(context.Background(), fx.order.ID, dto.ReportNoveltyRequest{
		Lines: []dto.NoveltyLineRequest{{ProductID: "IN99999999", Quantity: 1}},
	}, "maria")

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Resolve
// ──────────────────────────────────────────────────────────────────────────────

func reportTwoChairs(t *testing.T, fx *fixture) {
	t.Helper()
	_, err := fx.uc.ReportNovelties(context.Background(), fx.order.ID, dto.ReportNoveltyRequest{
		Lines: []dto.NoveltyLineRequest{{ProductID: "IN00000001", Quantity: 2}},
		Notes: "dos sillas rotas",
	}, "maria")
	require.NoError(t, err)
}

func TestResolve_PagadoCobraTodoONada(t *testing.T) {
	fx := buildFixture()
	reportTwoChairs(t, fx)

	// 2 × $15 = $30 adeudado; recibir 20 se rechaza.
	_, err := fx.uc.Resolve(context.Background(), fx.order.ID, dto.ResolveNoveltyRequest{
		Mode:     dto.ResolutionPaid,
		Received: dec(20),
		Method:   entity.MethodEfectivo,
	}, "maria")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, entity.StatusIngresoParcial, fx.order.Status, "el pedido queda pendiente")

	out, err := fx.uc.Resolve(context.Background(), fx.order.ID, dto.ResolveNoveltyRequest{
		Mode:     dto.ResolutionPaid,
		Received: dec(50),
		Method:   entity.MethodEfectivo,
	}, "maria")

	require.NoError(t, err)
	assert.True(t, out.AmountOwed.Equal(dec(30)))
	assert.True(t, out.Change.Equal(dec(20)))
	assert.NotEmpty(t, out.ReceiptID)
	assert.Equal(t, entity.StatusRetiroExitoso, out.Order.Status)
	assert.True(t, out.Order.NoveltiesResolved)

	// La caja registra el cobro con el mismo RC como recuperación de cartera;
	// el saldo queda en cero.
	require.Len(t, fx.cash.entries, 1)
	assert.Equal(t, out.ReceiptID, fx.cash.entries[0].ID)
	assert.Equal(t, entity.CashCategoryCartera, fx.cash.entries[0].Category)
	assert.True(t, fx.order.Outstanding().IsZero())
	// El stock no se toca en la vía de cobro.
	assert.Equal(t, 40, fx.products.products["IN00000001"].Stock)
}

func TestResolve_RepuestoReintegraStock(t *testing.T) {
	fx := buildFixture()
	reportTwoChairs(t, fx)

	out, err := fx.uc.Resolve(context.Background(), fx.order.ID, dto.ResolveNoveltyRequest{
		Mode: dto.ResolutionReplaced,
	}, "maria")

	require.NoError(t, err)
	assert.Equal(t, entity.StatusRetiroExitoso, out.Order.Status)
	assert.Empty(t, out.ReceiptID, "la reposición no mueve dinero")
	assert.Empty(t, fx.cash.entries)

	p := fx.products.products["IN00000001"]
	assert.Equal(t, 42, p.Stock, "las dos sillas vuelven al stock")

	// Una sola entrada de historial por línea, referenciando al pedido.
	require.Len(t, p.History, 1)
	assert.Contains(t, p.History[0].Action, "REPOSICIÓN POR NOVEDAD")
	assert.Contains(t, p.History[0].Action, fx.order.ID)
	assert.Equal(t, 2, p.History[0].Quantity)
}

func TestResolve_SoloObservacionesCierraSinMovimientos(t *testing.T) {
	fx := buildFixture()

	// Novedad sin cantidades afectadas, solo observación.
	_, err := fx.uc.ReportNovelties(context.Background(), fx.order.ID, dto.ReportNoveltyRequest{
		Notes: "el cliente devolvió todo sucio",
	}, "maria")
	require.NoError(t, err)
	require.Equal(t, entity.StatusIngresoParcial, fx.order.Status)

	out, err := fx.uc.Resolve(context.Background(), fx.order.ID, dto.ResolveNoveltyRequest{
		Mode: dto.ResolutionReplaced,
	}, "maria")

	require.NoError(t, err, "una novedad solo de observaciones debe poder cerrarse")
	assert.Equal(t, entity.StatusRetiroExitoso, out.Order.Status)
	assert.True(t, out.Order.NoveltiesResolved)
	assert.True(t, out.AmountOwed.IsZero())
	assert.Empty(t, out.ReceiptID)

	// Sin dinero ni stock de por medio.
	assert.Empty(t, fx.cash.entries)
	assert.Equal(t, 40, fx.products.products["IN00000001"].Stock)
	assert.NotNil(t, fx.order.ArchivedAt)
}

func TestResolve_ModoDesconocidoSeRechaza(t *testing.T) {
	fx := buildFixture()
	reportTwoChairs(t, fx)

	_, err := fx.uc.Resolve(context.Background(), fx.order.ID, dto.ResolveNoveltyRequest{
		Mode: "CANJE",
	}, "maria")

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestResolve_SoloDesdeIngresoParcial(t *testing.T) {
	fx := buildFixture()
	// Sin reportar novedades el pedido sigue POR_RETIRAR.
	_, err := fx.uc.Resolve(context.Background(), fx.order.ID, dto.ResolveNoveltyRequest{
		Mode: dto.ResolutionReplaced,
	}, "maria")

	assert.ErrorIs(t, err, domain.ErrConflict)
}
