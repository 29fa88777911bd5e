package stock_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Alquiler-api/internal/application/stock"
	"github.com/jhoicas/Alquiler-api/internal/domain"
	"github.com/jhoicas/Alquiler-api/internal/domain/entity"
	"github.com/jhoicas/Alquiler-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

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

type fakeTxRunner struct {
	products *fakeProductRepo
}

func (f *fakeTxRunner) RunStock(_ context.Context, fn func(repository.ProductRepository) error) error {
	return fn(f.products)
}

func buildUseCase() (*stock.UseCase, *fakeProductRepo) {
	repo := &fakeProductRepo{products: map[string]*entity.Product{
		"IN00000001": {
			ID:               "IN00000001",
			Name:             "Silla tiffany",
			Stock:            40,
			ReplacementPrice: decimal.NewFromInt(15),
		},
	}}
	return stock.NewUseCase(&fakeTxRunner{products: repo}), repo
}

// ──────────────────────────────────────────────────────────────────────────────
// Adjust
// ──────────────────────────────────────────────────────────────────────────────

func TestAdjust_AnexaHistorialJuntoAlStock(t *testing.T) {
	uc, repo := buildUseCase()

	p, err := uc.Adjust(context.Background(), "IN00000001", -5, "ALQUILER EVENTO", "carlos")

	require.NoError(t, err)
	assert.Equal(t, 35, p.Stock)
	require.Len(t, p.History, 1, "cada mutación de stock lleva su entrada de historial")
	assert.Equal(t, "ALQUILER EVENTO", p.History[0].Action)
	assert.Equal(t, "carlos", p.History[0].User)
	assert.Equal(t, -5, p.History[0].Quantity)
	assert.Equal(t, 35, repo.products["IN00000001"].Stock)
}

func TestAdjust_ElHistorialSoloCrece(t *testing.T) {
	uc, repo := buildUseCase()

	_, err := uc.Adjust(context.Background(), "IN00000001", -5, "ALQUILER EVENTO", "carlos")
	require.NoError(t, err)
	_, err = uc.Adjust(context.Background(), "IN00000001", 5, "DEVOLUCIÓN EVENTO", "carlos")
	require.NoError(t, err)

	p := repo.products["IN00000001"]
	assert.Equal(t, 40, p.Stock)
	require.Len(t, p.History, 2)
	assert.Equal(t, "ALQUILER EVENTO", p.History[0].Action)
	assert.Equal(t, "DEVOLUCIÓN EVENTO", p.History[1].Action)
}

func TestAdjust_StockNegativoSeRechazaSinEscribir(t *testing.T) {
	uc, repo := buildUseCase()

	_, err := uc.Adjust(context.Background(), "IN00000001", -41, "ALQUILER EVENTO", "carlos")

	var nsErr *domain.NegativeStockError
	require.ErrorAs(t, err, &nsErr)
	assert.Equal(t, 40, nsErr.Current)
	assert.Equal(t, -41, nsErr.Delta)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	// El producto queda intacto: ni stock ni historial.
	p := repo.products["IN00000001"]
	assert.Equal(t, 40, p.Stock)
	assert.Empty(t, p.History)
}

func TestAdjust_DeltaCeroSeRechaza(t *testing.T) {
	uc, _ := buildUseCase()

	_, err := uc.Adjust(context.Background(), "IN00000001", 0, "motivo", "carlos")

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAdjust_SinMotivoSeRechaza(t *testing.T) {
	uc, _ := buildUseCase()

	_, err := uc.Adjust(context.Background(), "IN00000001", 3, "", "carlos")

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAdjust_ProductoInexistente(t *testing.T) {
	uc, _ := buildUseCase()

	_, err := uc.Adjust(context.Background(), "IN99999999", 3, "compra", "carlos")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// AdjustInTx
// ──────────────────────────────────────────────────────────────────────────────

func TestAdjustInTx_UsaElRepositorioDelCaller(t *testing.T) {
	_, repo := buildUseCase()
	p := repo.products["IN00000001"]
	now := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

	err := stock.AdjustInTx(repo, p, 2, "REPOSICIÓN POR NOVEDAD (PEDIDO PD00000001)", "maria", now)

	require.NoError(t, err)
	assert.Equal(t, 42, p.Stock)
	require.Len(t, p.History, 1)
	assert.Equal(t, now, p.History[0].Date)
	assert.Equal(t, now, p.UpdatedAt)
}
