package usecase_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/WallaceSt/bzutils/internal/application/dto"
	"github.com/WallaceSt/bzutils/internal/application/usecase"
	"github.com/WallaceSt/bzutils/internal/domain"
	"github.com/WallaceSt/bzutils/internal/domain/entity"
)

// priceFixture arma un producto y un período por dueño para los tests de
// precios.
type priceFixture struct {
	uc             *usecase.PriceUseCase
	myProduct      int64
	myPeriod       int64
	foreignProduct int64
	foreignPeriod  int64
}

func newPriceFixture(t *testing.T) priceFixture {
	t.Helper()
	products := newFakeProductRepo()
	periods := newFakePeriodRepo()
	prices := newFakePriceRepo(products, periods)

	day := func(d int) time.Time { return time.Date(2026, 1, d, 0, 0, 0, 0, time.UTC) }

	mine := &entity.Product{Name: "Arroz", Package: "saco", UserID: owner.UserID, CategoryID: 1}
	require.NoError(t, products.Create(mine))
	foreignProd := &entity.Product{Name: "Leche", Package: "caixa", UserID: other.UserID, CategoryID: 2}
	require.NoError(t, products.Create(foreignProd))

	myPeriod := &entity.Period{ValidFrom: day(1), ValidTo: day(31), UserID: owner.UserID}
	require.NoError(t, periods.Create(myPeriod))
	foreignPeriod := &entity.Period{ValidFrom: day(1), ValidTo: day(31), UserID: other.UserID}
	require.NoError(t, periods.Create(foreignPeriod))

	return priceFixture{
		uc:             usecase.NewPriceUseCase(prices, products, periods),
		myProduct:      mine.ID,
		myPeriod:       myPeriod.ID,
		foreignProduct: foreignProd.ID,
		foreignPeriod:  foreignPeriod.ID,
	}
}

func TestPriceCreate_OK(t *testing.T) {
	fx := newPriceFixture(t)

	out, err := fx.uc.Create(owner, dto.CreatePriceRequest{
		Currency: decimal.NewFromFloat(150.50),
		Product:  fx.myProduct,
		Period:   fx.myPeriod,
	})
	require.NoError(t, err)
	assert.True(t, out.Currency.Equal(decimal.NewFromFloat(150.50)))
	assert.Equal(t, fx.myProduct, out.ProductID)
	assert.Equal(t, fx.myPeriod, out.PeriodID)
}

func TestPriceCreate_MontoInvalido_EsInvalidInput(t *testing.T) {
	fx := newPriceFixture(t)

	cases := map[string]decimal.Decimal{
		"cero":           decimal.Zero,
		"negativo":       decimal.NewFromFloat(-10),
		"tres decimales": decimal.RequireFromString("10.123"),
	}
	for name, amount := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := fx.uc.Create(owner, dto.CreatePriceRequest{
				Currency: amount, Product: fx.myProduct, Period: fx.myPeriod,
			})
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

// Producto y período los proveyó el caller: uno ajeno es Forbidden.
func TestPriceCreate_ProductoAjeno_EsForbidden(t *testing.T) {
	fx := newPriceFixture(t)

	_, err := fx.uc.Create(owner, dto.CreatePriceRequest{
		Currency: decimal.NewFromInt(10), Product: fx.foreignProduct, Period: fx.myPeriod,
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestPriceCreate_PeriodoAjeno_EsForbidden(t *testing.T) {
	fx := newPriceFixture(t)

	_, err := fx.uc.Create(owner, dto.CreatePriceRequest{
		Currency: decimal.NewFromInt(10), Product: fx.myProduct, Period: fx.foreignPeriod,
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestPriceCreate_ParDuplicado_EsConflict(t *testing.T) {
	fx := newPriceFixture(t)
	_, err := fx.uc.Create(owner, dto.CreatePriceRequest{
		Currency: decimal.NewFromInt(10), Product: fx.myProduct, Period: fx.myPeriod,
	})
	require.NoError(t, err)

	_, err = fx.uc.Create(owner, dto.CreatePriceRequest{
		Currency: decimal.NewFromInt(20), Product: fx.myProduct, Period: fx.myPeriod,
	})
	assert.ErrorIs(t, err, domain.ErrConflict,
		"un par (producto, período) admite un solo precio")
}

func TestPriceUpdate_SoloMonto_OK(t *testing.T) {
	fx := newPriceFixture(t)
	created, err := fx.uc.Create(owner, dto.CreatePriceRequest{
		Currency: decimal.NewFromInt(10), Product: fx.myProduct, Period: fx.myPeriod,
	})
	require.NoError(t, err)

	amount := decimal.NewFromFloat(12.75)
	out, err := fx.uc.Update(owner, created.ID, dto.UpdatePriceRequest{Currency: &amount})
	require.NoError(t, err)
	assert.True(t, out.Currency.Equal(amount))
	assert.Equal(t, fx.myProduct, out.ProductID, "el producto es inmutable")
	assert.Equal(t, fx.myPeriod, out.PeriodID, "el período es inmutable")
}

func TestPriceUpdate_PrecioAjeno_EsNotFound(t *testing.T) {
	fx := newPriceFixture(t)
	created, err := fx.uc.Create(owner, dto.CreatePriceRequest{
		Currency: decimal.NewFromInt(10), Product: fx.myProduct, Period: fx.myPeriod,
	})
	require.NoError(t, err)

	amount := decimal.NewFromInt(99)
	_, err = fx.uc.Update(other, created.ID, dto.UpdatePriceRequest{Currency: &amount})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPriceGetByID_DevuelveVistaConVigencia(t *testing.T) {
	fx := newPriceFixture(t)
	created, err := fx.uc.Create(owner, dto.CreatePriceRequest{
		Currency: decimal.NewFromInt(10), Product: fx.myProduct, Period: fx.myPeriod,
	})
	require.NoError(t, err)

	out, err := fx.uc.GetByID(owner, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Arroz", out.ProductName)
	assert.Equal(t, "2026-01-01", out.ValidFrom)
	assert.Equal(t, "2026-01-31", out.ValidTo)
}

func TestPriceList_SoloDelDueno(t *testing.T) {
	fx := newPriceFixture(t)
	_, err := fx.uc.Create(owner, dto.CreatePriceRequest{
		Currency: decimal.NewFromInt(10), Product: fx.myProduct, Period: fx.myPeriod,
	})
	require.NoError(t, err)
	_, err = fx.uc.Create(other, dto.CreatePriceRequest{
		Currency: decimal.NewFromInt(20), Product: fx.foreignProduct, Period: fx.foreignPeriod,
	})
	require.NoError(t, err)

	mine, err := fx.uc.List(owner)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "Arroz", mine[0].ProductName)
}

func TestPriceDelete_Inexistente_EsNotFound(t *testing.T) {
	fx := newPriceFixture(t)
	assert.ErrorIs(t, fx.uc.Delete(99), domain.ErrNotFound)
}
