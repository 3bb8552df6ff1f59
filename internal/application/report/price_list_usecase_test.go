package report_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/WallaceSt/bzutils/internal/application/report"
	"github.com/WallaceSt/bzutils/internal/domain"
	"github.com/WallaceSt/bzutils/internal/domain/entity"
)

// fakePeriodRepo devuelve un único período del dueño 1.
type fakePeriodRepo struct {
	period *entity.Period
	items  []entity.PriceListItem
}

func (f *fakePeriodRepo) Create(*entity.Period) error { return nil }

func (f *fakePeriodRepo) GetByIDAndOwner(id, ownerID int64) (*entity.Period, error) {
	if f.period != nil && f.period.ID == id && f.period.UserID == ownerID {
		return f.period, nil
	}
	return nil, nil
}

func (f *fakePeriodRepo) GetPriceList(int64) ([]entity.PriceListItem, error) { return f.items, nil }

func (f *fakePeriodRepo) ExistsOverlapping(int64, time.Time, time.Time, int64) (bool, error) {
	return false, nil
}

func (f *fakePeriodRepo) Update(*entity.Period) error { return nil }

func (f *fakePeriodRepo) ListByOwner(int64) ([]*entity.Period, error) { return nil, nil }

func (f *fakePeriodRepo) Delete(int64) (bool, error) { return false, nil }

// fakeGenerator captura los argumentos y devuelve bytes fijos.
type fakeGenerator struct {
	gotOwner string
	gotItems []entity.PriceListItem
}

func (f *fakeGenerator) GeneratePriceListPDF(_ *entity.Period, owner string, items []entity.PriceListItem) ([]byte, error) {
	f.gotOwner = owner
	f.gotItems = items
	return []byte("%PDF-fake"), nil
}

func TestGenerate_OK(t *testing.T) {
	repo := &fakePeriodRepo{
		period: &entity.Period{ID: 1, UserID: 1},
		items: []entity.PriceListItem{
			{ProductName: "Arroz", Package: "saco", Currency: decimal.NewFromInt(150)},
		},
	}
	gen := &fakeGenerator{}
	uc := report.NewPriceListUseCase(repo, gen)

	out, err := uc.Generate(domain.Principal{UserID: 1, Username: "maria"}, 1)
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-fake"), out)
	assert.Equal(t, "maria", gen.gotOwner)
	require.Len(t, gen.gotItems, 1)
	assert.Equal(t, "Arroz", gen.gotItems[0].ProductName)
}

// El PDF usa el mismo scoping que el detalle: período ajeno es NotFound.
func TestGenerate_PeriodoAjeno_EsNotFound(t *testing.T) {
	repo := &fakePeriodRepo{period: &entity.Period{ID: 1, UserID: 2}}
	uc := report.NewPriceListUseCase(repo, &fakeGenerator{})

	_, err := uc.Generate(domain.Principal{UserID: 1, Username: "maria"}, 1)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
