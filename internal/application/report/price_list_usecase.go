package report

import (
	"github.com/WallaceSt/bzutils/internal/domain"
	"github.com/WallaceSt/bzutils/internal/domain/repository"
)

// PriceListUseCase arma el PDF de la lista de precios de un período del
// dueño autenticado (mismo scoping que el detalle del período).
type PriceListUseCase struct {
	periodRepo repository.PeriodRepository
	generator  PriceListPDFGenerator
}

// NewPriceListUseCase construye el caso de uso.
func NewPriceListUseCase(periodRepo repository.PeriodRepository, generator PriceListPDFGenerator) *PriceListUseCase {
	return &PriceListUseCase{periodRepo: periodRepo, generator: generator}
}

// Generate devuelve los bytes del PDF. Un período ajeno surfacea como
// NotFound, igual que el detalle.
func (uc *PriceListUseCase) Generate(p domain.Principal, periodID int64) ([]byte, error) {
	period, err := uc.periodRepo.GetByIDAndOwner(periodID, p.UserID)
	if err != nil {
		return nil, err
	}
	if period == nil {
		return nil, domain.ErrNotFound
	}
	items, err := uc.periodRepo.GetPriceList(period.ID)
	if err != nil {
		return nil, err
	}
	return uc.generator.GeneratePriceListPDF(period, p.Username, items)
}
